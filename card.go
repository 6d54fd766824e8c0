package tux

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// LatencyProvider reports the host connection's current round-trip
// time. It is supplied by the chat-bot client; the builder takes at
// most one reading per card.
type LatencyProvider interface {
	Latency() time.Duration
}

type cardOptions struct {
	theme   Theme
	latency LatencyProvider

	title         *string
	description   *string
	userName      *string
	userAvatarURL *string
	imageURL      *string
	thumbnailURL  *string
	timestamp     *time.Time

	customColor         *int
	customFooterText    *string
	customFooterIconURL *string
	customAuthorText    *string
	customAuthorIconURL *string
}

// CardOption customizes a single card build.
type CardOption func(*cardOptions)

// WithTheme replaces the built-in styling table for this build.
func WithTheme(theme Theme) CardOption {
	return func(o *cardOptions) {
		o.theme = theme
	}
}

// WithLatencyProvider makes the computed footer include the bot's
// round-trip latency.
func WithLatencyProvider(provider LatencyProvider) CardOption {
	return func(o *cardOptions) {
		o.latency = provider
	}
}

func WithTitle(title string) CardOption {
	return func(o *cardOptions) {
		o.title = &title
	}
}

func WithDescription(description string) CardOption {
	return func(o *cardOptions) {
		o.description = &description
	}
}

// WithUserName sets the user shown in the computed footer prompt.
func WithUserName(name string) CardOption {
	return func(o *cardOptions) {
		o.userName = &name
	}
}

// WithUserAvatarURL sets the icon of the computed footer.
func WithUserAvatarURL(url string) CardOption {
	return func(o *cardOptions) {
		o.userAvatarURL = &url
	}
}

func WithImageURL(url string) CardOption {
	return func(o *cardOptions) {
		o.imageURL = &url
	}
}

func WithThumbnailURL(url string) CardOption {
	return func(o *cardOptions) {
		o.thumbnailURL = &url
	}
}

func WithTimestamp(timestamp time.Time) CardOption {
	return func(o *cardOptions) {
		o.timestamp = &timestamp
	}
}

// WithCustomColor overrides the type's default color, including zero.
func WithCustomColor(color int) CardOption {
	return func(o *cardOptions) {
		o.customColor = &color
	}
}

// WithCustomFooterText replaces the computed footer entirely. The
// avatar fallback does not apply on this path, so the footer icon may
// end up absent.
func WithCustomFooterText(text string) CardOption {
	return func(o *cardOptions) {
		o.customFooterText = &text
	}
}

func WithCustomFooterIconURL(url string) CardOption {
	return func(o *cardOptions) {
		o.customFooterIconURL = &url
	}
}

func WithCustomAuthorText(text string) CardOption {
	return func(o *cardOptions) {
		o.customAuthorText = &text
	}
}

func WithCustomAuthorIconURL(url string) CardOption {
	return func(o *cardOptions) {
		o.customAuthorIconURL = &url
	}
}

// NewCard builds a fully resolved card for cardType. Custom overrides
// win over the type's default styling; string overrides supplied as
// empty strings count as absent. The build performs no I/O beyond
// reading the clock and, when a provider is set, one latency reading.
//
// Failures are logged at debug level and returned unchanged; there is
// no partial card.
func NewCard(cardType CardType, opts ...CardOption) (Card, error) {
	options := cardOptions{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&options)
	}

	card, err := buildCard(cardType, &options)
	if err != nil {
		logger.Debug("error building card",
			zap.String("card_type", string(cardType)),
			zap.Error(err),
		)
		return Card{}, err
	}
	return card, nil
}

func buildCard(cardType CardType, o *cardOptions) (Card, error) {
	style, err := o.theme.Style(cardType)
	if err != nil {
		return Card{}, err
	}

	card := Card{Color: style.Color}
	if isSet(o.title) {
		card.Title = o.title
	}
	if isSet(o.description) {
		card.Description = o.description
	}
	if o.customColor != nil {
		card.Color = *o.customColor
	}

	card.Author = CardAuthor{Text: style.Label}
	if isSet(o.customAuthorText) {
		card.Author.Text = *o.customAuthorText
	}
	switch {
	case isSet(o.customAuthorIconURL):
		card.Author.IconURL = o.customAuthorIconURL
	case style.IconURL != "":
		card.Author.IconURL = &style.IconURL
	}

	if isSet(o.customFooterText) {
		card.Footer = CardFooter{Text: *o.customFooterText}
		if isSet(o.customFooterIconURL) {
			card.Footer.IconURL = o.customFooterIconURL
		}
	} else {
		footer, err := defaultFooter(o.latency, o.userName, o.userAvatarURL)
		if err != nil {
			return Card{}, err
		}
		card.Footer = footer
	}

	if isSet(o.imageURL) {
		card.Image = &CardImage{URL: *o.imageURL}
	}
	if isSet(o.thumbnailURL) {
		card.Thumbnail = &CardImage{URL: *o.thumbnailURL}
	}

	if o.timestamp != nil {
		card.Timestamp = *o.timestamp
	} else {
		card.Timestamp = time.Now().UTC()
	}

	return card, nil
}

// defaultFooter renders the shell-prompt footer, "{user}@atl $", with
// the bot round-trip latency in whole milliseconds appended when a
// provider is available.
func defaultFooter(provider LatencyProvider, userName, userAvatarURL *string) (CardFooter, error) {
	user := "tux"
	if isSet(userName) {
		user = *userName
	}
	text := user + "@atl $"

	if provider != nil {
		latency := provider.Latency()
		if latency < 0 {
			return CardFooter{}, NewInvalidLatencyError(fmt.Sprintf("negative reading %s", latency))
		}
		text += fmt.Sprintf(" %dms", int64(math.Round(latency.Seconds()*1000)))
	}

	icon := FallbackFooterIconURL
	if isSet(userAvatarURL) {
		icon = *userAvatarURL
	}
	return CardFooter{Text: text, IconURL: &icon}, nil
}

func isSet(s *string) bool {
	return s != nil && *s != ""
}
