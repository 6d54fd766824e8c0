package tux

import "time"

// CardType is the closed category used to pick a card's default styling.
type CardType string

const (
	CardTypeDefault CardType = "default"
	CardTypeInfo    CardType = "info"
	CardTypeError   CardType = "error"
	CardTypeWarning CardType = "warning"
	CardTypeSuccess CardType = "success"
	CardTypePoll    CardType = "poll"
	CardTypeCase    CardType = "case"
	CardTypeNote    CardType = "note"
)

// CardTypes returns every card type, in table order.
func CardTypes() []CardType {
	return []CardType{
		CardTypeDefault,
		CardTypeInfo,
		CardTypeError,
		CardTypeWarning,
		CardTypeSuccess,
		CardTypePoll,
		CardTypeCase,
		CardTypeNote,
	}
}

// CardAuthor is the small header line with text and icon shown at the top of a card.
type CardAuthor struct {
	Text    string  `json:"text"`
	IconURL *string `json:"icon_url,omitempty"`
}

// CardFooter is the small text and icon shown at the bottom of a card.
type CardFooter struct {
	Text    string  `json:"text"`
	IconURL *string `json:"icon_url,omitempty"`
}

// CardImage points at an image shown on a card. The renderer expects
// media nested under a url key.
type CardImage struct {
	URL string `json:"url"`
}

// Card is the rich, styled message object attached to a chat message.
// A card is fully resolved at build time and never mutated afterwards;
// the renderer consumes the value verbatim.
type Card struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Color       int        `json:"color"`
	Author      CardAuthor `json:"author"`
	Footer      CardFooter `json:"footer"`
	Image       *CardImage `json:"image,omitempty"`
	Thumbnail   *CardImage `json:"thumbnail,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}
