package tux

// FallbackFooterIconURL is the footer icon used when no user avatar is
// available for the computed footer.
const FallbackFooterIconURL = "https://i.imgur.com/4sblrd0.png"

// CardStyle is the default styling tuple for one card type.
type CardStyle struct {
	// 24-bit RGB color
	Color   int
	IconURL string
	Label   string
}

// Theme maps every card type to its default styling. Themes are plain
// data supplied by the host configuration; the zero map is not usable,
// start from DefaultTheme or supply a full table via WithTheme.
type Theme map[CardType]CardStyle

// DefaultTheme returns the built-in styling table.
func DefaultTheme() Theme {
	return Theme{
		CardTypeDefault: {Color: 0xF4D01E, IconURL: "https://i.imgur.com/VpcIErU.png", Label: "Default"},
		CardTypeInfo:    {Color: 0x3498DB, IconURL: "https://i.imgur.com/8GRtR2G.png", Label: "Info"},
		CardTypeError:   {Color: 0xE74C3C, IconURL: "https://i.imgur.com/zZgbng2.png", Label: "Error"},
		// Warning shares the default icon; it never had its own glyph.
		CardTypeWarning: {Color: 0xF1C40F, IconURL: "https://i.imgur.com/VpcIErU.png", Label: "Warning"},
		CardTypeSuccess: {Color: 0x2ECC71, IconURL: "https://i.imgur.com/doQOeuV.png", Label: "Success"},
		CardTypePoll:    {Color: 0x9B59B6, IconURL: "https://i.imgur.com/pkPeG65.png", Label: "Poll"},
		CardTypeCase:    {Color: 0xE67E22, IconURL: "https://i.imgur.com/c03V1dJ.png", Label: "Case"},
		CardTypeNote:    {Color: 0x95A5A6, IconURL: "https://i.imgur.com/VIdXXNX.png", Label: "Note"},
	}
}

// Style returns the styling for cardType, or an error when the theme
// has no usable entry for it.
func (t Theme) Style(cardType CardType) (CardStyle, error) {
	style, ok := t[cardType]
	if !ok {
		return CardStyle{}, NewUnknownTypeError(cardType)
	}
	if style.Label == "" {
		return CardStyle{}, NewInvalidThemeError(cardType, "empty label")
	}
	return style, nil
}

// Validate checks that every entry in the theme can produce a valid
// card. Author and footer text must never be empty on a built card, so
// a style without a label is rejected.
func (t Theme) Validate() error {
	for cardType, style := range t {
		if style.Label == "" {
			return NewInvalidThemeError(cardType, "empty label")
		}
	}
	return nil
}
