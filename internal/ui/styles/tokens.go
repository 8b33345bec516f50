package styles

// ColorToken names one themeable color of the widget. Tokens are the keys
// accepted under theme.colors in the config file.
type ColorToken string

const (
	TokenTitle       ColorToken = "title"
	TokenLabel       ColorToken = "label" // field labels, hints, help
	TokenValue       ColorToken = "value"
	TokenPlaceholder ColorToken = "placeholder"

	TokenEntityName     ColorToken = "entity.name"
	TokenStatusActive   ColorToken = "status.active"
	TokenStatusInactive ColorToken = "status.inactive"
	TokenError          ColorToken = "error"

	TokenSectionBorder      ColorToken = "section.border"
	TokenSectionBorderFocus ColorToken = "section.border.focus"

	TokenButtonText    ColorToken = "button.text"
	TokenButtonBg      ColorToken = "button.bg"
	TokenButtonBgFocus ColorToken = "button.bg.focus"

	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns every themeable token in display order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTitle,
		TokenLabel,
		TokenValue,
		TokenPlaceholder,
		TokenEntityName,
		TokenStatusActive,
		TokenStatusInactive,
		TokenError,
		TokenSectionBorder,
		TokenSectionBorderFocus,
		TokenButtonText,
		TokenButtonBg,
		TokenButtonBgFocus,
		TokenSpinner,
	}
}
