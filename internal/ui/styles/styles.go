// Package styles contains the widget's Lip Gloss colors and styles, the
// built-in themes, and the bordered section renderer.
package styles

import "github.com/charmbracelet/lipgloss"

// Widget colors. ApplyTheme overwrites them and rebuilds the styles below.
var (
	TitleColor       = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#EEEEEE"}
	LabelColor       = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#8A8A8A"}
	ValueColor       = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	PlaceholderColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#5C5C5C"}

	EntityNameColor     = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#7FB3D5"}
	StatusActiveColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusInactiveColor = lipgloss.AdaptiveColor{Light: "#D68910", Dark: "#FECA57"}
	ErrorColor          = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#FF8787"}

	SectionBorderColor      = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#5C5C5C"}
	SectionBorderFocusColor = lipgloss.AdaptiveColor{Light: "#2E86C1", Dark: "#54A0FF"}

	ButtonTextColor    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonBgFocusColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}

	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#C39BFF"}
)

var baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

var (
	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style

	TitleStyle       lipgloss.Style
	FieldLabelStyle  lipgloss.Style
	FieldValueStyle  lipgloss.Style
	EntityNameStyle  lipgloss.Style
	StatusActive     lipgloss.Style
	StatusInactive   lipgloss.Style
	ErrorStyle       lipgloss.Style
	SpinnerStyle     lipgloss.Style
	PlaceholderStyle lipgloss.Style
	HelpStyle        lipgloss.Style
)

func init() {
	rebuildStyles()
}

// palette maps each token to the color variable it themes.
func palette() map[ColorToken]*lipgloss.AdaptiveColor {
	return map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTitle:              &TitleColor,
		TokenLabel:              &LabelColor,
		TokenValue:              &ValueColor,
		TokenPlaceholder:        &PlaceholderColor,
		TokenEntityName:         &EntityNameColor,
		TokenStatusActive:       &StatusActiveColor,
		TokenStatusInactive:     &StatusInactiveColor,
		TokenError:              &ErrorColor,
		TokenSectionBorder:      &SectionBorderColor,
		TokenSectionBorderFocus: &SectionBorderFocusColor,
		TokenButtonText:         &ButtonTextColor,
		TokenButtonBg:           &ButtonBgColor,
		TokenButtonBgFocus:      &ButtonBgFocusColor,
		TokenSpinner:            &SpinnerColor,
	}
}

// rebuildStyles recreates every Style from the current colors.
// lipgloss.Style captures colors by value, so a theme change needs this.
func rebuildStyles() {
	ButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonBgColor)

	ButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonBgFocusColor).
		Underline(true).
		UnderlineSpaces(true)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	FieldLabelStyle = lipgloss.NewStyle().Foreground(LabelColor)
	FieldValueStyle = lipgloss.NewStyle().Foreground(ValueColor)
	EntityNameStyle = lipgloss.NewStyle().Bold(true).Foreground(EntityNameColor)
	StatusActive = lipgloss.NewStyle().Bold(true).Foreground(StatusActiveColor)
	StatusInactive = lipgloss.NewStyle().Bold(true).Foreground(StatusInactiveColor)
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	SpinnerStyle = lipgloss.NewStyle().Foreground(SpinnerColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(PlaceholderColor)
	HelpStyle = lipgloss.NewStyle().Foreground(LabelColor)
}

// StatusStyle returns the style for an entity status value.
func StatusStyle(status string) lipgloss.Style {
	if status == "ACTIVE" {
		return StatusActive
	}
	return StatusInactive
}
