package styles

// Preset is a named set of colors covering every token.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"dracula":       DraculaPreset,
	"nord":          NordPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset holds the Dark values of the colors in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default leifetch theme",
	Colors: map[ColorToken]string{
		TokenTitle:              "#EEEEEE",
		TokenLabel:              "#8A8A8A",
		TokenValue:              "#CCCCCC",
		TokenPlaceholder:        "#5C5C5C",
		TokenEntityName:         "#7FB3D5",
		TokenStatusActive:       "#73F59F",
		TokenStatusInactive:     "#FECA57",
		TokenError:              "#FF8787",
		TokenSectionBorder:      "#5C5C5C",
		TokenSectionBorderFocus: "#54A0FF",
		TokenButtonText:         "#FFFFFF",
		TokenButtonBg:           "#1A5276",
		TokenButtonBgFocus:      "#3498DB",
		TokenSpinner:            "#C39BFF",
	},
}

// DraculaPreset uses the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTitle:              "#F8F8F2",
		TokenLabel:              "#6272A4",
		TokenValue:              "#F8F8F2",
		TokenPlaceholder:        "#44475A",
		TokenEntityName:         "#8BE9FD",
		TokenStatusActive:       "#50FA7B",
		TokenStatusInactive:     "#FFB86C",
		TokenError:              "#FF5555",
		TokenSectionBorder:      "#44475A",
		TokenSectionBorderFocus: "#BD93F9",
		TokenButtonText:         "#282A36",
		TokenButtonBg:           "#BD93F9",
		TokenButtonBgFocus:      "#FF79C6",
		TokenSpinner:            "#FF79C6",
	},
}

// NordPreset uses the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish color palette",
	Colors: map[ColorToken]string{
		TokenTitle:              "#ECEFF4",
		TokenLabel:              "#616E88",
		TokenValue:              "#D8DEE9",
		TokenPlaceholder:        "#4C566A",
		TokenEntityName:         "#88C0D0",
		TokenStatusActive:       "#A3BE8C",
		TokenStatusInactive:     "#EBCB8B",
		TokenError:              "#BF616A",
		TokenSectionBorder:      "#4C566A",
		TokenSectionBorderFocus: "#88C0D0",
		TokenButtonText:         "#2E3440",
		TokenButtonBg:           "#5E81AC",
		TokenButtonBgFocus:      "#88C0D0",
		TokenSpinner:            "#B48EAD",
	},
}

// HighContrastPreset uses pure black, white and primaries.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTitle:              "#FFFFFF",
		TokenLabel:              "#BBBBBB",
		TokenValue:              "#FFFFFF",
		TokenPlaceholder:        "#BBBBBB",
		TokenEntityName:         "#00FFFF",
		TokenStatusActive:       "#00FF00",
		TokenStatusInactive:     "#FFFF00",
		TokenError:              "#FF0000",
		TokenSectionBorder:      "#FFFFFF",
		TokenSectionBorderFocus: "#FFFF00",
		TokenButtonText:         "#000000",
		TokenButtonBg:           "#FFFFFF",
		TokenButtonBgFocus:      "#FFFF00",
		TokenSpinner:            "#FFFF00",
	},
}
