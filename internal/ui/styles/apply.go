package styles

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig is the theme section of the config file, with nested color
// keys already flattened to token names.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

var hexColor = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// resolve layers the preset and then the per-token overrides on top of the
// default colors.
func resolve(cfg ThemeConfig) (map[ColorToken]string, error) {
	colors := maps.Clone(DefaultPreset.Colors)
	if cfg.Preset != "" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	valid := palette()
	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if _, ok := valid[token]; !ok {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}
	return colors, nil
}

// ApplyTheme sets every widget color from cfg and rebuilds the styles.
// Colors are left untouched when cfg is invalid.
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := resolve(cfg)
	if err != nil {
		return err
	}
	for token, target := range palette() {
		hex := colors[token]
		*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}
	rebuildStyles()
	return nil
}

// ValidateTheme returns the error ApplyTheme would return.
func ValidateTheme(cfg ThemeConfig) error {
	_, err := resolve(cfg)
	return err
}

func isValidHexColor(s string) bool {
	return hexColor.MatchString(s)
}
