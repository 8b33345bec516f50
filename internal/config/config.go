// Package config provides configuration types and defaults for leifetch.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/leifetch/internal/fetcher"
	"github.com/zjrosen/leifetch/internal/log"
	"github.com/zjrosen/leifetch/internal/lookup"
	"github.com/zjrosen/leifetch/internal/tracing"
)

// Config holds all configuration options for leifetch.
type Config struct {
	Labels   LabelsConfig   `mapstructure:"labels"`
	Registry RegistryConfig `mapstructure:"registry"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Display  DisplayConfig  `mapstructure:"display"`
	Search   SearchConfig   `mapstructure:"search"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

// LabelsConfig holds the display labels shown by the widget.
type LabelsConfig struct {
	Search        string `mapstructure:"search" yaml:"search"`
	Empty         string `mapstructure:"empty" yaml:"empty"`
	InvalidLength string `mapstructure:"invalid_length" yaml:"invalid_length"`
}

// FetcherLabels converts to fetcher.Labels. Empty labels fall back to the
// defaults so an error region is never blank.
func (l LabelsConfig) FetcherLabels() fetcher.Labels {
	labels := fetcher.DefaultLabels()
	if l.Search != "" {
		labels.Search = l.Search
	}
	if l.Empty != "" {
		labels.Empty = l.Empty
	}
	if l.InvalidLength != "" {
		labels.InvalidLength = l.InvalidLength
	}
	return labels
}

// RegistryConfig configures the remote LEI registry.
type RegistryConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"` // 0 = no timeout
	UserAgent string        `mapstructure:"user_agent"`
}

// CacheConfig configures the in-memory lookup cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// DisplayConfig holds rendering options.
type DisplayConfig struct {
	// Timezone is an IANA zone name used for dates. Empty means local time.
	Timezone      string `mapstructure:"timezone"`
	MarkdownStyle string `mapstructure:"markdown_style"` // glamour style, empty = auto
}

// Location resolves Timezone.
func (d DisplayConfig) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", d.Timezone, err)
	}
	return loc, nil
}

// SearchConfig holds search orchestration options.
type SearchConfig struct {
	// Overlap is the policy for a search triggered while another is pending.
	// Valid values: "discard-stale" (default), "ignore-while-loading",
	// "last-completion-wins"
	Overlap string `mapstructure:"overlap"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TracingConfig holds distributed tracing configuration for lookups.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/leifetch/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// ProviderConfig converts to tracing.Config, filling in the default file path.
func (t TracingConfig) ProviderConfig() tracing.Config {
	cfg := tracing.DefaultConfig()
	cfg.Enabled = t.Enabled
	if t.Exporter != "" {
		cfg.Exporter = t.Exporter
	}
	cfg.FilePath = t.FilePath
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultTracesFilePath()
	}
	if t.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = t.OTLPEndpoint
	}
	cfg.SampleRate = t.SampleRate
	return cfg
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/leifetch/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "leifetch", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	labels := fetcher.DefaultLabels()
	return Config{
		Labels: LabelsConfig{
			Search:        labels.Search,
			Empty:         labels.Empty,
			InvalidLength: labels.InvalidLength,
		},
		Registry: RegistryConfig{
			BaseURL: lookup.DefaultBaseURL,
			Timeout: 0,
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     10 * time.Minute,
		},
		Search: SearchConfig{
			Overlap: string(fetcher.DefaultPolicy),
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from home dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// SetDefaults registers Defaults() on v so unset keys still unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("labels.search", d.Labels.Search)
	v.SetDefault("labels.empty", d.Labels.Empty)
	v.SetDefault("labels.invalid_length", d.Labels.InvalidLength)
	v.SetDefault("registry.base_url", d.Registry.BaseURL)
	v.SetDefault("registry.timeout", d.Registry.Timeout)
	v.SetDefault("registry.user_agent", d.Registry.UserAgent)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("display.timezone", d.Display.Timezone)
	v.SetDefault("display.markdown_style", d.Display.MarkdownStyle)
	v.SetDefault("search.overlap", d.Search.Overlap)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
}

// Load reads the config file at path on a fresh viper instance.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func Validate(cfg Config) error {
	return errors.Join(
		ValidateRegistry(cfg.Registry),
		ValidateCache(cfg.Cache),
		ValidateDisplay(cfg.Display),
		ValidateSearch(cfg.Search),
		ValidateTracing(cfg.Tracing),
	)
}

// ValidateRegistry checks registry configuration for errors.
func ValidateRegistry(r RegistryConfig) error {
	if r.Timeout < 0 {
		return fmt.Errorf("registry.timeout must not be negative, got %s", r.Timeout)
	}
	return nil
}

// ValidateCache checks cache configuration for errors.
func ValidateCache(c CacheConfig) error {
	if c.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.TTL)
	}
	return nil
}

// ValidateDisplay checks display configuration for errors.
func ValidateDisplay(d DisplayConfig) error {
	if _, err := d.Location(); err != nil {
		return fmt.Errorf("display.timezone: %w", err)
	}
	return nil
}

// ValidateSearch checks search configuration for errors.
func ValidateSearch(s SearchConfig) error {
	if _, err := fetcher.ParsePolicy(s.Overlap); err != nil {
		return fmt.Errorf("search.overlap: %w", err)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	// Validate SampleRate is in range [0.0, 1.0]
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	// Validate Exporter is a valid option
	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// OTLPEndpoint is required when Exporter is "otlp"
	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# leifetch configuration

# Labels shown by the widget
labels:
  search: Search                                             # Search button text
  empty: Please enter an LEI.                                # Shown when the identifier is empty
  invalid_length: An LEI must be exactly 20 characters long. # Shown for any other length

# Remote LEI registry
registry:
  base_url: https://api.gleif.org/api/v1
  timeout: 0s           # Per-lookup HTTP timeout, 0s = none
  # user_agent: leifetch

# In-memory cache of successful lookups (failures are never cached)
cache:
  enabled: false
  ttl: 10m

# Rendering
display:
  timezone: ""          # IANA zone for dates, e.g. Europe/London; empty = local time
  # markdown_style: dark  # glamour style for 'lookup --format markdown'; empty = auto

# What happens when a search is triggered while another is still loading:
#   discard-stale         - only the latest search's result is shown (default)
#   ignore-while-loading  - the new trigger is ignored
#   last-completion-wins  - whichever lookup finishes last is shown
search:
  overlap: discard-stale

# Theme configuration
# theme:
#   preset: nord        # default, dracula, nord, high-contrast
#   colors:
#     error: "#FF0000"
#     button.bg: "#1A5276"

# Distributed tracing of registry lookups
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/leifetch/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
