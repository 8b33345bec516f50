package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/leifetch/internal/fetcher"
	"github.com/zjrosen/leifetch/internal/lookup"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	require.Equal(t, fetcher.DefaultLabels(), d.Labels.FetcherLabels())
	require.Equal(t, lookup.DefaultBaseURL, d.Registry.BaseURL)
	require.Zero(t, d.Registry.Timeout)
	require.False(t, d.Cache.Enabled)
	require.Equal(t, 10*time.Minute, d.Cache.TTL)
	require.Equal(t, "discard-stale", d.Search.Overlap)
	require.False(t, d.Tracing.Enabled)
	require.NoError(t, Validate(d))
}

func TestLabelsConfig_FetcherLabelsFillsEmpty(t *testing.T) {
	labels := LabelsConfig{Search: "Find"}.FetcherLabels()

	require.Equal(t, "Find", labels.Search)
	require.Equal(t, fetcher.DefaultLabels().Empty, labels.Empty)
	require.Equal(t, fetcher.DefaultLabels().InvalidLength, labels.InvalidLength)
}

func TestDisplayConfig_Location(t *testing.T) {
	loc, err := DisplayConfig{}.Location()
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)

	loc, err = DisplayConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())

	_, err = DisplayConfig{Timezone: "Mars/Olympus_Mons"}.Location()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty overlap uses default", mutate: func(c *Config) { c.Search.Overlap = "" }},
		{name: "bad overlap", mutate: func(c *Config) { c.Search.Overlap = "first-wins" }, wantErr: "search.overlap"},
		{name: "bad timezone", mutate: func(c *Config) { c.Display.Timezone = "Nowhere/Land" }, wantErr: "display.timezone"},
		{name: "negative timeout", mutate: func(c *Config) { c.Registry.Timeout = -time.Second }, wantErr: "registry.timeout"},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, wantErr: "cache.ttl"},
		{name: "unknown exporter", mutate: func(c *Config) { c.Tracing.Exporter = "zipkin" }, wantErr: "tracing.exporter"},
		{name: "sample rate too high", mutate: func(c *Config) { c.Tracing.SampleRate = 1.5 }, wantErr: "tracing.sample_rate"},
		{name: "sample rate negative", mutate: func(c *Config) { c.Tracing.SampleRate = -0.1 }, wantErr: "tracing.sample_rate"},
		{
			name: "otlp without endpoint",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = "otlp"
				c.Tracing.OTLPEndpoint = ""
			},
			wantErr: "tracing.otlp_endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Search.Overlap = "nope"
	cfg.Cache.TTL = -time.Minute

	err := Validate(cfg)
	require.ErrorContains(t, err, "search.overlap")
	require.ErrorContains(t, err, "cache.ttl")
}

func TestTracingConfig_ProviderConfig(t *testing.T) {
	got := TracingConfig{Enabled: true, Exporter: "stdout", SampleRate: 0.5}.ProviderConfig()

	require.True(t, got.Enabled)
	require.Equal(t, "stdout", got.Exporter)
	require.Equal(t, 0.5, got.SampleRate)
	require.Equal(t, "localhost:4317", got.OTLPEndpoint)
	require.Equal(t, DefaultTracesFilePath(), got.FilePath)
	require.Equal(t, "leifetch", got.ServiceName)
}

func TestTracingConfig_ZeroSampleRateKept(t *testing.T) {
	cfg := Defaults()
	cfg.Tracing.SampleRate = 0
	require.NoError(t, Validate(cfg))
	require.Zero(t, cfg.Tracing.ProviderConfig().SampleRate)
}

func TestThemeConfig_FlattenedColors(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"status.inactive": "#FF0000",
		"button": map[string]any{
			"bg": map[any]any{"focus": "#111111"},
		},
		"ignored": 42,
	}}

	require.Equal(t, map[string]string{
		"status.inactive": "#FF0000",
		"button.bg.focus": "#111111",
	}, theme.FlattenedColors())
}

func TestLoad_DefaultTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	require.Equal(t, Defaults().Labels, cfg.Labels)
	require.Equal(t, Defaults().Registry.BaseURL, cfg.Registry.BaseURL)
	require.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "discard-stale", cfg.Search.Overlap)
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `labels:
  empty: Type something
registry:
  timeout: 5s
cache:
  enabled: true
display:
  timezone: Asia/Tokyo
theme:
  preset: nord
  colors:
    status.inactive: "#FF0000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Type something", cfg.Labels.Empty)
	require.Equal(t, Defaults().Labels.Search, cfg.Labels.Search)
	require.Equal(t, 5*time.Second, cfg.Registry.Timeout)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, "Asia/Tokyo", cfg.Display.Timezone)
	require.Equal(t, "nord", cfg.Theme.Preset)
	require.Equal(t, "#FF0000", cfg.Theme.FlattenedColors()["status.inactive"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config")
}

func TestWriteDefaultConfig_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".leifetch", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
