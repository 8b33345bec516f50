package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLabels_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveLabels(configPath, LabelsConfig{Search: "Find", Empty: "Enter an LEI"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "labels:")
	assert.Contains(t, string(data), "search: Find")
	assert.Contains(t, string(data), "empty: Enter an LEI")
	assert.NotContains(t, string(data), "invalid_length")
}

func TestSaveLabels_PreservesOtherConfigAndComments(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# leifetch configuration
labels:
  search: Search # button text
  empty: Please enter an LEI.
registry:
  base_url: https://example.test/api # staging registry
search:
  overlap: ignore-while-loading
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	err := SaveLabels(configPath, LabelsConfig{Search: "Look up", InvalidLength: "Twenty characters, please"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# leifetch configuration")
	assert.Contains(t, content, "search: Look up # button text")
	assert.Contains(t, content, "empty: Please enter an LEI.")
	assert.Contains(t, content, "invalid_length: Twenty characters, please")
	assert.Contains(t, content, "base_url: https://example.test/api # staging registry")
	assert.Contains(t, content, "overlap: ignore-while-loading")
}

func TestSaveLabels_Roundtrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600))

	want := LabelsConfig{Search: "true", Empty: "Nothing: typed", InvalidLength: "# not a comment"}
	require.NoError(t, SaveLabels(configPath, want))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Labels)
	assert.Equal(t, "discard-stale", cfg.Search.Overlap)
}

func TestSaveLabels_ReplacesNonMappingLabels(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("labels: nope\n"), 0o600))

	require.NoError(t, SaveLabels(configPath, LabelsConfig{Search: "Go"}))

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, "Go", v.GetString("labels.search"))
}

func TestSaveLabels_RejectsNonMappingDocument(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("- a\n- b\n"), 0o600))

	err := SaveLabels(configPath, LabelsConfig{Search: "Go"})
	require.ErrorContains(t, err, "not a mapping")
}

func TestSaveLabels_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("labels: [unclosed\n"), 0o600))

	err := SaveLabels(configPath, LabelsConfig{Search: "Go"})
	require.ErrorContains(t, err, "parsing config")
}

func TestSaveLabels_AtomicWrite(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	require.NoError(t, SaveLabels(configPath, LabelsConfig{Search: "One"}))
	require.NoError(t, SaveLabels(configPath, LabelsConfig{Search: "Two"}))

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.Contains(entry.Name(), ".tmp."), "temp file left behind: %s", entry.Name())
	}

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "search: Two")
}

func TestSaveLabels_CreatesDirectory(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "subdir", "nested", "config.yaml")

	require.NoError(t, SaveLabels(configPath, LabelsConfig{Search: "Go"}))

	_, err := os.Stat(configPath)
	require.NoError(t, err)
}

func TestEditLabels_DoesNotWrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := "labels:\n  search: Go\n"
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	current, updated, err := EditLabels(configPath, LabelsConfig{Search: "Find"})
	require.NoError(t, err)
	assert.Equal(t, initial, string(current))
	assert.Equal(t, "labels:\n  search: Find\n", string(updated))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, initial, string(data))
}

func TestEditLabels_MissingFile(t *testing.T) {
	current, updated, err := EditLabels(filepath.Join(t.TempDir(), "missing.yaml"), LabelsConfig{Empty: "Type"})
	require.NoError(t, err)
	assert.Empty(t, current)
	assert.Equal(t, "labels:\n  empty: Type\n", string(updated))
}
