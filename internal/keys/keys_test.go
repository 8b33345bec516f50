package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "Search uses enter", binding: km.Search, expected: []string{"enter"}},
		{name: "Clear uses ctrl+l", binding: km.Clear, expected: []string{"ctrl+l"}},
		{name: "FocusNext uses tab", binding: km.FocusNext, expected: []string{"tab"}},
		{name: "FocusPrev uses shift+tab", binding: km.FocusPrev, expected: []string{"shift+tab"}},
		{name: "Help uses f1", binding: km.Help, expected: []string{"f1"}},
		{name: "Quit uses esc and ctrl+c", binding: km.Quit, expected: []string{"esc", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
			require.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestDefaultKeyMap_NoPrintableKeys(t *testing.T) {
	km := DefaultKeyMap()
	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				require.Greater(t, len(k), 1, "binding %q would swallow typed input", k)
			}
		}
	}
}

func TestDefaultKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	require.Len(t, km.ShortHelp(), 4)
	require.Len(t, km.FullHelp(), 3)
}
