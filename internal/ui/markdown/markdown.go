// Package markdown renders entity records as terminal markdown with glamour.
package markdown

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"

	"github.com/zjrosen/leifetch/internal/entity"
	"github.com/zjrosen/leifetch/internal/presentation"
)

// AutoStyle picks a dark or light style from the terminal background.
const AutoStyle = glamourstyles.AutoStyle

// noMarginStyle removes the document margin glamour adds by default.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Styles returns the accepted style names, sorted.
func Styles() []string {
	names := []string{AutoStyle}
	for name := range glamourstyles.DefaultStyles {
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// ValidStyle reports whether style can be passed to New. "" is valid.
func ValidStyle(style string) bool {
	return style == "" || slices.Contains(Styles(), style)
}

// Renderer renders markdown at a fixed wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
}

// New creates a renderer wrapping at width. style is a glamour standard
// style name; "" behaves like AutoStyle.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = AutoStyle
	}
	if !ValidStyle(style) {
		return nil, fmt.Errorf("unknown markdown style %q (expected one of %v)", style, Styles())
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r}, nil
}

// Render renders md, trimming the blank lines glamour puts around blocks.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n") + "\n", nil
}

// RenderRecord renders rec as a heading followed by its field list.
func (r *Renderer) RenderRecord(rec entity.DisplayRecord) (string, error) {
	return r.Render(presentation.Markdown(rec))
}
