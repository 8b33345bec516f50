package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderSection renders content inside a rounded border with the title
// inlined in the top edge: ╭─ Title (hint) ───╮. Rows wider than the
// inner width are expected to be truncated by the caller.
func RenderSection(content []string, title, hint string, width int, focused bool) string {
	var borderColor lipgloss.TerminalColor = SectionBorderColor
	if focused {
		borderColor = SectionBorderFocusColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(borderColor)
	hintStyle := lipgloss.NewStyle().Foreground(LabelColor)

	innerWidth := max(width-2, 1)

	var top string
	if title == "" {
		top = borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	} else {
		titleLen := lipgloss.Width(title)
		if hint != "" {
			titleLen += lipgloss.Width(hint) + 3 // " (" + ")"
		}
		dashesAfter := max(innerWidth-titleLen-3, 0) // "─ " before and " " after

		top = borderStyle.Render(borderTopLeft+borderHorizontal+" ") + titleStyle.Render(title)
		if hint != "" {
			top += " " + hintStyle.Render("("+hint+")")
		}
		top += borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashesAfter) + borderTopRight)
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top)
	for _, row := range content {
		padding := ""
		if w := lipgloss.Width(row); w < innerWidth {
			padding = strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render(borderVertical)+row+padding+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}
