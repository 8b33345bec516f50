package fetcher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/leifetch/internal/entity"
	"github.com/zjrosen/leifetch/internal/lei"
	"github.com/zjrosen/leifetch/internal/presentation"
	"github.com/zjrosen/leifetch/internal/ui/styles"
)

const title = "LEI Lookup"

// View renders the widget.
func (m Model) View() string {
	width := max(m.width, 24)

	sections := []string{
		styles.TitleStyle.Render(title),
		m.renderInput(width),
		m.renderControls(),
	}
	if m.state.Err != "" {
		sections = append(sections, styles.ErrorStyle.Render(wordwrap.String(m.state.Err, width)))
	}
	if m.state.Entity != nil {
		sections = append(sections, renderDetails(*m.state.Entity, width))
	}
	sections = append(sections, m.help.View(m.keys))

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderInput(width int) string {
	m.input.Width = max(width-4, 1)
	hint := fmt.Sprintf("%d/%d", utf8.RuneCountInString(m.input.Value()), lei.Length)
	box := styles.RenderSection([]string{" " + m.input.View()}, "LEI", hint, width, m.focus == focusInput)
	return zone.Mark(zoneInput, box)
}

func (m Model) renderControls() string {
	buttonStyle := styles.ButtonStyle
	if m.focus == focusButton {
		buttonStyle = styles.ButtonFocusedStyle
	}
	button := zone.Mark(zoneSearchButton, buttonStyle.Render(m.fetcher.Labels().Search))

	if !m.state.Loading {
		return button
	}
	return button + "  " + m.spinner.View() + " " + styles.FieldLabelStyle.Render("Loading...")
}

// renderDetails renders the details list inside a titled section. Long
// values wrap under their label; anything still too wide is truncated.
func renderDetails(r entity.DisplayRecord, width int) string {
	innerWidth := max(width-4, 8) // borders and one space of padding each side

	var rows []string
	for i, field := range presentation.Fields(r) {
		switch i {
		case 0:
			rows = append(rows, styles.EntityNameStyle.Render(ansi.Truncate(field.Value, innerWidth, "…")))
			continue
		case 1:
			label := field.Label + ": "
			rows = append(rows, styles.FieldLabelStyle.Render(label)+
				styles.StatusStyle(field.Value).Render(ansi.Truncate(field.Value, innerWidth-len(label), "…")))
			continue
		}
		rows = append(rows, renderField(field, innerWidth)...)
	}

	for i, row := range rows {
		rows[i] = " " + row
	}
	return styles.RenderSection(rows, "Legal Entity", "", width, false)
}

func renderField(field presentation.Field, innerWidth int) []string {
	label := field.Label + ": "
	labelWidth := lipgloss.Width(label)
	valueWidth := innerWidth - labelWidth

	if valueWidth < 10 {
		// Too narrow to align; put the value on its own line.
		return []string{
			styles.FieldLabelStyle.Render(ansi.Truncate(strings.TrimSuffix(label, " "), innerWidth, "…")),
			styles.FieldValueStyle.Render(ansi.Truncate(field.Value, innerWidth, "…")),
		}
	}

	lines := strings.Split(wordwrap.String(field.Value, valueWidth), "\n")
	out := make([]string, 0, len(lines))
	indent := strings.Repeat(" ", labelWidth)
	for i, line := range lines {
		value := styles.FieldValueStyle.Render(ansi.Truncate(line, valueWidth, "…"))
		if i == 0 {
			out = append(out, styles.FieldLabelStyle.Render(label)+value)
		} else {
			out = append(out, indent+value)
		}
	}
	return out
}
