package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/zjrosen/leifetch/internal/entity"
)

// Format selects how a record is written.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates s. An empty string yields FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, json or markdown)", s)
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// Format writes r in the given format. Markdown is written as source; the
// caller renders it for the terminal.
func (f *Formatter) Format(format Format, r entity.DisplayRecord) error {
	switch format {
	case FormatJSON:
		return f.FormatJSON(r)
	case FormatMarkdown:
		_, err := io.WriteString(f.writer, Markdown(r))
		return err
	default:
		return f.FormatText(r)
	}
}

// FormatText writes one field per line.
func (f *Formatter) FormatText(r entity.DisplayRecord) error {
	for _, field := range Fields(r) {
		if _, err := fmt.Fprintln(f.writer, field.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatJSON writes r as indented JSON.
func (f *Formatter) FormatJSON(r entity.DisplayRecord) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// Markdown returns r as a markdown document: the name as a heading followed
// by a bulleted list of the remaining fields.
func Markdown(r entity.DisplayRecord) string {
	fields := Fields(r)

	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(escapeMarkdown(fields[0].Value))
	sb.WriteString("\n\n")
	for _, field := range fields[1:] {
		fmt.Fprintf(&sb, "- **%s:** %s\n", field.Label, escapeMarkdown(field.Value))
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"&", `\&`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
