package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/leifetch/internal/fetcher"
	"github.com/zjrosen/leifetch/internal/presentation"
	"github.com/zjrosen/leifetch/internal/ui/markdown"
)

const markdownWidth = 80

var lookupFormat string

var lookupCmd = &cobra.Command{
	Use:   "lookup [LEI]",
	Short: "Look up a single LEI and print the entity",
	Long: `Look up a Legal Entity Identifier and print the registered entity.

The identifier is validated the same way the widget validates it: it must be
exactly 20 characters. On failure the error message is printed and the
command exits non-zero.

Examples:
  # Plain text, one field per line
  leifetch lookup 5493001KJTIIGC8Y1R12

  # JSON for scripting
  leifetch lookup 5493001KJTIIGC8Y1R12 --format json | jq .legal_name

  # Rendered markdown
  leifetch lookup 5493001KJTIIGC8Y1R12 -f markdown`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupFormat, "format", "f", "text", "Output format: text, json or markdown")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, err := presentation.ParseFormat(lookupFormat)
	if err != nil {
		return err
	}
	c, err := loadedConfig()
	if err != nil {
		return err
	}

	f, shutdown, err := newFetcher(c)
	if err != nil {
		return err
	}
	defer shutdown()

	var identifier string
	if len(args) == 1 {
		identifier = args[0]
	}

	state := f.Input(fetcher.State{}, identifier)
	state = f.Run(cmd.Context(), state)
	if state.Err != "" {
		return errors.New(state.Err)
	}
	if state.Entity == nil {
		return fmt.Errorf("no entity returned for %q", identifier)
	}

	out := cmd.OutOrStdout()
	if format != presentation.FormatMarkdown {
		return presentation.NewFormatter(out).Format(format, *state.Entity)
	}

	renderer, err := markdown.New(markdownWidth, c.Display.MarkdownStyle)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	rendered, err := renderer.RenderRecord(*state.Entity)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
