package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/leifetch/internal/config"
)

var (
	labelSearch        string
	labelEmpty         string
	labelInvalidLength string
	labelDryRun        bool
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Show the widget labels",
	Long: `Show the labels the widget uses for the search button and the two
validation messages. Empty labels fall back to the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configErr != nil {
			return configErr
		}
		labels := cfg.Labels.FetcherLabels()
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "search: %s\n", labels.Search)
		_, _ = fmt.Fprintf(out, "empty: %s\n", labels.Empty)
		_, _ = fmt.Fprintf(out, "invalid_length: %s\n", labels.InvalidLength)
		return nil
	},
}

var labelsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save label overrides to the config file",
	Long: `Save label overrides to the config file. Only the flags given are changed;
other settings and comments in the file are kept. A running widget picks up
the new labels automatically. With --dry-run the change is printed as a diff
instead of being written.

Examples:
  leifetch labels set --search "Find"
  leifetch labels set --search "Find" --dry-run
  leifetch labels set --empty "Type an LEI first" --invalid-length "LEIs are 20 characters"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if labelSearch == "" && labelEmpty == "" && labelInvalidLength == "" {
			return errors.New("nothing to set: pass --search, --empty or --invalid-length")
		}

		path := viper.ConfigFileUsed()
		if path == "" {
			path = defaultConfigPath
		}

		labels := config.LabelsConfig{
			Search:        labelSearch,
			Empty:         labelEmpty,
			InvalidLength: labelInvalidLength,
		}

		if labelDryRun {
			current, updated, err := config.EditLabels(path, labels)
			if err != nil {
				return err
			}
			writeLineDiff(cmd.OutOrStdout(), string(current), string(updated))
			return nil
		}

		if err := config.SaveLabels(path, labels); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "labels saved to %s\n", path)
		return nil
	},
}

func init() {
	labelsSetCmd.Flags().StringVar(&labelSearch, "search", "", "Search button text")
	labelsSetCmd.Flags().StringVar(&labelEmpty, "empty", "", "Message shown when the identifier is empty")
	labelsSetCmd.Flags().StringVar(&labelInvalidLength, "invalid-length", "", "Message shown when the identifier is not 20 characters")
	labelsSetCmd.Flags().BoolVar(&labelDryRun, "dry-run", false, "Print the change as a diff without writing it")
	labelsCmd.AddCommand(labelsSetCmd)
	rootCmd.AddCommand(labelsCmd)
}

// writeLineDiff prints a line-level diff of before and after, prefixing
// removed lines with "-", added lines with "+" and unchanged lines with " ".
func writeLineDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			_, _ = fmt.Fprint(w, prefix, line)
			if !strings.HasSuffix(line, "\n") {
				_, _ = fmt.Fprintln(w)
			}
		}
	}
}
