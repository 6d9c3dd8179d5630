package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridfill/internal/engine"
)

var scanParse parseFlags

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "List missing cells in the order they would be repaired",
	Long: `Parse a delimited grid and list its missing cells without changing anything.

Cells are listed row by row, left to right, which is the order 'repair' fills them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd, &scanParse, nil)
		if err != nil {
			return err
		}

		result, err := newEngine().Scan(context.Background(), &engine.ScanRequest{
			InputPath: args[0],
			Options:   settings.Options(),
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		p := newPrinter(cmd.OutOrStdout())
		p.Section("Missing Cells")
		p.LabelValue("Grid", fmt.Sprintf("%d x %d", result.Rows, result.Cols))
		if len(result.Missing) == 0 {
			p.EmptyState("No missing cells")
			return nil
		}

		items := make([]string, 0, len(result.Missing))
		for _, c := range result.Missing {
			items = append(items, c.String())
		}
		p.Info(pluralize(len(result.Missing), "missing cell", "missing cells"))
		p.List(items, 1)
		return nil
	},
}

func init() {
	scanParse.register(scanCmd)
}
