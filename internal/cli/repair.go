package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridfill/internal/csvio"
	"github.com/danieljhkim/gridfill/internal/engine"
	"github.com/danieljhkim/gridfill/internal/grid"
)

var (
	repairParse     parseFlags
	repairOutput    string
	repairPrecision int
	repairDryRun    bool
	repairShow      bool
)

var repairCmd = &cobra.Command{
	Use:   "repair <file>",
	Short: "Fill the missing cells of a grid file",
	Long: `Read a delimited grid, fill every missing cell and write the result.

Missing cells are handled row by row, left to right. Each one becomes the
average of the nearest known value above, below, left and right of it; cells
filled earlier count as known. A cell with no known value in any direction
becomes 0.

The output defaults to <file> with ".csv" replaced by "_interpolated.csv".
Use "-" as <file> or --output to read stdin or write stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd, &repairParse, &repairPrecision)
		if err != nil {
			return err
		}

		req := &engine.RepairRequest{
			InputPath:  args[0],
			OutputPath: repairOutput,
			Options:    settings.Options(),
			DryRun:     repairDryRun,
		}

		result, err := newEngine().Repair(context.Background(), req)
		if err != nil {
			return err
		}

		// Keep stdout clean when the grid itself is written there
		out := cmd.OutOrStdout()
		if result.OutputPath == "-" && !result.DryRun {
			out = cmd.ErrOrStderr()
		}

		if jsonOutput {
			return outputJSON(out, result)
		}
		printRepairResult(newPrinter(out), result, req.Options)
		return nil
	},
}

func printRepairResult(p *printer, result *engine.RepairResult, opts csvio.Options) {
	filled := pluralize(result.Repaired, "cell", "cells")
	if result.DryRun {
		p.Section("Dry Run")
		p.Info(fmt.Sprintf("Would repair %s", filled))
	} else {
		p.Success(fmt.Sprintf("Repaired %s", filled))
		p.LabelValue("Output", result.OutputPath)
	}
	p.LabelValue("Grid", fmt.Sprintf("%d x %d", result.Rows, result.Cols))
	p.LabelValue("Input SHA-256", result.InputDigest)
	p.LabelValue("Output SHA-256", result.OutputDigest)
	p.LabelValue("Duration", result.Duration.String())

	if result.Replaced {
		verb := "Replaced"
		if result.DryRun {
			verb = "Would replace"
		}
		p.Warning(fmt.Sprintf("%s existing file %s", verb, result.OutputPath))
	}
	if result.Unresolvable > 0 {
		p.Warning(fmt.Sprintf("%s had no known neighbour and were set to 0",
			pluralize(result.Unresolvable, "cell", "cells")))
	}

	if repairShow && result.Grid != nil {
		p.Section("Repaired Grid")
		showGrid(p, result.Grid, result.Filled, opts.Precision)
	}
}

// showGrid prints g as a table with the filled cells highlighted.
func showGrid(p *printer, g *grid.Grid, filled []grid.Coord, precision int) {
	rows, cols := g.Dims()
	headers := make([]string, cols)
	for c := range headers {
		headers[c] = strconv.Itoa(c)
	}

	cells := make([][]string, rows)
	for r, row := range g.Rows() {
		cells[r] = make([]string, cols)
		for c, cell := range row {
			cells[r][c] = csvio.FormatValue(cell.Value, precision)
		}
	}

	wasFilled := make(map[grid.Coord]bool, len(filled))
	for _, c := range filled {
		wasFilled[c] = true
	}
	p.Table(headers, cells, func(r, c int) bool {
		return wasFilled[grid.Coord{Row: r, Col: c}]
	})
}

func init() {
	repairParse.register(repairCmd)
	repairCmd.Flags().StringVarP(&repairOutput, "output", "o", "", "Output path (default <file>_interpolated.csv, \"-\" for stdout)")
	repairCmd.Flags().IntVarP(&repairPrecision, "precision", "p", csvio.DefaultPrecision, "Decimal places written (negative disables rounding)")
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "Repair in memory without writing output")
	repairCmd.Flags().BoolVar(&repairShow, "show", false, "Print the repaired grid")
}

