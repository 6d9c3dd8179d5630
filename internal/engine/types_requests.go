package engine

import "github.com/danieljhkim/gridfill/internal/csvio"

// RepairRequest represents a request to repair one grid file.
type RepairRequest struct {
	// InputPath is the delimited text file to repair ("-" for stdin)
	InputPath string

	// OutputPath is where the repaired grid is written; empty derives it
	// from InputPath, "-" writes to stdout
	OutputPath string

	// Options controls parsing and formatting
	Options csvio.Options

	// DryRun repairs in memory without writing output
	DryRun bool
}

// ScanRequest represents a request to list the missing cells of a grid.
type ScanRequest struct {
	// InputPath is the delimited text file to scan ("-" for stdin)
	InputPath string

	// Options controls parsing
	Options csvio.Options
}
