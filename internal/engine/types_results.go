package engine

import (
	"time"

	"github.com/danieljhkim/gridfill/internal/grid"
)

// RepairResult represents the outcome of a repair run.
type RepairResult struct {
	// RunID identifies this run in logs
	RunID string `json:"run_id"`

	// InputPath and OutputPath are the files read and written
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`

	// Rows and Cols are the grid dimensions
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// Repaired is the number of missing cells that were filled
	Repaired int `json:"repaired"`

	// Filled lists the repaired cells in the order they were filled
	Filled []grid.Coord `json:"filled"`

	// Unresolvable counts cells that had no neighbour in any direction and became 0
	Unresolvable int `json:"unresolvable"`

	// InputDigest and OutputDigest are SHA-256 digests of the bytes read and produced
	InputDigest  string `json:"input_digest"`
	OutputDigest string `json:"output_digest"`

	// StartedAt and Duration time the whole run
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`

	// DryRun is true when no output was written
	DryRun bool `json:"dry_run"`

	// Replaced is true when OutputPath already existed before the run
	Replaced bool `json:"replaced"`

	// Grid is the repaired grid
	Grid *grid.Grid `json:"-"`
}

// ScanResult lists the missing cells of a grid in processing order.
type ScanResult struct {
	InputPath string       `json:"input_path"`
	Rows      int          `json:"rows"`
	Cols      int          `json:"cols"`
	Missing   []grid.Coord `json:"missing"`
}
