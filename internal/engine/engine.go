// Package engine provides the orchestration behind gridfill commands.
//
// The engine sits between the CLI and the repair core. It reads the input
// through an fsops.FS, parses it with csvio, discovers the missing cells,
// runs the repair and writes the result atomically. Every dependency is an
// interface so tests can run the whole pipeline in memory.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Repair: read, repair and write one grid
//   - Scan: list missing cells in processing order without repairing
package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/danieljhkim/gridfill/internal/clock"
	"github.com/danieljhkim/gridfill/internal/csvio"
	"github.com/danieljhkim/gridfill/internal/fsops"
	"github.com/danieljhkim/gridfill/internal/grid"
	"github.com/danieljhkim/gridfill/internal/hash"
)

// Engine orchestrates gridfill operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	logger *zap.Logger
}

// New creates a new Engine with the given dependencies. A nil logger
// discards all log output.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fs:     fs,
		hasher: hasher,
		clock:  clk,
		logger: logger,
	}
}

// loadGrid reads and parses the grid at path, returning it with the raw bytes.
func (e *Engine) loadGrid(ctx context.Context, path string, opts csvio.Options) (*grid.Grid, []byte, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("input path is required: %w", ErrValidation)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	data, err := e.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("input %s: %w", path, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to read input: %w", err)
	}

	g, err := csvio.Read(bytes.NewReader(data), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", path, ErrMalformedGrid, err)
	}
	return g, data, nil
}
