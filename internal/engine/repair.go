package engine

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danieljhkim/gridfill/internal/clock"
	"github.com/danieljhkim/gridfill/internal/coordset"
	"github.com/danieljhkim/gridfill/internal/csvio"
	"github.com/danieljhkim/gridfill/internal/grid"
	"github.com/danieljhkim/gridfill/internal/repair"
)

// Repair reads the grid at req.InputPath, fills every missing cell and writes
// the result to the output path. Nothing is written if any stage fails.
func (e *Engine) Repair(ctx context.Context, req *RepairRequest) (*RepairResult, error) {
	if req == nil {
		return nil, fmt.Errorf("nil repair request: %w", ErrValidation)
	}

	result := &RepairResult{
		RunID:      uuid.NewString(),
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		StartedAt:  e.clock.Now(),
		DryRun:     req.DryRun,
	}
	if result.OutputPath == "" {
		if req.InputPath == "-" {
			result.OutputPath = "-"
		} else {
			result.OutputPath = csvio.DefaultOutputPath(req.InputPath)
		}
	}
	if result.OutputPath == req.InputPath && req.InputPath != "-" {
		return nil, fmt.Errorf("output would overwrite input %s: %w", req.InputPath, ErrValidation)
	}

	log := e.logger.With(zap.String("run_id", result.RunID), zap.String("input", req.InputPath))

	g, data, err := e.loadGrid(ctx, req.InputPath, req.Options)
	if err != nil {
		return nil, err
	}
	result.Rows, result.Cols = g.Dims()
	result.InputDigest = e.hasher.Sum(data)

	missing := coordset.FromGrid(g)
	result.Filled = make([]grid.Coord, 0, missing.Len())
	log.Info("repair started",
		zap.Int("rows", result.Rows),
		zap.Int("cols", result.Cols),
		zap.Int("missing", missing.Len()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repair.Repair(g, missing, repair.WithObserver(func(s repair.Step) {
		result.Repaired++
		result.Filled = append(result.Filled, s.Coord)
		if !s.Up.Found && !s.Down.Found && !s.Left.Found && !s.Right.Found {
			result.Unresolvable++
		}
		log.Debug("cell repaired",
			zap.Int("row", s.Coord.Row),
			zap.Int("col", s.Coord.Col),
			neighborField("up", s.Up),
			neighborField("down", s.Down),
			neighborField("left", s.Left),
			neighborField("right", s.Right),
			zap.Float64("value", s.Value),
			zap.Int("remaining", s.Remaining))
	}))
	result.Grid = g

	var out bytes.Buffer
	if err := csvio.Write(&out, g, req.Options); err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	result.OutputDigest = e.hasher.Sum(out.Bytes())

	if result.OutputPath != "-" {
		exists, err := e.fs.Exists(result.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to check output: %w", err)
		}
		result.Replaced = exists
	}

	if !req.DryRun {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.fs.AtomicWrite(result.OutputPath, out.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
	}

	result.Duration = clock.Elapsed(e.clock, result.StartedAt)
	log.Info("repair finished",
		zap.Int("repaired", result.Repaired),
		zap.Int("unresolvable", result.Unresolvable),
		zap.String("output", result.OutputPath),
		zap.Bool("dry_run", req.DryRun),
		zap.Bool("replaced", result.Replaced),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// neighborField logs a walk result, or a missing marker when the walk found nothing.
func neighborField(key string, n repair.Neighbor) zap.Field {
	if !n.Found {
		return zap.String(key, "<out of bounds>")
	}
	return zap.Float64(key, n.Value)
}
