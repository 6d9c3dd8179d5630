package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danieljhkim/gridfill/internal/coordset"
)

// Scan lists the missing cells of the grid at req.InputPath in the order a
// repair would process them.
func (e *Engine) Scan(ctx context.Context, req *ScanRequest) (*ScanResult, error) {
	if req == nil {
		return nil, fmt.Errorf("nil scan request: %w", ErrValidation)
	}

	g, _, err := e.loadGrid(ctx, req.InputPath, req.Options)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		InputPath: req.InputPath,
		Missing:   coordset.FromGrid(g).All(),
	}
	result.Rows, result.Cols = g.Dims()

	e.logger.Debug("grid scanned",
		zap.String("input", req.InputPath),
		zap.Int("missing", len(result.Missing)))
	return result, nil
}
