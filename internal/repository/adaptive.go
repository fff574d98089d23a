package repository

import (
	"context"

	"github.com/focusnest/focusgate/internal/domain"
)

// Adaptive defines the interface for the rolling challenge-performance
// window. State is per device, not per app.
type Adaptive interface {
	GetAdaptiveState(ctx context.Context) (domain.AdaptiveState, error)
	// AppendResult records one outcome, trimming stored history to the
	// most recent domain.AdaptiveWindowSize entries.
	AppendResult(ctx context.Context, correct bool, solveTimeMs int64) error
}
