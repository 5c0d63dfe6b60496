package delay

import (
	"context"
	"time"
)

// Simulate menahan eksekusi selama d (di-skala persen) untuk meniru latensi backend.
// Menghormati pembatalan context; scale 0 berarti tanpa delay sama sekali.
func Simulate(ctx context.Context, d time.Duration, scalePercent int) error {
	if scalePercent <= 0 {
		return ctx.Err()
	}
	scaled := d * time.Duration(scalePercent) / 100
	if scaled <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(scaled)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
