package services

import (
	"context"
	"time"
)

// waitFor stands in for the network round-trips this app fakes. It aborts
// when the owning request goes away so no state is mutated afterwards.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
