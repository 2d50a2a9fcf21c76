// Package services implements the application operations on top of the
// entity store. Read and write paths run through a configurable
// simulated latency so the local build target behaves like the remote
// one; entity mutations are announced on the event bus.
package services

import (
	"context"
	"time"
)

// simulate blocks for d, or returns early with the context error if
// the caller gives up first. A zero d is free, which is what tests use.
func simulate(ctx context.Context, d time.Duration) error {
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
