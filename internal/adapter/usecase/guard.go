package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"launchpad/internal/core/domain"
)

type guardKey struct{}

// guardToken marks a context as running inside the settlement guard.
type guardToken struct {
	active atomic.Bool
}

// guard is the process-wide re-entrancy lock shared by every mutating
// operation regardless of campaign. Independent callers queue on it; a
// call made with a context that already holds it is rejected at once. A
// call that lost that context waits and fails with ErrSettlementBusy once
// the timeout passes.
type guard struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

func newGuard(timeout time.Duration) *guard {
	return &guard{sem: semaphore.NewWeighted(1), timeout: timeout}
}

// enter acquires the guard and returns a context carrying it together
// with the function that releases it.
func (g *guard) enter(ctx context.Context) (context.Context, func(), error) {
	if held(ctx) {
		return nil, nil, domain.ErrReentrantCall
	}

	acquireCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if err := g.sem.Acquire(acquireCtx, 1); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrSettlementBusy, err)
	}

	tok := &guardToken{}
	tok.active.Store(true)
	release := func() {
		tok.active.Store(false)
		g.sem.Release(1)
	}
	return context.WithValue(ctx, guardKey{}, tok), release, nil
}

func held(ctx context.Context) bool {
	tok, ok := ctx.Value(guardKey{}).(*guardToken)
	return ok && tok.active.Load()
}
