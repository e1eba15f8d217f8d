package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhase(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Campaign{StartTime: start, EndTime: start.Add(time.Hour)}

	assert.Equal(t, PhasePending, c.Phase(start.Add(-time.Nanosecond)))
	assert.Equal(t, PhaseOpen, c.Phase(start))
	assert.Equal(t, PhaseOpen, c.Phase(start.Add(time.Hour)))
	assert.Equal(t, PhaseClosed, c.Phase(start.Add(time.Hour+time.Nanosecond)))
}

func TestUnresolved(t *testing.T) {
	assert.False(t, (&Campaign{}).Unresolved())
	assert.True(t, (&Campaign{EscrowBalance: 1}).Unresolved())
	assert.True(t, (&Campaign{Proceeds: 1}).Unresolved())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("purchase X: %w", fmt.Errorf("%w: %w", ErrPaymentFailed, ErrInsufficientFunds))
	assert.Equal(t, KindTransfer, KindOf(wrapped))
	assert.Equal(t, "payment_failed", CodeOf(wrapped))

	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("disk full")))
	assert.Equal(t, "internal", CodeOf(fmt.Errorf("disk full")))
	assert.Equal(t, KindReentrancy, KindOf(ErrReentrantCall))
}
