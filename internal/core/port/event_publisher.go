package port

import (
	"context"
	"time"

	"launchpad/internal/core/domain"
)

// EventPublisher delivers committed observations to external consumers.
// Publishing happens after commit and cannot fail the operation.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

// Clock supplies the logical time used for sale windows.
type Clock interface {
	Now() time.Time
}
