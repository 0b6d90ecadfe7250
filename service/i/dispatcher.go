package i

import (
	"context"

	"github.com/google/uuid"
)

// Dispatcher queues runs for background exploration.
type Dispatcher interface {
	// PushToQueue schedules the run with the given ID.
	PushToQueue(ctx context.Context, id uuid.UUID) error

	// SetDispatchHandler sets the function receiving batches of dequeued run IDs.
	SetDispatchHandler(func(context.Context, []uuid.UUID))
}
