package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	"github.com/google/uuid"
)

// RunRepo defines the interface for run persistence operations.
type RunRepo interface {
	// Save inserts or updates a run in the repository.
	Save(ctx context.Context, run *dmn.Run) error

	// ByID retrieves a run by its unique ID.
	// Returns dmn.ErrRunNotFound if there is no such run.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Run, error)

	// ByOwner lists the newest runs of owner, at most limit of them.
	ByOwner(ctx context.Context, owner string, limit int) ([]*dmn.Run, error)
}
