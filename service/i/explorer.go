package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	"github.com/google/uuid"
)

// Explorer runs explorations of submitted worlds and keeps their records.
type Explorer interface {
	// Explore parses world, explores it immediately and returns the finished run.
	Explore(ctx context.Context, owner, world string) (*dmn.Run, error)

	// Submit validates world, stores a pending run and queues it.
	Submit(ctx context.Context, owner, world string) (*dmn.Run, error)

	// Run returns the run with the given ID.
	Run(ctx context.Context, id uuid.UUID) (*dmn.Run, error)

	// Runs lists the newest runs of owner.
	Runs(ctx context.Context, owner string) ([]*dmn.Run, error)

	// RandomWorld generates a world description.
	RandomWorld(req WorldRequest) (string, error)
}

// WorldRequest describes a world to generate.
type WorldRequest struct {
	Width   int
	Height  int
	PitProb float32
	Gold    int
	Wumpus  bool
	Seed    int64
}
