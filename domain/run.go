// Package dmn holds the persisted records of the exploration service.
package dmn

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-wumpus/game"
	"github.com/google/uuid"
)

var (
	ErrRunNotFound = errors.New("run not found")
)

// RunStatus represents the lifecycle state of an exploration run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one exploration of a submitted world.
type Run struct {
	ID            uuid.UUID         `bson:"_id" json:"id"`
	Owner         string            `bson:"owner" json:"owner"`
	World         string            `bson:"world" json:"world"`
	Status        RunStatus         `bson:"status" json:"status"`
	Events        []game.StepResult `bson:"events" json:"events"`
	Final         *game.Snapshot    `bson:"final,omitempty" json:"final,omitempty"`
	GoldCollected int               `bson:"goldCollected" json:"gold_collected"`
	Error         string            `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updated_at"`
}

// NewRun creates a pending run of world owned by owner.
func NewRun(owner, world string) *Run {
	now := time.Now().UTC()
	return &Run{
		ID:        uuid.New(),
		Owner:     owner,
		World:     world,
		Status:    RunStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Start marks the run as being explored.
func (r *Run) Start() {
	r.Status = RunStatusRunning
	r.UpdatedAt = time.Now().UTC()
}

// Complete records the outcome of a finished exploration.
func (r *Run) Complete(events []game.StepResult, final game.Snapshot) {
	r.Status = RunStatusCompleted
	r.Events = events
	r.Final = &final
	r.GoldCollected = final.GoldCollected
	r.Error = ""
	r.UpdatedAt = time.Now().UTC()
}

// Fail records why the run could not be explored.
func (r *Run) Fail(err error) {
	r.Status = RunStatusFailed
	r.Error = err.Error()
	r.UpdatedAt = time.Now().UTC()
}

// Done reports whether the run reached a terminal status.
func (r *Run) Done() bool {
	return r.Status == RunStatusCompleted || r.Status == RunStatusFailed
}
