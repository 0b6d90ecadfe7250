package service

import (
	"context"
	"errors"
	"io"
	"testing"

	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	logger "github.com/beka-birhanu/vinom-wumpus/infrastruture/log"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/repo"
	"github.com/beka-birhanu/vinom-wumpus/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-wumpus/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) i.Logger {
	t.Helper()
	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)
	return l
}

// failingRepo fails every write.
type failingRepo struct {
	*repo.MemoryRunRepo
}

var errStoreDown = errors.New("store down")

func (f failingRepo) Save(context.Context, *dmn.Run) error {
	return errStoreDown
}

// failingQueue refuses every enqueue.
type failingQueue struct {
	*sortedstorage.MemorySortedQueue
}

func (f failingQueue) Enqueue(context.Context, string, float64, string) error {
	return errStoreDown
}

// recordingDispatcher remembers pushed IDs without processing them.
type recordingDispatcher struct {
	pushed  []uuid.UUID
	handler func(context.Context, []uuid.UUID)
}

func (r *recordingDispatcher) PushToQueue(_ context.Context, id uuid.UUID) error {
	r.pushed = append(r.pushed, id)
	return nil
}

func (r *recordingDispatcher) SetDispatchHandler(f func(context.Context, []uuid.UUID)) {
	r.handler = f
}
