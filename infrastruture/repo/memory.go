package repo

import (
	"context"
	"slices"
	"sync"

	dmn "github.com/beka-birhanu/vinom-wumpus/domain"
	"github.com/google/uuid"
)

// MemoryRunRepo keeps runs in process memory. It backs local runs and tests.
type MemoryRunRepo struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]dmn.Run
}

// NewMemoryRunRepo creates an empty MemoryRunRepo.
func NewMemoryRunRepo() *MemoryRunRepo {
	return &MemoryRunRepo{runs: make(map[uuid.UUID]dmn.Run)}
}

// Save stores a copy of run.
func (m *MemoryRunRepo) Save(_ context.Context, run *dmn.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID] = cloneRun(*run)
	return nil
}

// ByID returns a copy of the stored run.
func (m *MemoryRunRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, dmn.ErrRunNotFound
	}
	run = cloneRun(run)
	return &run, nil
}

// ByOwner lists the newest runs of owner, at most limit of them.
func (m *MemoryRunRepo) ByOwner(_ context.Context, owner string, limit int) ([]*dmn.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := []*dmn.Run{}
	for _, run := range m.runs {
		if run.Owner != owner {
			continue
		}
		run = cloneRun(run)
		runs = append(runs, &run)
	}
	slices.SortFunc(runs, func(a, b *dmn.Run) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func cloneRun(run dmn.Run) dmn.Run {
	run.Events = slices.Clone(run.Events)
	if run.Final != nil {
		final := *run.Final
		run.Final = &final
	}
	return run
}
