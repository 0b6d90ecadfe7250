package sortedstorage

import (
	"context"
	"slices"
	"sync"

	"github.com/beka-birhanu/vinom-wumpus/service/i"
)

var _ i.SortedQueue = &MemorySortedQueue{}

type scoredMember struct {
	score  float64
	member string
}

// MemorySortedQueue is an in-process SortedQueue for single-instance deployments and tests.
type MemorySortedQueue struct {
	mu     sync.Mutex
	queues map[string][]scoredMember
}

// NewMemorySortedQueue creates an empty MemorySortedQueue.
func NewMemorySortedQueue() *MemorySortedQueue {
	return &MemorySortedQueue{queues: make(map[string][]scoredMember)}
}

// Enqueue adds member with score; re-adding a member updates its score, as a redis ZADD does.
func (q *MemorySortedQueue) Enqueue(_ context.Context, queueKey string, score float64, member string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue := slices.DeleteFunc(q.queues[queueKey], func(m scoredMember) bool { return m.member == member })
	queue = append(queue, scoredMember{score: score, member: member})
	slices.SortStableFunc(queue, func(a, b scoredMember) int {
		switch {
		case a.score < b.score:
			return -1
		case a.score > b.score:
			return 1
		default:
			return 0
		}
	})
	q.queues[queueKey] = queue
	return nil
}

// DequeTops removes and returns up to amount members with the lowest scores.
func (q *MemorySortedQueue) DequeTops(_ context.Context, queueKey string, amount int64) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue := q.queues[queueKey]
	n := min(int(amount), len(queue))
	members := make([]string, 0, n)
	for _, m := range queue[:n] {
		members = append(members, m.member)
	}
	q.queues[queueKey] = queue[n:]
	return members, nil
}

// Count returns the number of members in the queue.
func (q *MemorySortedQueue) Count(_ context.Context, queueKey string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.queues[queueKey]))
}
