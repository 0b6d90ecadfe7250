package i

import "context"

// SortedQueue is a score-ordered queue shared between service instances.
type SortedQueue interface {
	// Enqueue adds member with the given score to the queue at queueKey.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// DequeTops removes and returns up to amount members with the lowest scores.
	DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of members in the queue.
	Count(ctx context.Context, queueKey string) int64
}
