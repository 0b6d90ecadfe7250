package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-wumpus/service/i"
	"github.com/google/uuid"
)

const (
	defaultPrefix = "explorer"
	defaultBatch  = 1
	queueKeyFmt   = "%s:queue:runs"
)

var _ i.Dispatcher = &Dispatcher{}

type dispatchHandler func(context.Context, []uuid.UUID)

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	Prefix  string          // Key prefix of the queue.
	Batch   int64           // Runs handed to the handler at once.
	Handler dispatchHandler // Receives dequeued run IDs.
}

// Dispatcher schedules runs through a sorted queue, oldest first.
type Dispatcher struct {
	sortedQueue i.SortedQueue
	logger      i.Logger
	opts        *DispatcherOptions
	handlerMu   sync.RWMutex
}

// NewDispatcher creates a Dispatcher over sortedQueue.
func NewDispatcher(sortedQueue i.SortedQueue, logger i.Logger, opts *DispatcherOptions) *Dispatcher {
	if opts == nil {
		opts = &DispatcherOptions{}
	}

	if opts.Batch <= 0 {
		opts.Batch = defaultBatch
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	return &Dispatcher{
		sortedQueue: sortedQueue,
		logger:      logger,
		opts:        opts,
	}
}

// PushToQueue schedules the run and starts draining the queue in the background.
func (d *Dispatcher) PushToQueue(ctx context.Context, id uuid.UUID) error {
	score := float64(time.Now().UnixNano())
	if err := d.sortedQueue.Enqueue(ctx, d.queueKey(), score, id.String()); err != nil {
		d.logger.Error(fmt.Sprintf("Failed to enqueue run: %s", err))
		return err
	}

	d.logger.Info(fmt.Sprintf("Run enqueued: ID=%s", id))
	go d.drain(context.WithoutCancel(ctx))
	return nil
}

// SetDispatchHandler sets the function receiving dequeued run IDs.
func (d *Dispatcher) SetDispatchHandler(f func(context.Context, []uuid.UUID)) {
	d.handlerMu.Lock()
	defer d.handlerMu.Unlock()
	d.opts.Handler = f
}

// drain hands queued runs to the handler batch by batch until the queue is empty.
func (d *Dispatcher) drain(ctx context.Context) {
	queueKey := d.queueKey()
	for d.sortedQueue.Count(ctx, queueKey) > 0 {
		raw, err := d.sortedQueue.DequeTops(ctx, queueKey, d.opts.Batch)
		if err != nil {
			d.logger.Error(fmt.Sprintf("Dequeuing runs: %s", err))
			return
		}
		if len(raw) == 0 {
			return
		}

		var ids []uuid.UUID
		for _, r := range raw {
			if id, err := uuid.Parse(r); err == nil {
				ids = append(ids, id)
			} else {
				d.logger.Warning(fmt.Sprintf("Non-UUID value in queue: %s", r))
			}
		}

		d.handlerMu.RLock()
		handler := d.opts.Handler
		d.handlerMu.RUnlock()
		if handler == nil {
			d.logger.Warning(fmt.Sprintf("No dispatch handler, dropping runs: %v", ids))
			continue
		}
		if len(ids) > 0 {
			handler(ctx, ids)
		}
	}
}

func (d *Dispatcher) queueKey() string {
	return fmt.Sprintf(queueKeyFmt, d.opts.Prefix)
}
