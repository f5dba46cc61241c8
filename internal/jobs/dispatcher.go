// Package jobs provides the in-process dispatch queue for document
// processing: a buffered channel drained by a fixed pool of workers. Jobs
// are fire-and-forget; there is no persistence, no retry, and no
// backpressure beyond the channel buffer.
package jobs

import (
	"context"
	"sync"

	"studykit-backend/internal/shared/telemetry"
)

// Processor is the unit of work executed for each dispatched document.
type Processor interface {
	Process(ctx context.Context, documentID string)
}

// Dispatcher fans document ids out to a worker pool.
type Dispatcher struct {
	proc    Processor
	queue   chan string
	wg      sync.WaitGroup
	workers int

	mu     sync.Mutex
	closed bool
}

// NewDispatcher constructs a Dispatcher with the given pool size and queue
// buffer. Values below 1 are clamped.
func NewDispatcher(proc Processor, workers, buffer int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if buffer < 1 {
		buffer = 1
	}
	return &Dispatcher{
		proc:    proc,
		queue:   make(chan string, buffer),
		workers: workers,
	}
}

// Start launches the worker pool. Workers exit when the context is canceled
// or the queue is closed by Stop.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
	telemetry.Info("jobs.dispatcher_started", map[string]any{
		"workers": d.workers,
		"buffer":  cap(d.queue),
	})
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case documentID, ok := <-d.queue:
			if !ok {
				return
			}
			d.proc.Process(ctx, documentID)
		}
	}
}

// Enqueue queues a document for processing and returns immediately unless
// the buffer is full, in which case it blocks until a worker drains a slot.
// Enqueue after Stop is dropped.
func (d *Dispatcher) Enqueue(documentID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		telemetry.Error("jobs.enqueue_after_stop", map[string]any{"documentId": documentID})
		return
	}
	d.queue <- documentID
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()
	close(d.queue)
	d.wg.Wait()
}
