package jobs

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingProcessor struct {
	mu  sync.Mutex
	ids []string
}

func (p *recordingProcessor) Process(ctx context.Context, documentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, documentID)
}

func (p *recordingProcessor) seen() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.ids...)
}

func TestDispatcherProcessesAllJobs(t *testing.T) {
	proc := &recordingProcessor{}
	d := NewDispatcher(proc, 3, 16)
	d.Start(context.Background())

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		d.Enqueue(id)
	}
	d.Stop()

	seen := proc.seen()
	if len(seen) != 5 {
		t.Fatalf("processed %d jobs, want 5: %v", len(seen), seen)
	}
	got := map[string]bool{}
	for _, id := range seen {
		got[id] = true
	}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		if !got[id] {
			t.Fatalf("job %q not processed: %v", id, seen)
		}
	}
}

func TestDispatcherEnqueueAfterStopDropped(t *testing.T) {
	proc := &recordingProcessor{}
	d := NewDispatcher(proc, 1, 4)
	d.Start(context.Background())
	d.Stop()

	// Must not panic or block.
	d.Enqueue("late")
	if len(proc.seen()) != 0 {
		t.Fatalf("late enqueue was processed")
	}
}

type slowProcessor struct {
	recordingProcessor
	delay time.Duration
}

func (p *slowProcessor) Process(ctx context.Context, documentID string) {
	time.Sleep(p.delay)
	p.recordingProcessor.Process(ctx, documentID)
}

func TestDispatcherStopWaitsForInFlight(t *testing.T) {
	proc := &slowProcessor{delay: 50 * time.Millisecond}
	d := NewDispatcher(proc, 2, 8)
	d.Start(context.Background())

	d.Enqueue("a")
	d.Enqueue("b")
	d.Stop()

	if len(proc.seen()) != 2 {
		t.Fatalf("Stop returned before in-flight jobs finished: %v", proc.seen())
	}
}

func TestDispatcherStopIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingProcessor{}, 1, 1)
	d.Start(context.Background())
	d.Stop()
	d.Stop()
}
