package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingDispatcher struct {
	mu   sync.Mutex
	jobs []Job
}

func (d *recordingDispatcher) Dispatch(_ context.Context, job Job) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
	return nil
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.jobs)
}

// blockingDispatcher parks every worker until the gate opens and
// reports when a job was picked up.
type blockingDispatcher struct {
	started chan struct{}
	gate    chan struct{}
}

func (d *blockingDispatcher) Dispatch(_ context.Context, _ Job) error {
	d.started <- struct{}{}
	<-d.gate
	return nil
}

func TestQueueDispatchesJobs(t *testing.T) {
	d := &recordingDispatcher{}
	q := NewProcessorQueue(d, nil, WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), Job{Kind: KindScan, EntityID: uuid.New(), JobID: uuid.New()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := d.count(); got != 3 {
		t.Fatalf("dispatched %d jobs, want 3", got)
	}
}

func TestEnqueueAfterShutdownIsNoop(t *testing.T) {
	d := &recordingDispatcher{}
	q := NewProcessorQueue(d, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{Kind: KindScan, EntityID: uuid.New()}); err != nil {
		t.Fatalf("enqueue after shutdown: %v", err)
	}
	if got := d.count(); got != 0 {
		t.Fatalf("dispatched %d jobs after shutdown, want 0", got)
	}
}

func TestShutdownReleasesBlockedProducer(t *testing.T) {
	d := &blockingDispatcher{started: make(chan struct{}, 4), gate: make(chan struct{})}
	q := NewProcessorQueue(d, nil, WithWorkers(1), WithQueueSize(1))

	// The first job occupies the only worker, the second fills the
	// buffer, the third blocks in backpressure.
	if err := q.Enqueue(context.Background(), Job{Kind: KindScan, EntityID: uuid.New()}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	<-d.started
	if err := q.Enqueue(context.Background(), Job{Kind: KindScan, EntityID: uuid.New()}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		_ = q.Enqueue(context.Background(), Job{Kind: KindScan, EntityID: uuid.New()})
	}()
	time.Sleep(20 * time.Millisecond)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		q.Shutdown(ctx)
	}()

	select {
	case <-producerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("producer still blocked after shutdown started")
	}
	select {
	case <-shutdownDone:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not return")
	}
	close(d.gate)
}
