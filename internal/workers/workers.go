package workers

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Workers is a group of workers that live and die together.
type Workers struct {
	workers []Worker
	onStop  []func()
}

// New constructs a group of the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends a worker. It must not be called while Run is in progress.
func (w *Workers) Add(worker Worker) *Workers {
	w.workers = append(w.workers, worker)
	return w
}

// OnStop registers fn to run once, as soon as the group context is
// cancelled: by the parent, or by the first worker that returns.
func (w *Workers) OnStop(fn func()) *Workers {
	w.onStop = append(w.onStop, fn)
	return w
}

// Run starts all workers and blocks until every one of them has returned.
// It returns the first non-nil error.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			for _, fn := range w.onStop {
				fn()
			}
		})
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-gctx.Done():
			stop()
		case <-done:
		}
	}()

	for _, worker := range w.workers {
		g.Go(func() error {
			// one finished worker ends the whole group
			defer cancel()
			return worker.Run(gctx)
		})
	}

	err := g.Wait()
	close(done)
	stop()
	return err
}
