// Package workers runs groups of cooperating goroutines.
//
// A [Workers] group starts every [Worker] concurrently and returns when all
// of them have returned. The first non-nil error cancels the context shared
// by the group, so the remaining workers can observe ctx.Done() and stop.
package workers

import "context"

// Worker is one long-running unit of work.
//
// Run must return when ctx is cancelled or when its own work ends. Workers
// that block on I/O which ignores ctx need an [OnStop] hook in the group
// that unblocks them (typically by closing the connection).
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
