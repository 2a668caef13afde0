// Package workers provides abstractions for managing background workers of
// the client. It defines the Worker interface and a Workers aggregate that
// starts and stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their goroutines internally and
// keep running until ctx is cancelled or Stop is called. Stop blocks until
// every goroutine started by the worker has exited.
//
// Example implementation:
//
//	type MyWorker struct{ job service.HealthJob }
//
//	func (w *MyWorker) Start(ctx context.Context) { w.job.Start(ctx, time.Minute, nil) }
//	func (w *MyWorker) Stop()                     { w.job.Stop() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
