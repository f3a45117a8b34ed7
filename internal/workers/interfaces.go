// Package workers runs the background jobs of the ledger client: the
// periodic sync and the watcher that re-derives the sync status whenever
// the session or the mode changes.
package workers

import "context"

// Worker is a background job bound to the client session.
//
// Run must not block; implementations spawn their own goroutines and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// worker has fully exited and is safe to call on a worker that never ran.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
