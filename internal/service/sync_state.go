package service

import (
	"sync"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// watchable holds a value and fans every change out to subscribers.
// Readers always get copies; a slow subscriber only sees the latest value.
type watchable[T any] struct {
	mu     sync.RWMutex
	val    T
	clone  func(T) T
	nextID int
	subs   map[int]chan T
}

func newWatchable[T any](initial T, clone func(T) T) *watchable[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &watchable[T]{val: initial, clone: clone, subs: make(map[int]chan T)}
}

func (w *watchable[T]) get() T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.clone(w.val)
}

// update applies fn to the value and publishes the result.
func (w *watchable[T]) update(fn func(*T)) T {
	w.mu.Lock()
	defer w.mu.Unlock()

	fn(&w.val)
	for _, ch := range w.subs {
		// drop a stale value the subscriber has not read yet
		select {
		case <-ch:
		default:
		}
		ch <- w.clone(w.val)
	}
	return w.clone(w.val)
}

// subscribe returns a channel primed with the current value and a func that
// closes it.
func (w *watchable[T]) subscribe() (<-chan T, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	ch := make(chan T, 1)
	ch <- w.clone(w.val)
	w.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
			close(ch)
		})
	}
}

func newSyncStateHolder() *watchable[models.SyncState] {
	return newWatchable(models.SyncState{Status: models.SyncOffline}, copyState)
}

func copyState(s models.SyncState) models.SyncState {
	if s.LastSynced != nil {
		at := *s.LastSynced
		s.LastSynced = &at
	}
	return s
}
