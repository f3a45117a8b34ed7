package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// localData is the local store shared by the record service and the sync
// orchestrator. Read-modify-write of one dataset holds that dataset's lock,
// so an interactive edit and a sync stamp never overwrite each other.
type localData struct {
	ls store.LocalStorage

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLocalData(ls store.LocalStorage) *localData {
	return &localData{ls: ls, locks: make(map[string]*sync.Mutex)}
}

func (d *localData) lock(key string) func() {
	d.mu.Lock()
	l, ok := d.locks[key]
	if !ok {
		l = &sync.Mutex{}
		d.locks[key] = l
	}
	d.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// loadList reads a dataset; missing or malformed data reads as empty.
func loadList[T any](ctx context.Context, d *localData, key string) []T {
	return store.Load(ctx, d.ls, key, []T{})
}

// replaceList overwrites a dataset in one persist call.
func replaceList[T any](ctx context.Context, d *localData, key string, items []T) error {
	unlock := d.lock(key)
	defer unlock()
	return store.Save(ctx, d.ls, key, items)
}

// updateList applies fn to the current dataset under its lock and persists
// the result. fn returning an error leaves the dataset unchanged.
func updateList[T any](ctx context.Context, d *localData, key string, fn func([]T) ([]T, error)) error {
	unlock := d.lock(key)
	defer unlock()

	items, err := fn(store.Load(ctx, d.ls, key, []T{}))
	if err != nil {
		return err
	}
	return store.Save(ctx, d.ls, key, items)
}

// tombstones returns the queued remote deletions of dataset.
func (d *localData) tombstones(ctx context.Context, dataset string) []models.Tombstone {
	all := loadList[models.Tombstone](ctx, d, models.KeyPendingDeletes)
	return slices.DeleteFunc(all, func(t models.Tombstone) bool { return t.Dataset != dataset })
}

func (d *localData) addTombstone(ctx context.Context, dataset, id string, at time.Time) error {
	return updateList(ctx, d, models.KeyPendingDeletes, func(all []models.Tombstone) ([]models.Tombstone, error) {
		for _, t := range all {
			if t.Dataset == dataset && t.ID == id {
				return all, nil
			}
		}
		return append(all, models.Tombstone{Dataset: dataset, ID: id, DeletedAt: at.UTC()}), nil
	})
}

func (d *localData) dropTombstones(ctx context.Context, dataset string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return updateList(ctx, d, models.KeyPendingDeletes, func(all []models.Tombstone) ([]models.Tombstone, error) {
		return slices.DeleteFunc(all, func(t models.Tombstone) bool {
			return t.Dataset == dataset && slices.Contains(ids, t.ID)
		}), nil
	})
}
