package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// syncDataset is the type-erased view of a Descriptor the orchestrator
// iterates over.
type syncDataset interface {
	key() string
	// pull replaces the local dataset with the remote rows of ownerID and
	// returns how many records were written.
	pull(ctx context.Context, data *localData, tables gateway.Tables, ownerID string) (int, error)
	// push sends queued deletions and pending records, then stamps what was
	// accepted. It returns the number of upserted and deleted records.
	push(ctx context.Context, data *localData, tables gateway.Tables, ownerID string, now time.Time) (int, int, error)
	// pending counts records not yet reflected remotely.
	pending(ctx context.Context, data *localData) int
}

type dataset[L any, PL models.RecordPtr[L], R any] struct {
	Descriptor[L, R]
}

func newDataset[L any, PL models.RecordPtr[L], R any](d Descriptor[L, R]) syncDataset {
	return dataset[L, PL, R]{Descriptor: d}
}

func (d dataset[L, PL, R]) key() string { return d.LocalKey }

func (d dataset[L, PL, R]) pull(ctx context.Context, data *localData, tables gateway.Tables, ownerID string) (int, error) {
	rows, err := d.Table(tables).Select(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("select %s: %w", d.RemoteTable, err)
	}
	// an empty remote table keeps whatever was created offline
	if len(rows) == 0 {
		return 0, nil
	}

	records := make([]L, 0, len(rows))
	for _, row := range rows {
		rec, err := d.FromRemote(row)
		if err != nil {
			return 0, fmt.Errorf("convert %s row: %w", d.RemoteTable, err)
		}
		records = append(records, rec)
	}

	if err = replaceList(ctx, data, d.LocalKey, records); err != nil {
		return 0, fmt.Errorf("save pulled %s: %w", d.LocalKey, err)
	}
	return len(records), nil
}

func (d dataset[L, PL, R]) push(ctx context.Context, data *localData, tables gateway.Tables, ownerID string, now time.Time) (int, int, error) {
	table := d.Table(tables)

	deleted, deleteErr := d.pushDeletes(ctx, data, table)

	records := loadList[L](ctx, data, d.LocalKey)
	var rows []R
	pushed := make(map[string]R)
	for i := range records {
		meta := PL(&records[i]).GetMeta()
		if !meta.Sync.IsPending() {
			continue
		}
		row := d.ToRemote(records[i], ownerID, now)
		rows = append(rows, row)
		pushed[meta.ID] = row
	}
	if len(rows) == 0 {
		return 0, deleted, deleteErr
	}

	if err := table.Upsert(ctx, rows); err != nil {
		return 0, deleted, errors.Join(deleteErr, fmt.Errorf("upsert %s: %w", d.RemoteTable, err))
	}

	// Re-read before stamping: a record edited while the upsert was in flight
	// no longer matches the pushed row and stays pending.
	err := updateList(ctx, data, d.LocalKey, func(items []L) ([]L, error) {
		for i := range items {
			p := PL(&items[i])
			row, ok := pushed[p.GetMeta().ID]
			if !ok || !reflect.DeepEqual(d.ToRemote(items[i], ownerID, now), row) {
				continue
			}
			meta := p.GetMeta()
			meta.UserID = ownerID
			meta.Sync = models.Synced(now)
			p.SetMeta(meta)
		}
		return items, nil
	})
	if err != nil {
		return len(rows), deleted, errors.Join(deleteErr, fmt.Errorf("stamp %s: %w", d.LocalKey, err))
	}
	return len(rows), deleted, deleteErr
}

// pushDeletes propagates queued local deletions. Rows deleted remotely are
// dropped locally as well, since the pull may have brought them back.
func (d dataset[L, PL, R]) pushDeletes(ctx context.Context, data *localData, table gateway.Table[R]) (int, error) {
	queued := data.tombstones(ctx, d.LocalKey)
	if len(queued) == 0 {
		return 0, nil
	}

	var (
		done []string
		errs []error
	)
	for _, t := range queued {
		if err := table.Delete(ctx, t.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete %s %s: %w", d.RemoteTable, t.ID, err))
			continue
		}
		done = append(done, t.ID)
	}
	if len(done) == 0 {
		return 0, errors.Join(errs...)
	}

	err := updateList(ctx, data, d.LocalKey, func(items []L) ([]L, error) {
		return slices.DeleteFunc(items, func(item L) bool {
			return slices.Contains(done, PL(&item).GetMeta().ID)
		}), nil
	})
	if err != nil {
		return 0, errors.Join(append(errs, fmt.Errorf("drop deleted %s: %w", d.LocalKey, err))...)
	}
	if err = data.dropTombstones(ctx, d.LocalKey, done); err != nil {
		errs = append(errs, fmt.Errorf("drop tombstones: %w", err))
	}
	return len(done), errors.Join(errs...)
}

func (d dataset[L, PL, R]) pending(ctx context.Context, data *localData) int {
	var n int
	records := loadList[L](ctx, data, d.LocalKey)
	for i := range records {
		if PL(&records[i]).GetMeta().Sync.IsPending() {
			n++
		}
	}
	return n
}

// recoverDataset turns a panic inside one dataset phase into its error.
func recoverDataset(res *models.DatasetResult) {
	if r := recover(); r != nil {
		res.Err = fmt.Errorf("%w: %v", ErrSyncPanicked, r)
	}
}
