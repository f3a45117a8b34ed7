package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// newID hands out record and account identifiers.
var newID = utils.NewUUIDGenerator().Generate

// collection is the CRUD view of one local dataset.
type collection[T any, PT models.RecordPtr[T]] struct {
	data      *localData
	key       string
	syncable  bool
	validator validators.Validator
	now       func() time.Time
}

func (c collection[T, PT]) list(ctx context.Context) []T {
	return loadList[T](ctx, c.data, c.key)
}

func (c collection[T, PT]) get(ctx context.Context, id string) (T, error) {
	for _, item := range c.list(ctx) {
		if PT(&item).GetMeta().ID == id {
			return item, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %s", ErrRecordNotFound, c.key, id)
}

// add assigns identity to rec and appends it in the Local state.
func (c collection[T, PT]) add(ctx context.Context, rec T) (T, error) {
	if err := c.validator.Validate(ctx, &rec); err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	PT(&rec).SetMeta(models.RecordMeta{
		ID:        newID(),
		CreatedAt: c.now().UTC(),
		Sync:      models.Local(),
	})

	err := updateList(ctx, c.data, c.key, func(items []T) ([]T, error) {
		return append(items, rec), nil
	})
	return rec, err
}

// update replaces the business fields of the record id with those of rec.
// Identity is kept and a synced record becomes pending again.
func (c collection[T, PT]) update(ctx context.Context, id string, rec T) (T, error) {
	if err := c.validator.Validate(ctx, &rec); err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	err := updateList(ctx, c.data, c.key, func(items []T) ([]T, error) {
		for i := range items {
			meta := PT(&items[i]).GetMeta()
			if meta.ID != id {
				continue
			}
			meta.Sync = meta.Sync.Touched()
			PT(&rec).SetMeta(meta)
			items[i] = rec
			return items, nil
		}
		return nil, fmt.Errorf("%w: %s %s", ErrRecordNotFound, c.key, id)
	})
	return rec, err
}

// delete removes the record id. Removing a record the remote store has
// seen queues a remote deletion for the next push.
func (c collection[T, PT]) delete(ctx context.Context, id string) error {
	var removed *models.RecordMeta
	err := updateList(ctx, c.data, c.key, func(items []T) ([]T, error) {
		return slices.DeleteFunc(items, func(item T) bool {
			meta := PT(&item).GetMeta()
			if meta.ID != id {
				return false
			}
			removed = &meta
			return true
		}), nil
	})
	if err != nil {
		return err
	}
	if removed == nil {
		return fmt.Errorf("%w: %s %s", ErrRecordNotFound, c.key, id)
	}
	if c.syncable && removed.EverSynced() {
		return c.data.addTombstone(ctx, c.key, id, c.now())
	}
	return nil
}
