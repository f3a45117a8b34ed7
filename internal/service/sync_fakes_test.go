package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/require"
)

// fakeTable is an in-memory remote table keyed by id.
type fakeTable[R store.Row] struct {
	mu    sync.Mutex
	rows  map[string]R
	order []string

	selectErr   error
	upsertErr   error
	deleteErr   error
	selectPanic bool
	onUpsert    func([]R)

	selects int
	upserts int
	deleted []string
}

func newFakeTable[R store.Row]() *fakeTable[R] {
	return &fakeTable[R]{rows: make(map[string]R)}
}

func (f *fakeTable[R]) Select(_ context.Context, ownerID string) ([]R, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.selects++
	if f.selectPanic {
		panic("select exploded")
	}
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	out := []R{}
	for _, id := range f.order {
		if r := f.rows[id]; r.Owner() == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTable[R]) Upsert(_ context.Context, rows []R) error {
	if f.onUpsert != nil {
		f.onUpsert(rows)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.upserts++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, r := range rows {
		f.put(r)
	}
	return nil
}

func (f *fakeTable[R]) Update(context.Context, string, map[string]any) error {
	return nil
}

func (f *fakeTable[R]) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	delete(f.rows, id)
	f.order = slices.DeleteFunc(f.order, func(o string) bool { return o == id })
	return nil
}

func (f *fakeTable[R]) put(r R) {
	if _, ok := f.rows[r.RowID()]; !ok {
		f.order = append(f.order, r.RowID())
	}
	f.rows[r.RowID()] = r
}

// seed stores rows as if another device had pushed them.
func (f *fakeTable[R]) seed(rows ...R) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rows {
		f.put(r)
	}
}

func (f *fakeTable[R]) get(id string) (R, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	return r, ok
}

func (f *fakeTable[R]) all() []R {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]R, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.rows[id])
	}
	return out
}

func (f *fakeTable[R]) upsertCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upserts
}

type fakeRemote struct {
	customers     *fakeTable[models.CustomerRow]
	suppliers     *fakeTable[models.SupplierRow]
	products      *fakeTable[models.ProductRow]
	ledgerEntries *fakeTable[models.LedgerEntryRow]
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		customers:     newFakeTable[models.CustomerRow](),
		suppliers:     newFakeTable[models.SupplierRow](),
		products:      newFakeTable[models.ProductRow](),
		ledgerEntries: newFakeTable[models.LedgerEntryRow](),
	}
}

func (f *fakeRemote) tables() gateway.Tables {
	return gateway.Tables{
		Customers:     f.customers,
		Suppliers:     f.suppliers,
		Products:      f.products,
		LedgerEntries: f.ledgerEntries,
	}
}

// notificationRecorder collects notifications in order.
type notificationRecorder struct {
	mu   sync.Mutex
	list []models.Notification
}

func (r *notificationRecorder) Notify(n models.Notification) {
	r.mu.Lock()
	r.list = append(r.list, n)
	r.mu.Unlock()
}

func (r *notificationRecorder) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.list)
}

var (
	createdAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	syncTime  = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
)

type syncEnv struct {
	ls      store.LocalStorage
	data    *localData
	remote  *fakeRemote
	sync    *clientSyncService
	records *clientRecordService
	notes   *notificationRecorder
}

func newSyncEnv(t *testing.T) *syncEnv {
	t.Helper()

	ls, err := store.NewFileLocalStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ls.Close() })

	data := newLocalData(ls)
	remote := newFakeRemote()
	notes := &notificationRecorder{}

	svc := newClientSyncService(data, remote.tables(), notes, logger.Nop())
	svc.now = func() time.Time { return syncTime }

	return &syncEnv{
		ls:      ls,
		data:    data,
		remote:  remote,
		sync:    svc,
		records: newClientRecordService(data, func() time.Time { return createdAt }, logger.Nop()),
		notes:   notes,
	}
}

func seedLocal[T any](t *testing.T, env *syncEnv, key string, items ...T) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), env.ls, key, items))
}

func localCustomers(env *syncEnv) []models.Customer {
	return loadList[models.Customer](context.Background(), env.data, models.DatasetCustomers)
}

func ptr[T any](v T) *T { return &v }
