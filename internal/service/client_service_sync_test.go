// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = models.SyncContext{OwnerID: "u1", CloudMode: true}

func acme() models.Customer {
	return models.Customer{
		RecordMeta: models.RecordMeta{ID: "c1", CreatedAt: createdAt},
		Name:       "Acme",
		State:      "Karnataka",
	}
}

// ── end-to-end scenario ──────────────────────────────────────────────────────

func TestFullSync_LocalCustomerReachesEmptyRemote(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())

	res := env.sync.FullSync(ctx, owner)

	require.True(t, res.Success, res.Error)

	row, ok := env.remote.customers.get("c1")
	require.True(t, ok)
	assert.Equal(t, "u1", row.UserID)
	assert.Equal(t, "Acme", row.Name)
	require.NotNil(t, row.SyncedAt)
	assert.Equal(t, syncTime, *row.SyncedAt)

	local := localCustomers(env)
	require.Len(t, local, 1)
	at, synced := local[0].Sync.SyncedAt()
	assert.True(t, synced)
	assert.Equal(t, syncTime, at)

	st := env.sync.State()
	assert.Equal(t, models.SyncOnline, st.Status)
	assert.Equal(t, 0, st.PendingChanges)
	require.NotNil(t, st.LastSynced)
	assert.Equal(t, syncTime, *st.LastSynced)
	assert.Empty(t, st.Error)
}

// ── pull ─────────────────────────────────────────────────────────────────────

func TestFullSync_RemoteWinsOnPull(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	local := acme()
	local.Name = "Acme (edited offline)"
	seedLocal(t, env, models.DatasetCustomers, local)

	remoteSynced := syncTime.Add(-time.Hour)
	env.remote.customers.seed(models.CustomerRow{
		ID: "c1", UserID: "u1", Name: "Acme Remote", State: ptr("Kerala"),
		CreatedAt: createdAt, SyncedAt: &remoteSynced,
	})

	res := env.sync.FullSync(ctx, owner)
	require.True(t, res.Success, res.Error)

	got := localCustomers(env)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Remote", got[0].Name)
	assert.Equal(t, "Kerala", got[0].State)
	assert.Equal(t, "u1", got[0].UserID)
	assert.False(t, got[0].Sync.IsPending())

	// nothing left to push after the remote copy replaced the local one
	assert.Equal(t, 0, env.remote.customers.upsertCalls())
}

func TestSyncFromCloud_OnlyPulls(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())
	env.remote.suppliers.seed(models.SupplierRow{ID: "s1", UserID: "u1", Name: "Globex", CreatedAt: createdAt, SyncedAt: &syncTime})
	env.remote.suppliers.seed(models.SupplierRow{ID: "s2", UserID: "someone-else", Name: "Initech", CreatedAt: createdAt})

	res := env.sync.SyncFromCloud(ctx, owner)
	require.True(t, res.Success, res.Error)

	suppliers := env.records.Suppliers(ctx)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "s1", suppliers[0].ID)

	assert.Equal(t, 0, env.remote.customers.upsertCalls())
	assert.Equal(t, 1, env.sync.State().PendingChanges)
}

func TestSyncToCloud_OnlyPushes(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())

	res := env.sync.SyncToCloud(ctx, owner)
	require.True(t, res.Success, res.Error)

	assert.Equal(t, 0, env.remote.customers.selects)
	assert.Equal(t, 1, env.remote.customers.upsertCalls())
}

func TestPull_MalformedRowFailsDataset(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())
	env.remote.ledgerEntries.seed(models.LedgerEntryRow{ID: "", UserID: "u1", EntryType: "income"})

	res := env.sync.FullSync(ctx, owner)

	assert.False(t, res.Success)
	assert.Equal(t, app.MsgSyncFailed+": ledgerEntries (pull)", res.Error)
	_, ok := env.remote.customers.get("c1")
	assert.True(t, ok, "other datasets keep syncing")
}

// ── push ─────────────────────────────────────────────────────────────────────

func TestPush_IsIdempotent(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())

	require.True(t, env.sync.SyncToCloud(ctx, owner).Success)
	first := env.remote.customers.all()

	// same business fields, pending again
	_, err := env.records.UpdateCustomer(ctx, "c1", acme())
	require.NoError(t, err)
	require.Equal(t, 1, env.sync.CalculatePendingChanges(ctx))

	require.True(t, env.sync.SyncToCloud(ctx, owner).Success)

	assert.Equal(t, first, env.remote.customers.all())
	assert.Equal(t, 2, env.remote.customers.upsertCalls())

	// a third run has nothing to send
	require.True(t, env.sync.SyncToCloud(ctx, owner).Success)
	assert.Equal(t, 2, env.remote.customers.upsertCalls())
}

func TestPush_EditDuringUpsertStaysPending(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())

	env.remote.customers.onUpsert = func([]models.CustomerRow) {
		edited := acme()
		edited.Name = "Acme Ltd"
		_, err := env.records.UpdateCustomer(ctx, "c1", edited)
		assert.NoError(t, err)
	}

	res := env.sync.SyncToCloud(ctx, owner)
	require.True(t, res.Success, res.Error)

	got := localCustomers(env)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Ltd", got[0].Name)
	assert.True(t, got[0].Sync.IsPending())
	assert.Equal(t, 1, env.sync.State().PendingChanges)
}

func TestPush_PropagatesDeletes(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	synced := acme()
	synced.UserID = "u1"
	synced.Sync = models.Synced(syncTime.Add(-time.Hour))
	seedLocal(t, env, models.DatasetCustomers, synced)
	env.remote.customers.seed(CustomerDescriptor.ToRemote(synced, "u1", syncTime.Add(-time.Hour)))

	require.NoError(t, env.records.DeleteCustomer(ctx, "c1"))
	require.Len(t, env.data.tombstones(ctx, models.DatasetCustomers), 1)

	// the pull brings c1 back before the push deletes it for good
	res := env.sync.FullSync(ctx, owner)
	require.True(t, res.Success, res.Error)

	_, ok := env.remote.customers.get("c1")
	assert.False(t, ok)
	assert.Empty(t, localCustomers(env))
	assert.Empty(t, env.data.tombstones(ctx, models.DatasetCustomers))
}

func TestPush_FailedDeleteStaysQueued(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	require.NoError(t, env.data.addTombstone(ctx, models.DatasetProducts, "p1", syncTime))
	env.remote.products.deleteErr = gateway.NewRemoteError("delete", "products", 503, gateway.ErrUnavailable)

	res := env.sync.SyncToCloud(ctx, owner)

	assert.False(t, res.Success)
	assert.Equal(t, app.MsgSyncFailed+": products (push)", res.Error)
	assert.Len(t, env.data.tombstones(ctx, models.DatasetProducts), 1)
}

func TestDelete_NeverSyncedRecordQueuesNothing(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())

	require.NoError(t, env.records.DeleteCustomer(ctx, "c1"))

	assert.Empty(t, env.data.tombstones(ctx, models.DatasetCustomers))
}

// ── failures ─────────────────────────────────────────────────────────────────

func TestFullSync_DatasetFailureIsIsolated(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())
	seedLocal(t, env, models.DatasetProducts, models.Product{
		RecordMeta: models.RecordMeta{ID: "p1", CreatedAt: createdAt},
		Name:       "Widget", Unit: "pcs", Quantity: 3, LowStockAlert: 10,
	})
	env.remote.products.selectErr = gateway.NewRemoteError("select", "products", 503, gateway.ErrUnavailable)

	res := env.sync.FullSync(ctx, owner)

	assert.False(t, res.Success)
	assert.Equal(t, app.MsgSyncFailed+": products (pull)", res.Error)

	_, ok := env.remote.customers.get("c1")
	assert.True(t, ok)
	_, ok = env.remote.products.get("p1")
	assert.True(t, ok, "push still runs for a dataset whose pull failed")

	st := env.sync.State()
	assert.Equal(t, models.SyncError, st.Status)
	assert.Equal(t, res.Error, st.Error)
	assert.Equal(t, 0, st.PendingChanges)
	assert.Nil(t, st.LastSynced)
}

func TestFullSync_UpsertFailureKeepsRecordsPending(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())
	env.remote.customers.upsertErr = gateway.NewRemoteError("upsert", "customers", 401, gateway.ErrUnauthorized)

	res := env.sync.FullSync(ctx, owner)

	assert.False(t, res.Success)
	assert.Equal(t, app.MsgSyncFailed+": customers (push)", res.Error)
	assert.True(t, localCustomers(env)[0].Sync.IsPending())
	assert.Equal(t, 1, env.sync.State().PendingChanges)
}

func TestFullSync_PanicBecomesDatasetFailure(t *testing.T) {
	env := newSyncEnv(t)
	env.remote.suppliers.selectPanic = true

	var res models.SyncResult
	require.NotPanics(t, func() { res = env.sync.FullSync(context.Background(), owner) })

	assert.False(t, res.Success)
	assert.Equal(t, app.MsgSyncFailed+": suppliers (pull)", res.Error)
	assert.Equal(t, models.SyncError, env.sync.State().Status)
}

func TestRecoverDataset(t *testing.T) {
	res := func() (res models.DatasetResult) {
		defer recoverDataset(&res)
		panic("boom")
	}()

	assert.True(t, errors.Is(res.Err, ErrSyncPanicked))
}

// ── guard ────────────────────────────────────────────────────────────────────

func TestFullSync_NotReady(t *testing.T) {
	tests := []struct {
		name       string
		sc         models.SyncContext
		wantStatus models.SyncStatus
	}{
		{name: "cloud mode off", sc: models.SyncContext{OwnerID: "u1"}, wantStatus: models.SyncOffline},
		{name: "no owner", sc: models.SyncContext{CloudMode: true}, wantStatus: models.SyncOffline},
		{name: "nothing", sc: models.SyncContext{}, wantStatus: models.SyncOffline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newSyncEnv(t)
			seedLocal(t, env, models.DatasetCustomers, acme())

			res := env.sync.FullSync(context.Background(), tt.sc)

			assert.Equal(t, models.SyncResult{Success: false, Error: app.MsgNotReadyToSync}, res)
			assert.Equal(t, tt.wantStatus, env.sync.State().Status)
			assert.Equal(t, 0, env.remote.customers.selects)
			assert.Equal(t, 0, env.remote.customers.upsertCalls())
		})
	}
}

func TestFullSync_CloudModeOffForcesOffline(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	require.True(t, env.sync.FullSync(ctx, owner).Success)
	require.Equal(t, models.SyncOnline, env.sync.State().Status)

	env.sync.FullSync(ctx, models.SyncContext{OwnerID: "u1", CloudMode: false})

	assert.Equal(t, models.SyncOffline, env.sync.State().Status)
}

func TestFullSync_BusyReturnsNotReady(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())

	entered := make(chan struct{})
	release := make(chan struct{})
	env.remote.customers.onUpsert = func([]models.CustomerRow) {
		close(entered)
		<-release
	}

	var (
		wg    sync.WaitGroup
		first models.SyncResult
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = env.sync.FullSync(ctx, owner)
	}()

	<-entered
	assert.Equal(t, models.SyncSyncing, env.sync.State().Status)

	second := env.sync.TriggerSync(ctx, owner)
	assert.Equal(t, models.SyncResult{Success: false, Error: app.MsgNotReadyToSync}, second)
	assert.Equal(t, models.SyncSyncing, env.sync.State().Status)

	close(release)
	wg.Wait()

	assert.True(t, first.Success, first.Error)
	assert.Equal(t, 1, env.remote.customers.upsertCalls())
	assert.Equal(t, models.SyncOnline, env.sync.State().Status)

	// the guard is released once the cycle ends
	assert.True(t, env.sync.FullSync(ctx, owner).Success)
}

// ── status model ─────────────────────────────────────────────────────────────

func TestTriggerSync_Notifies(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.True(t, env.sync.TriggerSync(ctx, owner).Success)
	env.sync.TriggerSync(ctx, models.SyncContext{})

	assert.Equal(t, []models.Notification{
		{Kind: models.NotifyInfo, Message: app.MsgSyncStarted},
		{Kind: models.NotifySuccess, Message: app.MsgSyncCompleted},
		{Kind: models.NotifyInfo, Message: app.MsgSyncStarted},
		{Kind: models.NotifyError, Message: app.MsgNotReadyToSync},
	}, env.notes.all())
}

func TestFullSync_IsSilent(t *testing.T) {
	env := newSyncEnv(t)

	env.sync.FullSync(context.Background(), owner)

	assert.Empty(t, env.notes.all())
}

func TestCalculatePendingChanges(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	assert.Equal(t, 0, env.sync.CalculatePendingChanges(ctx))

	_, err := env.records.AddCustomer(ctx, models.Customer{Name: "Acme", State: "Goa"})
	require.NoError(t, err)
	_, err = env.records.AddProduct(ctx, models.Product{Name: "Widget"})
	require.NoError(t, err)
	_, err = env.records.AddLedgerEntry(ctx, models.LedgerEntry{Date: "2026-03-01", Type: models.LedgerExpense, Category: "Rent", Amount: 100})
	require.NoError(t, err)
	// invoices are never pushed and never counted
	_, err = env.records.AddInvoice(ctx, models.Invoice{CustomerID: "c1", Date: "2026-03-01", Items: []models.InvoiceItem{{Quantity: 1, Rate: 10}}, Total: 10})
	require.NoError(t, err)

	assert.Equal(t, 4, env.sync.CalculatePendingChanges(ctx), "three records plus the invoice's ledger entry")

	require.True(t, env.sync.FullSync(ctx, owner).Success)
	assert.Equal(t, 0, env.sync.CalculatePendingChanges(ctx))
	assert.Equal(t, 0, env.sync.State().PendingChanges)
}

func TestRefresh(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()
	seedLocal(t, env, models.DatasetCustomers, acme())

	st := env.sync.Refresh(ctx, owner)
	assert.Equal(t, models.SyncOnline, st.Status)
	assert.Equal(t, 1, st.PendingChanges)

	st = env.sync.Refresh(ctx, models.SyncContext{CloudMode: true})
	assert.Equal(t, models.SyncOffline, st.Status)
}

func TestSubscribe_ReceivesLatestState(t *testing.T) {
	env := newSyncEnv(t)

	ch, cancel := env.sync.Subscribe()
	defer cancel()

	assert.Equal(t, models.SyncOffline, (<-ch).Status)

	require.True(t, env.sync.FullSync(context.Background(), owner).Success)

	select {
	case st := <-ch:
		assert.Equal(t, models.SyncOnline, st.Status)
	case <-time.After(time.Second):
		t.Fatal("no state delivered")
	}
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	env := newSyncEnv(t)

	ch, cancel := env.sync.Subscribe()
	<-ch
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// publishing after cancel must not panic
	assert.NotPanics(t, func() { env.sync.Refresh(context.Background(), owner) })
}

func TestState_ReturnsCopy(t *testing.T) {
	env := newSyncEnv(t)
	require.True(t, env.sync.FullSync(context.Background(), owner).Success)

	st := env.sync.State()
	*st.LastSynced = time.Time{}

	assert.Equal(t, syncTime, *env.sync.State().LastSynced)
}
