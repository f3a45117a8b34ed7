package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ownerTables hands every owner the same fake remote and records who asked.
type ownerTables struct {
	remote *fakeRemote
	asked  []string
}

func (o *ownerTables) TablesFor(ownerID string) gateway.Tables {
	o.asked = append(o.asked, ownerID)
	return o.remote.tables()
}

func TestRowService_Select(t *testing.T) {
	provider := &ownerTables{remote: newFakeRemote()}
	provider.remote.customers.seed(
		models.CustomerRow{ID: "c1", UserID: "u1", Name: "Acme"},
		models.CustomerRow{ID: "c2", UserID: "u2", Name: "Initech"},
	)
	svc := NewRowService(provider, logger.Nop())

	got, err := svc.Select(context.Background(), "u1", models.TableCustomers)
	require.NoError(t, err)

	rows, ok := got.([]models.CustomerRow)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].ID)
	assert.Equal(t, []string{"u1"}, provider.asked)
}

func TestRowService_UnknownTable(t *testing.T) {
	svc := NewRowService(&ownerTables{remote: newFakeRemote()}, logger.Nop())
	ctx := context.Background()

	_, err := svc.Select(ctx, "u1", "invoices")
	assert.ErrorIs(t, err, ErrUnknownTable)
	assert.ErrorIs(t, svc.Upsert(ctx, "u1", "users", []byte(`[]`)), ErrUnknownTable)
	assert.ErrorIs(t, svc.Update(ctx, "u1", "users", "x", map[string]any{"a": 1}), ErrUnknownTable)
	assert.ErrorIs(t, svc.Delete(ctx, "u1", "users", "x"), ErrUnknownTable)
}

func TestRowService_Upsert(t *testing.T) {
	provider := &ownerTables{remote: newFakeRemote()}
	svc := NewRowService(provider, logger.Nop())

	body := []byte(`[
		{"id":"p1","user_id":"u1","name":"Widget","quantity":3,"unit":"pcs","price":"12.50","cost":8,"gst_rate":18,"low_stock_alert":10,"created_at":"2026-03-01T09:30:00Z","synced_at":"2026-03-02T12:00:00Z"}
	]`)
	require.NoError(t, svc.Upsert(context.Background(), "u1", models.TableProducts, body))

	row, ok := provider.remote.products.get("p1")
	require.True(t, ok)
	assert.Equal(t, models.Numeric(12.5), row.Price)
	require.NotNil(t, row.Quantity)
	assert.Equal(t, 3, *row.Quantity)
	assert.Equal(t, createdAt, row.CreatedAt)
}

func TestRowService_UpsertRejectsBadBody(t *testing.T) {
	svc := NewRowService(&ownerTables{remote: newFakeRemote()}, logger.Nop())
	ctx := context.Background()

	err := svc.Upsert(ctx, "u1", models.TableCustomers, []byte(`{"id":"c1"}`))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.Upsert(ctx, "u1", models.TableCustomers, []byte(`[{"name":"no id"}]`))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRowService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := mock.NewMockTable[models.LedgerEntryRow](ctrl)
	svc := NewRowService(tableProviderFunc(func(string) gateway.Tables {
		return gateway.Tables{LedgerEntries: table}
	}), logger.Nop())
	ctx := context.Background()

	patch := map[string]any{"category": "Rent"}
	table.EXPECT().Update(ctx, "l1", patch).Return(nil)
	table.EXPECT().Delete(ctx, "l1").Return(nil)

	require.NoError(t, svc.Update(ctx, "u1", models.TableLedgerEntries, "l1", patch))
	require.NoError(t, svc.Delete(ctx, "u1", models.TableLedgerEntries, "l1"))

	err := svc.Update(ctx, "u1", models.TableLedgerEntries, "l1", nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRowService_PropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := mock.NewMockTable[models.SupplierRow](ctrl)
	svc := NewRowService(tableProviderFunc(func(string) gateway.Tables {
		return gateway.Tables{Suppliers: table}
	}), logger.Nop())

	storeErr := errors.New("connection reset")
	table.EXPECT().Upsert(gomock.Any(), gomock.Len(1)).Return(storeErr)

	err := svc.Upsert(context.Background(), "u1", models.TableSuppliers, []byte(`[{"id":"s1","user_id":"u1","name":"Globex"}]`))
	assert.ErrorIs(t, err, storeErr)
}

type tableProviderFunc func(ownerID string) gateway.Tables

func (f tableProviderFunc) TablesFor(ownerID string) gateway.Tables { return f(ownerID) }
