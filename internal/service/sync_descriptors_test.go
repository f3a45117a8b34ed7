package service

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerDescriptor_RoundTrip(t *testing.T) {
	c := models.Customer{
		RecordMeta: models.RecordMeta{ID: "c1", CreatedAt: createdAt},
		Name:       "Acme",
		Email:      "acme@example.com",
		GSTIN:      "29ABCDE1234F1Z5",
		State:      "Karnataka",
		PinCode:    "560001",
	}

	row := CustomerDescriptor.ToRemote(c, "u1", syncTime)

	assert.Equal(t, "u1", row.UserID)
	assert.Nil(t, row.Phone, "empty optional field is sent as NULL")
	assert.Nil(t, row.Address)
	require.NotNil(t, row.Email)
	assert.Equal(t, "acme@example.com", *row.Email)
	require.NotNil(t, row.SyncedAt)
	assert.Equal(t, syncTime, *row.SyncedAt)

	back, err := CustomerDescriptor.FromRemote(row)
	require.NoError(t, err)

	want := c
	want.UserID = "u1"
	want.Sync = models.Synced(syncTime)
	assert.Equal(t, want, back)
}

func TestSupplierDescriptor_RoundTrip(t *testing.T) {
	s := models.Supplier{
		RecordMeta: models.RecordMeta{ID: "s1", CreatedAt: createdAt},
		Name:       "Globex",
		Phone:      "+91 80 1234 5678",
		City:       "Bengaluru",
		State:      "Karnataka",
	}

	back, err := SupplierDescriptor.FromRemote(SupplierDescriptor.ToRemote(s, "u1", syncTime))
	require.NoError(t, err)

	assert.Equal(t, s.Name, back.Name)
	assert.Equal(t, s.Phone, back.Phone)
	assert.Equal(t, s.City, back.City)
	assert.Empty(t, back.Email)
	assert.Equal(t, "u1", back.UserID)
	assert.False(t, back.Sync.IsPending())
}

func TestProductDescriptor_RoundTrip(t *testing.T) {
	p := models.Product{
		RecordMeta:    models.RecordMeta{ID: "p1", CreatedAt: createdAt},
		Name:          "Widget",
		SKU:           "W-1",
		Quantity:      0,
		Unit:          "box",
		Price:         12.5,
		Cost:          8.25,
		GSTRate:       18,
		LowStockAlert: 3,
	}

	row := ProductDescriptor.ToRemote(p, "u1", syncTime)

	require.NotNil(t, row.Quantity, "zero quantity is a value, not NULL")
	assert.Equal(t, 0, *row.Quantity)
	require.NotNil(t, row.LowStockAlert)
	assert.Equal(t, 3, *row.LowStockAlert)
	assert.Equal(t, models.Numeric(12.5), row.Price)

	back, err := ProductDescriptor.FromRemote(row)
	require.NoError(t, err)

	want := p
	want.UserID = "u1"
	want.Sync = models.Synced(syncTime)
	assert.Equal(t, want, back)
}

func TestProductDescriptor_FromRemoteDefaults(t *testing.T) {
	back, err := ProductDescriptor.FromRemote(models.ProductRow{
		ID:        "p9",
		UserID:    "u1",
		Name:      "Bare",
		CreatedAt: createdAt,
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultProductUnit, back.Unit)
	assert.Equal(t, models.DefaultLowStockAlert, back.LowStockAlert)
	assert.Equal(t, 0, back.Quantity)
	assert.True(t, back.Sync.IsPending(), "row without synced_at is pending")
}

func TestLedgerEntryDescriptor_RoundTrip(t *testing.T) {
	e := models.LedgerEntry{
		RecordMeta:  models.RecordMeta{ID: "l1", CreatedAt: createdAt},
		Date:        "2026-03-01",
		Type:        models.LedgerIncome,
		Category:    "Sales",
		Description: "Invoice INV-260001 - Acme",
		Amount:      1180,
		Reference:   "INV-260001",
	}

	row := LedgerEntryDescriptor.ToRemote(e, "u1", syncTime)

	assert.Equal(t, "income", row.EntryType)
	assert.Equal(t, models.Date("2026-03-01"), row.EntryDate)
	assert.Equal(t, models.Numeric(1180), row.Amount)

	back, err := LedgerEntryDescriptor.FromRemote(row)
	require.NoError(t, err)

	want := e
	want.UserID = "u1"
	want.Sync = models.Synced(syncTime)
	assert.Equal(t, want, back)
}

func TestDescriptors_RejectRowWithoutID(t *testing.T) {
	_, err := CustomerDescriptor.FromRemote(models.CustomerRow{Name: "x"})
	assert.True(t, errors.Is(err, ErrMalformedRemoteRow))

	_, err = SupplierDescriptor.FromRemote(models.SupplierRow{Name: "x"})
	assert.True(t, errors.Is(err, ErrMalformedRemoteRow))

	_, err = ProductDescriptor.FromRemote(models.ProductRow{Name: "x"})
	assert.True(t, errors.Is(err, ErrMalformedRemoteRow))

	_, err = LedgerEntryDescriptor.FromRemote(models.LedgerEntryRow{Category: "x"})
	assert.True(t, errors.Is(err, ErrMalformedRemoteRow))
}

func TestDescriptors_SyncedAtIsUTC(t *testing.T) {
	local := time.FixedZone("IST", 5*60*60+30*60)
	row := CustomerDescriptor.ToRemote(models.Customer{RecordMeta: models.RecordMeta{ID: "c1"}}, "u1", syncTime.In(local))

	require.NotNil(t, row.SyncedAt)
	assert.Equal(t, time.UTC, row.SyncedAt.Location())
	assert.True(t, row.SyncedAt.Equal(syncTime))
}

func TestSyncDescriptors_OrderAndTables(t *testing.T) {
	var keys []string
	for _, ds := range syncDescriptors() {
		keys = append(keys, ds.key())
	}
	assert.Equal(t, []string{
		models.DatasetCustomers,
		models.DatasetSuppliers,
		models.DatasetProducts,
		models.DatasetLedgerEntries,
	}, keys)

	remote := newFakeRemote()
	tables := remote.tables()
	assert.Same(t, remote.customers, CustomerDescriptor.Table(tables).(*fakeTable[models.CustomerRow]))
	assert.Same(t, remote.ledgerEntries, LedgerEntryDescriptor.Table(tables).(*fakeTable[models.LedgerEntryRow]))

	var _ gateway.Table[models.ProductRow] = ProductDescriptor.Table(tables)
}
