// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Descriptor binds one local dataset to one remote table and converts
// records between the two shapes. FromRemote(ToRemote(r)) keeps every
// business field of r; only user_id and synced_at change.
type Descriptor[L any, R any] struct {
	LocalKey    string
	RemoteTable string
	// Table picks the gateway of RemoteTable out of the remote tables.
	Table      func(gateway.Tables) gateway.Table[R]
	ToRemote   func(record L, ownerID string, syncedAt time.Time) R
	FromRemote func(row R) (L, error)
}

// syncDescriptors is the closed set of synchronised datasets, in the order
// they are pushed. Invoices and purchases stay on the device.
func syncDescriptors() []syncDataset {
	return []syncDataset{
		newDataset(CustomerDescriptor),
		newDataset(SupplierDescriptor),
		newDataset(ProductDescriptor),
		newDataset(LedgerEntryDescriptor),
	}
}

var CustomerDescriptor = Descriptor[models.Customer, models.CustomerRow]{
	LocalKey:    models.DatasetCustomers,
	RemoteTable: models.TableCustomers,
	Table:       func(t gateway.Tables) gateway.Table[models.CustomerRow] { return t.Customers },
	ToRemote: func(c models.Customer, ownerID string, syncedAt time.Time) models.CustomerRow {
		return models.CustomerRow{
			ID:        c.ID,
			UserID:    ownerID,
			Name:      c.Name,
			Email:     nullable(c.Email),
			Phone:     nullable(c.Phone),
			GSTIN:     nullable(c.GSTIN),
			Address:   nullable(c.Address),
			City:      nullable(c.City),
			State:     nullable(c.State),
			PinCode:   nullable(c.PinCode),
			CreatedAt: c.CreatedAt,
			SyncedAt:  stampedAt(syncedAt),
		}
	},
	FromRemote: func(r models.CustomerRow) (models.Customer, error) {
		if r.ID == "" {
			return models.Customer{}, fmt.Errorf("%w: customer row without id", ErrMalformedRemoteRow)
		}
		return models.Customer{
			RecordMeta: remoteMeta(r.ID, r.UserID, r.CreatedAt, r.SyncedAt),
			Name:       r.Name,
			Email:      value(r.Email),
			Phone:      value(r.Phone),
			GSTIN:      value(r.GSTIN),
			Address:    value(r.Address),
			City:       value(r.City),
			State:      value(r.State),
			PinCode:    value(r.PinCode),
		}, nil
	},
}

var SupplierDescriptor = Descriptor[models.Supplier, models.SupplierRow]{
	LocalKey:    models.DatasetSuppliers,
	RemoteTable: models.TableSuppliers,
	Table:       func(t gateway.Tables) gateway.Table[models.SupplierRow] { return t.Suppliers },
	ToRemote: func(s models.Supplier, ownerID string, syncedAt time.Time) models.SupplierRow {
		return models.SupplierRow{
			ID:        s.ID,
			UserID:    ownerID,
			Name:      s.Name,
			Email:     nullable(s.Email),
			Phone:     nullable(s.Phone),
			GSTIN:     nullable(s.GSTIN),
			Address:   nullable(s.Address),
			City:      nullable(s.City),
			State:     nullable(s.State),
			PinCode:   nullable(s.PinCode),
			CreatedAt: s.CreatedAt,
			SyncedAt:  stampedAt(syncedAt),
		}
	},
	FromRemote: func(r models.SupplierRow) (models.Supplier, error) {
		if r.ID == "" {
			return models.Supplier{}, fmt.Errorf("%w: supplier row without id", ErrMalformedRemoteRow)
		}
		return models.Supplier{
			RecordMeta: remoteMeta(r.ID, r.UserID, r.CreatedAt, r.SyncedAt),
			Name:       r.Name,
			Email:      value(r.Email),
			Phone:      value(r.Phone),
			GSTIN:      value(r.GSTIN),
			Address:    value(r.Address),
			City:       value(r.City),
			State:      value(r.State),
			PinCode:    value(r.PinCode),
		}, nil
	},
}

var ProductDescriptor = Descriptor[models.Product, models.ProductRow]{
	LocalKey:    models.DatasetProducts,
	RemoteTable: models.TableProducts,
	Table:       func(t gateway.Tables) gateway.Table[models.ProductRow] { return t.Products },
	ToRemote: func(p models.Product, ownerID string, syncedAt time.Time) models.ProductRow {
		quantity, lowStock := p.Quantity, p.LowStockAlert
		return models.ProductRow{
			ID:            p.ID,
			UserID:        ownerID,
			Name:          p.Name,
			SKU:           nullable(p.SKU),
			HSNCode:       nullable(p.HSNCode),
			Description:   nullable(p.Description),
			Quantity:      &quantity,
			Unit:          nullable(p.Unit),
			Price:         models.Numeric(p.Price),
			Cost:          models.Numeric(p.Cost),
			GSTRate:       models.Numeric(p.GSTRate),
			LowStockAlert: &lowStock,
			CreatedAt:     p.CreatedAt,
			SyncedAt:      stampedAt(syncedAt),
		}
	},
	FromRemote: func(r models.ProductRow) (models.Product, error) {
		if r.ID == "" {
			return models.Product{}, fmt.Errorf("%w: product row without id", ErrMalformedRemoteRow)
		}

		// rows written by other clients may leave the defaults to us
		unit := value(r.Unit)
		if unit == "" {
			unit = models.DefaultProductUnit
		}
		lowStock := models.DefaultLowStockAlert
		if r.LowStockAlert != nil {
			lowStock = *r.LowStockAlert
		}
		var quantity int
		if r.Quantity != nil {
			quantity = *r.Quantity
		}

		return models.Product{
			RecordMeta:    remoteMeta(r.ID, r.UserID, r.CreatedAt, r.SyncedAt),
			Name:          r.Name,
			SKU:           value(r.SKU),
			HSNCode:       value(r.HSNCode),
			Description:   value(r.Description),
			Quantity:      quantity,
			Unit:          unit,
			Price:         r.Price.Float64(),
			Cost:          r.Cost.Float64(),
			GSTRate:       r.GSTRate.Float64(),
			LowStockAlert: lowStock,
		}, nil
	},
}

var LedgerEntryDescriptor = Descriptor[models.LedgerEntry, models.LedgerEntryRow]{
	LocalKey:    models.DatasetLedgerEntries,
	RemoteTable: models.TableLedgerEntries,
	Table:       func(t gateway.Tables) gateway.Table[models.LedgerEntryRow] { return t.LedgerEntries },
	ToRemote: func(e models.LedgerEntry, ownerID string, syncedAt time.Time) models.LedgerEntryRow {
		return models.LedgerEntryRow{
			ID:          e.ID,
			UserID:      ownerID,
			EntryType:   string(e.Type),
			Category:    e.Category,
			Amount:      models.Numeric(e.Amount),
			Description: nullable(e.Description),
			Reference:   nullable(e.Reference),
			EntryDate:   models.Date(e.Date),
			CreatedAt:   e.CreatedAt,
			SyncedAt:    stampedAt(syncedAt),
		}
	},
	FromRemote: func(r models.LedgerEntryRow) (models.LedgerEntry, error) {
		if r.ID == "" {
			return models.LedgerEntry{}, fmt.Errorf("%w: ledger entry row without id", ErrMalformedRemoteRow)
		}
		return models.LedgerEntry{
			RecordMeta:  remoteMeta(r.ID, r.UserID, r.CreatedAt, r.SyncedAt),
			Date:        string(r.EntryDate),
			Type:        models.LedgerEntryType(r.EntryType),
			Category:    r.Category,
			Description: value(r.Description),
			Amount:      r.Amount.Float64(),
			Reference:   value(r.Reference),
		}, nil
	},
}

// nullable maps an empty optional field to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stampedAt(at time.Time) *time.Time {
	at = at.UTC()
	return &at
}

func remoteMeta(id, userID string, createdAt time.Time, syncedAt *time.Time) models.RecordMeta {
	return models.RecordMeta{
		ID:        id,
		UserID:    userID,
		CreatedAt: createdAt,
		Sync:      models.StampFromRemote(syncedAt),
	}
}
