// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Remote table names.
const (
	TableCustomers     = "customers"
	TableSuppliers     = "suppliers"
	TableProducts      = "products"
	TableLedgerEntries = "ledger_entries"
)

// CustomerRow is a row of the remote customers table.
type CustomerRow struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	GSTIN     *string    `json:"gstin"`
	Address   *string    `json:"address"`
	City      *string    `json:"city"`
	State     *string    `json:"state"`
	PinCode   *string    `json:"pin_code"`
	CreatedAt time.Time  `json:"created_at"`
	SyncedAt  *time.Time `json:"synced_at"`
}

func (r CustomerRow) RowID() string { return r.ID }
func (r CustomerRow) Owner() string { return r.UserID }

func (r CustomerRow) Columns() []string {
	return []string{"id", "user_id", "name", "email", "phone", "gstin", "address", "city", "state", "pin_code", "created_at", "synced_at"}
}

func (r CustomerRow) Values() []any {
	return []any{r.ID, r.UserID, r.Name, r.Email, r.Phone, r.GSTIN, r.Address, r.City, r.State, r.PinCode, r.CreatedAt, r.SyncedAt}
}

func (r *CustomerRow) ScanTargets() []any {
	return []any{&r.ID, &r.UserID, &r.Name, &r.Email, &r.Phone, &r.GSTIN, &r.Address, &r.City, &r.State, &r.PinCode, &r.CreatedAt, &r.SyncedAt}
}

// SupplierRow is a row of the remote suppliers table.
type SupplierRow struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	GSTIN     *string    `json:"gstin"`
	Address   *string    `json:"address"`
	City      *string    `json:"city"`
	State     *string    `json:"state"`
	PinCode   *string    `json:"pin_code"`
	CreatedAt time.Time  `json:"created_at"`
	SyncedAt  *time.Time `json:"synced_at"`
}

func (r SupplierRow) RowID() string { return r.ID }
func (r SupplierRow) Owner() string { return r.UserID }

func (r SupplierRow) Columns() []string {
	return []string{"id", "user_id", "name", "email", "phone", "gstin", "address", "city", "state", "pin_code", "created_at", "synced_at"}
}

func (r SupplierRow) Values() []any {
	return []any{r.ID, r.UserID, r.Name, r.Email, r.Phone, r.GSTIN, r.Address, r.City, r.State, r.PinCode, r.CreatedAt, r.SyncedAt}
}

func (r *SupplierRow) ScanTargets() []any {
	return []any{&r.ID, &r.UserID, &r.Name, &r.Email, &r.Phone, &r.GSTIN, &r.Address, &r.City, &r.State, &r.PinCode, &r.CreatedAt, &r.SyncedAt}
}

// ProductRow is a row of the remote products table.
type ProductRow struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	SKU           *string    `json:"sku"`
	HSNCode       *string    `json:"hsn_code"`
	Description   *string    `json:"description"`
	Quantity      *int       `json:"quantity"`
	Unit          *string    `json:"unit"`
	Price         Numeric    `json:"price"`
	Cost          Numeric    `json:"cost"`
	GSTRate       Numeric    `json:"gst_rate"`
	LowStockAlert *int       `json:"low_stock_alert"`
	CreatedAt     time.Time  `json:"created_at"`
	SyncedAt      *time.Time `json:"synced_at"`
}

func (r ProductRow) RowID() string { return r.ID }
func (r ProductRow) Owner() string { return r.UserID }

func (r ProductRow) Columns() []string {
	return []string{"id", "user_id", "name", "sku", "hsn_code", "description", "quantity", "unit", "price", "cost", "gst_rate", "low_stock_alert", "created_at", "synced_at"}
}

func (r ProductRow) Values() []any {
	return []any{r.ID, r.UserID, r.Name, r.SKU, r.HSNCode, r.Description, r.Quantity, r.Unit, r.Price, r.Cost, r.GSTRate, r.LowStockAlert, r.CreatedAt, r.SyncedAt}
}

func (r *ProductRow) ScanTargets() []any {
	return []any{&r.ID, &r.UserID, &r.Name, &r.SKU, &r.HSNCode, &r.Description, &r.Quantity, &r.Unit, &r.Price, &r.Cost, &r.GSTRate, &r.LowStockAlert, &r.CreatedAt, &r.SyncedAt}
}

// LedgerEntryRow is a row of the remote ledger_entries table.
type LedgerEntryRow struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	EntryType   string     `json:"entry_type"`
	Category    string     `json:"category"`
	Amount      Numeric    `json:"amount"`
	Description *string    `json:"description"`
	Reference   *string    `json:"reference"`
	EntryDate   Date       `json:"entry_date"`
	CreatedAt   time.Time  `json:"created_at"`
	SyncedAt    *time.Time `json:"synced_at"`
}

func (r LedgerEntryRow) RowID() string { return r.ID }
func (r LedgerEntryRow) Owner() string { return r.UserID }

func (r LedgerEntryRow) Columns() []string {
	return []string{"id", "user_id", "entry_type", "category", "amount", "description", "reference", "entry_date", "created_at", "synced_at"}
}

func (r LedgerEntryRow) Values() []any {
	return []any{r.ID, r.UserID, r.EntryType, r.Category, r.Amount, r.Description, r.Reference, r.EntryDate, r.CreatedAt, r.SyncedAt}
}

func (r *LedgerEntryRow) ScanTargets() []any {
	return []any{&r.ID, &r.UserID, &r.EntryType, &r.Category, &r.Amount, &r.Description, &r.Reference, &r.EntryDate, &r.CreatedAt, &r.SyncedAt}
}
