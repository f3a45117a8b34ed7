// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Local dataset keys. Each key holds a JSON array of records of one shape.
const (
	DatasetCustomers     = "customers"
	DatasetSuppliers     = "suppliers"
	DatasetProducts      = "products"
	DatasetLedgerEntries = "ledgerEntries"
	DatasetInvoices      = "invoices"
	DatasetPurchases     = "purchases"

	KeySettings       = "settings"
	KeyUsers          = "users"
	KeyCurrentUser    = "currentUser"
	KeyCloudMode      = "cloudMode"
	KeyPendingDeletes = "pendingDeletes"
	KeySession        = "session"
)

// RecordMeta is embedded into every business record.
type RecordMeta struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Sync      SyncStamp `json:"synced_at,omitzero"`
}

// GetMeta returns a copy of the record identity and sync state.
func (m RecordMeta) GetMeta() RecordMeta { return m }

// SetSync replaces the sync stamp of the record.
func (m *RecordMeta) SetSync(s SyncStamp) { m.Sync = s }

// SetMeta replaces the identity and sync state of the record.
func (m *RecordMeta) SetMeta(meta RecordMeta) { *m = meta }

// EverSynced reports whether the record has reached the remote store at
// some point, so deleting it has to be propagated.
func (m RecordMeta) EverSynced() bool {
	return m.UserID != "" || !m.Sync.IsPending()
}

// Record is implemented by every local business record.
type Record interface {
	GetMeta() RecordMeta
}

// RecordPtr is the pointer side of a Record, used by generic code that needs
// to restamp records in place.
type RecordPtr[T any] interface {
	*T
	Record
	SetSync(SyncStamp)
	SetMeta(RecordMeta)
}

type Customer struct {
	RecordMeta
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state"`
	PinCode string `json:"pin_code,omitempty"`
}

// Supplier has the same shape as Customer but lives in its own dataset.
type Supplier struct {
	RecordMeta
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state"`
	PinCode string `json:"pin_code,omitempty"`
}

const (
	DefaultProductUnit   = "pcs"
	DefaultLowStockAlert = 10
)

type Product struct {
	RecordMeta
	Name          string  `json:"name"`
	SKU           string  `json:"sku,omitempty"`
	HSNCode       string  `json:"hsn_code,omitempty"`
	Description   string  `json:"description,omitempty"`
	Quantity      int     `json:"quantity"`
	Unit          string  `json:"unit"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	GSTRate       float64 `json:"gst_rate"`
	LowStockAlert int     `json:"low_stock_alert"`
}

// LedgerEntryType is either income or expense.
type LedgerEntryType string

const (
	LedgerIncome  LedgerEntryType = "income"
	LedgerExpense LedgerEntryType = "expense"
)

type LedgerEntry struct {
	RecordMeta
	Date        string          `json:"date"`
	Type        LedgerEntryType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      float64         `json:"amount"`
	Reference   string          `json:"reference,omitempty"`
}

// InvoiceItem is a line of an invoice or a purchase.
type InvoiceItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId,omitempty"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	Rate         float64 `json:"rate"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discountType"`
	GSTRate      float64 `json:"gstRate"`
	Amount       float64 `json:"amount"`
}

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is local-only; it never leaves the device.
type Invoice struct {
	RecordMeta
	InvoiceNumber string        `json:"invoiceNumber"`
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Date          string        `json:"date"`
	DueDate       string        `json:"dueDate"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	DiscountTotal float64       `json:"discountTotal"`
	CGST          float64       `json:"cgst"`
	SGST          float64       `json:"sgst"`
	IGST          float64       `json:"igst"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
}

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseReceived  PurchaseStatus = "received"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// Purchase is local-only; it never leaves the device.
type Purchase struct {
	RecordMeta
	PurchaseNumber string         `json:"purchaseNumber"`
	SupplierID     string         `json:"supplierId"`
	SupplierName   string         `json:"supplierName"`
	Date           string         `json:"date"`
	Items          []InvoiceItem  `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	CGST           float64        `json:"cgst"`
	SGST           float64        `json:"sgst"`
	IGST           float64        `json:"igst"`
	Total          float64        `json:"total"`
	Status         PurchaseStatus `json:"status"`
	Notes          string         `json:"notes,omitempty"`
}

// Tombstone records a deletion of a syncable record that still has to be
// propagated to the remote store.
type Tombstone struct {
	Dataset   string    `json:"dataset"`
	ID        string    `json:"id"`
	DeletedAt time.Time `json:"deletedAt"`
}

// DashboardStats is derived from the local datasets.
type DashboardStats struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpense  float64 `json:"totalExpense"`
	Profit        float64 `json:"profit"`
	StockValue    float64 `json:"stockValue"`
	CashBalance   float64 `json:"cashBalance"`
	Receivables   float64 `json:"receivables"`
	Payables      float64 `json:"payables"`
	InvoiceCount  int     `json:"invoiceCount"`
	CustomerCount int     `json:"customerCount"`
}
