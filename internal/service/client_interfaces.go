package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Notifier shows short-lived messages to the user.
type Notifier interface {
	Notify(n models.Notification)
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(models.Notification) {}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(models.Notification)

func (f NotifierFunc) Notify(n models.Notification) { f(n) }

// SyncContextSource reports the session a sync cycle should run with.
type SyncContextSource interface {
	Context() models.SyncContext
}

// ClientAuthService defines the client-side contract for local accounts,
// the cloud session and the offline/cloud mode switch.
type ClientAuthService interface {
	SyncContextSource

	// Restore loads the mode, session and current local user persisted by
	// the previous run. It is called once at startup.
	Restore(ctx context.Context)

	// RegisterLocal creates an offline account. Usernames are unique
	// regardless of case.
	RegisterLocal(ctx context.Context, creds models.Credentials) (models.LocalUser, error)

	// LoginLocal checks the password of an offline account and makes it the
	// current user.
	LoginLocal(ctx context.Context, username, password string) (models.LocalUser, error)

	// SignIn authenticates against the remote store and persists the session.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// SignUp registers a cloud account and signs it in.
	SignUp(ctx context.Context, user models.User) (models.Session, error)

	// Logout ends the session of the current mode.
	Logout(ctx context.Context) error

	SwitchToCloudMode(ctx context.Context) error
	SwitchToLocalMode(ctx context.Context) error

	IsCloudMode() bool
	IsAuthenticated() bool
	CurrentRole() models.UserRole
	HasPermission(required models.UserRole) bool

	// Subscribe delivers the sync context after every session or mode
	// change. The returned func cancels the subscription.
	Subscribe() (<-chan models.SyncContext, func())
}

// ClientRecordService defines CRUD over the local business datasets and the
// data management actions. Every call works against the local store only.
type ClientRecordService interface {
	Customers(ctx context.Context) []models.Customer
	Customer(ctx context.Context, id string) (models.Customer, error)
	AddCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, c models.Customer) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	Suppliers(ctx context.Context) []models.Supplier
	AddSupplier(ctx context.Context, s models.Supplier) (models.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, s models.Supplier) (models.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	Products(ctx context.Context) []models.Product
	AddProduct(ctx context.Context, p models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	LowStockProducts(ctx context.Context) []models.Product

	LedgerEntries(ctx context.Context) []models.LedgerEntry
	AddLedgerEntry(ctx context.Context, e models.LedgerEntry) (models.LedgerEntry, error)
	UpdateLedgerEntry(ctx context.Context, id string, e models.LedgerEntry) (models.LedgerEntry, error)
	DeleteLedgerEntry(ctx context.Context, id string) error

	Invoices(ctx context.Context) []models.Invoice
	AddInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, inv models.Invoice) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	NextInvoiceNumber(ctx context.Context) string

	Purchases(ctx context.Context) []models.Purchase
	AddPurchase(ctx context.Context, p models.Purchase) (models.Purchase, error)
	UpdatePurchase(ctx context.Context, id string, p models.Purchase) (models.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
	NextPurchaseNumber(ctx context.Context) string

	// Stats derives the dashboard figures from the local datasets.
	Stats(ctx context.Context) models.DashboardStats

	Settings(ctx context.Context) models.AppSettings
	SaveSettings(ctx context.Context, settings models.AppSettings) error

	ClearAll(ctx context.Context) error
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, snapshot []byte) error
}

// ClientSyncService defines the client-side contract for reconciling the
// local datasets with the remote tables.
type ClientSyncService interface {
	// FullSync pulls every dataset, then pushes every dataset. A cycle that
	// is already running, or a context that cannot sync, yields
	// {Success: false, Error: "Not ready to sync"}.
	FullSync(ctx context.Context, sc models.SyncContext) models.SyncResult

	// SyncFromCloud runs the pull half only.
	SyncFromCloud(ctx context.Context, sc models.SyncContext) models.SyncResult

	// SyncToCloud runs the push half only.
	SyncToCloud(ctx context.Context, sc models.SyncContext) models.SyncResult

	// TriggerSync is FullSync with progress reported through the Notifier.
	TriggerSync(ctx context.Context, sc models.SyncContext) models.SyncResult

	// CalculatePendingChanges counts local records not yet pushed.
	CalculatePendingChanges(ctx context.Context) int

	// Refresh re-derives the status after a session or mode change.
	Refresh(ctx context.Context, sc models.SyncContext) models.SyncState

	State() models.SyncState
	Subscribe() (<-chan models.SyncState, func())
}
