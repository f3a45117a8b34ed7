package gateway

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=gateway.go -destination=../mock/gateway_mock.go -package=mock

// Table is one remote table keyed by "id" and scoped by "user_id".
type Table[R any] interface {
	// Select returns every row owned by ownerID.
	Select(ctx context.Context, ownerID string) ([]R, error)
	// Upsert inserts or replaces rows by id in a single call. Repeating the
	// call with the same rows leaves the table unchanged.
	Upsert(ctx context.Context, rows []R) error
	// Update patches the named columns of one row.
	Update(ctx context.Context, id string, patch map[string]any) error
	// Delete removes one row. Deleting a missing row is not an error.
	Delete(ctx context.Context, id string) error
}

// Tables holds one gateway per synchronised dataset.
type Tables struct {
	Customers     Table[models.CustomerRow]
	Suppliers     Table[models.SupplierRow]
	Products      Table[models.ProductRow]
	LedgerEntries Table[models.LedgerEntryRow]
}

// Authenticator signs a user in against the remote store.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (models.Session, error)
	SignUp(ctx context.Context, user models.User) (models.Session, error)
	// UseSession makes subsequent table calls act on behalf of a restored
	// session.
	UseSession(session models.Session)
	SignOut(ctx context.Context) error
}
