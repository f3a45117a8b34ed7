package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates accounts of the remote store and
// issues the bearer tokens its REST surface accepts.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	NewSession(ctx context.Context, user models.User) (models.Session, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RowService serves the synchronised tables of one owner. Table names are
// the remote table names; anything else yields ErrUnknownTable.
type RowService interface {
	// Select returns every row of ownerID as a slice of the table's row type.
	Select(ctx context.Context, ownerID, table string) (any, error)
	// Upsert decodes a JSON array of rows and replaces them by id.
	Upsert(ctx context.Context, ownerID, table string, body []byte) error
	Update(ctx context.Context, ownerID, table, id string, patch map[string]any) error
	Delete(ctx context.Context, ownerID, table, id string) error
}
