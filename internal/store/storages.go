package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Storages is the remote store: the user accounts and the four business
// tables, all in one Postgres database.
type Storages struct {
	UserRepository UserRepository

	db     *DB
	tables gateway.Tables
}

// NewStorages connects to Postgres at dsn and applies the remote schema.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.MigrateRemote(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
		tables:         NewPostgresTables(db),
	}
}

// Tables returns the unscoped table gateways.
func (s *Storages) Tables() gateway.Tables {
	return s.tables
}

// TablesFor returns gateways that only read and write rows of ownerID.
func (s *Storages) TablesFor(ownerID string) gateway.Tables {
	return gateway.Tables{
		Customers:     NewPostgresTable[models.CustomerRow](s.db, models.TableCustomers).Scoped(ownerID),
		Suppliers:     NewPostgresTable[models.SupplierRow](s.db, models.TableSuppliers).Scoped(ownerID),
		Products:      NewPostgresTable[models.ProductRow](s.db, models.TableProducts).Scoped(ownerID),
		LedgerEntries: NewPostgresTable[models.LedgerEntryRow](s.db, models.TableLedgerEntries).Scoped(ownerID),
	}
}

// Close closes the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
