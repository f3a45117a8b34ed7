package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// NewLocalStorage opens the local backend selected in cfg.
func NewLocalStorage(ctx context.Context, cfg config.ClientLocal, log *logger.Logger) (LocalStorage, error) {
	log.Info().Str("backend", cfg.Backend).Str("dsn", cfg.DSN).Msg("opening local storage...")

	switch cfg.Backend {
	case config.LocalBackendFile:
		return NewFileLocalStorage(cfg.DSN)
	case config.LocalBackendSQLite, "":
		return NewSQLiteLocalStorage(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("unknown local storage backend %q", cfg.Backend)
	}
}

// NewPostgresTables returns unscoped gateways for every synchronised dataset
// of the remote database. The caller supplies the owner on every Select and
// stamps it on every row.
func NewPostgresTables(db *DB) gateway.Tables {
	return gateway.Tables{
		Customers:     NewPostgresTable[models.CustomerRow](db, models.TableCustomers),
		Suppliers:     NewPostgresTable[models.SupplierRow](db, models.TableSuppliers),
		Products:      NewPostgresTable[models.ProductRow](db, models.TableProducts),
		LedgerEntries: NewPostgresTable[models.LedgerEntryRow](db, models.TableLedgerEntries),
	}
}
