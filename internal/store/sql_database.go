package store

import (
	"database/sql"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/migrations"
)

// DB is an opened database handle shared by the repositories of one store.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateLocal applies the local key/value schema (sqlite).
func (db *DB) MigrateLocal() error {
	return migrations.MigrateLocal(db.DB)
}

// MigrateRemote applies the remote store schema (Postgres).
func (db *DB) MigrateRemote() error {
	return migrations.MigrateRemote(db.DB)
}
