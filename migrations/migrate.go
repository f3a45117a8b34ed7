// Package migrations embeds the schema of both stores and applies it with
// goose: the sqlite key/value table of the client's local record store and
// the Postgres tables of the remote store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed local/*.sql remote/*.sql
var embedMigrations embed.FS

const (
	localDir  = "local"
	remoteDir = "remote"
)

var errNilDB = errors.New("migration error: db is nil")

// MigrateLocal applies the sqlite migrations of the local record store.
func MigrateLocal(db *sql.DB) error {
	return migrate(db, "sqlite3", localDir)
}

// MigrateRemote applies the Postgres migrations of the remote store.
func MigrateRemote(db *sql.DB) error {
	return migrate(db, "pgx", remoteDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
