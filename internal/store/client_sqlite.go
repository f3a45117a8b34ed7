package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// sqliteLocalStorage keeps each dataset as one row of the kv_store table.
type sqliteLocalStorage struct {
	*DB
	now func() time.Time
}

// NewSQLiteLocalStorage opens (and migrates) the sqlite file at dsn.
func NewSQLiteLocalStorage(ctx context.Context, dsn string, log *logger.Logger) (LocalStorage, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateLocal(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newSQLiteLocalStorage(db), nil
}

func newSQLiteLocalStorage(db *DB) *sqliteLocalStorage {
	return &sqliteLocalStorage{DB: db, now: time.Now}
}

func (s *sqliteLocalStorage) Get(ctx context.Context, key string) ([]byte, bool) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteLocalStorage.Get").Str("key", key).Msg("failed to create query")
		return nil, false
	}

	var raw []byte
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "sqliteLocalStorage.Get").Str("key", key).Msg("failed to read document")
		}
		return nil, false
	}

	return raw, true
}

func (s *sqliteLocalStorage) Set(ctx context.Context, key string, raw []byte) error {
	query, args, err := buildSetDocumentQuery(key, raw, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteLocalStorage.Set").
			Str("key", key).
			Int("bytes", len(raw)).
			Msg("failed to write document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteLocalStorage) Remove(ctx context.Context, key string) error {
	query, args, err := buildRemoveDocumentQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteLocalStorage.Remove").Str("key", key).Msg("failed to remove document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteLocalStorage) Clear(ctx context.Context) error {
	query, args, err := buildClearDocumentsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteLocalStorage.Clear").Msg("failed to clear documents")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteLocalStorage) ExportAll(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteLocalStorage.ExportAll").Msg("failed to select documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make(map[string][]byte)
	for rows.Next() {
		var key string
		var raw []byte
		if err = rows.Scan(&key, &raw); err != nil {
			log.Err(err).Str("func", "sqliteLocalStorage.ExportAll").Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if k, ok := unprefixed(key); ok {
			docs[k] = raw
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqliteLocalStorage.ExportAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return encodeSnapshot(docs)
}

// ImportAll parses the snapshot before touching the database and writes all
// keys inside one transaction.
func (s *sqliteLocalStorage) ImportAll(ctx context.Context, snapshot []byte) error {
	log := logger.FromContext(ctx)

	docs, err := decodeSnapshot(snapshot)
	if err != nil {
		log.Warn().Err(err).Str("func", "sqliteLocalStorage.ImportAll").Msg("rejected snapshot")
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := s.now()
	for key, raw := range docs {
		query, args, buildErr := buildSetDocumentQuery(key, raw, now)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "sqliteLocalStorage.ImportAll").Str("key", key).Msg("failed to import document")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Str("func", "sqliteLocalStorage.ImportAll").Int("keys", len(docs)).Msg("snapshot imported")
	return nil
}

func (s *sqliteLocalStorage) Close() error {
	return s.DB.Close()
}
