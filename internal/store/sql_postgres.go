package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// remoteError converts a database failure of a remote table operation into
// a [gateway.RemoteError] carrying the failure class.
func (db *DB) remoteError(op, table string, err error) error {
	if err == nil {
		return nil
	}

	var class error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), errors.Is(err, sql.ErrConnDone):
		class = gateway.ErrUnavailable
	case postgresError(err) == "":
		// not a server answer: the connection itself failed
		var connErr *pgconn.ConnectError
		if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
			class = gateway.ErrUnavailable
		} else {
			class = gateway.ErrRejected
		}
	case db.classifier().Classify(err) == Retryable:
		class = gateway.ErrUnavailable
	default:
		class = gateway.ErrRejected
	}

	return gateway.NewRemoteError(op, table, 0, fmt.Errorf("%w: %w", class, err))
}

func (db *DB) classifier() ErrorClassificator {
	if db.errorClassificator == nil {
		return NewPostgresErrorClassifier()
	}
	return db.errorClassificator
}
