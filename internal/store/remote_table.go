// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// Row is a value type mapped onto one remote table row.
type Row interface {
	RowID() string
	Owner() string
	Columns() []string
	Values() []any
}

// rowScanner is the pointer side of a Row that knows where to scan columns.
type rowScanner[R Row] interface {
	*R
	ScanTargets() []any
}

// PostgresTable is a [gateway.Table] over one Postgres table.
//
// An unscoped table (ownerID == "") trusts the user_id of incoming rows and
// is what a client in direct database mode uses. A scoped table is bound to
// one authenticated owner and refuses rows and ids of anybody else.
type PostgresTable[R Row, PR rowScanner[R]] struct {
	db      *DB
	table   string
	columns []string
	ownerID string
}

// NewPostgresTable returns a gateway over table.
func NewPostgresTable[R Row, PR rowScanner[R]](db *DB, table string) *PostgresTable[R, PR] {
	var zero R
	return &PostgresTable[R, PR]{
		db:      db,
		table:   table,
		columns: zero.Columns(),
	}
}

// Scoped returns a copy of t restricted to rows of ownerID.
func (t *PostgresTable[R, PR]) Scoped(ownerID string) *PostgresTable[R, PR] {
	scoped := *t
	scoped.ownerID = ownerID
	return &scoped
}

func (t *PostgresTable[R, PR]) Select(ctx context.Context, ownerID string) ([]R, error) {
	log := logger.FromContext(ctx)

	if t.ownerID != "" && ownerID != t.ownerID {
		return nil, gateway.NewRemoteError("select", t.table, 0, fmt.Errorf("%w: %w", gateway.ErrForbidden, ErrOwnerMismatch))
	}

	query, args, err := buildSelectRowsQuery(t.table, t.columns, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "PostgresTable.Select").Str("table", t.table).Msg("error selecting rows")
		return nil, t.db.remoteError("select", t.table, err)
	}
	defer rows.Close()

	result := make([]R, 0)
	for rows.Next() {
		var row R
		if err = rows.Scan(PR(&row).ScanTargets()...); err != nil {
			log.Err(err).Str("func", "PostgresTable.Select").Str("table", t.table).Msg("error scanning row")
			return nil, t.db.remoteError("select", t.table, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "PostgresTable.Select").Str("table", t.table).Msg("error occurred during rows iteration")
		return nil, t.db.remoteError("select", t.table, err)
	}

	return result, nil
}

// Upsert writes all rows in one statement. Rows are replaced by id; a row id
// held by another owner is left untouched.
func (t *PostgresTable[R, PR]) Upsert(ctx context.Context, rows []R) error {
	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		if t.ownerID != "" && row.Owner() != t.ownerID {
			return gateway.NewRemoteError("upsert", t.table, 0,
				fmt.Errorf("%w: %w: row %s", gateway.ErrForbidden, ErrOwnerMismatch, row.RowID()))
		}
		values = append(values, row.Values())
	}

	query, args, err := buildUpsertRowsQuery(t.table, t.columns, values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "PostgresTable.Upsert").
			Str("table", t.table).
			Int("rows", len(rows)).
			Msg("error upserting rows")
		return t.db.remoteError("upsert", t.table, err)
	}

	return nil
}

func (t *PostgresTable[R, PR]) Update(ctx context.Context, id string, patch map[string]any) error {
	query, args, err := buildUpdateRowQuery(t.table, t.columns, id, t.ownerID, patch)
	if err != nil {
		if errors.Is(err, ErrUnknownColumn) {
			return gateway.NewRemoteError("update", t.table, 0, fmt.Errorf("%w: %w", gateway.ErrRejected, err))
		}
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "PostgresTable.Update").Str("table", t.table).Str("id", id).Msg("error updating row")
		return t.db.remoteError("update", t.table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return t.db.remoteError("update", t.table, err)
	}
	if affected == 0 {
		return gateway.NewRemoteError("update", t.table, 0, fmt.Errorf("%w: id %s", gateway.ErrNotFound, id))
	}

	return nil
}

func (t *PostgresTable[R, PR]) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteRowQuery(t.table, id, t.ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "PostgresTable.Delete").Str("table", t.table).Str("id", id).Msg("error deleting row")
		return t.db.remoteError("delete", t.table, err)
	}

	return nil
}
