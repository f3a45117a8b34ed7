package store

import (
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

const kvTable = "kv_store"

// ── local key/value store (sqlite) ────────────────────────────────────────────

// namespaceFilter matches keys starting with KeyPrefix. LIKE is avoided
// because "_" in the prefix is a wildcard.
func namespaceFilter() sq.Sqlizer {
	return sq.Expr("substr(key, 1, ?) = ?", len(KeyPrefix), KeyPrefix)
}

func buildGetDocumentQuery(key string) (string, []any, error) {
	return sqlite.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": namespaced(key)}).
		ToSql()
}

func buildSetDocumentQuery(key string, raw []byte, now time.Time) (string, []any, error) {
	return sqlite.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(namespaced(key), raw, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveDocumentQuery(key string) (string, []any, error) {
	return sqlite.Delete(kvTable).
		Where(sq.Eq{"key": namespaced(key)}).
		ToSql()
}

func buildClearDocumentsQuery() (string, []any, error) {
	return sqlite.Delete(kvTable).
		Where(namespaceFilter()).
		ToSql()
}

func buildSelectDocumentsQuery() (string, []any, error) {
	return sqlite.Select("key", "value").
		From(kvTable).
		Where(namespaceFilter()).
		OrderBy("key").
		ToSql()
}

// ── remote tables (Postgres) ──────────────────────────────────────────────────

func buildSelectRowsQuery(table string, columns []string, ownerID string) (string, []any, error) {
	return psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at", "id").
		ToSql()
}

// buildUpsertRowsQuery inserts all rows in one statement, replacing rows that
// already exist by id. A row that belongs to a different owner is left alone.
func buildUpsertRowsQuery(table string, columns []string, rows [][]any) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("%w: no rows to upsert", ErrBuildingSQLQuery)
	}

	insert := psql.Insert(table).Columns(columns...)
	for _, values := range rows {
		insert = insert.Values(values...)
	}

	return insert.Suffix(onConflictUpdate(table, columns)).ToSql()
}

func onConflictUpdate(table string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == "id" || c == "user_id" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}

	return fmt.Sprintf("ON CONFLICT (id) DO UPDATE SET %s WHERE %s.user_id = EXCLUDED.user_id",
		strings.Join(sets, ", "), table)
}

func buildUpdateRowQuery(table string, columns []string, id, ownerID string, patch map[string]any) (string, []any, error) {
	if len(patch) == 0 {
		return "", nil, fmt.Errorf("%w: empty patch", ErrBuildingSQLQuery)
	}
	for col := range patch {
		if col == "id" || col == "user_id" || !slices.Contains(columns, col) {
			return "", nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, col)
		}
	}

	where := sq.Eq{"id": id}
	if ownerID != "" {
		where["user_id"] = ownerID
	}

	return psql.Update(table).
		SetMap(patch).
		Where(where).
		ToSql()
}

func buildDeleteRowQuery(table, id, ownerID string) (string, []any, error) {
	where := sq.Eq{"id": id}
	if ownerID != "" {
		where["user_id"] = ownerID
	}

	return psql.Delete(table).
		Where(where).
		ToSql()
}

// ── users (Postgres) ──────────────────────────────────────────────────────────

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"COALESCE(full_name, '')",
	"COALESCE(company_name, '')",
	"COALESCE(gst_state, '')",
	"role",
	"created_at",
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("id", "email", "password_hash", "full_name", "company_name", "gst_state", "role").
		Values(user.UserID, user.Email, user.PasswordHash, user.FullName, user.CompanyName, user.GSTState, string(user.Role)).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}
