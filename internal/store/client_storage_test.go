package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendFactory struct {
	name string
	open func(t *testing.T) LocalStorage
}

func localBackends() []backendFactory {
	return []backendFactory{
		{
			name: "sqlite file",
			open: func(t *testing.T) LocalStorage {
				ls, err := NewSQLiteLocalStorage(context.Background(), filepath.Join(t.TempDir(), "ledger.db"), logger.Nop())
				require.NoError(t, err)
				t.Cleanup(func() { ls.Close() })
				return ls
			},
		},
		{
			name: "sqlite memory",
			open: func(t *testing.T) LocalStorage {
				ls, err := NewSQLiteLocalStorage(context.Background(), ":memory:", logger.Nop())
				require.NoError(t, err)
				t.Cleanup(func() { ls.Close() })
				return ls
			},
		},
		{
			name: "json file",
			open: func(t *testing.T) LocalStorage {
				ls, err := NewFileLocalStorage(filepath.Join(t.TempDir(), "ledger.json"))
				require.NoError(t, err)
				return ls
			},
		},
		{
			name: "json memory",
			open: func(t *testing.T) LocalStorage {
				ls, err := NewFileLocalStorage(":memory:")
				require.NoError(t, err)
				return ls
			},
		},
	}
}

func TestLocalStorage_SetGetRemove(t *testing.T) {
	for _, b := range localBackends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			ls := b.open(t)

			_, ok := ls.Get(ctx, "customers")
			assert.False(t, ok)

			require.NoError(t, ls.Set(ctx, "customers", []byte(`[{"id":"c1"}]`)))
			raw, ok := ls.Get(ctx, "customers")
			require.True(t, ok)
			assert.JSONEq(t, `[{"id":"c1"}]`, string(raw))

			require.NoError(t, ls.Set(ctx, "customers", []byte(`[]`)))
			raw, ok = ls.Get(ctx, "customers")
			require.True(t, ok)
			assert.JSONEq(t, `[]`, string(raw))

			require.NoError(t, ls.Remove(ctx, "customers"))
			_, ok = ls.Get(ctx, "customers")
			assert.False(t, ok)
		})
	}
}

func TestLocalStorage_LoadSave(t *testing.T) {
	type doc struct {
		Theme string `json:"theme"`
	}

	for _, b := range localBackends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			ls := b.open(t)

			assert.Equal(t, doc{Theme: "light"}, Load(ctx, ls, "settings", doc{Theme: "light"}))

			require.NoError(t, Save(ctx, ls, "settings", doc{Theme: "dark"}))
			assert.Equal(t, doc{Theme: "dark"}, Load(ctx, ls, "settings", doc{}))

			require.NoError(t, ls.Set(ctx, "settings", []byte(`{not json`)))
			assert.Equal(t, doc{Theme: "light"}, Load(ctx, ls, "settings", doc{Theme: "light"}))
		})
	}
}

func TestLocalStorage_ExportImportRoundTrip(t *testing.T) {
	for _, b := range localBackends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			src := b.open(t)

			require.NoError(t, src.Set(ctx, "customers", []byte(`[{"id":"c1","name":"Acme"}]`)))
			require.NoError(t, src.Set(ctx, "cloudMode", []byte(`true`)))

			snapshot, err := src.ExportAll(ctx)
			require.NoError(t, err)

			var parsed map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(snapshot, &parsed))
			assert.Len(t, parsed, 2)
			assert.Contains(t, parsed, "customers")
			assert.Contains(t, string(snapshot), "\n  ")

			dst := b.open(t)
			require.NoError(t, dst.Set(ctx, "products", []byte(`[]`)))
			require.NoError(t, dst.ImportAll(ctx, snapshot))

			raw, ok := dst.Get(ctx, "customers")
			require.True(t, ok)
			assert.JSONEq(t, `[{"id":"c1","name":"Acme"}]`, string(raw))

			// keys absent from the snapshot are kept
			_, ok = dst.Get(ctx, "products")
			assert.True(t, ok)
		})
	}
}

func TestLocalStorage_ImportInvalidSnapshot(t *testing.T) {
	snapshots := map[string]string{
		"not json":  `{"customers": [`,
		"array":     `[1,2,3]`,
		"null":      `null`,
		"empty key": `{"": []}`,
	}

	for _, b := range localBackends() {
		for name, snapshot := range snapshots {
			t.Run(b.name+"/"+name, func(t *testing.T) {
				ctx := context.Background()
				ls := b.open(t)
				require.NoError(t, ls.Set(ctx, "customers", []byte(`[{"id":"c1"}]`)))

				err := ls.ImportAll(ctx, []byte(snapshot))
				assert.ErrorIs(t, err, ErrInvalidSnapshot)
				assert.False(t, ImportAllOK(ctx, ls, []byte(snapshot)))

				raw, ok := ls.Get(ctx, "customers")
				require.True(t, ok)
				assert.JSONEq(t, `[{"id":"c1"}]`, string(raw))
			})
		}
	}
}

func TestLocalStorage_Clear(t *testing.T) {
	for _, b := range localBackends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			ls := b.open(t)

			require.NoError(t, ls.Set(ctx, "customers", []byte(`[]`)))
			require.NoError(t, ls.Set(ctx, "settings", []byte(`{}`)))
			require.NoError(t, ls.Clear(ctx))

			_, ok := ls.Get(ctx, "customers")
			assert.False(t, ok)
			_, ok = ls.Get(ctx, "settings")
			assert.False(t, ok)

			snapshot, err := ls.ExportAll(ctx)
			require.NoError(t, err)
			assert.JSONEq(t, `{}`, string(snapshot))
		})
	}
}

func TestSQLiteLocalStorage_ClearKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	ls, err := NewSQLiteLocalStorage(ctx, filepath.Join(t.TempDir(), "ledger.db"), logger.Nop())
	require.NoError(t, err)
	defer ls.Close()

	sqliteLS := ls.(*sqliteLocalStorage)
	_, err = sqliteLS.DB.ExecContext(ctx, `INSERT INTO kv_store (key, value) VALUES ('finexaXcustomers', '[]'), ('other', '1')`)
	require.NoError(t, err)
	require.NoError(t, ls.Set(ctx, "customers", []byte(`[]`)))

	require.NoError(t, ls.Clear(ctx))

	var left int
	require.NoError(t, sqliteLS.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_store`).Scan(&left))
	assert.Equal(t, 2, left)
}

func TestFileLocalStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "ledger.json")

	ls, err := NewFileLocalStorage(path)
	require.NoError(t, err)
	require.NoError(t, ls.Set(ctx, "customers", []byte(`[{"id":"c1"}]`)))
	require.NoError(t, ls.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"finexa_customers"`)

	reopened, err := NewFileLocalStorage(path)
	require.NoError(t, err)
	raw, ok := reopened.Get(ctx, "customers")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(raw))
}

func TestFileLocalStorage_ClearKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"other_app":1,"finexa_customers":[]}`), 0o600))

	ls, err := NewFileLocalStorage(path)
	require.NoError(t, err)
	require.NoError(t, ls.Clear(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"other_app":1}`, string(data))
}

func TestFileLocalStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{oops`), 0o600))

	_, err := NewFileLocalStorage(path)
	assert.Error(t, err)
}

func TestFileLocalStorage_Closed(t *testing.T) {
	ctx := context.Background()
	ls, err := NewFileLocalStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, ls.Close())

	assert.ErrorIs(t, ls.Set(ctx, "customers", []byte(`[]`)), ErrStoreClosed)
	_, err = ls.ExportAll(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestExportAll_NonJSONValueExportedAsString(t *testing.T) {
	payload, err := encodeSnapshot(map[string][]byte{"broken": []byte("{oops")})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(payload, &parsed))
	assert.Equal(t, "{oops", parsed["broken"])
}

func TestNewLocalStorage_Backends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	sqliteLS, err := NewLocalStorage(ctx, config.ClientLocal{DSN: filepath.Join(dir, "a.db"), Backend: config.LocalBackendSQLite}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &sqliteLocalStorage{}, sqliteLS)
	sqliteLS.Close()

	fileLS, err := NewLocalStorage(ctx, config.ClientLocal{DSN: filepath.Join(dir, "a.json"), Backend: config.LocalBackendFile}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &fileLocalStorage{}, fileLS)

	_, err = NewLocalStorage(ctx, config.ClientLocal{DSN: "x", Backend: "redis"}, logger.Nop())
	assert.Error(t, err)
}
