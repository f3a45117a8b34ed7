package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyPrefix namespaces every key the application writes to a local backend.
// Keys without it belong to someone else and are never touched.
const KeyPrefix = "finexa_"

// LocalStorage is the offline-first record store of the client: a flat
// namespace of JSON documents, one per dataset key.
//
// Keys passed in and returned are unprefixed; backends add [KeyPrefix].
type LocalStorage interface {
	// Get returns the raw JSON stored under key. A missing key and a backend
	// failure both report ok == false.
	Get(ctx context.Context, key string) (raw []byte, ok bool)
	// Set replaces the whole document under key in a single persist call.
	Set(ctx context.Context, key string, raw []byte) error
	// Remove deletes one key.
	Remove(ctx context.Context, key string) error
	// Clear deletes every namespaced key.
	Clear(ctx context.Context) error
	// ExportAll returns a pretty-printed JSON object of every namespaced key.
	ExportAll(ctx context.Context) ([]byte, error)
	// ImportAll writes every key of a snapshot produced by ExportAll. A
	// snapshot that does not parse writes nothing and yields
	// ErrInvalidSnapshot.
	ImportAll(ctx context.Context, snapshot []byte) error
	// Close releases the backend.
	Close() error
}
