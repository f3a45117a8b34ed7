package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// fileLocalStorage keeps every key in memory and mirrors the whole map to a
// single JSON file on each write.
type fileLocalStorage struct {
	path     string
	inMemory bool

	mu     sync.RWMutex
	items  map[string]json.RawMessage
	closed bool
}

// NewFileLocalStorage opens the JSON file at path, creating it on first
// write. ":memory:" (or an empty path) keeps the data in process memory.
func NewFileLocalStorage(path string) (LocalStorage, error) {
	s := &fileLocalStorage{
		path:     path,
		inMemory: isInMemory(path),
		items:    make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileLocalStorage) Get(ctx context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.items[namespaced(key)]
	if !ok || s.closed {
		return nil, false
	}
	return append([]byte(nil), raw...), true
}

func (s *fileLocalStorage) Set(ctx context.Context, key string, raw []byte) error {
	return s.mutate(ctx, func(items map[string]json.RawMessage) {
		items[namespaced(key)] = append(json.RawMessage(nil), raw...)
	})
}

func (s *fileLocalStorage) Remove(ctx context.Context, key string) error {
	return s.mutate(ctx, func(items map[string]json.RawMessage) {
		delete(items, namespaced(key))
	})
}

func (s *fileLocalStorage) Clear(ctx context.Context) error {
	return s.mutate(ctx, func(items map[string]json.RawMessage) {
		maps.DeleteFunc(items, func(k string, _ json.RawMessage) bool {
			_, ours := unprefixed(k)
			return ours
		})
	})
}

func (s *fileLocalStorage) ExportAll(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	docs := make(map[string][]byte, len(s.items))
	for k, raw := range s.items {
		if key, ok := unprefixed(k); ok {
			docs[key] = raw
		}
	}
	return encodeSnapshot(docs)
}

func (s *fileLocalStorage) ImportAll(ctx context.Context, snapshot []byte) error {
	docs, err := decodeSnapshot(snapshot)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "fileLocalStorage.ImportAll").Msg("rejected snapshot")
		return err
	}

	return s.mutate(ctx, func(items map[string]json.RawMessage) {
		for k, raw := range docs {
			items[namespaced(k)] = raw
		}
	})
}

func (s *fileLocalStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// mutate applies fn to a copy of the items and swaps it in only after the
// copy has been persisted, so a failed write leaves memory and file in sync.
func (s *fileLocalStorage) mutate(ctx context.Context, fn func(map[string]json.RawMessage)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	next := maps.Clone(s.items)
	fn(next)

	if err := s.persist(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileLocalStorage.mutate").Str("path", s.path).Msg("failed to persist local store")
		return err
	}

	s.items = next
	return nil
}

func (s *fileLocalStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var items map[string]json.RawMessage
	if err = json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}
	if items != nil {
		s.items = items
	}

	return nil
}

func (s *fileLocalStorage) persist(items map[string]json.RawMessage) error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	// a document that is not JSON is kept as a JSON string
	out := make(map[string]any, len(items))
	for k, raw := range items {
		if json.Valid(raw) {
			out[k] = raw
		} else {
			out[k] = string(raw)
		}
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}
