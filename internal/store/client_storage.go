// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// Load decodes the document under key into T. A missing or unparsable
// document yields def; Load never fails.
func Load[T any](ctx context.Context, ls LocalStorage, key string, def T) T {
	raw, ok := ls.Get(ctx, key)
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "store.Load").
			Str("key", key).
			Msg("malformed local document, using default")
		return def
	}
	return v
}

// Save encodes v and replaces the document under key.
func Save[T any](ctx context.Context, ls LocalStorage, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodingDocument, key, err)
	}
	return ls.Set(ctx, key, raw)
}

// ImportAllOK is ImportAll reduced to a success flag.
func ImportAllOK(ctx context.Context, ls LocalStorage, snapshot []byte) bool {
	return ls.ImportAll(ctx, snapshot) == nil
}

func namespaced(key string) string { return KeyPrefix + key }

func unprefixed(key string) (string, bool) {
	return strings.CutPrefix(key, KeyPrefix)
}

// encodeSnapshot renders unprefixed key → raw document pairs as the export
// object. Documents that are not valid JSON are exported as strings.
func encodeSnapshot(docs map[string][]byte) ([]byte, error) {
	out := make(map[string]any, len(docs))
	for k, raw := range docs {
		if json.Valid(raw) {
			out[k] = json.RawMessage(raw)
		} else {
			out[k] = string(raw)
		}
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return payload, nil
}

// decodeSnapshot parses an export object into unprefixed key → compact raw
// document pairs.
func decodeSnapshot(snapshot []byte) (map[string][]byte, error) {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(snapshot, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if parsed == nil {
		return nil, ErrInvalidSnapshot
	}

	docs := make(map[string][]byte, len(parsed))
	for k, raw := range parsed {
		if k == "" {
			return nil, fmt.Errorf("%w: empty key", ErrInvalidSnapshot)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSnapshot, k, err)
		}
		docs[k] = buf.Bytes()
	}
	return docs, nil
}
