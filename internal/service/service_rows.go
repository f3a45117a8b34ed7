// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// TableProvider hands out the remote tables restricted to one owner.
type TableProvider interface {
	TablesFor(ownerID string) gateway.Tables
}

// rowEndpoint serves one remote table for the REST surface, decoding rows
// of its own type.
type rowEndpoint interface {
	selectRows(ctx context.Context, tables gateway.Tables, ownerID string) (any, error)
	upsertRows(ctx context.Context, tables gateway.Tables, body []byte) (int, error)
	update(ctx context.Context, tables gateway.Tables, id string, patch map[string]any) error
	delete(ctx context.Context, tables gateway.Tables, id string) error
}

type typedEndpoint[R store.Row] struct {
	pick func(gateway.Tables) gateway.Table[R]
}

func (e typedEndpoint[R]) selectRows(ctx context.Context, tables gateway.Tables, ownerID string) (any, error) {
	return e.pick(tables).Select(ctx, ownerID)
}

func (e typedEndpoint[R]) upsertRows(ctx context.Context, tables gateway.Tables, body []byte) (int, error) {
	rows, err := utils.DecodeJSON[[]R](body)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	for i, row := range rows {
		if row.RowID() == "" {
			return 0, fmt.Errorf("%w: row %d has no id", ErrInvalidDataProvided, i)
		}
	}
	return len(rows), e.pick(tables).Upsert(ctx, rows)
}

func (e typedEndpoint[R]) update(ctx context.Context, tables gateway.Tables, id string, patch map[string]any) error {
	return e.pick(tables).Update(ctx, id, patch)
}

func (e typedEndpoint[R]) delete(ctx context.Context, tables gateway.Tables, id string) error {
	return e.pick(tables).Delete(ctx, id)
}

var rowEndpoints = map[string]rowEndpoint{
	models.TableCustomers:     typedEndpoint[models.CustomerRow]{pick: CustomerDescriptor.Table},
	models.TableSuppliers:     typedEndpoint[models.SupplierRow]{pick: SupplierDescriptor.Table},
	models.TableProducts:      typedEndpoint[models.ProductRow]{pick: ProductDescriptor.Table},
	models.TableLedgerEntries: typedEndpoint[models.LedgerEntryRow]{pick: LedgerEntryDescriptor.Table},
}

// rowService is the server side of the remote tables. Every call acts on
// the tables of the authenticated owner only.
type rowService struct {
	tables TableProvider
	logger *logger.Logger
}

func NewRowService(tables TableProvider, logger *logger.Logger) RowService {
	return &rowService{tables: tables, logger: logger}
}

func (s *rowService) endpoint(table string) (rowEndpoint, error) {
	e, ok := rowEndpoints[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return e, nil
}

func (s *rowService) Select(ctx context.Context, ownerID, table string) (any, error) {
	e, err := s.endpoint(table)
	if err != nil {
		return nil, err
	}
	return e.selectRows(ctx, s.tables.TablesFor(ownerID), ownerID)
}

func (s *rowService) Upsert(ctx context.Context, ownerID, table string, body []byte) error {
	e, err := s.endpoint(table)
	if err != nil {
		return err
	}

	n, err := e.upsertRows(ctx, s.tables.TablesFor(ownerID), body)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "rowService.Upsert").Str("table", table).Str("owner_id", ownerID).Msg("upsert failed")
		return err
	}
	logger.FromContext(ctx).Debug().Str("table", table).Str("owner_id", ownerID).Int("rows", n).Msg("rows upserted")
	return nil
}

func (s *rowService) Update(ctx context.Context, ownerID, table, id string, patch map[string]any) error {
	e, err := s.endpoint(table)
	if err != nil {
		return err
	}
	if len(patch) == 0 {
		return fmt.Errorf("%w: empty patch", ErrInvalidDataProvided)
	}
	return e.update(ctx, s.tables.TablesFor(ownerID), id, patch)
}

func (s *rowService) Delete(ctx context.Context, ownerID, table, id string) error {
	e, err := s.endpoint(table)
	if err != nil {
		return err
	}
	return e.delete(ctx, s.tables.TablesFor(ownerID), id)
}
