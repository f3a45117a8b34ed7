package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

// restTable is a [gateway.Table] over /rest/v1/{table}. Filters use the
// PostgREST operator syntax ("user_id=eq.<owner>").
type restTable[R any] struct {
	adapter *RESTAdapter
	table   string
}

func newRESTTable[R any](a *RESTAdapter, table string) *restTable[R] {
	return &restTable[R]{adapter: a, table: table}
}

func (t *restTable[R]) path() string {
	return restPath + t.table
}

func (t *restTable[R]) Select(ctx context.Context, ownerID string) ([]R, error) {
	req, err := t.adapter.authedRequest(ctx, "select", t.table)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("user_id", "eq."+ownerID).
		SetQueryParam("select", "*").
		Get(t.path())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "restTable.Select").Str("table", t.table).Msg("select request failed")
		return nil, transportError("select", t.table, err)
	}
	if err = mapHTTPError("select", t.table, resp); err != nil {
		return nil, err
	}

	rows, err := utils.DecodeJSON[[]R](resp.Body())
	if err != nil {
		return nil, decodeError("select", t.table, err)
	}
	if rows == nil {
		rows = []R{}
	}

	return rows, nil
}

// Upsert posts all rows in one request, merging on the id conflict key.
func (t *restTable[R]) Upsert(ctx context.Context, rows []R) error {
	if len(rows) == 0 {
		return nil
	}

	req, err := t.adapter.authedRequest(ctx, "upsert", t.table)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "resolution=merge-duplicates").
		SetQueryParam("on_conflict", "id").
		SetBody(rows).
		Post(t.path())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "restTable.Upsert").
			Str("table", t.table).
			Int("rows", len(rows)).
			Msg("upsert request failed")
		return transportError("upsert", t.table, err)
	}

	return mapHTTPError("upsert", t.table, resp)
}

func (t *restTable[R]) Update(ctx context.Context, id string, patch map[string]any) error {
	req, err := t.adapter.authedRequest(ctx, "update", t.table)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetQueryParam("id", "eq."+id).
		SetBody(patch).
		Patch(t.path())
	if err != nil {
		return transportError("update", t.table, err)
	}

	return mapHTTPError("update", t.table, resp)
}

// Delete removes one row; a 404 means the row is already gone.
func (t *restTable[R]) Delete(ctx context.Context, id string) error {
	req, err := t.adapter.authedRequest(ctx, "delete", t.table)
	if err != nil {
		return err
	}

	resp, err := req.
		SetQueryParam("id", "eq."+id).
		Delete(t.path())
	if err != nil {
		return transportError("delete", t.table, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError("delete", t.table, resp)
}
