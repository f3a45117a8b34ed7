package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a [gateway.RemoteError].
func mapHTTPError(op, table string, resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return gateway.NewRemoteError(op, table, status, fmt.Errorf("%w: %s", statusClass(status), responseMessage(resp)))
}

func statusClass(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return gateway.ErrUnauthorized
	case status == http.StatusForbidden:
		return gateway.ErrForbidden
	case status == http.StatusNotFound:
		return gateway.ErrNotFound
	case status == http.StatusConflict:
		return gateway.ErrConflict
	case status == http.StatusRequestTimeout,
		status == http.StatusTooManyRequests,
		status >= http.StatusInternalServerError:
		return gateway.ErrUnavailable
	default:
		return gateway.ErrRejected
	}
}

// responseMessage extracts a readable message from an error body. JSON
// bodies of the remote store carry it in "message".
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var apiErr models.APIError
	if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}

// transportError wraps a failure that produced no HTTP response at all.
func transportError(op, table string, err error) error {
	return gateway.NewRemoteError(op, table, 0, fmt.Errorf("%w: %w", gateway.ErrUnavailable, err))
}

// decodeError reports a 2xx response whose body could not be decoded.
func decodeError(op, table string, err error) error {
	return gateway.NewRemoteError(op, table, 0, errors.Join(gateway.ErrInvalidResponse, err))
}
