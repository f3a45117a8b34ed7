package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Numeric is a remote numeric column. The remote store may hand numerics back
// as JSON strings ("12.50") or as database text, so decoding accepts both
// shapes; NULL and unparsable text decode to zero.
type Numeric float64

func (n Numeric) Float64() float64 { return float64(n) }

func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode numeric string: %w", err)
		}
		*n = Numeric(parseNumeric(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("decode numeric: %w", err)
	}
	*n = Numeric(f)
	return nil
}

// Scan implements sql.Scanner.
func (n *Numeric) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = 0
	case float64:
		*n = Numeric(v)
	case float32:
		*n = Numeric(v)
	case int64:
		*n = Numeric(v)
	case []byte:
		*n = Numeric(parseNumeric(string(v)))
	case string:
		*n = Numeric(parseNumeric(v))
	default:
		return fmt.Errorf("unsupported numeric source %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (n Numeric) Value() (driver.Value, error) {
	return float64(n), nil
}

func parseNumeric(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

const dateLayout = "2006-01-02"

// Date is a calendar date column kept in its "YYYY-MM-DD" text form.
type Date string

// Scan implements sql.Scanner. DATE columns come back from pgx as time.Time.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(dateLayout))
	case []byte:
		*d = Date(v)
	case string:
		*d = Date(v)
	default:
		return fmt.Errorf("unsupported date source %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}
