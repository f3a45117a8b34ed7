package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("invalid record id")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidGSTIN     = errors.New("invalid GSTIN")
	ErrEmptyState       = errors.New("state is required")
	ErrInvalidPinCode   = errors.New("invalid PIN code")
	ErrInvalidQuantity  = errors.New("quantity cannot be negative")
	ErrInvalidPrice     = errors.New("price and cost cannot be negative")
	ErrInvalidGSTRate   = errors.New("GST rate must be between 0 and 100")
	ErrInvalidEntryType = errors.New("entry type must be income or expense")
	ErrEmptyCategory    = errors.New("category is required")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptyItems       = errors.New("at least one line item is required")
	ErrEmptyCounterpart = errors.New("counterparty is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrWeakPassword     = errors.New("password must be at least 6 characters")
)
