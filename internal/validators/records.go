package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldGSTIN       = "gstin"
	FieldState       = "state"
	FieldPinCode     = "pin_code"
	FieldQuantity    = "quantity"
	FieldPrice       = "price"
	FieldGSTRate     = "gst_rate"
	FieldEntryType   = "type"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDate        = "date"
	FieldItems       = "items"
	FieldCounterpart = "counterpart"
	FieldUsername    = "username"
	FieldPassword    = "password"
)

const minPasswordLength = 6

var (
	gstinPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	pinCodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// RecordValidator implements the Validator interface for the business
// records of the ledger and for account credentials.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Customer:
		return v.validateParty(value.Name, value.Email, value.GSTIN, value.State, value.PinCode, fields...)
	case *models.Customer:
		return v.validateParty(value.Name, value.Email, value.GSTIN, value.State, value.PinCode, fields...)

	case models.Supplier:
		return v.validateParty(value.Name, value.Email, value.GSTIN, value.State, value.PinCode, fields...)
	case *models.Supplier:
		return v.validateParty(value.Name, value.Email, value.GSTIN, value.State, value.PinCode, fields...)

	case models.Product:
		return v.validateProduct(value, fields...)
	case *models.Product:
		return v.validateProduct(*value, fields...)

	case models.LedgerEntry:
		return v.validateLedgerEntry(value, fields...)
	case *models.LedgerEntry:
		return v.validateLedgerEntry(*value, fields...)

	case models.Invoice:
		return v.validateDocument(value.CustomerID, value.Date, value.Items, fields...)
	case *models.Invoice:
		return v.validateDocument(value.CustomerID, value.Date, value.Items, fields...)

	case models.Purchase:
		return v.validateDocument(value.SupplierID, value.Date, value.Items, fields...)
	case *models.Purchase:
		return v.validateDocument(value.SupplierID, value.Date, value.Items, fields...)

	case models.User:
		return v.validateCredentials(value.Email, value.Password, true, fields...)
	case *models.User:
		return v.validateCredentials(value.Email, value.Password, true, fields...)

	case models.Credentials:
		return v.validateCredentials(value.Username, value.Password, false, fields...)
	case *models.Credentials:
		return v.validateCredentials(value.Username, value.Password, false, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateParty checks customers and suppliers, which share one shape.
// Optional fields are only checked when present.
func (v *RecordValidator) validateParty(name, email, gstin, state, pinCode string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldGSTIN, FieldState, FieldPinCode}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if email != "" {
				if _, err := mail.ParseAddress(email); err != nil {
					return ErrInvalidEmail
				}
			}
		case FieldGSTIN:
			if gstin != "" && !gstinPattern.MatchString(strings.ToUpper(gstin)) {
				return ErrInvalidGSTIN
			}
		case FieldState:
			if strings.TrimSpace(state) == "" {
				return ErrEmptyState
			}
		case FieldPinCode:
			if pinCode != "" && !pinCodePattern.MatchString(pinCode) {
				return ErrInvalidPinCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateProduct(p models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldQuantity, FieldPrice, FieldGSTRate}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				return ErrEmptyName
			}
		case FieldQuantity:
			if p.Quantity < 0 || p.LowStockAlert < 0 {
				return ErrInvalidQuantity
			}
		case FieldPrice:
			if p.Price < 0 || p.Cost < 0 {
				return ErrInvalidPrice
			}
		case FieldGSTRate:
			if p.GSTRate < 0 || p.GSTRate > 100 {
				return ErrInvalidGSTRate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateLedgerEntry(e models.LedgerEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryType, FieldCategory, FieldAmount, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryType:
			if e.Type != models.LedgerIncome && e.Type != models.LedgerExpense {
				return ErrInvalidEntryType
			}
		case FieldCategory:
			if strings.TrimSpace(e.Category) == "" {
				return ErrEmptyCategory
			}
		case FieldAmount:
			if e.Amount <= 0 {
				return ErrInvalidAmount
			}
		case FieldDate:
			if !isDate(e.Date) {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDocument checks invoices and purchases.
func (v *RecordValidator) validateDocument(counterpart, date string, items []models.InvoiceItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCounterpart, FieldDate, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldCounterpart:
			if counterpart == "" {
				return ErrEmptyCounterpart
			}
		case FieldDate:
			if !isDate(date) {
				return ErrInvalidDate
			}
		case FieldItems:
			if len(items) == 0 {
				return ErrEmptyItems
			}
			for i, item := range items {
				if item.Quantity <= 0 || item.Rate < 0 {
					return fmt.Errorf("validation error at item %d: %w", i, ErrInvalidQuantity)
				}
				if item.GSTRate < 0 || item.GSTRate > 100 {
					return fmt.Errorf("validation error at item %d: %w", i, ErrInvalidGSTRate)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials checks sign-in/sign-up input. Cloud accounts use an
// email as the login, local accounts a free-form username.
func (v *RecordValidator) validateCredentials(login, password string, isEmail bool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername, FieldEmail:
			if strings.TrimSpace(login) == "" {
				return ErrEmptyUsername
			}
			if isEmail {
				if _, err := mail.ParseAddress(login); err != nil {
					return ErrInvalidEmail
				}
			}
		case FieldPassword:
			if len(password) < minPasswordLength {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
