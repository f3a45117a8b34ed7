package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

var (
	errNameRequired     = errors.New("name is required")
	errInvalidQuantity  = errors.New("quantity must be a whole number")
	errInvalidAmount    = errors.New("amount must be a number")
	errInvalidEntryType = errors.New("type must be income or expense")
	errCategoryRequired = errors.New("category is required")
	errNoFormForDataset = errors.New("records of this kind are created elsewhere")
)

var recordFormFields = map[string][]string{
	models.DatasetCustomers:     {"Name", "Phone", "State", "GSTIN"},
	models.DatasetSuppliers:     {"Name", "Phone", "State", "GSTIN"},
	models.DatasetProducts:      {"Name", "SKU", "Quantity", "Price"},
	models.DatasetLedgerEntries: {"Type", "Category", "Amount", "Description"},
}

// recordForm collects the fields of a new customer, supplier, product or
// ledger entry.
type recordForm struct {
	dataset string
	labels  []string
	inputs  []textinput.Model
	focus   int
	errMsg  string
}

func newRecordForm(dataset string) (*recordForm, error) {
	labels, ok := recordFormFields[dataset]
	if !ok {
		return nil, errNoFormForDataset
	}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = strings.ToLower(label)
		in.CharLimit = 120
		in.Width = 40
		inputs[i] = in
	}
	if dataset == models.DatasetLedgerEntries {
		inputs[0].SetValue(string(models.LedgerIncome))
	}
	inputs[0].Focus()

	return &recordForm{dataset: dataset, labels: labels, inputs: inputs}, nil
}

func (f *recordForm) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab", "down":
			f.move(1)
			return nil
		case "shift+tab", "up":
			f.move(-1)
			return nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *recordForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *recordForm) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// save validates the form and stores the record. It returns the label of
// the new record for the status line.
func (f *recordForm) save(ctx context.Context, records service.ClientRecordService, now time.Time) (string, error) {
	v := f.values()
	switch f.dataset {
	case models.DatasetCustomers:
		c, err := buildCustomer(v)
		if err != nil {
			return "", err
		}
		saved, err := records.AddCustomer(ctx, c)
		return saved.Name, err
	case models.DatasetSuppliers:
		c, err := buildCustomer(v)
		if err != nil {
			return "", err
		}
		saved, err := records.AddSupplier(ctx, models.Supplier{Name: c.Name, Phone: c.Phone, State: c.State, GSTIN: c.GSTIN})
		return saved.Name, err
	case models.DatasetProducts:
		p, err := buildProduct(v)
		if err != nil {
			return "", err
		}
		saved, err := records.AddProduct(ctx, p)
		return saved.Name, err
	case models.DatasetLedgerEntries:
		e, err := buildLedgerEntry(v, now)
		if err != nil {
			return "", err
		}
		saved, err := records.AddLedgerEntry(ctx, e)
		return saved.Category, err
	default:
		return "", errNoFormForDataset
	}
}

func (f *recordForm) view() string {
	var b strings.Builder
	for i, label := range f.labels {
		b.WriteString(padRight(label, 12))
		b.WriteString("│ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	return overlayBoxStyle.Render("New record\n\n" + b.String() + "\nenter save    tab next    esc cancel")
}

// buildCustomer reads Name, Phone, State, GSTIN.
func buildCustomer(v []string) (models.Customer, error) {
	if v[0] == "" {
		return models.Customer{}, errNameRequired
	}
	return models.Customer{Name: v[0], Phone: v[1], State: v[2], GSTIN: strings.ToUpper(v[3])}, nil
}

// buildProduct reads Name, SKU, Quantity, Price. Empty numbers are zero.
func buildProduct(v []string) (models.Product, error) {
	if v[0] == "" {
		return models.Product{}, errNameRequired
	}
	p := models.Product{Name: v[0], SKU: v[1]}
	if v[2] != "" {
		qty, err := strconv.Atoi(v[2])
		if err != nil {
			return models.Product{}, errInvalidQuantity
		}
		p.Quantity = qty
	}
	if v[3] != "" {
		price, err := strconv.ParseFloat(v[3], 64)
		if err != nil {
			return models.Product{}, fmt.Errorf("price: %w", errInvalidAmount)
		}
		p.Price = price
	}
	return p, nil
}

// buildLedgerEntry reads Type, Category, Amount, Description. The entry is
// dated today.
func buildLedgerEntry(v []string, now time.Time) (models.LedgerEntry, error) {
	entryType := models.LedgerEntryType(strings.ToLower(v[0]))
	if entryType != models.LedgerIncome && entryType != models.LedgerExpense {
		return models.LedgerEntry{}, errInvalidEntryType
	}
	if v[1] == "" {
		return models.LedgerEntry{}, errCategoryRequired
	}
	amount, err := strconv.ParseFloat(v[2], 64)
	if err != nil {
		return models.LedgerEntry{}, errInvalidAmount
	}
	return models.LedgerEntry{
		Date:        now.Format("2006-01-02"),
		Type:        entryType,
		Category:    v[1],
		Amount:      amount,
		Description: v[3],
	}, nil
}
