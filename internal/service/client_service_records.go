package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	ledgerCategorySales     = "Sales"
	ledgerCategoryPurchases = "Purchases"
)

type clientRecordService struct {
	data *localData

	customers     collection[models.Customer, *models.Customer]
	suppliers     collection[models.Supplier, *models.Supplier]
	products      collection[models.Product, *models.Product]
	ledgerEntries collection[models.LedgerEntry, *models.LedgerEntry]
	invoices      collection[models.Invoice, *models.Invoice]
	purchases     collection[models.Purchase, *models.Purchase]

	now    func() time.Time
	logger *logger.Logger
}

// NewClientRecordService creates the record service over its own view of the
// local store.
func NewClientRecordService(localStore store.LocalStorage, logger *logger.Logger) ClientRecordService {
	return newClientRecordService(newLocalData(localStore), time.Now, logger)
}

func newClientRecordService(data *localData, now func() time.Time, logger *logger.Logger) *clientRecordService {
	v := validators.NewRecordValidator()
	return &clientRecordService{
		data:          data,
		customers:     collection[models.Customer, *models.Customer]{data, models.DatasetCustomers, true, v, now},
		suppliers:     collection[models.Supplier, *models.Supplier]{data, models.DatasetSuppliers, true, v, now},
		products:      collection[models.Product, *models.Product]{data, models.DatasetProducts, true, v, now},
		ledgerEntries: collection[models.LedgerEntry, *models.LedgerEntry]{data, models.DatasetLedgerEntries, true, v, now},
		invoices:      collection[models.Invoice, *models.Invoice]{data, models.DatasetInvoices, false, v, now},
		purchases:     collection[models.Purchase, *models.Purchase]{data, models.DatasetPurchases, false, v, now},
		now:           now,
		logger:        logger,
	}
}

func (s *clientRecordService) Customers(ctx context.Context) []models.Customer {
	return s.customers.list(ctx)
}

func (s *clientRecordService) Customer(ctx context.Context, id string) (models.Customer, error) {
	return s.customers.get(ctx, id)
}

func (s *clientRecordService) AddCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	return s.customers.add(ctx, c)
}

func (s *clientRecordService) UpdateCustomer(ctx context.Context, id string, c models.Customer) (models.Customer, error) {
	return s.customers.update(ctx, id, c)
}

func (s *clientRecordService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customers.delete(ctx, id)
}

func (s *clientRecordService) Suppliers(ctx context.Context) []models.Supplier {
	return s.suppliers.list(ctx)
}

func (s *clientRecordService) AddSupplier(ctx context.Context, sup models.Supplier) (models.Supplier, error) {
	return s.suppliers.add(ctx, sup)
}

func (s *clientRecordService) UpdateSupplier(ctx context.Context, id string, sup models.Supplier) (models.Supplier, error) {
	return s.suppliers.update(ctx, id, sup)
}

func (s *clientRecordService) DeleteSupplier(ctx context.Context, id string) error {
	return s.suppliers.delete(ctx, id)
}

func (s *clientRecordService) Products(ctx context.Context) []models.Product {
	return s.products.list(ctx)
}

// AddProduct fills in the default unit and low stock threshold.
func (s *clientRecordService) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if p.Unit == "" {
		p.Unit = models.DefaultProductUnit
	}
	if p.LowStockAlert == 0 {
		p.LowStockAlert = models.DefaultLowStockAlert
	}
	return s.products.add(ctx, p)
}

func (s *clientRecordService) UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error) {
	return s.products.update(ctx, id, p)
}

func (s *clientRecordService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.delete(ctx, id)
}

// LowStockProducts returns the products at or below their alert threshold.
func (s *clientRecordService) LowStockProducts(ctx context.Context) []models.Product {
	var low []models.Product
	for _, p := range s.products.list(ctx) {
		if p.Quantity <= p.LowStockAlert {
			low = append(low, p)
		}
	}
	return low
}

func (s *clientRecordService) LedgerEntries(ctx context.Context) []models.LedgerEntry {
	return s.ledgerEntries.list(ctx)
}

func (s *clientRecordService) AddLedgerEntry(ctx context.Context, e models.LedgerEntry) (models.LedgerEntry, error) {
	return s.ledgerEntries.add(ctx, e)
}

func (s *clientRecordService) UpdateLedgerEntry(ctx context.Context, id string, e models.LedgerEntry) (models.LedgerEntry, error) {
	return s.ledgerEntries.update(ctx, id, e)
}

func (s *clientRecordService) DeleteLedgerEntry(ctx context.Context, id string) error {
	return s.ledgerEntries.delete(ctx, id)
}

func (s *clientRecordService) Invoices(ctx context.Context) []models.Invoice {
	return s.invoices.list(ctx)
}

// AddInvoice stores the invoice and books its total as sales income.
func (s *clientRecordService) AddInvoice(ctx context.Context, inv models.Invoice) (models.Invoice, error) {
	inv, err := s.invoices.add(ctx, inv)
	if err != nil {
		return inv, err
	}

	_, err = s.ledgerEntries.add(ctx, models.LedgerEntry{
		Date:        inv.Date,
		Type:        models.LedgerIncome,
		Category:    ledgerCategorySales,
		Description: fmt.Sprintf("Invoice %s - %s", inv.InvoiceNumber, inv.CustomerName),
		Amount:      inv.Total,
		Reference:   inv.InvoiceNumber,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.AddInvoice").Str("invoice", inv.ID).Msg("ledger entry for invoice was not added")
		return inv, fmt.Errorf("book invoice %s: %w", inv.InvoiceNumber, err)
	}
	return inv, nil
}

func (s *clientRecordService) UpdateInvoice(ctx context.Context, id string, inv models.Invoice) (models.Invoice, error) {
	return s.invoices.update(ctx, id, inv)
}

func (s *clientRecordService) DeleteInvoice(ctx context.Context, id string) error {
	return s.invoices.delete(ctx, id)
}

// NextInvoiceNumber returns prefix + two-digit year + four-digit sequence.
func (s *clientRecordService) NextInvoiceNumber(ctx context.Context) string {
	return documentNumber(s.Settings(ctx).InvoicePrefix, s.now(), len(s.invoices.list(ctx))+1)
}

func (s *clientRecordService) Purchases(ctx context.Context) []models.Purchase {
	return s.purchases.list(ctx)
}

// AddPurchase stores the purchase and books its total as an expense.
func (s *clientRecordService) AddPurchase(ctx context.Context, p models.Purchase) (models.Purchase, error) {
	p, err := s.purchases.add(ctx, p)
	if err != nil {
		return p, err
	}

	_, err = s.ledgerEntries.add(ctx, models.LedgerEntry{
		Date:        p.Date,
		Type:        models.LedgerExpense,
		Category:    ledgerCategoryPurchases,
		Description: fmt.Sprintf("Purchase %s - %s", p.PurchaseNumber, p.SupplierName),
		Amount:      p.Total,
		Reference:   p.PurchaseNumber,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.AddPurchase").Str("purchase", p.ID).Msg("ledger entry for purchase was not added")
		return p, fmt.Errorf("book purchase %s: %w", p.PurchaseNumber, err)
	}
	return p, nil
}

func (s *clientRecordService) UpdatePurchase(ctx context.Context, id string, p models.Purchase) (models.Purchase, error) {
	return s.purchases.update(ctx, id, p)
}

func (s *clientRecordService) DeletePurchase(ctx context.Context, id string) error {
	return s.purchases.delete(ctx, id)
}

func (s *clientRecordService) NextPurchaseNumber(ctx context.Context) string {
	return documentNumber(s.Settings(ctx).PurchasePrefix, s.now(), len(s.purchases.list(ctx))+1)
}

func documentNumber(prefix string, now time.Time, seq int) string {
	return fmt.Sprintf("%s%02d%04d", prefix, now.Year()%100, seq)
}

// Stats derives the dashboard figures from the local datasets.
func (s *clientRecordService) Stats(ctx context.Context) models.DashboardStats {
	var st models.DashboardStats

	for _, e := range s.ledgerEntries.list(ctx) {
		switch e.Type {
		case models.LedgerIncome:
			st.TotalIncome += e.Amount
		case models.LedgerExpense:
			st.TotalExpense += e.Amount
		}
	}
	st.Profit = st.TotalIncome - st.TotalExpense
	st.CashBalance = st.Profit

	for _, p := range s.products.list(ctx) {
		st.StockValue += p.Cost * float64(p.Quantity)
	}

	invoices := s.invoices.list(ctx)
	for _, inv := range invoices {
		if inv.Status != models.InvoicePaid && inv.Status != models.InvoiceCancelled {
			st.Receivables += inv.Total
		}
	}
	st.InvoiceCount = len(invoices)

	for _, p := range s.purchases.list(ctx) {
		if p.Status == models.PurchasePending {
			st.Payables += p.Total
		}
	}
	st.CustomerCount = len(s.customers.list(ctx))

	return st
}

func (s *clientRecordService) Settings(ctx context.Context) models.AppSettings {
	return store.Load(ctx, s.data.ls, models.KeySettings, models.DefaultSettings())
}

func (s *clientRecordService) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	unlock := s.data.lock(models.KeySettings)
	defer unlock()
	return store.Save(ctx, s.data.ls, models.KeySettings, settings)
}

// ClearAll removes every key of the application namespace.
func (s *clientRecordService) ClearAll(ctx context.Context) error {
	if err := s.data.ls.Clear(ctx); err != nil {
		return fmt.Errorf("clear local data: %w", err)
	}
	s.logger.Info().Str("func", "clientRecordService.ClearAll").Msg("local data cleared")
	return nil
}

func (s *clientRecordService) Export(ctx context.Context) ([]byte, error) {
	return s.data.ls.ExportAll(ctx)
}

// Import writes a snapshot produced by Export. A snapshot that does not
// parse leaves the local data untouched.
func (s *clientRecordService) Import(ctx context.Context, snapshot []byte) error {
	if err := s.data.ls.ImportAll(ctx, snapshot); err != nil {
		s.logger.Err(err).Str("func", "clientRecordService.Import").Msg("import failed")
		return fmt.Errorf("import snapshot: %w", err)
	}
	return nil
}
