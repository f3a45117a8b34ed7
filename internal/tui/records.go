package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type datasetTab struct {
	dataset  string
	title    string
	syncable bool
	columns  []string
}

var datasetTabs = []datasetTab{
	{models.DatasetCustomers, "Customers", true, []string{"Name", "State", "Phone", "GSTIN"}},
	{models.DatasetSuppliers, "Suppliers", true, []string{"Name", "State", "Phone", "GSTIN"}},
	{models.DatasetProducts, "Products", true, []string{"Name", "SKU", "Qty", "Price"}},
	{models.DatasetLedgerEntries, "Ledger", true, []string{"Date", "Type", "Category", "Amount"}},
	{models.DatasetInvoices, "Invoices", false, []string{"Number", "Customer", "Date", "Total", "Status"}},
	{models.DatasetPurchases, "Purchases", false, []string{"Number", "Supplier", "Date", "Total", "Status"}},
}

// recordRow is one line of the dataset table.
type recordRow struct {
	id      string
	label   string
	cells   []string
	pending bool
}

func loadRows(ctx context.Context, records service.ClientRecordService, dataset string) []recordRow {
	var rows []recordRow
	switch dataset {
	case models.DatasetCustomers:
		for _, c := range records.Customers(ctx) {
			rows = append(rows, recordRow{c.ID, c.Name, []string{c.Name, c.State, orDash(c.Phone), orDash(c.GSTIN)}, c.Sync.IsPending()})
		}
	case models.DatasetSuppliers:
		for _, s := range records.Suppliers(ctx) {
			rows = append(rows, recordRow{s.ID, s.Name, []string{s.Name, s.State, orDash(s.Phone), orDash(s.GSTIN)}, s.Sync.IsPending()})
		}
	case models.DatasetProducts:
		for _, p := range records.Products(ctx) {
			qty := strconv.Itoa(p.Quantity) + " " + p.Unit
			rows = append(rows, recordRow{p.ID, p.Name, []string{p.Name, orDash(p.SKU), qty, money(p.Price)}, p.Sync.IsPending()})
		}
	case models.DatasetLedgerEntries:
		for _, e := range records.LedgerEntries(ctx) {
			label := e.Category + " " + money(e.Amount)
			rows = append(rows, recordRow{e.ID, label, []string{e.Date, string(e.Type), e.Category, money(e.Amount)}, e.Sync.IsPending()})
		}
	case models.DatasetInvoices:
		for _, inv := range records.Invoices(ctx) {
			rows = append(rows, recordRow{inv.ID, inv.InvoiceNumber, []string{inv.InvoiceNumber, inv.CustomerName, inv.Date, money(inv.Total), string(inv.Status)}, false})
		}
	case models.DatasetPurchases:
		for _, p := range records.Purchases(ctx) {
			rows = append(rows, recordRow{p.ID, p.PurchaseNumber, []string{p.PurchaseNumber, p.SupplierName, p.Date, money(p.Total), string(p.Status)}, false})
		}
	}
	return rows
}

func deleteRecord(ctx context.Context, records service.ClientRecordService, dataset, id string) error {
	switch dataset {
	case models.DatasetCustomers:
		return records.DeleteCustomer(ctx, id)
	case models.DatasetSuppliers:
		return records.DeleteSupplier(ctx, id)
	case models.DatasetProducts:
		return records.DeleteProduct(ctx, id)
	case models.DatasetLedgerEntries:
		return records.DeleteLedgerEntry(ctx, id)
	case models.DatasetInvoices:
		return records.DeleteInvoice(ctx, id)
	case models.DatasetPurchases:
		return records.DeletePurchase(ctx, id)
	default:
		return fmt.Errorf("unknown dataset %q", dataset)
	}
}

func renderTabs(active int) string {
	tabs := make([]string, 0, len(datasetTabs))
	for i, tab := range datasetTabs {
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(tab.title))
		} else {
			tabs = append(tabs, tabStyle.Render(tab.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

const maxCellWidth = 24

// renderRows draws the dataset table with the selected row highlighted.
// Rows not yet pushed carry a "*" marker.
func renderRows(tab datasetTab, rows []recordRow, selected int) string {
	if len(rows) == 0 {
		return helpStyle.Render("No records")
	}

	widths := make([]int, len(tab.columns))
	for i, col := range tab.columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, cell := range row.cells {
			if w := lipgloss.Width(fitText(cell, maxCellWidth)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(joinCells(tab.columns, widths))
	b.WriteString("\n")
	for i, row := range rows {
		marker := "  "
		if row.pending {
			marker = pendingStyle.Render("* ")
		}
		line := joinCells(row.cells, widths)
		if i == selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		var cell string
		if i < len(cells) {
			cell = fitText(cells[i], maxCellWidth)
		}
		parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return strings.Join(parts, " │ ")
}
