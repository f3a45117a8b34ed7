package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

var errReadOnlyRole = errors.New("your role can only view records")

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayForm
	overlayConfirm
	overlayError
)

// mainLoopModel is the dashboard: stats, the dataset tabs and the sync
// badge fed by the sync engine's state stream.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	toasts   *Toasts
	states   <-chan models.SyncState
	now      func() time.Time

	state    models.SyncState
	spin     spinner.Model
	stats    models.DashboardStats
	lowStock []models.Product
	pending  int

	tab      int
	rows     []recordRow
	selected int

	overlay    overlayKind
	form       *recordForm
	confirm    confirmModel
	errOverlay errorOverlayModel

	toast    *models.Notification
	toastSeq int
	status   string
	syncing  bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, toasts *Toasts, states <-chan models.SyncState) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		toasts:   toasts,
		states:   states,
		now:      time.Now,
		state:    services.SyncService.State(),
		spin:     newSyncSpinner(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spin.Tick, m.toasts.wait(m.ctx), waitForState(m.ctx, m.states))
}

func (m mainLoopModel) dataset() datasetTab {
	return datasetTabs[m.tab]
}

func (m mainLoopModel) load() tea.Cmd {
	ctx, records, syncSvc := m.ctx, m.services.RecordService, m.services.SyncService
	dataset := m.dataset().dataset
	return func() tea.Msg {
		return dashboardLoadedMsg{
			stats:    records.Stats(ctx),
			lowStock: records.LowStockProducts(ctx),
			rows:     loadRows(ctx, records, dataset),
			pending:  syncSvc.CalculatePendingChanges(ctx),
		}
	}
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = models.SyncState(msg)
		return m, waitForState(m.ctx, m.states)

	case toastMsg:
		n := models.Notification(msg)
		m.toast = &n
		m.toastSeq++
		return m, tea.Batch(clearToastAfter(m.toastSeq), m.toasts.wait(m.ctx))

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case dashboardLoadedMsg:
		m.stats = msg.stats
		m.lowStock = msg.lowStock
		m.rows = msg.rows
		m.pending = msg.pending
		if m.selected >= len(m.rows) {
			m.selected = max(len(m.rows)-1, 0)
		}
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if !msg.Success && msg.Error != "" {
			m.status = msg.Error
		} else {
			m.status = ""
		}
		return m, m.load()

	case formSavedMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.overlay, m.form = overlayNone, nil
		m.status = "Saved " + msg.label
		return m, m.load()

	case actionDoneMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = msg.status
		if msg.reload {
			return m, m.load()
		}
		return m, nil

	case modeSwitchedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		if msg.logout {
			m.logout = true
			return m, tea.Quit
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.overlay == overlayForm && m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *mainLoopModel) showError(err error) {
	m.overlay = overlayError
	m.errOverlay = errorOverlayModel{message: humanizeError(err)}
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayError:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = overlayNone
		}
		return m, nil

	case overlayConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			return m, m.deleteSelected()
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
		return m, nil

	case overlayForm:
		switch {
		case key.Matches(msg, keys.esc):
			m.overlay, m.form = overlayNone, nil
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.saveForm()
		}
		return m, m.form.update(msg)
	}

	auth := m.services.AuthService
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, keys.down):
		if m.selected < len(m.rows)-1 {
			m.selected++
		}

	case key.Matches(msg, keys.tab, keys.right):
		m.tab = (m.tab + 1) % len(datasetTabs)
		m.selected = 0
		return m, m.load()

	case key.Matches(msg, keys.backtab, keys.left):
		m.tab = (m.tab - 1 + len(datasetTabs)) % len(datasetTabs)
		m.selected = 0
		return m, m.load()

	case key.Matches(msg, keys.reload):
		return m, m.load()

	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		ctx, syncSvc := m.ctx, m.services.SyncService
		sc := auth.Context()
		return m, func() tea.Msg { return syncDoneMsg(syncSvc.TriggerSync(ctx, sc)) }

	case key.Matches(msg, keys.cloud):
		return m, m.toggleMode()

	case key.Matches(msg, keys.export):
		return m, m.export()

	case key.Matches(msg, keys.logout):
		ctx := m.ctx
		return m, func() tea.Msg {
			err := auth.Logout(ctx)
			return modeSwitchedMsg{err: err, logout: err == nil}
		}

	case key.Matches(msg, keys.newItem):
		if !auth.HasPermission(models.RoleAccountant) {
			m.showError(errReadOnlyRole)
			return m, nil
		}
		form, err := newRecordForm(m.dataset().dataset)
		if err != nil {
			m.showError(err)
			return m, nil
		}
		m.form, m.overlay = form, overlayForm
		return m, textinput.Blink

	case key.Matches(msg, keys.delete):
		if len(m.rows) == 0 {
			return m, nil
		}
		if !auth.HasPermission(models.RoleAccountant) {
			m.showError(errReadOnlyRole)
			return m, nil
		}
		m.confirm = confirmModel{message: m.rows[m.selected].label}
		m.overlay = overlayConfirm
	}
	return m, nil
}

func (m mainLoopModel) saveForm() tea.Cmd {
	ctx, records, form, now := m.ctx, m.services.RecordService, m.form, m.now()
	return func() tea.Msg {
		label, err := form.save(ctx, records, now)
		return formSavedMsg{label: label, err: err}
	}
}

func (m mainLoopModel) deleteSelected() tea.Cmd {
	if m.selected >= len(m.rows) {
		return nil
	}
	row := m.rows[m.selected]
	ctx, records, dataset := m.ctx, m.services.RecordService, m.dataset().dataset
	return func() tea.Msg {
		if err := deleteRecord(ctx, records, dataset, row.id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Deleted " + row.label, reload: true}
	}
}

func (m mainLoopModel) toggleMode() tea.Cmd {
	ctx, auth, toasts := m.ctx, m.services.AuthService, m.toasts
	return func() tea.Msg {
		var (
			err     error
			message string
		)
		if auth.IsCloudMode() {
			err, message = auth.SwitchToLocalMode(ctx), app.MsgLocalModeEnabled
		} else {
			err, message = auth.SwitchToCloudMode(ctx), app.MsgCloudModeEnabled
		}
		if err != nil {
			return modeSwitchedMsg{err: err}
		}
		toasts.Notify(models.Notification{Kind: models.NotifyInfo, Message: message})
		return modeSwitchedMsg{logout: !auth.IsAuthenticated()}
	}
}

func (m mainLoopModel) export() tea.Cmd {
	ctx, records := m.ctx, m.services.RecordService
	return func() tea.Msg {
		data, err := records.Export(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if err = clipboard.WriteAll(string(data)); err != nil {
			return actionDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return actionDoneMsg{status: app.MsgDataExported}
	}
}

func (m mainLoopModel) View() string {
	switch m.overlay {
	case overlayForm:
		return appStyle.Render(m.form.view())
	case overlayConfirm:
		return appStyle.Render(m.confirm.View())
	case overlayError:
		return appStyle.Render(m.errOverlay.View())
	}

	auth := m.services.AuthService
	mode := "offline"
	if auth.IsCloudMode() {
		mode = "cloud"
	}

	badgeState := m.state
	badgeState.PendingChanges = m.pending

	var b strings.Builder
	b.WriteString(renderSyncBadge(badgeState, m.spin))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(mode + " · " + string(auth.CurrentRole())))
	b.WriteString("\n\n")
	b.WriteString(renderStats(m.stats))
	if len(m.lowStock) > 0 {
		names := make([]string, 0, len(m.lowStock))
		for _, p := range m.lowStock {
			names = append(names, fmt.Sprintf("%s (%d)", p.Name, p.Quantity))
		}
		b.WriteString("\n")
		b.WriteString(pendingStyle.Render("Low stock: " + strings.Join(names, ", ")))
	}
	b.WriteString("\n\n")
	b.WriteString(renderTabs(m.tab))
	b.WriteString("\n")
	b.WriteString(renderRows(m.dataset(), m.rows, m.selected))
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	if toast := renderToast(m.toast); toast != "" {
		b.WriteString("\n\n")
		b.WriteString(toast)
	}

	hotKeys := "tab: next list   n: new   d: delete   s: sync   c: cloud/offline   e: export   r: reload   o: sign out   q: quit"
	return renderPage("LEDGER KEEPER", b.String(), hotKeys)
}

func renderStats(s models.DashboardStats) string {
	return fmt.Sprintf(
		"Income %s   Expense %s   Profit %s\nCash %s   Stock %s   Receivable %s   Payable %s   Invoices %d   Customers %d",
		money(s.TotalIncome), money(s.TotalExpense), money(s.Profit),
		money(s.CashBalance), money(s.StockValue), money(s.Receivables), money(s.Payables),
		s.InvoiceCount, s.CustomerCount,
	)
}
