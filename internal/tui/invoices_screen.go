package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type invoiceViewMode int

const (
	invoiceViewList       invoiceViewMode = iota
	invoiceViewDetail                     // Viewing a single invoice
	invoiceViewEdit                       // Editing session menu
	invoiceViewEditItem                   // Line item form
	invoiceViewEditField                  // Single-field form (discount, notes, currency)
	invoiceViewPickClient                 // Choosing a saved client
)

// editField identifies which single-field form is open
type editField int

const (
	editFieldDiscount editField = iota
	editFieldNotes
	editFieldCurrency
)

// line item form field indices
const (
	itemFieldDescription = iota
	itemFieldQuantity
	itemFieldPrice
	itemFieldTax
	itemFieldCount
)

// InvoicesModel displays invoices and hosts the editing session
type InvoicesModel struct {
	app       *app.App
	mode      invoiceViewMode
	summaries []domain.InvoiceSummary
	cursor    int
	selected  *domain.Invoice
	loading   bool
	err       error
	statusMsg string

	// Editing session state
	editor     *service.Editor
	itemCursor int

	// Line item form state
	itemFields []textinput.Model
	itemFocus  int
	itemID     string

	// Single-field form state
	fieldInput textinput.Model
	fieldKind  editField

	// Client picker state
	pickClients []domain.Client
	pickCursor  int
}

// IsCapturingInput returns true for every editing mode so global navigation
// cannot silently abandon an unsaved session.
func (m *InvoicesModel) IsCapturingInput() bool {
	switch m.mode {
	case invoiceViewEdit, invoiceViewEditItem, invoiceViewEditField, invoiceViewPickClient:
		return true
	}
	return false
}

type invoicesDataMsg struct {
	summaries []domain.InvoiceSummary
	err       error
}

type invoiceDetailMsg struct {
	invoice *domain.Invoice
	err     error
}

// editorReadyMsg signals an editing session is loaded
type editorReadyMsg struct {
	err error
}

// invoiceSavedMsg signals the session invoice was persisted
type invoiceSavedMsg struct {
	number string
	err    error
}

// markPaidMsg signals a mark-paid write-through completed
type markPaidMsg struct {
	number string
	err    error
}

// exportDoneMsg signals PDF export completed
type exportDoneMsg struct {
	path string
	err  error
}

// pickClientsMsg carries the saved clients for the picker
type pickClientsMsg struct {
	clients []domain.Client
	err     error
}

// NewInvoicesModel creates a new invoices screen model
func NewInvoicesModel(a *app.App) tea.Model {
	return &InvoicesModel{
		app:     a,
		mode:    invoiceViewList,
		loading: true,
	}
}

func (m *InvoicesModel) Init() tea.Cmd {
	return m.loadInvoices()
}

func (m *InvoicesModel) loadInvoices() tea.Cmd {
	return func() tea.Msg {
		summaries, err := m.app.Dashboard.ListSummaries(context.Background())
		if err != nil {
			return invoicesDataMsg{err: err}
		}
		return invoicesDataMsg{summaries: summaries}
	}
}

func (m *InvoicesModel) loadDetail(id string) tea.Cmd {
	return func() tea.Msg {
		invoice, err := m.app.InvoiceRepo.FindByID(context.Background(), id)
		if err != nil {
			return invoiceDetailMsg{err: err}
		}
		if invoice == nil {
			return invoiceDetailMsg{err: service.ErrInvoiceNotFound}
		}
		return invoiceDetailMsg{invoice: invoice}
	}
}

// startNewInvoice begins an editing session on a fresh draft
func (m *InvoicesModel) startNewInvoice() tea.Cmd {
	m.editor = m.app.NewEditor()
	return func() tea.Msg {
		if _, err := m.editor.StartNew(context.Background()); err != nil {
			return editorReadyMsg{err: err}
		}
		cfg := m.app.Config.Invoice
		if cfg.DefaultTerms != "" {
			m.editor.SetPaymentTerms(cfg.DefaultTerms)
		}
		if cfg.Currency != "" {
			m.editor.SetCurrency(cfg.Currency)
		}
		return editorReadyMsg{}
	}
}

// startEditInvoice begins an editing session on a stored invoice
func (m *InvoicesModel) startEditInvoice(id string) tea.Cmd {
	m.editor = m.app.NewEditor()
	return func() tea.Msg {
		if _, err := m.editor.Load(context.Background(), id); err != nil {
			return editorReadyMsg{err: err}
		}
		return editorReadyMsg{}
	}
}

func (m *InvoicesModel) saveInvoice() tea.Cmd {
	return func() tea.Msg {
		number := m.editor.Invoice().InvoiceNumber
		if err := m.editor.Save(context.Background()); err != nil {
			return invoiceSavedMsg{err: err}
		}
		return invoiceSavedMsg{number: number}
	}
}

// markPaid loads its own session so it works from the list without
// disturbing any open editor.
func (m *InvoicesModel) markPaid(id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		editor := m.app.NewEditor()
		invoice, err := editor.Load(ctx, id)
		if err != nil {
			return markPaidMsg{err: err}
		}
		if err := editor.MarkPaid(ctx); err != nil {
			return markPaidMsg{err: err}
		}
		return markPaidMsg{number: invoice.InvoiceNumber}
	}
}

func (m *InvoicesModel) exportPDF(id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		invoice, err := m.app.InvoiceRepo.FindByID(ctx, id)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if invoice == nil {
			return exportDoneMsg{err: service.ErrInvoiceNotFound}
		}
		path, err := m.app.PDF.WriteFile(invoice, m.app.Config.Invoice.OutputDir)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *InvoicesModel) loadPickClients() tea.Cmd {
	return func() tea.Msg {
		clients, err := m.app.ClientRepo.LoadAll(context.Background())
		if err != nil {
			return pickClientsMsg{err: err}
		}
		return pickClientsMsg{clients: clients}
	}
}

func (m *InvoicesModel) initItemForm(item domain.LineItem) {
	m.itemFields = make([]textinput.Model, itemFieldCount)

	m.itemFields[itemFieldDescription] = textinput.New()
	m.itemFields[itemFieldDescription].Placeholder = "Description of work"
	m.itemFields[itemFieldDescription].CharLimit = 200
	m.itemFields[itemFieldDescription].Width = 50
	m.itemFields[itemFieldDescription].SetValue(item.Description)

	m.itemFields[itemFieldQuantity] = textinput.New()
	m.itemFields[itemFieldQuantity].Placeholder = "1"
	m.itemFields[itemFieldQuantity].CharLimit = 10
	m.itemFields[itemFieldQuantity].Width = 10
	m.itemFields[itemFieldQuantity].SetValue(strconv.FormatFloat(item.Quantity, 'f', -1, 64))

	m.itemFields[itemFieldPrice] = textinput.New()
	m.itemFields[itemFieldPrice].Placeholder = "100.00"
	m.itemFields[itemFieldPrice].CharLimit = 15
	m.itemFields[itemFieldPrice].Width = 15
	m.itemFields[itemFieldPrice].SetValue(strconv.FormatFloat(item.UnitPrice, 'f', -1, 64))

	m.itemFields[itemFieldTax] = textinput.New()
	m.itemFields[itemFieldTax].Placeholder = "0"
	m.itemFields[itemFieldTax].CharLimit = 10
	m.itemFields[itemFieldTax].Width = 10
	m.itemFields[itemFieldTax].SetValue(strconv.FormatFloat(item.Tax, 'f', -1, 64))

	m.itemID = item.ID
	m.itemFocus = itemFieldDescription
	m.itemFields[itemFieldDescription].Focus()
}

// applyItemForm parses the form values back into the session's line items
func (m *InvoicesModel) applyItemForm() error {
	quantity, err := strconv.ParseFloat(m.itemFields[itemFieldQuantity].Value(), 64)
	if err != nil {
		return fmt.Errorf("invalid quantity: %s", m.itemFields[itemFieldQuantity].Value())
	}
	price, err := strconv.ParseFloat(m.itemFields[itemFieldPrice].Value(), 64)
	if err != nil {
		return fmt.Errorf("invalid unit price: %s", m.itemFields[itemFieldPrice].Value())
	}
	tax := 0.0
	if v := m.itemFields[itemFieldTax].Value(); v != "" {
		tax, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid tax: %s", v)
		}
	}

	items := m.editor.Invoice().LineItems
	for i := range items {
		if items[i].ID == m.itemID {
			items[i].Description = m.itemFields[itemFieldDescription].Value()
			items[i].Quantity = quantity
			items[i].UnitPrice = price
			items[i].Tax = tax
			break
		}
	}
	m.editor.UpdateLineItems(items)
	return nil
}

func (m *InvoicesModel) initFieldForm(kind editField) {
	m.fieldKind = kind
	m.fieldInput = textinput.New()
	m.fieldInput.CharLimit = 200
	m.fieldInput.Width = 50

	inv := m.editor.Invoice()
	switch kind {
	case editFieldDiscount:
		m.fieldInput.Placeholder = "0"
		m.fieldInput.CharLimit = 15
		m.fieldInput.Width = 15
		m.fieldInput.SetValue(strconv.FormatFloat(inv.Discount, 'f', -1, 64))
	case editFieldNotes:
		m.fieldInput.Placeholder = "Payment instructions, thanks, etc."
		m.fieldInput.SetValue(inv.Notes)
	case editFieldCurrency:
		m.fieldInput.Placeholder = "$"
		m.fieldInput.CharLimit = 5
		m.fieldInput.Width = 8
		m.fieldInput.SetValue(inv.Currency)
	}
	m.fieldInput.Focus()
}

func (m *InvoicesModel) applyFieldForm() error {
	value := m.fieldInput.Value()
	switch m.fieldKind {
	case editFieldDiscount:
		discount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid discount: %s", value)
		}
		m.editor.UpdateDiscount(discount)
	case editFieldNotes:
		m.editor.SetNotes(value)
	case editFieldCurrency:
		m.editor.SetCurrency(value)
	}
	return nil
}

// cycleTerms advances to the next payment terms in display order
func (m *InvoicesModel) cycleTerms() {
	current := m.editor.Invoice().PaymentTerms
	for i, terms := range domain.AllTerms {
		if terms == current {
			m.editor.SetPaymentTerms(domain.AllTerms[(i+1)%len(domain.AllTerms)])
			return
		}
	}
	m.editor.SetPaymentTerms(domain.AllTerms[0])
}

func (m *InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		if m.mode == invoiceViewList {
			m.loading = true
			return m, m.loadInvoices()
		}
		return m, nil

	case invoicesDataMsg:
		m.loading = false
		m.err = msg.err
		m.summaries = msg.summaries
		if m.cursor >= len(m.summaries) {
			m.cursor = max(0, len(m.summaries)-1)
		}
		return m, nil

	case invoiceDetailMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.selected = msg.invoice
		m.mode = invoiceViewDetail
		return m, nil

	case editorReadyMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.mode = invoiceViewList
			return m, nil
		}
		m.mode = invoiceViewEdit
		m.itemCursor = 0
		return m, nil

	case invoiceSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.number)
		m.mode = invoiceViewList
		m.selected = nil
		m.editor = nil
		m.loading = true
		return m, m.loadInvoices()

	case markPaidMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Marked paid: %s", msg.number)
		m.mode = invoiceViewList
		m.selected = nil
		m.editor = nil
		m.loading = true
		return m, m.loadInvoices()

	case exportDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Exported -> %s", msg.path)
		return m, nil

	case pickClientsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.mode = invoiceViewEdit
			return m, nil
		}
		if len(msg.clients) == 0 {
			m.err = fmt.Errorf("no saved clients; add one on the Clients screen")
			m.mode = invoiceViewEdit
			return m, nil
		}
		m.pickClients = msg.clients
		m.pickCursor = 0
		m.mode = invoiceViewPickClient
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch m.mode {
		case invoiceViewList:
			return m.updateList(msg)
		case invoiceViewDetail:
			return m.updateDetail(msg)
		case invoiceViewEdit:
			return m.updateEdit(msg)
		case invoiceViewEditItem:
			return m.updateItemForm(msg)
		case invoiceViewEditField:
			return m.updateFieldForm(msg)
		case invoiceViewPickClient:
			return m.updatePickClient(msg)
		}
	}

	// Forward non-key messages to active inputs (cursor blink, etc.)
	var cmd tea.Cmd
	switch m.mode {
	case invoiceViewEditItem:
		m.itemFields[m.itemFocus], cmd = m.itemFields[m.itemFocus].Update(msg)
	case invoiceViewEditField:
		m.fieldInput, cmd = m.fieldInput.Update(msg)
	}
	return m, cmd
}

func (m *InvoicesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.cursor < len(m.summaries)-1 {
			m.cursor++
		}
	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.summaries) > 0 {
			m.loading = true
			m.statusMsg = ""
			return m, m.loadDetail(m.summaries[m.cursor].ID)
		}
	case key.Matches(msg, DefaultKeyMap.New):
		m.loading = true
		m.statusMsg = ""
		return m, m.startNewInvoice()
	case msg.String() == "p":
		if len(m.summaries) > 0 {
			m.loading = true
			m.statusMsg = ""
			return m, m.markPaid(m.summaries[m.cursor].ID)
		}
	case msg.String() == "e":
		if len(m.summaries) > 0 {
			m.loading = true
			m.statusMsg = ""
			return m, m.exportPDF(m.summaries[m.cursor].ID)
		}
	}

	return m, nil
}

func (m *InvoicesModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Back):
		m.mode = invoiceViewList
		m.selected = nil
	case key.Matches(msg, DefaultKeyMap.Select):
		m.loading = true
		return m, m.startEditInvoice(m.selected.ID)
	case msg.String() == "p":
		m.loading = true
		return m, m.markPaid(m.selected.ID)
	case msg.String() == "e":
		m.loading = true
		return m, m.exportPDF(m.selected.ID)
	}
	return m, nil
}

func (m *InvoicesModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	items := m.editor.Invoice().LineItems

	switch msg.String() {
	case "esc":
		// Abandon the session
		m.mode = invoiceViewList
		m.editor = nil
		m.selected = nil
		m.loading = true
		return m, m.loadInvoices()

	case "up", "k":
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case "down", "j":
		if m.itemCursor < len(items)-1 {
			m.itemCursor++
		}

	case "a":
		item := m.editor.AddLineItem()
		m.itemCursor = len(m.editor.Invoice().LineItems) - 1
		m.initItemForm(*item)
		m.mode = invoiceViewEditItem
		return m, m.itemFields[m.itemFocus].Focus()

	case "enter":
		if len(items) > 0 && m.itemCursor < len(items) {
			m.initItemForm(items[m.itemCursor])
			m.mode = invoiceViewEditItem
			return m, m.itemFields[m.itemFocus].Focus()
		}

	case "x":
		if len(items) > 0 && m.itemCursor < len(items) {
			m.editor.RemoveLineItem(items[m.itemCursor].ID)
			if m.itemCursor >= len(m.editor.Invoice().LineItems) {
				m.itemCursor = max(0, len(m.editor.Invoice().LineItems)-1)
			}
		}

	case "c":
		m.loading = true
		return m, m.loadPickClients()

	case "t":
		m.cycleTerms()

	case "y":
		if m.editor.Invoice().DiscountType == domain.DiscountPercentage {
			m.editor.UpdateDiscountType(domain.DiscountFixed)
		} else {
			m.editor.UpdateDiscountType(domain.DiscountPercentage)
		}

	case "o":
		m.initFieldForm(editFieldDiscount)
		m.mode = invoiceViewEditField
		return m, m.fieldInput.Focus()

	case "m":
		m.initFieldForm(editFieldNotes)
		m.mode = invoiceViewEditField
		return m, m.fieldInput.Focus()

	case "u":
		m.initFieldForm(editFieldCurrency)
		m.mode = invoiceViewEditField
		return m, m.fieldInput.Focus()

	case "p":
		m.loading = true
		return m, func() tea.Msg {
			invoice := m.editor.Invoice()
			if err := m.editor.MarkPaid(context.Background()); err != nil {
				return markPaidMsg{err: err}
			}
			return markPaidMsg{number: invoice.InvoiceNumber}
		}

	case "s", "ctrl+s":
		m.loading = true
		return m, m.saveInvoice()
	}

	return m, nil
}

func (m *InvoicesModel) updateItemForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = invoiceViewEdit
		m.err = nil
		return m, nil

	case "tab", "down":
		m.itemFields[m.itemFocus].Blur()
		m.itemFocus = (m.itemFocus + 1) % itemFieldCount
		return m, m.itemFields[m.itemFocus].Focus()

	case "shift+tab", "up":
		m.itemFields[m.itemFocus].Blur()
		m.itemFocus = (m.itemFocus - 1 + itemFieldCount) % itemFieldCount
		return m, m.itemFields[m.itemFocus].Focus()

	case "enter":
		if m.itemFocus == itemFieldCount-1 {
			if err := m.applyItemForm(); err != nil {
				m.err = err
				return m, nil
			}
			m.mode = invoiceViewEdit
			return m, nil
		}
		m.itemFields[m.itemFocus].Blur()
		m.itemFocus++
		return m, m.itemFields[m.itemFocus].Focus()

	case "ctrl+s":
		if err := m.applyItemForm(); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = invoiceViewEdit
		return m, nil
	}

	var cmd tea.Cmd
	m.itemFields[m.itemFocus], cmd = m.itemFields[m.itemFocus].Update(msg)
	return m, cmd
}

func (m *InvoicesModel) updateFieldForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = invoiceViewEdit
		m.err = nil
		return m, nil

	case "enter", "ctrl+s":
		if err := m.applyFieldForm(); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = invoiceViewEdit
		return m, nil
	}

	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	return m, cmd
}

func (m *InvoicesModel) updatePickClient(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DefaultKeyMap.Back):
		m.mode = invoiceViewEdit
		m.pickClients = nil
		return m, nil
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.pickCursor > 0 {
			m.pickCursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.pickCursor < len(m.pickClients)-1 {
			m.pickCursor++
		}
	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.pickClients) > 0 {
			m.editor.SetClient(m.pickClients[m.pickCursor])
			m.mode = invoiceViewEdit
			m.pickClients = nil
		}
	}
	return m, nil
}

func (m *InvoicesModel) View() string {
	if m.loading {
		return "Loading..."
	}

	switch m.mode {
	case invoiceViewDetail:
		return m.viewDetail()
	case invoiceViewEdit:
		return m.viewEdit()
	case invoiceViewEditItem:
		return m.viewItemForm()
	case invoiceViewEditField:
		return m.viewFieldForm()
	case invoiceViewPickClient:
		return m.viewPickClient()
	default:
		return m.viewList()
	}
}

func (m *InvoicesModel) viewList() string {
	var s string
	s += titleStyle.Render("Invoices") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	if len(m.summaries) == 0 && m.err == nil {
		s += subtitleStyle.Render("  No invoices yet. Press 'n' to create one.")
		return s
	}

	// Header
	s += subtitleStyle.Render(fmt.Sprintf(
		"  %-14s  %-20s  %-12s  %-12s  %12s  %s",
		"Number", "Client", "Created", "Due", "Total", "Status",
	)) + "\n"

	for i, inv := range m.summaries {
		clientName := inv.ClientName
		if clientName == "" {
			clientName = "(no client)"
		}

		invLine := fmt.Sprintf("  %-14s  %-20s  %-12s  %-12s  %12s  %s",
			inv.InvoiceNumber,
			truncateStr(clientName, 20),
			inv.CreatedDate,
			inv.DueDate,
			domain.FormatAmount(inv.GrandTotal, "$"),
			statusBadge(inv.Status),
		)

		if i == m.cursor {
			s += selectedStyle.Render(invLine) + "\n"
		} else {
			s += invLine + "\n"
		}
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: view  n: new  p: mark paid  e: export PDF")

	return s
}

func (m *InvoicesModel) viewDetail() string {
	inv := m.selected
	if inv == nil {
		return "No invoice selected"
	}

	var s string
	cur := inv.Currency

	s += titleStyle.Render(fmt.Sprintf("Invoice %s", inv.InvoiceNumber)) + "\n\n"
	s += fmt.Sprintf("  From:     %s\n", inv.Business.Name)
	s += fmt.Sprintf("  Client:   %s\n", inv.Client.Name)
	s += fmt.Sprintf("  Issued:   %s\n", inv.CreatedDate)
	s += fmt.Sprintf("  Due:      %s (%s)\n", inv.DueDate, inv.PaymentTerms)
	s += fmt.Sprintf("  Status:   %s\n", statusBadge(inv.Status))
	s += "\n"

	s += m.renderLineItems(inv)

	s += "\n"
	s += fmt.Sprintf("  Subtotal:  %12s\n", domain.FormatAmount(inv.SubTotal, cur))
	s += fmt.Sprintf("  Tax:       %12s\n", domain.FormatAmount(inv.TaxTotal, cur))
	if inv.Discount != 0 {
		amount := domain.DiscountAmount(inv.SubTotal, inv.Discount, inv.DiscountType)
		s += fmt.Sprintf("  Discount:  %12s\n", "-"+domain.FormatAmount(amount, cur))
	}
	s += lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("  Total:     %12s", domain.FormatAmount(inv.GrandTotal, cur)),
	) + "\n"

	if inv.Notes != "" {
		s += "\n" + subtitleStyle.Render("  Notes: "+truncateStr(inv.Notes, 60)) + "\n"
	}

	s += "\n" + helpStyle.Render("  enter: edit  p: mark paid  e: export PDF  esc: back")

	return s
}

func (m *InvoicesModel) viewEdit() string {
	inv := m.editor.Invoice()
	cur := inv.Currency

	var s string
	title := fmt.Sprintf("Edit Invoice %s", inv.InvoiceNumber)
	if m.editor.IsNew() {
		title = fmt.Sprintf("New Invoice %s", inv.InvoiceNumber)
	}
	s += titleStyle.Render(title) + "\n\n"

	clientName := inv.Client.Name
	if clientName == "" {
		clientName = subtitleStyle.Render("(none - press 'c' to choose)")
	}
	s += fmt.Sprintf("  Client:    %s\n", clientName)
	s += fmt.Sprintf("  Terms:     %s (due %s)\n", inv.PaymentTerms, inv.DueDate)
	s += fmt.Sprintf("  Currency:  %s\n", inv.Currency)

	discount := fmt.Sprintf("%g%%", inv.Discount)
	if inv.DiscountType == domain.DiscountFixed {
		discount = domain.FormatAmount(inv.Discount, cur)
	}
	s += fmt.Sprintf("  Discount:  %s\n", discount)
	if inv.Notes != "" {
		s += fmt.Sprintf("  Notes:     %s\n", truncateStr(inv.Notes, 50))
	}
	s += "\n"

	s += m.renderEditItems(inv)

	s += "\n"
	s += fmt.Sprintf("  Subtotal: %s   Tax: %s   Total: %s\n",
		domain.FormatAmount(inv.SubTotal, cur),
		domain.FormatAmount(inv.TaxTotal, cur),
		domain.FormatAmount(inv.GrandTotal, cur),
	)

	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  a: add item  enter: edit item  x: remove item  c: client  t: terms  y: discount type") + "\n"
	s += helpStyle.Render("  o: discount  m: notes  u: currency  p: mark paid  s: save  esc: cancel")

	return s
}

func (m *InvoicesModel) renderLineItems(inv *domain.Invoice) string {
	if len(inv.LineItems) == 0 {
		return subtitleStyle.Render("  No line items") + "\n"
	}

	cur := inv.Currency
	s := subtitleStyle.Render(fmt.Sprintf(
		"  %-35s  %8s  %12s  %6s  %12s",
		"Description", "Qty", "Unit Price", "Tax%", "Total",
	)) + "\n"

	for _, item := range inv.LineItems {
		s += fmt.Sprintf("  %-35s  %8g  %12s  %6g  %12s\n",
			truncateStr(item.Description, 35),
			item.Quantity,
			domain.FormatAmount(item.UnitPrice, cur),
			item.Tax,
			domain.FormatAmount(item.Total, cur),
		)
	}
	return s
}

func (m *InvoicesModel) renderEditItems(inv *domain.Invoice) string {
	if len(inv.LineItems) == 0 {
		return subtitleStyle.Render("  No line items yet. Press 'a' to add one.") + "\n"
	}

	cur := inv.Currency
	s := subtitleStyle.Render(fmt.Sprintf(
		"  %-35s  %8s  %12s  %6s  %12s",
		"Description", "Qty", "Unit Price", "Tax%", "Total",
	)) + "\n"

	for i, item := range inv.LineItems {
		desc := item.Description
		if desc == "" {
			desc = "(empty)"
		}
		line := fmt.Sprintf("  %-35s  %8g  %12s  %6g  %12s",
			truncateStr(desc, 35),
			item.Quantity,
			domain.FormatAmount(item.UnitPrice, cur),
			item.Tax,
			domain.FormatAmount(item.Total, cur),
		)
		if i == m.itemCursor {
			s += selectedStyle.Render(line) + "\n"
		} else {
			s += line + "\n"
		}
	}
	return s
}

func (m *InvoicesModel) viewItemForm() string {
	var s string
	s += titleStyle.Render("Line Item") + "\n\n"

	labels := []string{"Description:", "Quantity:", "Unit Price:", "Tax (%):"}
	for i, label := range labels {
		indicator := "  "
		if i == m.itemFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.itemFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.itemFields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: apply  enter: next/apply  esc: cancel")

	return s
}

func (m *InvoicesModel) viewFieldForm() string {
	var s string

	var label string
	switch m.fieldKind {
	case editFieldDiscount:
		kind := "percent"
		if m.editor.Invoice().DiscountType == domain.DiscountFixed {
			kind = "fixed amount"
		}
		label = fmt.Sprintf("Discount (%s):", kind)
	case editFieldNotes:
		label = "Notes:"
	case editFieldCurrency:
		label = "Currency symbol:"
	}

	s += titleStyle.Render(label) + "\n\n"
	s += "  " + m.fieldInput.View() + "\n"

	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  enter: apply  esc: cancel")

	return s
}

func (m *InvoicesModel) viewPickClient() string {
	var s string
	s += titleStyle.Render("Select Client") + "\n\n"

	for i, client := range m.pickClients {
		indicator := "  "
		if i == m.pickCursor {
			indicator = "> "
		}

		clientLine := fmt.Sprintf("%s%-25s  %s", indicator, truncateStr(client.Name, 25), client.Email)

		if i == m.pickCursor {
			s += lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Render(clientLine) + "\n"
		} else {
			s += clientLine + "\n"
		}
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: select  esc: cancel")

	return s
}

// statusBadge renders an invoice status with color
func statusBadge(status domain.InvoiceStatus) string {
	switch status {
	case domain.InvoiceStatusDraft:
		return lipgloss.NewStyle().Foreground(mutedColor).Render("DRAFT")
	case domain.InvoiceStatusSent:
		return lipgloss.NewStyle().Foreground(warningColor).Render("SENT")
	case domain.InvoiceStatusPaid:
		return lipgloss.NewStyle().Foreground(successColor).Render("PAID")
	case domain.InvoiceStatusOverdue:
		return lipgloss.NewStyle().Foreground(errorColor).Render("OVERDUE")
	default:
		return string(status)
	}
}
