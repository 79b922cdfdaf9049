package tui

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clientMode represents the current screen mode
type clientMode int

const (
	clientModeList clientMode = iota
	clientModeNew
	clientModeEdit
)

// client form field indices
const (
	clientFieldName = iota
	clientFieldEmail
	clientFieldAddress
	clientFieldCity
	clientFieldState
	clientFieldZip
	clientFieldPhone
	clientFieldCount
)

// ClientsModel displays a navigable list of clients with create/edit forms
type ClientsModel struct {
	app       *app.App
	clients   []domain.Client
	cursor    int
	loading   bool
	err       error
	statusMsg string

	// Form state
	mode       clientMode
	fields     []textinput.Model
	fieldFocus int
	editingID  string // empty for new client
}

type clientsDataMsg struct {
	clients []domain.Client
	err     error
}

type clientSavedMsg struct {
	name string
	err  error
}

type clientRemovedMsg struct {
	name string
	err  error
}

// NewClientsModel creates a new clients screen model
func NewClientsModel(a *app.App) tea.Model {
	return &ClientsModel{
		app:     a,
		loading: true,
	}
}

// IsCapturingInput returns true when the form is active
func (m *ClientsModel) IsCapturingInput() bool {
	return m.mode == clientModeNew || m.mode == clientModeEdit
}

func (m *ClientsModel) Init() tea.Cmd {
	return m.loadClients()
}

func (m *ClientsModel) loadClients() tea.Cmd {
	return func() tea.Msg {
		clients, err := m.app.ClientRepo.LoadAll(context.Background())
		if err != nil {
			return clientsDataMsg{err: err}
		}
		return clientsDataMsg{clients: clients}
	}
}

func (m *ClientsModel) initForm(editing *domain.Client) {
	m.fields = make([]textinput.Model, clientFieldCount)

	placeholders := []string{
		"Client name",
		"email@example.com",
		"Street address",
		"City",
		"State",
		"Zip",
		"Phone",
	}
	widths := []int{40, 40, 50, 25, 10, 12, 20}

	for i := range m.fields {
		m.fields[i] = textinput.New()
		m.fields[i].Placeholder = placeholders[i]
		m.fields[i].CharLimit = 100
		m.fields[i].Width = widths[i]
	}

	if editing != nil {
		m.fields[clientFieldName].SetValue(editing.Name)
		m.fields[clientFieldEmail].SetValue(editing.Email)
		m.fields[clientFieldAddress].SetValue(editing.Address)
		m.fields[clientFieldCity].SetValue(editing.City)
		m.fields[clientFieldState].SetValue(editing.State)
		m.fields[clientFieldZip].SetValue(editing.Zip)
		m.fields[clientFieldPhone].SetValue(editing.Phone)
		m.editingID = editing.ID
	} else {
		m.editingID = ""
	}

	m.fieldFocus = clientFieldName
	m.fields[clientFieldName].Focus()
}

func (m *ClientsModel) saveClient() tea.Cmd {
	return func() tea.Msg {
		client := domain.Client{
			ID:      m.editingID,
			Name:    m.fields[clientFieldName].Value(),
			Email:   m.fields[clientFieldEmail].Value(),
			Address: m.fields[clientFieldAddress].Value(),
			City:    m.fields[clientFieldCity].Value(),
			State:   m.fields[clientFieldState].Value(),
			Zip:     m.fields[clientFieldZip].Value(),
			Phone:   m.fields[clientFieldPhone].Value(),
		}

		if err := client.Validate(); err != nil {
			return clientSavedMsg{err: err}
		}

		saved, err := m.app.ClientRepo.Upsert(context.Background(), client)
		if err != nil {
			return clientSavedMsg{err: err}
		}
		return clientSavedMsg{name: saved.Name}
	}
}

func (m *ClientsModel) removeClient() tea.Cmd {
	client := m.clients[m.cursor]
	return func() tea.Msg {
		if err := m.app.ClientRepo.Remove(context.Background(), client.ID); err != nil {
			return clientRemovedMsg{err: err}
		}
		return clientRemovedMsg{name: client.Name}
	}
}

func (m *ClientsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle form mode
	if m.mode == clientModeNew || m.mode == clientModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadClients()

	case clientsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.clients = msg.clients
			if m.cursor >= len(m.clients) {
				m.cursor = max(0, len(m.clients)-1)
			}
		}
		return m, nil

	case clientRemovedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Removed: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		m.statusMsg = ""
		m.err = nil

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.clients)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = clientModeNew
			m.initForm(nil)
			return m, m.fields[clientFieldName].Focus()
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.clients) > 0 && m.cursor < len(m.clients) {
				m.mode = clientModeEdit
				m.initForm(&m.clients[m.cursor])
				return m, m.fields[clientFieldName].Focus()
			}
		case key.Matches(msg, DefaultKeyMap.Delete):
			if len(m.clients) > 0 && m.cursor < len(m.clients) {
				return m, m.removeClient()
			}
		}
	}

	return m, nil
}

func (m *ClientsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = clientModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadClients()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Cancel form
			m.mode = clientModeList
			m.err = nil
			return m, nil

		case "tab", "down":
			// Next field
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % clientFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			// Previous field
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + clientFieldCount) % clientFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			// If on last field or explicit submit, save
			if m.fieldFocus == clientFieldCount-1 {
				return m, m.saveClient()
			}
			// Otherwise advance to next field
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			// Save from any field
			return m, m.saveClient()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *ClientsModel) View() string {
	if m.mode == clientModeNew || m.mode == clientModeEdit {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *ClientsModel) viewForm() string {
	var s string

	if m.mode == clientModeNew {
		s += titleStyle.Render("New Client") + "\n\n"
	} else {
		s += titleStyle.Render("Edit Client") + "\n\n"
	}

	labels := []string{"Name:", "Email:", "Address:", "City:", "State:", "Zip:", "Phone:"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s  %s\n", indicator, labelStyle.Render(fmt.Sprintf("%-9s", label)), m.fields[i].View())
	}

	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}

func (m *ClientsModel) viewList() string {
	if m.loading {
		return "Loading clients..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string
	s += titleStyle.Render("Clients") + "\n\n"

	// Status message
	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.clients) == 0 {
		s += subtitleStyle.Render("  No clients yet. Press 'n' to add one.") + "\n"
		return s
	}

	for i := range m.clients {
		s += m.renderClient(i, &m.clients[i]) + "\n"
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit  x: remove")

	return s
}

func (m *ClientsModel) renderClient(index int, client *domain.Client) string {
	selected := index == m.cursor

	indicator := "  "
	if selected {
		indicator = "> "
	}

	line1 := fmt.Sprintf("%s%s", indicator, client.Name)

	contact := client.Email
	if client.Phone != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += client.Phone
	}
	var line2 string
	if contact != "" {
		line2 = fmt.Sprintf("    %s", contact)
	}

	location := client.City
	if client.State != "" {
		if location != "" {
			location += ", "
		}
		location += client.State
	}
	var line3 string
	if location != "" {
		line3 = fmt.Sprintf("    %s", location)
	}

	nameStyle := lipgloss.NewStyle()
	if selected {
		nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
	}

	result := nameStyle.Render(line1)
	if line2 != "" {
		result += "\n" + subtitleStyle.Render(line2)
	}
	if line3 != "" {
		result += "\n" + subtitleStyle.Render(line3)
	}

	return result
}
