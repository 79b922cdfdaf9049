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

type businessMode int

const (
	businessModeList businessMode = iota
	businessModeForm
)

// business form field indices
const (
	businessFieldName = iota
	businessFieldEmail
	businessFieldAddress
	businessFieldCity
	businessFieldState
	businessFieldZip
	businessFieldPhone
	businessFieldCount
)

// BusinessesModel displays saved businesses with a create/edit form.
// Business identity is the exact name, so editing the name field on an
// existing business saves a new business rather than renaming.
type BusinessesModel struct {
	app        *app.App
	businesses []domain.Business
	cursor     int
	loading    bool
	err        error
	statusMsg  string

	// Form state
	mode       businessMode
	fields     []textinput.Model
	fieldFocus int

	// First-run state
	autoNewBusiness bool // open form after data loads
}

type businessesDataMsg struct {
	businesses []domain.Business
	err        error
}

type businessSavedMsg struct {
	name string
	err  error
}

// NewBusinessesModel creates a new businesses screen model
func NewBusinessesModel(a *app.App) tea.Model {
	return &BusinessesModel{
		app:     a,
		loading: true,
	}
}

// IsCapturingInput returns true when the form is active
func (m *BusinessesModel) IsCapturingInput() bool {
	return m.mode == businessModeForm
}

func (m *BusinessesModel) Init() tea.Cmd {
	return m.loadBusinesses()
}

func (m *BusinessesModel) loadBusinesses() tea.Cmd {
	return func() tea.Msg {
		businesses, err := m.app.BusinessRepo.LoadAll(context.Background())
		if err != nil {
			return businessesDataMsg{err: err}
		}
		return businessesDataMsg{businesses: businesses}
	}
}

func (m *BusinessesModel) initForm(editing *domain.Business) {
	m.fields = make([]textinput.Model, businessFieldCount)

	placeholders := []string{
		"Business name",
		"billing@example.com",
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
		m.fields[businessFieldName].SetValue(editing.Name)
		m.fields[businessFieldEmail].SetValue(editing.Email)
		m.fields[businessFieldAddress].SetValue(editing.Address)
		m.fields[businessFieldCity].SetValue(editing.City)
		m.fields[businessFieldState].SetValue(editing.State)
		m.fields[businessFieldZip].SetValue(editing.Zip)
		m.fields[businessFieldPhone].SetValue(editing.Phone)
	}

	m.fieldFocus = businessFieldName
	m.fields[businessFieldName].Focus()
}

func (m *BusinessesModel) saveBusiness() tea.Cmd {
	return func() tea.Msg {
		business := domain.Business{
			Name:    m.fields[businessFieldName].Value(),
			Email:   m.fields[businessFieldEmail].Value(),
			Address: m.fields[businessFieldAddress].Value(),
			City:    m.fields[businessFieldCity].Value(),
			State:   m.fields[businessFieldState].Value(),
			Zip:     m.fields[businessFieldZip].Value(),
			Phone:   m.fields[businessFieldPhone].Value(),
		}

		if err := business.Validate(); err != nil {
			return businessSavedMsg{err: err}
		}

		if err := m.app.BusinessRepo.Upsert(context.Background(), business); err != nil {
			return businessSavedMsg{err: err}
		}
		return businessSavedMsg{name: business.Name}
	}
}

func (m *BusinessesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle OpenNewBusinessFormMsg at the top so it works regardless of mode
	if _, ok := msg.(OpenNewBusinessFormMsg); ok {
		if m.loading {
			// Data hasn't loaded yet; set flag to auto-open form when it does
			m.autoNewBusiness = true
			return m, nil
		}
		m.mode = businessModeForm
		m.initForm(nil)
		return m, m.fields[businessFieldName].Focus()
	}

	if m.mode == businessModeForm {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadBusinesses()

	case businessesDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.businesses = msg.businesses
			if m.cursor >= len(m.businesses) {
				m.cursor = max(0, len(m.businesses)-1)
			}
		}
		// Auto-open new business form on first run
		if m.autoNewBusiness {
			m.autoNewBusiness = false
			m.mode = businessModeForm
			m.initForm(nil)
			return m, m.fields[businessFieldName].Focus()
		}
		return m, nil

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
			if m.cursor < len(m.businesses)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.New):
			m.mode = businessModeForm
			m.initForm(nil)
			return m, m.fields[businessFieldName].Focus()
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.businesses) > 0 && m.cursor < len(m.businesses) {
				m.mode = businessModeForm
				m.initForm(&m.businesses[m.cursor])
				return m, m.fields[businessFieldName].Focus()
			}
		}
	}

	return m, nil
}

func (m *BusinessesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case businessSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = businessModeList
		m.statusMsg = fmt.Sprintf("Saved: %s", msg.name)
		m.loading = true
		return m, m.loadBusinesses()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = businessModeList
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % businessFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + businessFieldCount) % businessFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == businessFieldCount-1 {
				return m, m.saveBusiness()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveBusiness()
		}
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *BusinessesModel) View() string {
	if m.mode == businessModeForm {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *BusinessesModel) viewForm() string {
	var s string

	if len(m.businesses) == 0 {
		s += titleStyle.Render("Welcome to billfold!") + "\n"
		s += subtitleStyle.Render("  Set up your business to appear on invoices.") + "\n\n"
	} else {
		s += titleStyle.Render("Business Details") + "\n\n"
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

func (m *BusinessesModel) viewList() string {
	if m.loading {
		return "Loading businesses..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string
	s += titleStyle.Render("Businesses") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if len(m.businesses) == 0 {
		s += subtitleStyle.Render("  No businesses yet. Press 'n' to add one.") + "\n"
		return s
	}

	for i := range m.businesses {
		b := &m.businesses[i]
		selected := i == m.cursor

		indicator := "  "
		if selected {
			indicator = "> "
		}

		nameStyle := lipgloss.NewStyle()
		if selected {
			nameStyle = nameStyle.Bold(true).Foreground(primaryColor)
		}

		s += nameStyle.Render(fmt.Sprintf("%s%s", indicator, b.Name)) + "\n"

		contact := b.Email
		if b.Phone != "" {
			if contact != "" {
				contact += "  |  "
			}
			contact += b.Phone
		}
		if contact != "" {
			s += subtitleStyle.Render(fmt.Sprintf("    %s", contact)) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  n: new  enter: edit")

	return s
}
