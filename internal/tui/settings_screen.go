package tui

import (
	"context"
	"fmt"

	"github.com/andy/billfold/internal/app"
	"github.com/andy/billfold/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

// settings form field indices
const (
	settingsFieldOutputDir = iota
	settingsFieldTerms
	settingsFieldCurrency
	settingsFieldCount
)

type settingsSavedMsg struct {
	err error
}

type darkModeToggledMsg struct {
	dark bool
	err  error
}

// SettingsModel manages the settings screen
type SettingsModel struct {
	app        *app.App
	mode       settingsMode
	fields     []textinput.Model
	fieldFocus int
	darkMode   bool
	err        error
	statusMsg  string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(a *app.App) tea.Model {
	return &SettingsModel{
		app:  a,
		mode: settingsModeView,
	}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return m.loadDarkMode()
}

func (m *SettingsModel) loadDarkMode() tea.Cmd {
	return func() tea.Msg {
		dark, err := m.app.SettingsRepo.DarkMode(context.Background())
		return darkModeToggledMsg{dark: dark, err: err}
	}
}

func (m *SettingsModel) toggleDarkMode() tea.Cmd {
	next := !m.darkMode
	return func() tea.Msg {
		if err := m.app.SettingsRepo.SetDarkMode(context.Background(), next); err != nil {
			return darkModeToggledMsg{dark: !next, err: err}
		}
		return darkModeToggledMsg{dark: next}
	}
}

func (m *SettingsModel) initForm() {
	m.fields = make([]textinput.Model, settingsFieldCount)
	cfg := m.app.Config.Invoice

	// Output directory
	m.fields[settingsFieldOutputDir] = textinput.New()
	m.fields[settingsFieldOutputDir].Placeholder = "/path/to/invoices"
	m.fields[settingsFieldOutputDir].CharLimit = 256
	m.fields[settingsFieldOutputDir].Width = 60
	m.fields[settingsFieldOutputDir].SetValue(cfg.OutputDir)

	// Default payment terms
	m.fields[settingsFieldTerms] = textinput.New()
	m.fields[settingsFieldTerms].Placeholder = "net-30"
	m.fields[settingsFieldTerms].CharLimit = 20
	m.fields[settingsFieldTerms].Width = 20
	m.fields[settingsFieldTerms].SetValue(string(cfg.DefaultTerms))

	// Currency symbol
	m.fields[settingsFieldCurrency] = textinput.New()
	m.fields[settingsFieldCurrency].Placeholder = "$"
	m.fields[settingsFieldCurrency].CharLimit = 5
	m.fields[settingsFieldCurrency].Width = 8
	m.fields[settingsFieldCurrency].SetValue(cfg.Currency)

	m.fieldFocus = settingsFieldOutputDir
	m.fields[settingsFieldOutputDir].Focus()
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	return func() tea.Msg {
		outputDir := m.fields[settingsFieldOutputDir].Value()
		termsStr := m.fields[settingsFieldTerms].Value()
		currency := m.fields[settingsFieldCurrency].Value()

		if outputDir == "" {
			return settingsSavedMsg{err: fmt.Errorf("output directory is required")}
		}

		terms := domain.PaymentTerms(termsStr)
		valid := false
		for _, t := range domain.AllTerms {
			if t == terms {
				valid = true
				break
			}
		}
		if !valid {
			return settingsSavedMsg{err: fmt.Errorf("unknown terms %q (use due-on-receipt, net-7, net-15, net-30, net-60)", termsStr)}
		}

		if currency == "" {
			currency = "$"
		}

		m.app.Config.Invoice.OutputDir = outputDir
		m.app.Config.Invoice.DefaultTerms = terms
		m.app.Config.Invoice.Currency = currency

		if err := m.app.SaveConfig(); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("failed to save config: %w", err)}
		}

		return settingsSavedMsg{}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Dark-mode state updates apply in either mode
	if msg, ok := msg.(darkModeToggledMsg); ok {
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.darkMode = msg.dark
		applyTheme(msg.dark)
		return m, nil
	}

	if m.mode == settingsModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case RefreshDataMsg:
		return m, m.loadDarkMode()

	case tea.KeyMsg:
		m.err = nil
		switch msg.String() {
		case "enter":
			m.mode = settingsModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()
		case "m":
			m.statusMsg = ""
			return m, m.toggleDarkMode()
		}
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = settingsModeView
		m.statusMsg = "Settings saved"
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = settingsModeView
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == settingsFieldCount-1 {
				return m, m.saveSettings()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveSettings()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.mode == settingsModeEdit {
		return m.viewForm()
	}
	return m.viewSettings()
}

func (m *SettingsModel) viewSettings() string {
	var s string
	s += titleStyle.Render("Settings") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	cfg := m.app.Config.Invoice

	labelStyle := lipgloss.NewStyle().Bold(true).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	s += subtitleStyle.Render("  Invoice Defaults") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Output Directory:"), valueStyle.Render(cfg.OutputDir))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Payment Terms:"), valueStyle.Render(string(cfg.DefaultTerms)))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Currency:"), valueStyle.Render(cfg.Currency))

	s += "\n" + subtitleStyle.Render("  Display") + "\n\n"
	darkDisplay := "off"
	if m.darkMode {
		darkDisplay = "on"
	}
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Dark Mode:"), valueStyle.Render(darkDisplay))

	s += "\n" + helpStyle.Render("  enter: edit defaults  m: toggle dark mode")

	return s
}

func (m *SettingsModel) viewForm() string {
	var s string
	s += titleStyle.Render("Edit Settings") + "\n\n"

	labels := []string{"Output Directory:", "Payment Terms:", "Currency:"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
