package tui

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// OpenNewBusinessFormMsg tells the businesses screen to open the new business form
type OpenNewBusinessFormMsg struct{}

// firstRunCheckMsg reports whether the database has any businesses
type firstRunCheckMsg struct {
	hasBusinesses bool
}

// themeLoadedMsg carries the persisted dark-mode preference
type themeLoadedMsg struct {
	dark bool
}
