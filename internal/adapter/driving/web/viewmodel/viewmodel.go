// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

import "html/template"

// DashboardViewModel holds everything the single-page dashboard renders.
// ShowSaved is the view state for the saved-credentials panel; it travels with
// every request instead of living on the server.
type DashboardViewModel struct {
	CSRFToken string
	ShowSaved bool

	Strength  *StrengthViewModel
	Generator GeneratorViewModel
	SaveForm  SaveFormViewModel
	Saved     SavedListViewModel

	AboutHTML template.HTML
}

// StrengthViewModel holds the outcome of a strength check.
type StrengthViewModel struct {
	Classification string // "weak", "medium" or "strong"
	Label          string
	Tone           string // CSS modifier: "success", "warning", "error"
	Score          int
	MaxScore       int
	Tips           []string
}

// GeneratorViewModel holds the generator form state and its last result.
type GeneratorViewModel struct {
	Length    int
	MinLength int
	MaxLength int
	Upper     bool
	Lower     bool
	Digits    bool
	Special   bool
	Password  string
	Error     string
}

// SaveFormViewModel holds the save form's sticky values and feedback messages.
type SaveFormViewModel struct {
	Site     string
	Username string
	Success  string
	Warning  string
	Error    string
}

// SavedListViewModel holds the saved-credentials panel.
type SavedListViewModel struct {
	Visible     bool
	ToggleURL   string
	ToggleLabel string
	Credentials []CredentialViewModel
	Error       string
}

// CredentialViewModel is one row in the saved-credentials panel.
type CredentialViewModel struct {
	ID       int64
	Site     string
	Username string
	Password string
}
