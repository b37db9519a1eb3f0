// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ericfisherdev/passkeep/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/passkeep/internal/adapter/driving/web/templates/pages"
	vm "github.com/ericfisherdev/passkeep/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/passkeep/internal/application"
	"github.com/ericfisherdev/passkeep/internal/domain/model"
)

const pageTitle = "Password Manager & Strength Checker"

// User-facing messages.
const (
	msgLengthTooShort     = "Password length should be at least 6 characters!"
	msgLengthTooLong      = "Password length should be at most 4096 characters!"
	msgNoCharacterClass   = "Please select at least one character type!"
	msgLengthNotNumber    = "Password length must be a whole number."
	msgGenerateFailed     = "Could not generate a password. Please try again."
	msgSaved              = "Password saved successfully!"
	msgFillAllFields      = "Please fill in all fields."
	msgStorageUnavailable = "Could not reach the password database. Nothing was saved."
	msgListFailed         = "Could not load saved passwords."
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	generator     *application.PasswordGenerator
	credentialSvc *application.CredentialService
	defaultLength int
	aboutHTML     template.HTML
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. defaultLength is
// the initial value of the generator's length input.
func NewHandler(
	generator *application.PasswordGenerator,
	credentialSvc *application.CredentialService,
	defaultLength int,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		generator:     generator,
		credentialSvc: credentialSvc,
		defaultLength: defaultLength,
		aboutHTML:     template.HTML(RenderMarkdown(aboutMarkdown)), //nolint:gosec // sanitized by bluemonday
		logger:        logger,
	}
}

// Dashboard renders the main page. The saved panel is open when the query
// carries saved=1.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(w, r)
	h.render(w, r, http.StatusOK, page)
}

// CheckStrength scores the submitted password. An empty submission renders the
// page without a result.
func (h *Handler) CheckStrength(w http.ResponseWriter, r *http.Request) {
	if !h.checkForm(w, r) {
		return
	}

	page := h.newPage(w, r)
	if password := r.PostFormValue("password"); password != "" {
		strength := toStrengthViewModel(application.EvaluateStrength(password))
		page.Strength = &strength
	}

	h.render(w, r, http.StatusOK, page)
}

// GeneratePassword builds a password from the submitted length and class
// checkboxes. Rejections are shown inline and no password is produced.
func (h *Handler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	if !h.checkForm(w, r) {
		return
	}

	page := h.newPage(w, r)
	gen := &page.Generator
	gen.Upper = r.PostFormValue("upper") != ""
	gen.Lower = r.PostFormValue("lower") != ""
	gen.Digits = r.PostFormValue("digits") != ""
	gen.Special = r.PostFormValue("special") != ""

	length, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("length")))
	if err != nil {
		gen.Error = msgLengthNotNumber
		h.render(w, r, http.StatusBadRequest, page)
		return
	}
	gen.Length = length

	password, err := h.generator.Generate(model.GenerationConfig{
		Length:         length,
		IncludeUpper:   gen.Upper,
		IncludeLower:   gen.Lower,
		IncludeDigits:  gen.Digits,
		IncludeSpecial: gen.Special,
	})
	switch {
	case errors.Is(err, application.ErrLengthTooShort):
		gen.Error = msgLengthTooShort
		h.render(w, r, http.StatusBadRequest, page)
		return
	case errors.Is(err, application.ErrLengthTooLong):
		gen.Error = msgLengthTooLong
		h.render(w, r, http.StatusBadRequest, page)
		return
	case errors.Is(err, application.ErrNoCharacterClassSelected):
		gen.Error = msgNoCharacterClass
		h.render(w, r, http.StatusBadRequest, page)
		return
	case err != nil:
		h.logger.Error("failed to generate password", "error", err)
		gen.Error = msgGenerateFailed
		h.render(w, r, http.StatusInternalServerError, page)
		return
	}

	gen.Password = password
	h.render(w, r, http.StatusOK, page)
}

// SaveCredential stores the submitted site, username, and password. All three
// must be non-empty; otherwise a warning is shown and nothing is written.
func (h *Handler) SaveCredential(w http.ResponseWriter, r *http.Request) {
	if !h.checkForm(w, r) {
		return
	}

	page := h.newPage(w, r)
	form := &page.SaveForm

	req := application.SaveCredentialRequest{
		Site:     r.PostFormValue("site"),
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	_, err := h.credentialSvc.Save(r.Context(), req)
	switch {
	case errors.Is(err, application.ErrMissingRequiredField):
		form.Site = req.Site
		form.Username = req.Username
		form.Warning = msgFillAllFields
		h.render(w, r, http.StatusBadRequest, page)
		return
	case err != nil:
		form.Site = req.Site
		form.Username = req.Username
		form.Error = msgStorageUnavailable
		h.render(w, r, http.StatusInternalServerError, page)
		return
	}

	form.Success = msgSaved
	h.render(w, r, http.StatusOK, page)
}

// Health reports that the GUI server is accepting requests.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// checkForm parses the POST body and verifies the CSRF token. It writes the
// error response itself and returns false when the request must stop.
func (h *Handler) checkForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return false
	}
	if !validateCSRF(r) {
		h.logger.Warn("csrf validation failed", "path", r.URL.Path)
		http.Error(w, "invalid or missing CSRF token", http.StatusForbidden)
		return false
	}
	return true
}

// newPage builds the dashboard in its initial state, carrying the saved-panel
// view state from the request.
func (h *Handler) newPage(w http.ResponseWriter, r *http.Request) vm.DashboardViewModel {
	return vm.DashboardViewModel{
		CSRFToken: csrfToken(w, r),
		ShowSaved: r.FormValue("saved") == "1",
		Generator: newGeneratorViewModel(h.defaultLength),
		AboutHTML: h.aboutHTML,
	}
}

// loadSaved fills the saved panel. It runs after the request's action so a
// just-saved credential is listed.
func (h *Handler) loadSaved(ctx context.Context, page *vm.DashboardViewModel) {
	page.Saved.Visible = page.ShowSaved
	page.Saved.ToggleURL, page.Saved.ToggleLabel = savedToggle(page.ShowSaved)
	if !page.ShowSaved {
		return
	}

	creds, err := h.credentialSvc.List(ctx)
	if err != nil {
		page.Saved.Error = msgListFailed
		return
	}
	page.Saved.Credentials = toCredentialViewModels(creds)
}

// render writes the full page with the given status. The page is rendered to a
// buffer first so a template failure can still produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page vm.DashboardViewModel) {
	h.loadSaved(r.Context(), &page)

	var buf bytes.Buffer
	layout := templates.Layout(pageTitle, pages.Dashboard(page))
	if err := layout.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render dashboard", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
