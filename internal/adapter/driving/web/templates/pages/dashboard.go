// Package pages holds full-page components rendered inside templates.Layout.
package pages

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/passkeep/internal/adapter/driving/web/viewmodel"
)

//go:embed dashboard.html
var dashboardFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(dashboardFS, "dashboard.html"))

// Dashboard renders the strength checker, generator, save form, and saved list.
func Dashboard(page vm.DashboardViewModel) templ.Component {
	return templ.FromGoHTML(dashboardTmpl, page)
}
