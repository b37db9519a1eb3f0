// Package templates holds the page layout shared by every GUI page.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed layout.html
var layoutFS embed.FS

var layoutTmpl = template.Must(template.ParseFS(layoutFS, "layout.html"))

type layoutData struct {
	Title   string
	Content template.HTML
}

// Layout wraps body in the full HTML document with the shared stylesheet.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content, err := templ.ToGoHTML(ctx, body)
		if err != nil {
			return err
		}
		return templ.FromGoHTML(layoutTmpl, layoutData{Title: title, Content: content}).Render(ctx, w)
	})
}
