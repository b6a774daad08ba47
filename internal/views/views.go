package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{
	"choose-delivery-pickup",
	"add-pickup-details",
	"add-delivery-details",
	"payment",
	"order-confirmation",
}

// Views renders the checkout pages from embedded templates. Each page is
// parsed together with the shared layout.
type Views struct {
	templates map[string]*template.Template
}

func New() (*Views, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		parsed, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}

		templates[page] = parsed
	}

	return &Views{templates: templates}, nil
}

func (v *Views) Render(w io.Writer, page string, data models.PageData) error {
	parsed, ok := v.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	if err := parsed.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", page, err)
	}

	return nil
}
