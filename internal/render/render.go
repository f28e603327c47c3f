// Package render implements echo.Renderer over the embedded HTML
// templates. Every page is executed inside the main layout together with
// the flash messages pending for the request.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/stagebook/internal/flash"
	"github.com/iliyamo/stagebook/internal/view"
)

//go:embed templates
var files embed.FS

const (
	layout   = "templates/layouts/main.html"
	partials = "templates/partials/*.html"
)

// Page is what every template receives.
type Page struct {
	Flashes []flash.Message
	Data    any
}

// Renderer holds one parsed template set per page, keyed by name without
// extension, e.g. "pages/venues".
type Renderer struct {
	pages   map[string]*template.Template
	flashes *flash.Store
}

var funcs = template.FuncMap{
	"datetime": func(t time.Time, format string) string { return view.FormatDateTime(t, format) },
	"join":     strings.Join,
	"has": func(list []string, v string) bool {
		for _, s := range list {
			if s == v {
				return true
			}
		}
		return false
	},
}

// New parses the embedded templates.
func New(flashes *flash.Store) (*Renderer, error) {
	base, err := template.New("main.html").Funcs(funcs).ParseFS(files, layout, partials)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	r := &Renderer{pages: map[string]*template.Template{}, flashes: flashes}
	for _, dir := range []string{"pages", "forms", "errors"} {
		names, err := fs.Glob(files, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			t, err := template.Must(base.Clone()).ParseFS(files, name)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			key := strings.TrimSuffix(strings.TrimPrefix(name, "templates/"), ".html")
			r.pages[key] = t
		}
	}
	return r, nil
}

// Render implements echo.Renderer. The page is executed into a buffer so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	p := Page{Data: data}
	if r.flashes != nil {
		p.Flashes = r.flashes.Pop(c)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "main.html", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
