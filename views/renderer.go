package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arfind/arfind_admin/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer renders the admin pages. Each page is parsed together with the
// shared layout unless it is a standalone document.
type Renderer struct {
	pages map[string]*template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			return models.Timestamp{Time: t}.String()
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"join": strings.Join,
	}
}

// NewRenderer parses every embedded page.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")

		tpl, err := template.New(path.Base(file)).Funcs(funcMap()).ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		if tpl.Lookup("content") != nil {
			if tpl, err = tpl.ParseFS(templateFS, layoutFile); err != nil {
				return nil, fmt.Errorf("parse layout for %s: %w", file, err)
			}
		}
		r.pages[name] = tpl
	}
	return r, nil
}

// Has reports whether a page exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	if tpl.Lookup("layout") != nil {
		return tpl.ExecuteTemplate(w, "layout", data)
	}
	return tpl.Execute(w, data)
}
