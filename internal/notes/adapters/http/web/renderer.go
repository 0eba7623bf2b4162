// Package web содержит HTML-страницы приложения заметок.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц.
const (
	PageList     = "list.html"
	PageForm     = "form.html"
	PageDetail   = "detail.html"
	PageDelete   = "delete.html"
	PageMissing  = "missing.html"
	PageNotFound = "not_found.html"

	layoutFile = "layout.html"
	layoutName = "layout"
)

// ErrUnknownPage возвращается при попытке отрисовать несуществующую страницу.
var ErrUnknownPage = errors.New("unknown page")

var pages = []string{PageList, PageForm, PageDetail, PageDelete, PageMissing, PageNotFound}

// Renderer отрисовывает страницы внутри общего макета.
type Renderer struct {
	templates map[string]*template.Template
}

type layoutData struct {
	Title string
	Body  any
}

// NewRenderer разбирает встроенные шаблоны.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		tmpl, err := template.New(page).ParseFS(templatesFS, "templates/"+layoutFile, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

// Render записывает страницу page с заголовком title в w.
func (r *Renderer) Render(w io.Writer, page, title string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}

	if err := tmpl.ExecuteTemplate(w, layoutName, layoutData{Title: title, Body: data}); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}
	return nil
}
