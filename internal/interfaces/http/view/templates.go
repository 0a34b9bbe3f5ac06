// Package view renderiza las páginas HTML del panel de administración.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zyck/property-admin/internal/application/dto"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Engine plantillas parseadas al arrancar.
type Engine struct {
	templates *template.Template
}

// TemplateData valores comunes a todas las páginas.
type TemplateData struct {
	Title       string
	CurrentPath string
	Session     *dto.SessionResponse
	Error       string
	Data        any
}

// NewEngine parsea las plantillas embebidas.
func NewEngine() (*Engine, error) {
	printer := message.NewPrinter(language.English)
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006")
		},
		"amount": func(d decimal.Decimal) string {
			return printer.Sprintf("%.2f", d.InexactFloat64())
		},
		"number": func(n int64) string {
			return printer.Sprintf("%d", n)
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Engine{templates: tpl}, nil
}

// Render ejecuta la plantilla name.
func (e *Engine) Render(w io.Writer, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("view: engine no inicializado")
	}
	return e.templates.ExecuteTemplate(w, name, data)
}
