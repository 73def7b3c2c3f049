package web

import (
	"embed"
	"html/template"
	"io"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// renderer executes the embedded page templates for echo's c.Render.
type renderer struct {
	templates *template.Template
}

func newRenderer() (*renderer, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"truncate": truncate,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	return &renderer{templates: templates}, nil
}

func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}

// truncate cuts s to at most n runes and appends "..." when it had to cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)

	return string(runes[:n]) + "..."
}
