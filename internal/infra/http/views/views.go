// Package views renders the landing page and serves its static assets.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/form"
	"github.com/bestbuycongo/starlink-inquiry/internal/i18n"
	"github.com/bestbuycongo/starlink-inquiry/internal/page"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Field struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	Error       string
	Required    bool
}

type Page struct {
	Lang             entity.Language
	Languages        []entity.Language
	Text             i18n.Bundle
	View             page.View
	Draft            entity.InquiryInput
	Fields           []Field
	Notice           *form.Notice
	CountryCodes     []entity.CountryCode
	CountryCodeLabel string
	Disabled         bool
}

// NewPage assembles the view model for one render.
func NewPage(c *page.Composer, draft entity.InquiryInput, fieldErrors map[string]string, notice *form.Notice, disabled bool) Page {
	text := i18n.For(c.Language())
	required := map[string]bool{
		entity.FieldFullName:    true,
		entity.FieldEmail:       true,
		entity.FieldCountryCode: true,
		entity.FieldPhoneNumber: true,
		entity.FieldCity:        true,
	}

	values := []struct{ name, value string }{
		{entity.FieldFullName, draft.FullName},
		{entity.FieldEmail, draft.Email},
		{entity.FieldPhoneNumber, draft.PhoneNumber},
		{entity.FieldCity, draft.City},
		{entity.FieldCompany, draft.Company},
		{entity.FieldDescription, draft.Description},
	}

	fields := make([]Field, 0, len(values))
	for _, v := range values {
		errMsg := fieldErrors[v.name]
		// the dialing code shares the phone row
		if v.name == entity.FieldPhoneNumber && errMsg == "" {
			errMsg = fieldErrors[entity.FieldCountryCode]
		}
		fields = append(fields, Field{
			Name:        v.name,
			Label:       text.Form.Labels[v.name],
			Placeholder: text.Form.Placeholders[v.name],
			Value:       v.value,
			Error:       errMsg,
			Required:    required[v.name],
		})
	}

	return Page{
		Lang:             c.Language(),
		Languages:        i18n.Languages(),
		Text:             text,
		View:             c.View(),
		Draft:            draft,
		Fields:           fields,
		Notice:           notice,
		CountryCodes:     entity.CountryCodes,
		CountryCodeLabel: text.Form.Labels[entity.FieldCountryCode],
		Disabled:         disabled,
	}
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page.html").
		Funcs(template.FuncMap{
			"upper": func(l entity.Language) string { return strings.ToUpper(string(l)) },
		}).
		ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", p)
}

// Static serves the embedded assets; mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
