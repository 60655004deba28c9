package handlers

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/form"
	"github.com/bestbuycongo/starlink-inquiry/internal/i18n"
	"github.com/bestbuycongo/starlink-inquiry/internal/infra/http/views"
	"github.com/bestbuycongo/starlink-inquiry/internal/page"
)

const languageCookie = "lang"

var formFields = []string{
	entity.FieldFullName,
	entity.FieldEmail,
	entity.FieldCountryCode,
	entity.FieldPhoneNumber,
	entity.FieldCity,
	entity.FieldCompany,
	entity.FieldDescription,
}

// PageHandler renders the landing page. Page state lives for one request;
// only the language choice is kept, in a cookie.
type PageHandler struct {
	UseCase  form.Submitter
	Renderer *views.Renderer
	Secure   bool
}

func NewPageHandler(uc form.Submitter, renderer *views.Renderer) *PageHandler {
	return &PageHandler{UseCase: uc, Renderer: renderer}
}

// Show handles GET /.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	if _, ok := i18n.ParseLanguage(r.URL.Query().Get("lang")); ok {
		h.rememberLanguage(w, lang)
	}

	c := page.NewComposer(lang)
	if r.URL.Query().Get("view") == string(page.ViewForm) {
		c.OpenRegistration()
	}

	h.render(w, http.StatusOK, views.NewPage(c, entity.NewInquiryInput(), nil, nil, false))
}

// Submit handles POST /inquiry from the server-rendered form.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	lang, ok := i18n.ParseLanguage(r.PostForm.Get("lang"))
	if ok {
		h.rememberLanguage(w, lang)
	} else {
		lang = requestLanguage(r)
	}

	c := page.NewComposer(lang)
	c.OpenRegistration()

	// absent fields keep their draft defaults
	draft := entity.NewInquiryInput()
	for _, field := range formFields {
		if values, present := r.PostForm[field]; present && len(values) > 0 {
			draft.Set(field, values[0])
		}
	}

	f := form.New(lang, h.UseCase, func(form.Outcome) { c.FormSucceeded() })
	f.Fill(draft)

	out, err := f.Submit(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	status := http.StatusOK
	switch {
	case c.View() == page.ViewThankYou:
	case len(out.FieldErrors) > 0:
		status = http.StatusUnprocessableEntity
	case out.Notice != nil && !out.Notice.Success:
		status = http.StatusBadGateway
	}

	h.render(w, status, views.NewPage(c, f.Draft(), out.FieldErrors, out.Notice, f.Disabled() && c.View() != page.ViewThankYou))
}

func (h *PageHandler) rememberLanguage(w http.ResponseWriter, lang entity.Language) {
	http.SetCookie(w, &http.Cookie{
		Name:     languageCookie,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, status int, p views.Page) {
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, p); err != nil {
		log.Printf("[PAGE] render failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
