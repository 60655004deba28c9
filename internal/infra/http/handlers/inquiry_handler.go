package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/qri-io/jsonschema"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/i18n"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

const maxBodyBytes = 64 << 10

// requestShape rejects payloads with unknown keys or non-string values before
// they reach the inquiry rules.
const requestShape = `{
	"type": "object",
	"properties": {
		"language":    {"type": "string", "enum": ["en", "fr"]},
		"fullName":    {"type": "string"},
		"email":       {"type": "string"},
		"countryCode": {"type": "string"},
		"phoneNumber": {"type": "string"},
		"city":        {"type": "string"},
		"company":     {"type": "string"},
		"description": {"type": "string"}
	},
	"additionalProperties": false
}`

type InquiryExecutor interface {
	Execute(ctx context.Context, input usecase.SubmitInquiryInput) (*usecase.SubmitInquiryOutput, error)
}

type InquiryHandler struct {
	UseCase InquiryExecutor
	shape   *jsonschema.Schema
}

func NewInquiryHandler(uc InquiryExecutor) (*InquiryHandler, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(requestShape), rs); err != nil {
		return nil, fmt.Errorf("parse inquiry request schema: %w", err)
	}
	return &InquiryHandler{UseCase: uc, shape: rs}, nil
}

type CreateInquiryRequest struct {
	Language string `json:"language,omitempty"`
	entity.InquiryInput
}

type Response struct {
	Success     bool              `json:"success"`
	ID          string            `json:"id,omitempty"`
	Code        string            `json:"code,omitempty"`
	Message     string            `json:"message,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Create handles POST /api/inquiries.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid request body"})
		return
	}

	keyErrs, err := h.shape.ValidateBytes(ctx, body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON"})
		return
	}
	if len(keyErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: shapeMessage(keyErrs[0]),
		})
		return
	}

	var req CreateInquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON"})
		return
	}

	lang, ok := i18n.ParseLanguage(req.Language)
	if !ok {
		lang = requestLanguage(r)
	}

	output, err := h.UseCase.Execute(ctx, usecase.SubmitInquiryInput{
		Language: lang,
		Inquiry:  req.InquiryInput,
	})
	if err != nil {
		h.writeError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		ID:      output.ID,
		Message: output.Message,
	})
}

func (h *InquiryHandler) writeError(w http.ResponseWriter, lang entity.Language, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeJSON(w, http.StatusUnprocessableEntity, Response{
			Success:     false,
			Code:        de.Code,
			Message:     de.Message,
			FieldErrors: de.FieldErrors,
		})
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		writeJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Code:    te.Code,
			Message: i18n.For(lang).Notice.FailureBody,
		})
		return
	}

	log.Printf("[INQUIRY] unexpected error: %v", err)
	writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: "Internal error"})
}

// shapeMessage names the offending key without echoing its value.
func shapeMessage(ke jsonschema.KeyError) string {
	path := ke.PropertyPath
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("Invalid request: %s %s", path, ke.Message)
}

type SchemaResponse struct {
	Language           entity.Language      `json:"language"`
	Required           []string             `json:"required"`
	EmailPattern       string               `json:"emailPattern"`
	Messages           map[string]string    `json:"messages"`
	Labels             map[string]string    `json:"labels"`
	DefaultCountryCode string               `json:"defaultCountryCode"`
	CountryCodes       []entity.CountryCode `json:"countryCodes"`
}

// Schema handles GET /api/inquiries/schema so a client can mirror the rules.
func (h *InquiryHandler) Schema(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	bundle := i18n.For(lang)

	required := usecase.RequiredFields()
	messages := make(map[string]string, len(required)+1)
	for _, field := range required {
		messages[field] = bundle.Validation.Required(field)
	}
	messages["emailInvalid"] = bundle.Validation.EmailInvalid

	writeJSON(w, http.StatusOK, SchemaResponse{
		Language:           lang,
		Required:           required,
		EmailPattern:       usecase.EmailPattern(),
		Messages:           messages,
		Labels:             bundle.Form.Labels,
		DefaultCountryCode: entity.DefaultCountryCode,
		CountryCodes:       entity.CountryCodes,
	})
}

// requestLanguage resolves ?lang, then the language cookie, then Accept-Language.
func requestLanguage(r *http.Request) entity.Language {
	if lang, ok := i18n.ParseLanguage(r.URL.Query().Get("lang")); ok {
		return lang
	}
	if c, err := r.Cookie(languageCookie); err == nil {
		if lang, ok := i18n.ParseLanguage(c.Value); ok {
			return lang
		}
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"))
}
