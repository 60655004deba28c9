package usecase

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/i18n"
)

// Deliberately loose: anything@anything.anything.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type inquiryRules struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	RawEmail    string `json:"-"`
	CountryCode string `json:"countryCode" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	City        string `json:"city" validate:"required"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// The shape check runs on the untrimmed value: padded addresses are
	// rejected, while blank ones only get the required message.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(inquiryRules)
		if r.Email != "" && !emailPattern.MatchString(r.RawEmail) {
			sl.ReportError(r.RawEmail, entity.FieldEmail, "RawEmail", "address", "")
		}
	}, inquiryRules{})
	return v
}

type ValidationResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

// Schema validates inquiry drafts with the messages of one language.
type Schema struct {
	text i18n.ValidationText
}

func NewSchema(bundle i18n.Bundle) *Schema {
	return &Schema{text: bundle.Validation}
}

func SchemaFor(lang entity.Language) *Schema {
	return NewSchema(i18n.For(lang))
}

// Validate checks required fields after trimming and the shape of the email
// as typed.
func (s *Schema) Validate(in entity.InquiryInput) ValidationResult {
	rules := inquiryRules{
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.TrimSpace(in.Email),
		RawEmail:    in.Email,
		CountryCode: strings.TrimSpace(in.CountryCode),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		City:        strings.TrimSpace(in.City),
		Company:     in.Company,
		Description: in.Description,
	}

	result := ValidationResult{Valid: true, FieldErrors: map[string]string{}}

	err := validate.Struct(rules)
	if err == nil {
		return result
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only InvalidValidationError is possible here, which means a bug in rules.
		panic(err)
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "address":
			result.FieldErrors[fe.Field()] = s.text.EmailInvalid
		default:
			result.FieldErrors[fe.Field()] = s.text.Required(fe.Field())
		}
	}
	result.Valid = len(result.FieldErrors) == 0
	return result
}

// RequiredFields lists the fields the schema rejects when blank, in form order.
func RequiredFields() []string {
	return []string{
		entity.FieldFullName,
		entity.FieldEmail,
		entity.FieldCountryCode,
		entity.FieldPhoneNumber,
		entity.FieldCity,
	}
}

func EmailPattern() string {
	return emailPattern.String()
}
