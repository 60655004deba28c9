package entity

import (
	"context"
	"strings"
	"time"
)

type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// Field names as exposed to clients and used as FieldErrors keys.
const (
	FieldFullName    = "fullName"
	FieldEmail       = "email"
	FieldCountryCode = "countryCode"
	FieldPhoneNumber = "phoneNumber"
	FieldCity        = "city"
	FieldCompany     = "company"
	FieldDescription = "description"
)

// InquiryInput is the draft the visitor edits. It is only ever turned into an
// Inquiry after validation.
type InquiryInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewInquiryInput returns an empty draft with the form defaults applied.
func NewInquiryInput() InquiryInput {
	return InquiryInput{CountryCode: DefaultCountryCode}
}

// Set assigns a draft field by its client name. Unknown names are ignored.
func (in *InquiryInput) Set(field, value string) bool {
	switch field {
	case FieldFullName:
		in.FullName = value
	case FieldEmail:
		in.Email = value
	case FieldCountryCode:
		in.CountryCode = value
	case FieldPhoneNumber:
		in.PhoneNumber = value
	case FieldCity:
		in.City = value
	case FieldCompany:
		in.Company = value
	case FieldDescription:
		in.Description = value
	default:
		return false
	}
	return true
}

// Inquiry is one submitted expression of interest. It is built once per
// submission attempt and never mutated afterwards.
type Inquiry struct {
	id          string
	fullName    string
	email       string
	countryCode string
	phoneNumber string
	city        string
	company     string
	description string
	language    Language
	createdAt   time.Time
}

func NewInquiry(id string, lang Language, in InquiryInput, now time.Time) *Inquiry {
	return &Inquiry{
		id:          id,
		fullName:    strings.TrimSpace(in.FullName),
		email:       strings.ToLower(strings.TrimSpace(in.Email)),
		countryCode: strings.TrimSpace(in.CountryCode),
		phoneNumber: strings.TrimSpace(in.PhoneNumber),
		city:        strings.TrimSpace(in.City),
		company:     strings.TrimSpace(in.Company),
		description: strings.TrimSpace(in.Description),
		language:    lang,
		createdAt:   now.UTC(),
	}
}

func (i *Inquiry) ID() string           { return i.id }
func (i *Inquiry) FullName() string     { return i.fullName }
func (i *Inquiry) Email() string        { return i.email }
func (i *Inquiry) CountryCode() string  { return i.countryCode }
func (i *Inquiry) PhoneNumber() string  { return i.phoneNumber }
func (i *Inquiry) City() string         { return i.city }
func (i *Inquiry) Company() string      { return i.company }
func (i *Inquiry) Description() string  { return i.description }
func (i *Inquiry) Language() Language   { return i.language }
func (i *Inquiry) CreatedAt() time.Time { return i.createdAt }

// Phone joins the dialing code and the local number.
func (i *Inquiry) Phone() string {
	return strings.TrimSpace(i.countryCode + " " + i.phoneNumber)
}

// Fields returns a fresh copy of the record's values keyed by field name.
func (i *Inquiry) Fields() map[string]string {
	return map[string]string{
		FieldFullName:    i.fullName,
		FieldEmail:       i.email,
		FieldCountryCode: i.countryCode,
		FieldPhoneNumber: i.phoneNumber,
		FieldCity:        i.city,
		FieldCompany:     i.company,
		FieldDescription: i.description,
	}
}

type InquiryRepositoryInterface interface {
	Create(ctx context.Context, inquiry *Inquiry) error
}
