// Package i18n holds the immutable English and French copy of the landing
// page, including the validation messages used by the inquiry schema.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
)

type ValidationText struct {
	NameRequired        string
	EmailRequired       string
	EmailInvalid        string
	CountryCodeRequired string
	PhoneRequired       string
	CityRequired        string
}

// Required returns the "is required" message for a field, or "" when the
// field is optional.
func (v ValidationText) Required(field string) string {
	switch field {
	case entity.FieldFullName:
		return v.NameRequired
	case entity.FieldEmail:
		return v.EmailRequired
	case entity.FieldCountryCode:
		return v.CountryCodeRequired
	case entity.FieldPhoneNumber:
		return v.PhoneRequired
	case entity.FieldCity:
		return v.CityRequired
	}
	return ""
}

type FormText struct {
	Heading      string
	Subheading   string
	Labels       map[string]string
	Placeholders map[string]string
	Submit       string
	Processing   string
	Optional     string
}

type NoticeText struct {
	SuccessTitle string
	SuccessBody  string
	FailureTitle string
	FailureBody  string
}

type ThankYouText struct {
	Heading         string
	Message         string
	RegisterAnother string
	AdditionalInfo  string
}

type Benefit struct {
	Title       string
	Description string
}

type Product struct {
	Name        string
	Description string
	Image       string
}

type PageText struct {
	Title           string
	HeroHeading     string
	HeroSubheading  string
	BenefitsHeading string
	Benefits        []Benefit
	ProductsHeading string
	ProductsSub     string
	Products        []Product
	Inquire         string
	Footer          string
}

type Bundle struct {
	Language   entity.Language
	Validation ValidationText
	Form       FormText
	Notice     NoticeText
	ThankYou   ThankYouText
	Page       PageText
}

// For returns the bundle of lang, falling back to English.
func For(lang entity.Language) Bundle {
	if lang == entity.French {
		return french()
	}
	return english()
}

func Languages() []entity.Language {
	return []entity.Language{entity.English, entity.French}
}

func ParseLanguage(s string) (entity.Language, bool) {
	switch entity.Language(strings.ToLower(strings.TrimSpace(s))) {
	case entity.English:
		return entity.English, true
	case entity.French:
		return entity.French, true
	}
	return entity.English, false
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) entity.Language {
	if acceptLanguage == "" {
		return entity.English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return entity.English
	}
	tag, _, _ := matcher.Match(tags...)
	base, _ := tag.Base()
	if base.String() == string(entity.French) {
		return entity.French
	}
	return entity.English
}
