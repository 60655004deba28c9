package entity

const DefaultCountryCode = "+243"

type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

// CountryCodes is the dialing-code list offered by the registration form.
var CountryCodes = []CountryCode{
	{"+243", "DR Congo"},
	{"+242", "Congo"},
	{"+244", "Angola"},
	{"+250", "Rwanda"},
	{"+256", "Uganda"},
	{"+257", "Burundi"},
	{"+255", "Tanzania"},
	{"+254", "Kenya"},
	{"+260", "Zambia"},
	{"+236", "Central African Republic"},
	{"+211", "South Sudan"},
	{"+237", "Cameroon"},
	{"+241", "Gabon"},
	{"+27", "South Africa"},
	{"+32", "Belgium"},
	{"+33", "France"},
	{"+44", "United Kingdom"},
	{"+1", "United States / Canada"},
}

func IsKnownCountryCode(code string) bool {
	for _, c := range CountryCodes {
		if c.Code == code {
			return true
		}
	}
	return false
}
