package i18n

import "github.com/bestbuycongo/starlink-inquiry/internal/entity"

func english() Bundle {
	return Bundle{
		Language: entity.English,
		Validation: ValidationText{
			NameRequired:        "Full name is required",
			EmailRequired:       "Email is required",
			EmailInvalid:        "Please enter a valid email",
			CountryCodeRequired: "Country code is required",
			PhoneRequired:       "Phone number is required",
			CityRequired:        "City is required",
		},
		Form: FormText{
			Heading:    "Register Your Interest",
			Subheading: "Complete the form below to express your interest in Starlink services",
			Labels: map[string]string{
				entity.FieldFullName:    "Full Name",
				entity.FieldEmail:       "Email Address",
				entity.FieldCountryCode: "Country Code",
				entity.FieldPhoneNumber: "Phone Number",
				entity.FieldCity:        "City",
				entity.FieldCompany:     "Company Name",
				entity.FieldDescription: "Tell us about your needs",
			},
			Placeholders: map[string]string{
				entity.FieldFullName:    "Enter your full name",
				entity.FieldEmail:       "Enter your email address",
				entity.FieldPhoneNumber: "Enter your phone number",
				entity.FieldCity:        "Enter your city",
				entity.FieldCompany:     "Enter your company name (if applicable)",
				entity.FieldDescription: "Which kit are you interested in, and where will you use it?",
			},
			Submit:     "Register Interest",
			Processing: "Processing...",
			Optional:   "(Optional)",
		},
		Notice: NoticeText{
			SuccessTitle: "Registration Successful",
			SuccessBody:  "Thank you for your interest in Starlink!",
			FailureTitle: "Submission Failed",
			FailureBody:  "We could not register your inquiry. Please try again in a moment.",
		},
		ThankYou: ThankYouText{
			Heading:         "Thank You for Your Interest!",
			Message:         "We've received your inquiry about Starlink service in DR Congo. Our representative will contact you soon with more information.",
			RegisterAnother: "Submit Another Inquiry",
			AdditionalInfo:  "BestBuy Congo is the official distributor of Starlink in RD Congo, providing high-speed internet solutions across the country.",
		},
		Page: PageText{
			Title:           "Starlink DR Congo | BestBuy Congo",
			HeroHeading:     "High-Speed Internet Across DR Congo",
			HeroSubheading:  "Connect to Starlink's satellite internet service for reliable, high-speed access anywhere in DR Congo",
			BenefitsHeading: "Why Choose Starlink in DR Congo",
			Benefits: []Benefit{
				{"High Speed Internet", "Experience download speeds of 50-200 Mbps, even in remote areas"},
				{"Low Latency", "With latency as low as 20-40ms, enjoy video calls and online gaming without interruption"},
				{"Easy Setup", "Simple self-installation with everything needed included in the kit"},
			},
			ProductsHeading: "Our Starlink Kits",
			ProductsSub:     "Explore our range of high-speed internet solutions for any situation",
			Products: []Product{
				{"Standard Kit", "Reliable high-speed internet for homes and businesses", "/static/kits/standard.svg"},
				{"Mini Kit", "Compact, portable, and easy to set up, ideal for travelers and small spaces without compromising on speed", "/static/kits/mini.svg"},
				{"Flat HP Kit", "Engineered for mobility and harsh environments, perfect for vehicles, boats, and high-demand users on the move", "/static/kits/flat-hp.svg"},
			},
			Inquire: "Inquire",
			Footer:  "BestBuy Congo, official Starlink distributor in DR Congo. All rights reserved.",
		},
	}
}
