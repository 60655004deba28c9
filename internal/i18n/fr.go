package i18n

import "github.com/bestbuycongo/starlink-inquiry/internal/entity"

func french() Bundle {
	return Bundle{
		Language: entity.French,
		Validation: ValidationText{
			NameRequired:        "Le nom complet est requis",
			EmailRequired:       "L'email est requis",
			EmailInvalid:        "Veuillez entrer un email valide",
			CountryCodeRequired: "L'indicatif du pays est requis",
			PhoneRequired:       "Le numéro de téléphone est requis",
			CityRequired:        "La ville est requise",
		},
		Form: FormText{
			Heading:    "Enregistrez Votre Intérêt",
			Subheading: "Remplissez le formulaire ci-dessous pour exprimer votre intérêt pour les services Starlink",
			Labels: map[string]string{
				entity.FieldFullName:    "Nom Complet",
				entity.FieldEmail:       "Adresse Email",
				entity.FieldCountryCode: "Indicatif",
				entity.FieldPhoneNumber: "Numéro de Téléphone",
				entity.FieldCity:        "Ville",
				entity.FieldCompany:     "Nom de l'Entreprise",
				entity.FieldDescription: "Parlez-nous de vos besoins",
			},
			Placeholders: map[string]string{
				entity.FieldFullName:    "Entrez votre nom complet",
				entity.FieldEmail:       "Entrez votre adresse email",
				entity.FieldPhoneNumber: "Entrez votre numéro de téléphone",
				entity.FieldCity:        "Entrez votre ville",
				entity.FieldCompany:     "Entrez le nom de votre entreprise (si applicable)",
				entity.FieldDescription: "Quel kit vous intéresse, et où l'utiliserez-vous ?",
			},
			Submit:     "Enregistrer l'intérêt",
			Processing: "Traitement...",
			Optional:   "(Optionnel)",
		},
		Notice: NoticeText{
			SuccessTitle: "Inscription Réussie",
			SuccessBody:  "Merci pour votre intérêt pour Starlink!",
			FailureTitle: "Échec de l'envoi",
			FailureBody:  "Nous n'avons pas pu enregistrer votre demande. Veuillez réessayer dans un instant.",
		},
		ThankYou: ThankYouText{
			Heading:         "Merci pour Votre Intérêt!",
			Message:         "Nous avons reçu votre demande concernant le service Starlink en RD Congo. Notre représentant vous contactera bientôt avec plus d'informations.",
			RegisterAnother: "Soumettre Une Autre Demande",
			AdditionalInfo:  "BestBuy Congo est le distributeur officiel de Starlink en RD Congo, fournissant des solutions internet haut débit dans tout le pays.",
		},
		Page: PageText{
			Title:           "Starlink RD Congo | BestBuy Congo",
			HeroHeading:     "Internet Haut Débit à Travers la RD Congo",
			HeroSubheading:  "Connectez-vous au service internet par satellite de Starlink pour un accès fiable et à haut débit partout en RD Congo",
			BenefitsHeading: "Pourquoi Choisir Starlink en RD Congo",
			Benefits: []Benefit{
				{"Internet Haut Débit", "Profitez de vitesses de téléchargement de 50 à 200 Mbps, même dans les zones reculées"},
				{"Faible Latence", "Avec une latence aussi faible que 20-40ms, profitez d'appels vidéo et de jeux en ligne sans interruption"},
				{"Installation Facile", "Installation simple avec tout le nécessaire inclus dans le kit"},
			},
			ProductsHeading: "Nos Kits Starlink",
			ProductsSub:     "Explorez notre gamme de solutions internet à haut débit pour toute situation",
			Products: []Product{
				{"Kit Standard", "Internet haut débit fiable pour les maisons et les entreprises", "/static/kits/standard.svg"},
				{"Mini Kit", "Compact, portable et facile à installer, idéal pour les voyageurs et les petits espaces sans compromis sur la vitesse", "/static/kits/mini.svg"},
				{"Kit HP Plat", "Conçu pour la mobilité et les environnements difficiles, parfait pour les véhicules, les bateaux et les utilisateurs en déplacement", "/static/kits/flat-hp.svg"},
			},
			Inquire: "Se Renseigner",
			Footer:  "BestBuy Congo, distributeur officiel de Starlink en RD Congo. Tous droits réservés.",
		},
	}
}
