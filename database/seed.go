package database

import (
	"cruise_manager/config"
	"cruise_manager/logger"
	"cruise_manager/model"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func places(n int) *int {
	return &n
}

func strPtr(s string) *string {
	return &s
}

func availability(dateRange string, p int64, remaining int) model.CruiseAvailability {
	return model.CruiseAvailability{DateRange: dateRange, Price: price(p), RemainingPlaces: places(remaining)}
}

func days(titles ...string) []model.ProgramDay {
	out := make([]model.ProgramDay, len(titles))
	for i, t := range titles {
		out[i] = model.ProgramDay{Day: i + 1, Title: t}
	}
	return out
}

func SeedData(db *gorm.DB, s *config.Settings) {
	seedAdmin(db, s)
	seedCruises(db)
	seedCatamarans(db)
}

func seedAdmin(db *gorm.DB, s *config.Settings) {
	if s.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD is empty, admin account not seeded")
		return
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(s.AdminPassword), 10)
	if err != nil {
		logger.Error("failed to hash admin password", "error", err)
		return
	}
	account := model.Account{Username: s.AdminUsername, Password: string(bytes), Role: "ADMIN", Active: true}
	if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
		logger.Error("failed to seed admin account", "username", account.Username, "error", err)
	}
}

func corsicaSouthDepartures() []model.CruiseAvailability {
	return []model.CruiseAvailability{
		availability("du 2 au 9 mai 2026", 1470, 8),
		availability("du 9 au 16 mai 2026", 1470, 0),
		availability("du 6 au 13 juin 2026", 1670, 8),
		availability("du 27 juin au 4 juillet 2026", 1970, 8),
		availability("du 4 au 11 juillet 2026", 1970, 8),
		availability("du 11 au 18 juillet 2026", 1970, 8),
		availability("du 25 juillet au 1er août 2026", 2070, 8),
		availability("du 1er au 8 août 2026", 2070, 4),
		availability("du 8 au 15 août 2026", 2070, 0),
		availability("du 15 au 22 août 2026", 2170, 8),
		availability("du 22 au 29 août 2026", 2170, 8),
		availability("du 29 août au 5 septembre 2026", 2070, 8),
		availability("du 5 au 12 septembre 2026", 1870, 8),
		availability("du 12 au 19 septembre 2026", 1770, 8),
		availability("du 19 au 26 septembre 2026", 1770, 8),
		availability("du 26 septembre au 3 octobre 2026", 1470, 8),
	}
}

func seedCruises(db *gorm.DB) {
	cruises := []model.Cruise{
		{
			NameFr:        "Tour de Corse",
			NameEn:        "Tour of Corsica",
			SubtitleFr:    "L'Inoubliable",
			SubtitleEn:    "The Unforgettable",
			DescriptionFr: "Partez pour une aventure inoubliable autour de l'Île de Beauté. Découvrez les criques sauvages, les villages de pêcheurs authentiques et les paysages à couper le souffle de la Corse.",
			DescriptionEn: "Embark on an unforgettable adventure around the Island of Beauty. Discover wild coves, authentic fishing villages and breathtaking landscapes of Corsica.",
			ImageUrl:      "https://images.unsplash.com/photo-1592314963065-87659404f412?w=800",
			Destination:   "corsica",
			CruiseType:    "both",
			Duration:      "2 semaines",
			DeparturePort: "Ajaccio",
			CabinPrice:    price(2560),
			PrivatePrice:  price(12900),
			HighlightsFr:  []string{"Scandola (UNESCO)", "Bonifacio", "Cap Corse", "Îles Lavezzi"},
			HighlightsEn:  []string{"Scandola (UNESCO)", "Bonifacio", "Cap Corse", "Lavezzi Islands"},
			ProgramFr: days(
				"Embarquement Ajaccio & Îles Sanguinaires", "Cargèse", "Calanques de Piana & Golfe de Porto",
				"Village de Girolata", "Réserve de Scandola & Galéria", "Golfe de la Revelatta & Calvi",
				"Plages de Saleccia & Saint-Florent", "Plage de Nonza & Port de Centuri", "Cap Corse, Erbalunga & Bastia",
				"Solenzara", "Porto-Vecchio & Santa Giulia", "Bonifacio", "Plage de Roccapina & Tizzano",
				"Retour Ajaccio via Cala di Conca", "Débarquement Ajaccio",
			),
			ProgramEn: days(
				"Ajaccio - Sanguinaires Islands", "Girolata - Scandola Reserve", "Calvi - Citadel",
				"Saint-Florent - Cap Corse", "Bastia - Cap villages", "Porto-Vecchio",
				"Bonifacio - Lavezzi Islands", "Return to Ajaccio",
			),
			Availabilities: []model.CruiseAvailability{
				availability("du 23 mai au 6 juin 2026", 2560, 8),
				availability("du 13 au 27 juin 2026", 2560, 4),
				availability("du 27 juin au 11 juillet 2026", 3150, 8),
				availability("du 11 au 25 juillet 2026", 3150, 8),
				availability("du 25 juillet au 8 août 2026", 3450, 0),
				availability("du 8 au 22 août 2026", 3450, 0),
				availability("du 22 août au 5 septembre 2026", 3450, 8),
				availability("du 5 au 19 septembre 2026", 3150, 8),
				availability("du 19 septembre au 3 octobre 2026", 2660, 8),
			},
			BoardingPassImage: strPtr("https://static.wixstatic.com/media/ce6ce7_170fb96af2764aecb7eb7c526a48eb27~mv2.png"),
			DisplayOrder:      1,
		},
		{
			NameFr:        "Corse du Sud",
			NameEn:        "South Corsica",
			SubtitleFr:    "La Radieuse",
			SubtitleEn:    "The Radiant",
			DescriptionFr: "Explorez les plus belles plages et criques du sud de la Corse. Eaux turquoise, falaises de Bonifacio et authenticité corse vous attendent.",
			DescriptionEn: "Explore the most beautiful beaches and coves of southern Corsica. Turquoise waters, Bonifacio cliffs and Corsican authenticity await you.",
			ImageUrl:      "https://images.unsplash.com/photo-1592285273835-78c20c0aab5d?w=800",
			Destination:   "corsica_south",
			CruiseType:    "both",
			Duration:      "8 jours / 7 nuits",
			DeparturePort: "Ajaccio",
			CabinPrice:    price(1470),
			PrivatePrice:  price(11900),
			HighlightsFr:  []string{"Bonifacio", "Îles Lavezzi", "Porto-Vecchio", "Palombaggia"},
			HighlightsEn:  []string{"Bonifacio", "Lavezzi Islands", "Porto-Vecchio", "Palombaggia"},
			ProgramFr: days(
				"Ajaccio & Anse de Cacalu", "Campomoro & Roccapina", "Anse d'Arbitru & Bonifacio",
				"Sant' Amanza & Cavallo", "Les Îles Lavezzi", "Golfe de Murtoli & Tizzano",
				"Retour sur Ajaccio avec arrêt sur Cala di Conca", "Débarquement port Tino Rossi à Ajaccio",
			),
			ProgramEn: days(
				"Ajaccio - Sanguinaires Islands", "Propriano - Campomoro", "Bonifacio", "Lavezzi Islands",
				"Porto-Vecchio - Palombaggia", "Rondinara", "Cala Rossa", "Return to Ajaccio",
			),
			Availabilities:    corsicaSouthDepartures(),
			BoardingPassImage: strPtr("https://static.wixstatic.com/media/ce6ce7_2c02fe160efb49b6930f0c695a53e34f~mv2.png"),
			DisplayOrder:      2,
		},
		{
			NameFr:        "Ouest Corse",
			NameEn:        "West Corsica",
			SubtitleFr:    "L'Indomptée",
			SubtitleEn:    "The Untamed",
			DescriptionFr: "Découvrez la côte sauvage de l'ouest corse avec ses calanques de Piana, la réserve de Scandola et le golfe de Porto.",
			DescriptionEn: "Discover the wild west coast of Corsica with its Piana calanques, Scandola reserve and Porto gulf.",
			ImageUrl:      "https://images.unsplash.com/photo-1599580792927-de3b03c5dc20?w=800",
			Destination:   "corsica_west",
			CruiseType:    "both",
			Duration:      "8 jours / 7 nuits",
			DeparturePort: "Ajaccio",
			CabinPrice:    price(1470),
			PrivatePrice:  price(11900),
			HighlightsFr:  []string{"Scandola (UNESCO)", "Calanques de Piana", "Girolata", "Calvi"},
			HighlightsEn:  []string{"Scandola (UNESCO)", "Piana Calanques", "Girolata", "Calvi"},
			ProgramFr: days(
				"Ajaccio & les Îles Sanguinaires", "Cargèse & Cala di Palu", "Les Calanques de Piana & Ficajola",
				"Le Golfe de Porto & Girolata", "La réserve naturelle de Scandola & Galéria", "Le Golfe de la Revelatta & Calvi",
				"Retour sur Ajaccio avec arrêt sur la plage d'Arone", "Débarquement port Tino Rossi à Ajaccio",
			),
			ProgramEn: days(
				"Ajaccio - Cargèse", "Piana Calanques", "Scandola Reserve", "Girolata",
				"Calvi", "L'Île-Rousse", "Saint-Florent", "Return to Ajaccio",
			),
			Availabilities:    corsicaSouthDepartures(),
			BoardingPassImage: strPtr("https://static.wixstatic.com/media/ce6ce7_bdc5406402ea4be3b94eeeb747d2da1a~mv2.png"),
			DisplayOrder:      3,
		},
		{
			NameFr:        "Sardaigne & Corse du Sud",
			NameEn:        "Sardinia & South Corsica",
			SubtitleFr:    "La Sublime",
			SubtitleEn:    "The Sublime",
			DescriptionFr: "Une croisière exceptionnelle entre deux îles méditerranéennes. De la Corse à la Sardaigne, vivez une expérience unique.",
			DescriptionEn: "An exceptional cruise between two Mediterranean islands. From Corsica to Sardinia, live a unique experience.",
			ImageUrl:      "https://images.unsplash.com/photo-1699287956455-25988986f105?w=800",
			Destination:   "sardinia",
			CruiseType:    "both",
			Duration:      "8 jours / 7 nuits",
			DeparturePort: "Ajaccio",
			CabinPrice:    price(1470),
			PrivatePrice:  price(11900),
			HighlightsFr:  []string{"Costa Smeralda", "La Maddalena", "Bonifacio", "Îles Lavezzi"},
			HighlightsEn:  []string{"Costa Smeralda", "La Maddalena", "Bonifacio", "Lavezzi Islands"},
			ProgramFr: days(
				"Ajaccio & Anse de Cacalu", "Roccapina & Bonifacio", "Les Îles Lavezzi, l'archipel de La Maddalena & Cala Gavetta",
				"Cala Cris, Cala Granu & Porto Cervo", "L'île de Caprera, Cala di Coticcio", "Golfe de Murtoli & Tizzano",
				"Cala di Conca & Propriano", "Débarquement port Tino Rossi à Ajaccio",
			),
			ProgramEn: days(
				"Ajaccio - Propriano", "Bonifacio", "Lavezzi Islands - La Maddalena", "La Maddalena Archipelago",
				"Costa Smeralda", "Return Corsica - Porto-Vecchio", "Rondinara", "Return to Ajaccio",
			),
			Availabilities:    corsicaSouthDepartures(),
			BoardingPassImage: strPtr("https://static.wixstatic.com/media/ce6ce7_68a8fb4c934c44cb909dfc0075f36d83~mv2.png"),
			DisplayOrder:      4,
		},
		{
			NameFr:        "Grèce Authentique",
			NameEn:        "Authentic Greece",
			SubtitleFr:    "La Sérénissime",
			SubtitleEn:    "The Serene",
			DescriptionFr: "Naviguez dans les eaux cristallines des îles Ioniennes. Découvrez la Grèce authentique loin des sentiers battus.",
			DescriptionEn: "Sail in the crystal clear waters of the Ionian Islands. Discover authentic Greece off the beaten path.",
			ImageUrl:      "https://images.unsplash.com/photo-1601581875309-fafbf2d3ed3a?w=800",
			Destination:   "greece",
			CruiseType:    "private",
			Duration:      "8 jours / 7 nuits",
			DeparturePort: "Lefkas",
			PrivatePrice:  price(13900),
			HighlightsFr:  []string{"Céphalonie", "Ithaque", "Zakynthos", "Lefkas"},
			HighlightsEn:  []string{"Kefalonia", "Ithaca", "Zakynthos", "Lefkas"},
			ProgramFr: days(
				"Lefkas - Meganisi", "Ithaque - Vathy", "Céphalonie - Fiskardo", "Céphalonie - Sami",
				"Zakynthos - Navagio", "Zakynthos - Port", "Kastos - Kalamos", "Retour Lefkas",
			),
			ProgramEn: days(
				"Lefkas - Meganisi", "Ithaca - Vathy", "Kefalonia - Fiskardo", "Kefalonia - Sami",
				"Zakynthos - Navagio", "Zakynthos - Port", "Kastos - Kalamos", "Return to Lefkas",
			),
			DisplayOrder: 5,
		},
		{
			NameFr:        "Îles Grenadines",
			NameEn:        "Grenadines Islands",
			SubtitleFr:    "Les Éclatantes",
			SubtitleEn:    "The Dazzling",
			DescriptionFr: "Évasion tropicale aux Caraïbes. Naviguez entre les îles paradisiaques des Grenadines pour une expérience inoubliable.",
			DescriptionEn: "Tropical escape in the Caribbean. Sail between the paradise islands of the Grenadines for an unforgettable experience.",
			ImageUrl:      "https://images.unsplash.com/photo-1609097172762-1faf6cc8a0d2?w=800",
			Destination:   "caribbean",
			CruiseType:    "private",
			Duration:      "8 jours / 7 nuits",
			DeparturePort: "Le Marin (Martinique)",
			PrivatePrice:  price(18900),
			HighlightsFr:  []string{"Tobago Cays", "Mustique", "Bequia", "Saint-Vincent"},
			HighlightsEn:  []string{"Tobago Cays", "Mustique", "Bequia", "Saint Vincent"},
			ProgramFr: days(
				"Le Marin - Sainte-Lucie", "Saint-Vincent", "Bequia", "Mustique",
				"Tobago Cays", "Union Island", "Retour Le Marin",
			),
			ProgramEn: days(
				"Le Marin - Saint Lucia", "Saint Vincent", "Bequia", "Mustique",
				"Tobago Cays", "Union Island", "Return to Le Marin",
			),
			DisplayOrder: 6,
		},
	}

	for _, cruise := range cruises {
		cruise.Slug = slug.Make(cruise.NameFr)
		cruise.Currency = "EUR"
		cruise.IsActive = true

		var count int64
		db.Model(&model.Cruise{}).Where("slug = ?", cruise.Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&cruise).Error; err != nil {
			logger.Error("failed to seed cruise", "slug", cruise.Slug, "error", err)
		}
	}
}

func seedCatamarans(db *gorm.DB) {
	fleet := []model.Catamaran{
		{
			Name:      "LAGOON 38",
			TaglineFr: "Naviguez avec élégance",
			TaglineEn: "Sail with elegance",
			ImageUrl:  "https://static.wixstatic.com/media/ce6ce7_024c0100065546fbabe332bcb97a841f~mv2.jpg",
			Capacity:  8,
			Cabins:    4,
			Bathrooms: 2,
			Specs: model.CatamaranSpecs{
				Length: "13,12 m", Width: "6,65 m", Draft: "1,26 m", Mainsail: "56 m²",
				Jib: "23 m²", Engine: "2 x 29 CV", Fuel: "400 L", Water: "300 L",
			},
			FeaturesFr: []string{
				"Flybridge spacieux avec poste de barre surélevé",
				"Visibilité panoramique à 360°",
				"Cockpit avant encastré (rare sur cette taille)",
				"Table pour 8 personnes avec banquettes en U",
				"Cuisine extérieure avec évier et frigo",
				"Bains de soleil sur flybridge et pont avant",
			},
			FeaturesEn: []string{
				"Spacious flybridge with elevated helm station",
				"360° panoramic visibility",
				"Built-in forward cockpit (rare on this size)",
				"Table for 8 with U-shaped seating",
				"Outdoor kitchen with sink and fridge",
				"Sunbathing areas on flybridge and foredeck",
			},
			Order: 1,
		},
		{
			Name:      "LAGOON 43",
			TaglineFr: "Naviguez avec élégance",
			TaglineEn: "Sail with elegance",
			ImageUrl:  "https://static.wixstatic.com/media/ce6ce7_5929704591ae45fe935f994303ec34a4~mv2.jpg",
			Capacity:  8,
			Cabins:    4,
			Bathrooms: 4,
			Specs: model.CatamaranSpecs{
				Length: "13,85 m", Width: "7,69 m", Draft: "1,31 m", Mainsail: "68 m²",
				Jib: "37 m²", Engine: "2 x 57 CV", Fuel: "570 L", Water: "300 L",
			},
			FeaturesFr: []string{
				"Flybridge spacieux et central",
				"Poste de barre avec visibilité panoramique à 360°",
				"Accès double depuis le cockpit arrière",
				"Grande banquette en L pour détente",
				"Hardtop pour protection solaire",
				"Plage arrière dégagée avec plateforme",
			},
			FeaturesEn: []string{
				"Spacious and central flybridge",
				"Helm station with 360° panoramic visibility",
				"Double access from aft cockpit",
				"Large L-shaped bench for relaxation",
				"Hardtop for sun protection",
				"Clear stern platform",
			},
			Order: 2,
		},
		{
			Name:      "LAGOON 46",
			TaglineFr: "Naviguez avec élégance",
			TaglineEn: "Sail with elegance",
			ImageUrl:  "https://static.wixstatic.com/media/ce6ce7_ab91617a12cd4697aa8c83c9c5fcbd83~mv2.jpeg",
			Capacity:  8,
			Cabins:    4,
			Bathrooms: 4,
			Specs: model.CatamaranSpecs{
				Length: "13,99 m", Width: "7,96 m", Draft: "1,30 m", Mainsail: "87 m²",
				Jib: "50 m²", Engine: "2 x 57 CV", Fuel: "2 x 520 L", Water: "2 x 300 L",
			},
			FeaturesFr: []string{
				"Le plus grand de notre flotte",
				"Flybridge spacieux avec hardtop",
				"Carré très lumineux avec vue panoramique",
				"Cuisine en U avec accès direct au cockpit",
				"Matelas confort haut de gamme",
				"Nombreux coffres de rangement",
			},
			FeaturesEn: []string{
				"The largest in our fleet",
				"Spacious flybridge with hardtop",
				"Very bright saloon with panoramic view",
				"U-shaped kitchen with direct cockpit access",
				"High-end comfort mattresses",
				"Numerous storage compartments",
			},
			Order: 3,
		},
	}

	for _, boat := range fleet {
		boat.Slug = slug.Make(boat.Name)
		if err := db.Where(model.Catamaran{Slug: boat.Slug}).FirstOrCreate(&boat).Error; err != nil {
			logger.Error("failed to seed catamaran", "name", boat.Name, "error", err)
		}
	}
}
