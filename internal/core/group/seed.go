// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package group

// catalogSeed is the starter catalog inserted into an empty store, in order.
// Inserted into an empty store they receive ids "1" to "5".
func catalogSeed() []*Group {
	return []*Group{
		{
			Name:         "Lago di Braies Weekend",
			Location:     "Dolomiti, Alto Adige",
			Date:         "2025-05-20",
			MinAge:       28,
			MaxAge:       34,
			Styles:       []string{"Tranquillo", "Lago", "Natura"},
			SpotsFree:    3,
			WhatsAppLink: "https://wa.me/1234567890?text=Ciao!%20Mi%20unisco%20al%20gruppo%20Lago%20di%20Braies",
			Image:        "/src/assets/braies.jpg",
		},
		{
			Name:         "Toscana Colline",
			Location:     "Chianti, Toscana",
			Date:         "2025-05-21",
			MinAge:       25,
			MaxAge:       32,
			Styles:       []string{"Fotografico", "Sociale"},
			SpotsFree:    2,
			WhatsAppLink: "https://wa.me/1234567890?text=Ciao!%20Mi%20unisco%20al%20gruppo%20Toscana",
			Image:        "/src/assets/tuscany.jpg",
		},
		{
			Name:         "Cinque Terre Mare",
			Location:     "Liguria",
			Date:         "2025-05-22",
			MinAge:       30,
			MaxAge:       40,
			Styles:       []string{"Avventura", "Sociale"},
			SpotsFree:    4,
			WhatsAppLink: "https://wa.me/1234567890?text=Ciao!%20Mi%20unisco%20al%20gruppo%20Cinque%20Terre",
			Image:        "/src/assets/cinqueterre.jpg",
		},
		{
			Name:         "Alpi Svizzere",
			Location:     "Canton Ticino, Svizzera",
			Date:         "2025-05-23",
			MinAge:       26,
			MaxAge:       35,
			Styles:       []string{"Avventura", "Tranquillo", "Natura"},
			SpotsFree:    3,
			WhatsAppLink: "https://wa.me/1234567890?text=Ciao!%20Mi%20unisco%20al%20gruppo%20Alpi",
		},
		{
			Name:         "Costiera Amalfitana",
			Location:     "Campania",
			Date:         "2025-05-24",
			MinAge:       24,
			MaxAge:       38,
			Styles:       []string{"Fotografico", "Sociale", "Avventura"},
			SpotsFree:    2,
			WhatsAppLink: "https://wa.me/1234567890?text=Ciao!%20Mi%20unisco%20al%20gruppo%20Amalfi",
		},
	}
}
