package catalog

import "city_explorer/internal/domain"

var categoryDefinitions = []domain.CategoryDefinition{
	{ID: "historical", Title: "Tarihi Yerler", Description: "Geçmişin izlerini taşıyan kaleler, anıtlar ve antik kentler.", Query: "historic site", Kinds: "historic,fortifications,monuments_and_memorials"},
	{ID: "museums", Title: "Müzeler", Description: "Sanat, tarih ve bilim koleksiyonlarına ev sahipliği yapan müzeler.", Query: "museum", Kinds: "museums"},
	{ID: "nature", Title: "Doğal Güzellikler", Description: "Parklar, göller, şelaleler ve seyir noktaları.", Query: "park", Kinds: "natural,gardens_and_parks"},
	{ID: "beaches", Title: "Plajlar", Description: "Deniz, kum ve güneşin buluştuğu sahiller.", Query: "beach", Kinds: "beaches"},
	{ID: "religious", Title: "Dini Yapılar", Description: "Camiler, kiliseler ve tarihi ibadethaneler.", Query: "mosque", Kinds: "religion"},
	{ID: "architecture", Title: "Mimari Yapılar", Description: "Kuleler, köprüler ve şehrin silüetini belirleyen yapılar.", Query: "landmark", Kinds: "architecture,bridges,towers"},
	{ID: "food", Title: "Yeme İçme", Description: "Yerel lezzetlerin tadılabileceği restoran ve kafeler.", Query: "restaurant", Kinds: "foods"},
}

// Category returns the definition registered under id.
func Category(id string) (domain.CategoryDefinition, bool) {
	for _, d := range categoryDefinitions {
		if d.ID == id {
			return d, true
		}
	}
	return domain.CategoryDefinition{}, false
}

func CategoryDefinitions() []domain.CategoryDefinition {
	out := make([]domain.CategoryDefinition, len(categoryDefinitions))
	copy(out, categoryDefinitions)
	return out
}
