package domain

// Category is the closed set of display labels a Place can carry.
type Category string

const (
	CategoryHistoric      Category = "Tarihi Yerler"
	CategoryMuseum        Category = "Müzeler"
	CategoryArchitecture  Category = "Mimari Yapılar"
	CategoryNature        Category = "Doğal Güzellikler"
	CategoryCulture       Category = "Kültür ve Sanat"
	CategoryEntertainment Category = "Eğlence"
	CategoryReligious     Category = "Dini Yapılar"
	CategoryPark          Category = "Parklar ve Bahçeler"
	CategoryBeach         Category = "Plajlar"
	CategoryFood          Category = "Yeme İçme"
	CategoryShopping      Category = "Alışveriş"
	CategoryGeneric       Category = "Gezilecek Yerler"
)

var Categories = []Category{
	CategoryHistoric, CategoryMuseum, CategoryArchitecture, CategoryNature,
	CategoryCulture, CategoryEntertainment, CategoryReligious, CategoryPark,
	CategoryBeach, CategoryFood, CategoryShopping, CategoryGeneric,
}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

type CategoryDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Query       string `json:"-"` // Foursquare free-text query
	Kinds       string `json:"-"` // OpenTripMap kinds
}
