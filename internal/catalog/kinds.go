package catalog

import (
	"strings"

	"city_explorer/internal/domain"
)

// kindLabels maps provider tokens (OpenTripMap kinds, Foursquare category
// names or their leading word) to display categories.
var kindLabels = map[string]domain.Category{
	"historic":                    domain.CategoryHistoric,
	"historic_architecture":       domain.CategoryHistoric,
	"historic and protected site": domain.CategoryHistoric,
	"archaeology":                 domain.CategoryHistoric,
	"fortifications":              domain.CategoryHistoric,
	"castles":                     domain.CategoryHistoric,
	"castle":                      domain.CategoryHistoric,
	"monuments_and_memorials":     domain.CategoryHistoric,
	"monument":                    domain.CategoryHistoric,
	"memorial":                    domain.CategoryHistoric,
	"palace":                      domain.CategoryHistoric,
	"museums":                     domain.CategoryMuseum,
	"museum":                      domain.CategoryMuseum,
	"art museum":                  domain.CategoryMuseum,
	"history museum":              domain.CategoryMuseum,
	"architecture":                domain.CategoryArchitecture,
	"bridges":                     domain.CategoryArchitecture,
	"bridge":                      domain.CategoryArchitecture,
	"towers":                      domain.CategoryArchitecture,
	"tower":                       domain.CategoryArchitecture,
	"skyscrapers":                 domain.CategoryArchitecture,
	"natural":                     domain.CategoryNature,
	"nature_reserves":             domain.CategoryNature,
	"geological_formations":       domain.CategoryNature,
	"water":                       domain.CategoryNature,
	"mountain":                    domain.CategoryNature,
	"scenic lookout":              domain.CategoryNature,
	"cultural":                    domain.CategoryCulture,
	"theatres_and_entertainments": domain.CategoryCulture,
	"art":                         domain.CategoryCulture,
	"arts":                        domain.CategoryCulture,
	"performing":                  domain.CategoryCulture,
	"amusements":                  domain.CategoryEntertainment,
	"amusement":                   domain.CategoryEntertainment,
	"theme":                       domain.CategoryEntertainment,
	"sport":                       domain.CategoryEntertainment,
	"religion":                    domain.CategoryReligious,
	"churches":                    domain.CategoryReligious,
	"church":                      domain.CategoryReligious,
	"mosques":                     domain.CategoryReligious,
	"mosque":                      domain.CategoryReligious,
	"cathedrals":                  domain.CategoryReligious,
	"cathedral":                   domain.CategoryReligious,
	"gardens_and_parks":           domain.CategoryPark,
	"urban_environment":           domain.CategoryPark,
	"park":                        domain.CategoryPark,
	"garden":                      domain.CategoryPark,
	"plaza":                       domain.CategoryPark,
	"beaches":                     domain.CategoryBeach,
	"beach":                       domain.CategoryBeach,
	"foods":                       domain.CategoryFood,
	"restaurant":                  domain.CategoryFood,
	"cafe":                        domain.CategoryFood,
	"café":                        domain.CategoryFood,
	"coffee":                      domain.CategoryFood,
	"bakery":                      domain.CategoryFood,
	"bar":                         domain.CategoryFood,
	"shops":                       domain.CategoryShopping,
	"marketplaces":                domain.CategoryShopping,
	"market":                      domain.CategoryShopping,
	"shopping":                    domain.CategoryShopping,
	"bazaar":                      domain.CategoryShopping,
	"interesting_places":          domain.CategoryGeneric,
	"landmarks":                   domain.CategoryGeneric,
	"landmark":                    domain.CategoryGeneric,
}

// TranslateKind maps a raw kind/category string to a display category.
// The whole string is tried first, then its leading token. Anything else
// is the generic label.
func TranslateKind(raw string) domain.Category {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return domain.CategoryGeneric
	}
	if c, ok := kindLabels[s]; ok {
		return c
	}
	lead := s
	if i := strings.IndexByte(lead, ','); i >= 0 {
		lead = strings.TrimSpace(lead[:i])
	}
	if c, ok := kindLabels[lead]; ok {
		return c
	}
	if f := strings.Fields(lead); len(f) > 0 {
		if c, ok := kindLabels[f[0]]; ok {
			return c
		}
	}
	return domain.CategoryGeneric
}
