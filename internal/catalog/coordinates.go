package catalog

import "city_explorer/internal/domain"

// cityCoordinates is looked up before any remote geocoding call.
var cityCoordinates = map[string]domain.Coordinates{
	"İstanbul":  {Lat: 41.0082, Lon: 28.9784},
	"Ankara":    {Lat: 39.9334, Lon: 32.8597},
	"İzmir":     {Lat: 38.4237, Lon: 27.1428},
	"Antalya":   {Lat: 36.8969, Lon: 30.7133},
	"Bursa":     {Lat: 40.1885, Lon: 29.0610},
	"Trabzon":   {Lat: 41.0027, Lon: 39.7168},
	"Kapadokya": {Lat: 38.6431, Lon: 34.8289},
	"Muğla":     {Lat: 37.2153, Lon: 28.3636},
	"Paris":     {Lat: 48.8566, Lon: 2.3522},
	"Roma":      {Lat: 41.9028, Lon: 12.4964},
	"Londra":    {Lat: 51.5074, Lon: -0.1278},
	"Barselona": {Lat: 41.3874, Lon: 2.1686},
	"Amsterdam": {Lat: 52.3676, Lon: 4.9041},
}

var coordinateIndex = indexByFold(cityCoordinates)

// LookupCity matches name against the curated coordinate table.
func LookupCity(name string) (domain.City, bool) {
	display, ok := coordinateIndex[Fold(name)]
	if !ok {
		return domain.City{}, false
	}
	return domain.City{Name: display, Coordinates: cityCoordinates[display]}, true
}

func indexByFold[V any](m map[string]V) map[string]string {
	idx := make(map[string]string, len(m))
	for k := range m {
		idx[Fold(k)] = k
	}
	return idx
}
