// internal/venue/data.go
package venue

import "concierge-workers/internal/models"

// The 2026 host stadiums. The first entry is the catalog default.
var builtIn = []models.Venue{
	{
		ID: "sofi", Name: "SoFi Stadium", City: "Los Angeles", Country: "USA",
		Coordinates: models.Coordinates{Latitude: 33.9533, Longitude: -118.3386},
		PlaceID:     "ChIJLfySpTOsEmsRsc_JfJtljdc",
		Address:     "1001 Stadium Dr, Inglewood, CA 90301",
		Timezone:    "America/Los_Angeles", PrimaryLanguage: "en",
	},
	{
		ID: "metlife", Name: "MetLife Stadium", City: "East Rutherford", Country: "USA",
		Coordinates: models.Coordinates{Latitude: 40.8135, Longitude: -74.0745},
		PlaceID:     "ChIJrw7QBK9ZwokRvHvjSI0N6qs",
		Address:     "1 MetLife Stadium Dr, East Rutherford, NJ 07073",
		Timezone:    "America/New_York", PrimaryLanguage: "en",
	},
	{
		ID: "azteca", Name: "Estadio Azteca", City: "Mexico City", Country: "Mexico",
		Coordinates: models.Coordinates{Latitude: 19.3030, Longitude: -99.1506},
		PlaceID:     "ChIJcUMn_0QB0oURSQWdK-MIksE",
		Address:     "Calz. de Tlalpan 3465, Santa Úrsula Coapa, Mexico City",
		Timezone:    "America/Mexico_City", PrimaryLanguage: "es",
	},
	{
		ID: "att", Name: "AT&T Stadium", City: "Arlington", Country: "USA",
		Coordinates: models.Coordinates{Latitude: 32.7473, Longitude: -97.0945},
		PlaceID:     "ChIJ0wa8th2uToYRXU3Xq7jN8hE",
		Address:     "1 AT&T Way, Arlington, TX 76011",
		Timezone:    "America/Chicago", PrimaryLanguage: "en",
	},
	{
		ID: "arrowhead", Name: "Arrowhead Stadium", City: "Kansas City", Country: "USA",
		Coordinates: models.Coordinates{Latitude: 39.0489, Longitude: -94.4839},
		PlaceID:     "ChIJ_3_TdlewwIcRVaD1SQK8GYY",
		Address:     "1 Arrowhead Dr, Kansas City, MO 64129",
		Timezone:    "America/Chicago", PrimaryLanguage: "en",
	},
	{
		ID: "mercedes-benz", Name: "Mercedes-Benz Stadium", City: "Atlanta", Country: "USA",
		Coordinates: models.Coordinates{Latitude: 33.7554, Longitude: -84.4008},
		PlaceID:     "ChIJdWxa1SR-9YgRDG_kDsOgRd4",
		Address:     "1 AMB Dr NW, Atlanta, GA 30313",
		Timezone:    "America/New_York", PrimaryLanguage: "en",
	},
	{
		ID: "lumen", Name: "Lumen Field", City: "Seattle", Country: "USA",
		Coordinates: models.Coordinates{Latitude: 47.5952, Longitude: -122.3316},
		PlaceID:     "ChIJOzgGm0pqkFQRJQhfQ3SkPPE",
		Address:     "800 Occidental Ave S, Seattle, WA 98134",
		Timezone:    "America/Los_Angeles", PrimaryLanguage: "en",
	},
	{
		ID: "bc-place", Name: "BC Place", City: "Vancouver", Country: "Canada",
		Coordinates: models.Coordinates{Latitude: 49.2768, Longitude: -123.1119},
		PlaceID:     "ChIJZdfacCFzhlQRofcvRNFPDdI",
		Address:     "777 Pacific Blvd, Vancouver, BC V6B 4Y8",
		Timezone:    "America/Vancouver", PrimaryLanguage: "en",
	},
	{
		ID: "bmo", Name: "BMO Field", City: "Toronto", Country: "Canada",
		Coordinates: models.Coordinates{Latitude: 43.6332, Longitude: -79.4189},
		PlaceID:     "ChIJ7cvzKLs0K4gRfjZ2Hk9wZVk",
		Address:     "170 Princes Blvd, Toronto, ON M6K 3C3",
		Timezone:    "America/Toronto", PrimaryLanguage: "en",
	},
	{
		ID: "bbva", Name: "Estadio BBVA", City: "Monterrey", Country: "Mexico",
		Coordinates: models.Coordinates{Latitude: 25.7209, Longitude: -100.2881},
		PlaceID:     "ChIJa4MRPDKYZ4YR_dCvBKxYNKw",
		Address:     "Av. Pablo Livas 2011, Monterrey, NL",
		Timezone:    "America/Monterrey", PrimaryLanguage: "es",
	},
	{
		ID: "akron", Name: "Estadio Akron", City: "Guadalajara", Country: "Mexico",
		Coordinates: models.Coordinates{Latitude: 20.6906, Longitude: -103.4639},
		PlaceID:     "ChIJb_y3Z-mNKYQRR5hYXdRcGK0",
		Address:     "Av. Estadio 2375, Guadalajara, JAL",
		Timezone:    "America/Mexico_City", PrimaryLanguage: "es",
	},
}

// BuiltIn returns a copy of the embedded venue list.
func BuiltIn() []models.Venue {
	out := make([]models.Venue, len(builtIn))
	copy(out, builtIn)
	return out
}
