// internal/models/venue.go
package models

type Coordinates struct {
	Latitude  float64 `json:"lat" db:"latitude"`
	Longitude float64 `json:"lng" db:"longitude"`
}

// Venue is a stadium record from the venue catalog.
type Venue struct {
	ID              string      `json:"id" db:"id"`
	Name            string      `json:"name" db:"name"`
	City            string      `json:"city" db:"city"`
	Country         string      `json:"country" db:"country"`
	Coordinates     Coordinates `json:"coordinates"`
	PlaceID         string      `json:"placeId,omitempty" db:"place_id"`
	Address         string      `json:"address" db:"address"`
	Timezone        string      `json:"timezone" db:"timezone"`
	PrimaryLanguage string      `json:"primaryLanguage" db:"primary_language"`
}

