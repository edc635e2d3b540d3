// internal/venue/catalog.go
package venue

import (
	"math"
	"strings"

	"concierge-workers/internal/models"
)

const earthRadiusKm = 6371.0

// Catalog is an ordered, read-only venue list. The first venue is the
// default. A Catalog is safe for concurrent use.
type Catalog struct {
	venues []models.Venue
	byID   map[string]int
}

// NewCatalog indexes venues in the given order. Later duplicates of an ID
// are ignored.
func NewCatalog(venues []models.Venue) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(venues))}
	for _, v := range venues {
		if _, dup := c.byID[v.ID]; dup {
			continue
		}
		c.byID[v.ID] = len(c.venues)
		c.venues = append(c.venues, v)
	}
	return c
}

// DefaultCatalog is the built-in host stadium list.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtIn)
}

func (c *Catalog) Len() int { return len(c.venues) }

func (c *Catalog) All() []models.Venue {
	out := make([]models.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// Default returns the first venue, or false for an empty catalog.
func (c *Catalog) Default() (models.Venue, bool) {
	if len(c.venues) == 0 {
		return models.Venue{}, false
	}
	return c.venues[0], true
}

func (c *Catalog) ByID(id string) (models.Venue, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Venue{}, false
	}
	return c.venues[i], true
}

// ByCountry matches the country name case-insensitively.
func (c *Catalog) ByCountry(country string) []models.Venue {
	var out []models.Venue
	for _, v := range c.venues {
		if strings.EqualFold(v.Country, country) {
			out = append(out, v)
		}
	}
	return out
}

// ByCity matches when either the venue city contains the query or the query
// contains the venue city, so "Los Angeles, CA" finds SoFi.
func (c *Catalog) ByCity(city string) (models.Venue, bool) {
	q := strings.ToLower(strings.TrimSpace(city))
	if q == "" {
		return models.Venue{}, false
	}
	for _, v := range c.venues {
		vc := strings.ToLower(v.City)
		if strings.Contains(vc, q) || strings.Contains(q, vc) {
			return v, true
		}
	}
	return models.Venue{}, false
}

// ByName returns the first venue whose name contains the query.
func (c *Catalog) ByName(name string) (models.Venue, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return models.Venue{}, false
	}
	for _, v := range c.venues {
		if strings.Contains(strings.ToLower(v.Name), q) {
			return v, true
		}
	}
	return models.Venue{}, false
}

// Match resolves free text against venue names first, then cities.
func (c *Catalog) Match(text string) (models.Venue, bool) {
	if v, ok := c.ByName(text); ok {
		return v, true
	}
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return models.Venue{}, false
	}
	for _, v := range c.venues {
		if strings.Contains(strings.ToLower(v.City), q) {
			return v, true
		}
	}
	return models.Venue{}, false
}

// Nearest returns the venue closest to the point by great-circle distance.
// An empty catalog returns false.
func (c *Catalog) Nearest(lat, lng float64) (models.Venue, bool) {
	if len(c.venues) == 0 {
		return models.Venue{}, false
	}
	best := c.venues[0]
	bestDist := math.Inf(1)
	for _, v := range c.venues {
		d := Distance(lat, lng, v.Coordinates.Latitude, v.Coordinates.Longitude)
		if d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, true
}

// Distance is the haversine distance in kilometres.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
