// internal/intent/summary.go
package intent

import (
	"fmt"
	"strings"

	"concierge-workers/internal/models"
)

// Summarize renders a booking intent as a one-line description for chat
// replies. Unmatched intents render as the empty string.
func Summarize(b *models.BookingIntent) string {
	if !b.Matched() {
		return ""
	}

	switch b.Type {
	case models.IntentUber, models.IntentLyft:
		service := titleCase(string(b.Type))
		switch {
		case b.StartLocation != nil && b.Destination != nil:
			return fmt.Sprintf("%s from %s to %s", service, b.StartLocation.Name, b.Destination.Name)
		case b.Destination != nil:
			return fmt.Sprintf("%s to %s", service, b.Destination.Name)
		}
		return service + " ride"
	case models.IntentRestaurant:
		switch {
		case b.Query != "" && b.Destination != nil:
			return fmt.Sprintf("%s restaurants near %s", b.Query, b.Destination.Name)
		case b.Query != "":
			return b.Query + " restaurants"
		case b.Destination != nil:
			return "Restaurants near " + b.Destination.Name
		}
		return "Restaurant search"
	case models.IntentDirections:
		switch {
		case b.StartLocation != nil && b.Destination != nil:
			return fmt.Sprintf("Directions from %s to %s", b.StartLocation.Name, b.Destination.Name)
		case b.Destination != nil:
			return "Directions to " + b.Destination.Name
		}
		return "Get directions"
	case models.IntentTranslate:
		if b.Query != "" && b.Language != "" {
			return fmt.Sprintf("Translate %q to %s", b.Query, b.Language)
		}
		return "Translation"
	case models.IntentTicket:
		return "FIFA 2026 tickets"
	case models.IntentHotel:
		return "Find accommodation"
	}
	return ""
}

// Describe renders a simple-profile intent the same way.
func Describe(i *models.Intent) string {
	if i == nil {
		return ""
	}

	switch i.Type {
	case models.IntentRide:
		service := titleCase(string(i.Ride.Provider))
		switch {
		case i.Ride.Start != nil && i.Ride.Destination != nil:
			return fmt.Sprintf("%s from %s to %s", service, i.Ride.Start.Name, i.Ride.Destination.Name)
		case i.Ride.Destination != nil:
			return fmt.Sprintf("%s to %s", service, i.Ride.Destination.Name)
		}
		return service + " ride"
	case models.IntentRestaurant:
		if i.Restaurant.Location != "" {
			return fmt.Sprintf("%s near %s", i.Restaurant.SearchTerm, i.Restaurant.Location)
		}
		return i.Restaurant.SearchTerm
	case models.IntentNavigate:
		if d := i.Navigate.Destination; d != nil {
			return "Directions to " + d.Name
		}
		return "Get directions"
	case models.IntentPlace:
		if i.Place.PlaceName != "" {
			return "Find " + i.Place.PlaceName
		}
		return "Place search"
	case models.IntentTranslate:
		if i.Translate.Text != "" && i.Translate.TargetLanguage != "" {
			return fmt.Sprintf("Translate %q to %s", i.Translate.Text, i.Translate.TargetLanguage)
		}
		return "Translation"
	case models.IntentTickets:
		return "FIFA 2026 tickets"
	}
	return ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
