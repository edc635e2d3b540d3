// internal/intent/actionable.go
package intent

import (
	"strings"

	"concierge-workers/internal/models"
)

// IsActionable reports whether a simple-profile intent carries enough
// information to dispatch.
func IsActionable(i *models.Intent) bool {
	if i == nil || i.Type == "" || i.Confidence < MinActionableConfidence {
		return false
	}

	switch i.Type {
	case models.IntentRide, models.IntentNavigate:
		return i.Destination() != nil
	case models.IntentRestaurant:
		return i.Restaurant != nil && (i.Restaurant.SearchTerm != "" || i.Restaurant.Location != "")
	case models.IntentTranslate:
		return i.Translate != nil && strings.TrimSpace(i.Translate.Text) != ""
	case models.IntentPlace:
		return i.Place != nil && i.Place.PlaceName != ""
	case models.IntentTickets:
		return true
	default:
		return false
	}
}

// IsBookingActionable is the booking-profile counterpart of IsActionable.
func IsBookingActionable(b *models.BookingIntent) bool {
	if !b.Matched() || b.Confidence < MinActionableConfidence {
		return false
	}

	switch b.Type {
	case models.IntentUber, models.IntentLyft, models.IntentDirections:
		return b.Destination != nil
	case models.IntentRestaurant:
		return b.Query != "" || b.Destination != nil
	case models.IntentTranslate:
		return strings.TrimSpace(b.Query) != ""
	case models.IntentTicket, models.IntentHotel:
		return true
	default:
		return false
	}
}
