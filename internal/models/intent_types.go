// internal/models/intent_types.go
package models

type IntentType string

// Simplified taxonomy, produced by the "simple" classifier profile.
const (
	IntentRide       IntentType = "ride"
	IntentRestaurant IntentType = "restaurant"
	IntentPlace      IntentType = "place"
	IntentTranslate  IntentType = "translate"
	IntentTickets    IntentType = "tickets"
	IntentNavigate   IntentType = "navigate"
)

// Booking taxonomy, produced by the "booking" classifier profile.
// IntentRestaurant and IntentTranslate are shared with the simplified set.
const (
	IntentUber       IntentType = "uber"
	IntentLyft       IntentType = "lyft"
	IntentTicket     IntentType = "ticket"
	IntentHotel      IntentType = "hotel"
	IntentDirections IntentType = "directions"

	// IntentNone marks a booking result where no keyword matched.
	IntentNone IntentType = ""
)

type RideProvider string

const (
	ProviderUber RideProvider = "uber"
	ProviderLyft RideProvider = "lyft"
)
