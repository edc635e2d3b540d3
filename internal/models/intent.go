// internal/models/intent.go
package models

// Location is a free-text place reference captured from an utterance.
type Location struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Intent is the result of the simplified classifier profile. Exactly one
// slot pointer matching Type is set; tickets carries none.
type Intent struct {
	Type         IntentType `json:"type"`
	Confidence   float64    `json:"confidence"`
	Keyword      string     `json:"keyword"`
	OriginalText string     `json:"originalText"`

	Ride       *RideSlots       `json:"ride,omitempty"`
	Restaurant *RestaurantSlots `json:"restaurant,omitempty"`
	Place      *PlaceSlots      `json:"place,omitempty"`
	Translate  *TranslateSlots  `json:"translate,omitempty"`
	Navigate   *NavigateSlots   `json:"navigate,omitempty"`
}

type RideSlots struct {
	Provider    RideProvider `json:"provider"`
	Start       *Location    `json:"start,omitempty"`
	Destination *Location    `json:"destination,omitempty"`
}

type RestaurantSlots struct {
	SearchTerm string `json:"searchTerm"`
	Location   string `json:"location,omitempty"`
}

type PlaceSlots struct {
	PlaceName string `json:"placeName,omitempty"`
}

type TranslateSlots struct {
	Text           string `json:"text,omitempty"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}

type NavigateSlots struct {
	Start       *Location `json:"start,omitempty"`
	Destination *Location `json:"destination,omitempty"`
}

func NewRideIntent(text, keyword string, confidence float64, slots RideSlots) *Intent {
	return &Intent{Type: IntentRide, Confidence: confidence, Keyword: keyword, OriginalText: text, Ride: &slots}
}

func NewRestaurantIntent(text, keyword string, confidence float64, slots RestaurantSlots) *Intent {
	return &Intent{Type: IntentRestaurant, Confidence: confidence, Keyword: keyword, OriginalText: text, Restaurant: &slots}
}

func NewPlaceIntent(text, keyword string, confidence float64, slots PlaceSlots) *Intent {
	return &Intent{Type: IntentPlace, Confidence: confidence, Keyword: keyword, OriginalText: text, Place: &slots}
}

func NewTranslateIntent(text, keyword string, confidence float64, slots TranslateSlots) *Intent {
	return &Intent{Type: IntentTranslate, Confidence: confidence, Keyword: keyword, OriginalText: text, Translate: &slots}
}

func NewNavigateIntent(text, keyword string, confidence float64, slots NavigateSlots) *Intent {
	return &Intent{Type: IntentNavigate, Confidence: confidence, Keyword: keyword, OriginalText: text, Navigate: &slots}
}

func NewTicketsIntent(text, keyword string, confidence float64) *Intent {
	return &Intent{Type: IntentTickets, Confidence: confidence, Keyword: keyword, OriginalText: text}
}

// Destination returns the destination slot for ride and navigate intents.
func (i *Intent) Destination() *Location {
	switch {
	case i.Ride != nil:
		return i.Ride.Destination
	case i.Navigate != nil:
		return i.Navigate.Destination
	}
	return nil
}

// BookingIntent is the result of the booking classifier profile.
type BookingIntent struct {
	Type          IntentType `json:"type"`
	Confidence    float64    `json:"confidence"`
	Keyword       string     `json:"keyword,omitempty"`
	StartLocation *Location  `json:"startLocation,omitempty"`
	Destination   *Location  `json:"destination,omitempty"`
	Query         string     `json:"query,omitempty"`
	Language      string     `json:"language,omitempty"`
	OriginalText  string     `json:"originalText"`
}

// Matched reports whether the classifier assigned a type.
func (b *BookingIntent) Matched() bool {
	return b != nil && b.Type != IntentNone
}
