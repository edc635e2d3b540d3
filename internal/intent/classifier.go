// internal/intent/classifier.go
package intent

import (
	"strings"

	"concierge-workers/internal/models"
)

// Classifier maps an utterance to an intent with a fixed first-match rule.
// It holds no mutable state; the same text always yields the same result.
type Classifier struct {
	lib *PatternLibrary
}

// NewClassifier returns a classifier over lib, or the built-in tables when
// lib is nil.
func NewClassifier(lib *PatternLibrary) *Classifier {
	if lib == nil {
		lib = DefaultLibrary()
	}
	return &Classifier{lib: lib}
}

// Classify runs the simple profile: ride, restaurant, translate, navigate,
// place, tickets. Returns nil when nothing matches.
func (c *Classifier) Classify(text string) *models.Intent {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lower := strings.ToLower(text)

	for _, rule := range c.lib.simple {
		kw, ok := rule.match(text, lower)
		if !ok {
			continue
		}
		confidence := Score(text, kw)

		switch rule.intent {
		case models.IntentRide:
			start, dest := c.lib.ExtractLocations(text)
			return models.NewRideIntent(text, kw, confidence, models.RideSlots{
				Provider:    rideProvider(text),
				Start:       start,
				Destination: dest,
			})
		case models.IntentRestaurant:
			return models.NewRestaurantIntent(text, kw, confidence, ExtractRestaurant(text))
		case models.IntentTranslate:
			return models.NewTranslateIntent(text, kw, confidence, ExtractTranslation(text))
		case models.IntentNavigate:
			start, dest := c.lib.ExtractLocations(text)
			return models.NewNavigateIntent(text, kw, confidence, models.NavigateSlots{Start: start, Destination: dest})
		case models.IntentPlace:
			return models.NewPlaceIntent(text, kw, confidence, c.lib.ExtractPlace(text))
		case models.IntentTickets:
			return models.NewTicketsIntent(text, kw, confidence)
		}
	}
	return nil
}

// ClassifyBooking runs the booking profile in declared order: uber, lyft,
// ticket, restaurant, hotel, translate, directions. When nothing matches the
// result has Type IntentNone and zero confidence.
func (c *Classifier) ClassifyBooking(text string) *models.BookingIntent {
	result := &models.BookingIntent{Type: models.IntentNone, OriginalText: text}
	if strings.TrimSpace(text) == "" {
		return result
	}
	lower := strings.ToLower(text)

	for _, rule := range c.lib.booking {
		kw, ok := rule.match(text, lower)
		if !ok {
			continue
		}
		result.Type = rule.intent
		result.Keyword = kw
		result.Confidence = Score(text, kw)

		switch rule.intent {
		case models.IntentUber, models.IntentLyft, models.IntentDirections:
			result.StartLocation, result.Destination = c.lib.ExtractLocations(text)
		case models.IntentRestaurant:
			result.Query = extractBookingQuery(text)
			_, result.Destination = c.lib.ExtractLocations(text)
		case models.IntentTranslate:
			result.Language = extractBookingLanguage(text)
			result.Query = extractBookingTranslation(text)
		}
		return result
	}
	return result
}

func (r keywordRule) match(text, lower string) (string, bool) {
	for _, k := range r.keywords {
		if k.matches(text, lower) {
			return k.text, true
		}
	}
	return "", false
}

func rideProvider(text string) models.RideProvider {
	if lyftPattern.MatchString(text) {
		return models.ProviderLyft
	}
	return models.ProviderUber
}
