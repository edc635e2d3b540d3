// internal/dispatch/resolve.go
package dispatch

import (
	"strings"

	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/metrics"
	"concierge-workers/internal/deeplink"
	"concierge-workers/internal/device"
	"concierge-workers/internal/intent"
	"concierge-workers/internal/models"

	"github.com/google/uuid"
)

// Delivery modes reported for a target.
const (
	ModeNativeThenWeb = "native-then-web"
	ModeWeb           = "web"
)

// Target is a resolved deep link plus the context needed to dispatch it.
type Target struct {
	ID      string            `json:"dispatchId"`
	Intent  models.IntentType `json:"intent"`
	Service deeplink.Service  `json:"service"`
	Link    models.DeepLink   `json:"link"`
	Venue   *models.Venue     `json:"venue,omitempty"`
	Options Options           `json:"options"`
	Mode    string            `json:"mode"`
}

// ResolveIntent maps an actionable simple-profile intent onto a link.
// venueID selects the venue context; empty means the configured default.
func (c *Controller) ResolveIntent(i *models.Intent, class device.Class, venueID string) (*Target, error) {
	if !intent.IsActionable(i) {
		return nil, notActionable(string(typeOf(i)), confidenceOf(i))
	}

	t := &Target{Intent: i.Type, Options: Options{PreferNewTab: !c.cfg.SameTab}}

	switch i.Type {
	case models.IntentRide:
		var start string
		if i.Ride.Start != nil {
			start = i.Ride.Start.Name
		}
		t.Service = providerService(i.Ride.Provider)
		t.Link = deeplink.RideFromAddresses(i.Ride.Provider, start, i.Ride.Destination.Name)

	case models.IntentRestaurant:
		v, err := c.venueOrContext(i.Restaurant.Location, venueID)
		if err != nil {
			return nil, err
		}
		t.Service, t.Venue = deeplink.ServiceYelp, &v
		t.Link = deeplink.Restaurants(v)

	case models.IntentPlace:
		v, ok := c.catalog.ByName(i.Place.PlaceName)
		if !ok {
			return nil, apperrors.NewVenueNotFoundError(i.Place.PlaceName)
		}
		c.navigationTarget(t, v, class)

	case models.IntentNavigate:
		v, ok := c.catalog.Match(i.Navigate.Destination.Name)
		if !ok {
			return nil, apperrors.NewVenueNotFoundError(i.Navigate.Destination.Name)
		}
		c.navigationTarget(t, v, class)

	case models.IntentTranslate:
		ctxVenue, err := c.contextVenue(venueID)
		if err != nil {
			return nil, err
		}
		t.Service = deeplink.ServiceTranslate
		t.Link = deeplink.Translate(i.Translate.Text, c.targetLanguage(i.Translate.TargetLanguage, venueID, ctxVenue))
		t.Options.PreferNewTab = true

	case models.IntentTickets:
		t.Service = deeplink.ServiceTickets
		t.Link = deeplink.Tickets()
		t.Options.PreferNewTab = true

	default:
		return nil, apperrors.NewUnsupportedIntentError(string(i.Type))
	}

	return c.finish(t, class), nil
}

// ResolveBooking is ResolveIntent for the booking profile.
func (c *Controller) ResolveBooking(b *models.BookingIntent, class device.Class, venueID string) (*Target, error) {
	if !intent.IsBookingActionable(b) {
		var kind models.IntentType
		var confidence float64
		if b != nil {
			kind, confidence = b.Type, b.Confidence
		}
		return nil, notActionable(string(kind), confidence)
	}

	t := &Target{Intent: b.Type, Options: Options{PreferNewTab: !c.cfg.SameTab}}

	switch b.Type {
	case models.IntentUber, models.IntentLyft:
		provider := models.ProviderUber
		if b.Type == models.IntentLyft {
			provider = models.ProviderLyft
		}
		t.Service = providerService(provider)
		if v, ok := c.catalog.ByName(b.Destination.Name); ok {
			t.Venue = &v
			t.Link = deeplink.RideToVenue(provider, v)
			break
		}
		var start string
		if b.StartLocation != nil {
			start = b.StartLocation.Name
		}
		t.Link = deeplink.RideFromAddresses(provider, start, b.Destination.Name)

	case models.IntentDirections:
		v, ok := c.catalog.Match(b.Destination.Name)
		if !ok {
			return nil, apperrors.NewVenueNotFoundError(b.Destination.Name)
		}
		c.navigationTarget(t, v, class)

	case models.IntentRestaurant:
		var near string
		if b.Destination != nil {
			near = b.Destination.Name
		}
		v, err := c.venueOrContext(near, venueID)
		if err != nil {
			return nil, err
		}
		t.Service, t.Venue = deeplink.ServiceYelp, &v
		t.Link = deeplink.Restaurants(v)

	case models.IntentTranslate:
		ctxVenue, err := c.contextVenue(venueID)
		if err != nil {
			return nil, err
		}
		t.Service = deeplink.ServiceTranslate
		t.Link = deeplink.Translate(b.Query, c.targetLanguage(b.Language, venueID, ctxVenue))
		t.Options.PreferNewTab = true

	case models.IntentTicket:
		t.Service = deeplink.ServiceTickets
		t.Link = deeplink.Tickets()
		t.Options.PreferNewTab = true

	case models.IntentHotel:
		v, err := c.contextVenue(venueID)
		if err != nil {
			return nil, err
		}
		t.Service, t.Venue = deeplink.ServiceHotels, &v
		t.Link = deeplink.HotelSearch(v)

	default:
		return nil, apperrors.NewUnsupportedIntentError(string(b.Type))
	}

	return c.finish(t, class), nil
}

// DispatchIntent resolves and dispatches a simple-profile intent.
func (c *Controller) DispatchIntent(i *models.Intent, class device.Class, venueID string) (*Target, *Fallback, error) {
	t, err := c.ResolveIntent(i, class, venueID)
	if err != nil {
		return nil, nil, err
	}
	return t, c.dispatchTarget(t, class), nil
}

// DispatchBooking resolves and dispatches a booking-profile intent.
func (c *Controller) DispatchBooking(b *models.BookingIntent, class device.Class, venueID string) (*Target, *Fallback, error) {
	t, err := c.ResolveBooking(b, class, venueID)
	if err != nil {
		return nil, nil, err
	}
	return t, c.dispatchTarget(t, class), nil
}

func (c *Controller) dispatchTarget(t *Target, class device.Class) *Fallback {
	if t.Intent == models.IntentTickets || t.Intent == models.IntentTicket {
		c.OpenWeb(t.Link.WebFallbackURI)
		return nil
	}
	return c.dispatch(t.ID, t.Link, t.Options, class)
}

func (c *Controller) navigationTarget(t *Target, v models.Venue, class device.Class) {
	t.Service, t.Venue = deeplink.ServiceGoogleMaps, &v
	t.Link = deeplink.Navigation(v, class)
	t.Options.GateOnVisibility = true
	if class.IsMobile && !t.Link.HasNative() {
		t.Options.PreferNewTab = false
	}
}

func (c *Controller) finish(t *Target, class device.Class) *Target {
	t.ID = uuid.NewString()
	t.Mode = ModeWeb
	if class.IsMobile && t.Link.HasNative() {
		t.Mode = ModeNativeThenWeb
	}
	metrics.DeepLinksBuilt.WithLabelValues(string(t.Service), string(class.Kind())).Inc()
	return t
}

// contextVenue resolves the venue a request is about: the explicit id, else
// the configured default, else the first catalog entry.
func (c *Controller) contextVenue(venueID string) (models.Venue, error) {
	if venueID != "" {
		v, ok := c.catalog.ByID(venueID)
		if !ok {
			return models.Venue{}, apperrors.NewVenueNotFoundError(venueID)
		}
		return v, nil
	}
	if v, ok := c.catalog.ByID(c.cfg.DefaultVenueID); ok {
		return v, nil
	}
	if v, ok := c.catalog.Default(); ok {
		return v, nil
	}
	return models.Venue{}, apperrors.NewVenueNotFoundError(c.cfg.DefaultVenueID)
}

// venueOrContext matches free text against the catalog and falls back to
// the request's venue context when nothing matches.
func (c *Controller) venueOrContext(text, venueID string) (models.Venue, error) {
	if strings.TrimSpace(text) != "" {
		if v, ok := c.catalog.Match(text); ok {
			return v, nil
		}
	}
	return c.contextVenue(venueID)
}

// targetLanguage prefers an explicit language, then the country of an
// explicitly requested venue, then the configured default.
func (c *Controller) targetLanguage(explicit, venueID string, ctxVenue models.Venue) string {
	if code, ok := deeplink.LanguageCode(explicit); ok {
		return code
	}
	if venueID != "" {
		return deeplink.ResolveTargetLanguage("", &ctxVenue)
	}
	return c.cfg.DefaultLanguage
}

func providerService(p models.RideProvider) deeplink.Service {
	if p == models.ProviderLyft {
		return deeplink.ServiceLyft
	}
	return deeplink.ServiceUber
}

func notActionable(kind string, confidence float64) error {
	if kind == "" {
		return apperrors.NewIntentNotDetectedError("")
	}
	return apperrors.NewIntentNotActionableError(kind, confidence)
}

func typeOf(i *models.Intent) models.IntentType {
	if i == nil {
		return models.IntentNone
	}
	return i.Type
}

func confidenceOf(i *models.Intent) float64 {
	if i == nil {
		return 0
	}
	return i.Confidence
}
