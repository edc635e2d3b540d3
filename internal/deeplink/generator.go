// internal/deeplink/generator.go
package deeplink

import (
	"concierge-workers/internal/device"
	"concierge-workers/internal/models"
)

// Service names the external application a link targets. Used as a metrics
// label and in worker output.
type Service string

const (
	ServiceUber       Service = "uber"
	ServiceLyft       Service = "lyft"
	ServiceGoogleMaps Service = "google-maps"
	ServiceAppleMaps  Service = "apple-maps"
	ServiceWaze       Service = "waze"
	ServiceYelp       Service = "yelp"
	ServiceTranslate  Service = "google-translate"
	ServiceTickets    Service = "fifa-tickets"
	ServiceHotels     Service = "hotel-search"
)

const (
	pickupCurrentLocation = "my_location"

	uberAppBase = "uber://?"
	uberWebBase = "https://m.uber.com/ul/?"
	lyftAppBase = "lyft://ridetype?id=lyft"
	lyftWebBase = "https://www.lyft.com/ride?"

	ticketsURL = "https://www.fifa.com/fifaplus/en/tournaments/mens/worldcup/canadamexicousa2026/tickets"
)

// RideFromAddresses builds a ride link from free-text addresses. An empty
// start means "pick me up where I am".
func RideFromAddresses(provider models.RideProvider, start, destination string) models.DeepLink {
	pickup := pickupCurrentLocation
	if start != "" {
		pickup = encodeComponent(start)
	}
	dropoff := encodeComponent(destination)

	if provider == models.ProviderLyft {
		return models.DeepLink{
			NativeURI:      lyftAppBase + "&pickup=address:" + pickup + "&destination=address:" + dropoff,
			WebFallbackURI: lyftWebBase + "pickup=" + pickup + "&destination=" + dropoff,
		}
	}

	query := "action=setPickup&pickup[formatted_address]=" + pickup + "&dropoff[formatted_address]=" + dropoff
	return models.DeepLink{
		NativeURI:      uberAppBase + query,
		WebFallbackURI: uberWebBase + query,
	}
}

// RideToVenue builds a ride link to a venue's coordinates.
func RideToVenue(provider models.RideProvider, v models.Venue) models.DeepLink {
	lat := formatCoord(v.Coordinates.Latitude)
	lng := formatCoord(v.Coordinates.Longitude)

	if provider == models.ProviderLyft {
		query := "destination[latitude]=" + lat + "&destination[longitude]=" + lng
		return models.DeepLink{
			NativeURI:      lyftAppBase + "&" + query,
			WebFallbackURI: lyftWebBase + query,
		}
	}

	query := "action=setPickup&pickup=" + pickupCurrentLocation +
		"&dropoff[latitude]=" + lat +
		"&dropoff[longitude]=" + lng +
		"&dropoff[nickname]=" + encodeComponent(v.Name)
	return models.DeepLink{
		NativeURI:      uberAppBase + query,
		WebFallbackURI: uberWebBase + query,
	}
}

// Navigation builds a Google Maps link. iOS gets the comgooglemaps scheme,
// Android the google.navigation intent; everything else is web only.
func Navigation(v models.Venue, class device.Class) models.DeepLink {
	coords := latLng(v.Coordinates.Latitude, v.Coordinates.Longitude)

	link := models.DeepLink{WebFallbackURI: "https://www.google.com/maps/dir/?api=1&destination=" + coords}
	if v.PlaceID != "" {
		link.WebFallbackURI = "https://www.google.com/maps/dir/?api=1&destination=" + encodeComponent(v.Name) +
			"&destination_place_id=" + v.PlaceID
	}

	if class.IsMobile {
		switch {
		case class.IsIOS:
			link.NativeURI = "comgooglemaps://?daddr=" + coords + "&directionsmode=driving"
		case class.IsAndroid:
			link.NativeURI = "google.navigation:q=" + coords
		}
	}
	return link
}

// AppleMaps builds web driving directions to the venue on Apple Maps.
func AppleMaps(v models.Venue) models.DeepLink {
	return models.DeepLink{
		WebFallbackURI: "https://maps.apple.com/?daddr=" + encodeComponent(v.Name) +
			"&ll=" + latLng(v.Coordinates.Latitude, v.Coordinates.Longitude) + "&dirflg=d",
	}
}

// Waze starts web navigation to the venue coordinates.
func Waze(v models.Venue) models.DeepLink {
	return models.DeepLink{
		WebFallbackURI: "https://waze.com/ul?ll=" + latLng(v.Coordinates.Latitude, v.Coordinates.Longitude) + "&navigate=yes",
	}
}

// Restaurants builds a Yelp search around the venue.
func Restaurants(v models.Venue) models.DeepLink {
	ll := latLng(v.Coordinates.Latitude, v.Coordinates.Longitude)
	return models.DeepLink{
		NativeURI:      "yelp:///search?terms=restaurants&ll=" + ll,
		WebFallbackURI: "https://www.yelp.com/search?find_desc=restaurants&ll=" + ll + "&attrs=RestaurantsReservations,RestaurantsDelivery",
	}
}

// Translate is always web only, whatever the device.
func Translate(text, targetLanguage string) models.DeepLink {
	return models.DeepLink{
		WebFallbackURI: "https://translate.google.com/?sl=auto&tl=" + targetLanguage +
			"&text=" + encodeComponent(text) + "&op=translate",
	}
}

// Tickets points at the official ticketing site.
func Tickets() models.DeepLink {
	return models.DeepLink{WebFallbackURI: ticketsURL}
}

// HotelSearch opens a Maps search for lodging near the venue.
func HotelSearch(v models.Venue) models.DeepLink {
	query := "hotels"
	if v.Name != "" {
		query = "hotels near " + v.Name
	}
	return models.DeepLink{
		WebFallbackURI: "https://www.google.com/maps/search/?api=1&query=" + encodeComponent(query),
	}
}
