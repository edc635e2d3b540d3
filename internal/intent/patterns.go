// internal/intent/patterns.go
package intent

import (
	"regexp"
	"strings"

	"concierge-workers/internal/models"
)

// Profile selects one of the two keyword taxonomies.
type Profile string

const (
	ProfileSimple  Profile = "simple"
	ProfileBooking Profile = "booking"
)

type keyword struct {
	text string
	re   *regexp.Regexp // nil for plain substring matching
}

type keywordRule struct {
	intent   models.IntentType
	keywords []keyword
}

type gazetteerEntry struct {
	name string
	re   *regexp.Regexp
}

// PatternLibrary holds the immutable keyword and place tables shared by
// both classifier profiles. It is safe for concurrent use.
type PatternLibrary struct {
	simple    []keywordRule
	booking   []keywordRule
	gazetteer []gazetteerEntry
}

var defaultLibrary = buildLibrary()

// DefaultLibrary returns the built-in tables.
func DefaultLibrary() *PatternLibrary {
	return defaultLibrary
}

func buildLibrary() *PatternLibrary {
	lib := &PatternLibrary{
		simple: []keywordRule{
			wordRule(models.IntentRide, "uber", "lyft", "ride", "taxi", "cab", "drive", "pickup", "drop off"),
			wordRule(models.IntentRestaurant, "restaurant", "food", "eat", "dining", "lunch", "dinner", "breakfast",
				"cafe", "pizza", "burger", "sushi", "mexican", "italian", "chinese"),
			wordRule(models.IntentTranslate, "translate", "translation", "how do i say", "how to say", "say in", "speak"),
			wordRule(models.IntentNavigate, "navigate", "navigation", "directions", "route", "how do i get", "take me to", "drive to"),
			wordRule(models.IntentPlace, "stadium", "venue", "arena", "place", "attraction", "museum", "park",
				"landmark", "sight", "show", "find", "where", "visit", "go to", "take me", "direction"),
			wordRule(models.IntentTickets, "ticket", "tickets", "buy ticket", "purchase ticket", "ticket price"),
		},
		booking: []keywordRule{
			substringRule(models.IntentUber, "uber", "ride share", "rideshare", "ride to", "get a ride"),
			substringRule(models.IntentLyft, "lyft", "ride share", "rideshare"),
			substringRule(models.IntentTicket, "ticket", "tickets", "buy ticket", "purchase ticket", "book ticket"),
			substringRule(models.IntentRestaurant, "restaurant", "food", "eat", "dining", "dinner", "lunch", "breakfast", "yelp"),
			substringRule(models.IntentHotel, "hotel", "accommodation", "stay", "book hotel", "lodging"),
			substringRule(models.IntentTranslate, "translate", "translation", "how do you say", "what does", "mean in"),
			substringRule(models.IntentDirections, "directions", "navigate", "how to get to", "route to", "drive to", "walk to"),
		},
	}

	for _, name := range knownLocations {
		lib.gazetteer = append(lib.gazetteer, gazetteerEntry{
			name: name,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
	return lib
}

func wordRule(intent models.IntentType, words ...string) keywordRule {
	rule := keywordRule{intent: intent}
	for _, w := range words {
		rule.keywords = append(rule.keywords, keyword{
			text: w,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`),
		})
	}
	return rule
}

func substringRule(intent models.IntentType, words ...string) keywordRule {
	rule := keywordRule{intent: intent}
	for _, w := range words {
		rule.keywords = append(rule.keywords, keyword{text: w})
	}
	return rule
}

func (k keyword) matches(text, lower string) bool {
	if k.re != nil {
		return k.re.MatchString(text)
	}
	return strings.Contains(lower, k.text)
}

// Gazetteer of venues, airports and neighbourhoods recognised without a
// preposition anchor.
var knownLocations = []string{
	"MetLife Stadium", "SoFi Stadium", "AT&T Stadium", "Arrowhead Stadium",
	"Mercedes-Benz Stadium", "NRG Stadium", "Hard Rock Stadium", "Lincoln Financial Field",
	"Levi's Stadium", "Gillette Stadium", "Estadio Azteca",
	"LAX", "LAX Airport", "Los Angeles Airport",
	"JFK", "JFK Airport",
	"Amazon Santa Monica", "Santa Monica",
	"Downtown LA", "Hollywood",
	"Manhattan", "Times Square",
	"Mexico City", "Toronto", "Vancouver",
}

type shortCode struct {
	canonical string
	re        *regexp.Regexp
}

// Airport codes expanded to their full form in captured locations.
var shortCodes = []shortCode{
	{canonical: "LAX Airport", re: regexp.MustCompile(`(?i)\blax\b`)},
	{canonical: "JFK Airport", re: regexp.MustCompile(`(?i)\bjfk\b`)},
}

var followedByAirport = regexp.MustCompile(`(?i)^\s+airport\b`)

var (
	actionVerbs   = []string{"book", "get", "need", "want", "find", "search", "looking for"}
	locativeWords = []string{"from", "to", "at", "near", "around"}
)

// Verbs that turn "to" into an infinitive marker rather than a destination.
var infinitiveVerbs = map[string]bool{
	"be": true, "book": true, "buy": true, "call": true, "catch": true, "check": true,
	"drive": true, "eat": true, "find": true, "get": true, "go": true, "hail": true,
	"have": true, "head": true, "know": true, "make": true, "meet": true, "navigate": true,
	"order": true, "reach": true, "ride": true, "say": true, "see": true, "stay": true,
	"take": true, "translate": true, "travel": true, "visit": true, "walk": true, "watch": true,
}

var (
	fromToPattern      = regexp.MustCompile(`(?i)\bfrom\s+([^,]+?)\s+(?:to|->)\s+(.+)$`)
	betweenPattern     = regexp.MustCompile(`(?i)\bbetween\s+([^,]+?)\s+and\s+(.+)$`)
	toFromPattern      = regexp.MustCompile(`(?i)^(?:to|towards?|drop[- ]off at|arrive at)\s+([^,]+?)\s+from\s+(.+)$`)
	toPattern          = regexp.MustCompile(`(?i)^(?:to|towards?|drop[- ]off at|arrive at)\s+(.+)$`)
	destinationAnchor  = regexp.MustCompile(`(?i)\b(?:to|towards?|drop[- ]off at|arrive at)\s+(\S+)`)
	fromPattern        = regexp.MustCompile(`(?i)\b(?:from|pick ?up from|leaving from|starting from|start at)\s+(.+)$`)
	trailingPunct      = regexp.MustCompile(`[.,!?;:\s]+$`)
	sentenceBreak      = regexp.MustCompile(`[,!?;]|\.\s`)
	cuisinePattern     = regexp.MustCompile(`(?i)\b(pizza|burger|sushi|mexican|italian|chinese|thai|indian|japanese|korean|french|american|seafood|steakhouse|vegan|vegetarian)\b`)
	nearPattern        = regexp.MustCompile(`(?i)\bnear\s+([^,.!?]+)`)
	inPattern          = regexp.MustCompile(`(?i)\bin\s+([^,.!?]+)`)
	quotedPattern      = regexp.MustCompile(`["“]([^"”]+)["”]|(?:^|\s)'([^']+)'(?:[\s.,!?]|$)`)
	saySpan            = regexp.MustCompile(`(?i)\bsay\s+(.+?)\s+in\s+[a-z]+`)
	lyftPattern        = regexp.MustCompile(`(?i)\blyft\b`)
	translateSpan      = regexp.MustCompile(`(?i)\btranslate\s+(.+?)(?:\s+to\s+|\s+in\s+|\s+into\s+|$)`)
	languagePattern    = regexp.MustCompile(`(?i)\b(spanish|french|english|german|italian|portuguese|chinese|japanese|korean|arabic)\b`)
	stadiumNamePattern = regexp.MustCompile(`\b((?:[A-Z][A-Za-z'&.-]*\s+)+(?:Stadium|Arena|Field|Park|Center|Centre))\b`)
	capitalizedRun     = regexp.MustCompile(`\b([A-Z][A-Za-z'&.-]+(?:\s+[A-Z][A-Za-z'&.-]+)*)`)
)

// Capitalised sentence openers that never name a place.
var placeStopWords = map[string]bool{
	"where": true, "what": true, "show": true, "find": true, "take": true, "how": true,
	"i": true, "can": true, "could": true, "please": true, "go": true, "visit": true,
	"navigate": true, "is": true, "tell": true, "hey": true, "hi": true,
}

// Booking-profile extraction patterns, tried in order.
var (
	bookingRestaurantQuery = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:find|search for|looking for|want)\s+(?:a\s+)?(.+?)\s+(?:restaurant|food|place to eat)`),
		regexp.MustCompile(`(?i)(?:restaurant|food|dining)\s+(?:for|near|around)\s+(.+?)(?:\.|$)`),
		regexp.MustCompile(`(?i)(.+?)\s+(?:restaurant|food|cuisine)`),
	}
	bookingTranslationQuery = []*regexp.Regexp{
		regexp.MustCompile(`(?i)translate\s+"(.+?)"`),
		regexp.MustCompile(`(?i)translate\s+(.+?)\s+(?:to|in)\b`),
		regexp.MustCompile(`(?i)how do you say\s+"?(.+?)"?\s+in\b`),
		regexp.MustCompile(`(?i)what does\s+"?(.+?)"?\s+mean`),
	}
	bookingLanguage = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:in|to)\s+(spanish|french|german|italian|portuguese|japanese|chinese|korean|arabic)`),
		regexp.MustCompile(`(?i)(spanish|french|german|italian|portuguese|japanese|chinese|korean|arabic)\s+translation`),
	}
)

// ParseProfile maps a configured profile name onto a Profile.
// The empty string selects the simple profile.
func ParseProfile(name string) (Profile, bool) {
	switch Profile(strings.ToLower(strings.TrimSpace(name))) {
	case "", ProfileSimple:
		return ProfileSimple, true
	case ProfileBooking:
		return ProfileBooking, true
	}
	return "", false
}
