// internal/intent/slots.go
package intent

import (
	"sort"
	"strings"

	"concierge-workers/internal/models"
)

const defaultSearchTerm = "restaurants"

// ExtractLocations pulls a start and destination out of ride or navigation
// text. Either result may be nil; extraction never fails.
func (lib *PatternLibrary) ExtractLocations(text string) (start, destination *models.Location) {
	if m := fromToPattern.FindStringSubmatch(text); m != nil {
		if dest := resolveDestination(m[2]); dest != "" {
			return locationOf(m[1]), locationOf(dest)
		}
	}
	if m := betweenPattern.FindStringSubmatch(text); m != nil {
		return locationOf(m[1]), locationOf(m[2])
	}

	anchors := destinationAnchors(text)
	for _, idx := range anchors {
		if m := toFromPattern.FindStringSubmatch(text[idx:]); m != nil {
			return locationOf(m[2]), locationOf(m[1])
		}
	}

	if m := fromPattern.FindStringSubmatch(text); m != nil {
		start = locationOf(m[1])
	}
	if len(anchors) > 0 {
		if m := toPattern.FindStringSubmatch(text[anchors[0]:]); m != nil {
			destination = locationOf(m[1])
		}
	}

	if destination == nil {
		found := lib.findKnownLocations(text, start)
		switch {
		case len(found) >= 2 && start == nil:
			start = locationOf(found[0])
			destination = locationOf(found[1])
		case len(found) >= 1:
			destination = locationOf(found[0])
		}
	}
	return start, destination
}

// ExtractRestaurant finds a cuisine and an optional "near X" / "in X" area.
func ExtractRestaurant(text string) models.RestaurantSlots {
	slots := models.RestaurantSlots{SearchTerm: defaultSearchTerm}
	if m := cuisinePattern.FindStringSubmatch(text); m != nil {
		slots.SearchTerm = strings.ToLower(m[1])
	}
	if m := nearPattern.FindStringSubmatch(text); m != nil {
		slots.Location = cleanSpan(m[1])
	} else if m := inPattern.FindStringSubmatch(text); m != nil {
		slots.Location = cleanSpan(m[1])
	}
	return slots
}

// ExtractTranslation finds the text to translate and the target language.
// Both fields are left empty when absent.
func ExtractTranslation(text string) models.TranslateSlots {
	var slots models.TranslateSlots
	rest := text

	if m := quotedPattern.FindStringSubmatch(text); m != nil {
		slots.Text = strings.TrimSpace(m[1] + m[2])
		rest = strings.Replace(text, m[0], " ", 1)
	} else if m := translateSpan.FindStringSubmatch(text); m != nil {
		slots.Text = cleanSpan(m[1])
	} else if m := saySpan.FindStringSubmatch(text); m != nil {
		slots.Text = cleanSpan(m[1])
	}

	if m := languagePattern.FindStringSubmatch(rest); m != nil {
		slots.TargetLanguage = strings.ToLower(m[1])
	}
	return slots
}

// ExtractPlace names the landmark a place request refers to.
func (lib *PatternLibrary) ExtractPlace(text string) models.PlaceSlots {
	if found := lib.findKnownLocations(text, nil); len(found) > 0 {
		return models.PlaceSlots{PlaceName: found[0]}
	}
	if m := stadiumNamePattern.FindStringSubmatch(text); m != nil {
		return models.PlaceSlots{PlaceName: strings.TrimSpace(m[1])}
	}
	for _, run := range capitalizedRun.FindAllString(text, -1) {
		words := strings.Fields(run)
		for len(words) > 0 && placeStopWords[strings.ToLower(words[0])] {
			words = words[1:]
		}
		if name := strings.Join(words, " "); len(name) >= 3 {
			return models.PlaceSlots{PlaceName: name}
		}
	}
	return models.PlaceSlots{}
}

func extractBookingQuery(text string) string {
	for _, re := range bookingRestaurantQuery {
		if m := re.FindStringSubmatch(text); m != nil {
			if q := strings.TrimSpace(m[1]); q != "" {
				return q
			}
		}
	}
	return defaultSearchTerm
}

func extractBookingTranslation(text string) string {
	for _, re := range bookingTranslationQuery {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return text
}

func extractBookingLanguage(text string) string {
	for _, re := range bookingLanguage {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.ToLower(m[1])
		}
	}
	return ""
}

// destinationAnchors returns the offsets of "to"-style anchors that are not
// infinitive markers ("to book", "to go").
func destinationAnchors(text string) []int {
	var out []int
	for _, m := range destinationAnchor.FindAllStringSubmatchIndex(text, -1) {
		next := strings.ToLower(strings.Trim(text[m[2]:m[3]], ".,!?;:'\""))
		if infinitiveVerbs[next] {
			continue
		}
		out = append(out, m[0])
	}
	return out
}

// resolveDestination skips a leading infinitive verb in a captured span,
// so "get to SoFi" yields "SoFi".
func resolveDestination(span string) string {
	fields := strings.Fields(span)
	if len(fields) == 0 || !infinitiveVerbs[strings.ToLower(fields[0])] {
		return span
	}
	anchors := destinationAnchors(span)
	if len(anchors) == 0 {
		return ""
	}
	if m := toPattern.FindStringSubmatch(span[anchors[0]:]); m != nil {
		return m[1]
	}
	return ""
}

type placeMatch struct {
	name       string
	start, end int
}

// findKnownLocations scans the gazetteer and returns distinct non-overlapping
// hits in text order. Hits already covered by start are dropped.
func (lib *PatternLibrary) findKnownLocations(text string, start *models.Location) []string {
	var hits []placeMatch
	for _, entry := range lib.gazetteer {
		for _, loc := range entry.re.FindAllStringIndex(text, -1) {
			hits = append(hits, placeMatch{name: entry.name, start: loc[0], end: loc[1]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].start != hits[j].start {
			return hits[i].start < hits[j].start
		}
		return hits[i].end > hits[j].end
	})

	var startName string
	if start != nil {
		startName = strings.ToLower(start.Name)
	}

	var out []string
	seen := make(map[string]bool)
	lastEnd := -1
	for _, h := range hits {
		if h.start < lastEnd {
			continue
		}
		lastEnd = h.end
		if startName != "" && strings.Contains(startName, strings.ToLower(h.name)) {
			continue
		}
		// "LAX" and "LAX Airport" name the same place
		key := strings.ToLower(Canonicalize(h.name))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h.name)
	}
	return out
}

func locationOf(span string) *models.Location {
	name := cleanSpan(span)
	if name == "" {
		return nil
	}
	return &models.Location{Name: Canonicalize(name)}
}

// cleanSpan cuts a captured span at the first clause break and strips
// trailing punctuation and whitespace.
func cleanSpan(span string) string {
	if loc := sentenceBreak.FindStringIndex(span); loc != nil {
		span = span[:loc[0]]
	}
	return trailingPunct.ReplaceAllString(strings.TrimSpace(span), "")
}

// Canonicalize rewrites the first standalone airport short code that is not
// already followed by "airport" to its full name. Other occurrences are left
// untouched.
func Canonicalize(name string) string {
	for _, sc := range shortCodes {
		if strings.Contains(name, sc.canonical) {
			continue
		}
		for _, loc := range sc.re.FindAllStringIndex(name, -1) {
			if followedByAirport.MatchString(name[loc[1]:]) {
				continue
			}
			name = name[:loc[0]] + sc.canonical + name[loc[1]:]
			break
		}
	}
	return name
}
