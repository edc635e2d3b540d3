// internal/deeplink/language.go
package deeplink

import (
	"strings"

	"concierge-workers/internal/models"
)

const fallbackLanguage = "es"

var languageCodes = map[string]string{
	"spanish":    "es",
	"french":     "fr",
	"english":    "en",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"chinese":    "zh",
	"japanese":   "ja",
	"korean":     "ko",
	"arabic":     "ar",
}

// LanguageCode maps a language name or code onto its two-letter code.
func LanguageCode(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if code, ok := languageCodes[name]; ok {
		return code, true
	}
	for _, code := range languageCodes {
		if code == name {
			return code, true
		}
	}
	return "", false
}

// ResolveTargetLanguage picks the translation target: the explicit language
// when it is recognised, else the venue's country default. Mexico resolves
// to Spanish, USA and Canada to English, anything else to Spanish.
func ResolveTargetLanguage(explicit string, v *models.Venue) string {
	if code, ok := LanguageCode(explicit); ok {
		return code
	}
	if v == nil {
		return fallbackLanguage
	}
	switch v.Country {
	case "Mexico":
		return "es"
	case "USA", "Canada":
		return "en"
	}
	return fallbackLanguage
}

var phrases = map[string]map[string]string{
	"es": {
		"Where is the bathroom?":      "¿Dónde está el baño?",
		"How much does this cost?":    "¿Cuánto cuesta esto?",
		"Where is the nearest metro?": "¿Dónde está el metro más cercano?",
		"I need help":                 "Necesito ayuda",
		"What time is the match?":     "¿A qué hora es el partido?",
		"Where can I buy tickets?":    "¿Dónde puedo comprar boletos?",
	},
	"en": {
		"Where is the bathroom?":      "Where is the bathroom?",
		"How much does this cost?":    "How much does this cost?",
		"Where is the nearest metro?": "Where is the nearest metro?",
		"I need help":                 "I need help",
		"What time is the match?":     "What time is the match?",
		"Where can I buy tickets?":    "Where can I buy tickets?",
	},
	"fr": {
		"Where is the bathroom?":      "Où sont les toilettes?",
		"How much does this cost?":    "Combien ça coûte?",
		"Where is the nearest metro?": "Où est le métro le plus proche?",
		"I need help":                 "J'ai besoin d'aide",
		"What time is the match?":     "À quelle heure est le match?",
		"Where can I buy tickets?":    "Où puis-je acheter des billets?",
	},
}

// Phrases returns the matchday phrase book for lang, falling back to
// English. The returned map is a copy.
func Phrases(lang string) map[string]string {
	table, ok := phrases[strings.ToLower(lang)]
	if !ok {
		table = phrases["en"]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
