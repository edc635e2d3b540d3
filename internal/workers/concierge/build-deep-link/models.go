// internal/workers/concierge/build-deep-link/models.go
package builddeeplink

type Input struct {
	Question  string `json:"question"`
	Profile   string `json:"profile,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	VenueID   string `json:"venueId,omitempty"`
	Language  string `json:"language,omitempty"`
}

type Output struct {
	DispatchID     string   `json:"dispatchId"`
	Intent         string   `json:"intent"`
	Service        string   `json:"service"`
	NativeURI      string   `json:"nativeUri"`
	WebFallbackURI string   `json:"webFallbackUri"`
	VenueID        string   `json:"venueId,omitempty"`
	Platform       string   `json:"platform"`
	Strategy       Strategy `json:"strategy"`
}

// Strategy tells the client how to open the links.
type Strategy struct {
	Mode             string `json:"mode"` // "native-then-web" or "web"
	FallbackDelayMs  int64  `json:"fallbackDelayMs"`
	NewTab           bool   `json:"newTab"`
	GateOnVisibility bool   `json:"gateOnVisibility"`
}

const inputSchema = `{
	"type": "object",
	"required": ["question"],
	"properties": {
		"question":  {"type": "string", "maxLength": 2000},
		"profile":   {"type": "string", "enum": ["", "simple", "booking"]},
		"userAgent": {"type": "string"},
		"venueId":   {"type": "string", "maxLength": 64},
		"language":  {"type": "string", "maxLength": 32}
	}
}`
