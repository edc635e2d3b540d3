// internal/workers/concierge/parse-user-intent/models.go
package parseuserintent

type Input struct {
	Question  string `json:"question"`
	Profile   string `json:"profile,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

type Output struct {
	IntentAnalysis IntentAnalysis `json:"intentAnalysis"`
	Entities       []Entity       `json:"entities"`
	Actionable     bool           `json:"actionable"`
	Summary        string         `json:"summary"`
	Platform       string         `json:"platform"`
}

type IntentAnalysis struct {
	PrimaryIntent string  `json:"primaryIntent"`
	Confidence    float64 `json:"confidence"`
	Profile       string  `json:"profile"`
	Keyword       string  `json:"keyword,omitempty"`
}

type Entity struct {
	Type  string `json:"type"` // "provider", "start_location", "destination", "search_term", ...
	Value string `json:"value"`
}

const inputSchema = `{
	"type": "object",
	"required": ["question"],
	"properties": {
		"question":  {"type": "string", "maxLength": 2000},
		"profile":   {"type": "string", "enum": ["", "simple", "booking"]},
		"userAgent": {"type": "string"}
	}
}`
