// internal/workers/concierge/relay-chat-message/models.go
package relaychatmessage

import "concierge-workers/internal/chatapi"

type Input struct {
	Message             string            `json:"message"`
	ConversationHistory []chatapi.Message `json:"conversationHistory"`
	UserID              string            `json:"userId,omitempty"`
}

type Output struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

const inputSchema = `{
	"type": "object",
	"required": ["message"],
	"properties": {
		"message": {"type": "string", "minLength": 1, "maxLength": 4000},
		"conversationHistory": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["role", "content"],
				"properties": {
					"role":    {"type": "string", "enum": ["user", "assistant"]},
					"content": {"type": "string"}
				}
			}
		},
		"userId": {"type": "string"}
	}
}`
