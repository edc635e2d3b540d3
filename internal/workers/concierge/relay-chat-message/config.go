// internal/workers/concierge/relay-chat-message/config.go
package relaychatmessage

import (
	"time"

	"concierge-workers/internal/chatapi"
	"concierge-workers/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	Chat          chatapi.Config
}

func LoadConfig(appCfg *config.Config) *Config {
	w := config.GetWorkerConfig(appCfg, TaskType)
	return &Config{
		Enabled:       w.Enabled,
		MaxJobsActive: w.MaxJobsActive,
		Timeout:       config.GetDuration(w.Timeout),
		Chat: chatapi.Config{
			BaseURL:    appCfg.APIs.Chat.BaseURL,
			APIKey:     appCfg.APIs.Chat.APIKey,
			Timeout:    config.GetDuration(appCfg.APIs.Chat.Timeout),
			MaxRetries: appCfg.APIs.Chat.MaxRetries,
			RateLimit:  appCfg.APIs.Chat.RateLimit,
			Burst:      appCfg.APIs.Chat.Burst,
		},
	}
}
