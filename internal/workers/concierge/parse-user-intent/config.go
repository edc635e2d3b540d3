// internal/workers/concierge/parse-user-intent/config.go
package parseuserintent

import (
	"time"

	"concierge-workers/internal/common/config"
	"concierge-workers/internal/intent"
)

type Config struct {
	Enabled        bool
	MaxJobsActive  int
	Timeout        time.Duration
	DefaultProfile intent.Profile
}

func LoadConfig(appCfg *config.Config) *Config {
	w := config.GetWorkerConfig(appCfg, TaskType)
	profile, ok := intent.ParseProfile(appCfg.Concierge.Profile)
	if !ok {
		profile = intent.ProfileSimple
	}
	return &Config{
		Enabled:        w.Enabled,
		MaxJobsActive:  w.MaxJobsActive,
		Timeout:        config.GetDuration(w.Timeout),
		DefaultProfile: profile,
	}
}
