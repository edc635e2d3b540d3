// internal/workers/concierge/build-deep-link/config.go
package builddeeplink

import (
	"time"

	"concierge-workers/internal/common/config"
	"concierge-workers/internal/dispatch"
	"concierge-workers/internal/intent"
)

type Config struct {
	Enabled        bool
	MaxJobsActive  int
	Timeout        time.Duration
	DefaultProfile intent.Profile
	Dispatch       dispatch.Config
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
		Dispatch: dispatch.Config{
			DefaultVenueID:  appCfg.Concierge.DefaultVenueID,
			DefaultLanguage: appCfg.Concierge.DefaultLanguage,
			FallbackDelay:   config.GetDuration(appCfg.Concierge.FallbackDelay),
			SameTab:         appCfg.Concierge.SameTab,
		},
	}
}
