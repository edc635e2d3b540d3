package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
workers:
  parse-user-intent:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "simple", cfg.Concierge.Profile)
	assert.Equal(t, "sofi", cfg.Concierge.DefaultVenueID)
	assert.Equal(t, "es", cfg.Concierge.DefaultLanguage)
	assert.Equal(t, 1500, cfg.Concierge.FallbackDelay)
	assert.False(t, cfg.Concierge.SameTab)
	assert.Equal(t, VenueSourceStatic, cfg.Concierge.Venues.Source)
	assert.Equal(t, "concierge:venues", cfg.Concierge.Venues.CacheKey)
	assert.Equal(t, 30000, cfg.APIs.Chat.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)

	w := cfg.Workers["parse-user-intent"]
	assert.True(t, w.Enabled)
	assert.Equal(t, 5, w.MaxJobsActive)
	assert.Equal(t, 30000, w.Timeout)
	assert.Equal(t, 3, w.MaxRetries)
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_CHAT_URL", "http://chat.internal:9000")
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
apis:
  chat:
    base_url: ${TEST_CHAT_URL}
workers:
  relay-chat-message:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://chat.internal:9000", cfg.APIs.Chat.BaseURL)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing broker",
			body:    "concierge:\n  profile: simple\n",
			wantErr: "camunda.broker_address",
		},
		{
			name:    "unknown profile",
			body:    "camunda:\n  broker_address: x:1\nconcierge:\n  profile: fancy\n",
			wantErr: "concierge.profile",
		},
		{
			name:    "file source without path",
			body:    "camunda:\n  broker_address: x:1\nconcierge:\n  venues:\n    source: file\n",
			wantErr: "concierge.venues.file",
		},
		{
			name:    "postgres source without host",
			body:    "camunda:\n  broker_address: x:1\nconcierge:\n  venues:\n    source: postgres\n",
			wantErr: "database.postgres.host",
		},
		{
			name:    "cache without redis",
			body:    "camunda:\n  broker_address: x:1\nconcierge:\n  venues:\n    cache_ttl: 60000\n",
			wantErr: "database.redis.address",
		},
		{
			name:    "unknown source",
			body:    "camunda:\n  broker_address: x:1\nconcierge:\n  venues:\n    source: s3\n",
			wantErr: "not supported",
		},
		{
			name:    "relay without chat url",
			body:    "camunda:\n  broker_address: x:1\nworkers:\n  relay-chat-message:\n    enabled: true\n",
			wantErr: "apis.chat.base_url",
		},
	}

	t.Setenv("CHAT_API_URL", "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}

func TestGetWorkerConfig(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{
		"build-deep-link": {Enabled: false, MaxJobsActive: 2},
	}}

	assert.Equal(t, 2, GetWorkerConfig(cfg, "build-deep-link").MaxJobsActive)
	assert.False(t, IsWorkerEnabled(cfg, "build-deep-link"))

	def := GetWorkerConfig(cfg, "parse-user-intent")
	assert.True(t, def.Enabled)
	assert.Equal(t, 5, def.MaxJobsActive)
	assert.True(t, IsWorkerEnabled(cfg, "parse-user-intent"))
}

func TestLoadFromFile_ShippedConfig(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join("..", "..", "..", "configs", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "simple", cfg.Concierge.Profile)
	assert.Equal(t, VenueSourceStatic, cfg.Concierge.Venues.Source)
	assert.Equal(t, 1500, cfg.Concierge.FallbackDelay)
	assert.Equal(t, 5.0, cfg.APIs.Chat.RateLimit)
	assert.Equal(t, 10, cfg.APIs.Chat.Burst)

	assert.True(t, IsWorkerEnabled(cfg, "parse-user-intent"))
	assert.True(t, IsWorkerEnabled(cfg, "build-deep-link"))
	assert.False(t, IsWorkerEnabled(cfg, "relay-chat-message"))
	assert.Equal(t, 5000, GetWorkerConfig(cfg, "parse-user-intent").Timeout)
}
