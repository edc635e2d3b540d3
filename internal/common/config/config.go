// internal/common/config/config.go
package config

import "fmt"

type Config struct {
	App       AppConfig               `mapstructure:"app"`
	Camunda   CamundaConfig           `mapstructure:"camunda"`
	Database  DatabaseConfig          `mapstructure:"database"`
	Workers   map[string]WorkerConfig `mapstructure:"workers"`
	Concierge ConciergeConfig         `mapstructure:"concierge"`
	APIs      APIsConfig              `mapstructure:"apis"`
	Logging   LoggingConfig           `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// Venue source kinds.
const (
	VenueSourceStatic   = "static"
	VenueSourceFile     = "file"
	VenueSourcePostgres = "postgres"
)

// ConciergeConfig drives intent classification and dispatch.
type ConciergeConfig struct {
	Profile         string      `mapstructure:"profile"` // simple | booking
	DefaultVenueID  string      `mapstructure:"default_venue_id"`
	DefaultLanguage string      `mapstructure:"default_language"`
	FallbackDelay   int         `mapstructure:"fallback_delay"` // milliseconds
	SameTab         bool        `mapstructure:"same_tab"`
	MetricsAddress  string      `mapstructure:"metrics_address"`
	Venues          VenueConfig `mapstructure:"venues"`
}

type VenueConfig struct {
	Source   string `mapstructure:"source"` // static | file | postgres
	File     string `mapstructure:"file"`
	CacheTTL int    `mapstructure:"cache_ttl"` // milliseconds, 0 disables the redis cache
	CacheKey string `mapstructure:"cache_key"`
}

type APIsConfig struct {
	Chat ChatAPIConfig `mapstructure:"chat"`
}

type ChatAPIConfig struct {
	BaseURL    string  `mapstructure:"base_url"`
	APIKey     string  `mapstructure:"api_key"`
	Timeout    int     `mapstructure:"timeout"` // milliseconds
	MaxRetries int     `mapstructure:"max_retries"`
	RateLimit  float64 `mapstructure:"rate_limit"` // requests per second, 0 = unlimited
	Burst      int     `mapstructure:"burst"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
