// internal/venue/source.go
package venue

import (
	"database/sql"
	"fmt"

	"concierge-workers/internal/common/config"
	"concierge-workers/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// NewStoreFromConfig assembles the configured venue source. db is required
// for the postgres source and rdb when the cache TTL is positive.
func NewStoreFromConfig(cfg config.VenueConfig, db *sql.DB, rdb *redis.Client, log logger.Logger) (Store, error) {
	var store Store
	switch cfg.Source {
	case "", config.VenueSourceStatic:
		store = NewStaticStore(nil)
	case config.VenueSourceFile:
		store = NewFileStore(cfg.File, log)
	case config.VenueSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("venue source postgres needs a database connection")
		}
		store = NewPostgresStore(db, log)
	default:
		return nil, fmt.Errorf("unknown venue source %q", cfg.Source)
	}

	if cfg.CacheTTL > 0 {
		if rdb == nil {
			return nil, fmt.Errorf("venue cache needs a redis connection")
		}
		store = NewCachedStore(store, rdb, cfg.CacheKey, config.GetDuration(cfg.CacheTTL), log)
	}
	return store, nil
}
