// internal/venue/cached_store.go
package venue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// CachedStore keeps the venue list of another store in redis. Cache
// failures are logged and fall through to the backing store.
type CachedStore struct {
	next   Store
	redis  *redis.Client
	key    string
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedStore(next Store, rdb *redis.Client, key string, ttl time.Duration, log logger.Logger) *CachedStore {
	return &CachedStore{
		next:   next,
		redis:  rdb,
		key:    key,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"venueCache": key}),
	}
}

func (s *CachedStore) List(ctx context.Context) ([]models.Venue, error) {
	val, err := s.redis.Get(ctx, s.key).Result()
	switch {
	case err == nil:
		var venues []models.Venue
		if jsonErr := json.Unmarshal([]byte(val), &venues); jsonErr == nil && len(venues) > 0 {
			return venues, nil
		}
		s.logger.Warn("discarding unreadable venue cache entry", nil)
	case !errors.Is(err, redis.Nil):
		s.logger.Warn("venue cache read failed", map[string]interface{}{"error": err.Error()})
	}

	venues, err := s.next.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(venues)
	if err != nil {
		return venues, nil
	}
	if err := s.redis.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("venue cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return venues, nil
}

// Invalidate drops the cached list so the next List hits the backing store.
func (s *CachedStore) Invalidate(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key).Err(); err != nil {
		return apperrors.NewVenueCacheFailedError(err)
	}
	return nil
}
