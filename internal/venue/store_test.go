package venue

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"concierge-workers/internal/common/config"
	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Static store
// ==========================

func TestStaticStore_DefaultsToBuiltIn(t *testing.T) {
	venues, err := NewStaticStore(nil).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, venues, 11)
}

func TestLoadCatalog_EmptySource(t *testing.T) {
	_, err := LoadCatalog(context.Background(), NewStaticStore([]models.Venue{}))
	require.Error(t, err)

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, apperrors.ErrCodeVenueDataInvalid, stdErr.Code)
}

// ==========================
// File store
// ==========================

func writeVenueFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venues.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFileStore_List(t *testing.T) {
	path := writeVenueFile(t, `[
		{"id": "wembley", "name": "Wembley Stadium", "city": "London", "country": "England",
		 "coordinates": {"lat": 51.556, "lng": -0.2796}, "primaryLanguage": "en"}
	]`)

	venues, err := NewFileStore(path, logger.NewTestLogger(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Wembley Stadium", venues[0].Name)
	assert.Equal(t, 51.556, venues[0].Coordinates.Latitude)
}

func TestFileStore_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"missing coordinates", `[{"id": "x", "name": "X", "city": "Y", "country": "Z"}]`},
		{"latitude out of range", `[{"id": "x", "name": "X", "city": "Y", "country": "Z", "coordinates": {"lat": 120, "lng": 0}}]`},
		{"bad language code", `[{"id": "x", "name": "X", "city": "Y", "country": "Z", "coordinates": {"lat": 1, "lng": 1}, "primaryLanguage": "Spanish"}]`},
		{"not json", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileStore(writeVenueFile(t, tt.body), logger.NewNoOpLogger()).List(context.Background())
			require.Error(t, err)

			var stdErr *apperrors.StandardError
			require.True(t, errors.As(err, &stdErr))
			assert.Equal(t, apperrors.ErrCodeVenueDataInvalid, stdErr.Code)
		})
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	_, err := NewFileStore("/does/not/exist.json", logger.NewNoOpLogger()).List(context.Background())

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, apperrors.ErrCodeVenueLookupFailed, stdErr.Code)
}

// ==========================
// Postgres store
// ==========================

var venueColumns = []string{"id", "name", "city", "country", "latitude", "longitude", "place_id", "address", "timezone", "primary_language"}

func TestPostgresStore_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM concierge_venues").
		WillReturnRows(sqlmock.NewRows(venueColumns).
			AddRow("bmo", "BMO Field", "Toronto", "Canada", 43.6332, -79.4189, "", "170 Princes Blvd", "America/Toronto", "en").
			AddRow("lumen", "Lumen Field", "Seattle", "USA", 47.5952, -122.3316, "pid", "800 Occidental Ave S", "America/Los_Angeles", "en"))

	venues, err := NewPostgresStore(db, logger.NewTestLogger(t)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "bmo", venues[0].ID)
	assert.Equal(t, -122.3316, venues[1].Coordinates.Longitude)
	assert.Equal(t, "pid", venues[1].PlaceID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM concierge_venues").WillReturnError(errors.New("connection reset"))

	_, err = NewPostgresStore(db, logger.NewNoOpLogger()).List(context.Background())

	var stdErr *apperrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, apperrors.ErrCodeVenueLookupFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Cached store
// ==========================

type countingStore struct {
	venues []models.Venue
	calls  int
}

func (s *countingStore) List(context.Context) ([]models.Venue, error) {
	s.calls++
	return s.venues, nil
}

func TestCachedStore_MissPopulatesCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	backing := &countingStore{venues: BuiltIn()[:2]}
	ttl := 10 * time.Minute

	data, err := json.Marshal(backing.venues)
	require.NoError(t, err)

	mock.ExpectGet("concierge:venues").RedisNil()
	mock.ExpectSet("concierge:venues", data, ttl).SetVal("OK")

	store := NewCachedStore(backing, rdb, "concierge:venues", ttl, logger.NewTestLogger(t))
	venues, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, venues, 2)
	assert.Equal(t, 1, backing.calls)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedStore_HitSkipsBackingStore(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	backing := &countingStore{}

	data, err := json.Marshal(BuiltIn()[:3])
	require.NoError(t, err)
	mock.ExpectGet("concierge:venues").SetVal(string(data))

	store := NewCachedStore(backing, rdb, "concierge:venues", time.Minute, logger.NewNoOpLogger())
	venues, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, venues, 3)
	assert.Equal(t, 0, backing.calls)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedStore_ReadErrorFallsThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	backing := &countingStore{venues: BuiltIn()[:1]}

	mock.ExpectGet("concierge:venues").SetErr(errors.New("i/o timeout"))

	store := NewCachedStore(backing, rdb, "concierge:venues", time.Minute, logger.NewNoOpLogger())
	venues, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, venues, 1)
	assert.Equal(t, 1, backing.calls)
}

func TestCachedStore_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	backing := &countingStore{venues: BuiltIn()}
	store := NewCachedStore(backing, rdb, "concierge:venues", time.Minute, logger.NewNoOpLogger())
	ctx := context.Background()

	first, err := store.List(ctx)
	require.NoError(t, err)
	second, err := store.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, backing.calls)
	assert.True(t, mr.Exists("concierge:venues"))

	mr.FastForward(2 * time.Minute)
	_, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, backing.calls)

	require.NoError(t, store.Invalidate(ctx))
	assert.False(t, mr.Exists("concierge:venues"))
}

// ==========================
// Source wiring
// ==========================

func TestNewStoreFromConfig(t *testing.T) {
	log := logger.NewNoOpLogger()

	store, err := NewStoreFromConfig(config.VenueConfig{Source: config.VenueSourceStatic}, nil, nil, log)
	require.NoError(t, err)
	assert.IsType(t, &StaticStore{}, store)

	store, err = NewStoreFromConfig(config.VenueConfig{Source: config.VenueSourceFile, File: "venues.json"}, nil, nil, log)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = NewStoreFromConfig(config.VenueConfig{Source: config.VenueSourcePostgres}, nil, nil, log)
	assert.Error(t, err)

	_, err = NewStoreFromConfig(config.VenueConfig{Source: config.VenueSourceStatic, CacheTTL: 1000}, nil, nil, log)
	assert.Error(t, err)

	rdb, _ := redismock.NewClientMock()
	store, err = NewStoreFromConfig(config.VenueConfig{Source: config.VenueSourceStatic, CacheTTL: 1000, CacheKey: "k"}, nil, rdb, log)
	require.NoError(t, err)
	assert.IsType(t, &CachedStore{}, store)

	_, err = NewStoreFromConfig(config.VenueConfig{Source: "s3"}, nil, nil, log)
	assert.Error(t, err)
}
