// internal/venue/postgres_store.go
package venue

import (
	"context"
	"database/sql"

	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/models"
)

const listVenuesQuery = `SELECT id, name, city, country, latitude, longitude,
	COALESCE(place_id, ''), COALESCE(address, ''), COALESCE(timezone, ''), COALESCE(primary_language, '')
FROM concierge_venues
WHERE active = true
ORDER BY sort_order, id`

// PostgresStore reads venues from the concierge_venues table.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"venueSource": "postgres"}),
	}
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, listVenuesQuery)
	if err != nil {
		return nil, apperrors.NewVenueLookupFailedError(err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.Country,
			&v.Coordinates.Latitude, &v.Coordinates.Longitude,
			&v.PlaceID, &v.Address, &v.Timezone, &v.PrimaryLanguage,
		); err != nil {
			return nil, apperrors.NewVenueLookupFailedError(err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewVenueLookupFailedError(err)
	}

	s.logger.Debug("venues loaded", map[string]interface{}{"count": len(venues)})
	return venues, nil
}
