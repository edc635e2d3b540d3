// internal/venue/store.go
package venue

import (
	"context"
	"fmt"

	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/models"
)

// Store lists venues in catalog order.
type Store interface {
	List(ctx context.Context) ([]models.Venue, error)
}

// StaticStore serves a fixed list, the built-in one by default.
type StaticStore struct {
	venues []models.Venue
}

func NewStaticStore(venues []models.Venue) *StaticStore {
	if venues == nil {
		venues = builtIn
	}
	return &StaticStore{venues: venues}
}

func (s *StaticStore) List(_ context.Context) ([]models.Venue, error) {
	out := make([]models.Venue, len(s.venues))
	copy(out, s.venues)
	return out, nil
}

// LoadCatalog reads store once and indexes the result. An empty source is
// an error; dispatch always needs a default venue.
func LoadCatalog(ctx context.Context, store Store) (*Catalog, error) {
	venues, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}
	if len(venues) == 0 {
		return nil, apperrors.NewVenueDataInvalidError("venue source returned no venues")
	}
	return NewCatalog(venues), nil
}
