// internal/venue/file_store.go
package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "concierge-workers/internal/common/errors"
	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/common/validation"
	"concierge-workers/internal/models"
)

var venueFileSchema = validation.MustCompileSchema(`{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["id", "name", "city", "country", "coordinates"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"name": {"type": "string", "minLength": 1},
			"city": {"type": "string", "minLength": 1},
			"country": {"type": "string", "minLength": 1},
			"coordinates": {
				"type": "object",
				"required": ["lat", "lng"],
				"properties": {
					"lat": {"type": "number", "minimum": -90, "maximum": 90},
					"lng": {"type": "number", "minimum": -180, "maximum": 180}
				}
			},
			"placeId": {"type": "string"},
			"address": {"type": "string"},
			"timezone": {"type": "string"},
			"primaryLanguage": {"type": "string", "pattern": "^[a-z]{2}$"}
		}
	}
}`)

// FileStore reads a JSON array of venues and rejects malformed datasets.
type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: log.WithFields(map[string]interface{}{"venueSource": "file", "path": path}),
	}
}

func (s *FileStore) List(_ context.Context) ([]models.Venue, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, apperrors.NewVenueLookupFailedError(err)
	}
	return decodeVenues(raw, s.logger)
}

func decodeVenues(raw []byte, log logger.Logger) ([]models.Venue, error) {
	result, err := venueFileSchema.ValidateJSON(raw)
	if err != nil {
		return nil, apperrors.NewVenueDataInvalidError(err.Error())
	}
	if !result.Valid {
		msgs := result.GetErrorMessages()
		log.Error("venue dataset rejected", map[string]interface{}{"errors": msgs})
		return nil, apperrors.NewVenueDataInvalidError(strings.Join(msgs, "; "))
	}

	var venues []models.Venue
	if err := json.Unmarshal(raw, &venues); err != nil {
		return nil, apperrors.NewVenueDataInvalidError(fmt.Sprintf("decode venues: %v", err))
	}

	log.Debug("venues loaded", map[string]interface{}{"count": len(venues)})
	return venues, nil
}
