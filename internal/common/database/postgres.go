// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"concierge-workers/internal/common/config"

	_ "github.com/lib/pq"
)

// venueTableDDL matches the columns venue.PostgresStore selects.
const venueTableDDL = `CREATE TABLE IF NOT EXISTS concierge_venues (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	city             TEXT NOT NULL,
	country          TEXT NOT NULL,
	latitude         DOUBLE PRECISION NOT NULL,
	longitude        DOUBLE PRECISION NOT NULL,
	place_id         TEXT,
	address          TEXT,
	timezone         TEXT,
	primary_language CHAR(2),
	sort_order       INTEGER NOT NULL DEFAULT 0,
	active           BOOLEAN NOT NULL DEFAULT true
)`

type PostgresClient struct {
	DB *sql.DB
}

func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// EnsureVenueTable creates the venue table when it does not exist yet.
func (c *PostgresClient) EnsureVenueTable(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, venueTableDDL); err != nil {
		return fmt.Errorf("create concierge_venues: %w", err)
	}
	return nil
}

func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
