package testhelpers

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates the tables the repositories expect. Idempotent.
func CreateSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS zones (
			id             TEXT PRIMARY KEY,
			slug           TEXT NOT NULL UNIQUE,
			name           TEXT NOT NULL,
			lat            DOUBLE PRECISION NOT NULL,
			lng            DOUBLE PRECISION NOT NULL,
			area           TEXT NOT NULL DEFAULT '',
			nearest_access TEXT NOT NULL DEFAULT '',
			car_capacity   INTEGER NOT NULL CHECK (car_capacity >= 0),
			car_occupancy  INTEGER NOT NULL DEFAULT 0 CHECK (car_occupancy >= 0),
			moto_capacity  INTEGER NOT NULL CHECK (moto_capacity >= 0),
			moto_occupancy INTEGER NOT NULL DEFAULT 0 CHECK (moto_occupancy >= 0),
			active         BOOLEAN NOT NULL DEFAULT true,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			CHECK (car_occupancy <= car_capacity),
			CHECK (moto_occupancy <= moto_capacity)
		)`,
		`CREATE TABLE IF NOT EXISTS reports (
			id           TEXT PRIMARY KEY,
			zone_id      TEXT NOT NULL REFERENCES zones(id),
			type         TEXT NOT NULL,
			lat          DOUBLE PRECISION,
			lng          DOUBLE PRECISION,
			submitter_id TEXT,
			confidence   DOUBLE PRECISION NOT NULL DEFAULT 1.0,
			active       BOOLEAN NOT NULL DEFAULT true,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			expires_at   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_submitter_created
			ON reports (submitter_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_zone_active
			ON reports (zone_id, active, expires_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}
