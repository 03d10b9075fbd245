package testhelpers

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ZoneFixture describes a zone row to seed.
type ZoneFixture struct {
	ID            string
	Slug          string
	Name          string
	NearestAccess string
	CarCapacity   int
	CarOccupancy  int
	MotoCapacity  int
	MotoOccupancy int
	Active        bool
}

// InsertZone seeds one zone row.
func InsertZone(db *sqlx.DB, z ZoneFixture) error {
	_, err := db.Exec(`
		INSERT INTO zones (id, slug, name, lat, lng, area, nearest_access,
			car_capacity, car_occupancy, moto_capacity, moto_occupancy, active)
		VALUES ($1, $2, $3, 6.2, -75.579, 'campus', $4, $5, $6, $7, $8, $9)`,
		z.ID, z.Slug, z.Name, z.NearestAccess,
		z.CarCapacity, z.CarOccupancy, z.MotoCapacity, z.MotoOccupancy, z.Active,
	)
	if err != nil {
		return fmt.Errorf("insert zone %s: %w", z.ID, err)
	}
	return nil
}

// InsertReport seeds one report row with the given age.
func InsertReport(db *sqlx.DB, id, zoneID, reportType, submitterID string, createdAgo, ttl time.Duration) error {
	createdAt := time.Now().Add(-createdAgo)
	var submitter *string
	if submitterID != "" {
		submitter = &submitterID
	}
	_, err := db.Exec(`
		INSERT INTO reports (id, zone_id, type, submitter_id, confidence, active, created_at, expires_at)
		VALUES ($1, $2, $3, $4, 1.0, true, $5, $6)`,
		id, zoneID, reportType, submitter, createdAt, createdAt.Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("insert report %s: %w", id, err)
	}
	return nil
}
