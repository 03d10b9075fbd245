package repository

import (
	"context"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
)

// OccupancyUpdate carries an absolute occupancy mutation. Nil fields are
// left untouched.
type OccupancyUpdate struct {
	CarOccupancy  *int
	MotoOccupancy *int
	Active        *bool
}

// ZoneRepository owns the Zone store. All occupancy writes go through the
// clamped conditional-update methods; nothing may overwrite counters raw.
type ZoneRepository interface {
	// ListActive returns all active zones ordered by name.
	ListActive(ctx context.Context) ([]*domain.Zone, error)

	// GetByID returns a zone by id, or ErrZoneNotFound.
	GetByID(ctx context.Context, id string) (*domain.Zone, error)

	// GetBySlug returns a zone by slug, or ErrZoneNotFound.
	GetBySlug(ctx context.Context, slug string) (*domain.Zone, error)

	// SetOccupancy applies an absolute occupancy/active update. It fails
	// with ErrCapacityExceeded when a requested counter is above the
	// zone's capacity, without mutating anything.
	SetOccupancy(ctx context.Context, id string, update OccupancyUpdate) (*domain.Zone, error)

	// AdjustCarOccupancy atomically adds delta to the car counter,
	// clamped to [0, capacity] in a single conditional update. This is
	// the shared mutator used by crowdsourced reports and geofence
	// deltas; concurrent callers never observe a value out of bounds.
	AdjustCarOccupancy(ctx context.Context, id string, delta int) (*domain.Zone, error)
}
