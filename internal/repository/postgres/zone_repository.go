package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
)

type zoneRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewZoneRepository(db *DB) repository.ZoneRepository {
	return &zoneRepository{
		db:     db,
		logger: db.logger,
	}
}

const zoneColumns = `
	id, slug, name, lat, lng, area, nearest_access,
	car_capacity, car_occupancy, moto_capacity, moto_occupancy,
	active, created_at, updated_at
`

func (r *zoneRepository) ListActive(ctx context.Context) ([]*domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE active = true ORDER BY name ASC`

	var zones []*domain.Zone
	if err := r.db.SelectContext(ctx, &zones, query); err != nil {
		r.logger.Error("Failed to list active zones", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return zones, nil
}

func (r *zoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	return r.getOne(ctx, `SELECT `+zoneColumns+` FROM zones WHERE id = $1`, id)
}

func (r *zoneRepository) GetBySlug(ctx context.Context, slug string) (*domain.Zone, error) {
	return r.getOne(ctx, `SELECT `+zoneColumns+` FROM zones WHERE slug = $1`, slug)
}

func (r *zoneRepository) getOne(ctx context.Context, query, arg string) (*domain.Zone, error) {
	var zone domain.Zone
	err := r.db.GetContext(ctx, &zone, query, arg)
	if err == sql.ErrNoRows {
		return nil, errors.ErrZoneNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get zone", zap.String("key", arg), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &zone, nil
}

// SetOccupancy applies an absolute update guarded by capacity inside the
// statement itself, so a racing capacity check can never let occupancy
// exceed capacity.
func (r *zoneRepository) SetOccupancy(ctx context.Context, id string, update repository.OccupancyUpdate) (*domain.Zone, error) {
	query := `
		UPDATE zones SET
			car_occupancy = COALESCE($2, car_occupancy),
			moto_occupancy = COALESCE($3, moto_occupancy),
			active = COALESCE($4, active),
			updated_at = now()
		WHERE id = $1
			AND COALESCE($2, car_occupancy) BETWEEN 0 AND car_capacity
			AND COALESCE($3, moto_occupancy) BETWEEN 0 AND moto_capacity
		RETURNING ` + zoneColumns

	var zone domain.Zone
	err := r.db.GetContext(ctx, &zone, query, id, update.CarOccupancy, update.MotoOccupancy, update.Active)
	if err == sql.ErrNoRows {
		// No row updated: either the zone does not exist or the guard
		// rejected the requested counters.
		existing, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		return nil, errors.ErrCapacityExceeded.WithDetails(map[string]interface{}{
			"car_capacity":  existing.CarCapacity,
			"moto_capacity": existing.MotoCapacity,
		})
	}
	if err != nil {
		r.logger.Error("Failed to set zone occupancy", zap.String("zone_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &zone, nil
}

// AdjustCarOccupancy is the shared clamped mutator: one conditional update
// against the current stored value, never read-modify-write.
func (r *zoneRepository) AdjustCarOccupancy(ctx context.Context, id string, delta int) (*domain.Zone, error) {
	query := `
		UPDATE zones SET
			car_occupancy = LEAST(GREATEST(car_occupancy + $2, 0), car_capacity),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + zoneColumns

	var zone domain.Zone
	err := r.db.GetContext(ctx, &zone, query, id, delta)
	if err == sql.ErrNoRows {
		return nil, errors.ErrZoneNotFound
	}
	if err != nil {
		r.logger.Error("Failed to adjust car occupancy",
			zap.String("zone_id", id),
			zap.Int("delta", delta),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &zone, nil
}
