package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
)

type reportRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db,
		logger: db.logger,
	}
}

const reportColumns = `
	r.id, r.zone_id, r.type, r.lat, r.lng, r.submitter_id,
	r.confidence, r.active, r.created_at, r.expires_at,
	z.name AS zone_name, z.slug AS zone_slug
`

// CreateWithRateLimit runs the window count, the insert and the occupancy
// side effect in one transaction. An advisory xact lock keyed by the
// submitter serializes racing submissions for the same submitter across
// server instances, so both cannot pass the count check.
func (r *reportRepository) CreateWithRateLimit(
	ctx context.Context,
	report *domain.Report,
	limit int,
	window time.Duration,
	sideEffect repository.ReportSideEffect,
) (*domain.Report, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin report transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if report.SubmitterID != nil {
		if _, err := tx.ExecContext(ctx,
			`SELECT pg_advisory_xact_lock(hashtext($1))`, *report.SubmitterID); err != nil {
			r.logger.Error("Failed to take submitter lock", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		cutoff := report.CreatedAt.Add(-window)
		var recent int
		if err := tx.GetContext(ctx, &recent,
			`SELECT COUNT(*) FROM reports WHERE submitter_id = $1 AND created_at > $2`,
			*report.SubmitterID, cutoff); err != nil {
			r.logger.Error("Failed to count recent reports", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		if recent >= limit {
			return nil, errors.ErrRateLimited
		}
	}

	insert := `
		INSERT INTO reports (id, zone_id, type, lat, lng, submitter_id, confidence, active, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if _, err := tx.ExecContext(ctx, insert,
		report.ID, report.ZoneID, report.Type, report.Lat, report.Lng,
		report.SubmitterID, report.Confidence, report.Active,
		report.CreatedAt, report.ExpiresAt); err != nil {
		r.logger.Error("Failed to insert report",
			zap.String("zone_id", report.ZoneID),
			zap.String("type", string(report.Type)),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	switch sideEffect {
	case repository.SideEffectFreeSpots:
		// Clamped in the statement: the net visible state never goes
		// negative, even for concurrent readers.
		if _, err := tx.ExecContext(ctx,
			`UPDATE zones SET car_occupancy = GREATEST(car_occupancy - 5, 0), updated_at = now() WHERE id = $1`,
			report.ZoneID); err != nil {
			r.logger.Error("Failed to apply free-spots side effect", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
	case repository.SideEffectMarkFull:
		if _, err := tx.ExecContext(ctx,
			`UPDATE zones SET car_occupancy = car_capacity, updated_at = now() WHERE id = $1`,
			report.ZoneID); err != nil {
			r.logger.Error("Failed to apply mark-full side effect", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit report transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return report, nil
}

func (r *reportRepository) ListActive(ctx context.Context) ([]*domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports r
		JOIN zones z ON z.id = r.zone_id
		WHERE r.active = true AND r.expires_at > now()
		ORDER BY r.created_at DESC
	`

	var reports []*domain.Report
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		r.logger.Error("Failed to list active reports", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reports, nil
}

func (r *reportRepository) ListActiveByZone(ctx context.Context, zoneID string) ([]*domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports r
		JOIN zones z ON z.id = r.zone_id
		WHERE r.zone_id = $1 AND r.active = true AND r.expires_at > now()
		ORDER BY r.created_at DESC
	`

	var reports []*domain.Report
	if err := r.db.SelectContext(ctx, &reports, query, zoneID); err != nil {
		r.logger.Error("Failed to list zone reports", zap.String("zone_id", zoneID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reports, nil
}

func (r *reportRepository) Feed(ctx context.Context, limit int) ([]*domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports r
		JOIN zones z ON z.id = r.zone_id
		ORDER BY r.created_at DESC
		LIMIT $1
	`

	var reports []*domain.Report
	if err := r.db.SelectContext(ctx, &reports, query, limit); err != nil {
		r.logger.Error("Failed to load report feed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return reports, nil
}

func (r *reportRepository) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reports SET active = false WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to deactivate report", zap.String("report_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrReportNotFound
	}

	return nil
}
