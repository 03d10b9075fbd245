package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/utils"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase/dto"
)

// Rate-limit policy: at most rateLimitMax reports per submitter within the
// trailing rateLimitWindow.
const (
	rateLimitMax    = 3
	rateLimitWindow = 10 * time.Minute
)

const defaultFeedLimit = 50

// ReportUseCase accepts crowdsourced condition reports, bounds abuse and
// applies their occupancy side effects atomically with creation.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	zoneRepo   repository.ZoneRepository
	logger     *zap.Logger
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	zoneRepo repository.ZoneRepository,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		zoneRepo:   zoneRepo,
		logger:     logger,
	}
}

// Submit validates and creates a report, applying the type's occupancy
// side effect in the same transaction as the insert.
func (uc *ReportUseCase) Submit(ctx context.Context, req dto.SubmitReportRequest) (*domain.Report, error) {
	reportType := domain.ReportType(req.Type)
	if !reportType.Valid() {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{
			"field": "type",
			"value": req.Type,
		})
	}
	if req.Lat != nil && req.Lng != nil && !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{
			"field": "coordinates",
		})
	}

	if _, err := uc.zoneRepo.GetByID(ctx, req.ZoneID); err != nil {
		return nil, err
	}

	now := time.Now()
	report := &domain.Report{
		ID:          uuid.NewString(),
		ZoneID:      req.ZoneID,
		Type:        reportType,
		Lat:         req.Lat,
		Lng:         req.Lng,
		SubmitterID: req.SubmitterID,
		Confidence:  1.0,
		Active:      true,
		CreatedAt:   now,
		ExpiresAt:   now.Add(domain.TTLForType(reportType)),
	}

	created, err := uc.reportRepo.CreateWithRateLimit(
		ctx, report, rateLimitMax, rateLimitWindow, sideEffectFor(reportType))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Report created",
		zap.String("report_id", created.ID),
		zap.String("zone_id", created.ZoneID),
		zap.String("type", string(created.Type)),
		zap.Time("expires_at", created.ExpiresAt))

	return created, nil
}

// sideEffectFor maps a report type to its occupancy mutation:
// spots_available frees 5 car spots (floored at 0), full saturates the car
// counter to capacity. Moto counters are never touched.
func sideEffectFor(t domain.ReportType) repository.ReportSideEffect {
	switch t {
	case domain.ReportSpotsAvailable:
		return repository.SideEffectFreeSpots
	case domain.ReportFull:
		return repository.SideEffectMarkFull
	default:
		return repository.SideEffectNone
	}
}

// ListActive returns currently active reports, newest first.
func (uc *ReportUseCase) ListActive(ctx context.Context) ([]*domain.Report, error) {
	return uc.reportRepo.ListActive(ctx)
}

// NormalizeFeedLimit maps a client-supplied feed limit to the one the
// query will actually use. Out-of-range values fall back to the default.
func NormalizeFeedLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return defaultFeedLimit
	}
	return limit
}

// Feed returns the most recent reports regardless of expiry, for the
// admin/monitoring dashboard.
func (uc *ReportUseCase) Feed(ctx context.Context, limit int) ([]*domain.Report, error) {
	return uc.reportRepo.Feed(ctx, NormalizeFeedLimit(limit))
}

// Deactivate soft-deletes a report.
func (uc *ReportUseCase) Deactivate(ctx context.Context, id string) error {
	if err := uc.reportRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Report deactivated", zap.String("report_id", id))
	return nil
}
