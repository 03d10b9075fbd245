package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase/dto"
)

// ZoneUseCase serves zone queries with derived metrics and routes all
// occupancy mutations through the repository's clamped primitives.
type ZoneUseCase struct {
	zoneRepo   repository.ZoneRepository
	reportRepo repository.ReportRepository
	logger     *zap.Logger
}

func NewZoneUseCase(
	zoneRepo repository.ZoneRepository,
	reportRepo repository.ReportRepository,
	logger *zap.Logger,
) *ZoneUseCase {
	return &ZoneUseCase{
		zoneRepo:   zoneRepo,
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// List returns all active zones with derived metrics plus campus-wide
// aggregate totals.
func (uc *ZoneUseCase) List(ctx context.Context) (*dto.ZoneListResponse, error) {
	zones, err := uc.zoneRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	activeReports, err := uc.reportRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	reportsByZone := make(map[string][]*domain.Report)
	for _, r := range activeReports {
		reportsByZone[r.ZoneID] = append(reportsByZone[r.ZoneID], r)
	}

	resp := &dto.ZoneListResponse{
		Zones: make([]dto.ZoneWithMetrics, 0, len(zones)),
	}

	for _, zone := range zones {
		resp.Zones = append(resp.Zones, dto.NewZoneWithMetrics(zone, reportsByZone[zone.ID]))
		resp.TotalSpots += zone.CarCapacity + zone.MotoCapacity
		resp.TotalOccupied += zone.CarOccupancy + zone.MotoOccupancy
	}

	resp.GlobalPercentage = domain.OccupancyPercentage(resp.TotalOccupied, resp.TotalSpots)

	return resp, nil
}

// Get returns one zone by id or slug, with its currently active reports.
func (uc *ZoneUseCase) Get(ctx context.Context, key string) (*dto.ZoneWithMetrics, error) {
	zone, err := uc.zoneRepo.GetByID(ctx, key)
	if err != nil {
		// Fall back to slug lookup so /zones/parqueadero-1 also works.
		zone, err = uc.zoneRepo.GetBySlug(ctx, key)
		if err != nil {
			return nil, err
		}
	}

	reports, err := uc.reportRepo.ListActiveByZone(ctx, zone.ID)
	if err != nil {
		return nil, err
	}

	result := dto.NewZoneWithMetrics(zone, reports)
	return &result, nil
}

// SetOccupancy applies an absolute occupancy/active update. Counters above
// capacity are rejected, not truncated.
func (uc *ZoneUseCase) SetOccupancy(ctx context.Context, id string, req dto.SetOccupancyRequest) (*dto.ZoneWithMetrics, error) {
	if req.CarOccupancy == nil && req.MotoOccupancy == nil && req.Active == nil {
		return nil, errors.ErrValidation.WithMessage("at least one field must be provided")
	}

	zone, err := uc.zoneRepo.SetOccupancy(ctx, id, repository.OccupancyUpdate{
		CarOccupancy:  req.CarOccupancy,
		MotoOccupancy: req.MotoOccupancy,
		Active:        req.Active,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Zone occupancy updated",
		zap.String("zone_id", zone.ID),
		zap.Int("car_occupancy", zone.CarOccupancy),
		zap.Int("moto_occupancy", zone.MotoOccupancy))

	result := dto.NewZoneWithMetrics(zone, nil)
	return &result, nil
}

// AdjustCarOccupancy applies a signed delta clamped to [0, capacity].
// This is the endpoint behind geofence entry/exit telemetry.
func (uc *ZoneUseCase) AdjustCarOccupancy(ctx context.Context, id string, delta int) (*dto.ZoneWithMetrics, error) {
	zone, err := uc.zoneRepo.AdjustCarOccupancy(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Zone car occupancy adjusted",
		zap.String("zone_id", zone.ID),
		zap.Int("delta", delta),
		zap.Int("car_occupancy", zone.CarOccupancy))

	result := dto.NewZoneWithMetrics(zone, nil)
	return &result, nil
}
