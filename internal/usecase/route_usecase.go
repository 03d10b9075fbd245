package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/utils"
)

// RouteUseCase crosses zone availability with access-point traffic to
// recommend the best zone to target right now. Read-only: it never
// mutates occupancy.
type RouteUseCase struct {
	zoneRepo  repository.ZoneRepository
	trafficUC *TrafficUseCase
	logger    *zap.Logger
}

func NewRouteUseCase(
	zoneRepo repository.ZoneRepository,
	trafficUC *TrafficUseCase,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		zoneRepo:  zoneRepo,
		trafficUC: trafficUC,
		logger:    logger,
	}
}

type scoredZone struct {
	zone   *domain.Zone
	access *domain.TrafficConditions
	avail  int
	score  float64
}

// Recommend ranks qualifying zones for a vehicle type and returns the
// best one plus a runner-up.
func (uc *RouteUseCase) Recommend(ctx context.Context, vehicle domain.VehicleType) (*domain.RecommendationResult, error) {
	if !vehicle.Valid() {
		return nil, errors.ErrValidation.WithMessage(`vehicle must be "car" or "moto"`)
	}

	zones, err := uc.zoneRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	traffic, err := uc.trafficUC.GetAllTraffic(ctx, false)
	if err != nil {
		return nil, err
	}
	trafficByPoint := make(map[string]*domain.TrafficConditions, len(traffic))
	for i := range traffic {
		trafficByPoint[traffic[i].PointID] = &traffic[i]
	}

	var candidates []scoredZone
	for _, zone := range zones {
		capacity := zone.Capacity(vehicle)
		occupied := zone.Occupancy(vehicle)

		// Zones that don't serve this vehicle type, or have no free
		// spot, don't qualify.
		if capacity == 0 {
			continue
		}
		available := capacity - occupied
		if available <= 0 {
			continue
		}

		availabilityScore := float64(available) / float64(capacity)

		access := trafficByPoint[zone.NearestAccess]
		trafficScore := domain.TrafficScoreUnknown
		if access != nil {
			trafficScore = domain.TrafficScoreFor(access.State)
		}

		candidates = append(candidates, scoredZone{
			zone:   zone,
			access: access,
			avail:  available,
			score:  domain.AvailabilityWeight*availabilityScore + domain.TrafficWeight*trafficScore,
		})
	}

	if len(candidates) == 0 {
		return nil, errors.ErrNoAvailability
	}

	// Ties break on zone id so the recommendation is deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].zone.ID < candidates[j].zone.ID
	})

	best := candidates[0]

	result := &domain.RecommendationResult{
		Zone:        projectZone(best.zone, vehicle, best.avail),
		Reason:      buildReason(best),
		Score:       utils.Round2(best.score),
		VehicleType: vehicle,
		Timestamp:   time.Now(),
	}

	if best.access != nil {
		result.Access = &domain.AccessProjection{
			Road:         best.access.Road,
			State:        best.access.State,
			CurrentSpeed: best.access.CurrentSpeed,
			Congested:    best.access.Congested,
		}
	}

	if len(candidates) > 1 {
		alt := candidates[1]
		altAccess := "unknown"
		altState := domain.TrafficState("unknown")
		if alt.access != nil {
			altAccess = alt.access.Road
			altState = alt.access.State
		}
		result.Alternative = &domain.Alternative{
			Zone:        alt.zone.Name,
			Available:   alt.avail,
			Access:      altAccess,
			AccessState: altState,
		}
	}

	uc.logger.Debug("Recommendation computed",
		zap.String("vehicle", string(vehicle)),
		zap.String("zone", best.zone.ID),
		zap.Float64("score", result.Score),
		zap.Int("candidates", len(candidates)))

	return result, nil
}

func projectZone(zone *domain.Zone, vehicle domain.VehicleType, available int) domain.ZoneProjection {
	pct := domain.OccupancyPercentage(zone.Occupancy(vehicle), zone.Capacity(vehicle))
	return domain.ZoneProjection{
		ID:         zone.ID,
		Name:       zone.Name,
		Slug:       zone.Slug,
		Lat:        zone.Lat,
		Lng:        zone.Lng,
		Area:       zone.Area,
		Available:  available,
		Percentage: pct,
		Status:     domain.StatusForPercentage(pct),
	}
}

func buildReason(best scoredZone) string {
	if best.access == nil {
		return fmt.Sprintf("%s has %d free spots.", best.zone.Name, best.avail)
	}
	if best.access.Congested {
		return fmt.Sprintf("%s has %d free spots, although the access via %s has traffic.",
			best.zone.Name, best.avail, best.access.Road)
	}
	return fmt.Sprintf("%s has %d free spots and the access via %s is flowing.",
		best.zone.Name, best.avail, best.access.Road)
}
