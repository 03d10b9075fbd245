package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
)

// TrafficUseCase shields the external traffic provider behind a
// per-access-point snapshot cache and degrades to synthetic data when the
// provider is unreachable or unconfigured. No operation here is fatal:
// the worst outcome is serving synthetic speeds.
type TrafficUseCase struct {
	store    repository.TrafficSnapshotStore
	provider repository.TrafficProvider
	logger   *zap.Logger
	cacheTTL time.Duration
}

func NewTrafficUseCase(
	store repository.TrafficSnapshotStore,
	provider repository.TrafficProvider,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *TrafficUseCase {
	return &TrafficUseCase{
		store:    store,
		provider: provider,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// GetTraffic resolves traffic conditions for one access point through the
// cache -> provider -> synthetic fallback chain.
func (uc *TrafficUseCase) GetTraffic(ctx context.Context, pointID string, forceRefresh bool) (*domain.TrafficConditions, error) {
	access, ok := domain.AccessPointByID(pointID)
	if !ok {
		return nil, errors.ErrAccessPointNotFound
	}

	now := time.Now()

	// 1. Fresh snapshot in the cache wins, unless forced.
	if !forceRefresh {
		snap, found, err := uc.store.Get(ctx, pointID)
		if err != nil {
			// Cache trouble is recoverable: fall through to the provider.
			uc.logger.Warn("Traffic cache read failed", zap.String("point", pointID), zap.Error(err))
		} else if found && now.Sub(snap.QueriedAt) < uc.cacheTTL {
			conditions := snap.Conditions(access.Road)
			return &conditions, nil
		}
	}

	// 2. Live fetch from the provider.
	if uc.provider.Configured() {
		speeds, err := uc.provider.FlowSegment(ctx, access.Lat, access.Lng)
		if err == nil {
			snap := &domain.TrafficSnapshot{
				PointID:       pointID,
				CurrentSpeed:  speeds.CurrentSpeed,
				FreeFlowSpeed: speeds.FreeFlowSpeed,
				Confidence:    1.0,
				Synthetic:     false,
				QueriedAt:     now,
			}
			uc.upsert(ctx, snap)

			conditions := snap.Conditions(access.Road)
			return &conditions, nil
		}
		uc.logger.Warn("Traffic provider fetch failed, serving synthetic data",
			zap.String("point", pointID),
			zap.Error(err))
	}

	// 3. Synthetic fallback. Stored so reads within the TTL reuse the
	// same values consistently.
	speeds := domain.SyntheticSpeedFor(pointID)
	snap := &domain.TrafficSnapshot{
		PointID:       pointID,
		CurrentSpeed:  speeds.CurrentSpeed,
		FreeFlowSpeed: speeds.FreeFlowSpeed,
		Confidence:    1.0,
		Synthetic:     true,
		QueriedAt:     now,
	}
	uc.upsert(ctx, snap)

	conditions := snap.Conditions(access.Road)
	return &conditions, nil
}

// GetAllTraffic fans out over all configured access points concurrently.
// Each point resolves independently through the fallback chain, so one
// point's failure never affects another's result.
func (uc *TrafficUseCase) GetAllTraffic(ctx context.Context, forceRefresh bool) ([]domain.TrafficConditions, error) {
	results := make([]domain.TrafficConditions, len(domain.AccessPoints))

	var wg sync.WaitGroup
	for i, access := range domain.AccessPoints {
		wg.Add(1)
		go func(i int, pointID string) {
			defer wg.Done()
			conditions, err := uc.GetTraffic(ctx, pointID, forceRefresh)
			if err != nil {
				// Only reachable for unknown points; configured points
				// always resolve via synthetic data.
				uc.logger.Error("Unexpected traffic resolution failure",
					zap.String("point", pointID),
					zap.Error(err))
				return
			}
			results[i] = *conditions
		}(i, access.ID)
	}
	wg.Wait()

	return results, nil
}

func (uc *TrafficUseCase) upsert(ctx context.Context, snap *domain.TrafficSnapshot) {
	// Last-writer-wins; a failed upsert only costs cache reuse.
	if err := uc.store.Upsert(ctx, snap); err != nil {
		uc.logger.Warn("Failed to store traffic snapshot",
			zap.String("point", snap.PointID),
			zap.Error(err))
	}
}
