package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
)

type trafficStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTrafficStore returns a Redis-backed snapshot store. Keys carry no
// Redis expiry: freshness is judged against QueriedAt by the usecase, so
// a stale synthetic snapshot stays readable and consistent between
// refreshes instead of vanishing.
func NewTrafficStore(redis *Redis) repository.TrafficSnapshotStore {
	return &trafficStore{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func snapshotKey(pointID string) string {
	return fmt.Sprintf("traffic:snapshot:%s", pointID)
}

func (s *trafficStore) Get(ctx context.Context, pointID string) (*domain.TrafficSnapshot, bool, error) {
	val, err := s.client.Get(ctx, snapshotKey(pointID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil // cache miss
	}
	if err != nil {
		s.logger.Error("Failed to get traffic snapshot", zap.String("point", pointID), zap.Error(err))
		return nil, false, fmt.Errorf("traffic snapshot get: %w", err)
	}

	var snap domain.TrafficSnapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		s.logger.Error("Failed to unmarshal traffic snapshot", zap.String("point", pointID), zap.Error(err))
		return nil, false, fmt.Errorf("unmarshal traffic snapshot: %w", err)
	}

	s.logger.Debug("Traffic snapshot hit", zap.String("point", pointID))
	return &snap, true, nil
}

func (s *trafficStore) Upsert(ctx context.Context, snapshot *domain.TrafficSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal traffic snapshot: %w", err)
	}

	if err := s.client.Set(ctx, snapshotKey(snapshot.PointID), data, 0).Err(); err != nil {
		s.logger.Error("Failed to upsert traffic snapshot",
			zap.String("point", snapshot.PointID),
			zap.Error(err))
		return fmt.Errorf("traffic snapshot set: %w", err)
	}

	s.logger.Debug("Traffic snapshot stored",
		zap.String("point", snapshot.PointID),
		zap.Bool("synthetic", snapshot.Synthetic))
	return nil
}
