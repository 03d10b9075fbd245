package repository

import (
	"context"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
)

// TrafficSnapshotStore keeps exactly one live snapshot per access point.
// Upserts are last-writer-wins; concurrent refreshes race harmlessly since
// each value is a self-consistent pair from a single fetch.
type TrafficSnapshotStore interface {
	// Get returns the stored snapshot for a point and whether one exists.
	Get(ctx context.Context, pointID string) (*domain.TrafficSnapshot, bool, error)

	// Upsert overwrites the snapshot for its point.
	Upsert(ctx context.Context, snapshot *domain.TrafficSnapshot) error
}

// TrafficProvider is the external road-traffic API. Failures here are
// recovered by the caller via synthetic data and must never surface.
type TrafficProvider interface {
	// FlowSegment fetches live speeds for the road segment nearest to the
	// given coordinates.
	FlowSegment(ctx context.Context, lat, lng float64) (*domain.SpeedPair, error)

	// Configured reports whether the provider has an API key. When false
	// every fetch is skipped and callers go straight to synthetic data.
	Configured() bool
}
