package repository

import (
	"context"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
)

// StreamRepository abstracts the Redis Streams transport used for position
// samples and stuck prompts.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream,
	// tolerating an already-existing group.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream delivers messages through a channel until ctx is
	// cancelled.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream JSON-encodes data and appends it to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}

// OccupancyClient is the tracker's remote occupancy-mutation endpoint.
// Calls are best-effort telemetry: the tracker logs and drops failures.
type OccupancyClient interface {
	AdjustCarOccupancy(ctx context.Context, zoneID string, delta int) error
}
