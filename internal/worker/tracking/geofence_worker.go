package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/tracking"
	"github.com/Santiago062004/parking-azureWeb/internal/worker"
)

const dispatchTimeout = 3 * time.Second

// session pairs one client's tracker with its last-activity timestamp.
type session struct {
	tracker  *tracking.Tracker
	lastSeen time.Time
}

// GeofenceWorker consumes the position-sample stream and runs one
// geofence state machine per client session. Occupancy deltas go out as
// fire-and-forget calls; stuck prompts are published back on a stream for
// the client to pick up.
type GeofenceWorker struct {
	*worker.BaseWorker
	streamRepo      repository.StreamRepository
	zoneRepo        repository.ZoneRepository
	occupancyClient repository.OccupancyClient
	consumerName    string
	sessionTTL      time.Duration

	sessions map[string]*session
	zones    []tracking.ZoneGeometry
}

func NewGeofenceWorker(
	streamRepo repository.StreamRepository,
	zoneRepo repository.ZoneRepository,
	occupancyClient repository.OccupancyClient,
	consumerGroup string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *GeofenceWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &GeofenceWorker{
		BaseWorker:      worker.NewBaseWorker("geofence-tracking", consumerGroup, logger),
		streamRepo:      streamRepo,
		zoneRepo:        zoneRepo,
		occupancyClient: occupancyClient,
		consumerName:    consumerName,
		sessionTTL:      sessionTTL,
		sessions:        make(map[string]*session),
	}
}

func (w *GeofenceWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting GeofenceWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.loadZones(ctx); err != nil {
		return fmt.Errorf("failed to load zone geometries: %w", err)
	}

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamTrackingPositions, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamTrackingPositions, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	evictTicker := time.NewTicker(time.Minute)
	defer evictTicker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-evictTicker.C:
			w.evictIdleSessions()

		case msg, ok := <-msgChan:
			if !ok {
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *GeofenceWorker) loadZones(ctx context.Context) error {
	zones, err := w.zoneRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	w.zones = make([]tracking.ZoneGeometry, 0, len(zones))
	for _, z := range zones {
		w.zones = append(w.zones, tracking.ZoneGeometry{ID: z.ID, Lat: z.Lat, Lng: z.Lng})
	}

	w.Logger().Info("Zone geometries loaded", zap.Int("count", len(w.zones)))
	return nil
}

func (w *GeofenceWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.PositionSampleEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to unmarshal position sample",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	if event.SessionID == "" {
		logger.Warn("Position sample without session id", zap.String("message_id", msg.ID))
		w.ack(ctx, msg.ID)
		return
	}

	sess, ok := w.sessions[event.SessionID]
	if !ok {
		sess = &session{tracker: tracking.NewTracker(w.zones)}
		w.sessions[event.SessionID] = sess
	}
	sess.lastSeen = time.Now()

	state, events := sess.tracker.OnSample(tracking.Sample{
		Lat:      event.Lat,
		Lng:      event.Lng,
		Speed:    event.Speed,
		Accuracy: event.Accuracy,
		At:       event.Time(),
	})

	for _, ev := range events {
		w.dispatch(ctx, event.SessionID, state, ev)
	}

	w.ack(ctx, msg.ID)
}

// dispatch sends one tracker event out. Occupancy deltas are best-effort
// telemetry: failures are logged and dropped, never retried, and the
// goroutines do not block shutdown.
func (w *GeofenceWorker) dispatch(ctx context.Context, sessionID string, state tracking.State, ev tracking.Event) {
	logger := w.Logger()

	switch ev.Kind {
	case tracking.EventZoneEntered:
		w.adjustOccupancy(ev.ZoneID, +1)

	case tracking.EventZoneExited:
		w.adjustOccupancy(ev.ZoneID, -1)

	case tracking.EventStuckOutside:
		prompt := domain.StuckPromptEvent{
			SessionID: sessionID,
			Lat:       state.Lat,
			Lng:       state.Lng,
			Since:     ev.At.Add(-tracking.StationaryHold),
			FiredAt:   ev.At,
		}
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamTrackingPrompts, prompt); err != nil {
			logger.Warn("Failed to publish stuck prompt",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}
}

func (w *GeofenceWorker) adjustOccupancy(zoneID string, delta int) {
	logger := w.Logger()

	go func() {
		// Detached from the consume loop: an in-flight delta is
		// discarded on shutdown instead of blocking it.
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := w.occupancyClient.AdjustCarOccupancy(ctx, zoneID, delta); err != nil {
			logger.Debug("Occupancy delta dropped",
				zap.String("zone_id", zoneID),
				zap.Int("delta", delta),
				zap.Error(err))
		}
	}()
}

func (w *GeofenceWorker) evictIdleSessions() {
	cutoff := time.Now().Add(-w.sessionTTL)
	evicted := 0
	for id, sess := range w.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(w.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		w.Logger().Debug("Idle tracking sessions evicted", zap.Int("count", evicted))
	}
}

func (w *GeofenceWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamTrackingPositions, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message", zap.String("message_id", messageID), zap.Error(err))
	}
}
