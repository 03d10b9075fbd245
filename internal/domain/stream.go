package domain

import "time"

// Stream names shared with position publishers and prompt consumers.
const (
	StreamTrackingPositions = "stream:tracking:positions"
	StreamTrackingPrompts   = "stream:tracking:prompts"
)

// StreamMessage is a raw message read from a Redis stream.
type StreamMessage struct {
	ID   string
	Data string
}

// PositionSampleEvent is one GPS fix published by a client session.
// Speed is nil when the device cannot measure it.
type PositionSampleEvent struct {
	SessionID string   `json:"session_id"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Speed     *float64 `json:"speed,omitempty"` // m/s
	Accuracy  float64  `json:"accuracy"`
	Timestamp int64    `json:"timestamp"` // unix millis
}

// Time returns the sample timestamp as time.Time.
func (e *PositionSampleEvent) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// StuckPromptEvent asks the client to offer an external-conditions report:
// the session sat still near campus, outside every zone, for the stationary
// window.
type StuckPromptEvent struct {
	SessionID string    `json:"session_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Since     time.Time `json:"since"`
	FiredAt   time.Time `json:"fired_at"`
}
