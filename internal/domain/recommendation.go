package domain

import "time"

// Traffic score per access state, the 0.5 default also applies when no
// traffic data exists for a zone's nearest access.
const (
	TrafficScoreFluid     = 1.0
	TrafficScoreModerate  = 0.5
	TrafficScoreCongested = 0.2
	TrafficScoreUnknown   = 0.5
)

// TrafficScoreFor maps a traffic state to its score contribution.
func TrafficScoreFor(state TrafficState) float64 {
	switch state {
	case TrafficFluid:
		return TrafficScoreFluid
	case TrafficModerate:
		return TrafficScoreModerate
	case TrafficCongested:
		return TrafficScoreCongested
	default:
		return TrafficScoreUnknown
	}
}

// Final score weights: availability dominates, traffic adjusts.
const (
	AvailabilityWeight = 0.6
	TrafficWeight      = 0.4
)

// ZoneProjection is the zone slice embedded in a recommendation.
type ZoneProjection struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	Area       string     `json:"area"`
	Available  int        `json:"available"`
	Percentage float64    `json:"percentage"`
	Status     ZoneStatus `json:"status"`
}

// AccessProjection is the traffic slice embedded in a recommendation.
type AccessProjection struct {
	Road         string       `json:"road"`
	State        TrafficState `json:"state"`
	CurrentSpeed float64      `json:"current_speed"`
	Congested    bool         `json:"congested"`
}

// Alternative is the runner-up zone in a recommendation.
type Alternative struct {
	Zone        string       `json:"zone"`
	Available   int          `json:"available"`
	Access      string       `json:"access"`
	AccessState TrafficState `json:"access_state"`
}

// RecommendationResult is ephemeral, computed per request and never
// persisted.
type RecommendationResult struct {
	Zone        ZoneProjection    `json:"zone"`
	Access      *AccessProjection `json:"access,omitempty"`
	Reason      string            `json:"reason"`
	Score       float64           `json:"score"`
	Alternative *Alternative      `json:"alternative,omitempty"`
	VehicleType VehicleType       `json:"vehicle_type"`
	Timestamp   time.Time         `json:"timestamp"`
}
