package domain

import (
	"math"
	"time"
)

// TrafficState is the three-way condition of a monitored road segment.
type TrafficState string

const (
	TrafficFluid     TrafficState = "fluid"
	TrafficModerate  TrafficState = "moderate"
	TrafficCongested TrafficState = "congested"
)

// AccessPoint is a monitored road segment feeding into campus.
type AccessPoint struct {
	ID   string  `json:"id"`
	Road string  `json:"road"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// AccessPoints lists the monitored campus accesses. Order is stable and
// also determines fan-out order in GetAllTraffic.
var AccessPoints = []AccessPoint{
	{ID: "vegas", Road: "Av. Las Vegas", Lat: 6.202, Lng: -75.577},
	{ID: "cra49", Road: "Cra 49 / Regional", Lat: 6.202, Lng: -75.581},
}

// AccessPointByID returns the configured access point, if monitored.
func AccessPointByID(id string) (AccessPoint, bool) {
	for _, ap := range AccessPoints {
		if ap.ID == id {
			return ap, true
		}
	}
	return AccessPoint{}, false
}

// SpeedPair is a current/free-flow speed measurement in km/h.
type SpeedPair struct {
	CurrentSpeed  float64 `json:"current_speed"`
	FreeFlowSpeed float64 `json:"free_flow_speed"`
}

// syntheticSpeeds are the deterministic fallback values served when the
// external provider is unreachable or unconfigured. They model typical
// mid-morning conditions per access.
var syntheticSpeeds = map[string]SpeedPair{
	"vegas": {CurrentSpeed: 35, FreeFlowSpeed: 50}, // fluid
	"cra49": {CurrentSpeed: 18, FreeFlowSpeed: 45}, // congested
}

var defaultSyntheticSpeed = SpeedPair{CurrentSpeed: 30, FreeFlowSpeed: 50}

// SyntheticSpeedFor returns the fixed fallback speeds for an access point.
func SyntheticSpeedFor(pointID string) SpeedPair {
	if sp, ok := syntheticSpeeds[pointID]; ok {
		return sp
	}
	return defaultSyntheticSpeed
}

// TrafficSnapshot is the single live measurement per access point,
// overwritten in place on refresh (never accumulated as history).
type TrafficSnapshot struct {
	PointID       string    `json:"point_id"`
	CurrentSpeed  float64   `json:"current_speed"`
	FreeFlowSpeed float64   `json:"free_flow_speed"`
	Confidence    float64   `json:"confidence"`
	Synthetic     bool      `json:"synthetic"`
	QueriedAt     time.Time `json:"queried_at"`
}

// TrafficConditions is the derived view of a snapshot served to consumers.
type TrafficConditions struct {
	PointID       string       `json:"point_id"`
	Road          string       `json:"road"`
	CurrentSpeed  float64      `json:"current_speed"`
	FreeFlowSpeed float64      `json:"free_flow_speed"`
	Ratio         float64      `json:"ratio"`
	State         TrafficState `json:"state"`
	Congested     bool         `json:"congested"`
	QueriedAt     time.Time    `json:"queried_at"`
	IsMock        bool         `json:"is_mock"`
}

// DeriveTrafficState computes the three-way state, the rounded speed ratio
// and the coarse congested flag from a speed pair.
//
// The boolean is true whenever the state is moderate OR congested: both
// tiers share the 0.70 cutoff. That coarseness is intentional, it is the
// binary signal used by recommendation rationales.
func DeriveTrafficState(currentSpeed, freeFlowSpeed float64) (state TrafficState, ratio float64, congested bool) {
	r := 1.0
	if freeFlowSpeed > 0 {
		r = currentSpeed / freeFlowSpeed
	}

	switch {
	case r >= 0.70:
		state = TrafficFluid
	case r >= 0.50:
		state = TrafficModerate
	default:
		state = TrafficCongested
	}

	return state, math.Round(r*100) / 100, r < 0.70
}

// Conditions derives the consumer view from a stored snapshot.
func (s *TrafficSnapshot) Conditions(road string) TrafficConditions {
	state, ratio, congested := DeriveTrafficState(s.CurrentSpeed, s.FreeFlowSpeed)
	return TrafficConditions{
		PointID:       s.PointID,
		Road:          road,
		CurrentSpeed:  s.CurrentSpeed,
		FreeFlowSpeed: s.FreeFlowSpeed,
		Ratio:         ratio,
		State:         state,
		Congested:     congested,
		QueriedAt:     s.QueriedAt,
		IsMock:        s.Synthetic,
	}
}
