package tracking

import (
	"time"

	"github.com/Santiago062004/parking-azureWeb/internal/pkg/utils"
)

// Geofencing constants: campus membership and per-zone radii in meters,
// plus the stationary detection thresholds.
const (
	CampusCenterLat = 6.2
	CampusCenterLng = -75.579
	CampusRadiusM   = 300.0
	ZoneRadiusM     = 80.0

	// StationarySpeedMS is 5 km/h expressed in m/s.
	StationarySpeedMS = 5.0 / 3.6
	StationaryHold    = 90 * time.Second
)

// ZoneGeometry is the slice of a zone the tracker needs.
type ZoneGeometry struct {
	ID  string
	Lat float64
	Lng float64
}

// Sample is one position fix. Speed is nil when the device cannot measure
// it; unknown speed counts as "not stationary".
type Sample struct {
	Lat      float64
	Lng      float64
	Speed    *float64 // m/s
	Accuracy float64
	At       time.Time
}

// EventKind discriminates tracker events.
type EventKind int

const (
	// EventZoneEntered asks for a +1 car-occupancy delta on Zone.
	EventZoneEntered EventKind = iota
	// EventZoneExited asks for a -1 car-occupancy delta on Zone.
	EventZoneExited
	// EventStuckOutside fires once when the session has been stationary
	// near campus, outside every zone, for the stationary hold.
	EventStuckOutside
)

// Event is a side effect the consumer must dispatch. The transition
// function only computes events; it performs no I/O itself.
type Event struct {
	Kind   EventKind
	ZoneID string
	At     time.Time
}

// State is the renderable tracker state after a sample.
type State struct {
	Lat             float64
	Lng             float64
	InsideCampus    bool
	CurrentZoneID   string // empty when outside every zone
	StationarySince *time.Time
	ShowStuckPrompt bool
}

// Tracker is the geofencing state machine for one client session. It is
// single-consumer: one position stream, no internal locking.
type Tracker struct {
	zones []ZoneGeometry

	prevZoneID      string
	stationarySince *time.Time
	state           State
}

// NewTracker builds a tracker over the given zone geometries. Zones are
// assumed non-overlapping; when they do overlap, containment is resolved
// first-match-wins in the order given here.
func NewTracker(zones []ZoneGeometry) *Tracker {
	return &Tracker{zones: zones}
}

// State returns the last computed state.
func (t *Tracker) State() State {
	return t.state
}

// AcknowledgePrompt clears the stuck prompt after the consumer handled it.
func (t *Tracker) AcknowledgePrompt() {
	t.state.ShowStuckPrompt = false
}

// OnSample advances the state machine by one position fix and returns the
// events to dispatch.
func (t *Tracker) OnSample(s Sample) (State, []Event) {
	var events []Event

	distCampus := utils.HaversineDistance(s.Lat, s.Lng, CampusCenterLat, CampusCenterLng)
	insideCampus := distCampus <= CampusRadiusM

	zoneID := t.containingZone(s.Lat, s.Lng)

	// Zone-edge detection: one delta per edge, previous id updated
	// unconditionally every sample.
	if zoneID != t.prevZoneID {
		if t.prevZoneID != "" {
			events = append(events, Event{Kind: EventZoneExited, ZoneID: t.prevZoneID, At: s.At})
		}
		if zoneID != "" {
			events = append(events, Event{Kind: EventZoneEntered, ZoneID: zoneID, At: s.At})
		}
		t.prevZoneID = zoneID
	}

	// Stationary detection only arms while inside campus but outside
	// every zone. Unknown speed fails open toward not prompting.
	stationary := insideCampus && zoneID == "" &&
		s.Speed != nil && *s.Speed < StationarySpeedMS

	showPrompt := t.state.ShowStuckPrompt
	if stationary {
		if t.stationarySince == nil {
			since := s.At
			t.stationarySince = &since
		} else if s.At.Sub(*t.stationarySince) >= StationaryHold {
			events = append(events, Event{Kind: EventStuckOutside, At: s.At})
			showPrompt = true
			// Timer clears after firing; it must re-arm before firing
			// again.
			t.stationarySince = nil
		}
	} else {
		t.stationarySince = nil
	}

	t.state = State{
		Lat:             s.Lat,
		Lng:             s.Lng,
		InsideCampus:    insideCampus,
		CurrentZoneID:   zoneID,
		StationarySince: t.stationarySince,
		ShowStuckPrompt: showPrompt,
	}

	return t.state, events
}

func (t *Tracker) containingZone(lat, lng float64) string {
	for _, z := range t.zones {
		if utils.HaversineDistance(lat, lng, z.Lat, z.Lng) <= ZoneRadiusM {
			return z.ID
		}
	}
	return ""
}
