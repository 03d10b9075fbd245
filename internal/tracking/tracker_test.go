package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Coordinates around the campus center (6.2, -75.579). One degree of
// latitude is ~111km, so 0.001 deg is ~111m: inside the 300m campus
// radius but outside any 80m zone radius.
var (
	zoneA = ZoneGeometry{ID: "zone-a", Lat: 6.2010, Lng: -75.579}
	zoneB = ZoneGeometry{ID: "zone-b", Lat: 6.1990, Lng: -75.579}

	insideA       = [2]float64{6.2010, -75.579}
	insideB       = [2]float64{6.1990, -75.579}
	campusNoZone  = [2]float64{6.2000, -75.579}
	outsideCampus = [2]float64{6.2100, -75.579}
	testZones     = []ZoneGeometry{zoneA, zoneB}
	baseTime      = time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)
	speedCrawling = 0.5 // m/s, below the 5 km/h threshold
	speedDriving  = 8.0 // m/s, well above the threshold
)

func sample(pos [2]float64, speed *float64, at time.Time) Sample {
	return Sample{Lat: pos[0], Lng: pos[1], Speed: speed, Accuracy: 10, At: at}
}

func ptr(v float64) *float64 { return &v }

func TestTracker_ZoneEntryAndExit(t *testing.T) {
	tr := NewTracker(testZones)

	// Approach from outside campus: no zone events.
	state, events := tr.OnSample(sample(outsideCampus, ptr(speedDriving), baseTime))
	assert.Empty(t, events)
	assert.False(t, state.InsideCampus)
	assert.Empty(t, state.CurrentZoneID)

	// Entering zone A emits exactly one entry event.
	state, events = tr.OnSample(sample(insideA, ptr(speedDriving), baseTime.Add(time.Minute)))
	require.Len(t, events, 1)
	assert.Equal(t, EventZoneEntered, events[0].Kind)
	assert.Equal(t, "zone-a", events[0].ZoneID)
	assert.True(t, state.InsideCampus)
	assert.Equal(t, "zone-a", state.CurrentZoneID)

	// Staying inside the same zone emits nothing.
	_, events = tr.OnSample(sample(insideA, ptr(speedCrawling), baseTime.Add(2*time.Minute)))
	assert.Empty(t, events)

	// Leaving the zone but staying on campus emits one exit event.
	state, events = tr.OnSample(sample(campusNoZone, ptr(speedDriving), baseTime.Add(3*time.Minute)))
	require.Len(t, events, 1)
	assert.Equal(t, EventZoneExited, events[0].Kind)
	assert.Equal(t, "zone-a", events[0].ZoneID)
	assert.Empty(t, state.CurrentZoneID)
}

func TestTracker_DirectZoneTransition(t *testing.T) {
	tr := NewTracker(testZones)

	tr.OnSample(sample(insideA, ptr(speedDriving), baseTime))

	// A direct A to B transition emits exit A then entry B, keeping the
	// occupancy deltas balanced.
	_, events := tr.OnSample(sample(insideB, ptr(speedDriving), baseTime.Add(time.Minute)))
	require.Len(t, events, 2)
	assert.Equal(t, EventZoneExited, events[0].Kind)
	assert.Equal(t, "zone-a", events[0].ZoneID)
	assert.Equal(t, EventZoneEntered, events[1].Kind)
	assert.Equal(t, "zone-b", events[1].ZoneID)
}

func TestTracker_StuckPromptFiresOnceAfterHold(t *testing.T) {
	tr := NewTracker(testZones)

	// Stationary on campus, outside every zone.
	state, events := tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime))
	assert.Empty(t, events)
	require.NotNil(t, state.StationarySince)
	assert.Equal(t, baseTime, *state.StationarySince)

	// Still short of the 90 second hold.
	_, events = tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime.Add(60*time.Second)))
	assert.Empty(t, events)

	// Hold reached: the prompt fires and the timer clears.
	state, events = tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime.Add(90*time.Second)))
	require.Len(t, events, 1)
	assert.Equal(t, EventStuckOutside, events[0].Kind)
	assert.True(t, state.ShowStuckPrompt)
	assert.Nil(t, state.StationarySince)

	// The next stationary sample re-arms instead of firing again.
	_, events = tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime.Add(120*time.Second)))
	assert.Empty(t, events)

	// A second fire needs another full hold from the re-arm point.
	_, events = tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime.Add(210*time.Second)))
	require.Len(t, events, 1)
	assert.Equal(t, EventStuckOutside, events[0].Kind)
}

func TestTracker_StationaryTimerClears(t *testing.T) {
	t.Run("movement clears the timer", func(t *testing.T) {
		tr := NewTracker(testZones)

		tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime))

		state, _ := tr.OnSample(sample(campusNoZone, ptr(speedDriving), baseTime.Add(30*time.Second)))
		assert.Nil(t, state.StationarySince)

		// Slowing down again restarts the hold from scratch.
		_, events := tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime.Add(60*time.Second)))
		assert.Empty(t, events)
		_, events = tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime.Add(140*time.Second)))
		assert.Empty(t, events)
	})

	t.Run("entering a zone clears the timer", func(t *testing.T) {
		tr := NewTracker(testZones)

		tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime))

		state, events := tr.OnSample(sample(insideA, ptr(speedCrawling), baseTime.Add(30*time.Second)))
		require.Len(t, events, 1)
		assert.Equal(t, EventZoneEntered, events[0].Kind)
		assert.Nil(t, state.StationarySince)
	})

	t.Run("unknown speed never arms", func(t *testing.T) {
		tr := NewTracker(testZones)

		state, _ := tr.OnSample(sample(campusNoZone, nil, baseTime))
		assert.Nil(t, state.StationarySince)

		state, events := tr.OnSample(sample(campusNoZone, nil, baseTime.Add(120*time.Second)))
		assert.Nil(t, state.StationarySince)
		assert.Empty(t, events)
	})

	t.Run("inside a zone never arms", func(t *testing.T) {
		tr := NewTracker(testZones)

		tr.OnSample(sample(insideA, ptr(speedCrawling), baseTime))
		state, events := tr.OnSample(sample(insideA, ptr(speedCrawling), baseTime.Add(120*time.Second)))
		assert.Nil(t, state.StationarySince)
		assert.Empty(t, events)
	})
}

func TestTracker_AcknowledgePrompt(t *testing.T) {
	tr := NewTracker(testZones)

	tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime))
	state, _ := tr.OnSample(sample(campusNoZone, ptr(speedCrawling), baseTime.Add(90*time.Second)))
	require.True(t, state.ShowStuckPrompt)

	// The prompt flag persists across samples until acknowledged.
	state, _ = tr.OnSample(sample(campusNoZone, ptr(speedDriving), baseTime.Add(100*time.Second)))
	assert.True(t, state.ShowStuckPrompt)

	tr.AcknowledgePrompt()
	assert.False(t, tr.State().ShowStuckPrompt)
}
