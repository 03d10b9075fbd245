package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLForType(t *testing.T) {
	tests := []struct {
		reportType ReportType
		want       time.Duration
	}{
		{ReportModerateQueue, 15 * time.Minute},
		{ReportSevereCongestion, 20 * time.Minute},
		{ReportFull, 30 * time.Minute},
		{ReportSpotsAvailable, 10 * time.Minute},
		{ReportAccident, 45 * time.Minute},
		{ReportType("something_else"), 15 * time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TTLForType(tt.reportType), "type %s", tt.reportType)
	}
}

func TestReportType_Valid(t *testing.T) {
	assert.True(t, ReportAccident.Valid())
	assert.True(t, ReportSpotsAvailable.Valid())
	assert.False(t, ReportType("flooding").Valid())
	assert.False(t, ReportType("").Valid())
}

func TestReport_IsCurrentlyActive(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	accident := &Report{
		Type:      ReportAccident,
		Active:    true,
		CreatedAt: created,
		ExpiresAt: created.Add(TTLForType(ReportAccident)),
	}

	// Accident reports stay active for 45 minutes.
	assert.True(t, accident.IsCurrentlyActive(created.Add(44*time.Minute)))
	assert.False(t, accident.IsCurrentlyActive(created.Add(46*time.Minute)))

	spots := &Report{
		Type:      ReportSpotsAvailable,
		Active:    true,
		CreatedAt: created,
		ExpiresAt: created.Add(TTLForType(ReportSpotsAvailable)),
	}

	// spots_available expires after 10 minutes.
	assert.True(t, spots.IsCurrentlyActive(created.Add(9*time.Minute)))
	assert.False(t, spots.IsCurrentlyActive(created.Add(11*time.Minute)))

	// Deactivation wins regardless of expiry.
	spots.Active = false
	assert.False(t, spots.IsCurrentlyActive(created.Add(time.Minute)))
}
