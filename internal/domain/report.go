package domain

import "time"

// ReportType is the closed set of crowdsourced condition reports.
type ReportType string

const (
	ReportModerateQueue    ReportType = "moderate_queue"
	ReportSevereCongestion ReportType = "severe_congestion"
	ReportFull             ReportType = "full"
	ReportSpotsAvailable   ReportType = "spots_available"
	ReportAccident         ReportType = "accident"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportModerateQueue, ReportSevereCongestion, ReportFull,
		ReportSpotsAvailable, ReportAccident:
		return true
	}
	return false
}

// reportTTL holds the validity window per report type. Critical reports
// live longer so they keep influencing recommendations.
var reportTTL = map[ReportType]time.Duration{
	ReportModerateQueue:    15 * time.Minute,
	ReportSevereCongestion: 20 * time.Minute,
	ReportFull:             30 * time.Minute,
	ReportSpotsAvailable:   10 * time.Minute,
	ReportAccident:         45 * time.Minute,
}

// defaultReportTTL applies to types outside the table.
const defaultReportTTL = 15 * time.Minute

// TTLForType returns the validity window for a report type.
func TTLForType(t ReportType) time.Duration {
	if ttl, ok := reportTTL[t]; ok {
		return ttl
	}
	return defaultReportTTL
}

// Report is a user-submitted, unverified observation about a zone.
// ExpiresAt is computed once at creation and never mutated; only Active
// may change afterwards (manual deactivation).
type Report struct {
	ID          string     `json:"id" db:"id"`
	ZoneID      string     `json:"zone_id" db:"zone_id"`
	Type        ReportType `json:"type" db:"type"`
	Lat         *float64   `json:"lat,omitempty" db:"lat"`
	Lng         *float64   `json:"lng,omitempty" db:"lng"`
	SubmitterID *string    `json:"submitter_id,omitempty" db:"submitter_id"`
	Confidence  float64    `json:"confidence" db:"confidence"`
	Active      bool       `json:"active" db:"active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at" db:"expires_at"`

	// Denormalized zone fields for list responses.
	ZoneName string `json:"zone_name,omitempty" db:"zone_name"`
	ZoneSlug string `json:"zone_slug,omitempty" db:"zone_slug"`
}

// IsCurrentlyActive is the derived liveness condition evaluated at read
// time: soft-delete flag set and not yet expired.
func (r *Report) IsCurrentlyActive(now time.Time) bool {
	return r.Active && now.Before(r.ExpiresAt)
}
