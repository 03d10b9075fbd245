package dto

// SubmitReportRequest creates a crowdsourced report. SubmitterID is an
// anonymous client identifier used only for rate limiting.
type SubmitReportRequest struct {
	ZoneID      string   `json:"zone_id" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Lat         *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng         *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	SubmitterID *string  `json:"submitter_id,omitempty" validate:"omitempty,min=1,max=100"`
}

// SetOccupancyRequest updates a zone's counters and/or active flag.
// Omitted fields are left untouched.
type SetOccupancyRequest struct {
	CarOccupancy  *int  `json:"car_occupancy,omitempty" validate:"omitempty,min=0"`
	MotoOccupancy *int  `json:"moto_occupancy,omitempty" validate:"omitempty,min=0"`
	Active        *bool `json:"active,omitempty"`
}

// AdjustOccupancyRequest applies a signed car-occupancy delta, clamped
// server-side to [0, capacity]. Used by the geofence tracker.
type AdjustOccupancyRequest struct {
	Delta int `json:"delta" validate:"required,ne=0"`
}
