package dto

import (
	"time"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
)

// VehicleMetrics is the derived capacity/occupancy view for one vehicle
// type.
type VehicleMetrics struct {
	Capacity   int     `json:"capacity"`
	Occupancy  int     `json:"occupancy"`
	Available  int     `json:"available"`
	Percentage float64 `json:"percentage"`
}

// ReportSummary is the report slice embedded in zone responses.
type ReportSummary struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ZoneWithMetrics is one zone enriched with derived metrics.
type ZoneWithMetrics struct {
	ID            string            `json:"id"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Lat           float64           `json:"lat"`
	Lng           float64           `json:"lng"`
	Area          string            `json:"area"`
	NearestAccess string            `json:"nearest_access"`
	Active        bool              `json:"active"`
	Car           VehicleMetrics    `json:"car"`
	Moto          VehicleMetrics    `json:"moto"`
	Status        domain.ZoneStatus `json:"status"`
	ActiveReports int               `json:"active_reports"`
	Reports       []ReportSummary   `json:"reports,omitempty"`
}

// ZoneListResponse is the campus-wide zone view with aggregate totals.
type ZoneListResponse struct {
	Zones            []ZoneWithMetrics `json:"zones"`
	TotalSpots       int               `json:"total_spots"`
	TotalOccupied    int               `json:"total_occupied"`
	GlobalPercentage float64           `json:"global_percentage"`
}

// NewVehicleMetrics derives the per-vehicle view from raw counters.
func NewVehicleMetrics(occupancy, capacity int) VehicleMetrics {
	return VehicleMetrics{
		Capacity:   capacity,
		Occupancy:  occupancy,
		Available:  capacity - occupancy,
		Percentage: domain.OccupancyPercentage(occupancy, capacity),
	}
}

// NewZoneWithMetrics builds the enriched zone view. The zone status is
// derived from the combined car+moto percentage.
func NewZoneWithMetrics(zone *domain.Zone, reports []*domain.Report) ZoneWithMetrics {
	combined := domain.OccupancyPercentage(
		zone.CarOccupancy+zone.MotoOccupancy,
		zone.CarCapacity+zone.MotoCapacity,
	)

	summaries := make([]ReportSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, ReportSummary{
			ID:         r.ID,
			Type:       string(r.Type),
			Confidence: r.Confidence,
			CreatedAt:  r.CreatedAt,
			ExpiresAt:  r.ExpiresAt,
		})
	}

	return ZoneWithMetrics{
		ID:            zone.ID,
		Slug:          zone.Slug,
		Name:          zone.Name,
		Lat:           zone.Lat,
		Lng:           zone.Lng,
		Area:          zone.Area,
		NearestAccess: zone.NearestAccess,
		Active:        zone.Active,
		Car:           NewVehicleMetrics(zone.CarOccupancy, zone.CarCapacity),
		Moto:          NewVehicleMetrics(zone.MotoOccupancy, zone.MotoCapacity),
		Status:        domain.StatusForPercentage(combined),
		ActiveReports: len(reports),
		Reports:       summaries,
	}
}
