package domain

import (
	"math"
	"time"
)

// VehicleType selects which capacity/occupancy pair of a zone applies.
type VehicleType string

const (
	VehicleCar  VehicleType = "car"
	VehicleMoto VehicleType = "moto"
)

func (v VehicleType) Valid() bool {
	return v == VehicleCar || v == VehicleMoto
}

// ZoneStatus is the four-level occupancy status shown to users.
type ZoneStatus string

const (
	ZoneAvailable ZoneStatus = "available"
	ZoneModerate  ZoneStatus = "moderate"
	ZoneCritical  ZoneStatus = "critical"
	ZoneFull      ZoneStatus = "full"
)

// Zone is a physical parking area with separate car/moto counters.
// Capacity is immutable after creation; occupancy is mutated only through
// the clamped conditional-update primitives on the zone repository.
type Zone struct {
	ID            string    `json:"id" db:"id"`
	Slug          string    `json:"slug" db:"slug"`
	Name          string    `json:"name" db:"name"`
	Lat           float64   `json:"lat" db:"lat"`
	Lng           float64   `json:"lng" db:"lng"`
	Area          string    `json:"area" db:"area"`
	NearestAccess string    `json:"nearest_access" db:"nearest_access"`
	CarCapacity   int       `json:"car_capacity" db:"car_capacity"`
	CarOccupancy  int       `json:"car_occupancy" db:"car_occupancy"`
	MotoCapacity  int       `json:"moto_capacity" db:"moto_capacity"`
	MotoOccupancy int       `json:"moto_occupancy" db:"moto_occupancy"`
	Active        bool      `json:"active" db:"active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Capacity returns the capacity for the given vehicle type.
func (z *Zone) Capacity(v VehicleType) int {
	if v == VehicleMoto {
		return z.MotoCapacity
	}
	return z.CarCapacity
}

// Occupancy returns the occupancy counter for the given vehicle type.
func (z *Zone) Occupancy(v VehicleType) int {
	if v == VehicleMoto {
		return z.MotoOccupancy
	}
	return z.CarOccupancy
}

// OccupancyPercentage returns occupancy as a percentage rounded to one
// decimal place. Zones without capacity for a vehicle type report 0.
func OccupancyPercentage(occupied, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return math.Round(float64(occupied)/float64(capacity)*1000) / 10
}

// StatusForPercentage maps an occupancy percentage to the four-level status.
// Thresholds are inclusive lower bounds and this is the single place where
// they are defined.
func StatusForPercentage(pct float64) ZoneStatus {
	switch {
	case pct >= 100:
		return ZoneFull
	case pct >= 90:
		return ZoneCritical
	case pct >= 70:
		return ZoneModerate
	default:
		return ZoneAvailable
	}
}
