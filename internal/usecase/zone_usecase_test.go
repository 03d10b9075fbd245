package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
	"github.com/Santiago062004/parking-azureWeb/internal/pkg/errors"
	"github.com/Santiago062004/parking-azureWeb/internal/usecase/dto"
)

func intPtr(i int) *int { return &i }

func testZones() []*domain.Zone {
	return []*domain.Zone{
		{
			ID: "z1", Slug: "parqueadero-1", Name: "Parqueadero 1",
			CarCapacity: 50, CarOccupancy: 45,
			MotoCapacity: 20, MotoOccupancy: 10,
			Active: true,
		},
		{
			ID: "z2", Slug: "parqueadero-2", Name: "Parqueadero 2",
			CarCapacity: 30, CarOccupancy: 6,
			Active: true,
		},
	}
}

func TestZoneUseCase_List(t *testing.T) {
	ctx := context.Background()
	zoneRepo := &mockZoneRepository{}
	reportRepo := &mockReportRepository{}
	uc := NewZoneUseCase(zoneRepo, reportRepo, zap.NewNop())

	now := time.Now()
	zoneRepo.On("ListActive", ctx).Return(testZones(), nil)
	reportRepo.On("ListActive", ctx).Return([]*domain.Report{
		{ID: "r1", ZoneID: "z1", Type: domain.ReportModerateQueue, Active: true,
			CreatedAt: now, ExpiresAt: now.Add(15 * time.Minute)},
	}, nil)

	resp, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Zones, 2)

	// Campus totals combine both vehicle types of every zone.
	assert.Equal(t, 100, resp.TotalSpots)
	assert.Equal(t, 61, resp.TotalOccupied)
	assert.Equal(t, 61.0, resp.GlobalPercentage)

	// Zone 1: 55/70 combined is 78.6% which is moderate.
	z1 := resp.Zones[0]
	assert.Equal(t, domain.ZoneModerate, z1.Status)
	assert.Equal(t, 45, z1.Car.Occupancy)
	assert.Equal(t, 5, z1.Car.Available)
	assert.Equal(t, 1, z1.ActiveReports)

	// Zone 2: 6/30 is available, no reports.
	z2 := resp.Zones[1]
	assert.Equal(t, domain.ZoneAvailable, z2.Status)
	assert.Equal(t, 0, z2.ActiveReports)
}

func TestZoneUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("by id", func(t *testing.T) {
		zoneRepo := &mockZoneRepository{}
		reportRepo := &mockReportRepository{}
		uc := NewZoneUseCase(zoneRepo, reportRepo, zap.NewNop())

		zoneRepo.On("GetByID", ctx, "z1").Return(testZones()[0], nil)
		reportRepo.On("ListActiveByZone", ctx, "z1").Return([]*domain.Report{}, nil)

		zone, err := uc.Get(ctx, "z1")
		require.NoError(t, err)
		assert.Equal(t, "parqueadero-1", zone.Slug)
	})

	t.Run("falls back to slug", func(t *testing.T) {
		zoneRepo := &mockZoneRepository{}
		reportRepo := &mockReportRepository{}
		uc := NewZoneUseCase(zoneRepo, reportRepo, zap.NewNop())

		zoneRepo.On("GetByID", ctx, "parqueadero-2").Return(nil, errors.ErrZoneNotFound)
		zoneRepo.On("GetBySlug", ctx, "parqueadero-2").Return(testZones()[1], nil)
		reportRepo.On("ListActiveByZone", ctx, "z2").Return([]*domain.Report{}, nil)

		zone, err := uc.Get(ctx, "parqueadero-2")
		require.NoError(t, err)
		assert.Equal(t, "z2", zone.ID)
	})

	t.Run("not found either way", func(t *testing.T) {
		zoneRepo := &mockZoneRepository{}
		uc := NewZoneUseCase(zoneRepo, &mockReportRepository{}, zap.NewNop())

		zoneRepo.On("GetByID", ctx, "nope").Return(nil, errors.ErrZoneNotFound)
		zoneRepo.On("GetBySlug", ctx, "nope").Return(nil, errors.ErrZoneNotFound)

		_, err := uc.Get(ctx, "nope")
		assert.ErrorIs(t, err, errors.ErrZoneNotFound)
	})
}

func TestZoneUseCase_SetOccupancy(t *testing.T) {
	ctx := context.Background()

	t.Run("requires at least one field", func(t *testing.T) {
		uc := NewZoneUseCase(&mockZoneRepository{}, &mockReportRepository{}, zap.NewNop())

		_, err := uc.SetOccupancy(ctx, "z1", dto.SetOccupancyRequest{})
		assert.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("passes the update through", func(t *testing.T) {
		zoneRepo := &mockZoneRepository{}
		uc := NewZoneUseCase(zoneRepo, &mockReportRepository{}, zap.NewNop())

		updated := testZones()[0]
		updated.CarOccupancy = 10
		zoneRepo.On("SetOccupancy", ctx, "z1", repository.OccupancyUpdate{
			CarOccupancy: intPtr(10),
		}).Return(updated, nil)

		zone, err := uc.SetOccupancy(ctx, "z1", dto.SetOccupancyRequest{CarOccupancy: intPtr(10)})
		require.NoError(t, err)
		assert.Equal(t, 10, zone.Car.Occupancy)
	})

	t.Run("capacity violations surface unchanged", func(t *testing.T) {
		zoneRepo := &mockZoneRepository{}
		uc := NewZoneUseCase(zoneRepo, &mockReportRepository{}, zap.NewNop())

		zoneRepo.On("SetOccupancy", ctx, "z1", repository.OccupancyUpdate{
			CarOccupancy: intPtr(999),
		}).Return(nil, errors.ErrCapacityExceeded)

		_, err := uc.SetOccupancy(ctx, "z1", dto.SetOccupancyRequest{CarOccupancy: intPtr(999)})
		assert.ErrorIs(t, err, errors.ErrCapacityExceeded)
	})
}

func TestZoneUseCase_AdjustCarOccupancy(t *testing.T) {
	ctx := context.Background()
	zoneRepo := &mockZoneRepository{}
	uc := NewZoneUseCase(zoneRepo, &mockReportRepository{}, zap.NewNop())

	updated := testZones()[0]
	updated.CarOccupancy = 46
	zoneRepo.On("AdjustCarOccupancy", ctx, "z1", 1).Return(updated, nil)

	zone, err := uc.AdjustCarOccupancy(ctx, "z1", 1)
	require.NoError(t, err)
	assert.Equal(t, 46, zone.Car.Occupancy)
}
