package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Santiago062004/parking-azureWeb/internal/domain"
	"github.com/Santiago062004/parking-azureWeb/internal/domain/repository"
)

type mockZoneRepository struct {
	mock.Mock
}

func (m *mockZoneRepository) ListActive(ctx context.Context) ([]*domain.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Zone), args.Error(1)
}

func (m *mockZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *mockZoneRepository) GetBySlug(ctx context.Context, slug string) (*domain.Zone, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *mockZoneRepository) SetOccupancy(ctx context.Context, id string, update repository.OccupancyUpdate) (*domain.Zone, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *mockZoneRepository) AdjustCarOccupancy(ctx context.Context, id string, delta int) (*domain.Zone, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) CreateWithRateLimit(
	ctx context.Context,
	report *domain.Report,
	limit int,
	window time.Duration,
	sideEffect repository.ReportSideEffect,
) (*domain.Report, error) {
	args := m.Called(ctx, report, limit, window, sideEffect)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *mockReportRepository) ListActive(ctx context.Context) ([]*domain.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

func (m *mockReportRepository) ListActiveByZone(ctx context.Context, zoneID string) ([]*domain.Report, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

func (m *mockReportRepository) Feed(ctx context.Context, limit int) ([]*domain.Report, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

func (m *mockReportRepository) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTrafficStore struct {
	mock.Mock
}

func (m *mockTrafficStore) Get(ctx context.Context, pointID string) (*domain.TrafficSnapshot, bool, error) {
	args := m.Called(ctx, pointID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.TrafficSnapshot), args.Bool(1), args.Error(2)
}

func (m *mockTrafficStore) Upsert(ctx context.Context, snapshot *domain.TrafficSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type mockTrafficProvider struct {
	mock.Mock
}

func (m *mockTrafficProvider) FlowSegment(ctx context.Context, lat, lng float64) (*domain.SpeedPair, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpeedPair), args.Error(1)
}

func (m *mockTrafficProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
