package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/greenlegacy-ng/greenlegacy/internal/domain"
)

// MockTreeService mocks the tree.Service interface
type MockTreeService struct {
	mock.Mock
}

func (m *MockTreeService) List(ctx context.Context, filter domain.TreeFilter) ([]domain.Tree, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tree), args.Error(1)
}

func (m *MockTreeService) Get(ctx context.Context, id string) (*domain.Tree, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockTreeService) StatusCounts(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockTreeService) Create(ctx context.Context, t domain.Tree) (*domain.Tree, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockTreeService) Update(ctx context.Context, id string, patch domain.TreePatch) (*domain.Tree, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockTreeService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDonationService mocks the donation.Service interface
type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) Create(ctx context.Context, req domain.DonationRequest) (*domain.DonationReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationReceipt), args.Error(1)
}

func (m *MockDonationService) List(ctx context.Context, limit int) ([]domain.Donation, int, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Donation), args.Int(1), args.Error(2)
}

func (m *MockDonationService) Tiers(ctx context.Context) []domain.DonationTier {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DonationTier)
}

func (m *MockDonationService) Tier(ctx context.Context, id string) (*domain.DonationTier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationTier), args.Error(1)
}

func (m *MockDonationService) Impact(ctx context.Context, amount int64) (*domain.ImpactEstimate, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImpactEstimate), args.Error(1)
}

// MockStatsService mocks the stats.Service interface
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) domain.TreeStats {
	args := m.Called(ctx)
	return args.Get(0).(domain.TreeStats)
}

func (m *MockStatsService) GetLiveStats(ctx context.Context) (*domain.TreeStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreeStats), args.Error(1)
}

func (m *MockStatsService) RecordActivity(ctx context.Context, entry domain.ActivityEvent) {
	m.Called(ctx, entry)
}

func (m *MockStatsService) Invalidate() {
	m.Called()
}
