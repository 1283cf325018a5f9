package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhlee0214/wakemeup/internal/domain"
	"github.com/jhlee0214/wakemeup/internal/domain/repository"
)

// MockTransitDataSource - mock for TransitDataSource
type MockTransitDataSource struct {
	mock.Mock
}

func (m *MockTransitDataSource) FindStopsNear(ctx context.Context, q repository.StopQuery, creds domain.Credentials) ([]domain.Stop, error) {
	args := m.Called(ctx, q, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stop), args.Error(1)
}

func (m *MockTransitDataSource) FindRoutesForStop(ctx context.Context, stopID int64, mode domain.TransportMode, creds domain.Credentials) ([]domain.Route, error) {
	args := m.Called(ctx, stopID, mode, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

// MockCacheRepository - mock for CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
