package service

import (
	"context"

	"finance-engine/domain"

	"github.com/stretchr/testify/mock"
)

type MockCalculationRepository struct {
	mock.Mock
}

func (m *MockCalculationRepository) Save(ctx context.Context, calc domain.Calculation) error {
	args := m.Called(ctx, calc)
	return args.Error(0)
}

func (m *MockCalculationRepository) Recent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	args := m.Called(ctx, limit)
	calcs, _ := args.Get(0).([]domain.Calculation)
	return calcs, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
