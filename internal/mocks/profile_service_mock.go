package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/clink-app/clink-backend/internal/domain"
	"github.com/clink-app/clink-backend/internal/dto"
	"github.com/clink-app/clink-backend/internal/service"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) Save(ctx context.Context, userID uuid.UUID, req dto.SaveProfileRequest) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) CheckUsername(ctx context.Context, username string, excluding *uuid.UUID) (dto.Availability, error) {
	args := m.Called(ctx, username, excluding)
	return args.Get(0).(dto.Availability), args.Error(1)
}

func (m *MockProfileService) Subscribe(obs service.ProfileObserver) {
	m.Called(obs)
}
