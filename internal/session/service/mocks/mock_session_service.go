package mocks

import (
	"context"

	"github.com/ridloal/storefront-demo/internal/session/domain"
	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*domain.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*domain.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionService) SwitchToGuest(ctx context.Context) (*domain.AuthResponse, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.(*domain.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) Current(ctx context.Context) (*domain.UserSession, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*domain.UserSession), args.Error(1)
	}
	return nil, args.Error(1)
}
