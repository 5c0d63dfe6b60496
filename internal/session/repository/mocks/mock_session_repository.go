package mocks

import (
	"context"

	"github.com/ridloal/storefront-demo/internal/session/domain"
	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session *domain.UserSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(ctx context.Context) (*domain.UserSession, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*domain.UserSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
