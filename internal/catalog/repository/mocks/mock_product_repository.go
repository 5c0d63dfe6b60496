package mocks

import (
	"context"

	"github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
