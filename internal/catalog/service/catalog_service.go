package service

import (
	"context"
	"time"

	"github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/catalog/repository"
	"github.com/ridloal/storefront-demo/internal/platform/config"
	"github.com/ridloal/storefront-demo/internal/platform/delay"
)

// Latensi buatan per operasi, meniru round-trip backend.
const (
	listDelay       = 500 * time.Millisecond
	getDelay        = 300 * time.Millisecond
	categoryDelay   = 400 * time.Millisecond
	searchDelay     = 400 * time.Millisecond
	categoriesDelay = 400 * time.Millisecond
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductDetails(ctx context.Context, productID string) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type catalogServiceImpl struct {
	repo    repository.ProductRepository
	mockCfg config.MockConfig
}

// NewCatalogService membungkus repository katalog di balik boundary async,
// supaya backend sungguhan bisa menggantikan mock tanpa mengubah call site.
func NewCatalogService(repo repository.ProductRepository, mockCfg config.MockConfig) CatalogService {
	return &catalogServiceImpl{repo: repo, mockCfg: mockCfg}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := delay.Simulate(ctx, listDelay, s.mockCfg.LatencyPercent); err != nil {
		return nil, err
	}
	return s.repo.ListProducts(ctx)
}

func (s *catalogServiceImpl) GetProductDetails(ctx context.Context, productID string) (*domain.Product, error) {
	if err := delay.Simulate(ctx, getDelay, s.mockCfg.LatencyPercent); err != nil {
		return nil, err
	}
	return s.repo.GetProductByID(ctx, productID)
}

func (s *catalogServiceImpl) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if err := delay.Simulate(ctx, categoryDelay, s.mockCfg.LatencyPercent); err != nil {
		return nil, err
	}
	return s.repo.ListProductsByCategory(ctx, category)
}

func (s *catalogServiceImpl) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if err := delay.Simulate(ctx, searchDelay, s.mockCfg.LatencyPercent); err != nil {
		return nil, err
	}
	return s.repo.SearchProducts(ctx, query)
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	if err := delay.Simulate(ctx, categoriesDelay, s.mockCfg.LatencyPercent); err != nil {
		return nil, err
	}
	return s.repo.ListCategories(ctx)
}
