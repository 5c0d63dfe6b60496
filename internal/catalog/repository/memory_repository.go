package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/ridloal/storefront-demo/internal/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// memoryProductRepository menyimpan katalog demo di memori.
// Urutan insert dipertahankan karena dipakai untuk urutan tampilan.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]int // index ke slice products
}

func NewMemoryProductRepository() ProductRepository {
	products := seedProducts()
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &memoryProductRepository{products: products, byID: byID}
}

func (r *memoryProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[idx]
	return &p, nil
}

func (r *memoryProductRepository) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Product{}
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProductRepository) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := []domain.Product{}
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func fptr(v float64) *float64 { return &v }

// seedProducts mengisi 12 produk demo, 4 kategori.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:               "1",
			Name:             "Wireless Bluetooth Headphones",
			Description:      "Premium noise-canceling wireless headphones with 30-hour battery life",
			Price:            199.99,
			DistributorPrice: fptr(149.99),
			Category:         "Electronics",
			ImageURL:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Stock:            45,
			Rating:           4.5,
			Reviews:          128,
		},
		{
			ID:               "2",
			Name:             "Smart Watch Series X",
			Description:      "Advanced smartwatch with health monitoring, GPS, and 7-day battery",
			Price:            399.99,
			DistributorPrice: fptr(299.99),
			Category:         "Electronics",
			ImageURL:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Stock:            23,
			Rating:           4.7,
			Reviews:          89,
		},
		{
			ID:               "3",
			Name:             "Wireless Charging Pad",
			Description:      "Fast wireless charging pad compatible with all Qi-enabled devices",
			Price:            49.99,
			DistributorPrice: fptr(34.99),
			Category:         "Electronics",
			ImageURL:         "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400",
			Stock:            67,
			Rating:           4.2,
			Reviews:          156,
		},
		{
			ID:               "4",
			Name:             "Ergonomic Office Chair",
			Description:      "Premium ergonomic chair with lumbar support and adjustable height",
			Price:            299.99,
			DistributorPrice: fptr(229.99),
			Category:         "Home & Garden",
			ImageURL:         "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400",
			Stock:            15,
			Rating:           4.6,
			Reviews:          73,
		},
		{
			ID:               "5",
			Name:             "LED Desk Lamp",
			Description:      "Adjustable LED desk lamp with wireless charging base and touch control",
			Price:            89.99,
			DistributorPrice: fptr(64.99),
			Category:         "Home & Garden",
			ImageURL:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
			Stock:            34,
			Rating:           4.4,
			Reviews:          91,
		},
		{
			ID:               "6",
			Name:             "Indoor Plant Set",
			Description:      "Collection of 3 low-maintenance indoor plants perfect for home offices",
			Price:            79.99,
			DistributorPrice: fptr(59.99),
			Category:         "Home & Garden",
			ImageURL:         "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400",
			Stock:            28,
			Rating:           4.3,
			Reviews:          45,
		},
		{
			ID:               "7",
			Name:             "Yoga Mat Premium",
			Description:      "Non-slip premium yoga mat with carrying strap and alignment lines",
			Price:            59.99,
			DistributorPrice: fptr(39.99),
			Category:         "Sports & Outdoor",
			ImageURL:         "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			Stock:            56,
			Rating:           4.5,
			Reviews:          203,
		},
		{
			ID:               "8",
			Name:             "Water Bottle Insulated",
			Description:      "Stainless steel insulated water bottle keeps drinks cold for 24 hours",
			Price:            34.99,
			DistributorPrice: fptr(24.99),
			Category:         "Sports & Outdoor",
			ImageURL:         "https://images.unsplash.com/photo-1523362628745-0c100150b504?w=400",
			Stock:            89,
			Rating:           4.6,
			Reviews:          167,
		},
		{
			ID:               "9",
			Name:             "Resistance Bands Set",
			Description:      "Professional resistance bands set with door anchor and workout guide",
			Price:            29.99,
			DistributorPrice: fptr(19.99),
			Category:         "Sports & Outdoor",
			ImageURL:         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400",
			Stock:            73,
			Rating:           4.4,
			Reviews:          124,
		},
		{
			ID:               "10",
			Name:             "Classic Leather Wallet",
			Description:      "Genuine leather wallet with RFID blocking and multiple card slots",
			Price:            69.99,
			DistributorPrice: fptr(49.99),
			Category:         "Fashion",
			ImageURL:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Stock:            41,
			Rating:           4.5,
			Reviews:          87,
		},
		{
			ID:               "11",
			Name:             "Polarized Sunglasses",
			Description:      "UV400 protection polarized sunglasses with lightweight titanium frame",
			Price:            149.99,
			DistributorPrice: fptr(109.99),
			Category:         "Fashion",
			ImageURL:         "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400",
			Stock:            32,
			Rating:           4.7,
			Reviews:          96,
		},
		{
			ID:               "12",
			Name:             "Canvas Backpack",
			Description:      "Vintage canvas backpack with laptop compartment and multiple pockets",
			Price:            89.99,
			DistributorPrice: fptr(64.99),
			Category:         "Fashion",
			ImageURL:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Stock:            19,
			Rating:           4.3,
			Reviews:          54,
		},
	}
}
