package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	cartDomain "github.com/ridloal/storefront-demo/internal/cart/domain"
	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	catalogRepo "github.com/ridloal/storefront-demo/internal/catalog/repository"
	"github.com/ridloal/storefront-demo/internal/platform/config"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

// CartSummary adalah potret cart untuk satu role: harga selalu diturunkan ulang
// dari role saat summary dibuat.
type CartSummary struct {
	Items      []cartDomain.CartItem `json:"items"`
	ItemCount  int                   `json:"item_count"`
	TotalPrice float64               `json:"total_price"`
}

type CartService interface {
	AddItem(ctx context.Context, sessionID, productID string, quantity int) error
	RemoveItem(sessionID, productID string)
	UpdateQuantity(sessionID, productID string, quantity int)
	ClearCart(sessionID string)
	GetCart(sessionID string, role catalogDomain.Role) CartSummary
	DropCart(sessionID string)
	EvictIdleCarts()
}

type cartEntry struct {
	cart       *cartDomain.Cart
	lastActive time.Time
}

type cartServiceImpl struct {
	mu          sync.RWMutex
	carts       map[string]*cartEntry
	productRepo catalogRepo.ProductRepository
	scheduler   *cron.Cron
	idleTTL     time.Duration
}

// NewCartService membuat manager cart per session. Cart tidak pernah dipersist;
// janitor berbasis cron membuang cart yang idle melewati TTL.
func NewCartService(productRepo catalogRepo.ProductRepository, cfg config.CartConfig) CartService {
	s := &cartServiceImpl{
		carts:       make(map[string]*cartEntry),
		productRepo: productRepo,
		scheduler:   cron.New(),
		idleTTL:     cfg.IdleTTL,
	}
	s.initJanitor(cfg.JanitorSpec)
	return s
}

func (s *cartServiceImpl) initJanitor(spec string) {
	_, err := s.scheduler.AddFunc(spec, func() {
		s.EvictIdleCarts()
	})
	if err != nil {
		logger.Error("Cart janitor: invalid cron spec, janitor disabled", err)
		return
	}
	s.scheduler.Start()
	logger.Info(fmt.Sprintf("Cart janitor initialized with spec '%s' and idle TTL %v", spec, s.idleTTL))
}

// entry mengambil (atau membuat) cart milik session. Caller harus pegang write lock.
func (s *cartServiceImpl) entry(sessionID string) *cartEntry {
	e, ok := s.carts[sessionID]
	if !ok {
		e = &cartEntry{cart: cartDomain.NewCart()}
		s.carts[sessionID] = e
	}
	e.lastActive = time.Now()
	return e
}

// AddItem me-resolve produk dari katalog lalu menambahkannya ke cart session.
// Product ID yang tidak dikenal adalah no-op diam-diam, bukan error.
func (s *cartServiceImpl) AddItem(ctx context.Context, sessionID, productID string, quantity int) error {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			return nil
		}
		logger.Error("AddItem: failed to resolve product "+productID, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sessionID).cart.AddItem(*product, quantity)
	return nil
}

func (s *cartServiceImpl) RemoveItem(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sessionID).cart.RemoveItem(productID)
}

func (s *cartServiceImpl) UpdateQuantity(sessionID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sessionID).cart.UpdateQuantity(productID, quantity)
}

func (s *cartServiceImpl) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(sessionID).cart.Clear()
}

func (s *cartServiceImpl) GetCart(sessionID string, role catalogDomain.Role) CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.entry(sessionID).cart
	items := make([]cartDomain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	total, _ := cart.Total(role).Round(2).Float64()
	return CartSummary{
		Items:      items,
		ItemCount:  cart.ItemCount(),
		TotalPrice: total,
	}
}

// DropCart membuang cart session sepenuhnya, dipakai saat logout.
func (s *cartServiceImpl) DropCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// EvictIdleCarts membuang cart yang tidak disentuh melewati idle TTL.
func (s *cartServiceImpl) EvictIdleCarts() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for sessionID, e := range s.carts {
		if e.lastActive.Before(cutoff) {
			delete(s.carts, sessionID)
			evicted++
		}
	}
	if evicted > 0 {
		logger.Info(fmt.Sprintf("Cart janitor: evicted %d idle cart(s)", evicted))
	}
}
