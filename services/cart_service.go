package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"preorder/cache"
	"preorder/entity"
	"preorder/pkg/apperr"
)

// CartService owns the in-memory cart of every session. The store only carries a copy
// across navigation; its errors are logged and otherwise ignored. A session idle for longer
// than idleTTL is dropped from memory and rehydrated from the store on its next request.
type CartService struct {
	mu      sync.Mutex
	carts   map[string]*cartEntry
	store   cache.CartStore
	catalog MealLookup
	orders  *OrderService

	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type cartEntry struct {
	cart    *entity.Cart
	touched time.Time
}

const defaultCartTTL = 2 * time.Hour

func NewCartService(store cache.CartStore, catalog MealLookup, orders *OrderService, idleTTL time.Duration) *CartService {
	if store == nil {
		store = cache.NopStore{}
	}
	if idleTTL <= 0 {
		idleTTL = defaultCartTTL
	}
	return &CartService{
		carts:   make(map[string]*cartEntry),
		store:   store,
		catalog: catalog,
		orders:  orders,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// session returns the live cart, rehydrating it from the store on first sight.
// Caller holds s.mu.
func (s *CartService) session(ctx context.Context, sessionID string) *entity.Cart {
	now := s.now()
	s.sweep(now)
	if e, ok := s.carts[sessionID]; ok && now.Sub(e.touched) <= s.idleTTL {
		e.touched = now
		return e.cart
	}
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cart %s: rehydrate: %v", sessionID, err)
		}
		c = &entity.Cart{}
	}
	s.carts[sessionID] = &cartEntry{cart: c, touched: now}
	return c
}

// sweep drops idle sessions, at most once per sweep interval. Caller holds s.mu.
func (s *CartService) sweep(now time.Time) {
	every := s.idleTTL / 2
	if every > time.Minute {
		every = time.Minute
	}
	if now.Sub(s.lastSweep) < every {
		return
	}
	s.lastSweep = now
	for id, e := range s.carts {
		if now.Sub(e.touched) > s.idleTTL {
			delete(s.carts, id)
		}
	}
}

func (s *CartService) persist(ctx context.Context, sessionID string, c *entity.Cart) {
	if err := s.store.Set(ctx, sessionID, c); err != nil {
		log.Printf("cart %s: persist: %v", sessionID, err)
	}
}

func snapshot(c *entity.Cart) *entity.Cart {
	return &entity.Cart{Lines: append([]entity.CartLine(nil), c.Lines...)}
}

func checkSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return apperr.Validation("cart session is required")
	}
	return nil
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	if err := checkSession(sessionID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.session(ctx, sessionID)), nil
}

// Add puts qty of the meal into the cart, merging with an existing line.
func (s *CartService) Add(ctx context.Context, sessionID, mealID string, qty int) (*entity.Cart, error) {
	if err := checkSession(sessionID); err != nil {
		return nil, err
	}
	if qty == 0 {
		qty = 1
	}
	meal, err := s.catalog.Get(mealID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.session(ctx, sessionID)
	if err := c.AddQuantity(meal, qty); err != nil {
		return nil, err
	}
	s.persist(ctx, sessionID, c)
	return snapshot(c), nil
}

// SetQuantity: qty <= 0 removes the line.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, mealID string, qty int) (*entity.Cart, error) {
	if err := checkSession(sessionID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.session(ctx, sessionID)
	if err := c.SetQuantity(mealID, qty); err != nil {
		return nil, err
	}
	s.persist(ctx, sessionID, c)
	return snapshot(c), nil
}

func (s *CartService) Remove(ctx context.Context, sessionID, mealID string) (*entity.Cart, error) {
	if err := checkSession(sessionID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.session(ctx, sessionID)
	c.Remove(mealID)
	s.persist(ctx, sessionID, c)
	return snapshot(c), nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := checkSession(sessionID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	if err := s.store.Delete(ctx, sessionID); err != nil {
		log.Printf("cart %s: clear: %v", sessionID, err)
	}
	return nil
}

// Checkout submits the session cart and clears it once the order is stored.
func (s *CartService) Checkout(ctx context.Context, sessionID string, info CustomerInfo) (*entity.Order, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperr.Validation("cart is empty")
	}

	lines := make([]LineInput, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, LineInput{MealID: l.MealID, Quantity: l.Quantity})
	}
	order, err := s.orders.Submit(ctx, info, lines)
	if err != nil {
		return nil, err
	}
	if err := s.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return order, nil
}

// Reorder loads a past order's items into the cart at today's catalog prices.
// Meals no longer on the menu are skipped and reported.
func (s *CartService) Reorder(ctx context.Context, sessionID string, o *entity.Order) (*entity.Cart, []string, error) {
	if err := checkSession(sessionID); err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.session(ctx, sessionID)

	skipped := make([]string, 0)
	for _, it := range o.Items {
		meal, err := s.catalog.Get(it.MealID)
		if err != nil {
			skipped = append(skipped, it.MealID)
			continue
		}
		if err := c.AddQuantity(meal, it.Quantity); err != nil {
			skipped = append(skipped, it.MealID)
		}
	}
	s.persist(ctx, sessionID, c)
	return snapshot(c), skipped, nil
}
