package services

import (
	"log"
	"sync"

	"shopping-widget/models"
	"shopping-widget/store"
)

// CartService owns the cart lines: at most one line per product id, in the
// order products first entered the cart. Every mutation is persisted before
// the call returns. The total is recomputed on demand rather than kept as a
// running sum, so it cannot drift across many small updates.
type CartService struct {
	mu    sync.Mutex
	items []models.CartItem
	store store.Store
}

func NewCartService(s store.Store) *CartService {
	return &CartService{
		items: []models.CartItem{},
		store: s,
	}
}

// SeedFromLocal loads the persisted cart, re-binding lines to catalog
// entries via find. Missing or corrupt data seeds an empty cart.
func (s *CartService) SeedFromLocal(find func(id string) (models.Product, bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, _ := s.store.Get(store.CartKey)
	s.items = store.DecodeCart(raw, find)
}

// AddToCart merges into the existing line for the product or appends a new
// one with quantity 1.
func (s *CartService) AddToCart(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			s.persistLocked()
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
	s.persistLocked()
}

// Clear empties the cart. Checkout and explicit clear both come through
// here; they differ only in the confirmation the caller shows.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []models.CartItem{}
	s.persistLocked()
}

// TotalPrice sums price times quantity over all lines; 0 for an empty cart.
func (s *CartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// Items returns a copy of the cart lines in order.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Size is the number of distinct lines.
func (s *CartService) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// View renders the cart for the presentation layer. The checkout affordance
// is shown iff the cart is non-empty; it is computed here, never stored.
func (s *CartService) View() models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLineView, 0, len(s.items))
	for _, item := range s.items {
		lines = append(lines, models.CartLineView{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}
	return models.CartView{
		Items:        lines,
		TotalPrice:   s.totalLocked(),
		ShowCheckout: len(s.items) > 0,
	}
}

func (s *CartService) totalLocked() float64 {
	var total float64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *CartService) persistLocked() {
	raw, err := store.EncodeCart(s.items)
	if err != nil {
		log.Printf("Failed to encode cart snapshot: %v", err)
		return
	}
	if err := s.store.Set(store.CartKey, raw); err != nil {
		log.Printf("Failed to persist cart snapshot: %v", err)
	}
}
