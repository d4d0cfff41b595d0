package services

import (
	"context"
	"log"
	"sync"

	"shopping-widget/models"
	"shopping-widget/store"
)

// RemoteCatalog is the slice of the shop API the catalog cache needs.
type RemoteCatalog interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
	Add(ctx context.Context, product models.Product) error
}

// CatalogService owns the in-memory product list for the session. Insertion
// order is display order. Every mutation is persisted to the local store
// before the call returns.
type CatalogService struct {
	mu       sync.Mutex
	products []models.Product
	store    store.Store
	remote   RemoteCatalog
}

func NewCatalogService(s store.Store, remote RemoteCatalog) *CatalogService {
	return &CatalogService{
		products: []models.Product{},
		store:    s,
		remote:   remote,
	}
}

// SeedFromLocal loads the persisted snapshot. Missing or corrupt data seeds
// an empty catalog.
func (s *CatalogService) SeedFromLocal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, _ := s.store.Get(store.ProductsKey)
	s.products = store.DecodeProducts(raw)
}

// SeedFromRemote replaces the whole catalog with the remote one. The
// replace is atomic: on any fetch error the current contents are kept.
func (s *CatalogService) SeedFromRemote(ctx context.Context) error {
	fetched, err := s.remote.FetchAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = fetched
	s.persistLocked()
	return nil
}

// Add stores the product remotely first; the cache is only appended after
// the remote confirms, so no local entry exists without a server-side
// counterpart. The caller guarantees the id is fresh.
func (s *CatalogService) Add(ctx context.Context, product models.Product) error {
	if err := s.remote.Add(ctx, product); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
	s.persistLocked()
	return nil
}

// ToggleSelection sets the completion flag on the matching product and
// reports whether the id was known. An unknown id leaves the catalog
// untouched.
func (s *CatalogService) ToggleSelection(id string, selected bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Completed = selected
			s.persistLocked()
			return true
		}
	}
	return false
}

// Products returns a copy of the catalog in display order.
func (s *CatalogService) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Find looks a product up by id.
func (s *CatalogService) Find(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *CatalogService) persistLocked() {
	raw, err := store.EncodeProducts(s.products)
	if err != nil {
		log.Printf("Failed to encode catalog snapshot: %v", err)
		return
	}
	if err := s.store.Set(store.ProductsKey, raw); err != nil {
		log.Printf("Failed to persist catalog snapshot: %v", err)
	}
}
