package services

import (
	"context"
	"errors"
	"time"

	"shopping-widget/models"
)

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(key string) (string, bool) {
	value, ok := m.data[key]
	return value, ok
}

func (m *memStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(key string) error {
	delete(m.data, key)
	return nil
}

// fakeRemote serves a canned catalog and records adds; fail makes every
// call error.
type fakeRemote struct {
	catalog []models.Product
	added   []models.Product
	fail    bool
}

var errRemoteDown = errors.New("remote down")

func (f *fakeRemote) FetchAll(ctx context.Context) ([]models.Product, error) {
	if f.fail {
		return nil, errRemoteDown
	}
	return f.catalog, nil
}

func (f *fakeRemote) Add(ctx context.Context, product models.Product) error {
	if f.fail {
		return errRemoteDown
	}
	f.added = append(f.added, product)
	return nil
}

func product(id, name string, price float64) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		Category:  "drinks",
		Price:     price,
		CreatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}
