package controllers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shopping-widget/models"
	"shopping-widget/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

type fakeRemote struct {
	catalog []models.Product
	added   []models.Product
	err     error
}

func (f *fakeRemote) FetchAll(ctx context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func (f *fakeRemote) Add(ctx context.Context, product models.Product) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, product)
	return nil
}

type fakeAuthClient struct {
	token string
	err   error
}

func (f *fakeAuthClient) Register(ctx context.Context, email, username, password string) error {
	return f.err
}

func (f *fakeAuthClient) Login(ctx context.Context, username, password string) (string, error) {
	return f.token, f.err
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

// widgetFixture wires the controllers against in-memory collaborators.
type widgetFixture struct {
	store   *memStore
	remote  *fakeRemote
	catalog *services.CatalogService
	cart    *services.CartService
	router  *gin.Engine
}

func newWidgetFixture(t *testing.T) *widgetFixture {
	t.Helper()

	s := newMemStore()
	remote := &fakeRemote{}
	catalog := services.NewCatalogService(s, remote)
	cart := services.NewCartService(s)

	catalogCtrl := &CatalogController{Catalog: catalog}
	cartCtrl := &CartController{Catalog: catalog, Cart: cart}
	widgetCtrl := &WidgetController{Store: s, Catalog: catalog, Cart: cart}

	router := gin.New()
	router.GET("/widget/state", widgetCtrl.GetState)
	router.GET("/products", catalogCtrl.GetProducts)
	router.POST("/products", catalogCtrl.AddProduct)
	router.POST("/products/:id/toggle", catalogCtrl.ToggleSelection)
	router.POST("/catalog/refresh", catalogCtrl.Refresh)
	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddToCart)
	router.POST("/cart/checkout", cartCtrl.Checkout)
	router.DELETE("/cart", cartCtrl.ClearCart)

	return &widgetFixture{store: s, remote: remote, catalog: catalog, cart: cart, router: router}
}

func (f *widgetFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}
