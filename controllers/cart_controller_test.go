package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-widget/models"
)

func decodeResponse(t *testing.T, body []byte) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func cartViewFromData(t *testing.T, data interface{}) models.CartView {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	var view models.CartView
	require.NoError(t, json.Unmarshal(raw, &view))
	return view
}

func TestAddToCartUnknownProduct(t *testing.T) {
	f := newWidgetFixture(t)

	w := f.do(http.MethodPost, "/cart/items", `{"product_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartFlow(t *testing.T) {
	f := newWidgetFixture(t)
	require.NoError(t, f.catalog.Add(context.Background(), product("p1", "Latte", 10)))
	require.NoError(t, f.catalog.Add(context.Background(), product("p2", "Mocha", 5)))

	f.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	f.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	w := f.do(http.MethodPost, "/cart/items", `{"product_id":"p2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w.Body.Bytes())
	view := cartViewFromData(t, resp.Data)

	require.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 1, view.Items[1].Quantity)
	assert.Equal(t, 25.0, view.TotalPrice)
	assert.True(t, view.ShowCheckout)
}

func TestCheckoutAndClearShareEffectNotMessage(t *testing.T) {
	f := newWidgetFixture(t)
	require.NoError(t, f.catalog.Add(context.Background(), product("p1", "Latte", 10)))

	f.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	w := f.do(http.MethodPost, "/cart/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)

	checkout := decodeResponse(t, w.Body.Bytes())
	assert.Equal(t, "Your purchase was successful!", checkout.Message)
	assert.Equal(t, 0.0, cartViewFromData(t, checkout.Data).TotalPrice)
	assert.Equal(t, 0, f.cart.Size())

	f.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	w = f.do(http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	cleared := decodeResponse(t, w.Body.Bytes())
	assert.Equal(t, "Your cart has been cleared", cleared.Message)
	assert.Equal(t, 0, f.cart.Size())
}

func TestGetCartEmpty(t *testing.T) {
	f := newWidgetFixture(t)

	w := f.do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	view := cartViewFromData(t, decodeResponse(t, w.Body.Bytes()).Data)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.TotalPrice)
	assert.False(t, view.ShowCheckout)
}
