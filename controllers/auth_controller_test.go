package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-widget/client"
	"shopping-widget/store"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("remote-side-secret"))
	require.NoError(t, err)
	return signed
}

func authRouter(s *memStore, auth AuthClient) *gin.Engine {
	ctrl := &AuthController{Client: auth, Store: s}
	router := gin.New()
	router.POST("/auth/register", ctrl.Register)
	router.POST("/auth/login", ctrl.Login)
	router.POST("/auth/logout", ctrl.Logout)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginStoresToken(t *testing.T) {
	s := newMemStore()
	token := signedToken(t, "bugra")
	router := authRouter(s, &fakeAuthClient{token: token})

	w := postJSON(router, "/auth/login", `{"username":"bugra","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bugra"`)

	held, ok := s.Get(store.TokenKey)
	require.True(t, ok)
	assert.Equal(t, token, held)
}

func TestLoginFailureStoresNothing(t *testing.T) {
	s := newMemStore()
	router := authRouter(s, &fakeAuthClient{err: &client.ServiceError{Status: 400, Message: "bad credentials"}})

	w := postJSON(router, "/auth/login", `{"username":"bugra","password":"wrong"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "bad credentials")

	_, ok := s.Get(store.TokenKey)
	assert.False(t, ok)
}

func TestLogoutRemovesToken(t *testing.T) {
	s := newMemStore()
	require.NoError(t, s.Set(store.TokenKey, "abc"))
	router := authRouter(s, &fakeAuthClient{})

	w := postJSON(router, "/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, ok := s.Get(store.TokenKey)
	assert.False(t, ok)
}

func TestRegisterSurfacesRemoteMessage(t *testing.T) {
	router := authRouter(newMemStore(), &fakeAuthClient{
		err: &client.ServiceError{Status: 400, Message: "username already taken"},
	})

	w := postJSON(router, "/auth/register", `{"email":"a@b.c","username":"bugra","password":"secret"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "username already taken")
}

func TestRegisterSuccess(t *testing.T) {
	router := authRouter(newMemStore(), &fakeAuthClient{})

	w := postJSON(router, "/auth/register", `{"email":"a@b.c","username":"bugra","password":"secret"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestWidgetStateReflectsSession(t *testing.T) {
	f := newWidgetFixture(t)

	w := f.do(http.MethodGet, "/widget/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	require.NoError(t, f.store.Set(store.TokenKey, signedToken(t, "bugra")))

	w = f.do(http.MethodGet, "/widget/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), `"username":"bugra"`)
}
