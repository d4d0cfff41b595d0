// Package client talks to the remote shop service. The service is an opaque
// REST collaborator: the widget forwards credentials, holds the bearer token
// it gets back, and reads or writes products with it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shopping-widget/models"
	"shopping-widget/store"
)

// TokenSource yields the current session credential, if any is held.
type TokenSource interface {
	Token() (string, bool)
}

// StoreTokenSource reads the credential from the local store.
type StoreTokenSource struct {
	Store store.Store
}

func (s StoreTokenSource) Token() (string, bool) {
	return s.Store.Get(store.TokenKey)
}

// ShopClient is the authenticated HTTP client for the remote shop service.
type ShopClient struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

func NewShopClient(baseURL string, timeout time.Duration, tokens TokenSource) *ShopClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ShopClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
	}
}

// Register creates an account. The service answers errors with a plain
// message body, which is surfaced verbatim.
func (c *ShopClient) Register(ctx context.Context, email, username, password string) error {
	body := map[string]string{"email": email, "username": username, "password": password}
	resp, err := c.post(ctx, "/auth/register", body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServiceError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}
	return nil
}

// Login exchanges credentials for a bearer token. A success response that is
// not JSON is a failure: the service answers login errors with plain text.
func (c *ShopClient) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	resp, err := c.post(ctx, "/auth/login", body, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ServiceError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &ProtocolError{Reason: "login response is not JSON: " + strings.TrimSpace(string(raw))}
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Token == "" {
		return "", &ProtocolError{Reason: "login response carries no token"}
	}
	return payload.Token, nil
}

// FetchAll retrieves the full catalog. The body must be a JSON array of
// products; anything else is a protocol violation rather than an empty
// catalog.
func (c *ShopClient) FetchAll(ctx context.Context) ([]models.Product, error) {
	token, ok := c.tokens.Token()
	if !ok || token == "" {
		return nil, &AuthError{Reason: "no token held"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/product/getAll", nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, &ProtocolError{Reason: "catalog payload is not a product sequence"}
	}
	if products == nil {
		return nil, &ProtocolError{Reason: "catalog payload is null, expected a sequence"}
	}
	return products, nil
}

// Add stores a product remotely. The side effect is purely remote; callers
// update the catalog cache only after Add succeeds.
func (c *ShopClient) Add(ctx context.Context, product models.Product) error {
	token, ok := c.tokens.Token()
	if !ok || token == "" {
		return &AuthError{Reason: "no token held"}
	}

	resp, err := c.post(ctx, "/product/add", product, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *ShopClient) post(ctx context.Context, path string, body interface{}, token string) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return resp, nil
}

// checkStatus maps a non-success status to the error taxonomy: credential
// rejections become AuthError, everything else ServiceError.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &AuthError{Reason: fmt.Sprintf("remote rejected credential with status %d", resp.StatusCode)}
	}
	return &ServiceError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
}

// readMessage extracts an error message from a response body, preferring a
// JSON {message} shape and falling back to the raw text.
func readMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}
