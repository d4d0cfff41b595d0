// Package store is the widget's local persistence: a flat key-value store
// holding serialized snapshots of the catalog and cart plus the session
// token, so state survives restarts the way a browser's localStorage would.
package store

// Keys used by the widget. TokenKey matches the key the original storefront
// kept its credential under.
const (
	ProductsKey = "products"
	CartKey     = "cart"
	TokenKey    = "JWT_TOKEN"
)

// Store is a string key-value store. Get reports presence instead of
// erroring on a missing key.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}
