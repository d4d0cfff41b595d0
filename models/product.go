package models

import "time"

// Product mirrors the remote shop service's product entity. JSON keys follow
// the remote API contract (camelCase), which is also the shape persisted in
// the local snapshot.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
