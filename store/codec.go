package store

import (
	"encoding/json"

	"shopping-widget/models"
)

// Snapshot codecs. Decoding never fails: a missing or malformed value yields
// an empty collection so a corrupted store cannot break startup.

func EncodeProducts(products []models.Product) (string, error) {
	raw, err := json.Marshal(products)
	return string(raw), err
}

func DecodeProducts(raw string) []models.Product {
	var products []models.Product
	if json.Unmarshal([]byte(raw), &products) != nil || products == nil {
		return []models.Product{}
	}
	return products
}

func EncodeCart(items []models.CartItem) (string, error) {
	raw, err := json.Marshal(items)
	return string(raw), err
}

// DecodeCart re-binds each line to the catalog entry with the same product
// id, so lines keep referring to catalog state rather than a stale copy.
// Lines whose product the catalog no longer knows keep the snapshot copy.
// Lines with a non-positive quantity are dropped as corrupt.
func DecodeCart(raw string, find func(id string) (models.Product, bool)) []models.CartItem {
	var snapshot []models.CartItem
	if json.Unmarshal([]byte(raw), &snapshot) != nil || snapshot == nil {
		return []models.CartItem{}
	}

	items := make([]models.CartItem, 0, len(snapshot))
	for _, line := range snapshot {
		if line.Quantity < 1 || line.Product.ID == "" {
			continue
		}
		if find != nil {
			if product, ok := find(line.Product.ID); ok {
				line.Product = product
			}
		}
		items = append(items, line)
	}
	return items
}
