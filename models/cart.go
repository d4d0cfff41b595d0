package models

// CartItem is one cart line: a product reference plus how many of it the
// user wants. Quantity is the only cart-local mutable field.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the price contribution of this line.
func (ci CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
