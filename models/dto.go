package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
}

type ToggleSelectionRequest struct {
	Selected bool `json:"selected"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// CartLineView is a cart line prepared for rendering.
type CartLineView struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// CartView is the renderable cart: lines, the recomputed total and the
// checkout affordance, which is purely a function of cart size.
type CartView struct {
	Items        []CartLineView `json:"items"`
	TotalPrice   float64        `json:"total_price"`
	ShowCheckout bool           `json:"show_checkout"`
}

// WidgetState is everything the presentation layer needs for one render.
type WidgetState struct {
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username,omitempty"`
	Products      []Product `json:"products"`
	Cart          CartView  `json:"cart"`
}
