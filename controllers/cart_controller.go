package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopping-widget/models"
	"shopping-widget/services"
)

type CartController struct {
	Catalog *services.CatalogService
	Cart    *services.CartService
}

// GetCart godoc
// @Summary Get cart
// @Description Get cart lines, the recomputed total and the checkout affordance
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    ctrl.Cart.View(),
	})
}

// AddToCart godoc
// @Summary Add to cart
// @Description Add one unit of a catalog product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Cart Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	// Cart lines reference catalog products; an id the catalog has never
	// seen cannot enter the cart.
	product, ok := ctrl.Catalog.Find(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	ctrl.Cart.AddToCart(product)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Added to cart",
		Data:    ctrl.Cart.View(),
	})
}

// Checkout godoc
// @Summary Checkout
// @Description Complete the purchase and empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	ctrl.Cart.Clear()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Your purchase was successful!",
		Data:    ctrl.Cart.View(),
	})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Abandon the cart and empty it
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.Cart.Clear()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Your cart has been cleared",
		Data:    ctrl.Cart.View(),
	})
}
