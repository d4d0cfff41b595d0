package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopping-widget/models"
	"shopping-widget/services"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

// GetProducts godoc
// @Summary Get catalog
// @Description Get the session's product list in display order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    ctrl.Catalog.Products(),
	})
}

// AddProduct godoc
// @Summary Add product
// @Description Store a new product remotely, then append it to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body models.AddProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *CatalogController) AddProduct(c *gin.Context) {
	var req models.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	product := models.Product{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Completed: false,
		CreatedAt: time.Now(),
	}

	if err := ctrl.Catalog.Add(c.Request.Context(), product); err != nil {
		respondRemoteError(c, "Adding product", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product added",
		Data:    product,
	})
}

// ToggleSelection godoc
// @Summary Toggle product selection
// @Description Set the selection flag on a catalog entry
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ToggleSelectionRequest true "Selection"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/toggle [post]
func (ctrl *CatalogController) ToggleSelection(c *gin.Context) {
	var req models.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if !ctrl.Catalog.ToggleSelection(c.Param("id"), req.Selected) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Selection updated"})
}

// Refresh godoc
// @Summary Refresh catalog
// @Description Replace the catalog with the remote product list
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /catalog/refresh [post]
func (ctrl *CatalogController) Refresh(c *gin.Context) {
	if err := ctrl.Catalog.SeedFromRemote(c.Request.Context()); err != nil {
		respondRemoteError(c, "Catalog refresh", err)
		return
	}

	products := ctrl.Catalog.Products()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Catalog refreshed",
		Data:    products,
	})
}
