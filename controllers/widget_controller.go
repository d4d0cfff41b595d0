package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopping-widget/models"
	"shopping-widget/services"
	"shopping-widget/store"
	"shopping-widget/utils"
)

type WidgetController struct {
	Store   store.Store
	Catalog *services.CatalogService
	Cart    *services.CartService
}

// GetState godoc
// @Summary Get widget state
// @Description Get everything one render of the widget needs
// @Tags Widget
// @Produce json
// @Success 200 {object} models.Response
// @Router /widget/state [get]
func (ctrl *WidgetController) GetState(c *gin.Context) {
	token, hasToken := ctrl.Store.Get(store.TokenKey)
	authenticated := hasToken && token != "" && !utils.TokenExpired(token)

	state := models.WidgetState{
		Authenticated: authenticated,
		Products:      ctrl.Catalog.Products(),
		Cart:          ctrl.Cart.View(),
	}
	if authenticated {
		state.Username = utils.TokenSubject(token)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Widget state retrieved",
		Data:    state,
	})
}
