package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopping-widget/client"
	"shopping-widget/controllers"
	"shopping-widget/middleware"
	"shopping-widget/services"
	"shopping-widget/store"
)

func SetupRoutes(router *gin.Engine, s store.Store, shop *client.ShopClient, catalog *services.CatalogService, cart *services.CartService) {
	authCtrl := &controllers.AuthController{Client: shop, Store: s}
	catalogCtrl := &controllers.CatalogController{Catalog: catalog}
	cartCtrl := &controllers.CartController{Catalog: catalog, Cart: cart}
	widgetCtrl := &controllers.WidgetController{Store: s, Catalog: catalog, Cart: cart}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)

	router.GET("/widget/state", widgetCtrl.GetState)
	router.GET("/products", catalogCtrl.GetProducts)
	router.POST("/products/:id/toggle", catalogCtrl.ToggleSelection)
	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddToCart)
	router.POST("/cart/checkout", cartCtrl.Checkout)
	router.DELETE("/cart", cartCtrl.ClearCart)

	// Routes below call the remote service and need a live session token.
	session := router.Group("/")
	session.Use(middleware.SessionMiddleware(s))
	{
		session.POST("/products", catalogCtrl.AddProduct)
		session.POST("/catalog/refresh", catalogCtrl.Refresh)
	}
}
