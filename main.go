package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"shopping-widget/client"
	"shopping-widget/config"
	_ "shopping-widget/docs"
	"shopping-widget/middleware"
	"shopping-widget/routes"
	"shopping-widget/services"
	"shopping-widget/store"
	"shopping-widget/utils"
)

func openStore() store.Store {
	if config.AppConfig.StoreDriver == "redis" {
		rs, err := store.OpenRedisStore(
			config.AppConfig.RedisURL,
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPass,
			"widget:",
		)
		if err != nil {
			log.Fatalf("Failed to open redis store: %v", err)
		}
		return rs
	}

	fs, err := store.OpenFileStore(config.AppConfig.StorePath)
	if err != nil {
		log.Fatalf("Failed to open store file: %v", err)
	}
	return fs
}

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	localStore := openStore()
	shop := client.NewShopClient(
		config.AppConfig.APIBaseURL,
		config.AppConfig.APITimeout,
		client.StoreTokenSource{Store: localStore},
	)

	catalog := services.NewCatalogService(localStore, shop)
	cart := services.NewCartService(localStore)

	// Seed the way the widget does on page load: catalog from the local
	// snapshot, replaced by the remote list when a token is held; the cart
	// only ever seeds locally. Remote failures leave the snapshot in place.
	catalog.SeedFromLocal()
	if token, ok := localStore.Get(store.TokenKey); ok && token != "" && !utils.TokenExpired(token) {
		if err := catalog.SeedFromRemote(context.Background()); err != nil {
			log.Printf("Remote catalog seed failed, keeping local snapshot: %v", err)
		}
	}
	cart.SeedFromLocal(catalog.Find)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, localStore, shop, catalog, cart)

	port := ":" + config.AppConfig.Port
	log.Printf("Widget starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start widget: %v", err)
	}
}
