// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/humbertopaiva/ango-admin-backend/internal/cache"
	"github.com/humbertopaiva/ango-admin-backend/internal/catalog"
	"github.com/humbertopaiva/ango-admin-backend/internal/config"
	"github.com/humbertopaiva/ango-admin-backend/internal/handlers"
	"github.com/humbertopaiva/ango-admin-backend/internal/middleware"
	"github.com/humbertopaiva/ango-admin-backend/internal/refresher"
	"github.com/humbertopaiva/ango-admin-backend/internal/services"
	"github.com/humbertopaiva/ango-admin-backend/internal/utils"
)

func Initialize(cfg *config.Config, log *logrus.Logger) *gin.Engine {
	// The cache store and refresher are shared by every service so
	// invalidations from one mutation are visible to all reads.
	store := cache.NewStore()
	ref := refresher.New(store, refresher.ReadConsistencyPolicy{
		RetryDelay: cfg.Refresher.RetryDelay(),
	}, cfg.Refresher.PollInterval(), log)

	client := catalog.NewClient(
		cfg.CatalogAPI.BaseURL,
		cfg.CatalogAPI.Token,
		time.Duration(cfg.CatalogAPI.Timeout)*time.Second,
		log,
	)

	// Initialize services
	snapshots := services.NewSnapshots(client, ref)
	resolverService := services.NewResolverService(snapshots)
	registryService := services.NewVariationRegistryService(client, ref, snapshots, log)
	itemService := services.NewVariationItemService(client, ref, snapshots, log)
	productService := services.NewProductService(client, ref, snapshots, resolverService, log)
	categoryService := services.NewCategoryService(client, ref, snapshots, log)
	addonService := services.NewAddonService(client, ref, log)
	showcaseService := services.NewShowcaseService(client, ref, snapshots, log)
	profileService := services.NewProfileService(client, ref, log)
	authService := services.NewAuthService(cfg, log)
	storageService, _ := services.NewStorageService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	variationHandler := handlers.NewVariationHandler(registryService, resolverService)
	itemHandler := handlers.NewVariationItemHandler(itemService, resolverService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	addonHandler := handlers.NewAddonHandler(addonService)
	showcaseHandler := handlers.NewShowcaseHandler(showcaseService)
	profileHandler := handlers.NewProfileHandler(profileService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// Everything below operates on the company carried in the token.
		protected := v1.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Variation axes
			variations := protected.Group("/variations")
			{
				variations.GET("", variationHandler.List)
				variations.GET("/available", variationHandler.ListAvailable)
				variations.POST("", variationHandler.Create)
				variations.PATCH("/:id", variationHandler.Update)
				variations.DELETE("/:id", variationHandler.Delete)
			}

			// Products and their variation allocation
			products := protected.Group("/products")
			{
				products.GET("", productHandler.List)
				products.GET("/:id", productHandler.Get)
				products.POST("", productHandler.Create)
				products.PATCH("/:id", productHandler.Update)
				products.DELETE("/:id", productHandler.Delete)
				products.PUT("/:id/variation", productHandler.AssignVariation)
				products.DELETE("/:id/variation", productHandler.ClearVariation)

				products.GET("/:id/variation-items", itemHandler.ListForProduct)
				products.GET("/:id/variation-items/available", itemHandler.ListAvailableValues)
				products.PATCH("/:id/variation-items/:itemId", itemHandler.Update)
				products.DELETE("/:id/variation-items/:itemId", itemHandler.Delete)
			}

			protected.POST("/variation-items", itemHandler.Create)

			// Categories
			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.PATCH("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			// Addon lists
			addons := protected.Group("/addon-lists")
			{
				addons.GET("", addonHandler.List)
				addons.POST("", addonHandler.Create)
				addons.PATCH("/:id", addonHandler.Update)
				addons.DELETE("/:id", addonHandler.Delete)
			}

			// Showcase
			showcase := protected.Group("/showcase")
			{
				showcase.GET("", showcaseHandler.List)
				showcase.POST("", showcaseHandler.Add)
				showcase.DELETE("/:id", showcaseHandler.Remove)
			}

			// Profile
			profile := protected.Group("/profile")
			{
				profile.GET("", profileHandler.Get)
				profile.PATCH("", profileHandler.Update)
			}

			// Uploads
			uploads := protected.Group("/uploads")
			uploads.Use(middleware.UploadRateLimit())
			{
				uploads.POST("", uploadHandler.Upload)
				uploads.DELETE("/*key", uploadHandler.Delete)
			}
		}
	}

	return r
}
