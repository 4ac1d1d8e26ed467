// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/user"
	"github.com/beammart/backend/internal/infrastructure/cache"
	"github.com/beammart/backend/internal/interfaces/http/handlers"
	"github.com/beammart/backend/internal/interfaces/http/middleware"
	"github.com/beammart/backend/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps carries the shared dependencies route setup needs
type Deps struct {
	DB             *gorm.DB
	CacheStore     *cache.Store
	Config         *config.Config
	MetricsService *metrics.Service
	Log            *logrus.Logger
}

// catalogListParams are the query parameters that distinguish cached
// catalog pages
var catalogListParams = []string{
	"page", "limit", "search", "faction", "planet", "rarity",
	"minPrice", "maxPrice", "featured", "inStock", "sortBy", "sortOrder",
}

// SetupRoutes wires every API route under the given group
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	userService := user.NewService(deps.DB, deps.Config)
	authRequired := middleware.AuthMiddleware(deps.Config, userService)
	adminRequired := middleware.AdminMiddleware()

	setupAuthRoutes(rg, deps, authRequired)
	setupAlienRoutes(rg, deps, authRequired, adminRequired)
	setupCartRoutes(rg, deps, authRequired)
	setupOrderRoutes(rg, deps, authRequired)
	setupWishlistRoutes(rg, deps, authRequired)
	setupAdminRoutes(rg, deps, authRequired, adminRequired)
}

func setupAuthRoutes(rg *gin.RouterGroup, deps Deps, authRequired gin.HandlerFunc) {
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Config)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		protected := auth.Group("")
		protected.Use(authRequired)
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
			protected.PUT("/change-password", authHandler.ChangePassword)
		}
	}
}

func setupAlienRoutes(rg *gin.RouterGroup, deps Deps, authRequired, adminRequired gin.HandlerFunc) {
	alienHandler := handlers.NewAlienHandler(deps.DB, deps.CacheStore, deps.Config)

	aliens := rg.Group("/aliens")
	{
		aliens.GET("", middleware.CacheResponse(deps.CacheStore, catalogListParams...), alienHandler.List)
		aliens.GET("/featured", middleware.CacheResponse(deps.CacheStore, "limit"), alienHandler.GetFeatured)
		aliens.GET("/filter-options", middleware.CacheResponse(deps.CacheStore), alienHandler.GetFilterOptions)
		aliens.GET("/:id", middleware.CacheResponse(deps.CacheStore), alienHandler.Get)
		aliens.GET("/:id/related", middleware.CacheResponse(deps.CacheStore, "limit"), alienHandler.GetRelated)

		protected := aliens.Group("")
		protected.Use(authRequired, adminRequired)
		{
			protected.POST("", alienHandler.Create)
			protected.PUT("/:id", alienHandler.Update)
			protected.DELETE("/:id", alienHandler.Delete)
			protected.POST("/upload", alienHandler.UploadImage)
		}
	}
}

func setupCartRoutes(rg *gin.RouterGroup, deps Deps, authRequired gin.HandlerFunc) {
	cartHandler := handlers.NewCartHandler(deps.DB, deps.Config)

	cart := rg.Group("/cart")
	cart.Use(authRequired)
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("", cartHandler.AddItem)
		cart.PUT("/update/:alienId", cartHandler.UpdateItem)
		cart.DELETE("/remove/:alienId", cartHandler.RemoveItem)
		cart.DELETE("/clear", cartHandler.Clear)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, deps Deps, authRequired gin.HandlerFunc) {
	orderHandler := handlers.NewOrderHandler(deps.DB, deps.Config, deps.Log)

	orders := rg.Group("/orders")
	orders.Use(authRequired)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.PUT("/:id/cancel", orderHandler.Cancel)
		orders.GET("/:id/tracking", orderHandler.GetTracking)
		orders.GET("/:id/invoice", orderHandler.GetInvoice)
	}
}

func setupWishlistRoutes(rg *gin.RouterGroup, deps Deps, authRequired gin.HandlerFunc) {
	wishlistHandler := handlers.NewWishlistHandler(deps.DB, deps.Config)

	wishlist := rg.Group("/wishlist")
	wishlist.Use(authRequired)
	{
		wishlist.GET("", wishlistHandler.List)
		wishlist.POST("", wishlistHandler.Add)
		wishlist.DELETE("", wishlistHandler.Clear)
		wishlist.DELETE("/:alienId", wishlistHandler.Remove)
	}
}

func setupAdminRoutes(rg *gin.RouterGroup, deps Deps, authRequired, adminRequired gin.HandlerFunc) {
	adminHandler := handlers.NewAdminHandler(deps.DB, deps.Config, deps.MetricsService, deps.Log)

	admin := rg.Group("/admin")
	admin.Use(authRequired, adminRequired)
	{
		admin.GET("/analytics/dashboard", adminHandler.GetDashboard)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id/admin", adminHandler.SetUserAdmin)
		admin.PUT("/users/:id/deactivate", adminHandler.DeactivateUser)
		admin.GET("/metrics", adminHandler.GetMetrics)
	}
}
