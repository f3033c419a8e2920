package api

import (
	"net/http"

	"rpg_backend/internal/domain"
	"rpg_backend/internal/middleware"
	"rpg_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RouterOptions controls how routes are protected
type RouterOptions struct {
	CatalogAdminOnly bool // Require the admin role for catalog writes
}

// RegisterRoutes mounts the game API under /api and a liveness probe at /health
func RegisterRoutes(r *gin.Engine, svc *service.Service, opts RouterOptions) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.JWTAuth(svc)
	optionalAuth := middleware.OptionalJWTAuth(svc)

	api := r.Group("/api")

	// Auth routes
	api.POST("/sign-up", SignUpHandler(svc))
	api.POST("/sign-in", SignInHandler(svc))

	// Character routes
	api.POST("/characters", auth, CreateCharacterHandler(svc))
	api.DELETE("/characters/:characterId", auth, DeleteCharacterHandler(svc))
	api.GET("/characters/:characterId", optionalAuth, GetCharacterHandler(svc))

	// Catalog routes, writes optionally admin only
	catalogWrite := []gin.HandlerFunc{}
	if opts.CatalogAdminOnly {
		catalogWrite = append(catalogWrite, auth, middleware.AdminOnly())
	}
	api.POST("/items", append(catalogWrite, CreateItemHandler(svc))...)
	api.PATCH("/items/:itemCode", append(catalogWrite, PatchItemHandler(svc))...)
	api.GET("/items", ListItemsHandler(svc))
	api.GET("/items/:itemCode", GetItemHandler(svc))

	// Equipment routes
	api.POST("/equipments/:characterId", auth, EquipHandler(svc))
	api.DELETE("/equipments/:characterId", auth, UnequipHandler(svc))
	api.GET("/equipments/:characterId", ListEquipmentHandler(svc))

	// Inventory routes
	api.POST("/inventories/:characterId", auth, BuyHandler(svc))
	api.PATCH("/inventories/:characterId", auth, SellHandler(svc))
	api.GET("/inventories/:characterId", auth, ListInventoryHandler(svc))

	// Game routes
	api.GET("/game/:characterId", auth, EarnMoneyHandler(svc))
}

// NewRouter builds a gin engine with the standard middleware chain and all routes
func NewRouter(svc *service.Service, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true // 405 instead of 404 for known paths
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.ErrorHandler(), middleware.Recovery())
	r.NoRoute(middleware.Reject(domain.ErrRouteNotFound))
	r.NoMethod(middleware.Reject(domain.ErrMethodNotAllowed))
	RegisterRoutes(r, svc, opts)
	return r
}
