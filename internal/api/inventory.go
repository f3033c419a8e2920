package api

import (
	"net/http"

	"rpg_backend/internal/domain"
	"rpg_backend/internal/middleware"
	"rpg_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TradeRequest is the body of the buy and sell endpoints
type TradeRequest struct {
	ItemCode int `json:"itemCode" binding:"required,min=1"`
	Count    int `json:"count" binding:"required,min=1"`
}

// TradeItem reports how many units remain in the inventory
type TradeItem struct {
	ItemCode int `json:"itemCode"`
	Count    int `json:"count"`
}

// TradeResponse is returned by buy and sell
type TradeResponse struct {
	Message string    `json:"message"`
	Money   int64     `json:"money"`
	Item    TradeItem `json:"item"`
}

type tradeFunc func(c *gin.Context, characterID uint, req TradeRequest) (*service.ShopResult, error)

func tradeHandler(message string, trade tradeFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := characterIDParam(c)
		if !ok {
			return
		}
		var req TradeRequest
		if !bindJSON(c, &req) {
			return
		}
		result, err := trade(c, id, req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, TradeResponse{
			Message: message,
			Money:   result.Money,
			Item:    TradeItem{ItemCode: result.ItemCode, Count: result.Count},
		})
	}
}

// BuyHandler buys items for one of the caller's characters
func BuyHandler(svc *service.Service) gin.HandlerFunc {
	return tradeHandler("items purchased", func(c *gin.Context, id uint, req TradeRequest) (*service.ShopResult, error) {
		return svc.Buy(c.Request.Context(), id, req.ItemCode, req.Count, middleware.UserID(c))
	})
}

// SellHandler sells items from one of the caller's characters
func SellHandler(svc *service.Service) gin.HandlerFunc {
	return tradeHandler("items sold", func(c *gin.Context, id uint, req TradeRequest) (*service.ShopResult, error) {
		return svc.Sell(c.Request.Context(), id, req.ItemCode, req.Count, middleware.UserID(c))
	})
}

// ListInventoryHandler returns the inventory of one of the caller's characters
func ListInventoryHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := characterIDParam(c)
		if !ok {
			return
		}
		items, err := svc.ListInventory(c.Request.Context(), id, middleware.UserID(c))
		if err != nil {
			_ = c.Error(err)
			return
		}
		if items == nil {
			items = []domain.InventoryItem{}
		}
		c.JSON(http.StatusOK, gin.H{"inventories": items})
	}
}
