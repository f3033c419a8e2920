package api

import (
	"context"
	"net/http"

	"rpg_backend/internal/domain"
	"rpg_backend/internal/middleware"
	"rpg_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipRequest is the body of the equip and unequip endpoints
type EquipRequest struct {
	ItemCode int `json:"itemCode" binding:"required,min=1"`
}

type equipFunc func(ctx context.Context, characterID uint, itemCode int, requesterID uint) (*domain.Character, error)

func equipHandler(fn equipFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := characterIDParam(c)
		if !ok {
			return
		}
		var req EquipRequest
		if !bindJSON(c, &req) {
			return
		}
		character, err := fn(c.Request.Context(), id, req.ItemCode, middleware.UserID(c))
		if err != nil {
			_ = c.Error(err)
			return
		}
		// Stats only; money stays out of equipment responses
		c.JSON(http.StatusOK, gin.H{"character": domain.CharacterView{
			Name:   character.Name,
			Health: character.Health,
			Power:  character.Power,
		}})
	}
}

// EquipHandler equips an inventory item
func EquipHandler(svc *service.Service) gin.HandlerFunc {
	return equipHandler(svc.Equip)
}

// UnequipHandler returns an equipped item to the inventory
func UnequipHandler(svc *service.Service) gin.HandlerFunc {
	return equipHandler(svc.Unequip)
}

// ListEquipmentHandler returns what a character has equipped
func ListEquipmentHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := characterIDParam(c)
		if !ok {
			return
		}
		items, err := svc.ListEquipment(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if items == nil {
			items = []domain.EquippedItem{}
		}
		c.JSON(http.StatusOK, gin.H{"equipments": items})
	}
}
