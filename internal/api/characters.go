package api

import (
	"net/http"

	"rpg_backend/internal/middleware"
	"rpg_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCharacterRequest is the body of POST /characters
type CreateCharacterRequest struct {
	Name string `json:"characterName" binding:"required,max=64"`
}

// CreateCharacterHandler creates a character for the authenticated user
func CreateCharacterHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCharacterRequest
		if !bindJSON(c, &req) {
			return
		}
		character, err := svc.CreateCharacter(c.Request.Context(), middleware.UserID(c), req.Name)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"characterId": character.ID})
	}
}

// DeleteCharacterHandler deletes one of the caller's characters
func DeleteCharacterHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := characterIDParam(c)
		if !ok {
			return
		}
		if err := svc.DeleteCharacter(c.Request.Context(), id, middleware.UserID(c)); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "character deleted"})
	}
}

// GetCharacterHandler returns a character; money is included for its owner only
func GetCharacterHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := characterIDParam(c)
		if !ok {
			return
		}
		view, err := svc.GetCharacter(c.Request.Context(), id, middleware.UserID(c))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"character": view})
	}
}
