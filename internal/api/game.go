package api

import (
	"net/http"

	"rpg_backend/internal/middleware"
	"rpg_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EarnMoneyHandler credits the earn amount to one of the caller's characters
func EarnMoneyHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := characterIDParam(c)
		if !ok {
			return
		}
		character, err := svc.EarnMoney(c.Request.Context(), id, middleware.UserID(c))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "money earned", "money": character.Money})
	}
}
