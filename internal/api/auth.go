package api

import (
	"net/http" // HTTP status codes

	"rpg_backend/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for sign-up
type SignUpRequest struct {
	LoginID        string `json:"id" binding:"required,max=64,loginid"`     // Lowercase letters and digits
	Password       string `json:"password" binding:"required,min=6,max=72"` // bcrypt reads at most 72 bytes
	VerifyPassword string `json:"verifyPassword" binding:"required"`        // Must equal password
	Name           string `json:"name" binding:"max=64"`                    // Defaults to the login id
}

// Request struct for sign-in
type SignInRequest struct {
	LoginID  string `json:"id" binding:"required"`       // Login id must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for sign-up
type SignUpResponse struct {
	UserID  uint   `json:"userId"`
	LoginID string `json:"id"`
	Name    string `json:"name"`
}

// SignUpHandler registers a new account
func SignUpHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		user, err := svc.Register(c.Request.Context(), service.RegisterInput{
			LoginID:        req.LoginID,
			Password:       req.Password,
			VerifyPassword: req.VerifyPassword,
			Name:           req.Name,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": SignUpResponse{UserID: user.ID, LoginID: user.LoginID, Name: user.Name}})
	}
}

// SignInHandler authenticates an account and returns the token in the Authorization header
func SignInHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if !bindJSON(c, &req) {
			return
		}
		token, err := svc.Login(c.Request.Context(), req.LoginID, req.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.Header("Authorization", "Bearer "+token) // Token travels in the response header
		c.JSON(http.StatusOK, gin.H{"message": "signed in"})
	}
}
