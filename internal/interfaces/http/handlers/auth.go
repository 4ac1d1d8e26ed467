// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/user"
	"github.com/beammart/backend/internal/interfaces/http/middleware"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler handles authentication and profile endpoints
type AuthHandler struct {
	userService *user.Service
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: user.NewService(db, cfg),
		config:      cfg,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.userService.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result, "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.userService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Login successful")
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.userService.GetByID(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Profile retrieved successfully")
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Profile updated successfully")
}

// ChangePassword handles PUT /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	if err := h.userService.ChangePassword(userID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, nil, "Password changed successfully")
}
