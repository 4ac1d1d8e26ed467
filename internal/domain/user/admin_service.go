// internal/domain/user/admin_service.go
package user

import (
	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/alien"
	"github.com/beammart/backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

// AdminService handles administrative user management
type AdminService struct {
	db     *gorm.DB
	config *config.Config
}

// NewAdminService creates a new admin user service
func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	return &AdminService{
		db:     db,
		config: cfg,
	}
}

// ListRequest represents admin user list query parameters
type ListRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Search string `form:"search"`
}

// ListResponse represents a user page with its pagination envelope
type ListResponse struct {
	Users      []User           `json:"users"`
	Pagination alien.Pagination `json:"pagination"`
}

// SetAdminRequest toggles a user's admin flag
type SetAdminRequest struct {
	IsAdmin *bool `json:"isAdmin" binding:"required"`
}

// List retrieves users with optional email search and pagination
func (s *AdminService) List(req *ListRequest) (*ListResponse, error) {
	var users []User
	var total int64

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.Model(&User{})
	if req.Search != "" {
		query = query.Where("email ILIKE ?", "%"+req.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&users).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return &ListResponse{
		Users:      users,
		Pagination: alien.NewPagination(req.Page, req.Limit, total),
	}, nil
}

// SetAdmin grants or revokes admin rights. An admin cannot strip their own
// flag, so the store is never left without one by accident.
func (s *AdminService) SetAdmin(targetID, callerID uint, isAdmin bool) (*User, error) {
	if targetID == callerID && !isAdmin {
		return nil, apperr.Forbidden(apperr.CodeCannotRemoveOwnAdmin, "You cannot remove your own admin access")
	}

	var u User
	if err := s.db.First(&u, targetID).Error; err != nil {
		return nil, apperr.NotFound(apperr.CodeUserNotFound, "User not found")
	}

	u.IsAdmin = isAdmin
	if err := s.db.Save(&u).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return &u, nil
}

// Deactivate disables an account without deleting it
func (s *AdminService) Deactivate(targetID uint) (*User, error) {
	var u User
	if err := s.db.First(&u, targetID).Error; err != nil {
		return nil, apperr.NotFound(apperr.CodeUserNotFound, "User not found")
	}

	u.IsActive = false
	if err := s.db.Save(&u).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return &u, nil
}
