// internal/domain/user/service.go
package user

import (
	"errors"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles user registration, login and profile management
type Service struct {
	db         *gorm.DB
	config     *config.Config
	jwtManager *auth.JWTManager
	passwords  *auth.PasswordManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:         db,
		config:     cfg,
		jwtManager: auth.NewJWTManager(cfg),
		passwords:  auth.NewPasswordManager(cfg),
	}
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// AuthResponse bundles a user with a fresh token
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Register creates a new account and returns it with a signed token
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	var existing User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict(apperr.CodeUserExists, "An account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	u := User{
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}

	if err := s.db.Create(&u).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return s.withToken(&u)
}

// Login verifies credentials and returns the user with a signed token
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	var u User
	err := s.db.Where("email = ?", NormalizeEmail(req.Email)).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized(apperr.CodeInvalidCredentials, "Invalid email or password")
		}
		return nil, apperr.Internal(err)
	}

	if !u.IsActive {
		return nil, apperr.Unauthorized(apperr.CodeInvalidCredentials, "Invalid email or password")
	}

	if err := s.passwords.VerifyPassword(req.Password, u.Password); err != nil {
		return nil, apperr.Unauthorized(apperr.CodeInvalidCredentials, "Invalid email or password")
	}

	return s.withToken(&u)
}

// GetByID retrieves a user by id
func (s *Service) GetByID(id uint) (*User, error) {
	var u User
	if err := s.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeUserNotFound, "User not found")
		}
		return nil, apperr.Internal(err)
	}
	return &u, nil
}

// UpdateProfile applies non-nil profile fields
func (s *Service) UpdateProfile(id uint, req *UpdateProfileRequest) (*User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}

	if err := s.db.Save(u).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return u, nil
}

// ChangePassword verifies the current password before setting a new one
func (s *Service) ChangePassword(id uint, req *ChangePasswordRequest) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.passwords.VerifyPassword(req.CurrentPassword, u.Password); err != nil {
		return apperr.Unauthorized(apperr.CodeInvalidCredentials, "Current password is incorrect")
	}

	hash, err := s.passwords.HashPassword(req.NewPassword)
	if err != nil {
		return apperr.Validation(err.Error())
	}

	u.Password = hash
	if err := s.db.Save(u).Error; err != nil {
		return apperr.Internal(err)
	}

	return nil
}

func (s *Service) withToken(u *User) (*AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResponse{User: u, Token: token}, nil
}
