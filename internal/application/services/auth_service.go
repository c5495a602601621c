package services

import (
	"context"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
	"omnibook-admin/pkg/errors"
	jwtutil "omnibook-admin/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles dashboard operator login
type AuthService struct {
	adminRepo  repository.AdminRepository
	jwtManager *jwtutil.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repository.AdminRepository, jwtManager *jwtutil.JWTManager) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the operator profile
type LoginResponse struct {
	Token string       `json:"token"`
	Admin *model.Admin `json:"admin"`
}

// Login verifies credentials and issues a session token. Wrong email and
// wrong password produce the same error so the endpoint does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.jwtManager.GenerateToken(admin)
	if err != nil {
		return nil, errors.NewInternalError("Failed to issue session token")
	}

	return &LoginResponse{Token: token, Admin: admin}, nil
}
