package services

import (
	"context"
	"fmt"
	"strings"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
)

// UserService handles the customer listing screen.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns platform customers, optionally narrowed by a
// case-insensitive search over name and email.
func (s *UserService) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return users, nil
	}

	matched := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
