package services

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
	"omnibook-admin/pkg/errors"
)

const defaultNotificationLimit = 50

// NotificationService handles the admin notification feed.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListRecent returns the newest feed entries, newest first.
func (s *NotificationService) ListRecent(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	notifications, err := s.notificationRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one feed entry as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("notification id is required")
	}
	return s.notificationRepo.MarkRead(ctx, id)
}
