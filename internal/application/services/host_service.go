package services

import (
	"context"
	"fmt"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
	"omnibook-admin/pkg/errors"
)

// HostService handles the host management screen.
type HostService struct {
	hostRepo     repository.HostRepository
	propertyRepo repository.PropertyRepository
}

// NewHostService creates a new host service
func NewHostService(hostRepo repository.HostRepository, propertyRepo repository.PropertyRepository) *HostService {
	return &HostService{
		hostRepo:     hostRepo,
		propertyRepo: propertyRepo,
	}
}

// ListHosts returns all hosts.
func (s *HostService) ListHosts(ctx context.Context) ([]model.Host, error) {
	hosts, err := s.hostRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load hosts: %w", err)
	}
	return hosts, nil
}

// GetHostProperties returns the properties owned by one host.
func (s *HostService) GetHostProperties(ctx context.Context, hostID string) ([]model.Property, error) {
	if hostID == "" {
		return nil, errors.NewValidationError("host id is required")
	}
	if _, err := s.hostRepo.FindByID(ctx, hostID); err != nil {
		return nil, err
	}
	return s.propertyRepo.FindByHost(ctx, hostID)
}

// UpdateStatus activates or deactivates a host account.
func (s *HostService) UpdateStatus(ctx context.Context, hostID string, status model.HostStatus) error {
	if hostID == "" {
		return errors.NewValidationError("host id is required")
	}
	if !status.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("unknown host status %q", status))
	}
	if _, err := s.hostRepo.FindByID(ctx, hostID); err != nil {
		return err
	}
	return s.hostRepo.UpdateStatus(ctx, hostID, status)
}
