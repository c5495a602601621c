package services

import (
	"context"
	"fmt"
	"time"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
	"omnibook-admin/internal/infrastructure/payos"
	"omnibook-admin/pkg/errors"
)

// PaymentGateway is the slice of the payment provider the subscription
// workflow needs. Satisfied by the PayOS service.
type PaymentGateway interface {
	CreateSubscriptionLink(ctx context.Context, payment *model.SubscriptionPayment, host *model.Host, orderCode int64) (*payos.PaymentLink, error)
	CancelLink(ctx context.Context, orderCode int64, reason string) error
}

// SubscriptionService handles the host subscription payment review workflow:
// pending payments are listed, an admin issues a checkout link through the
// gateway, and approves or rejects the payment after review.
type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	hostRepo         repository.HostRepository
	gateway          PaymentGateway
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	hostRepo repository.HostRepository,
	gateway PaymentGateway,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		hostRepo:         hostRepo,
		gateway:          gateway,
	}
}

// ListPayments returns subscription payments, optionally narrowed to one
// status.
func (s *SubscriptionService) ListPayments(ctx context.Context, status model.SubscriptionStatus) ([]model.SubscriptionPayment, error) {
	payments, err := s.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription payments: %w", err)
	}
	if status == "" {
		return payments, nil
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown subscription status %q", status))
	}

	matched := make([]model.SubscriptionPayment, 0, len(payments))
	for _, p := range payments {
		if p.Status == status {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// ReviewPayment approves or rejects a pending subscription payment. Only
// pending payments can be reviewed; a rejection cancels the outstanding
// checkout link when one exists.
func (s *SubscriptionService) ReviewPayment(ctx context.Context, id string, status model.SubscriptionStatus) (*model.SubscriptionPayment, error) {
	if id == "" {
		return nil, errors.NewValidationError("payment id is required")
	}
	if status != model.SubscriptionStatusApproved && status != model.SubscriptionStatusRejected {
		return nil, errors.NewValidationError("status must be Approved or Rejected")
	}

	payment, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.SubscriptionStatusPending {
		return nil, errors.NewConflictError(fmt.Sprintf("payment is already %s", payment.Status))
	}

	payment.Status = status
	if status == model.SubscriptionStatusApproved {
		now := time.Now().UTC()
		payment.ApprovedAt = &now
	}

	if err := s.subscriptionRepo.UpdateStatus(ctx, payment); err != nil {
		return nil, err
	}

	if status == model.SubscriptionStatusRejected && payment.OrderCode != 0 && s.gateway != nil {
		// Best effort: a failed gateway cancel does not undo the review.
		_ = s.gateway.CancelLink(ctx, payment.OrderCode, "subscription payment rejected")
	}

	return payment, nil
}

// CreatePaymentLink issues a gateway checkout link for a pending payment and
// stores the order code so the payment can be matched when it settles.
func (s *SubscriptionService) CreatePaymentLink(ctx context.Context, id string) (*payos.PaymentLink, error) {
	if id == "" {
		return nil, errors.NewValidationError("payment id is required")
	}
	if s.gateway == nil {
		return nil, errors.NewServiceUnavailableError("Payment gateway not configured")
	}

	payment, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.SubscriptionStatusPending {
		return nil, errors.NewConflictError(fmt.Sprintf("payment is already %s", payment.Status))
	}

	host, err := s.hostRepo.FindByID(ctx, payment.HostID)
	if err != nil {
		return nil, err
	}

	orderCode := time.Now().UnixMilli()
	link, err := s.gateway.CreateSubscriptionLink(ctx, payment, host, orderCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	if err := s.subscriptionRepo.SetPaymentLink(ctx, id, link.OrderCode, link.CheckoutURL); err != nil {
		return nil, err
	}
	return link, nil
}
