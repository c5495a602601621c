package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/domain/repository"
	"omnibook-admin/pkg/errors"

	"github.com/google/uuid"
)

// CouponService handles the discount code screen. Coupons are the one entity
// the dashboard creates itself rather than reading from the booking
// subsystem.
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// CreateCouponRequest represents a coupon creation request
type CreateCouponRequest struct {
	Code        string    `json:"code"`
	Description string    `json:"description"`
	DiscountPct float64   `json:"discount_pct"`
	Department  string    `json:"department,omitempty"`
	ValidFrom   time.Time `json:"valid_from"`
	ValidUntil  time.Time `json:"valid_until"`
}

// UpdateCouponRequest represents a coupon update request
type UpdateCouponRequest struct {
	Description *string    `json:"description,omitempty"`
	DiscountPct *float64   `json:"discount_pct,omitempty"`
	ValidFrom   *time.Time `json:"valid_from,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// ListCoupons returns all coupons.
func (s *CouponService) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	coupons, err := s.couponRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load coupons: %w", err)
	}
	return coupons, nil
}

// GetCoupon returns a single coupon by id.
func (s *CouponService) GetCoupon(ctx context.Context, id string) (*model.Coupon, error) {
	if id == "" {
		return nil, errors.NewValidationError("coupon id is required")
	}
	return s.couponRepo.FindByID(ctx, id)
}

// CreateCoupon validates and stores a new coupon. Codes are uppercased and
// must be unique.
func (s *CouponService) CreateCoupon(ctx context.Context, req *CreateCouponRequest) (*model.Coupon, error) {
	coupon := &model.Coupon{
		ID:          uuid.New().String(),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
		DiscountPct: req.DiscountPct,
		Department:  model.Department(req.Department),
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := coupon.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.couponRepo.Insert(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// UpdateCoupon applies a partial update. The code itself is immutable;
// retiring a code means deactivating it and creating a new one.
func (s *CouponService) UpdateCoupon(ctx context.Context, id string, req *UpdateCouponRequest) (*model.Coupon, error) {
	if id == "" {
		return nil, errors.NewValidationError("coupon id is required")
	}

	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		coupon.Description = *req.Description
	}
	if req.DiscountPct != nil {
		coupon.DiscountPct = *req.DiscountPct
	}
	if req.ValidFrom != nil {
		coupon.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		coupon.ValidUntil = *req.ValidUntil
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := coupon.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// DeleteCoupon removes a coupon.
func (s *CouponService) DeleteCoupon(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("coupon id is required")
	}
	return s.couponRepo.Delete(ctx, id)
}
