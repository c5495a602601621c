package repository

import (
	"context"

	"omnibook-admin/internal/domain/model"
)

// BookingRepository loads booking snapshots and applies the few mutations the
// admin dashboard performs. FindAll returns canonical records plus the
// normalization warnings collected while decoding legacy documents.
type BookingRepository interface {
	FindAll(ctx context.Context) ([]model.Booking, []string, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// PropertyRepository reads the property reference data.
type PropertyRepository interface {
	FindAll(ctx context.Context) ([]model.Property, error)
	FindByHost(ctx context.Context, hostID string) ([]model.Property, error)
}

// HostRepository reads hosts and toggles their account status.
type HostRepository interface {
	FindAll(ctx context.Context) ([]model.Host, error)
	FindByID(ctx context.Context, id string) (*model.Host, error)
	UpdateStatus(ctx context.Context, id string, status model.HostStatus) error
}

// UserRepository reads platform customers.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
}

// SubscriptionRepository manages host subscription payments through the
// admin approval workflow.
type SubscriptionRepository interface {
	FindAll(ctx context.Context) ([]model.SubscriptionPayment, error)
	FindByID(ctx context.Context, id string) (*model.SubscriptionPayment, error)
	UpdateStatus(ctx context.Context, payment *model.SubscriptionPayment) error
	SetPaymentLink(ctx context.Context, id string, orderCode int64, url string) error
}

// CouponRepository is full CRUD; coupons are the one entity the dashboard
// owns outright.
type CouponRepository interface {
	FindAll(ctx context.Context) ([]model.Coupon, error)
	FindByID(ctx context.Context, id string) (*model.Coupon, error)
	Insert(ctx context.Context, coupon *model.Coupon) error
	Update(ctx context.Context, coupon *model.Coupon) error
	Delete(ctx context.Context, id string) error
}

// NotificationRepository reads the admin feed and marks entries read.
type NotificationRepository interface {
	FindRecent(ctx context.Context, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// AdminRepository looks up dashboard operator accounts for login.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}
