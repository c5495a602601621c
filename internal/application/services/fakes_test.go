package services

import (
	"context"

	"omnibook-admin/internal/domain/model"
	"omnibook-admin/internal/infrastructure/payos"
	"omnibook-admin/pkg/errors"
)

// In-memory repository fakes for service tests.

type fakeBookingRepo struct {
	bookings []model.Booking
	warnings []string
	err      error

	statusUpdates map[string]model.BookingStatus
	deleted       []string
}

func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]model.Booking, []string, error) {
	return f.bookings, f.warnings, f.err
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, errors.NewNotFoundError("booking")
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]model.BookingStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePropertyRepo struct {
	properties []model.Property
	err        error
}

func (f *fakePropertyRepo) FindAll(ctx context.Context) ([]model.Property, error) {
	return f.properties, f.err
}

func (f *fakePropertyRepo) FindByHost(ctx context.Context, hostID string) ([]model.Property, error) {
	var out []model.Property
	for _, p := range f.properties {
		if p.HostID == hostID {
			out = append(out, p)
		}
	}
	return out, f.err
}

type fakeHostRepo struct {
	hosts []model.Host
	err   error

	statusUpdates map[string]model.HostStatus
}

func (f *fakeHostRepo) FindAll(ctx context.Context) ([]model.Host, error) {
	return f.hosts, f.err
}

func (f *fakeHostRepo) FindByID(ctx context.Context, id string) (*model.Host, error) {
	for i := range f.hosts {
		if f.hosts[i].ID == id {
			h := f.hosts[i]
			return &h, nil
		}
	}
	return nil, errors.NewNotFoundError("host")
}

func (f *fakeHostRepo) UpdateStatus(ctx context.Context, id string, status model.HostStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]model.HostStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeUserRepo struct {
	users []model.User
	err   error
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	return f.users, f.err
}

type fakeSubscriptionRepo struct {
	payments []model.SubscriptionPayment

	updated    *model.SubscriptionPayment
	linkedID   string
	orderCode  int64
	paymentURL string
}

func (f *fakeSubscriptionRepo) FindAll(ctx context.Context) ([]model.SubscriptionPayment, error) {
	return f.payments, nil
}

func (f *fakeSubscriptionRepo) FindByID(ctx context.Context, id string) (*model.SubscriptionPayment, error) {
	for i := range f.payments {
		if f.payments[i].ID == id {
			p := f.payments[i]
			return &p, nil
		}
	}
	return nil, errors.NewNotFoundError("subscription payment")
}

func (f *fakeSubscriptionRepo) UpdateStatus(ctx context.Context, payment *model.SubscriptionPayment) error {
	f.updated = payment
	return nil
}

func (f *fakeSubscriptionRepo) SetPaymentLink(ctx context.Context, id string, orderCode int64, url string) error {
	f.linkedID = id
	f.orderCode = orderCode
	f.paymentURL = url
	return nil
}

type fakeCouponRepo struct {
	coupons []model.Coupon

	inserted *model.Coupon
	updated  *model.Coupon
	deleted  []string
}

func (f *fakeCouponRepo) FindAll(ctx context.Context) ([]model.Coupon, error) {
	return f.coupons, nil
}

func (f *fakeCouponRepo) FindByID(ctx context.Context, id string) (*model.Coupon, error) {
	for i := range f.coupons {
		if f.coupons[i].ID == id {
			c := f.coupons[i]
			return &c, nil
		}
	}
	return nil, errors.NewNotFoundError("coupon")
}

func (f *fakeCouponRepo) Insert(ctx context.Context, coupon *model.Coupon) error {
	f.inserted = coupon
	return nil
}

func (f *fakeCouponRepo) Update(ctx context.Context, coupon *model.Coupon) error {
	f.updated = coupon
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAdminRepo struct {
	admins []model.Admin
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	for i := range f.admins {
		if f.admins[i].Email == email {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, errors.NewNotFoundError("admin")
}

type fakeGateway struct {
	link      *payos.PaymentLink
	createErr error

	cancelled []int64
}

func (f *fakeGateway) CreateSubscriptionLink(ctx context.Context, payment *model.SubscriptionPayment, host *model.Host, orderCode int64) (*payos.PaymentLink, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.link != nil {
		return f.link, nil
	}
	return &payos.PaymentLink{
		OrderCode:   orderCode,
		Amount:      int(payment.Amount),
		Status:      "PENDING",
		CheckoutURL: "https://pay.example.com/" + payment.ID,
	}, nil
}

func (f *fakeGateway) CancelLink(ctx context.Context, orderCode int64, reason string) error {
	f.cancelled = append(f.cancelled, orderCode)
	return nil
}
