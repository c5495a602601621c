package services

import (
	"context"
	"testing"

	"omnibook-admin/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionFixture() (*SubscriptionService, *fakeSubscriptionRepo, *fakeGateway) {
	repo := &fakeSubscriptionRepo{
		payments: []model.SubscriptionPayment{
			{ID: "s1", HostID: "h1", Amount: 4999, PlanType: "Premium", Status: model.SubscriptionStatusPending, OrderCode: 777},
			{ID: "s2", HostID: "h2", Amount: 1999, PlanType: "Basic", Status: model.SubscriptionStatusApproved},
		},
	}
	hostRepo := &fakeHostRepo{hosts: []model.Host{{ID: "h1", CompanyName: "Grand Hotels"}, {ID: "h2"}}}
	gateway := &fakeGateway{}
	return NewSubscriptionService(repo, hostRepo, gateway), repo, gateway
}

func TestListPaymentsFiltersByStatus(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	all, err := svc.ListPayments(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.ListPayments(context.Background(), model.SubscriptionStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "s1", pending[0].ID)

	_, err = svc.ListPayments(context.Background(), model.SubscriptionStatus("Paid"))
	require.Error(t, err)
}

func TestReviewPaymentApprove(t *testing.T) {
	svc, repo, gateway := newSubscriptionFixture()

	payment, err := svc.ReviewPayment(context.Background(), "s1", model.SubscriptionStatusApproved)
	require.NoError(t, err)

	assert.Equal(t, model.SubscriptionStatusApproved, payment.Status)
	require.NotNil(t, payment.ApprovedAt)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "s1", repo.updated.ID)
	assert.Empty(t, gateway.cancelled, "approval keeps the checkout link")
}

func TestReviewPaymentRejectCancelsLink(t *testing.T) {
	svc, repo, gateway := newSubscriptionFixture()

	payment, err := svc.ReviewPayment(context.Background(), "s1", model.SubscriptionStatusRejected)
	require.NoError(t, err)

	assert.Equal(t, model.SubscriptionStatusRejected, payment.Status)
	assert.Nil(t, payment.ApprovedAt)
	require.NotNil(t, repo.updated)
	assert.Equal(t, []int64{777}, gateway.cancelled)
}

func TestReviewPaymentRejectsNonPending(t *testing.T) {
	svc, repo, _ := newSubscriptionFixture()

	_, err := svc.ReviewPayment(context.Background(), "s2", model.SubscriptionStatusRejected)
	require.Error(t, err)
	assert.Nil(t, repo.updated)
}

func TestReviewPaymentRejectsInvalidStatus(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.ReviewPayment(context.Background(), "s1", model.SubscriptionStatusPending)
	require.Error(t, err)
}

func TestCreatePaymentLink(t *testing.T) {
	svc, repo, _ := newSubscriptionFixture()

	link, err := svc.CreatePaymentLink(context.Background(), "s1")
	require.NoError(t, err)

	assert.NotZero(t, link.OrderCode)
	assert.Equal(t, "https://pay.example.com/s1", link.CheckoutURL)
	assert.Equal(t, "s1", repo.linkedID)
	assert.Equal(t, link.OrderCode, repo.orderCode)
	assert.Equal(t, link.CheckoutURL, repo.paymentURL)
}

func TestCreatePaymentLinkRejectsNonPending(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.CreatePaymentLink(context.Background(), "s2")
	require.Error(t, err)
}

func TestCreatePaymentLinkWithoutGateway(t *testing.T) {
	repo := &fakeSubscriptionRepo{
		payments: []model.SubscriptionPayment{{ID: "s1", Status: model.SubscriptionStatusPending}},
	}
	svc := NewSubscriptionService(repo, &fakeHostRepo{}, nil)

	_, err := svc.CreatePaymentLink(context.Background(), "s1")
	require.Error(t, err)
}
