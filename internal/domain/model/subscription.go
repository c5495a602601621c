package model

import "time"

// SubscriptionStatus is the approval state of a host's subscription payment.
type SubscriptionStatus string

const (
	SubscriptionStatusPending  SubscriptionStatus = "Pending"
	SubscriptionStatusApproved SubscriptionStatus = "Approved"
	SubscriptionStatusRejected SubscriptionStatus = "Rejected"
)

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusPending, SubscriptionStatusApproved, SubscriptionStatusRejected:
		return true
	}
	return false
}

// SubscriptionPayment records a host's plan payment awaiting admin review.
type SubscriptionPayment struct {
	ID         string             `json:"id" bson:"_id"`
	HostID     string             `json:"host_id" bson:"host_id"`
	Amount     float64            `json:"amount" bson:"amount"`
	PlanType   string             `json:"plan_type" bson:"plan_type"`
	Status     SubscriptionStatus `json:"status" bson:"status"`
	OrderCode  int64              `json:"order_code,omitempty" bson:"order_code,omitempty"`
	PaymentURL string             `json:"payment_url,omitempty" bson:"payment_url,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	ApprovedAt *time.Time         `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
}
