package payos

import (
	"context"
	"fmt"
	"strconv"

	"omnibook-admin/internal/domain/model"

	payossdk "github.com/payOSHQ/payos-lib-golang"
)

// Service wraps the official PayOS SDK for host subscription billing: when
// an admin issues a payment link for a pending subscription payment, the
// host completes checkout on the gateway and the payment shows up for
// approval once paid.
type Service struct {
	initialized bool
	config      *Config
}

// Config holds the configuration for the PayOS integration.
type Config struct {
	ClientID    string
	APIKey      string
	ChecksumKey string
	ReturnURL   string
	CancelURL   string
}

// PaymentLink is the gateway checkout handle for one subscription payment.
type PaymentLink struct {
	OrderCode   int64  `json:"order_code"`
	Amount      int    `json:"amount"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkout_url"`
	QRCode      string `json:"qr_code"`
}

// NewService initializes the PayOS SDK with the merchant keys.
func NewService(config *Config) (*Service, error) {
	if config.ClientID == "" {
		return nil, fmt.Errorf("PAYOS_CLIENT_ID is required")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("PAYOS_API_KEY is required")
	}
	if config.ChecksumKey == "" {
		return nil, fmt.Errorf("PAYOS_CHECKSUM_KEY is required")
	}

	if err := payossdk.Key(config.ClientID, config.APIKey, config.ChecksumKey); err != nil {
		return nil, fmt.Errorf("failed to initialize PayOS: %w", err)
	}

	return &Service{
		initialized: true,
		config:      config,
	}, nil
}

// CreateSubscriptionLink creates a checkout link for a pending subscription
// payment. orderCode must be unique per link; the caller persists it next to
// the payment for later status lookups.
func (s *Service) CreateSubscriptionLink(ctx context.Context, payment *model.SubscriptionPayment, host *model.Host, orderCode int64) (*PaymentLink, error) {
	if !s.initialized {
		return nil, fmt.Errorf("PayOS service not initialized")
	}

	amount := int(payment.Amount)
	checkout := payossdk.CheckoutRequestType{
		OrderCode:   orderCode,
		Amount:      amount,
		Description: fmt.Sprintf("%s subscription - %s", payment.PlanType, host.CompanyName),
		Items: []payossdk.Item{
			{
				Name:     fmt.Sprintf("%s plan", payment.PlanType),
				Quantity: 1,
				Price:    amount,
			},
		},
		ReturnUrl: s.config.ReturnURL,
		CancelUrl: s.config.CancelURL,
	}

	response, err := payossdk.CreatePaymentLink(checkout)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	return &PaymentLink{
		OrderCode:   response.OrderCode,
		Amount:      response.Amount,
		Status:      response.Status,
		CheckoutURL: response.CheckoutUrl,
		QRCode:      response.QRCode,
	}, nil
}

// GetLinkStatus returns the gateway status of a previously created link.
func (s *Service) GetLinkStatus(ctx context.Context, orderCode int64) (string, error) {
	if !s.initialized {
		return "", fmt.Errorf("PayOS service not initialized")
	}

	response, err := payossdk.GetPaymentLinkInformation(strconv.FormatInt(orderCode, 10))
	if err != nil {
		return "", fmt.Errorf("failed to get payment information: %w", err)
	}
	return response.Status, nil
}

// CancelLink cancels an outstanding payment link, e.g. when the admin
// rejects the subscription payment before the host pays.
func (s *Service) CancelLink(ctx context.Context, orderCode int64, reason string) error {
	if !s.initialized {
		return fmt.Errorf("PayOS service not initialized")
	}

	if _, err := payossdk.CancelPaymentLink(strconv.FormatInt(orderCode, 10), &reason); err != nil {
		return fmt.Errorf("failed to cancel payment link: %w", err)
	}
	return nil
}
