package models

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_checkout.go . CheckoutService
type CheckoutService interface {
	GetOrderSummary(ctx context.Context, orderID, locationID string) (*OrderSummary, error)

	ApplyPickupDetails(ctx context.Context, orderID, locationID string, details PickupDetails) error

	ApplyDeliveryDetails(ctx context.Context, orderID, locationID string, details DeliveryDetails) error

	ConfirmOrder(ctx context.Context, orderID, locationID string) (*OrderSummary, error)
}

//go:generate mockgen -destination=mocks/mock_payment.go . PaymentService
type PaymentService interface {
	ChargeOrder(ctx context.Context, orderID, locationID, nonce string) error
}

//go:generate mockgen -destination=mocks/mock_loyalty.go . LoyaltyService
type LoyaltyService interface {
	ProgramOverview(ctx context.Context, accountID string, redeemed bool) (LoyaltyInfo, error)

	FindAccountByPhone(ctx context.Context, phoneNumber string) (string, error)

	RedeemReward(ctx context.Context, orderID, accountID, rewardTierID string) error

	AccumulatePoints(ctx context.Context, orderID, locationID, phoneNumber string) error
}

// PageData is the named payload handed to the view layer for one page.
type PageData map[string]interface{}

//go:generate mockgen -destination=mocks/mock_renderer.go . Renderer
type Renderer interface {
	Render(w io.Writer, page string, data PageData) error
}
