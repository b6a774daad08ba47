package services

import (
	"context"
	"fmt"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/commerce"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/logger"
	"go.uber.org/zap"
)

// PaymentService charges orders with single-use payment tokens.
type PaymentService struct {
	client paymentClient
}

type paymentClient interface {
	BatchRetrieveOrders(ctx context.Context, locationID string, orderIDs []string) ([]commerce.Order, error)

	CreatePayment(ctx context.Context, request commerce.PaymentRequest) (*commerce.Payment, error)
}

func NewPaymentService(client paymentClient) *PaymentService {
	return &PaymentService{client: client}
}

// ChargeOrder re-fetches the order and charges exactly its current total.
// The amount never comes from client input, so a tampered form cannot
// change the price.
func (p *PaymentService) ChargeOrder(ctx context.Context, orderID, locationID, nonce string) error {
	orders, err := p.client.BatchRetrieveOrders(ctx, locationID, []string{orderID})
	if err != nil {
		return fmt.Errorf("failed to retrieve order: %w", err)
	}

	if len(orders) == 0 {
		return ErrOrderNotFound
	}

	order := orders[0]

	payment, err := p.client.CreatePayment(ctx, commerce.PaymentRequest{
		SourceID:       nonce,
		IdempotencyKey: NewIdempotencyKey(),
		AmountMoney:    order.TotalMoney,
		OrderID:        order.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	logger.Log.Info("created payment",
		zap.String("orderID", order.ID),
		zap.String("paymentID", payment.ID),
		zap.Int64("amount", order.TotalMoney.Amount),
	)

	return nil
}
