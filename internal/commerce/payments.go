package commerce

import (
	"context"
	"net/http"
)

// PaymentRequest charges AmountMoney against the order using a single-use
// payment token produced by the client-side card form.
type PaymentRequest struct {
	SourceID       string `json:"source_id"`
	IdempotencyKey string `json:"idempotency_key"`
	AmountMoney    Money  `json:"amount_money"`
	OrderID        string `json:"order_id"`
}

type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	AmountMoney Money  `json:"amount_money"`
	OrderID     string `json:"order_id"`
}

type createPaymentResponse struct {
	Payment Payment `json:"payment"`
}

func (c *Client) CreatePayment(ctx context.Context, request PaymentRequest) (*Payment, error) {
	var response createPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/v2/payments", request, &response); err != nil {
		return nil, err
	}

	return &response.Payment, nil
}
