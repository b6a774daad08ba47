package commerce

import (
	"context"
	"fmt"
	"net/http"
)

type PickupDetails struct {
	Recipient Recipient `json:"recipient"`
	PickupAt  string    `json:"pickup_at,omitempty"`
}

type ShipmentDetails struct {
	Recipient         Recipient `json:"recipient"`
	ExpectedShippedAt string    `json:"expected_shipped_at,omitempty"`
}

type Fulfillment struct {
	UID             string           `json:"uid,omitempty"`
	Type            string           `json:"type"`
	State           string           `json:"state"`
	PickupDetails   *PickupDetails   `json:"pickup_details,omitempty"`
	ShipmentDetails *ShipmentDetails `json:"shipment_details,omitempty"`
}

type Tender struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	AmountMoney Money  `json:"amount_money"`
}

type LineItem struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	TotalMoney Money  `json:"total_money"`
}

type Order struct {
	ID           string        `json:"id"`
	LocationID   string        `json:"location_id"`
	Version      int64         `json:"version"`
	TotalMoney   Money         `json:"total_money"`
	Fulfillments []Fulfillment `json:"fulfillments,omitempty"`
	LineItems    []LineItem    `json:"line_items,omitempty"`
	Tenders      []Tender      `json:"tenders,omitempty"`
}

type Location struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Timezone string   `json:"timezone,omitempty"`
	Address  *Address `json:"address,omitempty"`
}

// OrderUpdate is a sparse order update. Version must be the latest known
// order version, the API rejects stale writes. IdempotencyKey must be
// fresh for every call.
type OrderUpdate struct {
	Fulfillments   []Fulfillment
	Version        int64
	IdempotencyKey string
}

type batchRetrieveOrdersRequest struct {
	OrderIDs []string `json:"order_ids"`
}

type batchRetrieveOrdersResponse struct {
	Orders []Order `json:"orders"`
}

// BatchRetrieveOrders fetches the latest state of the given orders at a
// location.
func (c *Client) BatchRetrieveOrders(ctx context.Context, locationID string, orderIDs []string) ([]Order, error) {
	path := fmt.Sprintf("/v2/locations/%s/orders/batch-retrieve", locationID)

	var response batchRetrieveOrdersResponse
	if err := c.do(ctx, http.MethodPost, path, batchRetrieveOrdersRequest{OrderIDs: orderIDs}, &response); err != nil {
		return nil, err
	}

	return response.Orders, nil
}

type orderPatch struct {
	Fulfillments   []Fulfillment `json:"fulfillments"`
	Version        int64         `json:"version"`
	IdempotencyKey string        `json:"idempotency_key"`
}

type updateOrderRequest struct {
	Order orderPatch `json:"order"`
}

type updateOrderResponse struct {
	Order Order `json:"order"`
}

// UpdateOrder applies a version-checked update to the order.
func (c *Client) UpdateOrder(ctx context.Context, locationID, orderID string, update OrderUpdate) (*Order, error) {
	path := fmt.Sprintf("/v2/locations/%s/orders/%s", locationID, orderID)

	request := updateOrderRequest{
		Order: orderPatch{
			Fulfillments:   update.Fulfillments,
			Version:        update.Version,
			IdempotencyKey: update.IdempotencyKey,
		},
	}

	var response updateOrderResponse
	if err := c.do(ctx, http.MethodPut, path, request, &response); err != nil {
		return nil, err
	}

	return &response.Order, nil
}

type retrieveLocationResponse struct {
	Location Location `json:"location"`
}

func (c *Client) RetrieveLocation(ctx context.Context, locationID string) (*Location, error) {
	var response retrieveLocationResponse
	if err := c.do(ctx, http.MethodGet, "/v2/locations/"+locationID, nil, &response); err != nil {
		return nil, err
	}

	return &response.Location, nil
}
