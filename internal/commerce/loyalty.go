package commerce

import (
	"context"
	"fmt"
	"net/http"
)

type RewardTier struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type LoyaltyProgram struct {
	ID          string       `json:"id"`
	RewardTiers []RewardTier `json:"reward_tiers,omitempty"`
}

type AccountMapping struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

const accountMappingTypePhone = "PHONE"

type LoyaltyAccount struct {
	ID        string           `json:"id"`
	ProgramID string           `json:"program_id"`
	Balance   int              `json:"balance"`
	Mappings  []AccountMapping `json:"mappings,omitempty"`
}

type Reward struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	LoyaltyAccountID string `json:"loyalty_account_id"`
	RewardTierID     string `json:"reward_tier_id"`
}

// RewardRequest attaches the discount of a reward tier to an order.
type RewardRequest struct {
	OrderID          string
	LoyaltyAccountID string
	RewardTierID     string
}

type listProgramsResponse struct {
	Programs []LoyaltyProgram `json:"programs"`
}

func (c *Client) ListPrograms(ctx context.Context) ([]LoyaltyProgram, error) {
	var response listProgramsResponse
	if err := c.do(ctx, http.MethodGet, "/v2/loyalty/programs", nil, &response); err != nil {
		return nil, err
	}

	return response.Programs, nil
}

type retrieveAccountResponse struct {
	LoyaltyAccount LoyaltyAccount `json:"loyalty_account"`
}

func (c *Client) RetrieveAccount(ctx context.Context, accountID string) (*LoyaltyAccount, error) {
	var response retrieveAccountResponse
	if err := c.do(ctx, http.MethodGet, "/v2/loyalty/accounts/"+accountID, nil, &response); err != nil {
		return nil, err
	}

	return &response.LoyaltyAccount, nil
}

type searchAccountsQuery struct {
	Mappings []AccountMapping `json:"mappings"`
}

type searchAccountsRequest struct {
	Query searchAccountsQuery `json:"query"`
}

type searchAccountsResponse struct {
	LoyaltyAccounts []LoyaltyAccount `json:"loyalty_accounts"`
}

// SearchAccountsByPhone lists the accounts mapped to the given phone
// number. The number must already be in the API's expected format.
func (c *Client) SearchAccountsByPhone(ctx context.Context, phoneNumber string) ([]LoyaltyAccount, error) {
	request := searchAccountsRequest{
		Query: searchAccountsQuery{
			Mappings: []AccountMapping{{Type: accountMappingTypePhone, Value: phoneNumber}},
		},
	}

	var response searchAccountsResponse
	if err := c.do(ctx, http.MethodPost, "/v2/loyalty/accounts/search", request, &response); err != nil {
		return nil, err
	}

	return response.LoyaltyAccounts, nil
}

type createAccountPayload struct {
	ProgramID string           `json:"program_id"`
	Mappings  []AccountMapping `json:"mappings"`
}

type createAccountRequest struct {
	IdempotencyKey string               `json:"idempotency_key"`
	LoyaltyAccount createAccountPayload `json:"loyalty_account"`
}

type createAccountResponse struct {
	LoyaltyAccount LoyaltyAccount `json:"loyalty_account"`
}

func (c *Client) CreateAccount(ctx context.Context, programID, phoneNumber, idempotencyKey string) (*LoyaltyAccount, error) {
	request := createAccountRequest{
		IdempotencyKey: idempotencyKey,
		LoyaltyAccount: createAccountPayload{
			ProgramID: programID,
			Mappings:  []AccountMapping{{Type: accountMappingTypePhone, Value: phoneNumber}},
		},
	}

	var response createAccountResponse
	if err := c.do(ctx, http.MethodPost, "/v2/loyalty/accounts", request, &response); err != nil {
		return nil, err
	}

	return &response.LoyaltyAccount, nil
}

type calculatePointsRequest struct {
	OrderID string `json:"order_id"`
}

type calculatePointsResponse struct {
	Points int `json:"points"`
}

// CalculatePoints asks the program how many points the order earns.
func (c *Client) CalculatePoints(ctx context.Context, programID, orderID string) (int, error) {
	path := fmt.Sprintf("/v2/loyalty/programs/%s/calculate", programID)

	var response calculatePointsResponse
	if err := c.do(ctx, http.MethodPost, path, calculatePointsRequest{OrderID: orderID}, &response); err != nil {
		return 0, err
	}

	return response.Points, nil
}

type accumulatePointsPayload struct {
	OrderID string `json:"order_id"`
}

type accumulatePointsRequest struct {
	IdempotencyKey   string                  `json:"idempotency_key"`
	LocationID       string                  `json:"location_id"`
	AccumulatePoints accumulatePointsPayload `json:"accumulate_points"`
}

func (c *Client) AccumulatePoints(ctx context.Context, accountID, orderID, locationID, idempotencyKey string) error {
	path := fmt.Sprintf("/v2/loyalty/accounts/%s/accumulate", accountID)

	request := accumulatePointsRequest{
		IdempotencyKey:   idempotencyKey,
		LocationID:       locationID,
		AccumulatePoints: accumulatePointsPayload{OrderID: orderID},
	}

	return c.do(ctx, http.MethodPost, path, request, nil)
}

type rewardPayload struct {
	OrderID          string `json:"order_id"`
	LoyaltyAccountID string `json:"loyalty_account_id"`
	RewardTierID     string `json:"reward_tier_id"`
}

type createRewardRequest struct {
	IdempotencyKey string        `json:"idempotency_key"`
	Reward         rewardPayload `json:"reward"`
}

type createRewardResponse struct {
	Reward Reward `json:"reward"`
}

func (c *Client) CreateReward(ctx context.Context, request RewardRequest, idempotencyKey string) (*Reward, error) {
	payload := createRewardRequest{
		IdempotencyKey: idempotencyKey,
		Reward: rewardPayload{
			OrderID:          request.OrderID,
			LoyaltyAccountID: request.LoyaltyAccountID,
			RewardTierID:     request.RewardTierID,
		},
	}

	var response createRewardResponse
	if err := c.do(ctx, http.MethodPost, "/v2/loyalty/rewards", payload, &response); err != nil {
		return nil, err
	}

	return &response.Reward, nil
}
