package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/commerce"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/logger"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
	"go.uber.org/zap"
)

var ErrNoLoyaltyProgram = errors.New("loyalty program is not configured")

// phoneCountryCode is the fixed prefix account phone mappings are stored
// under.
const phoneCountryCode = "+1"

// LoyaltyService links loyalty accounts to the checkout, redeems rewards
// and accumulates points after payment.
type LoyaltyService struct {
	client loyaltyClient
}

type loyaltyClient interface {
	ListPrograms(ctx context.Context) ([]commerce.LoyaltyProgram, error)

	RetrieveAccount(ctx context.Context, accountID string) (*commerce.LoyaltyAccount, error)

	SearchAccountsByPhone(ctx context.Context, phoneNumber string) ([]commerce.LoyaltyAccount, error)

	CreateAccount(ctx context.Context, programID, phoneNumber, idempotencyKey string) (*commerce.LoyaltyAccount, error)

	CalculatePoints(ctx context.Context, programID, orderID string) (int, error)

	AccumulatePoints(ctx context.Context, accountID, orderID, locationID, idempotencyKey string) error

	CreateReward(ctx context.Context, request commerce.RewardRequest, idempotencyKey string) (*commerce.Reward, error)
}

func NewLoyaltyService(client loyaltyClient) *LoyaltyService {
	return &LoyaltyService{client: client}
}

// NormalizePhone strips formatting characters and prefixes the fixed
// country code, matching how account phone mappings are stored.
func NormalizePhone(raw string) string {
	var digits strings.Builder

	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	return phoneCountryCode + digits.String()
}

// ProgramOverview computes the loyalty display state for the payment page.
// The program counts as active only when one exists and the caller has not
// just redeemed a reward in this pass. An unknown account id is a display
// flag, not an error.
func (l *LoyaltyService) ProgramOverview(ctx context.Context, accountID string, redeemed bool) (models.LoyaltyInfo, error) {
	programs, err := l.client.ListPrograms(ctx)
	if err != nil {
		return models.LoyaltyInfo{}, fmt.Errorf("failed to list loyalty programs: %w", err)
	}

	if len(programs) == 0 || redeemed {
		return models.LoyaltyInfo{ProgramActive: false}, nil
	}

	info := models.LoyaltyInfo{ProgramActive: true}

	if accountID == "" {
		return info, nil
	}

	account, err := l.client.RetrieveAccount(ctx, accountID)

	if errors.Is(err, commerce.ErrNotFound) {
		info.AccountNotFound = true
		return info, nil
	}

	if err != nil {
		return models.LoyaltyInfo{}, fmt.Errorf("failed to retrieve loyalty account: %w", err)
	}

	info.AccountID = account.ID
	info.Balance = account.Balance

	// A tier is redeemable when its threshold is within the balance,
	// boundary included.
	for _, tier := range programs[0].RewardTiers {
		if tier.Points <= account.Balance {
			info.AvailableRewardTiers = append(info.AvailableRewardTiers, models.RewardTier{
				ID:     tier.ID,
				Name:   tier.Name,
				Points: tier.Points,
			})
		}
	}

	return info, nil
}

// FindAccountByPhone returns the id of the first account mapped to the
// phone number, or an empty id when none matches.
func (l *LoyaltyService) FindAccountByPhone(ctx context.Context, phoneNumber string) (string, error) {
	accounts, err := l.client.SearchAccountsByPhone(ctx, NormalizePhone(phoneNumber))
	if err != nil {
		return "", fmt.Errorf("failed to search loyalty accounts: %w", err)
	}

	if len(accounts) == 0 {
		return "", nil
	}

	return accounts[0].ID, nil
}

// RedeemReward creates a reward for the order from the given tier.
func (l *LoyaltyService) RedeemReward(ctx context.Context, orderID, accountID, rewardTierID string) error {
	request := commerce.RewardRequest{
		OrderID:          orderID,
		LoyaltyAccountID: accountID,
		RewardTierID:     rewardTierID,
	}

	reward, err := l.client.CreateReward(ctx, request, NewIdempotencyKey())
	if err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}

	logger.Log.Info("created loyalty reward",
		zap.String("orderID", orderID),
		zap.String("rewardID", reward.ID),
	)

	return nil
}

// AccumulatePoints credits the points a paid order earns to the account
// mapped to the phone number, creating the account when it does not exist
// yet. The accumulate call is skipped entirely when the order earns no
// points.
func (l *LoyaltyService) AccumulatePoints(ctx context.Context, orderID, locationID, phoneNumber string) error {
	formatted := NormalizePhone(phoneNumber)

	programs, err := l.client.ListPrograms(ctx)
	if err != nil {
		return fmt.Errorf("failed to list loyalty programs: %w", err)
	}

	if len(programs) == 0 {
		return ErrNoLoyaltyProgram
	}

	program := programs[0]

	accounts, err := l.client.SearchAccountsByPhone(ctx, formatted)
	if err != nil {
		return fmt.Errorf("failed to search loyalty accounts: %w", err)
	}

	var account *commerce.LoyaltyAccount

	if len(accounts) > 0 {
		account = &accounts[0]
	} else {
		account, err = l.client.CreateAccount(ctx, program.ID, formatted, NewIdempotencyKey())
		if err != nil {
			return fmt.Errorf("failed to create loyalty account: %w", err)
		}

		logger.Log.Info("created loyalty account", zap.String("accountID", account.ID))
	}

	points, err := l.client.CalculatePoints(ctx, program.ID, orderID)
	if err != nil {
		return fmt.Errorf("failed to calculate points: %w", err)
	}

	if points <= 0 {
		logger.Log.Info("order earns no points", zap.String("orderID", orderID))
		return nil
	}

	if err := l.client.AccumulatePoints(ctx, account.ID, orderID, locationID, NewIdempotencyKey()); err != nil {
		return fmt.Errorf("failed to accumulate points: %w", err)
	}

	logger.Log.Info("accumulated loyalty points",
		zap.String("orderID", orderID),
		zap.String("accountID", account.ID),
		zap.Int("points", points),
	)

	return nil
}
