package models

type RewardTier struct {
	ID     string
	Name   string
	Points int
}

// LoyaltyInfo is the loyalty display state for the payment page.
type LoyaltyInfo struct {
	ProgramActive        bool
	AccountID            string
	AccountNotFound      bool
	Balance              int
	AvailableRewardTiers []RewardTier
}
