package models

import "net/url"

// CheckoutState is the state the flow carries between steps. It travels in
// the URL (or in the form body on POST) instead of a server-side session,
// so every request is self-contained.
type CheckoutState struct {
	OrderID          string
	LocationID       string
	LoyaltyAccountID string
	Redeemed         bool
}

// ParseCheckoutState reads the state from query or form values.
func ParseCheckoutState(values url.Values) CheckoutState {
	return CheckoutState{
		OrderID:          values.Get("order_id"),
		LocationID:       values.Get("location_id"),
		LoyaltyAccountID: values.Get("loyalty_account_id"),
		Redeemed:         values.Get("redeemed") == "1",
	}
}

// Values encodes the state back into query values. Empty fields are
// omitted so URLs only carry what is set.
func (s CheckoutState) Values() url.Values {
	values := url.Values{}
	values.Set("order_id", s.OrderID)
	values.Set("location_id", s.LocationID)

	if s.LoyaltyAccountID != "" {
		values.Set("loyalty_account_id", s.LoyaltyAccountID)
	}

	if s.Redeemed {
		values.Set("redeemed", "1")
	}

	return values
}

// URL builds a redirect target for the given path carrying the state.
func (s CheckoutState) URL(path string) string {
	return path + "?" + s.Values().Encode()
}
