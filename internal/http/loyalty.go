package router

import (
	"net/http"
	"net/url"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/middlewares"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

// referrerPath extracts the path of the page the form was submitted from,
// so the loyalty actions can send the customer back where they came from.
func referrerPath(r *http.Request) string {
	if parsed, err := url.Parse(r.Referer()); err == nil && parsed.Path != "" {
		return parsed.Path
	}

	return "/checkout/payment"
}

func AddLoyaltyAccount(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.PostForm)
	loyaltyService := middlewares.GetServiceFromContext[models.LoyaltyService](w, r, middlewares.LoyaltyServiceKey)

	phoneNumber := r.PostFormValue("phone_number")

	if len(phoneNumber) == 0 {
		http.Error(w, "Phone number is empty", http.StatusUnprocessableEntity)
		return
	}

	accountID, err := (*loyaltyService).FindAccountByPhone(r.Context(), phoneNumber)

	if err != nil {
		handleServiceError(w, "searching loyalty accounts", err)
		return
	}

	next := models.CheckoutState{
		OrderID:          state.OrderID,
		LocationID:       state.LocationID,
		LoyaltyAccountID: accountID,
	}
	http.Redirect(w, r, next.URL(referrerPath(r)), http.StatusFound)
}

func RedeemLoyaltyReward(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.PostForm)
	loyaltyService := middlewares.GetServiceFromContext[models.LoyaltyService](w, r, middlewares.LoyaltyServiceKey)

	rewardTierID := r.PostFormValue("reward_tier_id")

	if len(state.LoyaltyAccountID) == 0 || len(rewardTierID) == 0 {
		http.Error(w, "Loyalty account id or reward tier id is empty", http.StatusUnprocessableEntity)
		return
	}

	if err := (*loyaltyService).RedeemReward(r.Context(), state.OrderID, state.LoyaltyAccountID, rewardTierID); err != nil {
		handleServiceError(w, "redeeming reward", err)
		return
	}

	// Redeemed is marked so the payment page suppresses further
	// redemption offers in this pass.
	next := models.CheckoutState{
		OrderID:          state.OrderID,
		LocationID:       state.LocationID,
		LoyaltyAccountID: state.LoyaltyAccountID,
		Redeemed:         true,
	}
	http.Redirect(w, r, next.URL(referrerPath(r)), http.StatusFound)
}
