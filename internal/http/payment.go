package router

import (
	"net/http"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/middlewares"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

func PaymentPage(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.URL.Query())
	checkoutService := middlewares.GetServiceFromContext[models.CheckoutService](w, r, middlewares.CheckoutServiceKey)
	loyaltyService := middlewares.GetServiceFromContext[models.LoyaltyService](w, r, middlewares.LoyaltyServiceKey)

	summary, err := (*checkoutService).GetOrderSummary(r.Context(), state.OrderID, state.LocationID)

	if err != nil {
		handleServiceError(w, "getting order", err)
		return
	}

	// Payment requires fulfillment details, fall back to the chooser when
	// that step was skipped.
	if !summary.Order.HasFulfillment() {
		next := models.CheckoutState{OrderID: state.OrderID, LocationID: state.LocationID}
		http.Redirect(w, r, next.URL("/checkout/choose-delivery-pickup"), http.StatusFound)
		return
	}

	loyaltyInfo, err := (*loyaltyService).ProgramOverview(r.Context(), state.LoyaltyAccountID, state.Redeemed)

	if err != nil {
		handleServiceError(w, "getting loyalty state", err)
		return
	}

	applicationID := middlewares.GetServiceFromContext[string](w, r, middlewares.ApplicationIDKey)

	renderPage(w, r, "payment", models.PageData{
		"OrderInfo":     summary.Order,
		"LocationInfo":  summary.Location,
		"LoyaltyInfo":   loyaltyInfo,
		"ApplicationID": *applicationID,
		"State":         state,
	})
}

func SubmitPayment(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.PostForm)
	paymentService := middlewares.GetServiceFromContext[models.PaymentService](w, r, middlewares.PaymentServiceKey)

	nonce := r.PostFormValue("nonce")

	if len(nonce) == 0 {
		http.Error(w, "Card nonce is empty", http.StatusUnprocessableEntity)
		return
	}

	if err := (*paymentService).ChargeOrder(r.Context(), state.OrderID, state.LocationID, nonce); err != nil {
		handleServiceError(w, "creating payment", err)
		return
	}

	next := models.CheckoutState{OrderID: state.OrderID, LocationID: state.LocationID}
	http.Redirect(w, r, next.URL("/order-confirmation"), http.StatusFound)
}
