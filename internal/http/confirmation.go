package router

import (
	"net/http"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/middlewares"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

func OrderConfirmation(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.URL.Query())
	checkoutService := middlewares.GetServiceFromContext[models.CheckoutService](w, r, middlewares.CheckoutServiceKey)

	summary, err := (*checkoutService).ConfirmOrder(r.Context(), state.OrderID, state.LocationID)

	if err != nil {
		handleServiceError(w, "confirming order", err)
		return
	}

	renderPage(w, r, "order-confirmation", models.PageData{
		"OrderInfo":    summary.Order,
		"LocationInfo": summary.Location,
		"State":        state,
	})
}

func AddLoyaltyPoint(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.PostForm)
	loyaltyService := middlewares.GetServiceFromContext[models.LoyaltyService](w, r, middlewares.LoyaltyServiceKey)

	phoneNumber := r.PostFormValue("phone_number")

	if len(phoneNumber) == 0 {
		http.Error(w, "Phone number is empty", http.StatusUnprocessableEntity)
		return
	}

	if err := (*loyaltyService).AccumulatePoints(r.Context(), state.OrderID, state.LocationID, phoneNumber); err != nil {
		handleServiceError(w, "accumulating points", err)
		return
	}

	next := models.CheckoutState{OrderID: state.OrderID, LocationID: state.LocationID}
	http.Redirect(w, r, next.URL("/order-confirmation"), http.StatusFound)
}
