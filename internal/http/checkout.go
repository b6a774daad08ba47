package router

import (
	"net/http"
	"time"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/middlewares"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

func ChooseDeliveryPickup(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.URL.Query())
	checkoutService := middlewares.GetServiceFromContext[models.CheckoutService](w, r, middlewares.CheckoutServiceKey)

	summary, err := (*checkoutService).GetOrderSummary(r.Context(), state.OrderID, state.LocationID)

	if err != nil {
		handleServiceError(w, "getting order", err)
		return
	}

	renderPage(w, r, "choose-delivery-pickup", models.PageData{
		"OrderInfo":    summary.Order,
		"LocationInfo": summary.Location,
		"State":        state,
	})
}

func SubmitFulfillmentType(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.PostForm)

	fulfillmentType, err := models.ParseFulfillmentType(r.PostFormValue("fulfillment_type"))

	if err != nil {
		http.Error(w, "Fulfillment type is invalid", http.StatusUnprocessableEntity)
		return
	}

	target := "/checkout/add-delivery-details"
	if fulfillmentType == models.FulfillmentTypePickup {
		target = "/checkout/add-pickup-details"
	}

	next := models.CheckoutState{OrderID: state.OrderID, LocationID: state.LocationID}
	http.Redirect(w, r, next.URL(target), http.StatusFound)
}

func AddPickupDetails(w http.ResponseWriter, r *http.Request) {
	renderDetailsForm(w, r, "add-pickup-details")
}

func AddDeliveryDetails(w http.ResponseWriter, r *http.Request) {
	renderDetailsForm(w, r, "add-delivery-details")
}

func renderDetailsForm(w http.ResponseWriter, r *http.Request, page string) {
	state := models.ParseCheckoutState(r.URL.Query())
	checkoutService := middlewares.GetServiceFromContext[models.CheckoutService](w, r, middlewares.CheckoutServiceKey)

	summary, err := (*checkoutService).GetOrderSummary(r.Context(), state.OrderID, state.LocationID)

	if err != nil {
		handleServiceError(w, "getting order", err)
		return
	}

	renderPage(w, r, page, models.PageData{
		"OrderInfo":    summary.Order,
		"LocationInfo": summary.Location,
		"TimeSlots":    models.UpcomingTimeSlots(time.Now()),
		"State":        state,
	})
}

func SubmitPickupDetails(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.PostForm)
	checkoutService := middlewares.GetServiceFromContext[models.CheckoutService](w, r, middlewares.CheckoutServiceKey)

	details := models.PickupDetails{
		Recipient: models.Recipient{
			DisplayName: r.PostFormValue("pickup_name"),
			PhoneNumber: r.PostFormValue("pickup_number"),
			Email:       r.PostFormValue("pickup_email"),
		},
		PickupAt: r.PostFormValue("pickup_time"),
	}

	if err := (*checkoutService).ApplyPickupDetails(r.Context(), state.OrderID, state.LocationID, details); err != nil {
		handleServiceError(w, "updating order", err)
		return
	}

	next := models.CheckoutState{OrderID: state.OrderID, LocationID: state.LocationID}
	http.Redirect(w, r, next.URL("/checkout/payment"), http.StatusFound)
}

func SubmitDeliveryDetails(w http.ResponseWriter, r *http.Request) {
	state := models.ParseCheckoutState(r.PostForm)
	checkoutService := middlewares.GetServiceFromContext[models.CheckoutService](w, r, middlewares.CheckoutServiceKey)

	details := models.DeliveryDetails{
		Recipient: models.Recipient{
			DisplayName: r.PostFormValue("delivery_name"),
			PhoneNumber: r.PostFormValue("delivery_number"),
			Email:       r.PostFormValue("delivery_email"),
		},
		Address: models.Address{
			Line1:      r.PostFormValue("delivery_address"),
			Locality:   r.PostFormValue("delivery_city"),
			District:   r.PostFormValue("delivery_state"),
			PostalCode: r.PostFormValue("delivery_postal"),
		},
		ExpectedShippedAt: r.PostFormValue("delivery_time"),
	}

	if err := (*checkoutService).ApplyDeliveryDetails(r.Context(), state.OrderID, state.LocationID, details); err != nil {
		handleServiceError(w, "updating order", err)
		return
	}

	next := models.CheckoutState{OrderID: state.OrderID, LocationID: state.LocationID}
	http.Redirect(w, r, next.URL("/checkout/payment"), http.StatusFound)
}
