package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/logger"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/middlewares"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

type Config struct {
	// Endpoint is the address and port the server listens on.
	Endpoint string
	// ApplicationID is handed to the payment page for the client-side
	// card form.
	ApplicationID string
}

type Router struct {
	config          Config
	checkoutService models.CheckoutService
	paymentService  models.PaymentService
	loyaltyService  models.LoyaltyService
	renderer        models.Renderer
}

// New creates a Router with the given dependencies.
func New(
	config Config,
	checkoutService models.CheckoutService,
	paymentService models.PaymentService,
	loyaltyService models.LoyaltyService,
	renderer models.Renderer,
) *Router {
	return &Router{
		config:          config,
		checkoutService: checkoutService,
		paymentService:  paymentService,
		loyaltyService:  loyaltyService,
		renderer:        renderer,
	}
}

// get returns the configured router.
func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.checkoutService,
			router.paymentService,
			router.loyaltyService,
			router.renderer,
			router.config.ApplicationID,
		),
		logger.RequestLogger,
	)

	r.Route("/checkout", func(r chi.Router) {
		// Step 1: choose between pickup and delivery.
		r.Get("/choose-delivery-pickup", ChooseDeliveryPickup)
		r.With(middlewares.FormMiddleware).Post("/choose-delivery-pickup", SubmitFulfillmentType)

		// Step 2: collect the fulfillment details.
		r.Get("/add-pickup-details", AddPickupDetails)
		r.With(middlewares.FormMiddleware).Post("/add-pickup-details", SubmitPickupDetails)
		r.Get("/add-delivery-details", AddDeliveryDetails)
		r.With(middlewares.FormMiddleware).Post("/add-delivery-details", SubmitDeliveryDetails)

		// Step 3: pay, with optional loyalty linking and redemption.
		r.Get("/payment", PaymentPage)
		r.With(middlewares.FormMiddleware).Post("/payment", SubmitPayment)
		r.With(middlewares.FormMiddleware).Post("/add-loyalty-account", AddLoyaltyAccount)
		r.With(middlewares.FormMiddleware).Post("/redeem-loyalty-reward", RedeemLoyaltyReward)
	})

	r.Route("/order-confirmation", func(r chi.Router) {
		r.Get("/", OrderConfirmation)
		r.With(middlewares.FormMiddleware).Post("/add-loyalty-point", AddLoyaltyPoint)
	})

	return r
}

// Run starts the HTTP server on the configured endpoint.
func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
