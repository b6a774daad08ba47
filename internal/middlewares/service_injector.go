package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
)

type key int

const (
	CheckoutServiceKey key = iota
	PaymentServiceKey
	LoyaltyServiceKey
	RendererKey
	ApplicationIDKey
)

// ServiceInjectorMiddleware makes the services, the renderer and the
// configured application id available to handlers through the request
// context.
func ServiceInjectorMiddleware(
	checkoutService models.CheckoutService,
	paymentService models.PaymentService,
	loyaltyService models.LoyaltyService,
	renderer models.Renderer,
	applicationID string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), CheckoutServiceKey, checkoutService)
			ctx = context.WithValue(ctx, PaymentServiceKey, paymentService)
			ctx = context.WithValue(ctx, LoyaltyServiceKey, loyaltyService)
			ctx = context.WithValue(ctx, RendererKey, renderer)
			ctx = context.WithValue(ctx, ApplicationIDKey, applicationID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
