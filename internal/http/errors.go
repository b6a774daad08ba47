package router

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/commerce"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/middlewares"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/models"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/services"
)

// handleServiceError maps service errors onto HTTP statuses: not-found
// conditions to 404, business-rule violations to 409, everything else to
// a generic 500.
func handleServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, commerce.ErrNotFound):
		http.Error(w, "Order was not found", http.StatusNotFound)
	case errors.Is(err, services.ErrOrderNotPaid):
		http.Error(w, "Order is not paid", http.StatusConflict)
	case errors.Is(err, services.ErrNoLoyaltyProgram):
		http.Error(w, "Loyalty program is not configured", http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Error occurred during %s: %s", action, err.Error()), http.StatusInternalServerError)
	}
}

// renderPage renders a page into a buffer first, so a template failure
// still produces a clean error response.
func renderPage(w http.ResponseWriter, r *http.Request, page string, data models.PageData) {
	renderer := middlewares.GetServiceFromContext[models.Renderer](w, r, middlewares.RendererKey)

	var buf bytes.Buffer
	if err := (*renderer).Render(&buf, page, data); err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during rendering page: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buf.WriteTo(w); err != nil {
		http.Error(w, fmt.Sprintf("Error occurred during writing response: %s", err.Error()), http.StatusInternalServerError)
	}
}
