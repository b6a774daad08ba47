package main

import (
	"log"
	"time"

	"github.com/tamstreatsandsweets/connect-api-examples/internal/commerce"
	router "github.com/tamstreatsandsweets/connect-api-examples/internal/http"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/logger"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/services"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/utils"
	"github.com/tamstreatsandsweets/connect-api-examples/internal/views"
)

func main() {
	config := NewConfig()

	if err := config.validate(); err != nil {
		log.Fatalf("Configuration is invalid: %s", err)
	}

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	client := commerce.New(commerce.Config{
		BaseURL:     config.apiEndpoint,
		AccessToken: config.accessToken,
		Timeout:     10 * time.Second,
	})

	renderer, err := views.New()

	if err != nil {
		log.Fatalf("Views weren't initialized due to %s", err)
	}

	utils.HandleTerminationProcess(func() {
		_ = logger.Log.Sync()
	})

	log.Printf("Running server on %s\n", config.endpoint)

	router.New(
		router.Config{Endpoint: config.endpoint, ApplicationID: config.applicationID},
		services.NewCheckoutService(client),
		services.NewPaymentService(client),
		services.NewLoyaltyService(client),
		renderer,
	).Run()
}
