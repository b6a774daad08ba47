package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hashicorp/go-multierror"
)

type Config struct {
	endpoint      string
	apiEndpoint   string
	accessToken   string
	applicationID string
	logLevel      string
	env           string
}

func NewConfig() Config {
	var (
		endpoint    string
		apiEndpoint string
	)

	flag.StringVar(&endpoint, "a", "localhost:8080", "address and port to run server")
	flag.StringVar(&apiEndpoint, "c", "https://connect.squareupsandbox.com", "base URL of the commerce API")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if api := os.Getenv("COMMERCE_API_ENDPOINT"); api != "" {
		apiEndpoint = api
	}

	accessToken := os.Getenv("COMMERCE_ACCESS_TOKEN")
	applicationID := os.Getenv("COMMERCE_APPLICATION_ID")

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}

	return Config{
		endpoint,
		apiEndpoint,
		accessToken,
		applicationID,
		logLevel,
		env,
	}
}

// validate collects every configuration problem instead of stopping at the
// first one.
func (c Config) validate() error {
	var result *multierror.Error

	if c.apiEndpoint == "" {
		result = multierror.Append(result, errors.New("commerce API endpoint is not set"))
	}

	if c.accessToken == "" {
		result = multierror.Append(result, errors.New("COMMERCE_ACCESS_TOKEN is not set"))
	}

	if c.applicationID == "" {
		result = multierror.Append(result, errors.New("COMMERCE_APPLICATION_ID is not set"))
	}

	return result.ErrorOrNil()
}
