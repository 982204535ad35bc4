package httpclient

import (
	circuit "github.com/rubyist/circuitbreaker"

	"trip-booking-service/config"
)

// InitCircuitBreaker builds the breaker guarding calls to other services.
// The type selects the tripping strategy.
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.ConsecutiveFailure)
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailure)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := circuit.NewHTTPClient(cfg.Timeout, cfg.ConsecutiveFailure, nil)
	client.BreakerLookup = func(c *circuit.HTTPClient, val interface{}) *circuit.Breaker {
		return cb
	}
	return client
}
