package config

import (
	"time"

	"golang.org/x/time/rate"
)

// APIConfig holds credentials and limits for external data providers.
// The limits are carried for the API clients; nothing here calls out.
type APIConfig struct {
	TwitterBearerToken string
	NewsAPIKey         string
	RateLimitPerMinute int
	RetryAttempts      int
	TimeoutSeconds     int
}

// DefaultAPIConfig returns the documented defaults (no credentials)
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		RetryAttempts:      DefaultRetryAttempts,
		TimeoutSeconds:     DefaultTimeoutSeconds,
	}
}

// HasTwitterAccess reports whether a bearer token is configured
func (a APIConfig) HasTwitterAccess() bool {
	return a.TwitterBearerToken != ""
}

// HasNewsAccess reports whether a news API key is configured
func (a APIConfig) HasNewsAccess() bool {
	return a.NewsAPIKey != ""
}

// Timeout returns the per-request timeout
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// NewLimiter returns a token-bucket limiter matching RateLimitPerMinute.
// A non-positive limit yields a limiter that never admits a request.
func (a APIConfig) NewLimiter() *rate.Limiter {
	if a.RateLimitPerMinute <= 0 {
		return rate.NewLimiter(0, 0)
	}
	perSecond := rate.Limit(float64(a.RateLimitPerMinute) / 60.0)
	return rate.NewLimiter(perSecond, a.RateLimitPerMinute)
}

// LoadAPI builds the API section from env
func LoadAPI(env Environ) (APIConfig, error) {
	a := DefaultAPIConfig()
	a.TwitterBearerToken = env.Get(EnvTwitterBearerToken, "")
	a.NewsAPIKey = env.Get(EnvNewsAPIKey, "")

	var err error
	if a.RateLimitPerMinute, err = env.getInt(EnvRateLimitPerMinute, a.RateLimitPerMinute); err != nil {
		return APIConfig{}, err
	}
	if a.RetryAttempts, err = env.getInt(EnvRetryAttempts, a.RetryAttempts); err != nil {
		return APIConfig{}, err
	}
	if a.TimeoutSeconds, err = env.getSeconds(EnvTimeoutSeconds, a.TimeoutSeconds); err != nil {
		return APIConfig{}, err
	}
	return a, nil
}
