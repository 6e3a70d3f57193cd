package httpx

import (
	"context"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// ThrottleConfig defines the request-pacing parameters for one instance.
type ThrottleConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window the budget applies to
	Window time.Duration
	// Burst allows for temporary bursts above the steady rate
	Burst int
}

// InstanceLimit is the default Mastodon request budget: 300 requests per
// 5 minutes per account. Override with THROTTLE_REQUESTS,
// THROTTLE_WINDOW_SEC and THROTTLE_BURST.
var InstanceLimit = ThrottleConfig{
	RequestsPerWindow: 300,
	Window:            5 * time.Minute,
	Burst:             30,
}

func init() {
	InstanceLimit = ParseThrottleFromEnv(InstanceLimit)
}

// ParseThrottleFromEnv reads throttle configuration overrides from
// environment variables (useful for testing against local instances).
func ParseThrottleFromEnv(defaultConfig ThrottleConfig) ThrottleConfig {
	config := defaultConfig

	if val := os.Getenv("THROTTLE_REQUESTS"); val != "" {
		if requests, err := strconv.Atoi(val); err == nil && requests > 0 {
			config.RequestsPerWindow = requests
		}
	}

	if val := os.Getenv("THROTTLE_WINDOW_SEC"); val != "" {
		if windowSec, err := strconv.Atoi(val); err == nil && windowSec > 0 {
			config.Window = time.Duration(windowSec) * time.Second
		}
	}

	if val := os.Getenv("THROTTLE_BURST"); val != "" {
		if burst, err := strconv.Atoi(val); err == nil && burst > 0 {
			config.Burst = burst
		}
	}

	return config
}

// Throttle paces outgoing requests so a client stays inside the instance's
// request budget. It only ever waits before a send; it never retries a
// request on its own.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle builds a throttle from the given budget.
func NewThrottle(config ThrottleConfig) *Throttle {
	perSecond := float64(config.RequestsPerWindow) / config.Window.Seconds()
	return &Throttle{
		limiter: rate.NewLimiter(rate.Limit(perSecond), config.Burst),
	}
}

// Wait blocks until the next request may be sent or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// Allow reports whether a request could be sent right now without waiting,
// consuming budget if so.
func (t *Throttle) Allow() bool {
	return t.limiter.Allow()
}
