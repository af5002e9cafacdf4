package backoff

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/architeacher/svc-log-forwarder/internal/config"
)

const maxJitter = 1.0

type (
	// Strategy returns how long to wait before the next publish attempt.
	Strategy interface {
		// Backoff returns the delay after the given number of failed retries.
		Backoff(retries int) time.Duration
	}

	// Exponential grows the delay by Multiplier per retry, caps it at MaxDelay and
	// spreads it by up to ±Jitter of its value.
	Exponential struct {
		base       time.Duration
		maxDelay   time.Duration
		multiplier float64
		jitter     float64
		random     func() float64
	}
)

// NewExponentialStrategy normalizes the configured values: the multiplier is at
// least 1, jitter lies in [0, 1] and the cap is never below the base delay.
func NewExponentialStrategy(cfg config.BackoffConfig) Exponential {
	base := max(cfg.BaseDelay, 0)

	return Exponential{
		base:       base,
		maxDelay:   max(cfg.MaxDelay, base),
		multiplier: max(cfg.Multiplier, 1),
		jitter:     min(max(cfg.Jitter, 0), maxJitter),
		random:     rand.Float64,
	}
}

func (e Exponential) Backoff(retries int) time.Duration {
	if retries < 0 {
		retries = 0
	}

	delay := float64(e.base) * math.Pow(e.multiplier, float64(retries))
	if delay > float64(e.maxDelay) || math.IsInf(delay, 1) {
		delay = float64(e.maxDelay)
	}

	if e.jitter > 0 {
		delay *= 1 + e.jitter*(e.random()*2-1)
	}

	return time.Duration(max(delay, 0))
}
