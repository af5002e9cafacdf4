package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/architeacher/svc-log-forwarder/internal/config"
)

func TestExponential_Backoff(t *testing.T) {
	t.Parallel()

	strategy := NewExponentialStrategy(config.BackoffConfig{
		BaseDelay:  100 * time.Millisecond,
		Multiplier: 2,
		MaxDelay:   time.Second,
	})

	testCases := []struct {
		retries  int
		expected time.Duration
	}{
		{retries: -1, expected: 100 * time.Millisecond},
		{retries: 0, expected: 100 * time.Millisecond},
		{retries: 1, expected: 200 * time.Millisecond},
		{retries: 2, expected: 400 * time.Millisecond},
		{retries: 3, expected: 800 * time.Millisecond},
		{retries: 4, expected: time.Second},
		{retries: 10_000, expected: time.Second},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, strategy.Backoff(tc.retries), "retries=%d", tc.retries)
	}
}

func TestExponential_BackoffJitter(t *testing.T) {
	t.Parallel()

	strategy := NewExponentialStrategy(config.BackoffConfig{
		BaseDelay:  100 * time.Millisecond,
		Multiplier: 2,
		Jitter:     0.5,
		MaxDelay:   time.Second,
	})

	strategy.random = func() float64 { return 0 }
	assert.Equal(t, 200*time.Millisecond, strategy.Backoff(2))

	strategy.random = func() float64 { return 1 }
	assert.Equal(t, 600*time.Millisecond, strategy.Backoff(2))

	strategy.random = func() float64 { return 0.5 }
	assert.Equal(t, 400*time.Millisecond, strategy.Backoff(2))
}

func TestNewExponentialStrategy_NormalizesConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cfg      config.BackoffConfig
		retries  int
		expected time.Duration
	}{
		{
			name:     "multiplier below one keeps the base delay",
			cfg:      config.BackoffConfig{BaseDelay: time.Second, Multiplier: 0.5, MaxDelay: time.Minute},
			retries:  5,
			expected: time.Second,
		},
		{
			name:     "max delay below base is raised to base",
			cfg:      config.BackoffConfig{BaseDelay: time.Second, Multiplier: 2, MaxDelay: time.Millisecond},
			retries:  3,
			expected: time.Second,
		},
		{
			name:     "negative jitter is ignored",
			cfg:      config.BackoffConfig{BaseDelay: time.Second, Multiplier: 2, Jitter: -3, MaxDelay: time.Minute},
			retries:  1,
			expected: 2 * time.Second,
		},
		{
			name:     "negative base delay means no wait",
			cfg:      config.BackoffConfig{BaseDelay: -time.Second, Multiplier: 2},
			retries:  2,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			strategy := NewExponentialStrategy(tc.cfg)

			assert.Equal(t, tc.expected, strategy.Backoff(tc.retries))
		})
	}
}

func TestNewExponentialStrategy_ClampsJitter(t *testing.T) {
	t.Parallel()

	strategy := NewExponentialStrategy(config.BackoffConfig{BaseDelay: time.Second, Multiplier: 1, Jitter: 4})
	strategy.random = func() float64 { return 0 }

	assert.Equal(t, time.Duration(0), strategy.Backoff(0))
}
