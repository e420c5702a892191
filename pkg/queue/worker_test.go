package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/metrics-lab/staticpress/pkg/config"
)

func TestPollInterval_WithJitter(t *testing.T) {
	w := &Worker{
		config: &config.QueueConfig{
			PollInterval:       time.Second,
			PollIntervalJitter: 500 * time.Millisecond,
		},
	}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollInterval_NoJitter(t *testing.T) {
	w := &Worker{
		config: &config.QueueConfig{PollInterval: 2 * time.Second},
	}
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestRetryDelay_ExponentialWithJitter(t *testing.T) {
	cfg := &config.QueueConfig{
		RetryBaseDelay: 10 * time.Second,
		RetryFactor:    2,
	}

	tests := []struct {
		attempt int
		nominal time.Duration
	}{
		{1, 10 * time.Second},
		{2, 20 * time.Second},
		{3, 40 * time.Second},
		{4, 80 * time.Second},
		{5, 160 * time.Second},
	}
	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			d := retryDelay(cfg, tt.attempt)
			low := time.Duration(float64(tt.nominal) * 0.8)
			high := time.Duration(float64(tt.nominal) * 1.2)
			assert.GreaterOrEqual(t, d, low, "attempt %d", tt.attempt)
			assert.LessOrEqual(t, d, high, "attempt %d", tt.attempt)
		}
	}
}

func TestRetryDelay_ZeroAttemptClamped(t *testing.T) {
	cfg := &config.QueueConfig{RetryBaseDelay: 10 * time.Second, RetryFactor: 2}
	d := retryDelay(cfg, 0)
	assert.GreaterOrEqual(t, d, 8*time.Second)
	assert.LessOrEqual(t, d, 12*time.Second)
}
