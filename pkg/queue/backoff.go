package queue

import (
	"math/rand/v2"
	"time"

	"github.com/metrics-lab/staticpress/pkg/config"
)

// retryDelay computes the exponential backoff before the given attempt
// re-enters the ready set: base * factor^(attempt-1), jittered ±20%.
func retryDelay(cfg *config.QueueConfig, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := cfg.RetryBaseDelay
	for i := 1; i < attempt; i++ {
		delay *= time.Duration(cfg.RetryFactor)
	}
	// Jitter in [0.8, 1.2).
	factor := 0.8 + rand.Float64()*0.4
	return time.Duration(float64(delay) * factor)
}
