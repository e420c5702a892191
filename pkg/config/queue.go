package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, reserved, and retried.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking ready jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseDuration is the visibility lease on a reserved job. Reserved
	// jobs past their lease return to the ready set (worker death).
	LeaseDuration time.Duration `yaml:"lease_duration"`

	// HeartbeatInterval is how often a working job's lease is extended.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// Retry backoff: delay = RetryBaseDelay * RetryFactor^attempt,
	// jittered ±20%, at most MaxRetries attempts.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
	RetryFactor    int           `yaml:"retry_factor"`
	MaxRetries     int           `yaml:"max_retries"`

	// ExpiredScanInterval is how often expired leases are swept back to ready.
	ExpiredScanInterval time.Duration `yaml:"expired_scan_interval"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseDuration:           30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		RetryBaseDelay:          10 * time.Second,
		RetryFactor:             2,
		MaxRetries:              5,
		ExpiredScanInterval:     1 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Minute,
	}
}
