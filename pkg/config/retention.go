package config

import "time"

// RetentionConfig controls the background artifact sweep.
type RetentionConfig struct {
	// KeepSuccessfulBuilds is how many successful builds' artifact
	// directories are retained per site; older ones are pruned.
	KeepSuccessfulBuilds int `yaml:"keep_successful_builds"`

	// SweepInterval is how often the sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		KeepSuccessfulBuilds: 10,
		SweepInterval:        6 * time.Hour,
	}
}
