package config

// Default returns the complete built-in configuration.
func Default() *Config {
	return &Config{
		Server: &ServerConfig{
			APIKeyEnv: "STATICPRESS_API_KEY",
		},
		Pipeline: DefaultPipelineConfig(),
		Queue:    DefaultQueueConfig(),
		Oracle:   DefaultOracleConfig(),
		Edge: &EdgeConfig{
			BaseURL:     "https://api.edge.example.com",
			APITokenEnv: "EDGE_API_TOKEN",
		},
		Measure: &MeasureConfig{
			Endpoint:  "https://www.googleapis.com/pagespeedonline/v5/runPagespeed",
			APIKeyEnv: "PAGESPEED_API_KEY",
		},
		Browser: &BrowserConfig{
			Addr: "localhost:50052",
		},
		Retention: DefaultRetentionConfig(),
	}
}
