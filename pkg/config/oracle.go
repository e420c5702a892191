package config

// OracleConfig controls the LLM oracle used by the agent loop and
// live-edit planning. The model identifier and the price table are
// deliberately configurable rather than baked in.
type OracleConfig struct {
	// Model is the model identifier sent to the provider.
	Model string `yaml:"model"`

	// APIKeyEnv names the env var holding the provider API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// MaxIterations caps agent loop iterations (AgentRun default).
	MaxIterations int `yaml:"max_iterations"`

	// MaxTokens bounds a single oracle completion.
	MaxTokens int `yaml:"max_tokens"`

	// Price table in USD per million tokens, for cost tracking.
	InputPricePerMTok  float64 `yaml:"input_price_per_mtok"`
	OutputPricePerMTok float64 `yaml:"output_price_per_mtok"`
}

// DefaultOracleConfig returns the built-in oracle defaults.
func DefaultOracleConfig() *OracleConfig {
	return &OracleConfig{
		Model:              "claude-sonnet-4-5",
		APIKeyEnv:          "ORACLE_API_KEY",
		MaxIterations:      10,
		MaxTokens:          8192,
		InputPricePerMTok:  3.0,
		OutputPricePerMTok: 15.0,
	}
}
