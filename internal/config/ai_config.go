package config

import "github.com/spf13/viper"

// AIConfig configures the draft generator. An empty key disables drafting:
// the pipelines then run scan-only.
type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model" validate:"required"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute" validate:"gt=0"`
	MaxRequestsPerDay    float32 `mapstructure:"max_requests_per_day" validate:"gt=0"`
}

func (config AIConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("ai.key", "AI_KEY"); err != nil {
		return err
	}

	return viper.BindEnv("ai.model", "AI_MODEL")
}

// SearchConfig configures the web search provider. An empty API key skips
// the search source entirely; that is not an error as long as news-page
// scraping can still run.
type SearchConfig struct {
	APIKey               string  `mapstructure:"api_key"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second" validate:"gt=0"`
}

func (config SearchConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("search.api_key", "BRAVE_API_KEY")
}
