package config

import (
	"github.com/spf13/viper"

	"github.com/sdr-labs/signalsdr/internal/analysis"
	"github.com/sdr-labs/signalsdr/internal/prospect"
)

// ScanConfig drives the hiring pipeline and the shared fetch behavior.
type ScanConfig struct {
	CooldownHours         int      `mapstructure:"cooldown_hours" validate:"gte=1"`
	ScrapeDelaySeconds    int      `mapstructure:"scrape_delay_seconds" validate:"gte=0"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"gte=1"`
	UserAgent             string   `mapstructure:"user_agent"`
	MaxProspectSignals    int      `mapstructure:"max_prospect_signals" validate:"gte=1"`
	Schedule              string   `mapstructure:"schedule"`
	SignalKeywords        []string `mapstructure:"signal_keywords"`
	ExcludeKeywords       []string `mapstructure:"exclude_keywords"`
}

func (config *ScanConfig) applyFallbacks() {
	defaults := analysis.DefaultKeywords()
	if len(config.SignalKeywords) == 0 {
		config.SignalKeywords = defaults.Signals
	}
	if len(config.ExcludeKeywords) == 0 {
		config.ExcludeKeywords = defaults.Exclusions
	}
}

// Keywords returns the classifier configuration built from this section.
func (config ScanConfig) Keywords() analysis.Keywords {
	return analysis.Keywords{
		Signals:    config.SignalKeywords,
		Exclusions: config.ExcludeKeywords,
	}
}

// ProspectConfig configures the prospect aggregator's sources.
type ProspectConfig struct {
	Freshness    string                   `mapstructure:"freshness" validate:"oneof=pd pw pm"`
	MaxResults   int                      `mapstructure:"max_results" validate:"gte=1"`
	Categories   []prospect.CategoryQuery `mapstructure:"categories"`
	PageKeywords []prospect.PageKeyword   `mapstructure:"page_keywords"`
}

func (config *ProspectConfig) applyFallbacks() {
	defaults := prospect.DefaultConfig()
	if len(config.Categories) == 0 {
		config.Categories = defaults.Categories
	}
	if len(config.PageKeywords) == 0 {
		config.PageKeywords = defaults.PageKeywords
	}
}

// AggregatorConfig returns the prospect package configuration built from
// this section.
func (config ProspectConfig) AggregatorConfig() prospect.Config {
	return prospect.Config{
		Categories:   config.Categories,
		PageKeywords: config.PageKeywords,
		Freshness:    config.Freshness,
		MaxResults:   config.MaxResults,
	}
}

type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

func (config StoreConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("store.path", "STORE_PATH")
}
