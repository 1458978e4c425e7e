package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Scan     ScanConfig     `mapstructure:"scan"`
	Prospect ProspectConfig `mapstructure:"prospect"`
	AI       AIConfig       `mapstructure:"ai"`
	Search   SearchConfig   `mapstructure:"search"`
	Store    StoreConfig    `mapstructure:"store"`
	Outputs  OutputConfig   `mapstructure:"outputs"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if value, _ := os.LookupEnv("CONFIG_PATH"); value != "" {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	setDefaults()

	if err := bindEnvironmentVariables(); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.applyFallbacks()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("logger.log_level", "INFO")
	viper.SetDefault("logger.output_file", "signalsdr.log")
	viper.SetDefault("scan.cooldown_hours", 24)
	viper.SetDefault("scan.scrape_delay_seconds", 2)
	viper.SetDefault("scan.request_timeout_seconds", 15)
	viper.SetDefault("scan.max_prospect_signals", 5)
	viper.SetDefault("prospect.freshness", "pw")
	viper.SetDefault("prospect.max_results", 5)
	viper.SetDefault("ai.model", "gemini-1.5-flash")
	viper.SetDefault("ai.max_requests_per_minute", 10)
	viper.SetDefault("ai.max_requests_per_day", 1000)
	viper.SetDefault("search.max_requests_per_second", 0.9)
	viper.SetDefault("store.path", "data/db.json")
	viper.SetDefault("outputs.csv_path", "drafts_output.csv")
	viper.SetDefault("outputs.markdown_path", "drafts_output.md")
	viper.SetDefault("outputs.email.smtp_host", "smtp.gmail.com")
	viper.SetDefault("outputs.email.smtp_port", 587)
	viper.SetDefault("metrics.port", 8080)
}

func bindEnvironmentVariables() error {
	var errs []error

	ai, search, outputs := AIConfig{}, SearchConfig{}, OutputConfig{}
	logger, store := LoggerConfig{}, StoreConfig{}

	if err := ai.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if err := search.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("SearchConfig: %w", err))
	}

	if err := outputs.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("OutputConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := store.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("StoreConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

// applyFallbacks fills list-valued settings that have no sensible viper
// defaults with the built-in tables, so an empty config file still yields
// reproducible behavior.
func (config *Config) applyFallbacks() {
	config.Scan.applyFallbacks()
	config.Prospect.applyFallbacks()
}

func (config Config) validate() error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
