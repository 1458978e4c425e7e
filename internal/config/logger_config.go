package config

import "github.com/spf13/viper"

type logLevel string

const (
	LevelInfo    logLevel = "INFO"
	LevelDebug   logLevel = "DEBUG"
	LevelWarning logLevel = "WARNING"
	LevelError   logLevel = "ERROR"
	LevelFatal   logLevel = "FATAL"
)

type LoggerConfig struct {
	LogLevel   logLevel `mapstructure:"log_level" validate:"required"`
	AppName    string   `mapstructure:"app_name"`
	OutputFile string   `mapstructure:"output_file" validate:"required"`
}

func (config LoggerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("logger.app_name", "APP_NAME"); err != nil {
		return err
	}

	return viper.BindEnv("logger.log_level", "LOG_LEVEL")
}
