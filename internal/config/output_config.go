package config

import "github.com/spf13/viper"

type EmailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	To       string `mapstructure:"to"`
}

// Enabled reports whether the run report can be sent at all.
func (config EmailConfig) Enabled() bool {
	return config.Address != "" && config.Password != ""
}

type OutputConfig struct {
	CSVPath         string      `mapstructure:"csv_path" validate:"required"`
	MarkdownPath    string      `mapstructure:"markdown_path" validate:"required"`
	SlackWebhookURL string      `mapstructure:"slack_webhook_url"`
	TelegramToken   string      `mapstructure:"telegram_token"`
	TelegramChatID  int64       `mapstructure:"telegram_chat_id"`
	Email           EmailConfig `mapstructure:"email"`
}

func (config OutputConfig) bindEnvironmentVariables() error {

	bindings := map[string]string{
		"outputs.slack_webhook_url": "SLACK_WEBHOOK_URL",
		"outputs.telegram_token":    "TG_TOKEN",
		"outputs.telegram_chat_id":  "TG_CHAT_ID",
		"outputs.email.address":     "GMAIL_ADDRESS",
		"outputs.email.password":    "GMAIL_APP_PASSWORD",
		"outputs.email.to":          "REPORT_EMAIL_TO",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	return nil
}

type MetricsConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
}
