package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		AI: AIConfig{
			Key:   "overrideKey",
			Model: "super_duper_model",
		},
		Search: SearchConfig{
			APIKey: "overrideBraveKey",
		},
		Store: StoreConfig{
			Path: "override/db.json",
		},
		Logger: LoggerConfig{
			LogLevel: LevelDebug,
			AppName:  "override-app",
		},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("AI_KEY", override.AI.Key)
	os.Setenv("AI_MODEL", override.AI.Model)
	os.Setenv("BRAVE_API_KEY", override.Search.APIKey)
	os.Setenv("STORE_PATH", override.Store.Path)
	os.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))
	os.Setenv("APP_NAME", override.Logger.AppName)

	cfg := Get()

	assert.Equal(t, override.AI.Key, cfg.AI.Key)
	assert.Equal(t, override.AI.Model, cfg.AI.Model)
	assert.Equal(t, override.Search.APIKey, cfg.Search.APIKey)
	assert.Equal(t, override.Store.Path, cfg.Store.Path)
	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
	assert.Equal(t, override.Logger.AppName, cfg.Logger.AppName)
}

func Test_Config_FallbackTablesAppliedWhenFileOmitsThem(t *testing.T) {
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	cfg := Get()

	assert.NotEmpty(t, cfg.Scan.SignalKeywords)
	assert.NotEmpty(t, cfg.Scan.ExcludeKeywords)
	assert.NotEmpty(t, cfg.Prospect.Categories)
	assert.NotEmpty(t, cfg.Prospect.PageKeywords)
}
