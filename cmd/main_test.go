package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdr-labs/signalsdr/internal/config"
)

func Test_ApplyFlagOverrides_ShouldOverrideOnlySetFlags(t *testing.T) {

	flags.storePath = "override/db.json"
	flags.outputPath = "override/drafts.csv"
	flags.model = ""
	defer func() { flags.storePath, flags.outputPath, flags.model = "", "", "" }()

	cfg := &config.Config{}
	cfg.Store.Path = "data/db.json"
	cfg.Outputs.CSVPath = "drafts_output.csv"
	cfg.AI.Model = "gemini-1.5-flash"

	applyFlagOverrides(cfg)

	assert.Equal(t, "override/db.json", cfg.Store.Path)
	assert.Equal(t, "override/drafts.csv", cfg.Outputs.CSVPath)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
}

func Test_ApplyFlagOverrides_ShouldOverrideModel(t *testing.T) {

	flags.model = "gemini-1.5-pro"
	defer func() { flags.model = "" }()

	cfg := &config.Config{}
	cfg.AI.Model = "gemini-1.5-flash"

	applyFlagOverrides(cfg)

	assert.Equal(t, "gemini-1.5-pro", cfg.AI.Model)
}
