package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sdr-labs/signalsdr/internal/analysis"
	"github.com/sdr-labs/signalsdr/internal/clients/brave"
	"github.com/sdr-labs/signalsdr/internal/clients/gemini"
	"github.com/sdr-labs/signalsdr/internal/config"
	"github.com/sdr-labs/signalsdr/internal/logger"
	"github.com/sdr-labs/signalsdr/internal/metrics"
	"github.com/sdr-labs/signalsdr/internal/output"
	"github.com/sdr-labs/signalsdr/internal/prospect"
	"github.com/sdr-labs/signalsdr/internal/scraper"
	"github.com/sdr-labs/signalsdr/internal/services"
	"github.com/sdr-labs/signalsdr/internal/state"
	"github.com/sdr-labs/signalsdr/internal/targets"
)

var flags struct {
	configPath   string
	targetsPath  string
	storePath    string
	outputPath   string
	model        string
	dryRun       bool
	noEmail      bool
	prospectOnly bool
	noProspect   bool
}

func main() {

	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "signalsdr",
		Short: "Hiring & prospect signal detection agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run()
		},
	}

	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "path to the config file (overrides CONFIG_PATH)")
	rootCmd.Flags().StringVar(&flags.targetsPath, "targets", "targets.csv", "path to targets CSV")
	rootCmd.Flags().StringVar(&flags.storePath, "db", "", "path to the scan state database (overrides config)")
	rootCmd.Flags().StringVar(&flags.outputPath, "output", "", "path to the drafts CSV (overrides config)")
	rootCmd.Flags().StringVar(&flags.model, "model", "", "AI model name (overrides config)")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "scan only, skip drafting and state updates")
	rootCmd.Flags().BoolVar(&flags.noEmail, "no-email", false, "skip the email report after the run")
	rootCmd.Flags().BoolVar(&flags.prospectOnly, "prospect-only", false, "run the prospect pipeline only")
	rootCmd.Flags().BoolVar(&flags.noProspect, "no-prospect", false, "run the hiring pipeline only")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if flags.configPath != "" {
		os.Setenv("CONFIG_PATH", flags.configPath)
	}

	cfg := config.Get()
	applyFlagOverrides(cfg)

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Metrics.Port)

	targetList, err := targets.Load(flags.targetsPath)
	if err != nil {
		return err
	}

	store := state.NewStore(cfg.Store.Path, time.Duration(cfg.Scan.CooldownHours)*time.Hour)

	fetcher := scraper.NewFetcher(time.Duration(cfg.Scan.RequestTimeoutSeconds) * time.Second)
	if cfg.Scan.UserAgent != "" {
		fetcher.SetUserAgent(cfg.Scan.UserAgent)
	}
	if cfg.Scan.ScrapeDelaySeconds > 0 {
		fetcher.SetRateLimit(1 / float32(cfg.Scan.ScrapeDelaySeconds))
	}
	// shared by the hiring and prospect passes, so one URL is one download
	cachedFetcher := services.NewCachedFetcher(fetcher)

	var aggregator *prospect.Aggregator
	if cfg.Search.APIKey != "" {
		searchClient := brave.NewClient(cfg.Search.APIKey)
		searchClient.SetRateLimit(cfg.Search.MaxRequestsPerSecond)
		aggregator = prospect.NewAggregator(cfg.Prospect.AggregatorConfig(), searchClient, cachedFetcher)
	} else {
		log.Info("no search credential configured, prospect pass will use news pages only")
		aggregator = prospect.NewAggregator(cfg.Prospect.AggregatorConfig(), nil, cachedFetcher)
	}

	var drafter *services.Drafter
	if cfg.AI.Key != "" {
		aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, gemini.Model(cfg.AI.Model))
		if err != nil {
			log.Fatalf("can't create AI client: %v", err)
		}
		aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
		aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)
		drafter = services.NewDrafter(aiClient, cfg.AI.Model)
	} else {
		log.Warn("no AI key configured, running scan-only")
	}

	bus := EventBus.New()

	markdownWriter := output.NewMarkdownWriter(cfg.Outputs.MarkdownPath)
	reporter := output.NewReporter(output.NewCSVWriter(cfg.Outputs.CSVPath), markdownWriter, buildNotifiers(cfg)...)
	if err := reporter.Subscribe(bus); err != nil {
		log.Fatalf("can't subscribe reporter: %v", err)
	}

	extractor := analysis.NewExtractor(cfg.Scan.Keywords())

	pipeline := services.NewPipeline(bus, store, cachedFetcher, extractor, aggregator, drafter,
		services.PipelineOptions{
			MaxProspectSignals: cfg.Scan.MaxProspectSignals,
			DryRun:             flags.dryRun,
			RunHiring:          !flags.prospectOnly,
			RunProspect:        !flags.noProspect,
			SearchEnabled:      cfg.Search.APIKey != "",
		})

	runOnce := func() {
		if err := markdownWriter.Reset(); err != nil {
			log.Errorf("failed to reset markdown report: %v", err)
		}

		stats := pipeline.Run(ctx, targetList)

		if flags.noEmail || flags.dryRun || !cfg.Outputs.Email.Enabled() {
			return
		}
		email := output.NewEmailReporter(cfg.Outputs.Email.SMTPHost, cfg.Outputs.Email.SMTPPort,
			cfg.Outputs.Email.Address, cfg.Outputs.Email.Password, cfg.Outputs.Email.To)
		sent, err := email.SendRunReport(stats, markdownWriter.Content())
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeNotify).
				Errorf("failed to send email report: %v", err)
		} else if sent {
			log.Info("email report sent")
		} else {
			log.Info("email report skipped, no new drafts")
		}
	}

	if cfg.Scan.Schedule == "" {
		runOnce()
		return nil
	}

	scheduler, err := services.NewScheduler(cfg.Scan.Schedule, runOnce)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	<-ctx.Done()
	log.Info("Shutting down...")
	return nil
}

func applyFlagOverrides(cfg *config.Config) {

	if flags.storePath != "" {
		cfg.Store.Path = flags.storePath
	}
	if flags.outputPath != "" {
		cfg.Outputs.CSVPath = flags.outputPath
	}
	if flags.model != "" {
		cfg.AI.Model = flags.model
	}
}

func buildNotifiers(cfg *config.Config) []output.Notifier {

	var notifiers []output.Notifier

	if cfg.Outputs.SlackWebhookURL != "" {
		notifiers = append(notifiers, output.NewSlackNotifier(cfg.Outputs.SlackWebhookURL))
	}

	if cfg.Outputs.TelegramToken != "" && cfg.Outputs.TelegramChatID != 0 {
		telegram, err := output.NewTelegramNotifier(cfg.Outputs.TelegramToken, cfg.Outputs.TelegramChatID)
		if err != nil {
			log.Errorf("can't create telegram notifier: %v", err)
		} else {
			notifiers = append(notifiers, telegram)
		}
	}

	return notifiers
}
