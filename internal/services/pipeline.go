package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/sdr-labs/signalsdr/internal/analysis"
	"github.com/sdr-labs/signalsdr/internal/domain/events"
	"github.com/sdr-labs/signalsdr/internal/domain/models"
	"github.com/sdr-labs/signalsdr/internal/logger"
	"github.com/sdr-labs/signalsdr/internal/metrics"
)

type eligibilityStore interface {
	ShouldScan(domain string, scanType models.ScanType) bool
	RecordScan(domain, name string, signals []models.Signal, scanType models.ScanType) error
}

type signalAggregator interface {
	Aggregate(ctx context.Context, company, domain, newsURL string) models.ProspectResult
}

// Stats summarizes one pipeline pass.
type Stats struct {
	Scanned  int
	Skipped  int
	Signals  int
	Drafts   int
	Filtered int
	Errors   int
}

type RunStats struct {
	Hiring   Stats
	Prospect Stats
}

type PipelineOptions struct {
	MaxProspectSignals int
	DryRun             bool
	RunHiring          bool
	RunProspect        bool
	SearchEnabled      bool
}

// Pipeline processes targets one company at a time: consults the scan
// eligibility store, collects and reduces signals, generates drafts and
// records the outcome. A failure for one company never aborts the rest.
type Pipeline struct {
	bus        EventBus.Bus
	store      eligibilityStore
	fetcher    pageFetcher
	extractor  *analysis.Extractor
	aggregator signalAggregator
	drafter    *Drafter
	opts       PipelineOptions
}

// NewPipeline wires the pipeline. drafter may be nil, which turns both
// pipelines into scan-only passes (signals detected and recorded, nothing
// drafted).
func NewPipeline(bus EventBus.Bus, store eligibilityStore, fetcher pageFetcher,
	extractor *analysis.Extractor, aggregator signalAggregator, drafter *Drafter,
	opts PipelineOptions) *Pipeline {

	return &Pipeline{
		bus:        bus,
		store:      store,
		fetcher:    fetcher,
		extractor:  extractor,
		aggregator: aggregator,
		drafter:    drafter,
		opts:       opts,
	}
}

func (p *Pipeline) Run(ctx context.Context, targets []models.Target) RunStats {

	start := time.Now()
	log.Infof("processing %v targets (dry run: %v)", len(targets), p.opts.DryRun)

	var stats RunStats

	if p.opts.RunHiring {
		stats.Hiring = p.runHiringPass(ctx, targets)
	}
	if p.opts.RunProspect {
		stats.Prospect = p.runProspectPass(ctx, targets)
	}

	metrics.RunDuration.Observe(time.Since(start).Seconds())
	log.Infof("run complete after %v: hiring %+v, prospect %+v", time.Since(start), stats.Hiring, stats.Prospect)
	return stats
}

func (p *Pipeline) runHiringPass(ctx context.Context, targets []models.Target) Stats {

	log.Infof("hiring pass: %v targets", len(targets))

	var stats Stats
	for i, target := range targets {
		select {
		case <-ctx.Done():
			log.Info("hiring pass canceled")
			return stats
		default:
		}
		log.Infof("[%v/%v] %v", i+1, len(targets), target.Company)
		p.scanCareersPage(ctx, target, &stats)
	}
	return stats
}

func (p *Pipeline) scanCareersPage(ctx context.Context, target models.Target, stats *Stats) {

	if target.CareersURL == "" {
		log.Infof("skipping %v: no careers URL", target.Company)
		stats.Skipped++
		return
	}

	if !p.store.ShouldScan(target.Domain, models.ScanHiring) {
		log.Infof("skipping %v: hiring scan within cooldown", target.Company)
		stats.Skipped++
		return
	}

	page, err := p.fetcher.Fetch(ctx, target.CareersURL)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFetch).
			Errorf("failed to fetch careers page for %v: %v", target.Company, err)
		stats.Errors++
		p.record(target, nil, models.ScanHiring)
		return
	}

	stats.Scanned++
	log.Debugf("fetched %v chars from %q", len(page.Text), page.Title)

	result := p.extractor.Extract(page.Text, target.CareersURL, target.Company)

	signals := analysis.Reduce(lo.Map(result.Signals,
		func(s models.HiringSignal, _ int) models.Signal { return s }), 0)

	if len(signals) == 0 {
		log.Infof("no hiring signals for %v", target.Company)
		p.record(target, nil, models.ScanHiring)
		return
	}

	stats.Signals += len(signals)
	metrics.SignalsCounter.WithLabelValues(string(models.ScanHiring)).Add(float64(len(signals)))
	log.Infof("%v hiring signal(s) for %v", len(signals), target.Company)

	for _, signal := range signals {
		hiring := signal.(models.HiringSignal)
		p.draft(ctx, target, hiring.Keyword, stats, func() (*models.Draft, error) {
			return p.drafter.DraftForHiringSignal(ctx, target.Company, hiring)
		}, target.CareersURL)
	}

	p.record(target, signals, models.ScanHiring)
}

func (p *Pipeline) runProspectPass(ctx context.Context, targets []models.Target) Stats {

	log.Infof("prospect pass: %v targets", len(targets))

	var stats Stats
	for i, target := range targets {
		select {
		case <-ctx.Done():
			log.Info("prospect pass canceled")
			return stats
		default:
		}
		log.Infof("[%v/%v] %v", i+1, len(targets), target.Company)
		p.scanProspects(ctx, target, &stats)
	}
	return stats
}

func (p *Pipeline) scanProspects(ctx context.Context, target models.Target, stats *Stats) {

	if !p.store.ShouldScan(target.Domain, models.ScanProspect) {
		log.Infof("skipping %v: prospect scan within cooldown", target.Company)
		stats.Skipped++
		return
	}

	if !p.opts.SearchEnabled && target.NewsURL == "" {
		log.Infof("no prospect sources for %v", target.Company)
		stats.Errors++
		p.record(target, nil, models.ScanProspect)
		return
	}

	start := time.Now()
	result := p.aggregator.Aggregate(ctx, target.Company, target.Domain, target.NewsURL)
	metrics.StepDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())

	for _, sourceErr := range result.SourceErrors {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSearchApi).
			Errorf("prospect source for %v: %v", target.Company, sourceErr)
	}

	stats.Scanned++

	signals := analysis.Reduce(lo.Map(result.Signals,
		func(s models.ProspectSignal, _ int) models.Signal { return s }), p.opts.MaxProspectSignals)

	if len(signals) == 0 {
		log.Infof("no prospect signals for %v", target.Company)
		p.record(target, nil, models.ScanProspect)
		return
	}

	stats.Signals += len(signals)
	metrics.SignalsCounter.WithLabelValues(string(models.ScanProspect)).Add(float64(len(signals)))
	log.Infof("%v prospect signal(s) for %v (of %v found)", len(signals), target.Company, len(result.Signals))

	for _, signal := range signals {
		prospectSignal := signal.(models.ProspectSignal)
		p.draft(ctx, target, prospectSignal.Headline, stats, func() (*models.Draft, error) {
			return p.drafter.DraftForProspectSignal(ctx, target.Company, prospectSignal)
		}, prospectSignal.SourceURL)
	}

	p.record(target, signals, models.ScanProspect)
}

// draft runs one generation attempt and sorts the outcome into the
// valid / not-applicable / failed trichotomy.
func (p *Pipeline) draft(ctx context.Context, target models.Target, label string,
	stats *Stats, generate func() (*models.Draft, error), sourceURL string) {

	if p.drafter == nil || p.opts.DryRun {
		return
	}

	start := time.Now()
	draft, err := generate()
	metrics.StepDuration.WithLabelValues("ai_draft").Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		stats.Drafts++
		metrics.DraftsCounter.Inc()
		log.Infof("draft for %v: %q", target.Company, draft.Subject)
		p.bus.Publish(events.DraftCreatedTopic, events.DraftCreated{Draft: *draft, SourceURL: sourceURL})
	case errors.Is(err, ErrNotApplicable):
		stats.Filtered++
		metrics.FilteredDraftsCounter.Inc()
		log.Infof("signal filtered by LLM for %v: %v", target.Company, label)
	default:
		stats.Errors++
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Errorf("draft failed for %v: %v", target.Company, err)
	}
}

func (p *Pipeline) record(target models.Target, signals []models.Signal, scanType models.ScanType) {

	if p.opts.DryRun {
		return
	}

	if err := p.store.RecordScan(target.Domain, target.Company, signals, scanType); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStore).
			Errorf("failed to record %v scan for %v: %v", scanType, target.Domain, err)
	}
}
