package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

const DefaultCooldown = 24 * time.Hour

// Store is a durable mapping from company domain to scan record, persisted
// as one JSON document. Every call reads or writes the whole document; it
// carries no locking, so concurrent pipeline instances against the same file
// must be serialized by the caller.
type Store struct {
	path     string
	cooldown time.Duration
	now      func() time.Time
}

type document struct {
	Companies []*models.ScanRecord `json:"companies"`
}

func NewStore(path string, cooldown time.Duration) *Store {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Store{
		path:     path,
		cooldown: cooldown,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ShouldScan reports whether the domain is due for the given scan type:
// true for a never-seen domain, for a record with no timestamp of that type,
// or once the cooldown has elapsed. Timestamps are compared in UTC. A
// missing or unreadable store reads as empty, so the default answer is yes.
func (s *Store) ShouldScan(domain string, scanType models.ScanType) bool {

	doc := s.load()
	for _, record := range doc.Companies {
		if record.Domain != domain {
			continue
		}
		last := record.LastScan(scanType)
		if last == nil {
			return true
		}
		return s.now().Sub(last.UTC()) >= s.cooldown
	}
	return true
}

// RecordScan finds or creates the record for domain, stamps the scan-type
// timestamp, sets the status, and appends one history entry per signal.
// History is append-only: entries are never pruned or deduplicated, so
// repeated signals across scans accumulate.
func (s *Store) RecordScan(domain, name string, signals []models.Signal, scanType models.ScanType) error {

	doc := s.load()
	now := s.now()

	record, found := lo.Find(doc.Companies, func(r *models.ScanRecord) bool {
		return r.Domain == domain
	})
	if !found {
		record = &models.ScanRecord{
			ID:     fmt.Sprintf("c_%03d", len(doc.Companies)+1),
			Name:   name,
			Domain: domain,
		}
		doc.Companies = append(doc.Companies, record)
	}

	record.SetLastScan(scanType, now)
	if len(signals) > 0 {
		record.Status = models.StatusSignalFound
		record.Signals = append(record.Signals, summarize(signals, scanType, now)...)
	} else {
		record.Status = models.StatusNoSignal
	}

	return s.save(doc)
}

func summarize(signals []models.Signal, scanType models.ScanType, now time.Time) []models.SignalSummary {
	return lo.Map(signals, func(sig models.Signal, _ int) models.SignalSummary {
		typeTag := string(models.ScanHiring)
		if scanType == models.ScanProspect {
			typeTag = "prospect_" + sig.Group()
		}
		return models.SignalSummary{
			Date:    now.Format("2006-01-02"),
			Type:    typeTag,
			Details: sig.Describe(),
		}
	})
}

// load treats a missing or corrupt file as an empty store. Corruption is
// logged but never surfaced to the caller.
func (s *Store) load() *document {

	data, err := os.ReadFile(s.path)
	if err != nil {
		return &document{}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warnf("scan store at %v is corrupt, starting empty: %v", s.path, err)
		return &document{}
	}
	return &doc
}

func (s *Store) save(doc *document) error {

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create store directory")
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal scan store")
	}

	return errors.Wrap(os.WriteFile(s.path, data, 0644), "failed to write scan store")
}
