package services

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler repeats pipeline runs on a cron schedule. The scan eligibility
// store's cooldowns keep overlapping schedules from rescanning companies
// too early.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(spec string, run func()) (*Scheduler, error) {

	if spec == "" {
		return nil, errors.New("cron spec must not be empty")
	}

	s := &Scheduler{cron: cron.New()}

	if _, err := s.cron.AddFunc(spec, run); err != nil {
		return nil, err
	}

	s.cron.Start()
	log.Infof("scan scheduler started with spec %q", spec)
	return s, nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
