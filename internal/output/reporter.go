package output

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/sdr-labs/signalsdr/internal/domain/events"
	"github.com/sdr-labs/signalsdr/internal/domain/models"
	"github.com/sdr-labs/signalsdr/internal/logger"
)

type Notifier interface {
	Notify(draft models.Draft) error
}

// Reporter fans created drafts out to the configured sinks. A sink failure
// is logged and never interrupts the pipeline.
type Reporter struct {
	csv       *CSVWriter
	markdown  *MarkdownWriter
	notifiers []Notifier
}

func NewReporter(csv *CSVWriter, markdown *MarkdownWriter, notifiers ...Notifier) *Reporter {
	return &Reporter{csv: csv, markdown: markdown, notifiers: notifiers}
}

func (r *Reporter) Subscribe(bus EventBus.Bus) error {
	return bus.Subscribe(events.DraftCreatedTopic, r.onDraftCreated)
}

func (r *Reporter) onDraftCreated(event events.DraftCreated) {

	if err := r.csv.Append(event.Draft, event.SourceURL); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeNotify).
			Errorf("failed to append draft to CSV: %v", err)
	}

	if err := r.markdown.Append(event.Draft, event.SourceURL); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeNotify).
			Errorf("failed to append draft to markdown report: %v", err)
	}

	for _, n := range r.notifiers {
		if err := n.Notify(event.Draft); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeNotify).
				Errorf("failed to send draft notification: %v", err)
		}
	}
}
