package events

import "github.com/sdr-labs/signalsdr/internal/domain/models"

var DraftCreatedTopic = "DraftCreatedEvent"

type DraftCreated struct {
	Draft     models.Draft
	SourceURL string
}
