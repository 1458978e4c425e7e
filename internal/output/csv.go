package output

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

var csvHeaders = []string{"company", "role_detected", "draft_subject", "draft_body", "status", "model", "url"}

// CSVWriter appends drafts to the review queue file, creating it with a
// header row on first use.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (w *CSVWriter) Append(draft models.Draft, sourceURL string) error {

	_, statErr := os.Stat(w.path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open drafts CSV")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if isNew {
		if err := writer.Write(csvHeaders); err != nil {
			return errors.Wrap(err, "failed to write CSV header")
		}
	}

	row := []string{
		draft.Company,
		draft.Role,
		draft.Subject,
		draft.Body,
		"PENDING_REVIEW",
		draft.Model,
		sourceURL,
	}
	if err := writer.Write(row); err != nil {
		return errors.Wrap(err, "failed to write CSV row")
	}
	return nil
}
