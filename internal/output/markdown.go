package output

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

// MarkdownWriter appends drafts to a human-readable report. The report is
// reset at the start of each run so the emailed digest only carries fresh
// drafts.
type MarkdownWriter struct {
	path string
}

func NewMarkdownWriter(path string) *MarkdownWriter {
	return &MarkdownWriter{path: path}
}

// Reset removes the previous run's report. A missing file is fine.
func (w *MarkdownWriter) Reset() error {
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to reset markdown report")
	}
	return nil
}

func (w *MarkdownWriter) Append(draft models.Draft, sourceURL string) error {

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open markdown report")
	}
	defer f.Close()

	entry := fmt.Sprintf("## %s - %s\n\n**Subject:** %s\n\n%s\n\n_Source: %s (%s)_\n\n---\n\n",
		draft.Company, draft.Role, draft.Subject, draft.Body, sourceURL, draft.SignalType)

	if _, err := f.WriteString(entry); err != nil {
		return errors.Wrap(err, "failed to append to markdown report")
	}
	return nil
}

// Content returns the current report body, or an empty string if no drafts
// were written this run.
func (w *MarkdownWriter) Content() string {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return ""
	}
	return string(data)
}
