package output

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sdr-labs/signalsdr/internal/domain/events"
	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(draft models.Draft) error {
	return m.Called(draft).Error(0)
}

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func sampleDraft() models.Draft {
	return models.Draft{
		Company:    "Acme",
		Role:       "VP of Security",
		SignalType: "hiring",
		Subject:    "Securing your AI roadmap",
		Body:       "Three sentences.",
		Model:      "gemini-1.5-flash",
	}
}

func Test_CSVWriter_FirstAppend_ShouldWriteHeaderRow(t *testing.T) {

	path := filepath.Join(t.TempDir(), "drafts.csv")
	writer := NewCSVWriter(path)

	require.NoError(t, writer.Append(sampleDraft(), "https://acme.com/careers"))
	require.NoError(t, writer.Append(sampleDraft(), "https://acme.com/careers"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, csvHeaders, rows[0])
	assert.Equal(t, []string{"Acme", "VP of Security", "Securing your AI roadmap",
		"Three sentences.", "PENDING_REVIEW", "gemini-1.5-flash", "https://acme.com/careers"}, rows[1])
}

func Test_MarkdownWriter_AppendAndContent(t *testing.T) {

	writer := NewMarkdownWriter(filepath.Join(t.TempDir(), "drafts.md"))

	require.NoError(t, writer.Append(sampleDraft(), "https://acme.com/careers"))

	content := writer.Content()
	assert.Contains(t, content, "## Acme - VP of Security")
	assert.Contains(t, content, "**Subject:** Securing your AI roadmap")
	assert.Contains(t, content, "_Source: https://acme.com/careers (hiring)_")
}

func Test_MarkdownWriter_Reset_ShouldClearPreviousRun(t *testing.T) {

	writer := NewMarkdownWriter(filepath.Join(t.TempDir(), "drafts.md"))

	require.NoError(t, writer.Append(sampleDraft(), "url"))
	require.NoError(t, writer.Reset())

	assert.Empty(t, writer.Content())
}

func Test_MarkdownWriter_Reset_WhenFileMissing_ShouldNotFail(t *testing.T) {

	writer := NewMarkdownWriter(filepath.Join(t.TempDir(), "missing.md"))

	assert.NoError(t, writer.Reset())
}

func Test_SlackNotifier_ShouldPostDraftSummary(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.URL.String() == "https://hooks.slack.com/services/T/B/X" &&
			bytes.Contains(body, []byte("Signal detected: Acme"))
	})).Return(&http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBufferString("ok")),
	}, nil)

	notifier := NewSlackNotifier("https://hooks.slack.com/services/T/B/X")
	notifier.SetHTTPClient(mockClient)

	assert.NoError(t, notifier.Notify(sampleDraft()))
	mockClient.AssertExpectations(t)
}

func Test_SlackNotifier_WhenWebhookRejects_ShouldReturnError(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 400,
		Body:       io.NopCloser(bytes.NewBufferString("invalid_payload")),
	}, nil)

	notifier := NewSlackNotifier("https://hooks.slack.com/services/T/B/X")
	notifier.SetHTTPClient(mockClient)

	assert.ErrorContains(t, notifier.Notify(sampleDraft()), "400")
}

func Test_Reporter_OnDraftCreated_ShouldFanOutToAllSinks(t *testing.T) {

	dir := t.TempDir()
	csvWriter := NewCSVWriter(filepath.Join(dir, "drafts.csv"))
	markdownWriter := NewMarkdownWriter(filepath.Join(dir, "drafts.md"))

	notifier := &mockNotifier{}
	notifier.On("Notify", sampleDraft()).Return(nil).Once()

	reporter := NewReporter(csvWriter, markdownWriter, notifier)

	bus := EventBus.New()
	require.NoError(t, reporter.Subscribe(bus))

	bus.Publish(events.DraftCreatedTopic, events.DraftCreated{
		Draft:     sampleDraft(),
		SourceURL: "https://acme.com/careers",
	})

	notifier.AssertExpectations(t)
	assert.Contains(t, markdownWriter.Content(), "## Acme")
	_, err := os.Stat(filepath.Join(dir, "drafts.csv"))
	assert.NoError(t, err)
}

func Test_Reporter_WhenNotifierFails_ShouldNotPanic(t *testing.T) {

	dir := t.TempDir()
	reporter := NewReporter(NewCSVWriter(filepath.Join(dir, "d.csv")),
		NewMarkdownWriter(filepath.Join(dir, "d.md")), failingNotifier{})

	assert.NotPanics(t, func() {
		reporter.onDraftCreated(events.DraftCreated{Draft: sampleDraft(), SourceURL: "url"})
	})
}

type failingNotifier struct{}

func (failingNotifier) Notify(models.Draft) error { return assert.AnError }
