package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SlackNotifier posts a short message per created draft to an incoming
// webhook.
type SlackNotifier struct {
	webhookURL string
	httpClient HTTPClient
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *SlackNotifier) SetHTTPClient(client HTTPClient) {
	n.httpClient = client
}

func (n *SlackNotifier) Notify(draft models.Draft) error {

	text := fmt.Sprintf("Signal detected: %v (%v).\nSubject: %v\nStatus: Draft Created",
		draft.Company, draft.Role, draft.Subject)

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create slack request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send slack notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("slack webhook returned status %v", resp.StatusCode)
	}
	return nil
}
