package output

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"github.com/sdr-labs/signalsdr/internal/services"
)

// EmailReporter mails the end-of-run digest: the run statistics plus the
// markdown report body. It sends nothing when the run produced no drafts.
type EmailReporter struct {
	host     string
	port     int
	address  string
	password string
	to       string
}

func NewEmailReporter(host string, port int, address, password, to string) *EmailReporter {
	if to == "" {
		to = address
	}
	return &EmailReporter{host: host, port: port, address: address, password: password, to: to}
}

// SendRunReport sends the digest. Returns false without error when there
// was nothing to report.
func (r *EmailReporter) SendRunReport(stats services.RunStats, reportBody string) (bool, error) {

	if stats.Hiring.Drafts+stats.Prospect.Drafts == 0 {
		return false, nil
	}

	var body strings.Builder
	body.WriteString("SignalSDR run complete.\n\n")
	fmt.Fprintf(&body, "Hiring:   scanned %v, skipped %v, signals %v, drafts %v, filtered %v, errors %v\n",
		stats.Hiring.Scanned, stats.Hiring.Skipped, stats.Hiring.Signals,
		stats.Hiring.Drafts, stats.Hiring.Filtered, stats.Hiring.Errors)
	fmt.Fprintf(&body, "Prospect: scanned %v, skipped %v, signals %v, drafts %v, filtered %v, errors %v\n",
		stats.Prospect.Scanned, stats.Prospect.Skipped, stats.Prospect.Signals,
		stats.Prospect.Drafts, stats.Prospect.Filtered, stats.Prospect.Errors)

	if reportBody != "" {
		body.WriteString("\n---\n\n")
		body.WriteString(reportBody)
	}

	msg := strings.Join([]string{
		"From: " + r.address,
		"To: " + r.to,
		"Subject: SignalSDR draft report",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body.String(),
	}, "\r\n")

	auth := smtp.PlainAuth("", r.address, r.password, r.host)
	addr := fmt.Sprintf("%s:%d", r.host, r.port)

	if err := smtp.SendMail(addr, auth, r.address, []string{r.to}, []byte(msg)); err != nil {
		return false, errors.Wrap(err, "failed to send email report")
	}
	return true, nil
}
