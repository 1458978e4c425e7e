package prospect

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

const (
	minLineLen     = 25
	maxTagSegLen   = 30
	maxHeadlineLen = 150
	maxSnippetLen  = 300
)

// emissions figures and named regulatory test cycles, common in automotive
// newsroom disclaimers
var measurementPattern = regexp.MustCompile(`kWh/100\s?km|g/km|CO₂|WLTP|NEDC`)

// generic site chrome and caption phrases that never carry a signal
var chromePhrases = []string{
	"browse below", "download the right", "cookie", "privacy policy",
	"terms of use", "all rights reserved", "subscribe to",
}

// scanPageText matches the surviving lines of a scraped news page against
// the keyword table. The table is checked in order and the first matching
// keyword wins, so a line emits at most one signal.
func (a *Aggregator) scanPageText(text, pageURL string) []models.ProspectSignal {

	var signals []models.ProspectSignal

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < minLineLen {
			continue
		}
		if isTagList(line) || isSiteNoise(line) {
			continue
		}

		lower := strings.ToLower(line)
		for _, entry := range a.cfg.PageKeywords {
			if !strings.Contains(lower, strings.ToLower(entry.Keyword)) {
				continue
			}
			signals = append(signals, models.ProspectSignal{
				Category:  entry.Category,
				Headline:  truncate(line, maxHeadlineLen),
				Snippet:   truncate(line, maxSnippetLen),
				SourceURL: pageURL,
			})
			break
		}
	}

	return signals
}

// isTagList detects comma-separated tag rows like
// "Electrification,Sustainability,Podcast": two or more short segments.
func isTagList(line string) bool {
	if !strings.Contains(line, ",") {
		return false
	}

	segments := strings.Split(line, ",")
	if len(segments) < 2 {
		return false
	}
	for _, segment := range segments {
		if utf8.RuneCountInString(strings.TrimSpace(segment)) > maxTagSegLen {
			return false
		}
	}
	return true
}

func isSiteNoise(line string) bool {
	if measurementPattern.MatchString(line) {
		return true
	}

	lower := strings.ToLower(line)
	for _, phrase := range chromePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
