package analysis

import (
	"strings"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

const maxMatchedTextLen = 200

// Extractor scans page text for hiring signals line by line. A single line
// may emit one signal per distinct matching keyword; repeats collapse later
// during deduplication.
type Extractor struct {
	classifier *Classifier
	keywords   Keywords
}

func NewExtractor(keywords Keywords) *Extractor {
	return &Extractor{
		classifier: NewClassifier(keywords),
		keywords:   keywords,
	}
}

// Extract walks the text's non-blank lines (1-indexed), skips lines
// matching any exclusion keyword, and emits a signal for every inclusion
// keyword found on the surviving lines. Deterministic given identical input.
func (e *Extractor) Extract(text, url, company string) models.AnalysisResult {

	result := models.AnalysisResult{URL: url, Company: company}

	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if e.classifier.IsExcluded(line) {
			continue
		}

		for _, keyword := range e.classifier.FindMatches(line, e.keywords.Signals) {
			result.Signals = append(result.Signals, models.HiringSignal{
				Keyword:     keyword,
				MatchedText: truncate(strings.TrimSpace(line), maxMatchedTextLen),
				LineNumber:  i + 1,
			})
		}
	}

	return result
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
