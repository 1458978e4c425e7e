package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

func Test_Extract_ShouldSkipExcludedLinesAndEmitPerKeyword(t *testing.T) {

	extractor := NewExtractor(DefaultKeywords())

	text := "Now hiring: VP of Security\nIntern wanted\nHead of AI"
	result := extractor.Extract(text, "https://acme.com/careers", "Acme")

	assert.Equal(t, "https://acme.com/careers", result.URL)
	assert.Equal(t, "Acme", result.Company)
	assert.Equal(t, []models.HiringSignal{
		{Keyword: "VP", MatchedText: "Now hiring: VP of Security", LineNumber: 1},
		{Keyword: "Security", MatchedText: "Now hiring: VP of Security", LineNumber: 1},
		{Keyword: "Head of", MatchedText: "Head of AI", LineNumber: 3},
		{Keyword: "AI", MatchedText: "Head of AI", LineNumber: 3},
	}, result.Signals)
}

func Test_Extract_WithCustomKeywordSet_ShouldEmitOnlyConfiguredKeywords(t *testing.T) {

	extractor := NewExtractor(Keywords{
		Signals:    []string{"VP", "Head of", "AI"},
		Exclusions: []string{"Intern"},
	})

	result := extractor.Extract("Now hiring: VP of Security\nIntern wanted\nHead of AI", "url", "Acme")

	require.Len(t, result.Signals, 3)
	assert.Equal(t, "VP", result.Signals[0].Keyword)
	assert.Equal(t, "Head of", result.Signals[1].Keyword)
	assert.Equal(t, "AI", result.Signals[2].Keyword)
}

func Test_Extract_ShouldIgnoreBlankLinesButKeepLineNumbers(t *testing.T) {

	extractor := NewExtractor(DefaultKeywords())

	result := extractor.Extract("\n\n  \nDirector of Sales", "url", "Acme")

	assert.Len(t, result.Signals, 1)
	assert.Equal(t, 4, result.Signals[0].LineNumber)
}

func Test_Extract_ShouldTruncateMatchedTextTo200Runes(t *testing.T) {

	extractor := NewExtractor(DefaultKeywords())

	line := "Director " + strings.Repeat("я", 300)
	result := extractor.Extract(line, "url", "Acme")

	assert.Len(t, result.Signals, 1)
	assert.Equal(t, 200, utf8.RuneCountInString(result.Signals[0].MatchedText))
}

func Test_Extract_WhenTextIsEmpty_ShouldReturnNoSignals(t *testing.T) {

	extractor := NewExtractor(DefaultKeywords())

	result := extractor.Extract("", "url", "Acme")

	assert.False(t, result.HasSignals())
}

func Test_Extract_ShouldBeDeterministic(t *testing.T) {

	extractor := NewExtractor(DefaultKeywords())
	text := "CTO announcement\nSeries B closed\nChief of Staff"

	first := extractor.Extract(text, "url", "Acme")
	second := extractor.Extract(text, "url", "Acme")

	assert.Equal(t, first, second)
}
