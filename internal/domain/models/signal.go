package models

// Signal is a detected textual indicator of a business event, attributable
// to exactly one source URL.
type Signal interface {
	// Key is the signal's natural text identity used for deduplication.
	Key() string
	// Group is the category used when capping a pool with category spread.
	Group() string
	// Describe returns a human-readable detail line for scan history.
	Describe() string
}

// HiringSignal is a keyword hit on a careers page line.
type HiringSignal struct {
	Keyword     string
	MatchedText string
	LineNumber  int
}

func (s HiringSignal) Key() string { return s.Keyword }

func (s HiringSignal) Group() string { return "hiring" }

func (s HiringSignal) Describe() string { return "Found role: " + s.MatchedText }

// ProspectSignal is a business signal found via web search or a company
// news page.
type ProspectSignal struct {
	Category  string
	Headline  string
	Snippet   string
	SourceURL string
}

func (s ProspectSignal) Key() string { return s.Headline }

func (s ProspectSignal) Group() string { return s.Category }

func (s ProspectSignal) Describe() string { return s.Headline }

// AnalysisResult holds the hiring signals extracted from one page, in the
// order they were found in the text.
type AnalysisResult struct {
	URL     string
	Company string
	Signals []HiringSignal
}

func (r AnalysisResult) HasSignals() bool { return len(r.Signals) > 0 }

// ProspectResult aggregates prospect signals for one company. SourceErrors
// records sources that could not contribute; a partial failure does not
// invalidate signals from the remaining sources.
type ProspectResult struct {
	Company      string
	Domain       string
	Signals      []ProspectSignal
	SourceErrors []string
}

func (r ProspectResult) HasSignals() bool { return len(r.Signals) > 0 }
