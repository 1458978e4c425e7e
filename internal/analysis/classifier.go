package analysis

import "strings"

// Keywords is the classifier configuration: signal triggers and noise
// markers. Both sets match case-insensitively as literal substrings, in
// declared order. Exclusions are checked before inclusion matching.
type Keywords struct {
	Signals    []string
	Exclusions []string
}

// DefaultKeywords returns the built-in hiring keyword configuration, so
// behavior is reproducible without any config file.
func DefaultKeywords() Keywords {
	return Keywords{
		Signals: []string{
			"VP",
			"Vice President",
			"Director",
			"Head of",
			"Chief",
			"CISO",
			"CTO",
			"CIO",
			"Security",
			"AI",
			"Machine Learning",
			"Series B",
			"Series C",
		},
		Exclusions: []string{
			"Intern",
			"Associate",
			"Junior",
			"Entry Level",
			"Part-time",
			"Part time",
			"Social Security",
		},
	}
}

// Classifier matches lines of text against keyword sets. It is a pure
// function over strings: no I/O, no error conditions.
type Classifier struct {
	keywords Keywords
}

func NewClassifier(keywords Keywords) *Classifier {
	return &Classifier{keywords: keywords}
}

// IsExcluded reports whether the line contains any exclusion keyword.
// An excluded line is never considered for signal extraction, regardless
// of inclusion matches.
func (c *Classifier) IsExcluded(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range c.keywords.Exclusions {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// FindMatches returns every keyword from the given set that occurs in the
// line, in the set's declared order. Keywords are matched as literal
// substrings, never as patterns.
func (c *Classifier) FindMatches(line string, keywords []string) []string {
	lower := strings.ToLower(line)

	var matches []string
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matches = append(matches, kw)
		}
	}
	return matches
}
