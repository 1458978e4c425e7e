package analysis

import "github.com/sdr-labs/signalsdr/internal/domain/models"

// Reduce deduplicates a signal pool and bounds its size while preserving
// category spread. Dedup keeps the first occurrence of each distinct key in
// input order. The cap applies only when the deduplicated count exceeds
// maxCount: the first signal of each category (in encounter order) fills the
// output ahead of further occurrences, so one prolific category cannot crowd
// out categories with a single hit. maxCount <= 0 means dedup only.
func Reduce(signals []models.Signal, maxCount int) []models.Signal {

	seen := make(map[string]struct{}, len(signals))
	deduped := make([]models.Signal, 0, len(signals))
	for _, s := range signals {
		if _, ok := seen[s.Key()]; ok {
			continue
		}
		seen[s.Key()] = struct{}{}
		deduped = append(deduped, s)
	}

	if maxCount <= 0 || len(deduped) <= maxCount {
		return deduped
	}

	seenGroups := make(map[string]struct{})
	var diverse, remaining []models.Signal
	for _, s := range deduped {
		if _, ok := seenGroups[s.Group()]; ok {
			remaining = append(remaining, s)
		} else {
			seenGroups[s.Group()] = struct{}{}
			diverse = append(diverse, s)
		}
	}

	return append(diverse, remaining...)[:maxCount]
}
