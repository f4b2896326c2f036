package templates

import (
	"unicode/utf8"

	"github.com/mandarin-prep/backend/internal/models"
)

// BaseDifficulty maps a lesson's difficulty tier to the numeric base every
// card and question starts from.
func BaseDifficulty(tier models.DifficultyTier) int {
	switch tier {
	case models.TierBeginner:
		return 1
	case models.TierIntermediate:
		return 2
	case models.TierAdvanced:
		return 3
	default:
		return 2
	}
}

// ComputeDifficulty combines a base difficulty with a per-kind offset and
// clamps the result to the [1,5] scale.
func ComputeDifficulty(base, offset int) int {
	d := base + offset
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}

// EstimateEntryTier places a single vocabulary entry on the tier scale.
// Short, frequent words read as beginner material; long or absent-from-text
// words as advanced. A heuristic, like the rest of the pipeline.
func EstimateEntryTier(entry models.EnrichedVocabularyEntry) models.DifficultyTier {
	length := utf8.RuneCountInString(entry.Word)
	switch {
	case length <= 2 && entry.Frequency > 0:
		return models.TierBeginner
	case length <= 3:
		return models.TierIntermediate
	default:
		return models.TierAdvanced
	}
}
