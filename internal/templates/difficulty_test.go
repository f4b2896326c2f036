package templates

import (
	"testing"

	"github.com/mandarin-prep/backend/internal/models"
)

func TestBaseDifficulty(t *testing.T) {
	cases := []struct {
		tier models.DifficultyTier
		want int
	}{
		{models.TierBeginner, 1},
		{models.TierIntermediate, 2},
		{models.TierAdvanced, 3},
		{models.DifficultyTier(""), 2},        // unset defaults to intermediate
		{models.DifficultyTier("unknown"), 2}, // as does anything unrecognized
	}
	for _, c := range cases {
		if got := BaseDifficulty(c.tier); got != c.want {
			t.Errorf("BaseDifficulty(%q) = %d, want %d", c.tier, got, c.want)
		}
	}
}

func TestComputeDifficulty_Clamped(t *testing.T) {
	cases := []struct {
		base, offset, want int
	}{
		{1, 0, 1},
		{2, 1, 3},
		{3, 2, 5},
		{3, 5, 5},  // clamped high
		{1, -3, 1}, // clamped low
	}
	for _, c := range cases {
		if got := ComputeDifficulty(c.base, c.offset); got != c.want {
			t.Errorf("ComputeDifficulty(%d, %d) = %d, want %d", c.base, c.offset, got, c.want)
		}
	}
}

func TestEstimateEntryTier(t *testing.T) {
	short := models.EnrichedVocabularyEntry{
		VocabularyEntry: models.VocabularyEntry{Word: "你好"},
		Frequency:       2,
	}
	if got := EstimateEntryTier(short); got != models.TierBeginner {
		t.Errorf("short frequent word should be beginner, got %q", got)
	}

	medium := models.EnrichedVocabularyEntry{
		VocabularyEntry: models.VocabularyEntry{Word: "图书馆"},
	}
	if got := EstimateEntryTier(medium); got != models.TierIntermediate {
		t.Errorf("three-character word should be intermediate, got %q", got)
	}

	long := models.EnrichedVocabularyEntry{
		VocabularyEntry: models.VocabularyEntry{Word: "名胜古迹"},
	}
	if got := EstimateEntryTier(long); got != models.TierAdvanced {
		t.Errorf("long word should be advanced, got %q", got)
	}
}
