package srs

import (
	"fmt"
	"time"

	"github.com/mandarin-prep/backend/internal/models"
)

const (
	initialIntervalDays = 1
	initialEaseFactor   = 2.5
	anonymousDeck       = "deck-anonymous"
)

// IntegrationResult reports an Attach run. Success is false when at least
// one card failed; cards that did integrate keep their scheduling state
// either way.
type IntegrationResult struct {
	Success    bool     `json:"success"`
	DeckID     string   `json:"deck_id"`
	Integrated int      `json:"integrated"`
	Failures   []string `json:"failures,omitempty"`
}

// Initializer attaches initial spaced-repetition scheduling state to
// generated flashcards and records it in the cache.
type Initializer struct {
	cache *Cache
	now   func() time.Time
}

func NewInitializer(cache *Cache) *Initializer {
	return &Initializer{cache: cache, now: time.Now}
}

// NewInitializerAt fixes the clock, for tests.
func NewInitializerAt(cache *Cache, now func() time.Time) *Initializer {
	return &Initializer{cache: cache, now: now}
}

// Attach sets initial scheduling state on each card in place and files it
// under a deck derived from subjectID (anonymous when empty). Per-card
// failures are collected as messages and do not abort the rest.
func (in *Initializer) Attach(cards []models.Flashcard, subjectID string) IntegrationResult {
	deckID := anonymousDeck
	if subjectID != "" {
		deckID = "deck-" + subjectID
	}

	result := IntegrationResult{Success: true, DeckID: deckID}
	now := in.now()

	for i := range cards {
		if cards[i].ID == "" {
			result.Failures = append(result.Failures,
				fmt.Sprintf("card %d: missing id, cannot schedule", i))
			result.Success = false
			continue
		}

		data := models.SRSData{
			Interval:    initialIntervalDays,
			EaseFactor:  initialEaseFactor,
			ReviewCount: 0,
			NextReview:  now.AddDate(0, 0, initialIntervalDays),
		}
		cards[i].SRSData = &data
		in.cache.Put(Entry{CardID: cards[i].ID, DeckID: deckID, Data: data})
		result.Integrated++
	}

	return result
}
