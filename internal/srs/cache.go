package srs

import (
	"sync"

	"github.com/mandarin-prep/backend/internal/models"
)

// Entry associates one card's scheduling state with its deck.
type Entry struct {
	CardID string         `json:"card_id"`
	DeckID string         `json:"deck_id"`
	Data   models.SRSData `json:"data"`
}

// Cache is an explicit card-id keyed store for scheduling state, owned by
// whoever constructs it. Writes to different keys are independent;
// concurrent writes to the same key are last-writer-wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

func (c *Cache) Put(entry Entry) {
	c.mu.Lock()
	c.entries[entry.CardID] = entry
	c.mu.Unlock()
}

func (c *Cache) Get(cardID string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[cardID]
	return entry, ok
}

// Deck returns all entries belonging to the given deck.
func (c *Cache) Deck(deckID string) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Entry
	for _, entry := range c.entries {
		if entry.DeckID == deckID {
			out = append(out, entry)
		}
	}
	return out
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
