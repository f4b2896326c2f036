package enricher

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mandarin-prep/backend/internal/models"
)

const defaultConcurrency = 4

// Enricher attaches pronunciation and in-content frequency to vocabulary
// entries and initializes their study metadata.
type Enricher struct {
	provider    PronunciationProvider
	logger      *zap.Logger
	concurrency int
}

func New(provider PronunciationProvider, logger *zap.Logger, concurrency int) *Enricher {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Enricher{provider: provider, logger: logger, concurrency: concurrency}
}

// Enrich returns one enriched entry per input entry, in input order.
// Duplicate words stay distinct entries. A pronunciation lookup failure
// degrades that entry to echoing its word; the batch always completes.
// Frequency is a raw case-sensitive substring count — absence from content
// is not an error, it is frequency zero.
func (e *Enricher) Enrich(ctx context.Context, vocabulary []models.VocabularyEntry, content string) []models.EnrichedVocabularyEntry {
	if len(vocabulary) == 0 {
		return []models.EnrichedVocabularyEntry{}
	}

	out := make([]models.EnrichedVocabularyEntry, len(vocabulary))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, entry := range vocabulary {
		i, entry := i, entry
		g.Go(func() error {
			out[i] = e.enrichOne(gctx, entry, content)
			return nil
		})
	}
	g.Wait()

	return out
}

func (e *Enricher) enrichOne(ctx context.Context, entry models.VocabularyEntry, content string) models.EnrichedVocabularyEntry {
	py, err := e.provider.Pinyin(ctx, entry.Word)
	if err != nil {
		e.logger.Warn("pinyin lookup failed, echoing word",
			zap.String("word", entry.Word), zap.Error(err))
		py = entry.Word
	}

	return models.EnrichedVocabularyEntry{
		VocabularyEntry: entry,
		Pinyin:          py,
		Frequency:       countOccurrences(content, entry.Word),
		StudyCount:      0,
		MasteryLevel:    0,
	}
}

func countOccurrences(content, word string) int {
	if word == "" || content == "" {
		return 0
	}
	return strings.Count(content, word)
}
