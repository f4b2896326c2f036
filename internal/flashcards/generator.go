package flashcards

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mandarin-prep/backend/internal/enricher"
	"github.com/mandarin-prep/backend/internal/models"
	"github.com/mandarin-prep/backend/internal/srs"
	"github.com/mandarin-prep/backend/internal/templates"
)

const (
	defaultMaxCards    = 20
	maxExamplesPerCard = 2
)

// cardNamespace seeds SHA1-derived card ids so identical inputs always
// produce identical identifiers.
var cardNamespace = uuid.MustParse("f6c1e0a4-9be2-4c83-9d6b-5a1df0f3f3aa")

// CardID derives a card's identifier from its lesson, word, and kind.
func CardID(lessonID, word string, cardType models.CardType) string {
	name := lessonID + "|" + word + "|" + string(cardType)
	return uuid.NewSHA1(cardNamespace, []byte(name)).String()
}

// Generator turns enriched vocabulary into flashcards via per-kind
// builders. It holds only read-only collaborators, so independent calls
// may run concurrently.
type Generator struct {
	registry *templates.Registry
	srs      *srs.Initializer
	examples *enricher.ExampleGenerator
	builders map[models.CardType]builderFunc
	logger   *zap.Logger
}

// New builds a generator. srsInit and examples may be nil; SRS integration
// and LLM-backed examples are then unavailable.
func New(registry *templates.Registry, srsInit *srs.Initializer, examples *enricher.ExampleGenerator, logger *zap.Logger) *Generator {
	return &Generator{
		registry: registry,
		srs:      srsInit,
		examples: examples,
		builders: newBuilderTable(),
		logger:   logger,
	}
}

// Generate produces flashcards for the source vocabulary. The result is
// created fresh per call; Success is false exactly when Errors is
// non-empty, and already-built cards survive non-fatal errors.
func (g *Generator) Generate(ctx context.Context, src models.GenerationSource, opts models.FlashcardOptions) *models.FlashcardResult {
	start := time.Now()
	result := &models.FlashcardResult{
		Flashcards:   []models.Flashcard{},
		CountsByType: make(map[models.CardType]int),
	}
	finish := func() *models.FlashcardResult {
		result.GenerationTimeMs = time.Since(start).Milliseconds()
		result.Success = len(result.Errors) == 0
		return result
	}

	if len(src.Vocabulary) == 0 {
		result.Errors = append(result.Errors, models.GenerationError{
			Code:    models.ErrCodeNoVocabulary,
			Message: "no vocabulary entries to generate from",
		})
		return finish()
	}

	var kinds []models.CardType
	for _, t := range opts.CardTypes {
		if _, ok := g.registry.Card(t); !ok {
			result.Errors = append(result.Errors, models.GenerationError{
				Code:    models.ErrCodeTemplateError,
				Message: "unknown card type requested",
				Kind:    string(t),
			})
			continue
		}
		kinds = append(kinds, t)
	}
	if len(kinds) == 0 {
		if len(opts.CardTypes) == 0 {
			result.Errors = append(result.Errors, models.GenerationError{
				Code:    models.ErrCodeTemplateError,
				Message: "no card types requested",
			})
		}
		return finish()
	}

	vocab := src.Vocabulary
	if opts.Difficulty != nil {
		filtered := make([]models.EnrichedVocabularyEntry, 0, len(vocab))
		for _, entry := range vocab {
			if templates.EstimateEntryTier(entry) == *opts.Difficulty {
				filtered = append(filtered, entry)
			}
		}
		vocab = filtered
		if len(vocab) == 0 {
			result.Errors = append(result.Errors, models.GenerationError{
				Code:    models.ErrCodeNoVocabulary,
				Message: "no vocabulary entries match the difficulty filter",
			})
			return finish()
		}
	}

	// Duplicate words would collide on their deterministic card ids, so
	// only the first entry per word generates cards.
	seen := make(map[string]bool, len(vocab))
	distinct := make([]models.EnrichedVocabularyEntry, 0, len(vocab))
	for _, entry := range vocab {
		if seen[entry.Word] {
			continue
		}
		seen[entry.Word] = true
		distinct = append(distinct, entry)
	}
	vocab = distinct

	maxCards := opts.MaxCards
	if maxCards <= 0 {
		maxCards = defaultMaxCards
	}
	// A budget below the kind count keeps only the first maxCards kinds, so
	// the vocabulary cap is always at least one entry and
	// len(vocab)*len(kinds) never exceeds maxCards.
	if len(kinds) > maxCards {
		kinds = kinds[:maxCards]
	}
	if maxVocab := maxCards / len(kinds); len(vocab) > maxVocab {
		vocab = vocab[:maxVocab]
	}

	base := templates.BaseDifficulty(src.Tier)
	cards := make([]models.Flashcard, 0, len(vocab)*len(kinds))
	for _, entry := range vocab {
		for _, kind := range kinds {
			tmpl, _ := g.registry.Card(kind)
			cards = append(cards, g.buildCard(ctx, src, entry, tmpl, opts, base))
			result.CountsByType[kind]++
		}
	}

	if opts.SRSIntegration {
		g.attachSRS(cards, src.LessonID, result)
	}

	words := make(map[string]bool, len(vocab))
	for _, card := range cards {
		words[card.VocabularyEntry.Word] = true
	}

	result.Flashcards = cards
	result.VocabularyUsed = len(words)
	return finish()
}

func (g *Generator) buildCard(ctx context.Context, src models.GenerationSource, entry models.EnrichedVocabularyEntry, tmpl templates.CardTemplate, opts models.FlashcardOptions, base int) models.Flashcard {
	front, back := g.builders[tmpl.Type](entry, opts)

	if opts.IncludeAudio && tmpl.SupportsAudio && front.AudioID == "" {
		front.AudioID = models.VocabAudioID(entry.Word)
	}
	if opts.IncludeExamples {
		back.Examples = g.exampleSentences(ctx, src, entry.Word)
	}

	tags := []string{string(src.Tier)}
	if entry.PartOfSpeech != "" {
		tags = append(tags, entry.PartOfSpeech)
	}

	return models.Flashcard{
		ID:              CardID(src.LessonID, entry.Word, tmpl.Type),
		LessonID:        src.LessonID,
		VocabularyEntry: entry,
		FrontSide:       front,
		BackSide:        back,
		CardType:        tmpl.Type,
		Difficulty:      templates.ComputeDifficulty(base, tmpl.DifficultyOffset),
		Tags:            tags,
	}
}

// exampleSentences prefers sentences from the lesson itself; the LLM
// collaborator only fills in when the lesson has none. Failures degrade to
// no examples.
func (g *Generator) exampleSentences(ctx context.Context, src models.GenerationSource, word string) []string {
	var out []string
	for _, seg := range src.Segments {
		if strings.Contains(seg.Text, word) {
			out = append(out, seg.Text)
			if len(out) == maxExamplesPerCard {
				return out
			}
		}
	}
	if len(out) > 0 || g.examples == nil {
		return out
	}

	sentences, err := g.examples.Sentences(ctx, word, maxExamplesPerCard)
	if err != nil {
		g.logger.Warn("example sentence generation failed",
			zap.String("word", word), zap.Error(err))
		return nil
	}
	return sentences
}

func (g *Generator) attachSRS(cards []models.Flashcard, lessonID string, result *models.FlashcardResult) {
	if g.srs == nil {
		result.Errors = append(result.Errors, models.GenerationError{
			Code:    models.ErrCodeSRSIntegrationFailed,
			Message: "srs integration requested but no initializer configured",
		})
		return
	}

	ir := g.srs.Attach(cards, lessonID)
	for _, failure := range ir.Failures {
		result.Errors = append(result.Errors, models.GenerationError{
			Code:    models.ErrCodeSRSIntegrationFailed,
			Message: failure,
		})
	}
}
