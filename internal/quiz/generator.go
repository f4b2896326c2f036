package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mandarin-prep/backend/internal/models"
	"github.com/mandarin-prep/backend/internal/templates"
)

const defaultQuestionCount = 5

// questionNamespace seeds SHA1-derived question ids; ids depend only on
// (lesson, word, type, sequence), never on the rng.
var questionNamespace = uuid.MustParse("2d1b8a4e-7c35-4f09-8a17-6e0d9b2c5f48")

// QuestionID derives a question's identifier. seq is the question's index
// within its type, which keeps ids unique when a word repeats across a
// cycled vocabulary list.
func QuestionID(lessonID, word string, questionType models.QuestionType, seq int) string {
	name := fmt.Sprintf("%s|%s|%s|%d", lessonID, word, questionType, seq)
	return uuid.NewSHA1(questionNamespace, []byte(name)).String()
}

// RandFactory supplies a fresh rand.Rand per generation call, so
// concurrent calls never share rng state and tests can fix the seed.
type RandFactory func() *rand.Rand

// Generator turns a lesson's enriched vocabulary into quiz questions via
// per-type builders, drawing wrong answers from the distractor pool.
type Generator struct {
	registry *templates.Registry
	pool     *templates.Pool
	newRand  RandFactory
	builders map[models.QuestionType]builderFunc
	logger   *zap.Logger
}

func New(registry *templates.Registry, pool *templates.Pool, newRand RandFactory, logger *zap.Logger) *Generator {
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Generator{
		registry: registry,
		pool:     pool,
		newRand:  newRand,
		builders: newBuilderTable(),
		logger:   logger,
	}
}

// Generate distributes the requested question count evenly across the
// requested types (ceiling division per type, truncated afterwards). The
// result is created fresh per call and never mutated after return.
func (g *Generator) Generate(src models.GenerationSource, opts models.QuizOptions) *models.QuizResult {
	start := time.Now()
	result := &models.QuizResult{
		Questions:    []models.QuizQuestion{},
		CountsByType: make(map[models.QuestionType]int),
		TimeLimit:    opts.TimeLimit,
	}
	finish := func() *models.QuizResult {
		result.GenerationTimeMs = time.Since(start).Milliseconds()
		result.Success = len(result.Errors) == 0
		return result
	}

	if len(src.Vocabulary) == 0 {
		result.Errors = append(result.Errors, models.GenerationError{
			Code:    models.ErrCodeInsufficientVocabulary,
			Message: "lesson has no vocabulary to quiz on",
		})
		return finish()
	}

	var types []models.QuestionType
	for _, t := range opts.QuestionTypes {
		if _, ok := g.registry.Question(t); !ok {
			result.Errors = append(result.Errors, models.GenerationError{
				Code:    models.ErrCodeTemplateError,
				Message: "unknown question type requested",
				Kind:    string(t),
			})
			continue
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		if len(opts.QuestionTypes) == 0 {
			result.Errors = append(result.Errors, models.GenerationError{
				Code:    models.ErrCodeTemplateError,
				Message: "no question types requested",
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
				Code:    models.ErrCodeInsufficientVocabulary,
				Message: "no vocabulary entries match the difficulty filter",
			})
			return finish()
		}
	}

	count := opts.QuestionCount
	if count <= 0 {
		count = defaultQuestionCount
	}
	perType := (count + len(types) - 1) / len(types)

	rng := g.newRand()
	base := templates.BaseDifficulty(src.Tier)

	questions := make([]models.QuizQuestion, 0, perType*len(types))
	for _, t := range types {
		tmpl, _ := g.registry.Question(t)

		if opts.PreventRepeat {
			// Each distinct word is consumed at most once per type, so a
			// duplicated vocabulary entry never yields a second question.
			used := make(map[string]bool, len(vocab))
			seq := 0
			for _, entry := range vocab {
				if seq == perType {
					break
				}
				if used[entry.Word] {
					continue
				}
				used[entry.Word] = true
				questions = append(questions, g.builders[t](buildInput{
					src:   src,
					entry: entry,
					tmpl:  tmpl,
					opts:  opts,
					pool:  g.pool,
					rng:   rng,
					seq:   seq,
					base:  base,
				}))
				seq++
			}
			continue
		}

		for i := 0; i < perType; i++ {
			questions = append(questions, g.builders[t](buildInput{
				src:   src,
				entry: vocab[i%len(vocab)],
				tmpl:  tmpl,
				opts:  opts,
				pool:  g.pool,
				rng:   rng,
				seq:   i,
				base:  base,
			}))
		}
	}

	if opts.ShuffleOptions {
		rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	words := make(map[string]bool, len(questions))
	for _, q := range questions {
		result.CountsByType[q.Type]++
		words[q.VocabularyWord] = true
	}

	result.Questions = questions
	result.VocabularyUsed = len(words)
	return finish()
}
