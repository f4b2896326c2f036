package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mandarin-prep/backend/internal/enricher"
	"github.com/mandarin-prep/backend/internal/models"
	"github.com/mandarin-prep/backend/internal/segmenter"
)

// LessonProcessor runs a raw lesson through segmentation and vocabulary
// enrichment. It rejects only structurally invalid input; everything else
// produces a result, degraded if need be (zero segments, zero-frequency
// vocabulary).
type LessonProcessor struct {
	segmenter *segmenter.Segmenter
	enricher  *enricher.Enricher
	provider  enricher.PronunciationProvider
	logger    *zap.Logger
	now       func() time.Time
}

func New(seg *segmenter.Segmenter, enr *enricher.Enricher, provider enricher.PronunciationProvider, logger *zap.Logger) *LessonProcessor {
	return &LessonProcessor{
		segmenter: seg,
		enricher:  enr,
		provider:  provider,
		logger:    logger,
		now:       time.Now,
	}
}

func (p *LessonProcessor) Process(ctx context.Context, lesson *models.Lesson, opts models.ProcessingOptions) (*models.ProcessedLessonContent, error) {
	if lesson == nil {
		return nil, fmt.Errorf("process lesson: %w", models.ErrInvalidLesson)
	}
	if strings.TrimSpace(lesson.Content) == "" && len(lesson.Metadata.Vocabulary) == 0 {
		return nil, fmt.Errorf("process lesson %q: %w", lesson.ID, models.ErrInvalidLesson)
	}

	segments := p.segmenter.Segment(lesson.Content, opts.SegmentationMode)
	if opts.MaxSegments > 0 && len(segments) > opts.MaxSegments {
		segments = segments[:opts.MaxSegments]
	}

	pinyinOK := true
	if opts.GeneratePinyin {
		for i := range segments {
			py, err := p.provider.Pinyin(ctx, segments[i].Text)
			if err != nil {
				p.logger.Warn("segment pinyin lookup failed",
					zap.String("segment", segments[i].ID), zap.Error(err))
				pinyinOK = false
				continue
			}
			segments[i].Pinyin = py
		}
	}

	vocabList := p.enrichVocabulary(ctx, lesson, opts)
	vocabMap := make(map[string]models.EnrichedVocabularyEntry, len(vocabList))
	for _, entry := range vocabList {
		if _, exists := vocabMap[entry.Word]; !exists {
			vocabMap[entry.Word] = entry
		}
	}

	return &models.ProcessedLessonContent{
		LessonID:        lesson.ID,
		Segments:        segments,
		Vocabulary:      vocabMap,
		VocabularyList:  vocabList,
		TotalSegments:   len(segments),
		ProcessedAt:     p.now(),
		PinyinGenerated: opts.GeneratePinyin && pinyinOK,
		AudioReady:      opts.VocabularyEnhancement,
	}, nil
}

// enrichVocabulary runs full enrichment when requested; otherwise entries
// are wrapped with frequency only so the result shape stays uniform.
func (p *LessonProcessor) enrichVocabulary(ctx context.Context, lesson *models.Lesson, opts models.ProcessingOptions) []models.EnrichedVocabularyEntry {
	vocab := lesson.Metadata.Vocabulary
	if opts.VocabularyEnhancement {
		return p.enricher.Enrich(ctx, vocab, lesson.Content)
	}

	out := make([]models.EnrichedVocabularyEntry, len(vocab))
	for i, entry := range vocab {
		out[i] = models.EnrichedVocabularyEntry{
			VocabularyEntry: entry,
			Frequency:       countIn(lesson.Content, entry.Word),
		}
	}
	return out
}

func countIn(content, word string) int {
	if word == "" || content == "" {
		return 0
	}
	return strings.Count(content, word)
}
