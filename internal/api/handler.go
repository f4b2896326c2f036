package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mandarin-prep/backend/internal/enricher"
	"github.com/mandarin-prep/backend/internal/flashcards"
	"github.com/mandarin-prep/backend/internal/models"
	"github.com/mandarin-prep/backend/internal/processor"
	"github.com/mandarin-prep/backend/internal/quiz"
	"github.com/mandarin-prep/backend/internal/srs"
	"github.com/mandarin-prep/backend/internal/templates"
	"github.com/mandarin-prep/backend/internal/validator"
)

// Handler exposes the lesson-processing and generation pipeline over HTTP.
type Handler struct {
	processor  *processor.LessonProcessor
	enricher   *enricher.Enricher
	flashcards *flashcards.Generator
	quiz       *quiz.Generator
	registry   *templates.Registry
	cache      *srs.Cache
	logger     *zap.Logger
}

func NewHandler(
	proc *processor.LessonProcessor,
	enr *enricher.Enricher,
	cards *flashcards.Generator,
	quizzes *quiz.Generator,
	registry *templates.Registry,
	cache *srs.Cache,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		processor:  proc,
		enricher:   enr,
		flashcards: cards,
		quiz:       quizzes,
		registry:   registry,
		cache:      cache,
		logger:     logger,
	}
}

// ProcessLesson segments a lesson and enriches its vocabulary without
// generating any study material.
func (h *Handler) ProcessLesson(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Lesson == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Lesson is required"})
		return
	}

	processed, err := h.processor.Process(r.Context(), req.Lesson, req.Options)
	if err != nil {
		if errors.Is(err, models.ErrInvalidLesson) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Lesson is structurally invalid"})
			return
		}
		h.logger.Error("lesson processing failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process lesson"})
		return
	}

	writeJSON(w, http.StatusOK, processed)
}

// GenerateFlashcards validates the request, resolves its vocabulary
// source (a full lesson or a raw vocabulary list), and runs generation.
func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateFlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if vr := validator.ValidateFlashcards(&req); !vr.IsValid {
		writeJSON(w, http.StatusBadRequest, vr)
		return
	}

	src, err := h.resolveSource(r, req.Lesson, req.Vocabulary)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Lesson is structurally invalid"})
		return
	}

	result := h.flashcards.Generate(r.Context(), src, req.Options)
	writeJSON(w, http.StatusOK, result)
}

// GenerateQuiz validates the request, processes the lesson, and builds a
// quiz from its enriched vocabulary.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if vr := validator.ValidateQuiz(&req); !vr.IsValid {
		writeJSON(w, http.StatusBadRequest, vr)
		return
	}

	src, err := h.resolveSource(r, req.Lesson, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Lesson is structurally invalid"})
		return
	}

	result := h.quiz.Generate(src, req.Options)
	writeJSON(w, http.StatusOK, result)
}

// ValidateRequest runs shape validation without generating anything, so
// clients can pre-flight a request.
func (h *Handler) ValidateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, validator.Validate(&req))
}

// GetTemplates lists the card and question templates the service knows.
func (h *Handler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cards":     h.registry.Cards(),
		"questions": h.registry.Questions(),
	})
}

// GetDeck returns the scheduling entries cached for one deck.
func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deckID := mux.Vars(r)["id"]
	entries := h.cache.Deck(deckID)
	if entries == nil {
		entries = []srs.Entry{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deck_id": deckID,
		"entries": entries,
		"total":   len(entries),
	})
}

// resolveSource turns the request's lesson or raw vocabulary into a
// generation source. A lesson is processed in full; a raw list is
// enriched against empty content, so every frequency is zero.
func (h *Handler) resolveSource(r *http.Request, lesson *models.Lesson, vocabulary []models.VocabularyEntry) (models.GenerationSource, error) {
	if lesson != nil {
		processed, err := h.processor.Process(r.Context(), lesson, models.ProcessingOptions{
			SegmentationMode:      models.ModeSentence,
			VocabularyEnhancement: true,
		})
		if err != nil {
			return models.GenerationSource{}, err
		}
		return models.GenerationSource{
			LessonID:   lesson.ID,
			Tier:       lesson.Metadata.Difficulty,
			Vocabulary: processed.VocabularyList,
			Segments:   processed.Segments,
		}, nil
	}

	return models.GenerationSource{
		LessonID:   "adhoc",
		Tier:       models.TierIntermediate,
		Vocabulary: h.enricher.Enrich(r.Context(), vocabulary, ""),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
