package validator

import (
	"fmt"

	"github.com/mandarin-prep/backend/internal/models"
)

// Request bounds. Validation is pure shape checking — it never looks at
// runtime state like pool contents.
const (
	MinMaxCards      = 1
	MaxMaxCards      = 50
	MinQuestionCount = 3
	MaxQuestionCount = 20
	MinTimeLimitSec  = 30
	MaxTimeLimitSec  = 1800
)

// ValidateFlashcards checks a flashcard generation request's shape.
func ValidateFlashcards(req *models.GenerateFlashcardsRequest) models.ValidationResult {
	var errs []models.FieldError

	if req == nil {
		return invalid([]models.FieldError{{Field: "request", Message: "request is required"}})
	}

	if req.Lesson == nil && len(req.Vocabulary) == 0 {
		errs = append(errs, models.FieldError{
			Field:   "lesson",
			Message: "a lesson or a non-empty vocabulary list is required",
		})
	}
	if req.Lesson != nil && len(req.Lesson.Metadata.Vocabulary) == 0 && len(req.Vocabulary) == 0 {
		errs = append(errs, models.FieldError{
			Field:   "lesson.metadata.vocabulary",
			Message: "lesson has no vocabulary",
		})
	}

	if req.Options.MaxCards < MinMaxCards || req.Options.MaxCards > MaxMaxCards {
		errs = append(errs, models.FieldError{
			Field:   "options.max_cards",
			Message: fmt.Sprintf("max_cards must be between %d and %d", MinMaxCards, MaxMaxCards),
		})
	}

	if len(req.Options.CardTypes) == 0 {
		errs = append(errs, models.FieldError{
			Field:   "options.card_types",
			Message: "at least one card type is required",
		})
	}
	for _, t := range req.Options.CardTypes {
		if !models.ValidCardTypes[t] {
			errs = append(errs, models.FieldError{
				Field:   "options.card_types",
				Message: fmt.Sprintf("unknown card type %q", t),
			})
		}
	}

	if d := req.Options.Difficulty; d != nil && !models.ValidDifficultyTiers[*d] {
		errs = append(errs, models.FieldError{
			Field:   "options.difficulty",
			Message: "difficulty must be 'beginner', 'intermediate', or 'advanced'",
		})
	}

	return resultFor(errs)
}

// ValidateQuiz checks a quiz generation request's shape.
func ValidateQuiz(req *models.GenerateQuizRequest) models.ValidationResult {
	var errs []models.FieldError

	if req == nil {
		return invalid([]models.FieldError{{Field: "request", Message: "request is required"}})
	}

	if req.Lesson == nil {
		errs = append(errs, models.FieldError{Field: "lesson", Message: "lesson is required"})
	} else if len(req.Lesson.Metadata.Vocabulary) == 0 {
		errs = append(errs, models.FieldError{
			Field:   "lesson.metadata.vocabulary",
			Message: "lesson has no vocabulary",
		})
	}

	if req.Options.QuestionCount < MinQuestionCount || req.Options.QuestionCount > MaxQuestionCount {
		errs = append(errs, models.FieldError{
			Field:   "options.question_count",
			Message: fmt.Sprintf("question_count must be between %d and %d", MinQuestionCount, MaxQuestionCount),
		})
	}

	if len(req.Options.QuestionTypes) == 0 {
		errs = append(errs, models.FieldError{
			Field:   "options.question_types",
			Message: "at least one question type is required",
		})
	}
	for _, t := range req.Options.QuestionTypes {
		if !models.ValidQuestionTypes[t] {
			errs = append(errs, models.FieldError{
				Field:   "options.question_types",
				Message: fmt.Sprintf("unknown question type %q", t),
			})
		}
	}

	if tl := req.Options.TimeLimit; tl != 0 && (tl < MinTimeLimitSec || tl > MaxTimeLimitSec) {
		errs = append(errs, models.FieldError{
			Field:   "options.time_limit",
			Message: fmt.Sprintf("time_limit must be between %d and %d seconds", MinTimeLimitSec, MaxTimeLimitSec),
		})
	}

	if d := req.Options.Difficulty; d != nil && !models.ValidDifficultyTiers[*d] {
		errs = append(errs, models.FieldError{
			Field:   "options.difficulty",
			Message: "difficulty must be 'beginner', 'intermediate', or 'advanced'",
		})
	}

	return resultFor(errs)
}

// Validate dispatches on the wrapped request kind.
func Validate(req *models.ValidateRequest) models.ValidationResult {
	if req == nil {
		return invalid([]models.FieldError{{Field: "request", Message: "request is required"}})
	}

	switch req.Kind {
	case "flashcards":
		return ValidateFlashcards(req.Flashcards)
	case "quiz":
		return ValidateQuiz(req.Quiz)
	default:
		return invalid([]models.FieldError{{
			Field:   "kind",
			Message: "kind must be 'flashcards' or 'quiz'",
		}})
	}
}

func resultFor(errs []models.FieldError) models.ValidationResult {
	if len(errs) > 0 {
		return invalid(errs)
	}
	return models.ValidationResult{IsValid: true}
}

func invalid(errs []models.FieldError) models.ValidationResult {
	return models.ValidationResult{IsValid: false, Errors: errs}
}
