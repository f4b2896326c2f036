package models

// ── Request Types ─────────────────────────────────────

type ProcessLessonRequest struct {
	Lesson  *Lesson           `json:"lesson"`
	Options ProcessingOptions `json:"options"`
}

// GenerateFlashcardsRequest accepts either a full lesson (processed before
// generation) or a raw vocabulary list.
type GenerateFlashcardsRequest struct {
	Lesson     *Lesson           `json:"lesson,omitempty"`
	Vocabulary []VocabularyEntry `json:"vocabulary,omitempty"`
	Options    FlashcardOptions  `json:"options"`
}

type GenerateQuizRequest struct {
	Lesson  *Lesson     `json:"lesson"`
	Options QuizOptions `json:"options"`
}

// ValidateRequest wraps one generation request for shape validation.
// Kind selects which payload is checked: "flashcards" or "quiz".
type ValidateRequest struct {
	Kind       string                     `json:"kind"`
	Flashcards *GenerateFlashcardsRequest `json:"flashcards,omitempty"`
	Quiz       *GenerateQuizRequest       `json:"quiz,omitempty"`
}

// ── Validation Results ────────────────────────────────

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	IsValid bool         `json:"is_valid"`
	Errors  []FieldError `json:"errors,omitempty"`
}
