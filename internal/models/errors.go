package models

import "errors"

// ErrorCode is the closed set of generation error kinds. Codes travel
// inside result objects; only structural pre-condition failures surface as
// returned Go errors.
type ErrorCode string

const (
	ErrCodeInvalidLesson          ErrorCode = "INVALID_LESSON"
	ErrCodeNoVocabulary           ErrorCode = "NO_VOCABULARY"
	ErrCodeInsufficientVocabulary ErrorCode = "INSUFFICIENT_VOCABULARY"
	ErrCodeTemplateError          ErrorCode = "TEMPLATE_ERROR"
	ErrCodeSRSIntegrationFailed   ErrorCode = "SRS_INTEGRATION_FAILED"
	ErrCodeAudioGenerationFailed  ErrorCode = "AUDIO_GENERATION_FAILED"
	ErrCodeValidationFailed       ErrorCode = "VALIDATION_FAILED"
)

// ErrInvalidLesson is returned by entry calls handed a structurally
// invalid lesson (nil, or no content at all).
var ErrInvalidLesson = errors.New("invalid lesson")

// GenerationError is a non-fatal problem captured inside a result. Word and
// Kind carry optional context about which entry or card/question kind
// produced it.
type GenerationError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Word    string    `json:"word,omitempty"`
	Kind    string    `json:"kind,omitempty"`
}

func (e GenerationError) Error() string {
	return string(e.Code) + ": " + e.Message
}
