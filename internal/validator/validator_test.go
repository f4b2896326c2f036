package validator

import (
	"strings"
	"testing"

	"github.com/mandarin-prep/backend/internal/models"
)

func validFlashcardsRequest() *models.GenerateFlashcardsRequest {
	return &models.GenerateFlashcardsRequest{
		Lesson: &models.Lesson{
			ID: "lesson-1",
			Metadata: models.LessonMetadata{
				Vocabulary: []models.VocabularyEntry{{Word: "你好", Translation: "hello"}},
			},
		},
		Options: models.FlashcardOptions{
			CardTypes: []models.CardType{models.CardHanziToPinyin},
			MaxCards:  20,
		},
	}
}

func validQuizRequest() *models.GenerateQuizRequest {
	return &models.GenerateQuizRequest{
		Lesson: &models.Lesson{
			ID: "lesson-1",
			Metadata: models.LessonMetadata{
				Vocabulary: []models.VocabularyEntry{{Word: "你好", Translation: "hello"}},
			},
		},
		Options: models.QuizOptions{
			QuestionTypes: []models.QuestionType{models.QuestionMultipleChoiceDefinition},
			QuestionCount: 5,
		},
	}
}

func fieldMessages(errs []models.FieldError, field string) []string {
	var out []string
	for _, e := range errs {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestValidateFlashcards_ValidRequest(t *testing.T) {
	result := ValidateFlashcards(validFlashcardsRequest())
	if !result.IsValid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidateFlashcards_MaxCardsOutOfRange(t *testing.T) {
	req := validFlashcardsRequest()
	req.Options.MaxCards = 100

	result := ValidateFlashcards(req)
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	msgs := fieldMessages(result.Errors, "options.max_cards")
	if len(msgs) != 1 {
		t.Fatalf("expected one max_cards error, got %v", result.Errors)
	}
	if !strings.Contains(msgs[0], "1") || !strings.Contains(msgs[0], "50") {
		t.Errorf("message should name the allowed range, got %q", msgs[0])
	}
}

func TestValidateFlashcards_MissingSource(t *testing.T) {
	req := validFlashcardsRequest()
	req.Lesson = nil
	req.Vocabulary = nil

	result := ValidateFlashcards(req)
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	if len(fieldMessages(result.Errors, "lesson")) == 0 {
		t.Errorf("expected a lesson error, got %v", result.Errors)
	}
}

func TestValidateFlashcards_RawVocabularyIsEnough(t *testing.T) {
	req := validFlashcardsRequest()
	req.Lesson = nil
	req.Vocabulary = []models.VocabularyEntry{{Word: "你好", Translation: "hello"}}

	result := ValidateFlashcards(req)
	if !result.IsValid {
		t.Errorf("raw vocabulary should satisfy the source requirement, got %v", result.Errors)
	}
}

func TestValidateFlashcards_UnknownCardType(t *testing.T) {
	req := validFlashcardsRequest()
	req.Options.CardTypes = []models.CardType{"hologram"}

	result := ValidateFlashcards(req)
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	if len(fieldMessages(result.Errors, "options.card_types")) == 0 {
		t.Errorf("expected a card_types error, got %v", result.Errors)
	}
}

func TestValidateFlashcards_EmptyCardTypes(t *testing.T) {
	req := validFlashcardsRequest()
	req.Options.CardTypes = nil

	if result := ValidateFlashcards(req); result.IsValid {
		t.Error("empty card types should be invalid")
	}
}

func TestValidateFlashcards_BadDifficultyTier(t *testing.T) {
	req := validFlashcardsRequest()
	bad := models.DifficultyTier("expert")
	req.Options.Difficulty = &bad

	if result := ValidateFlashcards(req); result.IsValid {
		t.Error("unknown tier should be invalid")
	}
}

func TestValidateFlashcards_MultipleErrorsCollected(t *testing.T) {
	req := &models.GenerateFlashcardsRequest{
		Options: models.FlashcardOptions{MaxCards: 0},
	}

	result := ValidateFlashcards(req)
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	// Missing source, max_cards, and card_types should all be reported.
	if len(result.Errors) < 3 {
		t.Errorf("expected all problems collected, got %v", result.Errors)
	}
}

func TestValidateQuiz_ValidRequest(t *testing.T) {
	result := ValidateQuiz(validQuizRequest())
	if !result.IsValid {
		t.Errorf("expected valid, got errors: %v", result.Errors)
	}
}

func TestValidateQuiz_QuestionCountBounds(t *testing.T) {
	for _, count := range []int{0, 2, 21} {
		req := validQuizRequest()
		req.Options.QuestionCount = count
		if result := ValidateQuiz(req); result.IsValid {
			t.Errorf("question_count %d should be invalid", count)
		}
	}
	for _, count := range []int{3, 10, 20} {
		req := validQuizRequest()
		req.Options.QuestionCount = count
		if result := ValidateQuiz(req); !result.IsValid {
			t.Errorf("question_count %d should be valid, got %v", count, result.Errors)
		}
	}
}

func TestValidateQuiz_TimeLimitBounds(t *testing.T) {
	req := validQuizRequest()
	req.Options.TimeLimit = 10
	if result := ValidateQuiz(req); result.IsValid {
		t.Error("10 second limit should be invalid")
	}

	req.Options.TimeLimit = 0 // unset means untimed
	if result := ValidateQuiz(req); !result.IsValid {
		t.Errorf("untimed quiz should be valid, got %v", result.Errors)
	}

	req.Options.TimeLimit = 600
	if result := ValidateQuiz(req); !result.IsValid {
		t.Errorf("600 second limit should be valid, got %v", result.Errors)
	}
}

func TestValidateQuiz_MissingLesson(t *testing.T) {
	req := validQuizRequest()
	req.Lesson = nil

	if result := ValidateQuiz(req); result.IsValid {
		t.Error("quiz without a lesson should be invalid")
	}
}

func TestValidate_DispatchesOnKind(t *testing.T) {
	result := Validate(&models.ValidateRequest{
		Kind:       "flashcards",
		Flashcards: validFlashcardsRequest(),
	})
	if !result.IsValid {
		t.Errorf("expected valid flashcards dispatch, got %v", result.Errors)
	}

	result = Validate(&models.ValidateRequest{
		Kind: "quiz",
		Quiz: validQuizRequest(),
	})
	if !result.IsValid {
		t.Errorf("expected valid quiz dispatch, got %v", result.Errors)
	}

	result = Validate(&models.ValidateRequest{Kind: "essay"})
	if result.IsValid {
		t.Error("unknown kind should be invalid")
	}
}

func TestValidate_NilRequests(t *testing.T) {
	if result := Validate(nil); result.IsValid {
		t.Error("nil request should be invalid")
	}
	if result := ValidateFlashcards(nil); result.IsValid {
		t.Error("nil flashcards request should be invalid")
	}
	if result := ValidateQuiz(nil); result.IsValid {
		t.Error("nil quiz request should be invalid")
	}
}
