package templates

import (
	"testing"

	"github.com/mandarin-prep/backend/internal/models"
)

func TestNewRegistry_AllCardKindsPresent(t *testing.T) {
	r := NewRegistry()

	for kind := range models.ValidCardTypes {
		if _, ok := r.Card(kind); !ok {
			t.Errorf("registry missing card template for %q", kind)
		}
	}
	if len(r.Cards()) != len(models.ValidCardTypes) {
		t.Errorf("expected %d card templates, got %d", len(models.ValidCardTypes), len(r.Cards()))
	}
}

func TestNewRegistry_AllQuestionKindsPresent(t *testing.T) {
	r := NewRegistry()

	for kind := range models.ValidQuestionTypes {
		if _, ok := r.Question(kind); !ok {
			t.Errorf("registry missing question template for %q", kind)
		}
	}
}

func TestRegistry_UnknownKind(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Card(models.CardType("nope")); ok {
		t.Error("unknown card kind should not resolve")
	}
	if _, ok := r.Question(models.QuestionType("nope")); ok {
		t.Error("unknown question kind should not resolve")
	}
}

func TestRegistry_RecallKindsHarderThanRecognition(t *testing.T) {
	r := NewRegistry()

	recognition, _ := r.Card(models.CardHanziToPinyin)
	recall, _ := r.Card(models.CardPinyinToHanzi)
	listening, _ := r.Card(models.CardAudioToHanzi)

	if recall.DifficultyOffset <= recognition.DifficultyOffset {
		t.Errorf("recall offset %d should exceed recognition offset %d",
			recall.DifficultyOffset, recognition.DifficultyOffset)
	}
	if listening.DifficultyOffset <= recognition.DifficultyOffset {
		t.Errorf("listening offset %d should exceed recognition offset %d",
			listening.DifficultyOffset, recognition.DifficultyOffset)
	}
	if listening.DifficultyOffset >= recall.DifficultyOffset {
		t.Errorf("listening offset %d should sit below recall offset %d",
			listening.DifficultyOffset, recall.DifficultyOffset)
	}
}

func TestRegistry_ChoiceQuestionsNameACategory(t *testing.T) {
	r := NewRegistry()

	for _, tmpl := range r.Questions() {
		if tmpl.HasOptions && tmpl.DistractorCategory == "" {
			t.Errorf("choice question %q has no distractor category", tmpl.Type)
		}
		if !tmpl.HasOptions && tmpl.DistractorCategory != "" {
			t.Errorf("free-response question %q should not name a category", tmpl.Type)
		}
	}
}
