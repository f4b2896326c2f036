package quiz

import (
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mandarin-prep/backend/internal/models"
	"github.com/mandarin-prep/backend/internal/templates"
)

func entry(word, translation, pinyin string) models.EnrichedVocabularyEntry {
	return models.EnrichedVocabularyEntry{
		VocabularyEntry: models.VocabularyEntry{Word: word, Translation: translation},
		Pinyin:          pinyin,
		Frequency:       1,
	}
}

func fixedRand() RandFactory {
	return func() *rand.Rand { return rand.New(rand.NewSource(42)) }
}

func newTestGenerator() *Generator {
	return New(templates.NewRegistry(), templates.NewPool(), fixedRand(), zap.NewNop())
}

func sampleSource() models.GenerationSource {
	return models.GenerationSource{
		LessonID: "lesson-1",
		Tier:     models.TierIntermediate,
		Vocabulary: []models.EnrichedVocabularyEntry{
			entry("你好", "hello", "nǐ hǎo"),
			entry("谢谢", "thank you", "xièxie"),
			entry("再见", "goodbye", "zàijiàn"),
		},
		Segments: []models.TextSegment{{Text: "你好，老师！"}},
	}
}

func TestGenerate_CountDistributedAcrossTypes(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{
			models.QuestionMultipleChoiceDefinition,
			models.QuestionFillInBlank,
		},
		QuestionCount: 5,
	})

	if !result.Success {
		t.Fatalf("expected success, errors: %v", result.Errors)
	}
	// ceil(5/2) = 3 per type, then truncated back to 5.
	if len(result.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(result.Questions))
	}
	total := 0
	for _, n := range result.CountsByType {
		total += n
	}
	if total != 5 {
		t.Errorf("counts should cover the final list, got %d", total)
	}
}

func TestGenerate_EmptyVocabularyFails(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(models.GenerationSource{LessonID: "lesson-1"}, models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionMultipleChoiceDefinition},
		QuestionCount: 5,
	})

	if result.Success {
		t.Error("empty vocabulary should not succeed")
	}
	if result.Errors[0].Code != models.ErrCodeInsufficientVocabulary {
		t.Errorf("expected INSUFFICIENT_VOCABULARY, got %q", result.Errors[0].Code)
	}
}

func TestGenerate_ChoiceQuestionsHaveFourDistinctOptions(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionMultipleChoiceDefinition},
		QuestionCount: 3,
	})

	for _, q := range result.Questions {
		if len(q.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(q.Options))
		}
		seen := make(map[string]bool)
		found := false
		for _, opt := range q.Options {
			if seen[opt] {
				t.Errorf("duplicate option %q", opt)
			}
			seen[opt] = true
			if opt == q.CorrectAnswer {
				found = true
			}
		}
		if !found {
			t.Errorf("options %v missing correct answer %q", q.Options, q.CorrectAnswer)
		}
	}
}

func TestGenerate_FreeResponseHasNoOptions(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionFillInBlank, models.QuestionTranslation},
		QuestionCount: 4,
	})

	for _, q := range result.Questions {
		if len(q.Options) != 0 {
			t.Errorf("%s questions should have no options, got %v", q.Type, q.Options)
		}
	}
}

func TestGenerate_FillInBlankUsesLessonSentence(t *testing.T) {
	g := newTestGenerator()

	src := sampleSource()
	result := g.Generate(src, models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionFillInBlank},
		QuestionCount: 3,
	})

	var blanked *models.QuizQuestion
	for i := range result.Questions {
		if result.Questions[i].VocabularyWord == "你好" {
			blanked = &result.Questions[i]
		}
	}
	if blanked == nil {
		t.Fatal("expected a question for 你好")
	}
	if !strings.Contains(blanked.Question, "____") {
		t.Errorf("expected a blank in the prompt, got %q", blanked.Question)
	}
	if strings.Contains(blanked.Question, "你好，老师！") {
		t.Errorf("the word should be blanked out of the sentence, got %q", blanked.Question)
	}
	if blanked.CorrectAnswer != "你好" {
		t.Errorf("expected answer 你好, got %q", blanked.CorrectAnswer)
	}
}

func TestGenerate_PreventRepeatCapsAtVocabulary(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionMultipleChoiceDefinition},
		QuestionCount: 10,
		PreventRepeat: true,
	})

	// 3 vocabulary entries cap a single type at 3 questions.
	if len(result.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(result.Questions))
	}
	seen := make(map[string]bool)
	for _, q := range result.Questions {
		if seen[q.VocabularyWord] {
			t.Errorf("word %q repeated despite prevent_repeat", q.VocabularyWord)
		}
		seen[q.VocabularyWord] = true
	}
}

func TestGenerate_PreventRepeatWithDuplicateWords(t *testing.T) {
	g := newTestGenerator()

	src := models.GenerationSource{
		LessonID: "lesson-1",
		Vocabulary: []models.EnrichedVocabularyEntry{
			entry("好", "good", "hǎo"),
			entry("好", "fine", "hǎo"),
			entry("你好", "hello", "nǐ hǎo"),
		},
	}
	result := g.Generate(src, models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionTranslation},
		QuestionCount: 3,
		PreventRepeat: true,
	})

	// Two distinct words, so the duplicated entry yields no extra question.
	if len(result.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(result.Questions))
	}
	seen := make(map[string]bool)
	for _, q := range result.Questions {
		if seen[q.VocabularyWord] {
			t.Errorf("word %q repeated despite prevent_repeat", q.VocabularyWord)
		}
		seen[q.VocabularyWord] = true
	}
	if result.VocabularyUsed != 2 {
		t.Errorf("expected 2 distinct words used, got %d", result.VocabularyUsed)
	}
}

func TestGenerate_UniqueIDsWhenWordsRepeat(t *testing.T) {
	g := newTestGenerator()

	src := models.GenerationSource{
		LessonID:   "lesson-1",
		Vocabulary: []models.EnrichedVocabularyEntry{entry("你好", "hello", "nǐ hǎo")},
	}
	result := g.Generate(src, models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionTranslation},
		QuestionCount: 4,
	})

	ids := make(map[string]bool)
	for _, q := range result.Questions {
		if ids[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		ids[q.ID] = true
	}
}

func TestGenerate_FixedSeedIsDeterministic(t *testing.T) {
	opts := models.QuizOptions{
		QuestionTypes:  []models.QuestionType{models.QuestionMultipleChoicePinyin},
		QuestionCount:  3,
		ShuffleOptions: true,
	}

	a := newTestGenerator().Generate(sampleSource(), opts)
	b := newTestGenerator().Generate(sampleSource(), opts)

	if len(a.Questions) != len(b.Questions) {
		t.Fatalf("question counts differ: %d vs %d", len(a.Questions), len(b.Questions))
	}
	for i := range a.Questions {
		if a.Questions[i].ID != b.Questions[i].ID {
			t.Errorf("question %d ids differ", i)
		}
		for j := range a.Questions[i].Options {
			if a.Questions[i].Options[j] != b.Questions[i].Options[j] {
				t.Errorf("question %d option %d differs", i, j)
			}
		}
	}
}

func TestGenerate_UnshuffledOptionsLeadWithCorrectAnswer(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionMultipleChoiceDefinition},
		QuestionCount: 3,
	})

	for _, q := range result.Questions {
		if q.Options[0] != q.CorrectAnswer {
			t.Errorf("without shuffling the correct answer comes first, got %q", q.Options[0])
		}
	}
}

func TestGenerate_AudioRecognitionCarriesAudioID(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionAudioRecognition},
		QuestionCount: 3,
	})

	for _, q := range result.Questions {
		if q.AudioID == "" {
			t.Errorf("audio recognition question %q missing audio id", q.ID)
		}
		if !strings.HasPrefix(q.AudioID, "audio-") {
			t.Errorf("unexpected audio id %q", q.AudioID)
		}
	}
}

func TestGenerate_UnknownTypeSkipped(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{
			models.QuestionTranslation,
			models.QuestionType("telepathy"),
		},
		QuestionCount: 4,
	})

	if result.Success {
		t.Error("unknown type should surface an error")
	}
	if len(result.Questions) == 0 {
		t.Error("known types should still generate")
	}
	for _, q := range result.Questions {
		if q.Type != models.QuestionTranslation {
			t.Errorf("unexpected question type %q", q.Type)
		}
	}
}

func TestGenerate_TimeLimitEchoed(t *testing.T) {
	g := newTestGenerator()

	result := g.Generate(sampleSource(), models.QuizOptions{
		QuestionTypes: []models.QuestionType{models.QuestionTranslation},
		QuestionCount: 3,
		TimeLimit:     300,
	})

	if result.TimeLimit != 300 {
		t.Errorf("expected time limit 300, got %d", result.TimeLimit)
	}
}
