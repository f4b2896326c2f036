package quiz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mandarin-prep/backend/internal/models"
	"github.com/mandarin-prep/backend/internal/templates"
)

// optionCount is the fixed option-list size for choice-style questions:
// the correct answer plus three distractors.
const optionCount = 4

// buildInput carries everything a question builder needs for one question.
type buildInput struct {
	src   models.GenerationSource
	entry models.EnrichedVocabularyEntry
	tmpl  templates.QuestionTemplate
	opts  models.QuizOptions
	pool  *templates.Pool
	rng   *rand.Rand
	seq   int
	base  int
}

// builderFunc assembles one question. One builder per type lives in the
// generator's lookup table.
type builderFunc func(in buildInput) models.QuizQuestion

func newBuilderTable() map[models.QuestionType]builderFunc {
	return map[models.QuestionType]builderFunc{
		models.QuestionMultipleChoiceDefinition: buildMultipleChoiceDefinition,
		models.QuestionMultipleChoicePinyin:     buildMultipleChoicePinyin,
		models.QuestionHanziToPinyin:            buildHanziToPinyin,
		models.QuestionPinyinToHanzi:            buildPinyinToHanzi,
		models.QuestionAudioRecognition:         buildAudioRecognition,
		models.QuestionFillInBlank:              buildFillInBlank,
		models.QuestionTranslation:              buildTranslation,
	}
}

func newQuestion(in buildInput) models.QuizQuestion {
	q := models.QuizQuestion{
		ID:             QuestionID(in.src.LessonID, in.entry.Word, in.tmpl.Type, in.seq),
		Type:           in.tmpl.Type,
		Difficulty:     templates.ComputeDifficulty(in.base, in.tmpl.DifficultyOffset),
		VocabularyWord: in.entry.Word,
	}
	if in.opts.IncludeAudio && in.tmpl.SupportsAudio {
		q.AudioID = models.AudioID(in.entry.Word)
	}
	return q
}

// assembleOptions builds the 4-entry option list: the correct answer
// exactly once plus distinct distractors from the template's category.
// ShuffleOptions randomizes order only, never the allowed values.
func assembleOptions(in buildInput, correct string) []string {
	distractors := in.pool.Pick(in.rng, in.tmpl.DistractorCategory, correct, optionCount-1)
	options := append([]string{correct}, distractors...)
	if in.opts.ShuffleOptions {
		in.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
	}
	return options
}

func buildMultipleChoiceDefinition(in buildInput) models.QuizQuestion {
	q := newQuestion(in)
	if in.opts.IncludePinyin {
		q.Question = fmt.Sprintf("What does “%s” (%s) mean?", in.entry.Word, in.entry.Pinyin)
	} else {
		q.Question = fmt.Sprintf("What does “%s” mean?", in.entry.Word)
	}
	q.CorrectAnswer = in.entry.Translation
	q.Options = assembleOptions(in, q.CorrectAnswer)
	q.Explanation = fmt.Sprintf("“%s” (%s) means “%s”.", in.entry.Word, in.entry.Pinyin, in.entry.Translation)
	return q
}

func buildMultipleChoicePinyin(in buildInput) models.QuizQuestion {
	q := newQuestion(in)
	q.Question = fmt.Sprintf("Which pinyin is the correct pronunciation of “%s”?", in.entry.Word)
	q.CorrectAnswer = in.entry.Pinyin
	q.Options = assembleOptions(in, q.CorrectAnswer)
	q.Explanation = fmt.Sprintf("“%s” is pronounced “%s”.", in.entry.Word, in.entry.Pinyin)
	return q
}

func buildHanziToPinyin(in buildInput) models.QuizQuestion {
	q := newQuestion(in)
	q.Question = fmt.Sprintf("How do you pronounce “%s” (%s)?", in.entry.Word, in.entry.Translation)
	q.CorrectAnswer = in.entry.Pinyin
	q.Options = assembleOptions(in, q.CorrectAnswer)
	q.Explanation = fmt.Sprintf("“%s” is pronounced “%s”.", in.entry.Word, in.entry.Pinyin)
	return q
}

func buildPinyinToHanzi(in buildInput) models.QuizQuestion {
	q := newQuestion(in)
	q.Question = fmt.Sprintf("Which word is pronounced “%s”?", in.entry.Pinyin)
	q.CorrectAnswer = in.entry.Word
	q.Options = assembleOptions(in, q.CorrectAnswer)
	q.Explanation = fmt.Sprintf("“%s” is the word pronounced “%s”.", in.entry.Word, in.entry.Pinyin)
	return q
}

func buildAudioRecognition(in buildInput) models.QuizQuestion {
	q := newQuestion(in)
	q.Question = "Listen to the audio and choose the word you hear."
	q.AudioID = models.AudioID(in.entry.Word)
	q.CorrectAnswer = in.entry.Word
	q.Options = assembleOptions(in, q.CorrectAnswer)
	q.Explanation = fmt.Sprintf("The audio says “%s” (%s).", in.entry.Word, in.entry.Pinyin)
	return q
}

func buildFillInBlank(in buildInput) models.QuizQuestion {
	q := newQuestion(in)
	if sentence := sentenceContaining(in.src.Segments, in.entry.Word); sentence != "" {
		blanked := strings.Replace(sentence, in.entry.Word, "____", 1)
		q.Question = fmt.Sprintf("Fill in the blank: %s (hint: “%s”)", blanked, in.entry.Translation)
	} else {
		q.Question = fmt.Sprintf("Fill in the blank: ____ means “%s”.", in.entry.Translation)
	}
	q.CorrectAnswer = in.entry.Word
	q.Explanation = fmt.Sprintf("The missing word is “%s” (%s).", in.entry.Word, in.entry.Pinyin)
	return q
}

func buildTranslation(in buildInput) models.QuizQuestion {
	q := newQuestion(in)
	if in.opts.IncludePinyin {
		q.Question = fmt.Sprintf("Translate “%s” (%s) into English.", in.entry.Word, in.entry.Pinyin)
	} else {
		q.Question = fmt.Sprintf("Translate “%s” into English.", in.entry.Word)
	}
	q.CorrectAnswer = in.entry.Translation
	q.Explanation = fmt.Sprintf("“%s” means “%s”.", in.entry.Word, in.entry.Translation)
	return q
}

func sentenceContaining(segments []models.TextSegment, word string) string {
	for _, seg := range segments {
		if strings.Contains(seg.Text, word) {
			return seg.Text
		}
	}
	return ""
}
