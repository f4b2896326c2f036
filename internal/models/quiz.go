package models

type QuestionType string

const (
	QuestionMultipleChoiceDefinition QuestionType = "multiple-choice-definition"
	QuestionMultipleChoicePinyin     QuestionType = "multiple-choice-pinyin"
	QuestionHanziToPinyin            QuestionType = "hanzi-to-pinyin"
	QuestionPinyinToHanzi            QuestionType = "pinyin-to-hanzi"
	QuestionAudioRecognition         QuestionType = "audio-recognition"
	QuestionFillInBlank              QuestionType = "fill-in-blank"
	QuestionTranslation              QuestionType = "translation"
)

var ValidQuestionTypes = map[QuestionType]bool{
	QuestionMultipleChoiceDefinition: true,
	QuestionMultipleChoicePinyin:     true,
	QuestionHanziToPinyin:            true,
	QuestionPinyinToHanzi:            true,
	QuestionAudioRecognition:         true,
	QuestionFillInBlank:              true,
	QuestionTranslation:              true,
}

// QuizQuestion is one generated question. Options is present only for
// choice-style types and then always holds the correct answer exactly once
// plus pairwise-distinct distractors.
type QuizQuestion struct {
	ID             string       `json:"id"`
	Type           QuestionType `json:"type"`
	Question       string       `json:"question"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswer  string       `json:"correct_answer"`
	Explanation    string       `json:"explanation,omitempty"`
	AudioID        string       `json:"audio_id,omitempty"`
	Difficulty     int          `json:"difficulty"`
	VocabularyWord string       `json:"vocabulary_word,omitempty"`
}

type QuizOptions struct {
	QuestionTypes  []QuestionType  `json:"question_types"`
	QuestionCount  int             `json:"question_count"`
	Difficulty     *DifficultyTier `json:"difficulty,omitempty"`
	IncludeAudio   bool            `json:"include_audio"`
	IncludePinyin  bool            `json:"include_pinyin"`
	ShuffleOptions bool            `json:"shuffle_options"`
	PreventRepeat  bool            `json:"prevent_repeat"`
	TimeLimit      int             `json:"time_limit,omitempty"`
}

// QuizResult reports one generation run. VocabularyUsed counts the
// distinct words appearing in the final question list.
type QuizResult struct {
	Success          bool                 `json:"success"`
	Questions        []QuizQuestion       `json:"questions"`
	CountsByType     map[QuestionType]int `json:"counts_by_type"`
	VocabularyUsed   int                  `json:"vocabulary_used"`
	GenerationTimeMs int64                `json:"generation_time_ms"`
	TimeLimit        int                  `json:"time_limit,omitempty"`
	Errors           []GenerationError    `json:"errors,omitempty"`
}
