package models

import "time"

type CardType string

const (
	CardHanziToPinyin     CardType = "hanzi-to-pinyin"
	CardPinyinToHanzi     CardType = "pinyin-to-hanzi"
	CardHanziToDefinition CardType = "hanzi-to-definition"
	CardDefinitionToHanzi CardType = "definition-to-hanzi"
	CardAudioToHanzi      CardType = "audio-to-hanzi"
	CardAudioToDefinition CardType = "audio-to-definition"
)

var ValidCardTypes = map[CardType]bool{
	CardHanziToPinyin:     true,
	CardPinyinToHanzi:     true,
	CardHanziToDefinition: true,
	CardDefinitionToHanzi: true,
	CardAudioToHanzi:      true,
	CardAudioToDefinition: true,
}

// CardSide is one face of a flashcard. AudioID is an identifier only; the
// audio-playback collaborator resolves it.
type CardSide struct {
	Content  string   `json:"content"`
	Pinyin   string   `json:"pinyin,omitempty"`
	AudioID  string   `json:"audio_id,omitempty"`
	Examples []string `json:"examples,omitempty"`
}

// SRSData is the spaced-repetition scheduling state attached to a card by
// the scheduling initializer. Interval is in days.
type SRSData struct {
	Interval    int       `json:"interval"`
	EaseFactor  float64   `json:"ease_factor"`
	ReviewCount int       `json:"review_count"`
	NextReview  time.Time `json:"next_review"`
}

type Flashcard struct {
	ID              string                  `json:"id"`
	LessonID        string                  `json:"lesson_id"`
	VocabularyEntry EnrichedVocabularyEntry `json:"vocabulary_entry"`
	FrontSide       CardSide                `json:"front_side"`
	BackSide        CardSide                `json:"back_side"`
	CardType        CardType                `json:"card_type"`
	Difficulty      int                     `json:"difficulty"`
	Tags            []string                `json:"tags,omitempty"`
	SRSData         *SRSData                `json:"srs_data,omitempty"`
}

type FlashcardOptions struct {
	CardTypes       []CardType      `json:"card_types"`
	MaxCards        int             `json:"max_cards"`
	Difficulty      *DifficultyTier `json:"difficulty,omitempty"`
	IncludeAudio    bool            `json:"include_audio"`
	IncludePinyin   bool            `json:"include_pinyin"`
	IncludeExamples bool            `json:"include_examples"`
	SRSIntegration  bool            `json:"srs_integration"`
}

// FlashcardResult reports one generation run. VocabularyUsed counts the
// distinct words appearing on the produced cards.
type FlashcardResult struct {
	Success          bool              `json:"success"`
	Flashcards       []Flashcard       `json:"flashcards"`
	CountsByType     map[CardType]int  `json:"counts_by_type"`
	VocabularyUsed   int               `json:"vocabulary_used"`
	GenerationTimeMs int64             `json:"generation_time_ms"`
	Errors           []GenerationError `json:"errors,omitempty"`
}
