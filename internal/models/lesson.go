package models

import "time"

type DifficultyTier string

const (
	TierBeginner     DifficultyTier = "beginner"
	TierIntermediate DifficultyTier = "intermediate"
	TierAdvanced     DifficultyTier = "advanced"
)

var ValidDifficultyTiers = map[DifficultyTier]bool{
	TierBeginner:     true,
	TierIntermediate: true,
	TierAdvanced:     true,
}

// VocabularyEntry is a single word from a lesson's vocabulary list, as
// authored. Enrichment never mutates the original entry.
type VocabularyEntry struct {
	Word         string `json:"word"`
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
}

// EnrichedVocabularyEntry is a VocabularyEntry after pronunciation lookup
// and frequency counting. StudyCount and MasteryLevel are initialized here
// and owned by the study-tracking collaborator afterwards; the generators
// never write them.
type EnrichedVocabularyEntry struct {
	VocabularyEntry
	Pinyin       string `json:"pinyin"`
	Frequency    int    `json:"frequency"`
	StudyCount   int    `json:"study_count"`
	MasteryLevel int    `json:"mastery_level"`
}

type LessonMetadata struct {
	Difficulty DifficultyTier    `json:"difficulty"`
	Tags       []string          `json:"tags,omitempty"`
	Source     string            `json:"source,omitempty"`
	Vocabulary []VocabularyEntry `json:"vocabulary"`
}

// Lesson is the immutable input to the processing pipeline.
type Lesson struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content"`
	Metadata    LessonMetadata `json:"metadata"`
}

type SegmentType string

const (
	SegmentSentence    SegmentType = "sentence"
	SegmentVocabulary  SegmentType = "vocabulary"
	SegmentPunctuation SegmentType = "punctuation"
)

// TextSegment is a contiguous slice of lesson content. StartIndex and
// EndIndex are half-open rune offsets into the normalized content.
type TextSegment struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	StartIndex  int         `json:"start_index"`
	EndIndex    int         `json:"end_index"`
	SegmentType SegmentType `json:"segment_type"`
	Pinyin      string      `json:"pinyin,omitempty"`
	Translation string      `json:"translation,omitempty"`
	HeaderLevel int         `json:"header_level,omitempty"`
}

type SegmentationMode string

const (
	ModeSentence  SegmentationMode = "sentence"
	ModeParagraph SegmentationMode = "paragraph"
	ModeSection   SegmentationMode = "section"
	ModeCharacter SegmentationMode = "character"
)

type ProcessingOptions struct {
	SegmentationMode      SegmentationMode `json:"segmentation_mode"`
	GeneratePinyin        bool             `json:"generate_pinyin"`
	MaxSegments           int              `json:"max_segments,omitempty"`
	VocabularyEnhancement bool             `json:"vocabulary_enhancement"`
}

// ProcessedLessonContent is the output of LessonProcessor.Process.
// Vocabulary keys are unique words; when the input list carries duplicate
// words the first entry wins in the map (the full list survives in order
// inside VocabularyList).
type ProcessedLessonContent struct {
	LessonID        string                             `json:"lesson_id"`
	Segments        []TextSegment                      `json:"segments"`
	Vocabulary      map[string]EnrichedVocabularyEntry `json:"vocabulary"`
	VocabularyList  []EnrichedVocabularyEntry          `json:"vocabulary_list"`
	TotalSegments   int                                `json:"total_segments"`
	ProcessedAt     time.Time                          `json:"processed_at"`
	PinyinGenerated bool                               `json:"pinyin_generated"`
	AudioReady      bool                               `json:"audio_ready"`
}

// GenerationSource is the common input both generators consume: enriched
// vocabulary plus optional segments for example/context extraction.
type GenerationSource struct {
	LessonID   string
	Tier       DifficultyTier
	Vocabulary []EnrichedVocabularyEntry
	Segments   []TextSegment
}

// AudioID returns the lesson-audio identifier the playback collaborator
// resolves. The core never synthesizes audio.
func AudioID(word string) string {
	return "audio-" + word
}

// VocabAudioID is the per-vocabulary-word audio identifier convention.
func VocabAudioID(word string) string {
	return "vocab-" + word
}
