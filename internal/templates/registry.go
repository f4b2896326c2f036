package templates

import (
	"sort"

	"github.com/mandarin-prep/backend/internal/models"
)

// FieldLayout records which vocabulary fields each card face shows.
type FieldLayout struct {
	FrontShowsWord       bool `json:"front_shows_word"`
	FrontShowsPinyin     bool `json:"front_shows_pinyin"`
	FrontShowsDefinition bool `json:"front_shows_definition"`
	BackShowsWord        bool `json:"back_shows_word"`
	BackShowsPinyin      bool `json:"back_shows_pinyin"`
	BackShowsDefinition  bool `json:"back_shows_definition"`
}

// CardTemplate describes one flashcard kind. DifficultyOffset is added to
// the lesson's base difficulty: recall kinds (producing hanzi from memory)
// are hardest at +2, listening kinds +1, recognition kinds +0.
type CardTemplate struct {
	Type             models.CardType `json:"type"`
	Layout           FieldLayout     `json:"layout"`
	SupportsAudio    bool            `json:"supports_audio"`
	SupportsImages   bool            `json:"supports_images"`
	DifficultyOffset int             `json:"difficulty_offset"`
}

// QuestionTemplate describes one quiz question kind. Choice-style kinds
// name the distractor category their wrong answers draw from.
type QuestionTemplate struct {
	Type               models.QuestionType `json:"type"`
	HasOptions         bool                `json:"has_options"`
	DistractorCategory string              `json:"distractor_category,omitempty"`
	SupportsAudio      bool                `json:"supports_audio"`
	DifficultyOffset   int                 `json:"difficulty_offset"`
}

// Registry is the static catalog of card and question templates. It is
// built once at startup and read-only afterwards, so concurrent generation
// calls share it without locking.
type Registry struct {
	cards     map[models.CardType]CardTemplate
	questions map[models.QuestionType]QuestionTemplate
}

func NewRegistry() *Registry {
	cards := map[models.CardType]CardTemplate{
		models.CardHanziToPinyin: {
			Type:             models.CardHanziToPinyin,
			Layout:           FieldLayout{FrontShowsWord: true, BackShowsPinyin: true, BackShowsDefinition: true},
			SupportsAudio:    true,
			DifficultyOffset: 0,
		},
		models.CardPinyinToHanzi: {
			Type:             models.CardPinyinToHanzi,
			Layout:           FieldLayout{FrontShowsPinyin: true, BackShowsWord: true},
			SupportsAudio:    true,
			DifficultyOffset: 2,
		},
		models.CardHanziToDefinition: {
			Type:             models.CardHanziToDefinition,
			Layout:           FieldLayout{FrontShowsWord: true, BackShowsDefinition: true},
			SupportsAudio:    true,
			SupportsImages:   true,
			DifficultyOffset: 0,
		},
		models.CardDefinitionToHanzi: {
			Type:             models.CardDefinitionToHanzi,
			Layout:           FieldLayout{FrontShowsDefinition: true, BackShowsWord: true, BackShowsPinyin: true},
			SupportsImages:   true,
			DifficultyOffset: 2,
		},
		models.CardAudioToHanzi: {
			Type:             models.CardAudioToHanzi,
			Layout:           FieldLayout{BackShowsWord: true, BackShowsPinyin: true},
			SupportsAudio:    true,
			DifficultyOffset: 1,
		},
		models.CardAudioToDefinition: {
			Type:             models.CardAudioToDefinition,
			Layout:           FieldLayout{BackShowsPinyin: true, BackShowsDefinition: true},
			SupportsAudio:    true,
			DifficultyOffset: 1,
		},
	}

	questions := map[models.QuestionType]QuestionTemplate{
		models.QuestionMultipleChoiceDefinition: {
			Type:               models.QuestionMultipleChoiceDefinition,
			HasOptions:         true,
			DistractorCategory: CategoryTranslations,
			DifficultyOffset:   0,
		},
		models.QuestionMultipleChoicePinyin: {
			Type:               models.QuestionMultipleChoicePinyin,
			HasOptions:         true,
			DistractorCategory: CategoryPinyin,
			DifficultyOffset:   0,
		},
		models.QuestionHanziToPinyin: {
			Type:               models.QuestionHanziToPinyin,
			HasOptions:         true,
			DistractorCategory: CategoryPinyin,
			DifficultyOffset:   1,
		},
		models.QuestionPinyinToHanzi: {
			Type:               models.QuestionPinyinToHanzi,
			HasOptions:         true,
			DistractorCategory: CategoryHanzi,
			DifficultyOffset:   1,
		},
		models.QuestionAudioRecognition: {
			Type:               models.QuestionAudioRecognition,
			HasOptions:         true,
			DistractorCategory: CategoryHanzi,
			SupportsAudio:      true,
			DifficultyOffset:   2,
		},
		models.QuestionFillInBlank: {
			Type:             models.QuestionFillInBlank,
			DifficultyOffset: 2,
		},
		models.QuestionTranslation: {
			Type:             models.QuestionTranslation,
			DifficultyOffset: 1,
		},
	}

	return &Registry{cards: cards, questions: questions}
}

// Card looks up the template for a flashcard kind.
func (r *Registry) Card(t models.CardType) (CardTemplate, bool) {
	tmpl, ok := r.cards[t]
	return tmpl, ok
}

// Question looks up the template for a quiz question kind.
func (r *Registry) Question(t models.QuestionType) (QuestionTemplate, bool) {
	tmpl, ok := r.questions[t]
	return tmpl, ok
}

// Cards returns all card templates sorted by type for stable listing.
func (r *Registry) Cards() []CardTemplate {
	out := make([]CardTemplate, 0, len(r.cards))
	for _, tmpl := range r.cards {
		out = append(out, tmpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Questions returns all question templates sorted by type.
func (r *Registry) Questions() []QuestionTemplate {
	out := make([]QuestionTemplate, 0, len(r.questions))
	for _, tmpl := range r.questions {
		out = append(out, tmpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
