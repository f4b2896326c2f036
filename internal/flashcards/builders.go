package flashcards

import "github.com/mandarin-prep/backend/internal/models"

// builderFunc assembles the two faces for one card kind. One builder per
// kind lives in the generator's lookup table; the dispatch site never
// changes when a kind is added.
type builderFunc func(entry models.EnrichedVocabularyEntry, opts models.FlashcardOptions) (front, back models.CardSide)

func newBuilderTable() map[models.CardType]builderFunc {
	return map[models.CardType]builderFunc{
		models.CardHanziToPinyin:     buildHanziToPinyin,
		models.CardPinyinToHanzi:     buildPinyinToHanzi,
		models.CardHanziToDefinition: buildHanziToDefinition,
		models.CardDefinitionToHanzi: buildDefinitionToHanzi,
		models.CardAudioToHanzi:      buildAudioToHanzi,
		models.CardAudioToDefinition: buildAudioToDefinition,
	}
}

func buildHanziToPinyin(e models.EnrichedVocabularyEntry, opts models.FlashcardOptions) (models.CardSide, models.CardSide) {
	front := models.CardSide{Content: e.Word}
	back := models.CardSide{Content: e.Translation, Pinyin: e.Pinyin}
	return front, back
}

func buildPinyinToHanzi(e models.EnrichedVocabularyEntry, opts models.FlashcardOptions) (models.CardSide, models.CardSide) {
	front := models.CardSide{Content: e.Pinyin}
	back := models.CardSide{Content: e.Word}
	return front, back
}

func buildHanziToDefinition(e models.EnrichedVocabularyEntry, opts models.FlashcardOptions) (models.CardSide, models.CardSide) {
	front := models.CardSide{Content: e.Word}
	if opts.IncludePinyin {
		front.Pinyin = e.Pinyin
	}
	back := models.CardSide{Content: e.Translation}
	return front, back
}

func buildDefinitionToHanzi(e models.EnrichedVocabularyEntry, opts models.FlashcardOptions) (models.CardSide, models.CardSide) {
	front := models.CardSide{Content: e.Translation}
	back := models.CardSide{Content: e.Word, Pinyin: e.Pinyin}
	return front, back
}

func buildAudioToHanzi(e models.EnrichedVocabularyEntry, opts models.FlashcardOptions) (models.CardSide, models.CardSide) {
	front := models.CardSide{AudioID: models.VocabAudioID(e.Word)}
	back := models.CardSide{Content: e.Word, Pinyin: e.Pinyin}
	return front, back
}

func buildAudioToDefinition(e models.EnrichedVocabularyEntry, opts models.FlashcardOptions) (models.CardSide, models.CardSide) {
	front := models.CardSide{AudioID: models.VocabAudioID(e.Word)}
	back := models.CardSide{Content: e.Translation, Pinyin: e.Pinyin}
	return front, back
}
