package enricher

import (
	"context"
	"fmt"
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// PronunciationProvider is the external collaborator that turns a word
// into a phonetic transcription. Implementations may suspend (network
// lookups); failures degrade a single entry, never the batch.
type PronunciationProvider interface {
	Pinyin(ctx context.Context, word string) (string, error)
}

// LocalProvider converts hanzi to tone-marked pinyin with an embedded
// dictionary. It never does I/O.
type LocalProvider struct {
	args gopinyin.Args
}

func NewLocalProvider() *LocalProvider {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	return &LocalProvider{args: args}
}

func (p *LocalProvider) Pinyin(ctx context.Context, word string) (string, error) {
	syllables := gopinyin.Pinyin(word, p.args)
	if len(syllables) == 0 {
		return "", fmt.Errorf("no pinyin reading for %q", word)
	}

	parts := make([]string, 0, len(syllables))
	for _, s := range syllables {
		if len(s) > 0 {
			parts = append(parts, s[0])
		}
	}
	return strings.Join(parts, " "), nil
}
