package segmenter

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mandarin-prep/backend/internal/models"
)

// sentenceTerminators end a sentence. The terminator stays attached to the
// preceding segment.
var sentenceTerminators = map[rune]bool{
	'。': true, '！': true, '？': true, '；': true, '…': true,
	'.': true, '!': true, '?': true, ';': true,
}

// closingMarks trail a terminator and stay attached to the same segment.
var closingMarks = map[rune]bool{
	'”': true, '’': true, '"': true, '\'': true,
	'）': true, ')': true, '】': true, ']': true, '」': true, '』': true,
}

// Segmenter splits lesson text into ordered, non-overlapping segments.
// Splitting is purely punctuation/whitespace-driven; there is no linguistic
// word-boundary detection.
type Segmenter struct{}

func New() *Segmenter {
	return &Segmenter{}
}

// Segment splits text under the given mode. Offsets are half-open rune
// positions into the NFC-normalized text. Unknown modes fall back to
// sentence splitting; empty or punctuation-only input yields zero segments.
func (s *Segmenter) Segment(text string, mode models.SegmentationMode) []models.TextSegment {
	runes := []rune(norm.NFC.String(text))

	var segs []models.TextSegment
	switch mode {
	case models.ModeParagraph:
		segs = splitParagraphs(runes)
	case models.ModeSection:
		segs = splitSections(runes)
	case models.ModeCharacter:
		segs = splitCharacters(runes)
	default:
		segs = splitSentences(runes)
	}

	for i := range segs {
		segs[i].ID = fmt.Sprintf("seg-%d", i+1)
	}
	return segs
}

func splitSentences(runes []rune) []models.TextSegment {
	var segs []models.TextSegment
	n := len(runes)
	start := 0

	for i := 0; i < n; i++ {
		if !sentenceTerminators[runes[i]] {
			continue
		}
		end := i + 1
		for end < n && (sentenceTerminators[runes[end]] || closingMarks[runes[end]]) {
			end++
		}
		if seg := contentSegment(runes, start, end, models.SegmentSentence); seg != nil {
			segs = append(segs, *seg)
		}
		start = end
		i = end - 1
	}

	if seg := contentSegment(runes, start, n, models.SegmentSentence); seg != nil {
		segs = append(segs, *seg)
	}
	return segs
}

// splitParagraphs splits on blank-line runs, tolerant of \r\n endings.
func splitParagraphs(runes []rune) []models.TextSegment {
	var segs []models.TextSegment
	n := len(runes)
	i := 0

	for i < n {
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		end := -1
		for j := i; j < n; j++ {
			if runes[j] != '\n' {
				continue
			}
			k := j + 1
			for k < n && (runes[k] == ' ' || runes[k] == '\t' || runes[k] == '\r') {
				k++
			}
			if k >= n || runes[k] == '\n' {
				end = j
				i = k
				break
			}
		}
		if end == -1 {
			end = n
			i = n
		}

		for end > start && unicode.IsSpace(runes[end-1]) {
			end--
		}
		if seg := contentSegment(runes, start, end, models.SegmentSentence); seg != nil {
			segs = append(segs, *seg)
		}
	}
	return segs
}

// splitSections splits on markdown-style heading lines. Each segment spans
// its heading through the lines before the next heading and records the
// header level; text before the first heading becomes a level-0 segment.
func splitSections(runes []rune) []models.TextSegment {
	var segs []models.TextSegment
	n := len(runes)

	secStart := -1
	secLevel := 0
	flush := func(end int) {
		if secStart == -1 {
			return
		}
		for end > secStart && unicode.IsSpace(runes[end-1]) {
			end--
		}
		if seg := contentSegment(runes, secStart, end, models.SegmentSentence); seg != nil {
			seg.HeaderLevel = secLevel
			segs = append(segs, *seg)
		}
		secStart = -1
	}

	i := 0
	for i < n {
		lineStart := i
		for i < n && runes[i] != '\n' {
			i++
		}
		lineEnd := i
		if i < n {
			i++
		}

		if level := headingLevel(runes[lineStart:lineEnd]); level > 0 {
			flush(lineStart)
			secStart = lineStart
			secLevel = level
		} else if secStart == -1 && !isBlank(runes[lineStart:lineEnd]) {
			secStart = lineStart
			secLevel = 0
		}
	}
	flush(n)
	return segs
}

// splitCharacters emits one segment per Han character.
func splitCharacters(runes []rune) []models.TextSegment {
	var segs []models.TextSegment
	for i, r := range runes {
		if !unicode.Is(unicode.Han, r) {
			continue
		}
		segs = append(segs, models.TextSegment{
			Text:        string(r),
			StartIndex:  i,
			EndIndex:    i + 1,
			SegmentType: models.SegmentVocabulary,
		})
	}
	return segs
}

// headingLevel returns 1-6 for a "#"-prefixed markdown heading line, 0
// otherwise.
func headingLevel(line []rune) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level == len(line) {
		return level
	}
	if line[level] == ' ' || line[level] == '\t' {
		return level
	}
	return 0
}

func isBlank(line []rune) bool {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// contentSegment builds a segment for [start,end) or returns nil when the
// span has no letter or digit content.
func contentSegment(runes []rune, start, end int, t models.SegmentType) *models.TextSegment {
	if start >= end || !hasContent(runes[start:end]) {
		return nil
	}
	return &models.TextSegment{
		Text:        string(runes[start:end]),
		StartIndex:  start,
		EndIndex:    end,
		SegmentType: t,
	}
}

func hasContent(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
