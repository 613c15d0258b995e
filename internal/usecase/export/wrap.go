package export

import (
	"strings"
	"unicode"
)

// Wrap breaks text into lines no wider than width. Explicit newlines are kept,
// words are packed greedily and a word wider than the box is split by characters.
func (e *Engine) Wrap(text string, width float64, font Font) []string {
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lines = append(lines, e.wrapParagraph(para, width, font)...)
	}
	return lines
}

func (e *Engine) wrapParagraph(para string, width float64, font Font) []string {
	words := strings.FieldsFunc(para, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		if line != "" {
			candidate := line + " " + word
			if e.measure.Width(candidate, font) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = ""
		}
		if e.measure.Width(word, font) <= width {
			line = word
			continue
		}
		pieces := e.splitWord(word, width, font)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}
	return append(lines, line)
}

// splitWord cuts a word into pieces that each fit, keeping at least one rune per piece
func (e *Engine) splitWord(word string, width float64, font Font) []string {
	var pieces []string
	var b strings.Builder
	for _, r := range word {
		if b.Len() > 0 && e.measure.Width(b.String()+string(r), font) > width {
			pieces = append(pieces, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	return append(pieces, b.String())
}
