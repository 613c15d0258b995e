package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// fixedMeasurer gives every rune an advance of 0.2mm per point of font size
type fixedMeasurer struct{}

func (fixedMeasurer) Width(text string, font Font) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size * 0.2
}

func newTestEngine(t *testing.T, locale string) *Engine {
	t.Helper()
	labels, err := NewLabels(locale)
	if err != nil {
		t.Fatalf("NewLabels(%q): %v", locale, err)
	}
	return NewEngine(fixedMeasurer{}, labels)
}

func baseMeeting() *entities.Meeting {
	return &entities.Meeting{
		ID:        "m1",
		Title:     "Q3 Product Strategy Review",
		Date:      "2024-08-15",
		StartTime: "10:00",
		EndTime:   "12:00",
		Location:  "Conference Room A",
		Notulis:   entities.User{ID: "u2", Name: "Budi Setiawan"},
		Participants: []entities.User{
			{ID: "u1", Name: "Anisa Rahmawati"},
			{ID: "u3", Name: "Cahyo Nugroho"},
		},
		Status: entities.MeetingCompleted,
	}
}

func blocksIn(pages []Page, section Section) []Block {
	var out []Block
	for _, p := range pages {
		for _, b := range p.Blocks {
			if b.Section == section {
				out = append(out, b)
			}
		}
	}
	return out
}

func allText(pages []Page) string {
	var b strings.Builder
	for _, p := range pages {
		for _, blk := range p.Blocks {
			for _, l := range blk.Lines {
				b.WriteString(l)
				b.WriteByte('\n')
			}
			for _, c := range blk.Cells {
				for _, l := range c.Lines {
					b.WriteString(l)
					b.WriteByte('\n')
				}
			}
		}
	}
	return b.String()
}
