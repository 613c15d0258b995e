package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/usecase/export"
)

func TestMeasurer(t *testing.T) {
	m := NewMeasurer()
	font := export.Font{Size: 10}

	if got := m.Width("", font); got != 0 {
		t.Fatalf("empty width: got %v", got)
	}
	short := m.Width("Peserta", font)
	long := m.Width("Peserta rapat", font)
	if !(short > 0 && long > short) {
		t.Fatalf("widths not increasing: %v %v", short, long)
	}
	if bold := m.Width("Peserta", export.Font{Size: 10, Bold: true}); bold <= short {
		t.Fatalf("bold should be wider: %v <= %v", bold, short)
	}
	if big := m.Width("Peserta", export.Font{Size: 20}); big <= short*1.9 {
		t.Fatalf("width should scale with size: %v vs %v", big, short)
	}
}

func TestRenderMeeting(t *testing.T) {
	labels, err := export.NewLabels("id")
	if err != nil {
		t.Fatalf("NewLabels: %v", err)
	}
	engine := export.NewEngine(NewMeasurer(), labels)

	m := &entities.Meeting{
		ID:        "m1",
		Title:     "Rapat Koordinasi Triwulan – Évaluasi",
		Date:      "2024-08-15",
		StartTime: "10:00",
		EndTime:   "12:00",
		Location:  "Ruang Rapat A",
		Notulis:   entities.User{ID: "u2", Name: "Budi Setiawan"},
		Participants: []entities.User{
			{ID: "u1", Name: "Anisa Rahmawati"},
		},
		Minutes: &entities.Minutes{
			Summary: strings.Repeat("Pembahasan anggaran dan jadwal peluncuran. ", 120),
			ActionItems: []entities.ActionItem{
				{ID: "a1", Task: "Finalize Q4 marketing budget", PIC: entities.User{Name: "Anisa Rahmawati"}, Deadline: "2024-08-22", Status: entities.ActionItemDone},
			},
			Attachments: []entities.Attachment{{ID: "att1", Name: "Q3_Sales_Report.pdf"}},
		},
	}
	pages := engine.Finalize(engine.Layout(m))

	r := NewRenderer()
	r.Now = func() time.Time { return time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC) }
	out, err := r.Render(pages)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:8])
	}
	if len(pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(pages))
	}
}

func TestRenderRejectsBadColour(t *testing.T) {
	pages := []export.Page{{Number: 1, Blocks: []export.Block{{Kind: export.BlockRule, Color: "blue"}}}}
	if _, err := NewRenderer().Render(pages); err == nil {
		t.Fatalf("expected colour error")
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, err := parseHex("#3B82F6")
	if err != nil || r != 0x3B || g != 0x82 || b != 0xF6 {
		t.Fatalf("got %d %d %d %v", r, g, b, err)
	}
}
