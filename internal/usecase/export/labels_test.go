package export

import (
	"errors"
	"testing"
)

func TestLabelsIndonesian(t *testing.T) {
	l, err := NewLabels("")
	if err != nil {
		t.Fatalf("NewLabels: %v", err)
	}
	if l.Locale() != "id" {
		t.Fatalf("default locale: got %q", l.Locale())
	}
	checks := []struct{ got, want string }{
		{l.Heading(), "Notulensi Rapat"},
		{l.Summary(), "Ringkasan Rapat"},
		{l.Participants(), "Peserta"},
		{l.ActionPlan(), "Rencana Aksi"},
		{l.Attachments(), "Lampiran"},
		{l.Columns()[2], "Batas Waktu"},
		{l.Footer(2, 5), "Halaman 2 dari 5"},
		{l.LongDate("2024-08-15"), "15 Agustus 2024"},
		{l.LongDate("2024-01-05"), "5 Januari 2024"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("got %q want %q", c.got, c.want)
		}
	}
}

func TestLabelsEnglish(t *testing.T) {
	l, err := NewLabels("en")
	if err != nil {
		t.Fatalf("NewLabels: %v", err)
	}
	if got := l.Footer(1, 3); got != "Page 1 of 3" {
		t.Fatalf("footer: got %q", got)
	}
	if got := l.LongDate("2024-08-15"); got != "August 15, 2024" {
		t.Fatalf("long date: got %q", got)
	}
	if got := l.Heading(); got != "Meeting Minutes" {
		t.Fatalf("heading: got %q", got)
	}
}

func TestLabelsUnparseableDateVerbatim(t *testing.T) {
	l, _ := NewLabels("id")
	if got := l.LongDate("next tuesday"); got != "next tuesday" {
		t.Fatalf("got %q", got)
	}
}

func TestLabelsUnsupportedLocale(t *testing.T) {
	if _, err := NewLabels("fr"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("got %v", err)
	}
}
