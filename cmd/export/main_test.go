package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputPath(t *testing.T) {
	got := outputPath("out", "Notulensi_Mobile_App_UI/UX_Review.pdf")
	want := filepath.Join("out", "Notulensi_Mobile_App_UI-UX_Review.pdf")
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--list"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Q3 Product Strategy Review") {
		t.Fatalf("listing: %s", out.String())
	}
}

func TestRunWritesPDF(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := run([]string{"--meeting", "m5", "--out", dir, "--locale", "en"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	body, err := os.ReadFile(filepath.Join(dir, "Notulensi_Mobile_App_UI-UX_Review.pdf"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatalf("not a PDF")
	}
}

func TestRunRequiresMeeting(t *testing.T) {
	if err := run(nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error without --meeting")
	}
	if err := run([]string{"-m", "m404"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown meeting")
	}
}
