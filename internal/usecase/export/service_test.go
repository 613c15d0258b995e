package export

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/johnquangdev/notulensi/internal/adapter/repository"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	ucerrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
)

type fakeRenderer struct {
	pages []Page
	err   error
}

func (r *fakeRenderer) Render(pages []Page) ([]byte, error) {
	r.pages = pages
	if r.err != nil {
		return nil, r.err
	}
	return []byte(fmt.Sprintf("%%PDF pages=%d", len(pages))), nil
}

type fakeArchiver struct {
	keys []string
	err  error
}

func (a *fakeArchiver) Archive(_ context.Context, key string, _ []byte, contentType string) error {
	if contentType != ContentType {
		return fmt.Errorf("unexpected content type %q", contentType)
	}
	a.keys = append(a.keys, key)
	return a.err
}

type fakeRecorder struct{ outcomes []string }

func (r *fakeRecorder) ObserveExport(locale, outcome string, _ int, _ time.Duration) {
	r.outcomes = append(r.outcomes, locale+":"+outcome)
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Q3 Product Strategy Review": "Notulensi_Q3_Product_Strategy_Review.pdf",
		"Project Kick-off: Titan":    "Notulensi_Project_Kick-off:_Titan.pdf",
		"Tabs\tand  spaces":          "Notulensi_Tabs_and__spaces.pdf",
		"":                           "Notulensi_.pdf",
	}
	for title, want := range tests {
		if got := FileName(title); got != want {
			t.Fatalf("FileName(%q): got %q want %q", title, got, want)
		}
	}
}

func newExportService(t *testing.T, r Renderer, opts Options) *Service {
	t.Helper()
	m := baseMeeting()
	m.Minutes = &entities.Minutes{Summary: "Done."}
	store := repository.NewMeetingRepository([]*entities.Meeting{m})
	svc, err := NewService(store, permission.NewGate(), fixedMeasurer{}, r, opts)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestExport(t *testing.T) {
	renderer := &fakeRenderer{}
	archiver := &fakeArchiver{}
	recorder := &fakeRecorder{}
	svc := newExportService(t, renderer, Options{Archiver: archiver, Recorder: recorder})

	actor := &entities.User{ID: "u3", Role: entities.RoleParticipant}
	res, err := svc.Export(context.Background(), actor, "m1")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.FileName != "Notulensi_Q3_Product_Strategy_Review.pdf" {
		t.Fatalf("file name: got %q", res.FileName)
	}
	if res.Pages != 1 || string(res.Content) != "%PDF pages=1" {
		t.Fatalf("result: got pages=%d content=%q", res.Pages, res.Content)
	}
	if renderer.pages[0].Footer == nil || renderer.pages[0].Footer.Lines[0] != "Halaman 1 dari 1" {
		t.Fatalf("renderer received unfinalized pages")
	}
	if len(archiver.keys) != 1 || archiver.keys[0] != "exports/m1/Notulensi_Q3_Product_Strategy_Review.pdf" {
		t.Fatalf("archive keys: got %v", archiver.keys)
	}
	if len(recorder.outcomes) != 1 || recorder.outcomes[0] != "id:success" {
		t.Fatalf("recorder: got %v", recorder.outcomes)
	}
}

func TestExportLocaleOverride(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := newExportService(t, renderer, Options{})

	admin := &entities.User{ID: "u10", Role: entities.RoleAdmin}
	if _, err := svc.ExportIn(context.Background(), admin, "m1", "en"); err != nil {
		t.Fatalf("ExportIn: %v", err)
	}
	if got := renderer.pages[0].Footer.Lines[0]; got != "Page 1 of 1" {
		t.Fatalf("footer: got %q", got)
	}
	if _, err := svc.ExportIn(context.Background(), admin, "m1", "de"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("unsupported locale: got %v", err)
	}
}

func TestExportErrors(t *testing.T) {
	ctx := context.Background()
	outsider := &entities.User{ID: "u20", Role: entities.RoleParticipant}
	admin := &entities.User{ID: "u10", Role: entities.RoleAdmin}

	svc := newExportService(t, &fakeRenderer{}, Options{})
	if _, err := svc.Export(ctx, admin, "missing"); !errors.Is(err, ucerrors.ErrMeetingNotFound) {
		t.Fatalf("missing meeting: got %v", err)
	}
	if _, err := svc.Export(ctx, outsider, "m1"); !errors.Is(err, ucerrors.ErrForbidden) {
		t.Fatalf("outsider: got %v", err)
	}
	if _, err := svc.Export(ctx, nil, "m1"); !errors.Is(err, ucerrors.ErrForbidden) {
		t.Fatalf("nil actor: got %v", err)
	}

	recorder := &fakeRecorder{}
	broken := newExportService(t, &fakeRenderer{err: errors.New("disk full")}, Options{Recorder: recorder})
	if _, err := broken.Export(ctx, admin, "m1"); !errors.Is(err, ucerrors.ErrRenderFailed) {
		t.Fatalf("render failure: got %v", err)
	}
	if len(recorder.outcomes) != 1 || recorder.outcomes[0] != "id:error" {
		t.Fatalf("recorder: got %v", recorder.outcomes)
	}
}

func TestExportArchiveFailureIsNotReturned(t *testing.T) {
	archiver := &fakeArchiver{err: errors.New("bucket gone")}
	svc := newExportService(t, &fakeRenderer{}, Options{Archiver: archiver})

	admin := &entities.User{ID: "u10", Role: entities.RoleAdmin}
	if _, err := svc.Export(context.Background(), admin, "m1"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(archiver.keys) != 1 {
		t.Fatalf("archive not attempted")
	}
}

func TestNewServiceRejectsLocale(t *testing.T) {
	_, err := NewService(nil, permission.NewGate(), fixedMeasurer{}, &fakeRenderer{}, Options{Locale: "xx"})
	if !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("got %v", err)
	}
}
