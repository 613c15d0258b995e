package export

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
)

// ContentType of rendered documents
const ContentType = "application/pdf"

// Renderer turns finalized pages into document bytes
type Renderer interface {
	Render(pages []Page) ([]byte, error)
}

// Archiver keeps a copy of an exported document
type Archiver interface {
	Archive(ctx context.Context, key string, content []byte, contentType string) error
}

// Recorder observes export outcomes
type Recorder interface {
	ObserveExport(locale, outcome string, pages int, elapsed time.Duration)
}

// Result is a rendered document
type Result struct {
	FileName string
	Content  []byte
	Pages    int
}

// Options configures the export service
type Options struct {
	Locale   string
	Archiver Archiver
	Recorder Recorder
	Logger   *zap.Logger
}

// Service exports meeting minutes as documents
type Service struct {
	meetings repositories.MeetingRepository
	gate     permission.Gate
	measure  TextMeasurer
	renderer Renderer
	locale   string
	archiver Archiver
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates a new export service
func NewService(meetings repositories.MeetingRepository, gate permission.Gate, measure TextMeasurer, renderer Renderer, opts Options) (*Service, error) {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}
	if !SupportedLocale(opts.Locale) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, opts.Locale)
	}
	return &Service{
		meetings: meetings,
		gate:     gate,
		measure:  measure,
		renderer: renderer,
		locale:   opts.Locale,
		archiver: opts.Archiver,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}, nil
}

// FileName returns the download name for a meeting's minutes
func FileName(title string) string {
	var b strings.Builder
	b.WriteString("Notulensi_")
	for _, r := range title {
		if unicode.IsSpace(r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	b.WriteString(".pdf")
	return b.String()
}

// Export renders a meeting the actor can view, in the default locale
func (s *Service) Export(ctx context.Context, actor *entities.User, meetingID string) (*Result, error) {
	return s.ExportIn(ctx, actor, meetingID, "")
}

// ExportIn renders a meeting in the given locale. Empty locale means the service default.
func (s *Service) ExportIn(ctx context.Context, actor *entities.User, meetingID, locale string) (*Result, error) {
	m, ok := s.meetings.FindByID(ctx, meetingID)
	if !ok {
		return nil, ucerrors.ErrMeetingNotFound
	}
	if !s.gate.CanView(actor, m) {
		return nil, ucerrors.ErrForbidden
	}

	res, err := s.Render(ctx, m, locale)
	if err != nil {
		return nil, err
	}
	s.archive(ctx, m.ID, res)
	return res, nil
}

// Render lays out, finalizes and renders one meeting snapshot
func (s *Service) Render(_ context.Context, m *entities.Meeting, locale string) (*Result, error) {
	if locale == "" {
		locale = s.locale
	}
	start := time.Now()

	labels, err := NewLabels(locale)
	if err != nil {
		return nil, err
	}
	engine := NewEngine(s.measure, labels)
	pages := engine.Finalize(engine.Layout(m))

	content, err := s.renderer.Render(pages)
	if err != nil {
		s.observe(locale, "error", 0, start)
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrRenderFailed, err)
	}
	s.observe(locale, "success", len(pages), start)

	if s.logger != nil {
		s.logger.Info("export.rendered",
			zap.String("meeting_id", m.ID),
			zap.String("locale", locale),
			zap.Int("pages", len(pages)),
			zap.Int("bytes", len(content)),
		)
	}

	return &Result{
		FileName: FileName(m.Title),
		Content:  content,
		Pages:    len(pages),
	}, nil
}

func (s *Service) observe(locale, outcome string, pages int, start time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveExport(locale, outcome, pages, time.Since(start))
	}
}

// ArchiveKey is the object key an export is archived under
func ArchiveKey(meetingID, fileName string) string {
	return "exports/" + meetingID + "/" + fileName
}

func (s *Service) archive(ctx context.Context, meetingID string, res *Result) {
	if s.archiver == nil {
		return
	}
	key := ArchiveKey(meetingID, res.FileName)
	if err := s.archiver.Archive(ctx, key, res.Content, ContentType); err != nil {
		if s.logger != nil {
			s.logger.Warn("export.archive_failed",
				zap.String("meeting_id", meetingID),
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return
	}
	if s.logger != nil {
		s.logger.Debug("export.archived", zap.String("key", key))
	}
}
