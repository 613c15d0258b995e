package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// DefaultLocale is used when no locale is requested
const DefaultLocale = "id"

var locales = map[string]language.Tag{
	"id": language.Indonesian,
	"en": language.English,
}

// Message keys
const (
	keyHeading      = "export.heading"
	keyDate         = "export.detail.date"
	keyTime         = "export.detail.time"
	keyLocation     = "export.detail.location"
	keyNotulis      = "export.detail.notulis"
	keySummary      = "export.section.summary"
	keyParticipants = "export.section.participants"
	keyActionPlan   = "export.section.action_plan"
	keyAttachments  = "export.section.attachments"
	keyColTask      = "export.column.task"
	keyColPIC       = "export.column.pic"
	keyColDeadline  = "export.column.deadline"
	keyColStatus    = "export.column.status"
	keyFooter       = "export.footer"
	keyLongDate     = "export.long_date"
)

var messages = []struct {
	key    string
	id, en string
}{
	{keyHeading, "Notulensi Rapat", "Meeting Minutes"},
	{keyDate, "Tanggal", "Date"},
	{keyTime, "Waktu", "Time"},
	{keyLocation, "Lokasi", "Location"},
	{keyNotulis, "Notulis", "Minute Taker"},
	{keySummary, "Ringkasan Rapat", "Meeting Summary"},
	{keyParticipants, "Peserta", "Participants"},
	{keyActionPlan, "Rencana Aksi", "Action Plan"},
	{keyAttachments, "Lampiran", "Attachments"},
	{keyColTask, "Tugas", "Task"},
	{keyColPIC, "PIC", "PIC"},
	{keyColDeadline, "Batas Waktu", "Deadline"},
	{keyColStatus, "Status", "Status"},
	{keyFooter, "Halaman %d dari %d", "Page %d of %d"},
	{keyLongDate, "{day} {month} {year}", "{month} {day}, {year}"},
	{"month.1", "Januari", "January"},
	{"month.2", "Februari", "February"},
	{"month.3", "Maret", "March"},
	{"month.4", "April", "April"},
	{"month.5", "Mei", "May"},
	{"month.6", "Juni", "June"},
	{"month.7", "Juli", "July"},
	{"month.8", "Agustus", "August"},
	{"month.9", "September", "September"},
	{"month.10", "Oktober", "October"},
	{"month.11", "November", "November"},
	{"month.12", "Desember", "December"},
}

var exportCatalog = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Indonesian))
	for _, m := range messages {
		if err := b.SetString(language.Indonesian, m.key, m.id); err != nil {
			panic(fmt.Sprintf("export catalog: %s: %v", m.key, err))
		}
		if err := b.SetString(language.English, m.key, m.en); err != nil {
			panic(fmt.Sprintf("export catalog: %s: %v", m.key, err))
		}
	}
	return b
}

// Labels renders the document's fixed strings in one locale
type Labels struct {
	locale  string
	printer *message.Printer
}

// NewLabels returns labels for "id" or "en". Empty means DefaultLocale.
func NewLabels(locale string) (*Labels, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, ok := locales[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return &Labels{
		locale:  locale,
		printer: message.NewPrinter(tag, message.Catalog(exportCatalog)),
	}, nil
}

// SupportedLocale reports whether NewLabels accepts the locale
func SupportedLocale(locale string) bool {
	_, ok := locales[locale]
	return ok
}

// Locale returns the locale code the labels were built for
func (l *Labels) Locale() string { return l.locale }

func (l *Labels) text(key string) string { return l.printer.Sprintf(message.Key(key, key)) }

func (l *Labels) Heading() string      { return l.text(keyHeading) }
func (l *Labels) Date() string         { return l.text(keyDate) }
func (l *Labels) Time() string         { return l.text(keyTime) }
func (l *Labels) Location() string     { return l.text(keyLocation) }
func (l *Labels) Notulis() string      { return l.text(keyNotulis) }
func (l *Labels) Summary() string      { return l.text(keySummary) }
func (l *Labels) Participants() string { return l.text(keyParticipants) }
func (l *Labels) ActionPlan() string   { return l.text(keyActionPlan) }
func (l *Labels) Attachments() string  { return l.text(keyAttachments) }

// Columns returns the action plan table headings in column order
func (l *Labels) Columns() [4]string {
	return [4]string{l.text(keyColTask), l.text(keyColPIC), l.text(keyColDeadline), l.text(keyColStatus)}
}

// Footer renders the page counter
func (l *Labels) Footer(page, total int) string {
	return l.printer.Sprintf(message.Key(keyFooter, "%d / %d"), page, total)
}

// LongDate renders a YYYY-MM-DD date in long form. Anything else is returned verbatim.
func (l *Labels) LongDate(date string) string {
	t, err := time.Parse(entities.DateLayout, date)
	if err != nil {
		return date
	}
	r := strings.NewReplacer(
		"{day}", strconv.Itoa(t.Day()),
		"{month}", l.text("month."+strconv.Itoa(int(t.Month()))),
		"{year}", strconv.Itoa(t.Year()),
	)
	return r.Replace(l.text(keyLongDate))
}
