// Package pdf draws laid-out minutes pages with go-pdf/fpdf core fonts.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/johnquangdev/notulensi/internal/usecase/export"
)

const fontFamily = "Helvetica"

func newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(export.Margin, export.Margin, export.Margin)
	doc.SetAutoPageBreak(false, 0)
	return doc
}

func style(f export.Font) string {
	if f.Bold {
		return "B"
	}
	return ""
}

// Measurer reports string widths from the Helvetica core font metrics
type Measurer struct {
	mu  sync.Mutex
	doc *fpdf.Fpdf
	tr  func(string) string
}

// NewMeasurer creates a measurer
func NewMeasurer() *Measurer {
	doc := newDocument()
	return &Measurer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

// Width implements export.TextMeasurer
func (m *Measurer) Width(text string, font export.Font) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc.SetFont(fontFamily, style(font), font.Size)
	return m.doc.GetStringWidth(m.tr(text))
}

// Renderer writes pages to PDF bytes
type Renderer struct {
	// Now stamps the document creation date
	Now func() time.Time
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

// Render implements export.Renderer
func (r *Renderer) Render(pages []export.Page) ([]byte, error) {
	doc := newDocument()
	doc.SetCreator("notulensi", true)
	doc.SetCreationDate(r.Now())
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		doc.AddPage()
		for _, b := range page.Blocks {
			if err := drawBlock(doc, tr, b); err != nil {
				return nil, fmt.Errorf("page %d: %w", page.Number, err)
			}
		}
		if page.Footer != nil {
			if err := drawBlock(doc, tr, *page.Footer); err != nil {
				return nil, fmt.Errorf("page %d footer: %w", page.Number, err)
			}
		}
	}

	if doc.Err() {
		return nil, doc.Error()
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBlock(doc *fpdf.Fpdf, tr func(string) string, b export.Block) error {
	red, green, blue, err := parseHex(b.Color)
	if err != nil {
		return err
	}

	switch b.Kind {
	case export.BlockRule:
		doc.SetDrawColor(red, green, blue)
		doc.SetLineWidth(b.Height)
		doc.Line(b.X, b.Y, b.X+b.Width, b.Y)

	case export.BlockFill:
		doc.SetFillColor(red, green, blue)
		doc.Rect(b.X, b.Y, b.Width, b.Height, "F")

	case export.BlockTableHeader, export.BlockTableRow:
		doc.SetFont(fontFamily, style(b.Font), b.Font.Size)
		doc.SetTextColor(red, green, blue)
		baseline := export.TextBaseline(b)
		for _, c := range b.Cells {
			drawLines(doc, tr, c.X, baseline, b.LineHeight, c.Lines, export.AlignLeft)
		}
		if b.Kind == export.BlockTableRow {
			dr, dg, db, _ := parseHex(export.ColorDivider)
			doc.SetDrawColor(dr, dg, db)
			doc.SetLineWidth(0.2)
			doc.Line(b.X, b.Y+b.Height, b.X+b.Width, b.Y+b.Height)
		}

	case export.BlockText:
		doc.SetFont(fontFamily, style(b.Font), b.Font.Size)
		doc.SetTextColor(red, green, blue)
		drawLines(doc, tr, b.X, b.Y, b.LineHeight, b.Lines, b.Align)

	default:
		return fmt.Errorf("unknown block kind %q", b.Kind)
	}
	return nil
}

func drawLines(doc *fpdf.Fpdf, tr func(string) string, x, y, lineHeight float64, lines []string, align export.Align) {
	for i, line := range lines {
		text := tr(line)
		lx := x
		if align == export.AlignCenter {
			lx = x - doc.GetStringWidth(text)/2
		}
		doc.Text(lx, y+float64(i)*lineHeight, text)
	}
}

// parseHex converts "#RRGGBB" into components. Empty means black.
func parseHex(color string) (int, int, int, error) {
	if color == "" {
		return 0, 0, 0, nil
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", color)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", color, err)
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}
