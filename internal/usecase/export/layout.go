package export

import (
	"fmt"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// Page geometry in millimetres (A4 portrait)
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	Margin       = 15.0
	ContentWidth = PageWidth - 2*Margin
	BottomLimit  = PageHeight - Margin
	FooterY      = PageHeight - 10
)

// Vertical rhythm
const (
	headingAdvance      = 10.0
	titleLineHeight     = 5.0
	titleGap            = 4.0
	ruleWidth           = 0.8
	ruleAdvance         = 10.0
	detailColumnOffset  = 95.0
	detailValueOffset   = 25.0
	detailRowHeight     = 7.0
	detailGap           = 8.0
	sectionReserve      = 15.0
	sectionAdvance      = 8.0
	summaryLineHeight   = 5 * 1.5
	sectionGap          = 5.0
	listLineHeight      = 6.0
	tableHeaderReserve  = 10.0
	tableHeaderHeight   = 8.0
	tableHeaderBaseline = 5.5
	tableCellPadding    = 2.0
	tableLineHeight     = 5.0
	tableRowPadding     = 4.0
	tableTextBaseline   = 5.0
)

// Colours
const (
	ColorHeading    = "#111827"
	ColorTitle      = "#374151"
	ColorPrimary    = "#3B82F6"
	ColorLabel      = "#6B7280"
	ColorValue      = "#1F2937"
	ColorBody       = "#374151"
	ColorHeaderFill = "#E6E6E6"
	ColorDivider    = "#DCDCDC"
	ColorFooter     = "#969696"
)

// Font sizes in points
var (
	fontHeading = Font{Size: 22, Bold: true}
	fontTitle   = Font{Size: 14}
	fontSection = Font{Size: 14, Bold: true}
	fontLabel   = Font{Size: 10, Bold: true}
	fontBody    = Font{Size: 10}
	fontHeader  = Font{Size: 10, Bold: true}
	fontCell    = Font{Size: 9}
	fontFooter  = Font{Size: 8}
)

// tableRatios are the action plan column proportions: task, PIC, deadline, status
var tableRatios = [4]float64{80, 30, 35, 35}

// Section tags which part of the document a block belongs to
type Section string

const (
	SectionTitle        Section = "title"
	SectionMetadata     Section = "metadata"
	SectionSummary      Section = "summary"
	SectionParticipants Section = "participants"
	SectionActions      Section = "actions"
	SectionAttachments  Section = "attachments"
	SectionFooter       Section = "footer"
)

// BlockKind is how a block is drawn
type BlockKind string

const (
	BlockText        BlockKind = "text"
	BlockRule        BlockKind = "rule"
	BlockFill        BlockKind = "fill"
	BlockTableHeader BlockKind = "table_header"
	BlockTableRow    BlockKind = "table_row"
)

// Align is the horizontal anchor of a text block
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Font selects size in points and weight
type Font struct {
	Size float64
	Bold bool
}

// Cell is one column of a table row. X is where the text starts.
type Cell struct {
	X     float64
	Width float64
	Lines []string
}

// Block is one positioned element. For text, Y is the baseline of the first line.
// For table rows Y is the top edge and the divider is drawn at Y+Height.
type Block struct {
	Kind       BlockKind
	Section    Section
	X, Y       float64
	Width      float64
	Height     float64
	Font       Font
	Color      string
	LineHeight float64
	Lines      []string
	Cells      []Cell
	Row        int
	Align      Align
}

// Page is one laid-out page. Footer is nil until Finalize.
type Page struct {
	Number int
	Blocks []Block
	Footer *Block
}

// TextMeasurer reports the rendered width of text in millimetres
type TextMeasurer interface {
	Width(text string, font Font) float64
}

// Engine lays a meeting out onto pages
type Engine struct {
	measure TextMeasurer
	labels  *Labels
}

// NewEngine creates a layout engine
func NewEngine(measure TextMeasurer, labels *Labels) *Engine {
	return &Engine{measure: measure, labels: labels}
}

// Labels returns the engine's labels
func (e *Engine) Labels() *Labels { return e.labels }

type cursor struct {
	pages []Page
	y     float64
}

func newCursor() *cursor {
	return &cursor{pages: []Page{{Number: 1}}, y: Margin}
}

func (c *cursor) page() *Page { return &c.pages[len(c.pages)-1] }

// reserve starts a new page when h more millimetres would cross the bottom margin.
// A block taller than a whole page stays on the current page if nothing is on it yet.
func (c *cursor) reserve(h float64) {
	if c.y+h > BottomLimit && len(c.page().Blocks) > 0 {
		c.pages = append(c.pages, Page{Number: len(c.pages) + 1})
		c.y = Margin
	}
}

func (c *cursor) add(b Block) {
	p := c.page()
	p.Blocks = append(p.Blocks, b)
}

// Layout positions every block of the meeting. Footers are left for Finalize.
func (e *Engine) Layout(m *entities.Meeting) []Page {
	c := newCursor()

	e.layoutHeader(c, m)
	e.layoutDetails(c, m)

	if m.Minutes != nil && m.Minutes.Summary != "" {
		e.sectionTitle(c, SectionSummary, e.labels.Summary())
		lines := e.Wrap(m.Minutes.Summary, ContentWidth, fontBody)
		e.paragraph(c, SectionSummary, lines, fontBody, ColorBody, summaryLineHeight)
		c.y += sectionGap
	}

	e.sectionTitle(c, SectionParticipants, e.labels.Participants())
	for i, p := range m.Participants {
		e.listLine(c, SectionParticipants, i+1, p.Name)
	}
	c.y += sectionGap

	if m.Minutes != nil && len(m.Minutes.ActionItems) > 0 {
		e.layoutActionPlan(c, m.Minutes.ActionItems)
	}

	if m.Minutes != nil && len(m.Minutes.Attachments) > 0 {
		e.sectionTitle(c, SectionAttachments, e.labels.Attachments())
		for i, a := range m.Minutes.Attachments {
			e.listLine(c, SectionAttachments, i+1, a.Name)
		}
	}

	return c.pages
}

// Finalize writes "page i of N" on every page
func (e *Engine) Finalize(pages []Page) []Page {
	total := len(pages)
	for i := range pages {
		pages[i].Footer = &Block{
			Kind:    BlockText,
			Section: SectionFooter,
			X:       PageWidth / 2,
			Y:       FooterY,
			Font:    fontFooter,
			Color:   ColorFooter,
			Lines:   []string{e.labels.Footer(i+1, total)},
			Align:   AlignCenter,
		}
	}
	return pages
}

func (e *Engine) layoutHeader(c *cursor, m *entities.Meeting) {
	c.add(Block{
		Kind:    BlockText,
		Section: SectionTitle,
		X:       Margin,
		Y:       c.y,
		Font:    fontHeading,
		Color:   ColorHeading,
		Lines:   []string{e.labels.Heading()},
		Align:   AlignLeft,
	})
	c.y += headingAdvance

	lines := e.Wrap(m.Title, ContentWidth, fontTitle)
	e.paragraph(c, SectionTitle, lines, fontTitle, ColorTitle, titleLineHeight)
	c.y += titleGap

	c.add(Block{
		Kind:    BlockRule,
		Section: SectionTitle,
		X:       Margin,
		Y:       c.y,
		Width:   ContentWidth,
		Height:  ruleWidth,
		Color:   ColorPrimary,
	})
	c.y += ruleAdvance
}

func (e *Engine) layoutDetails(c *cursor, m *entities.Meeting) {
	details := []struct{ label, value string }{
		{e.labels.Date(), e.labels.LongDate(m.Date)},
		{e.labels.Time(), fmt.Sprintf("%s - %s", m.StartTime, m.EndTime)},
		{e.labels.Location(), m.Location},
		{e.labels.Notulis(), m.Notulis.Name},
	}

	top := c.y
	for i, d := range details {
		x := Margin + float64(i%2)*detailColumnOffset
		y := top + float64(i/2)*detailRowHeight
		c.add(Block{
			Kind:    BlockText,
			Section: SectionMetadata,
			X:       x,
			Y:       y,
			Font:    fontLabel,
			Color:   ColorLabel,
			Lines:   []string{d.label + ":"},
			Align:   AlignLeft,
		})
		c.add(Block{
			Kind:    BlockText,
			Section: SectionMetadata,
			X:       x + detailValueOffset,
			Y:       y,
			Font:    fontBody,
			Color:   ColorValue,
			Lines:   []string{d.value},
			Align:   AlignLeft,
		})
	}
	rows := (len(details) + 1) / 2
	c.y += float64(rows)*detailRowHeight + detailGap
}

func (e *Engine) sectionTitle(c *cursor, section Section, title string) {
	c.reserve(sectionReserve)
	c.add(Block{
		Kind:    BlockText,
		Section: section,
		X:       Margin,
		Y:       c.y,
		Font:    fontSection,
		Color:   ColorHeading,
		Lines:   []string{title},
		Align:   AlignLeft,
	})
	c.y += sectionAdvance
}

// paragraph places lines one by one, breaking the page between lines.
// Consecutive lines on the same page share a block.
func (e *Engine) paragraph(c *cursor, section Section, lines []string, font Font, color string, lineHeight float64) {
	var current *Block
	page := -1
	for _, line := range lines {
		c.reserve(lineHeight)
		if current == nil || page != len(c.pages) {
			c.add(Block{
				Kind:       BlockText,
				Section:    section,
				X:          Margin,
				Y:          c.y,
				Width:      ContentWidth,
				Font:       font,
				Color:      color,
				LineHeight: lineHeight,
				Align:      AlignLeft,
			})
			p := c.page()
			current = &p.Blocks[len(p.Blocks)-1]
			page = len(c.pages)
		}
		current.Lines = append(current.Lines, line)
		current.Height += lineHeight
		c.y += lineHeight
	}
}

func (e *Engine) listLine(c *cursor, section Section, n int, text string) {
	c.reserve(listLineHeight)
	c.add(Block{
		Kind:       BlockText,
		Section:    section,
		X:          Margin,
		Y:          c.y,
		Width:      ContentWidth,
		Height:     listLineHeight,
		Font:       fontBody,
		Color:      ColorBody,
		LineHeight: listLineHeight,
		Lines:      []string{fmt.Sprintf("%d. %s", n, text)},
		Row:        n,
		Align:      AlignLeft,
	})
	c.y += listLineHeight
}

// columns returns the x offset and width of each action plan column
func columns() (xs, widths [4]float64) {
	var sum float64
	for _, r := range tableRatios {
		sum += r
	}
	x := Margin
	for i, r := range tableRatios {
		widths[i] = ContentWidth * r / sum
		xs[i] = x
		x += widths[i]
	}
	return xs, widths
}

func (e *Engine) layoutActionPlan(c *cursor, items []entities.ActionItem) {
	e.sectionTitle(c, SectionActions, e.labels.ActionPlan())
	xs, widths := columns()

	c.reserve(tableHeaderReserve)
	c.add(Block{
		Kind:    BlockFill,
		Section: SectionActions,
		X:       Margin,
		Y:       c.y,
		Width:   ContentWidth,
		Height:  tableHeaderHeight,
		Color:   ColorHeaderFill,
	})
	headings := e.labels.Columns()
	header := Block{
		Kind:       BlockTableHeader,
		Section:    SectionActions,
		X:          Margin,
		Y:          c.y,
		Width:      ContentWidth,
		Height:     tableHeaderHeight,
		Font:       fontHeader,
		Color:      ColorHeading,
		LineHeight: tableLineHeight,
	}
	for i := range headings {
		header.Cells = append(header.Cells, Cell{
			X:     xs[i] + tableCellPadding,
			Width: widths[i] - 2*tableCellPadding,
			Lines: []string{headings[i]},
		})
	}
	c.add(header)
	c.y += tableHeaderHeight

	for n, item := range items {
		values := [4]string{item.Task, item.PIC.Name, item.Deadline, string(item.Status)}
		row := Block{
			Kind:       BlockTableRow,
			Section:    SectionActions,
			X:          Margin,
			Width:      ContentWidth,
			Font:       fontCell,
			Color:      ColorBody,
			LineHeight: tableLineHeight,
			Row:        n + 1,
		}
		maxLines := 1
		for i, v := range values {
			lines := e.Wrap(v, widths[i]-2*tableCellPadding, fontCell)
			if len(lines) > maxLines {
				maxLines = len(lines)
			}
			row.Cells = append(row.Cells, Cell{
				X:     xs[i] + tableCellPadding,
				Width: widths[i] - 2*tableCellPadding,
				Lines: lines,
			})
		}
		row.Height = float64(maxLines)*tableLineHeight + tableRowPadding

		c.reserve(row.Height)
		row.Y = c.y
		c.add(row)
		c.y += row.Height
	}
	c.y += sectionGap
}

// TextBaseline returns the baseline of a table row's first line
func TextBaseline(b Block) float64 {
	switch b.Kind {
	case BlockTableHeader:
		return b.Y + tableHeaderBaseline
	case BlockTableRow:
		return b.Y + tableTextBaseline
	default:
		return b.Y
	}
}
