// Package layout places typed text blocks onto fixed-size pages and renders
// the result as a PDF document.
package layout

import "strings"

// Style selects the font used for a block.
type Style struct {
	Bold bool
	Size float64
	Gray bool
}

// Surface is a drawing target with a fixed page size.
// Wrap returns lines in the form Text expects; callers never pass unwrapped text to Text.
type Surface interface {
	PageSize() (width, height float64)
	AddPage()
	SetStyle(s Style)
	Wrap(text string, width float64) []string
	Text(x, y float64, line string)
	Rule(x1, y1, x2, y2 float64)
}

// Kind is the type of a text block.
type Kind int

const (
	Title Kind = iota
	Subtitle
	Heading
	Caption
	Paragraph
	Bullets
	LabelValue
	Footer
)

var kindNames = [...]string{"title", "subtitle", "heading", "caption", "paragraph", "bullets", "label-value", "footer"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Block is one unit of content handed to the paginator.
type Block struct {
	Kind   Kind
	Text   string
	Items  []string
	Indent float64
}

// Placement records where a block (or a bullet item) was put.
type Placement struct {
	Kind   Kind
	Page   int
	Top    float64
	Height float64
}

type blockStyle struct {
	style   Style
	spacing float64
	// reserve is the minimum free height required before placing, in lines.
	reserve float64
}

var styles = map[Kind]blockStyle{
	Title:      {style: Style{Bold: true, Size: 22}, spacing: 2},
	Subtitle:   {style: Style{Size: 11}, spacing: 2},
	Heading:    {style: Style{Bold: true, Size: 13}, reserve: 2},
	Caption:    {style: Style{Bold: true, Size: 11}, reserve: 2},
	Paragraph:  {style: Style{Size: 10}, spacing: 1},
	Bullets:    {style: Style{Size: 10}},
	LabelValue: {style: Style{Size: 10}, spacing: 2},
	Footer:     {style: Style{Size: 8, Gray: true}, reserve: 2},
}

const (
	bulletPrefix   = "• "
	labelSeparator = "  |  "
	afterList      = 1
)

// Config sets the page geometry in surface units.
type Config struct {
	Margin     float64
	LineHeight float64
}

// DefaultConfig matches an A4 page in millimetres.
var DefaultConfig = Config{Margin: 12, LineHeight: 5}

// Paginator tracks a vertical cursor over the pages of a Surface.
type Paginator struct {
	s          Surface
	cfg        Config
	pageWidth  float64
	pageHeight float64
	y          float64
	page       int
	placements []Placement
}

// New starts a paginator on the first page of s.
func New(s Surface, cfg Config) *Paginator {
	w, h := s.PageSize()
	s.AddPage()
	return &Paginator{
		s:          s,
		cfg:        cfg,
		pageWidth:  w,
		pageHeight: h,
		y:          cfg.Margin,
		page:       1,
	}
}

// Pages returns the number of pages emitted so far.
func (p *Paginator) Pages() int { return p.page }

// Cursor returns the current vertical offset.
func (p *Paginator) Cursor() float64 { return p.y }

// Placements returns every placement in order.
func (p *Paginator) Placements() []Placement {
	return append([]Placement(nil), p.placements...)
}

func (p *Paginator) contentWidth(indent float64) float64 {
	return p.pageWidth - 2*p.cfg.Margin - indent
}

// ensure starts a new page when need does not fit below the cursor.
// A fresh page is never abandoned, so an oversized block lands on it unsplit.
func (p *Paginator) ensure(need float64) {
	if p.y+need <= p.pageHeight-p.cfg.Margin {
		return
	}
	if p.y <= p.cfg.Margin {
		return
	}
	p.s.AddPage()
	p.page++
	p.y = p.cfg.Margin
}

// Gap moves the cursor down without placing anything.
func (p *Paginator) Gap(d float64) { p.y += d }

// Place lays out one block.
func (p *Paginator) Place(b Block) {
	bs := styles[b.Kind]
	p.s.SetStyle(bs.style)

	switch b.Kind {
	case Bullets:
		for _, item := range b.Items {
			p.placeLines(b.Kind, p.s.Wrap(bulletPrefix+item, p.contentWidth(b.Indent)), b.Indent, bs)
		}
		p.y += afterList
	case LabelValue:
		var parts []string
		for _, it := range b.Items {
			if it != "" {
				parts = append(parts, it)
			}
		}
		p.placeLines(b.Kind, p.s.Wrap(strings.Join(parts, labelSeparator), p.contentWidth(b.Indent)), b.Indent, bs)
	case Heading:
		p.placeLines(b.Kind, p.s.Wrap(b.Text, p.contentWidth(b.Indent)), b.Indent, bs)
		p.s.Rule(p.cfg.Margin, p.y, p.pageWidth-p.cfg.Margin, p.y)
		p.y += p.cfg.LineHeight / 2
	case Footer:
		p.placeFooter(b, bs)
	default:
		p.placeLines(b.Kind, p.s.Wrap(b.Text, p.contentWidth(b.Indent)), b.Indent, bs)
	}
}

func (p *Paginator) placeLines(kind Kind, lines []string, indent float64, bs blockStyle) {
	if len(lines) == 0 {
		return
	}
	h := float64(len(lines)) * p.cfg.LineHeight
	p.ensure(max(h, bs.reserve*p.cfg.LineHeight))

	top := p.y
	for i, line := range lines {
		p.s.Text(p.cfg.Margin+indent, top+float64(i)*p.cfg.LineHeight, line)
	}
	p.placements = append(p.placements, Placement{Kind: kind, Page: p.page, Top: top, Height: h})
	p.y += h + bs.spacing
}

// placeFooter pins the note to the bottom margin of the current page.
func (p *Paginator) placeFooter(b Block, bs blockStyle) {
	p.ensure(bs.reserve * p.cfg.LineHeight)
	lines := p.s.Wrap(b.Text, p.contentWidth(b.Indent))
	if len(lines) == 0 {
		return
	}
	top := p.pageHeight - p.cfg.Margin - float64(len(lines)-1)*p.cfg.LineHeight
	for i, line := range lines {
		p.s.Text(p.cfg.Margin+b.Indent, top+float64(i)*p.cfg.LineHeight, line)
	}
	p.placements = append(p.placements, Placement{
		Kind:   Footer,
		Page:   p.page,
		Top:    top,
		Height: float64(len(lines)) * p.cfg.LineHeight,
	})
}
