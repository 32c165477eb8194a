package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go5rae/portfolio/internal/content"
	"github.com/go5rae/portfolio/internal/i18n"
)

// fakeSurface wraps text at a fixed number of characters per unit of width.
type fakeSurface struct {
	w, h      float64
	charWidth float64
	pages     int
	texts     []drawnText
	rules     int
}

type drawnText struct {
	page int
	y    float64
	line string
}

func newFake() *fakeSurface {
	return &fakeSurface{w: 210, h: 297, charWidth: 2}
}

func (f *fakeSurface) PageSize() (float64, float64) { return f.w, f.h }
func (f *fakeSurface) AddPage()                     { f.pages++ }
func (f *fakeSurface) SetStyle(Style)               {}
func (f *fakeSurface) Rule(_, _, _, _ float64)      { f.rules++ }

func (f *fakeSurface) Text(_, y float64, line string) {
	f.texts = append(f.texts, drawnText{page: f.pages, y: y, line: line})
}

func (f *fakeSurface) Wrap(text string, width float64) []string {
	per := int(width / f.charWidth)
	r := []rune(text)
	var lines []string
	for len(r) > per {
		lines = append(lines, string(r[:per]))
		r = r[per:]
	}
	if len(r) > 0 {
		lines = append(lines, string(r))
	}
	return lines
}

func paragraphOfLines(n int) Block {
	// content width is 210-24 = 186 units, 93 chars per line
	return Block{Kind: Paragraph, Text: strings.Repeat("x", 93*n)}
}

func TestPlace_AdvancesCursorByHeightAndSpacing(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)

	p.Place(paragraphOfLines(3))

	assert.Equal(t, 1, p.Pages())
	assert.InDelta(t, 12+3*5+1, p.Cursor(), 1e-9)
	pl := p.Placements()
	require.Len(t, pl, 1)
	assert.InDelta(t, 12, pl[0].Top, 1e-9)
	assert.InDelta(t, 15, pl[0].Height, 1e-9)
}

func TestPlace_BreaksPageBeforeOverflow(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)

	// 12 + 50*5 + 1 = 263; a further 5-line block needs 25 > 285-263
	p.Place(paragraphOfLines(50))
	p.Place(paragraphOfLines(5))

	pl := p.Placements()
	require.Len(t, pl, 2)
	assert.Equal(t, 2, pl[1].Page)
	assert.InDelta(t, 12, pl[1].Top, 1e-9)
	assert.Equal(t, 2, f.pages)
}

func TestPlace_FitsExactlyAtLimit(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)

	// 12 + 54*5 = 282 <= 285
	p.Place(paragraphOfLines(54))
	assert.Equal(t, 1, p.Pages())
}

func TestPlace_OversizedBlockNotSplit(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)

	p.Place(paragraphOfLines(80))
	assert.Equal(t, 1, p.Pages(), "an oversized block lands on the fresh first page")

	p.Place(paragraphOfLines(1))
	assert.Equal(t, 2, p.Pages())

	p.Place(paragraphOfLines(80))
	pl := p.Placements()
	assert.Equal(t, 3, pl[2].Page)
	assert.InDelta(t, 12, pl[2].Top, 1e-9)
}

func TestPlace_TopOffsetsWithinPage(t *testing.T) {
	for _, sizes := range [][]int{
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{60, 1, 60, 1},
		{30, 30, 30, 30, 30},
		{0, 1, 0, 2},
	} {
		f := newFake()
		p := New(f, DefaultConfig)
		for _, n := range sizes {
			p.Place(paragraphOfLines(n))
		}
		for _, pl := range p.Placements() {
			assert.GreaterOrEqual(t, pl.Top, 0.0)
			assert.LessOrEqual(t, pl.Top, 297.0)
		}
		for _, d := range f.texts {
			assert.GreaterOrEqual(t, d.y, 0.0)
		}
	}
}

func TestPageCount_MonotonicInContentHeight(t *testing.T) {
	prev := 0
	for n := 1; n <= 40; n++ {
		f := newFake()
		p := New(f, DefaultConfig)
		for i := 0; i < n; i++ {
			p.Place(paragraphOfLines(4))
		}
		assert.GreaterOrEqual(t, p.Pages(), prev, "blocks=%d", n)
		prev = p.Pages()
	}
	assert.Greater(t, prev, 1)
}

func TestPlace_MoreThanOnePageWhenContentExceedsPage(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)
	for i := 0; i < 20; i++ {
		p.Place(paragraphOfLines(3))
	}
	// 20 blocks × 16 units > 273 usable units
	assert.Greater(t, p.Pages(), 1)
}

func TestPlace_Bullets(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)

	p.Place(Block{Kind: Bullets, Items: []string{"one", "two"}})

	require.Len(t, f.texts, 2)
	assert.Equal(t, "• one", f.texts[0].line)
	assert.InDelta(t, 17, f.texts[1].y, 1e-9)
	assert.InDelta(t, 12+10+1, p.Cursor(), 1e-9)
}

func TestPlace_LabelValueSkipsEmpty(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)

	p.Place(Block{Kind: LabelValue, Items: []string{"a@b.c", "", "github.com/x"}})

	require.Len(t, f.texts, 1)
	assert.Equal(t, "a@b.c  |  github.com/x", f.texts[0].line)
}

func TestPlace_HeadingReservesTwoLinesAndDrawsRule(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)

	// leaves 285-281 = 4 units, less than the 10 a heading reserves
	p.Gap(269)
	p.Place(Block{Kind: Heading, Text: "Education"})

	assert.Equal(t, 2, p.Pages())
	assert.Equal(t, 1, f.rules)
	assert.InDelta(t, 12+5+2.5, p.Cursor(), 1e-9)
}

func TestPlace_FooterPinnedToBottomMargin(t *testing.T) {
	f := newFake()
	p := New(f, DefaultConfig)
	p.Place(paragraphOfLines(2))
	before := p.Cursor()

	p.Place(Block{Kind: Footer, Text: "note"})

	last := f.texts[len(f.texts)-1]
	assert.Equal(t, "note", last.line)
	assert.InDelta(t, 285, last.y, 1e-9)
	assert.InDelta(t, before, p.Cursor(), 1e-9)
}

func TestWriteResume_FakeSurface(t *testing.T) {
	site, err := content.Load()
	require.NoError(t, err)

	for _, lang := range i18n.Supported {
		f := newFake()
		p := New(f, DefaultConfig)
		WriteResume(p, site, lang)

		require.NotEmpty(t, f.texts)
		assert.GreaterOrEqual(t, p.Pages(), 1)
		assert.Equal(t, Footer, p.Placements()[len(p.Placements())-1].Kind)
	}
}

func TestRenderResume_PDF(t *testing.T) {
	site, err := content.Load()
	require.NoError(t, err)

	out, err := RenderResume(site, i18n.KO, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestRenderResume_MissingFontIsTerminal(t *testing.T) {
	site, err := content.Load()
	require.NoError(t, err)

	out, err := RenderResume(site, i18n.KO, "/nonexistent/font.ttf")
	require.Error(t, err)
	assert.Nil(t, out)

	var rerr *RenderError
	assert.ErrorAs(t, err, &rerr)
}

func TestFileNames(t *testing.T) {
	prof := content.Profile{Name: "용다인", NameEn: "Yong Dain"}

	assert.Equal(t, "이력서_용다인.pdf", ResumeFileName(prof, i18n.KO))
	assert.Equal(t, "YongDain_Resume.pdf", ResumeFileName(prof, i18n.EN))
	assert.Equal(t, "포트폴리오_용다인.pdf", PortfolioFileName(prof, i18n.KO))
	assert.Equal(t, "Yong_Dain_Portfolio.pdf", PortfolioFileName(prof, i18n.EN))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "heading", Heading.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
