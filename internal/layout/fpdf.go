package layout

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	coreFamily    = "Helvetica"
	unicodeFamily = "resume"
	grayLevel     = 130
)

// PDF is a Surface backed by gofpdf on A4 portrait pages in millimetres.
type PDF struct {
	pdf       *gofpdf.Fpdf
	family    string
	unicode   bool
	translate func(string) string
}

// NewPDF allocates a document. With fontPath set, a UTF-8 TrueType font is
// embedded and any script can be drawn; otherwise the core Helvetica font
// is used and text is limited to the cp1252 repertoire.
func NewPDF(fontPath string) (*PDF, error) {
	dir, file := filepath.Split(fontPath)
	pdf := gofpdf.New("P", "mm", "A4", dir)
	pdf.SetAutoPageBreak(false, 0)

	d := &PDF{pdf: pdf, family: coreFamily}
	if file != "" {
		pdf.AddUTF8Font(unicodeFamily, "", file)
		pdf.AddUTF8Font(unicodeFamily, "B", file)
		d.family = unicodeFamily
		d.unicode = true
	} else {
		d.translate = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return nil, &RenderError{Message: "failed to allocate document", Cause: err}
	}
	return d, nil
}

// Unicode reports whether text outside cp1252 can be drawn.
func (d *PDF) Unicode() bool { return d.unicode }

func (d *PDF) PageSize() (float64, float64) {
	return d.pdf.GetPageSize()
}

func (d *PDF) AddPage() { d.pdf.AddPage() }

func (d *PDF) SetStyle(s Style) {
	style := ""
	if s.Bold {
		style = "B"
	}
	d.pdf.SetFont(d.family, style, s.Size)
	if s.Gray {
		d.pdf.SetTextColor(grayLevel, grayLevel, grayLevel)
	} else {
		d.pdf.SetTextColor(0, 0, 0)
	}
}

func (d *PDF) Wrap(text string, width float64) []string {
	if d.unicode {
		return d.pdf.SplitText(text, width)
	}
	var lines []string
	for _, l := range d.pdf.SplitLines([]byte(d.translate(text)), width) {
		lines = append(lines, string(l))
	}
	return lines
}

func (d *PDF) Text(x, y float64, line string) {
	d.pdf.Text(x, y, strings.TrimRight(line, " "))
}

func (d *PDF) Rule(x1, y1, x2, y2 float64) {
	d.pdf.SetDrawColor(180, 180, 180)
	d.pdf.SetLineWidth(0.4)
	d.pdf.Line(x1, y1, x2, y2)
}

// Bytes serializes the document. Nothing is returned when any draw call failed.
func (d *PDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write document", Cause: err}
	}
	return buf.Bytes(), nil
}
