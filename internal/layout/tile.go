package layout

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

const (
	a4Width  = 210.0
	a4Height = 297.0
)

// TileOffsets returns the scaled image height and the vertical offset of the
// image on each page when an image of imgW×imgH pixels is stretched to
// pageW and cut into pageH-tall slices.
func TileOffsets(imgW, imgH int, pageW, pageH float64) (float64, []float64) {
	if imgW <= 0 || imgH <= 0 {
		return 0, nil
	}
	scaled := float64(imgH) * pageW / float64(imgW)
	offsets := []float64{0}
	for left := scaled - pageH; left > 0; left -= pageH {
		offsets = append(offsets, left-scaled)
	}
	return scaled, offsets
}

// TilePNG spreads a full-page PNG screenshot over as many A4 pages as needed.
func TilePNG(img []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, &RenderError{Message: "failed to read screenshot", Cause: err}
	}
	scaled, offsets := TileOffsets(cfg.Width, cfg.Height, a4Width, a4Height)
	if len(offsets) == 0 {
		return nil, &RenderError{Message: fmt.Sprintf("empty screenshot %dx%d", cfg.Width, cfg.Height)}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("page", opts, bytes.NewReader(img))
	for _, off := range offsets {
		pdf.AddPage()
		pdf.ImageOptions("page", 0, off, a4Width, scaled, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write document", Cause: err}
	}
	return buf.Bytes(), nil
}
