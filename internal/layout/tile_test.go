package layout

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileOffsets(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantScaled float64
		wantPages  int
	}{
		{"shorter than a page", 1200, 600, 105, 1},
		{"just over one page", 1200, 1800, 315, 2},
		{"exactly two pages", 1000, 2828, 593.88, 2},
		{"long page", 1200, 8000, 1400, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled, offsets := TileOffsets(tt.w, tt.h, a4Width, a4Height)
			assert.InDelta(t, tt.wantScaled, scaled, 0.01)
			assert.Len(t, offsets, tt.wantPages)
			for i, off := range offsets {
				assert.InDelta(t, -float64(i)*a4Height, off, 1e-6)
			}
		})
	}
}

func TestTileOffsets_Empty(t *testing.T) {
	_, offsets := TileOffsets(0, 100, a4Width, a4Height)
	assert.Empty(t, offsets)
}

func TestTilePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 400))
	for y := 0; y < 400; y++ {
		img.Set(10, y, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := TilePNG(buf.Bytes())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestTilePNG_NotAnImage(t *testing.T) {
	out, err := TilePNG([]byte("nope"))
	require.Error(t, err)
	assert.Nil(t, out)
}
