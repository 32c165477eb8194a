package capture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShooter struct {
	img    []byte
	err    error
	width  int
	url    string
	closed bool
	wait   bool
}

func (f *fakeShooter) Screenshot(ctx context.Context, pageURL string, width int) ([]byte, error) {
	f.url, f.width = pageURL, width
	if f.wait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.img, f.err
}

func (f *fakeShooter) Close() error {
	f.closed = true
	return nil
}

func tallPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPDF_TilesScreenshot(t *testing.T) {
	shooter := &fakeShooter{img: tallPNG(t, 120, 600)}
	c := New(shooter, 1200, time.Second)

	doc, err := c.PDF(context.Background(), "http://localhost:8080/?lang=en")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
	assert.Equal(t, 1200, shooter.width)
	assert.Equal(t, "http://localhost:8080/?lang=en", shooter.url)

	require.NoError(t, c.Close())
	assert.True(t, shooter.closed)
}

func TestPDF_Errors(t *testing.T) {
	t.Run("invalid url", func(t *testing.T) {
		_, err := New(&fakeShooter{}, 1200, 0).PDF(context.Background(), "not a url")
		assert.ErrorIs(t, err, ErrPageLoad)
	})

	t.Run("browser failure", func(t *testing.T) {
		shooter := &fakeShooter{err: errors.Join(ErrBrowserConnect, errors.New("no chrome"))}
		doc, err := New(shooter, 1200, 0).PDF(context.Background(), "http://localhost")
		assert.Nil(t, doc)
		assert.True(t, IsBrowserError(err))
	})

	t.Run("not a png", func(t *testing.T) {
		doc, err := New(&fakeShooter{img: []byte("garbage")}, 1200, 0).PDF(context.Background(), "http://localhost")
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrTile)
		assert.False(t, IsBrowserError(err))
	})

	t.Run("timeout", func(t *testing.T) {
		doc, err := New(&fakeShooter{wait: true}, 1200, 20*time.Millisecond).PDF(context.Background(), "http://localhost")
		assert.Nil(t, doc)
		assert.True(t, IsBrowserError(err))
	})
}

func TestScripts(t *testing.T) {
	assert.Contains(t, prepareJS, `classList.add("pdf-mode")`)
	assert.Contains(t, prepareJS, `.no-print`)
	assert.Contains(t, restoreJS, `classList.remove("pdf-mode")`)
}
