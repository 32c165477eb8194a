// Package capture renders the live page in a headless browser and tiles
// the full-page screenshot onto A4 pages.
package capture

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/go5rae/portfolio/internal/layout"
)

var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrScreenshot     = errors.New("failed to capture page")
	ErrTile           = errors.New("failed to tile capture")
)

// Class names toggled on the page while it is captured.
const (
	PDFModeClass = "pdf-mode"
	NoPrintClass = "no-print"
)

const viewportHeight = 900

// prepareJS switches the page into print styling and hides controls.
// restoreJS undoes it.
var (
	prepareJS = fmt.Sprintf(`() => {
		document.body.classList.add(%q);
		document.querySelectorAll(".%s").forEach(el => {
			el.dataset.captureDisplay = el.style.display;
			el.style.display = "none";
		});
	}`, PDFModeClass, NoPrintClass)

	restoreJS = fmt.Sprintf(`() => {
		document.body.classList.remove(%q);
		document.querySelectorAll(".%s").forEach(el => {
			el.style.display = el.dataset.captureDisplay || "";
			delete el.dataset.captureDisplay;
		});
	}`, PDFModeClass, NoPrintClass)
)

// Shooter produces a full-page PNG of a URL.
type Shooter interface {
	Screenshot(ctx context.Context, pageURL string, width int) ([]byte, error)
	Close() error
}

// Capturer turns pages into tiled PDFs.
type Capturer struct {
	shooter Shooter
	width   int
	timeout time.Duration
}

// New returns a Capturer over shooter. The viewport is width CSS pixels wide.
func New(shooter Shooter, width int, timeout time.Duration) *Capturer {
	return &Capturer{shooter: shooter, width: width, timeout: timeout}
}

// PDF captures pageURL and returns the tiled document.
func (c *Capturer) PDF(ctx context.Context, pageURL string) ([]byte, error) {
	if u, err := url.Parse(pageURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid url %q", ErrPageLoad, pageURL)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	img, err := c.shooter.Screenshot(ctx, pageURL, c.width)
	if err != nil {
		return nil, err
	}
	doc, err := layout.TilePNG(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTile, err)
	}
	log.Printf("Captured %s in %s (%d bytes)", pageURL, time.Since(start).Round(time.Millisecond), len(doc))
	return doc, nil
}

// Close releases the browser.
func (c *Capturer) Close() error { return c.shooter.Close() }

// RodShooter drives headless Chrome through rod. The browser is launched
// on first use and reused.
type RodShooter struct {
	bin string

	mu      sync.Mutex
	browser *rod.Browser
}

// NewRodShooter returns a shooter using bin, or rod's managed browser when
// bin is empty.
func NewRodShooter(bin string) *RodShooter {
	return &RodShooter{bin: bin}
}

func (r *RodShooter) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New().Headless(true)
	if r.bin != "" {
		l = l.Bin(r.bin).NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = b
	return b, nil
}

// Screenshot opens pageURL at the given width, applies print styling, and
// captures the whole document. Styling is restored before returning.
func (r *RodShooter) Screenshot(ctx context.Context, pageURL string, width int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            viewportHeight,
		DeviceScaleFactor: 2,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	if err := page.Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if _, err := page.Eval(prepareJS); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}
	defer func() {
		if _, err := page.Eval(restoreJS); err != nil {
			log.Printf("Error restoring page after capture: %v", err)
		}
	}()

	shot, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}
	return shot, nil
}

// Close shuts the browser down.
func (r *RodShooter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	return err
}

// IsBrowserError reports whether err came from launching or driving the browser.
func IsBrowserError(err error) bool {
	for _, target := range []error{ErrBrowserConnect, ErrPageCreate, ErrPageLoad, ErrScreenshot} {
		if errors.Is(err, target) {
			return true
		}
	}
	return errors.Is(err, context.DeadlineExceeded)
}
