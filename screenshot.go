package tether

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"
)

// pixelSource is implemented by renderers whose finished frame can be read
// back as premultiplied RGBA bytes. EbitenRenderer implements it; overlays
// driven by other renderers log a warning and skip the capture.
type pixelSource interface {
	capturePixels() (pix []byte, w, h int, ok bool)
}

// Screenshot queues a labeled capture of the canvas at the end of the current
// frame's Draw call. The resulting PNG is written to ScreenshotDir with a
// timestamped filename. Safe to call from Update or Draw.
func (o *Overlay) Screenshot(label string) {
	o.screenshotQueue = append(o.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Overlay.Draw.
func (o *Overlay) flushScreenshots() {
	if len(o.screenshotQueue) == 0 {
		return
	}
	defer func() { o.screenshotQueue = o.screenshotQueue[:0] }()

	src, ok := o.renderer.(pixelSource)
	if !ok {
		_, _ = fmt.Fprintf(os.Stderr, "[tether] screenshot: renderer cannot capture pixels\n")
		return
	}
	pixels, w, h, ok := src.capturePixels()
	if !ok {
		_, _ = fmt.Fprintf(os.Stderr, "[tether] screenshot: no render target\n")
		return
	}

	if err := os.MkdirAll(o.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[tether] screenshot: mkdir %s: %v\n", o.ScreenshotDir, err)
		return
	}

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range o.screenshotQueue {
		path := fmt.Sprintf("%s/%s_%s.png", o.ScreenshotDir, stamp, sanitizeLabel(label))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[tether] screenshot: %v\n", err)
		}
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
