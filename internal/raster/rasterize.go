package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"net/http"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// Rasterization failure modes. Every error returned by this package wraps
// exactly one of these sentinels, so callers can classify with errors.Is.
var (
	// ErrEnvironment means no rasterizer is available. Checked before any
	// decode is attempted.
	ErrEnvironment = errors.New("no rasterizer available")

	// ErrInvalidInput means the source is not one of the supported variants.
	ErrInvalidInput = errors.New("unsupported image source")

	// ErrImageLoad means fetching or decoding the source failed.
	ErrImageLoad = errors.New("image load failed")

	// ErrSurface means the readback surface could not be allocated.
	ErrSurface = errors.New("surface allocation failed")

	// ErrContext means the surface exists but cannot be drawn on.
	ErrContext = errors.New("raster context unavailable")

	// ErrPixelAccess means reading pixel data back from the surface failed.
	// The underlying message is attached.
	ErrPixelAccess = errors.New("pixel readback failed")
)

// maxSurfacePixels bounds surface allocation. 2^28 pixels is a 1 GiB RGBA
// buffer, far beyond any sane input.
const maxSurfacePixels = 1 << 28

// PixelBuffer is the raw readback of a rasterized image: tightly packed
// RGBA bytes, four per pixel, rows top to bottom with no padding.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// Rasterizer decodes an image source into a pixel buffer with known
// dimensions. Implementations must be safe for concurrent use; each call
// works on its own scratch surface.
type Rasterizer interface {
	Rasterize(ctx context.Context, src Source) (*PixelBuffer, error)
}

// StdRasterizer is the production Rasterizer. It decodes URL, file, and
// blob sources with the standard image codecs and draws the result onto an
// off-screen NRGBA surface at 1:1 scale before reading back the pixels.
type StdRasterizer struct {
	// Client is used for http(s) sources. Defaults to http.DefaultClient.
	Client *http.Client
}

// NewStdRasterizer returns a rasterizer backed by http.DefaultClient.
func NewStdRasterizer() *StdRasterizer {
	return &StdRasterizer{}
}

// Rasterize resolves the source to a decoded image, draws it onto a fresh
// surface sized to the image's pixel dimensions, and returns the RGBA
// readback. The context is honored while fetching and decoding; the draw
// and readback are synchronous and uninterruptible.
func (r *StdRasterizer) Rasterize(ctx context.Context, src Source) (*PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}

	img, err := r.decode(ctx, src)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	surf, err := newSurface(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	return surf.render(img)
}

// decode resolves each source variant to a decoded image.
func (r *StdRasterizer) decode(ctx context.Context, src Source) (image.Image, error) {
	switch src.kind {
	case sourceImage:
		return src.img, nil

	case sourceURL:
		if strings.HasPrefix(src.url, "http://") || strings.HasPrefix(src.url, "https://") {
			return r.fetch(ctx, src.url)
		}
		img, err := imgio.Open(src.url)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
		}
		return img, nil

	case sourceBlob:
		img, err := imaging.Decode(bytes.NewReader(src.blob))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
		}
		return img, nil

	default:
		return nil, fmt.Errorf("%w: empty source", ErrInvalidInput)
	}
}

// fetch downloads and decodes a remote image. The request carries no
// credentials and is bound to the caller's context.
func (r *StdRasterizer) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s for %s", ErrImageLoad, resp.Status, url)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	return img, nil
}

// surface is a scratch off-screen pixel buffer. A fresh one is allocated
// per rasterization, so concurrent calls never share state.
type surface struct {
	buf *image.NRGBA
}

func newSurface(width, height int) (*surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrSurface, width, height)
	}
	if int64(width)*int64(height) > maxSurfacePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds pixel limit", ErrSurface, width, height)
	}
	return &surface{buf: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// render draws the image onto the surface at the origin with no scaling
// and reads back the full pixel buffer. A panic raised by the image's
// pixel accessors during the draw is reported as ErrPixelAccess with the
// underlying message attached.
func (s *surface) render(img image.Image) (pb *PixelBuffer, err error) {
	width := s.buf.Rect.Dx()
	height := s.buf.Rect.Dy()
	if len(s.buf.Pix) < width*height*4 {
		return nil, fmt.Errorf("%w: surface buffer too small", ErrContext)
	}

	defer func() {
		if rec := recover(); rec != nil {
			pb = nil
			err = fmt.Errorf("%w: %v", ErrPixelAccess, rec)
		}
	}()

	draw.Draw(s.buf, s.buf.Rect, img, img.Bounds().Min, draw.Src)

	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    s.buf.Pix,
	}, nil
}
