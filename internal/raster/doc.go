// Package raster turns image sources into pixel buffers and averages them.
//
// A Source is a closed variant over the three ways an image can arrive:
// an already-decoded image.Image, a URL or file path string, or raw encoded
// bytes. A Rasterizer resolves a source to a PixelBuffer: the decoded image
// drawn at 1:1 scale onto an off-screen RGBA surface and read back as
// tightly packed bytes. AverageColor consumes the buffer and reduces it to
// a single color with an unweighted per-channel mean, truncated to
// integers.
//
// # Concurrency
//
// Every rasterization allocates its own scratch surface, so concurrent
// calls share no state and need no locking. The only suspension point is
// the fetch/decode of the source, which honors the caller's context; the
// pixel summation is a single bounded synchronous loop.
//
// # Error Handling
//
// Failures are classified by sentinel errors (ErrEnvironment,
// ErrInvalidInput, ErrImageLoad, ErrSurface, ErrContext, ErrPixelAccess)
// and wrapped with detail; classify with errors.Is. Nothing is retried and
// no partial result is ever returned.
//
// # Testing
//
// The Rasterizer interface exists so the averaging logic can be exercised
// without real decoding: tests inject an in-memory implementation, while
// production code uses StdRasterizer.
package raster
