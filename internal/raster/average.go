package raster

import (
	"context"
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/colorimetry"
)

// AverageColor computes the unweighted arithmetic mean color of an image.
//
// The source is rasterized with r, then the R, G, and B channel values are
// summed independently across every pixel and divided by the pixel count.
// Division truncates toward zero. The alpha channel is read as part of the
// buffer but carries no weight in the average.
//
// A nil rasterizer fails immediately with ErrEnvironment, before any decode
// is attempted. All other failures come from the rasterizer and wrap one of
// this package's sentinel errors. There are no retries and no partial
// results.
//
// The context is passed through to the rasterizer, which honors it at the
// fetch/decode suspension point. No timeout is applied by default; callers
// needing one should derive a deadline context.
func AverageColor(ctx context.Context, r Rasterizer, src Source) (colorimetry.RGB, error) {
	if r == nil {
		return colorimetry.RGB{}, ErrEnvironment
	}

	pb, err := r.Rasterize(ctx, src)
	if err != nil {
		return colorimetry.RGB{}, err
	}

	// The pixel count can't overflow: surfaces are capped well below the
	// point where count*255 exceeds uint64.
	var rSum, gSum, bSum uint64
	for i := 0; i+3 < len(pb.Pix); i += 4 {
		rSum += uint64(pb.Pix[i])
		gSum += uint64(pb.Pix[i+1])
		bSum += uint64(pb.Pix[i+2])
	}

	count := uint64(pb.Width) * uint64(pb.Height)
	if count == 0 {
		return colorimetry.RGB{}, fmt.Errorf("%w: empty pixel buffer", ErrSurface)
	}
	return colorimetry.RGB{
		R: uint8(rSum / count),
		G: uint8(gSum / count),
		B: uint8(bSum / count),
	}, nil
}

// AverageColorHex is AverageColor formatted as a canonical "#rrggbb" string.
func AverageColorHex(ctx context.Context, r Rasterizer, src Source) (string, error) {
	avg, err := AverageColor(ctx, r, src)
	if err != nil {
		return "", err
	}
	return colorimetry.Hex(avg), nil
}
