package raster

import "image"

// sourceKind discriminates the closed set of image source variants.
type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceImage
	sourceURL
	sourceBlob
)

// Source identifies where an image comes from. It is a closed variant with
// exactly three cases, built with FromImage, FromURL, or FromBlob.
//
// The zero Source belongs to no case; rasterizing it fails with
// ErrInvalidInput.
type Source struct {
	kind sourceKind
	img  image.Image
	url  string
	blob []byte
}

// FromImage wraps an already-decoded in-memory image.
func FromImage(img image.Image) Source {
	return Source{kind: sourceImage, img: img}
}

// FromURL wraps an http(s) URL or a local file path.
//
// URLs are fetched with an anonymous GET: no credentials or cookies are
// attached to the request. Any string without an http or https scheme is
// treated as a file path.
func FromURL(url string) Source {
	return Source{kind: sourceURL, url: url}
}

// FromBlob wraps raw encoded image bytes (PNG, JPEG, or GIF).
//
// The slice is not copied; callers must not mutate it until the source has
// been rasterized.
func FromBlob(data []byte) Source {
	return Source{kind: sourceBlob, blob: data}
}
