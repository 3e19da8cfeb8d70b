package mapsym

import (
	"image"

	"github.com/gogpu/gg"
)

// ImageState reports the loading state of an image style.
type ImageState int

const (
	// ImageStateIdle means loading has not started.
	ImageStateIdle ImageState = iota
	// ImageStateLoading means the image is being fetched or drawn.
	ImageStateLoading
	// ImageStateLoaded means the image is ready to draw.
	ImageStateLoaded
	// ImageStateError means the image could not be produced.
	ImageStateError
)

// String returns the state name.
func (s ImageState) String() string {
	switch s {
	case ImageStateIdle:
		return "idle"
	case ImageStateLoading:
		return "loading"
	case ImageStateLoaded:
		return "loaded"
	case ImageStateError:
		return "error"
	default:
		return "unknown"
	}
}

// ImageStyle is the read-only contract renderers use to place a point symbol.
type ImageStyle interface {
	// Anchor is the pixel inside the image that lines up with the feature
	// coordinate.
	Anchor() gg.Point
	// Origin is the top-left corner of the symbol inside Image.
	Origin() image.Point
	Size() image.Point
	ImageSize() image.Point
	HitDetectionImageSize() image.Point
	Image() *gg.Pixmap
	HitDetectionImage() *gg.Pixmap
	ImageState() ImageState
	Checksum() string

	Opacity() float64
	Rotation() float64
	Scale() float64
	RotateWithView() bool
	SnapToPixel() bool

	Load()
	ListenImageChange(fn func())
	UnlistenImageChange(fn func())
}

// DrawFunc paints a symbol into dc with its top-left corner at (x, y).
// The callee must not keep dc beyond the call.
type DrawFunc func(dc *gg.Context, x, y float64)

// AtlasRegion is the place an atlas assigned to a symbol.
type AtlasRegion struct {
	// Image is the shared atlas pixmap holding the symbol.
	Image *gg.Pixmap
	// HitImage is the shared pixmap holding the hit-detection rendering.
	HitImage *gg.Pixmap
	// OffsetX and OffsetY locate the symbol inside both pixmaps.
	OffsetX int
	OffsetY int
}

// Atlas packs many small symbols into shared pixmaps.
//
// Add reserves a width x height slot for key and calls draw, and hitDraw
// when non-nil, synchronously at the chosen offset. It returns false when
// the symbol cannot fit on any atlas page.
type Atlas interface {
	Add(key string, width, height int, draw, hitDraw DrawFunc) (AtlasRegion, bool)
}
