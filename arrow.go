package mapsym

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Arrow is a point symbol that draws a polyline arrow marker, typically
// placed along a line to show its direction.
//
// An Arrow is rendered once by NewArrow and never changes afterwards.
type Arrow struct {
	shape    Shape
	scale    float64
	fill     *Fill
	stroke   *Stroke
	checksum string

	rotation    float64
	snapToPixel bool

	image        *gg.Pixmap
	hitImage     *gg.Pixmap
	origin       image.Point
	anchor       gg.Point
	size         image.Point
	imageSize    image.Point
	hitImageSize image.Point
}

var _ ImageStyle = (*Arrow)(nil)

// NewArrow validates shape and scale and renders the arrow.
//
// Without an atlas the arrow gets a pixmap of its own. With WithAtlas the
// arrow is packed into the atlas and the returned error wraps
// ErrSymbolTooLarge when no atlas page can hold it.
func NewArrow(shape Shape, scale float64, opts ...Option) (*Arrow, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScale, scale)
	}

	o := defaultArrowOptions()
	for _, opt := range opts {
		opt(&o)
	}

	shape = shape.Clone()
	ro := NewRenderOptions(shape, scale, o.stroke, o.dashSupported)
	r := &renderer{
		shape:  shape,
		scale:  scale,
		fill:   o.fill,
		stroke: o.stroke,
		opts:   ro,
	}
	a := &Arrow{
		shape:       shape,
		scale:       scale,
		fill:        o.fill,
		stroke:      o.stroke,
		checksum:    checksum(shape, scale, o.fill, o.stroke != nil, ro),
		rotation:    o.rotation,
		snapToPixel: o.snapToPixel,
	}

	width, height := pixelSize(ro.Width), pixelSize(ro.Height)
	if o.atlas == nil {
		a.renderStandalone(r, width, height)
	} else if err := a.renderAtlas(r, o.atlas, width, height); err != nil {
		return nil, err
	}

	a.anchor = gg.Pt(shape[0]*scale+ro.StrokeWidth, shape[1]*scale+ro.StrokeWidth)
	a.size = image.Pt(width, height)

	Logger().Debug("mapsym: arrow rendered",
		slog.Bool("atlas", o.atlas != nil),
		slog.String("checksum", a.checksum),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Bool("sharedHitImage", a.hitImage == a.image))
	return a, nil
}

// MustNewArrow is like NewArrow but panics on error. It is meant for
// package-level symbol tables built from known-good shapes.
func MustNewArrow(shape Shape, scale float64, opts ...Option) *Arrow {
	a, err := NewArrow(shape, scale, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// renderStandalone draws into a pixmap sized to the arrow. The visible
// image doubles as the hit-detection image when the arrow is filled.
func (a *Arrow) renderStandalone(r *renderer, width, height int) {
	a.image = drawPixmap(width, height, r.draw)
	a.imageSize = image.Pt(width, height)

	if a.fill != nil {
		a.hitImage = a.image
	} else {
		a.hitImage = drawPixmap(width, height, r.drawHitDetection)
	}
	a.hitImageSize = image.Pt(width, height)
}

// renderAtlas reserves a slot in atlas. Drawing happens inside Add.
// A separate hit-detection slot is requested only for unfilled arrows.
func (a *Arrow) renderAtlas(r *renderer, atlas Atlas, width, height int) error {
	var hitDraw DrawFunc
	if a.fill == nil {
		hitDraw = r.drawHitDetection
	}

	region, ok := atlas.Add(a.checksum, width, height, r.draw, hitDraw)
	if !ok {
		return &SymbolTooLargeError{Width: width, Height: height}
	}

	a.image = region.Image
	a.origin = image.Pt(region.OffsetX, region.OffsetY)
	a.imageSize = image.Pt(region.Image.Width(), region.Image.Height())
	if hitDraw != nil {
		a.hitImage = region.HitImage
		a.hitImageSize = image.Pt(region.HitImage.Width(), region.HitImage.Height())
	} else {
		a.hitImage = a.image
		a.hitImageSize = a.imageSize
	}
	return nil
}

func drawPixmap(width, height int, draw DrawFunc) *gg.Pixmap {
	pm := gg.NewPixmap(width, height)
	dc := gg.NewContext(width, height, gg.WithPixmap(pm))
	defer func() { _ = dc.Close() }()
	draw(dc, 0, 0)
	return pm
}

// pixelSize rounds a symbol dimension to whole pixels, never below one.
func pixelSize(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

// Anchor returns the first shape point, scaled and padded by the stroke
// width. It is the pixel that lines up with the feature coordinate.
func (a *Arrow) Anchor() gg.Point { return a.anchor }

// Origin returns the arrow's top-left corner inside Image: zero for a
// standalone pixmap, the slot offset for an atlas page.
func (a *Arrow) Origin() image.Point { return a.origin }

// Size returns the arrow size in whole pixels.
func (a *Arrow) Size() image.Point { return a.size }

// ImageSize returns the size of the pixmap returned by Image.
func (a *Arrow) ImageSize() image.Point { return a.imageSize }

// HitDetectionImageSize returns the size of the pixmap returned by
// HitDetectionImage.
func (a *Arrow) HitDetectionImageSize() image.Point { return a.hitImageSize }

// Image returns the pixmap holding the arrow. With an atlas it is shared
// with other symbols; use Origin and Size to locate the arrow.
func (a *Arrow) Image() *gg.Pixmap { return a.image }

// HitDetectionImage returns the pixmap used for hit detection. For filled
// arrows this is the same pixmap as Image.
func (a *Arrow) HitDetectionImage() *gg.Pixmap { return a.hitImage }

// ImageState always reports ImageStateLoaded: arrows are drawn on creation.
func (a *Arrow) ImageState() ImageState { return ImageStateLoaded }

// Checksum returns the cache key of the arrow's appearance.
func (a *Arrow) Checksum() string { return a.checksum }

// Shape returns a copy of the arrow's shape.
func (a *Arrow) Shape() Shape { return a.shape.Clone() }

// ArrowScale returns the factor the unit shape was scaled by.
func (a *Arrow) ArrowScale() float64 { return a.scale }

// Fill returns a copy of the fill, or nil.
func (a *Arrow) Fill() *Fill { return a.fill.clone() }

// Stroke returns a copy of the stroke, or nil.
func (a *Arrow) Stroke() *Stroke { return a.stroke.clone() }

// Opacity is always 1; transparency comes from the stroke and fill colors.
func (a *Arrow) Opacity() float64 { return 1 }

// Rotation returns the rotation in radians set with WithRotation.
func (a *Arrow) Rotation() float64 { return a.rotation }

// Scale is always 1. The arrow scale is baked into the image, see ArrowScale.
func (a *Arrow) Scale() float64 { return 1 }

// RotateWithView reports that the arrow turns with the map view.
func (a *Arrow) RotateWithView() bool { return true }

// SnapToPixel reports whether consumers should draw the arrow at whole
// pixel positions.
func (a *Arrow) SnapToPixel() bool { return a.snapToPixel }

// Load does nothing; the arrow is already rendered.
func (a *Arrow) Load() {}

// ListenImageChange does nothing; an arrow never changes state.
func (a *Arrow) ListenImageChange(func()) {}

// UnlistenImageChange does nothing.
func (a *Arrow) UnlistenImageChange(func()) {}

// SymbolImage returns a copy of the arrow's own pixels, cut out of the
// atlas page when the arrow is packed.
func (a *Arrow) SymbolImage() *image.RGBA {
	return crop(a.image, a.origin, a.size)
}

// HitDetectionSymbolImage is SymbolImage for the hit-detection pixmap.
func (a *Arrow) HitDetectionSymbolImage() *image.RGBA {
	return crop(a.hitImage, a.origin, a.size)
}

func crop(src *gg.Pixmap, origin, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	sr := image.Rectangle{Min: origin, Max: origin.Add(size)}
	xdraw.Copy(dst, image.Point{}, src.ToImage(), sr, xdraw.Src, nil)
	return dst
}
