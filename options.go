package mapsym

import (
	"image/color"
)

// RenderOptions holds the stroke attributes and pixel size derived from a
// shape, a scale and an optional stroke. It is recomputed for every render.
type RenderOptions struct {
	// StrokeColor is the display form of the stroke color, "" without a stroke.
	StrokeColor string

	// StrokeWidth pads the symbol on every side. Zero without a stroke.
	StrokeWidth float64

	// Width and Height are the unrounded symbol size in pixels, padding included.
	Width  float64
	Height float64

	LineCap    LineCap
	LineDash   []float64
	LineJoin   LineJoin
	MiterLimit float64

	strokeColor color.Color
}

// NewRenderOptions derives the render options for shape drawn at scale.
// dashSupported reports whether the target surface can draw dashed lines;
// when false any dash pattern of the stroke is dropped.
func NewRenderOptions(shape Shape, scale float64, stroke *Stroke, dashSupported bool) RenderOptions {
	var opts RenderOptions
	if stroke != nil {
		opts.strokeColor = stroke.Color
		if opts.strokeColor == nil {
			opts.strokeColor = DefaultStrokeColor
		}
		opts.StrokeColor = ColorString(opts.strokeColor)
		opts.StrokeWidth = stroke.Width
		if opts.StrokeWidth <= 0 {
			opts.StrokeWidth = DefaultLineWidth
		}
		if dashSupported && stroke.LineDash != nil {
			opts.LineDash = append([]float64(nil), stroke.LineDash...)
		}
		opts.LineCap = stroke.LineCap.resolve()
		opts.LineJoin = stroke.LineJoin.resolve()
		opts.MiterLimit = stroke.MiterLimit
		if opts.MiterLimit <= 0 {
			opts.MiterLimit = DefaultMiterLimit
		}
	}

	maxX, maxY := shape.Extent()
	opts.Width = maxX*scale + 2*opts.StrokeWidth
	opts.Height = maxY*scale + 2*opts.StrokeWidth
	return opts
}

// Option configures an Arrow during construction.
//
// Example:
//
//	a, err := mapsym.NewArrow(mapsym.LineBoth(), 10,
//	    mapsym.WithStroke(&mapsym.Stroke{Color: color.Black, Width: 2}),
//	    mapsym.WithAtlas(manager))
type Option func(*arrowOptions)

type arrowOptions struct {
	fill          *Fill
	stroke        *Stroke
	atlas         Atlas
	rotation      float64
	snapToPixel   bool
	dashSupported bool
}

func defaultArrowOptions() arrowOptions {
	return arrowOptions{
		snapToPixel:   true,
		dashSupported: true,
	}
}

// WithFill fills the arrow interior. The fill is copied.
func WithFill(f *Fill) Option {
	return func(o *arrowOptions) {
		o.fill = f.clone()
	}
}

// WithStroke strokes the arrow outline. The stroke is copied.
func WithStroke(s *Stroke) Option {
	return func(o *arrowOptions) {
		o.stroke = s.clone()
	}
}

// WithAtlas packs the arrow into a shared atlas instead of giving it its own
// pixmap. A nil atlas keeps the standalone mode.
func WithAtlas(a Atlas) Option {
	return func(o *arrowOptions) {
		o.atlas = a
	}
}

// WithRotation sets the rotation in radians reported to consumers.
func WithRotation(rad float64) Option {
	return func(o *arrowOptions) {
		o.rotation = rad
	}
}

// WithSnapToPixel controls whether consumers should snap the symbol to
// whole pixels. Default: true.
func WithSnapToPixel(snap bool) Option {
	return func(o *arrowOptions) {
		o.snapToPixel = snap
	}
}

// WithLineDash declares whether the drawing surface supports dashed strokes.
// Default: true.
func WithLineDash(supported bool) Option {
	return func(o *arrowOptions) {
		o.dashSupported = supported
	}
}
