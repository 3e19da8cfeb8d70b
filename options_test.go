package mapsym

import (
	"image/color"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewRenderOptionsSize(t *testing.T) {
	tests := []struct {
		name          string
		shape         Shape
		scale         float64
		stroke        *Stroke
		width, height float64
		strokeWidth   float64
	}{
		{"line both, width 2", LineBoth(), 10, &Stroke{Width: 2}, 14, 8, 2},
		{"tip, no stroke", LineTipHalfLeft(), 5, nil, 1.5, 1.0, 0},
		{"default width", LineTipBoth(), 10, &Stroke{}, 5, 6, DefaultLineWidth},
		{"order independent", Shape{0, 0.4, 1, 0, 0.5, 0.1}, 10, &Stroke{Width: 2}, 14, 8, 2},
		{"negative width uses default", LineHalfRight(), 20, &Stroke{Width: -3}, 22, 6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewRenderOptions(tt.shape, tt.scale, tt.stroke, true)
			if !near(opts.Width, tt.width) || !near(opts.Height, tt.height) {
				t.Errorf("size = %vx%v, want %vx%v", opts.Width, opts.Height, tt.width, tt.height)
			}
			if opts.StrokeWidth != tt.strokeWidth {
				t.Errorf("StrokeWidth = %v, want %v", opts.StrokeWidth, tt.strokeWidth)
			}
		})
	}
}

func TestNewRenderOptionsStrokeDefaults(t *testing.T) {
	opts := NewRenderOptions(LineBoth(), 1, &Stroke{}, true)

	if opts.StrokeColor != "#000000" {
		t.Errorf("StrokeColor = %q, want #000000", opts.StrokeColor)
	}
	if opts.LineCap != DefaultLineCap {
		t.Errorf("LineCap = %v, want %v", opts.LineCap, DefaultLineCap)
	}
	if opts.LineJoin != DefaultLineJoin {
		t.Errorf("LineJoin = %v, want %v", opts.LineJoin, DefaultLineJoin)
	}
	if opts.MiterLimit != DefaultMiterLimit {
		t.Errorf("MiterLimit = %v, want %v", opts.MiterLimit, DefaultMiterLimit)
	}
	if opts.LineDash != nil {
		t.Errorf("LineDash = %v, want nil", opts.LineDash)
	}
}

func TestNewRenderOptionsExplicitStroke(t *testing.T) {
	s := &Stroke{
		Color:      color.RGBA{R: 255, A: 255},
		Width:      3,
		LineCap:    LineCapSquare,
		LineJoin:   LineJoinBevel,
		MiterLimit: 4,
		LineDash:   []float64{2, 1},
	}
	opts := NewRenderOptions(LineBoth(), 1, s, true)

	if opts.StrokeColor != "#ff0000" {
		t.Errorf("StrokeColor = %q, want #ff0000", opts.StrokeColor)
	}
	if opts.LineCap != LineCapSquare || opts.LineJoin != LineJoinBevel || opts.MiterLimit != 4 {
		t.Errorf("cap/join/miter = %v/%v/%v, want square/bevel/4", opts.LineCap, opts.LineJoin, opts.MiterLimit)
	}
	if len(opts.LineDash) != 2 {
		t.Fatalf("LineDash = %v, want [2 1]", opts.LineDash)
	}

	// The options own their dash slice.
	s.LineDash[0] = 9
	if opts.LineDash[0] != 2 {
		t.Error("RenderOptions shares the dash slice with the stroke")
	}
}

func TestNewRenderOptionsDashUnsupported(t *testing.T) {
	opts := NewRenderOptions(LineBoth(), 1, &Stroke{LineDash: []float64{4, 2}}, false)
	if opts.LineDash != nil {
		t.Errorf("LineDash = %v, want nil when dashes are unsupported", opts.LineDash)
	}
}

func TestNewRenderOptionsNoStroke(t *testing.T) {
	opts := NewRenderOptions(LineBoth(), 10, nil, true)
	if opts.StrokeColor != "" || opts.StrokeWidth != 0 || opts.LineCap != LineCapDefault ||
		opts.LineJoin != LineJoinDefault || opts.MiterLimit != 0 || opts.LineDash != nil {
		t.Errorf("stroke attributes set without a stroke: %+v", opts)
	}
}

func TestArrowOptions(t *testing.T) {
	o := defaultArrowOptions()
	if !o.snapToPixel || !o.dashSupported {
		t.Fatalf("defaults = %+v, want snapToPixel and dashSupported", o)
	}

	fill := &Fill{Color: color.White}
	stroke := &Stroke{Width: 2}
	for _, opt := range []Option{
		WithFill(fill),
		WithStroke(stroke),
		WithRotation(math.Pi),
		WithSnapToPixel(false),
		WithLineDash(false),
	} {
		opt(&o)
	}

	if o.fill == fill || o.stroke == stroke {
		t.Error("options must copy fill and stroke")
	}
	if o.fill.Color != color.White || o.stroke.Width != 2 {
		t.Errorf("copied values differ: %+v %+v", o.fill, o.stroke)
	}
	if o.rotation != math.Pi || o.snapToPixel || o.dashSupported {
		t.Errorf("options not applied: %+v", o)
	}
}
