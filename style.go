package mapsym

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// Platform defaults used when a stroke leaves an attribute unset.
const (
	DefaultLineWidth  = 1.0
	DefaultLineCap    = LineCapRound
	DefaultLineJoin   = LineJoinRound
	DefaultMiterLimit = 10.0
)

var (
	// DefaultStrokeColor is used by strokes without a color.
	DefaultStrokeColor color.Color = color.Black

	// DefaultFillColor is used by fills without a color.
	DefaultFillColor color.Color = color.Black

	// HitDetectionColor fills every hit-detection pass. It must be opaque.
	HitDetectionColor color.Color = color.Black
)

// LineCap is the shape of stroke end points. The zero value selects
// DefaultLineCap.
type LineCap int

const (
	// LineCapDefault selects DefaultLineCap.
	LineCapDefault LineCap = iota
	// LineCapButt ends the stroke flat at the end point.
	LineCapButt
	// LineCapRound ends the stroke with a half circle.
	LineCapRound
	// LineCapSquare extends the stroke by half its width past the end point.
	LineCapSquare
)

func (c LineCap) resolve() LineCap {
	if c == LineCapDefault {
		return DefaultLineCap
	}
	return c
}

// String returns the canvas name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapDefault:
		return ""
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "LineCap(" + strconv.Itoa(int(c)) + ")"
	}
}

func (c LineCap) toGG() gg.LineCap {
	switch c.resolve() {
	case LineCapButt:
		return gg.LineCapButt
	case LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapRound
	}
}

// LineJoin is the shape of stroke corners. The zero value selects
// DefaultLineJoin.
type LineJoin int

const (
	// LineJoinDefault selects DefaultLineJoin.
	LineJoinDefault LineJoin = iota
	// LineJoinMiter extends the outer edges to a point, up to the miter limit.
	LineJoinMiter
	// LineJoinRound rounds the outer corner.
	LineJoinRound
	// LineJoinBevel cuts the outer corner off.
	LineJoinBevel
)

func (j LineJoin) resolve() LineJoin {
	if j == LineJoinDefault {
		return DefaultLineJoin
	}
	return j
}

// String returns the canvas name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinDefault:
		return ""
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "LineJoin(" + strconv.Itoa(int(j)) + ")"
	}
}

func (j LineJoin) toGG() gg.LineJoin {
	switch j.resolve() {
	case LineJoinMiter:
		return gg.LineJoinMiter
	case LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinRound
	}
}

// Stroke describes how the arrow outline is stroked. Zero-valued fields
// fall back to the Default* values of this package.
type Stroke struct {
	Color      color.Color
	Width      float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64

	// LineDash alternates dash and gap lengths. nil draws a solid line.
	LineDash []float64
}

func (s *Stroke) clone() *Stroke {
	if s == nil {
		return nil
	}
	c := *s
	if s.LineDash != nil {
		c.LineDash = append([]float64(nil), s.LineDash...)
	}
	return &c
}

// Fill describes how the arrow interior is filled.
type Fill struct {
	Color color.Color
}

func (f *Fill) color() color.Color {
	if f.Color == nil {
		return DefaultFillColor
	}
	return f.Color
}

func (f *Fill) clone() *Fill {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// ColorString returns the display form of c: "#rrggbb" when c is opaque and
// "rgba(r,g,b,a)" otherwise. A nil color yields "".
func ColorString(c color.Color) string {
	if c == nil {
		return ""
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return "rgba(0,0,0,0)"
	}
	cf, _ := colorful.MakeColor(c)
	if a == 0xffff {
		return cf.Hex()
	}
	r, g, b := cf.RGB255()
	alpha := strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, alpha)
}
