package mapsym

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Shape is an arrow outline as a flat list of x,y pairs in unscaled unit
// space. The bounding box always starts at (0,0), so negative coordinates
// fall outside the rendered image.
type Shape []float64

// Validate checks that the shape holds whole points and at least two of them.
func (s Shape) Validate() error {
	if len(s)%2 != 0 {
		return fmt.Errorf("%w: got %d values", ErrInvalidShape, len(s))
	}
	if len(s) < 4 {
		return fmt.Errorf("%w: got %d points", ErrInvalidShape, len(s)/2)
	}
	return nil
}

// Len returns the number of points.
func (s Shape) Len() int {
	return len(s) / 2
}

// Point returns the i-th point.
func (s Shape) Point(i int) gg.Point {
	return gg.Pt(s[2*i], s[2*i+1])
}

// Extent returns the largest x and y over all points. The minimum is
// always taken to be zero.
func (s Shape) Extent() (maxX, maxY float64) {
	for i := 0; i+1 < len(s); i += 2 {
		if s[i] > maxX {
			maxX = s[i]
		}
		if s[i+1] > maxY {
			maxY = s[i+1]
		}
	}
	return maxX, maxY
}

// Clone returns a copy of the shape that shares no storage with s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Predefined arrow shapes. Each call returns a fresh copy.

// LineBoth is a line with a barb on each side of the tip.
func LineBoth() Shape {
	return Shape{1, 0.2, 0.7, 0, 1, 0.2, 0.7, 0.4, 1, 0.2, 0, 0.2}
}

// LineHalfLeft is a line with a single barb on the left of the tip.
func LineHalfLeft() Shape {
	return Shape{1, 0.2, 0.7, 0, 1, 0.2, 0, 0}
}

// LineHalfRight is a line with a single barb on the right of the tip.
func LineHalfRight() Shape {
	return Shape{1, 0, 0.7, 0.2, 1, 0, 0, 0}
}

// LineTipBoth is just the two barbs of the tip, without a shaft.
func LineTipBoth() Shape {
	return Shape{0.3, 0.2, 0, 0, 0.3, 0.2, 0, 0.4}
}

// LineTipHalfLeft is a single left barb.
func LineTipHalfLeft() Shape {
	return Shape{0.3, 0.2, 0, 0}
}

// LineTipHalfRight is a single right barb.
func LineTipHalfRight() Shape {
	return Shape{0.3, 0, 0, 0.2}
}

// Preset pairs a catalog name with its shape.
type Preset struct {
	Name  string
	Shape Shape
}

// Presets returns the predefined shapes in catalog order.
func Presets() []Preset {
	return []Preset{
		{Name: "line-both", Shape: LineBoth()},
		{Name: "line-half-left", Shape: LineHalfLeft()},
		{Name: "line-half-right", Shape: LineHalfRight()},
		{Name: "line-tip-both", Shape: LineTipBoth()},
		{Name: "line-tip-half-left", Shape: LineTipHalfLeft()},
		{Name: "line-tip-half-right", Shape: LineTipHalfRight()},
	}
}

// PresetByName looks up a predefined shape by its catalog name.
func PresetByName(name string) (Shape, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p.Shape, true
		}
	}
	return nil, false
}
