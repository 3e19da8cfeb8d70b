package mapsym

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// renderer draws one arrow. Its methods match DrawFunc so they can be
// handed to an atlas as callbacks.
type renderer struct {
	shape  Shape
	scale  float64
	fill   *Fill
	stroke *Stroke
	opts   RenderOptions
}

// tracePath resets any transform left on dc, moves the origin to (x, y)
// plus the stroke padding and adds the polyline. The path is left open.
func (r *renderer) tracePath(dc *gg.Context, x, y float64) {
	dc.SetTransform(gg.Identity())
	dc.Translate(x+r.opts.StrokeWidth, y+r.opts.StrokeWidth)

	dc.ClearPath()
	dc.MoveTo(r.shape[0]*r.scale, r.shape[1]*r.scale)
	for i := 2; i+1 < len(r.shape); i += 2 {
		dc.LineTo(r.shape[i]*r.scale, r.shape[i+1]*r.scale)
	}
}

// strokeStyle returns base with the color, width and dash of the arrow
// applied. A nil dash clears any pattern left on a shared atlas page.
func (r *renderer) strokeStyle(base gg.Stroke) gg.Stroke {
	base.Width = r.opts.StrokeWidth
	base.Dash = nil
	if r.opts.LineDash != nil {
		base.Dash = gg.NewDash(r.opts.LineDash...)
	}
	return base
}

// draw renders the visible symbol.
func (r *renderer) draw(dc *gg.Context, x, y float64) {
	r.tracePath(dc, x, y)

	if r.fill != nil {
		dc.SetColor(r.fill.color())
		r.check("fill", dc.FillPreserve())
	}
	if r.stroke != nil {
		dc.SetColor(r.opts.strokeColor)
		dc.SetStroke(r.strokeStyle(gg.Stroke{
			Cap:        r.opts.LineCap.toGG(),
			Join:       r.opts.LineJoin.toGG(),
			MiterLimit: r.opts.MiterLimit,
		}))
		r.check("stroke", dc.StrokePreserve())
	}
	dc.ClearPath()
}

// drawHitDetection renders the hit-detection symbol: always filled with
// HitDetectionColor, stroked with color, width and dash only.
func (r *renderer) drawHitDetection(dc *gg.Context, x, y float64) {
	r.tracePath(dc, x, y)

	dc.SetColor(HitDetectionColor)
	r.check("hit fill", dc.FillPreserve())
	if r.stroke != nil {
		dc.SetColor(r.opts.strokeColor)
		dc.SetStroke(r.strokeStyle(dc.GetStroke()))
		r.check("hit stroke", dc.StrokePreserve())
	}
	dc.ClearPath()
}

func (r *renderer) check(op string, err error) {
	if err != nil {
		Logger().Warn("mapsym: draw failed", slog.String("op", op), slog.Any("err", err))
	}
}
