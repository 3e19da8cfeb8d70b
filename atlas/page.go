package atlas

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/mapsym"
)

// block is a free rectangle of a page.
type block struct {
	x, y, width, height int
}

// page is one square atlas pixmap with a guillotine allocator: a symbol
// takes the top-left corner of the first free block large enough for it,
// and the rest of the block is split in two along the longer leftover side.
type page struct {
	size   int
	space  int
	pixmap *gg.Pixmap
	dc     *gg.Context
	free   []block
}

func newPage(size, space int) *page {
	pm := gg.NewPixmap(size, size)
	return &page{
		size:   size,
		space:  space,
		pixmap: pm,
		dc:     gg.NewContext(size, size, gg.WithPixmap(pm)),
		free:   []block{{width: size, height: size}},
	}
}

// add reserves a width x height slot, runs draw at its offset and returns
// the offset. A nil draw only reserves the slot.
func (p *page) add(width, height int, draw mapsym.DrawFunc) (image.Point, bool) {
	w, h := width+p.space, height+p.space
	for i, b := range p.free {
		if b.width < w || b.height < h {
			continue
		}
		off := image.Pt(b.x+p.space, b.y+p.space)
		if draw != nil {
			draw(p.dc, float64(off.X), float64(off.Y))
			// Pending accelerator work must reach the pixmap before the
			// region is handed out.
			if err := p.dc.FlushGPU(); err != nil {
				mapsym.Logger().Warn("atlas: flush failed", slog.Any("err", err))
			}
		}
		p.split(i, b, w, h)
		return off, true
	}
	return image.Point{}, false
}

// split replaces free block i, of which a w x h corner was used, with the
// remaining right and bottom parts.
func (p *page) split(i int, b block, w, h int) {
	dw, dh := b.width-w, b.height-h
	var b1, b2 block
	if dw > dh {
		// full-height strip to the right, remainder below the symbol
		b1 = block{x: b.x + w, y: b.y, width: dw, height: b.height}
		b2 = block{x: b.x, y: b.y + h, width: w, height: dh}
	} else {
		// full-width strip below, remainder right of the symbol
		b1 = block{x: b.x, y: b.y + h, width: b.width, height: dh}
		b2 = block{x: b.x + w, y: b.y, width: dw, height: h}
	}

	repl := make([]block, 0, 2)
	for _, nb := range []block{b1, b2} {
		if nb.width > 0 && nb.height > 0 {
			repl = append(repl, nb)
		}
	}
	p.free = append(p.free[:i], append(repl, p.free[i+1:]...)...)
}

// freeArea returns the number of unreserved pixels.
func (p *page) freeArea() int {
	n := 0
	for _, b := range p.free {
		n += b.width * b.height
	}
	return n
}
