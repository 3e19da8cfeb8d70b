package mapsym

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Checksum returns the cache key of an arrow with the given appearance.
// Arrows that would render identically share a key; any difference in
// points, scale, stroke or fill changes it. The key is the 64-bit FNV-1a
// hash of a canonical text form, printed as 16 hex digits.
func Checksum(shape Shape, scale float64, fill *Fill, stroke *Stroke) string {
	return checksum(shape, scale, fill, stroke != nil, NewRenderOptions(shape, scale, stroke, true))
}

// checksum hashes the resolved render options, so unset stroke fields hash
// like their defaults and a dropped dash pattern is not part of the key.
func checksum(shape Shape, scale float64, fill *Fill, stroked bool, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString("arrow|")
	writeFloats(&b, shape)
	b.WriteByte('|')
	b.WriteString(formatFloat(scale))

	b.WriteString("|s:")
	if stroked {
		b.WriteString(opts.StrokeColor)
		b.WriteByte(',')
		b.WriteString(formatFloat(opts.StrokeWidth))
		b.WriteByte(',')
		b.WriteString(opts.LineCap.String())
		b.WriteByte(',')
		b.WriteString(opts.LineJoin.String())
		b.WriteByte(',')
		b.WriteString(formatFloat(opts.MiterLimit))
		if opts.LineDash != nil {
			b.WriteString(",[")
			writeFloats(&b, opts.LineDash)
			b.WriteByte(']')
		}
	}

	b.WriteString("|f:")
	if fill != nil {
		b.WriteString(ColorString(fill.color()))
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(b.String())) // fnv.Write never returns an error
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeFloats(b *strings.Builder, vs []float64) {
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFloat(v))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
