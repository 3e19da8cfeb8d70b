// Package mapsym renders arrow marker symbols for map line features.
//
// An arrow is a polyline in unit coordinates (a Shape) scaled to pixels and
// drawn once, with an optional fill and stroke, into a gg pixmap. Map
// renderers place it by its anchor, the first shape point, which is the
// pixel that lines up with the feature coordinate.
//
// # Quick Start
//
//	a, err := mapsym.NewArrow(mapsym.LineBoth(), 20,
//		mapsym.WithStroke(&mapsym.Stroke{Width: 2}))
//	if err != nil {
//		return err
//	}
//	img := a.SymbolImage()
//
// # Hit Detection
//
// Every arrow carries a second image used to test whether a pointer is over
// the symbol. Unfilled arrows are filled opaque black in that image so the
// area between the barbs is hittable. Filled arrows reuse their visible image.
//
// # Atlases
//
// WithAtlas packs the arrow into a shared pixmap instead of a private one;
// see package atlas for a ready implementation. Image then returns the
// shared page and Origin locates the arrow on it.
//
// # Caching
//
// Cache returns one *Arrow per distinct appearance, keyed by Checksum.
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive debug events
// for rendering and warnings for draw failures.
package mapsym
