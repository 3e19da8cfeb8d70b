// Package atlas packs many small map symbols into shared square pixmaps.
//
// A Manager owns two parallel sets of pages: one for the visible symbols
// and one for their hit-detection renderings. Every symbol gets the same
// offset in both sets, so a single AtlasRegion describes where to find it.
//
//	m := atlas.NewDefaultManager()
//	a, err := mapsym.NewArrow(mapsym.LineBoth(), 10, mapsym.WithAtlas(m))
//
// Pages start at Config.InitialSize pixels and each new page doubles the
// previous one up to Config.MaxSize. Symbols larger than MaxSize minus
// Config.Space are rejected.
package atlas
