package atlas

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/gogpu/mapsym"
)

// Manager places symbols on atlas pages. It implements mapsym.Atlas.
//
// Manager is safe for concurrent use. Draw callbacks run synchronously
// inside Add while the manager is locked and must not call back into it.
type Manager struct {
	mu       sync.Mutex
	config   Config
	pages    []*page
	hitPages []*page
	regions  map[string]mapsym.AtlasRegion

	// Statistics (atomic for lock-free reads)
	hits     atomic.Uint64
	misses   atomic.Uint64
	rejected atomic.Uint64
}

var _ mapsym.Atlas = (*Manager)(nil)

// NewManager creates a new atlas manager.
func NewManager(config Config) (*Manager, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		config:  config,
		regions: make(map[string]mapsym.AtlasRegion),
	}, nil
}

// NewDefaultManager creates a new atlas manager with default configuration.
func NewDefaultManager() *Manager {
	m, _ := NewManager(DefaultConfig())
	return m
}

// Config returns the manager configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Add reserves a width x height slot for key on a visible page and on a
// hit-detection page, drawing the symbol with draw and hitDraw. A nil
// hitDraw leaves the hit-detection slot empty.
//
// A non-empty key that was added before returns the existing region
// without drawing. Add returns false if the symbol plus spacing is larger
// than Config.MaxSize.
func (m *Manager) Add(key string, width, height int, draw, hitDraw mapsym.DrawFunc) (mapsym.AtlasRegion, bool) {
	if width+m.config.Space > m.config.MaxSize || height+m.config.Space > m.config.MaxSize {
		m.rejected.Add(1)
		mapsym.Logger().Debug("atlas: symbol rejected",
			slog.String("key", key),
			slog.Int("width", width),
			slog.Int("height", height),
			slog.Int("maxSize", m.config.MaxSize))
		return mapsym.AtlasRegion{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if key != "" {
		if region, ok := m.regions[key]; ok {
			m.hits.Add(1)
			return region, true
		}
	}
	m.misses.Add(1)

	// Both page sets receive the same sequence of requests, so the
	// offsets always agree.
	p, off := m.place(&m.pages, false, width, height, draw)
	hp, _ := m.place(&m.hitPages, true, width, height, hitDraw)

	region := mapsym.AtlasRegion{
		Image:    p.pixmap,
		HitImage: hp.pixmap,
		OffsetX:  off.X,
		OffsetY:  off.Y,
	}
	if key != "" {
		m.regions[key] = region
	}
	return region, true
}

// place puts the symbol on the first page with room, appending pages of
// growing size until one fits. A fresh MaxSize page always fits a symbol
// that passed the size check in Add. Caller must hold m.mu.
func (m *Manager) place(pages *[]*page, hit bool, width, height int, draw mapsym.DrawFunc) (*page, image.Point) {
	for i := 0; ; i++ {
		if i == len(*pages) {
			size := m.config.InitialSize
			if i > 0 {
				size = min((*pages)[i-1].size*2, m.config.MaxSize)
			}
			*pages = append(*pages, newPage(size, m.config.Space))
			mapsym.Logger().Debug("atlas: page added",
				slog.Bool("hit", hit),
				slog.Int("index", i),
				slog.Int("size", size))
		}
		p := (*pages)[i]
		if off, ok := p.add(width, height, draw); ok {
			return p, off
		}
	}
}

// Region returns the region of a previously added key.
func (m *Manager) Region(key string) (mapsym.AtlasRegion, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	region, ok := m.regions[key]
	return region, ok
}

// Pages returns the visible atlas pixmaps in creation order.
func (m *Manager) Pages() []*gg.Pixmap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pixmaps(m.pages)
}

// HitPages returns the hit-detection atlas pixmaps in creation order.
func (m *Manager) HitPages() []*gg.Pixmap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pixmaps(m.hitPages)
}

func pixmaps(pages []*page) []*gg.Pixmap {
	out := make([]*gg.Pixmap, len(pages))
	for i, p := range pages {
		out[i] = p.pixmap
	}
	return out
}

// Stats describes atlas usage.
type Stats struct {
	// Hits counts Add calls answered from an existing key.
	Hits uint64
	// Misses counts Add calls that placed a new symbol.
	Misses uint64
	// Rejected counts symbols larger than MaxSize.
	Rejected uint64
	// Pages is the number of visible pages.
	Pages int
	// Symbols is the number of distinct keys stored.
	Symbols int
	// Utilization is the reserved fraction of all visible page area.
	Utilization float64
}

// Stats returns atlas statistics.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	total, free := 0, 0
	for _, p := range m.pages {
		total += p.size * p.size
		free += p.freeArea()
	}
	s := Stats{
		Pages:   len(m.pages),
		Symbols: len(m.regions),
	}
	m.mu.Unlock()

	if total > 0 {
		s.Utilization = float64(total-free) / float64(total)
	}
	s.Hits = m.hits.Load()
	s.Misses = m.misses.Load()
	s.Rejected = m.rejected.Load()
	return s
}
