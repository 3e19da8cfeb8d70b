// Command arrowdemo renders the arrow presets onto a PNG contact sheet.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/mapsym"
	"github.com/gogpu/mapsym/atlas"
)

const (
	margin      = 16
	labelHeight = 22
	minCell     = 160
)

type entry struct {
	name  string
	arrow *mapsym.Arrow
}

func main() {
	var (
		scale       = flag.Float64("scale", 40, "arrow scale in pixels")
		strokeWidth = flag.Float64("stroke", 2, "stroke width, 0 for no stroke")
		strokeColor = flag.String("color", "#1f3a93", "stroke color")
		fill        = flag.String("fill", "", "fill color, empty for no fill")
		preset      = flag.String("preset", "", "render a single preset")
		useAtlas    = flag.Bool("atlas", false, "pack arrows into a shared atlas")
		zoom        = flag.Int("zoom", 2, "pixel zoom of the sheet")
		output      = flag.String("output", "arrows.png", "output file")
		list        = flag.Bool("list", false, "list presets and exit")
		verbose     = flag.Bool("v", false, "log render and atlas events")
	)
	flag.Parse()

	if *list {
		for _, p := range mapsym.Presets() {
			fmt.Println(p.Name)
		}
		return
	}
	if *verbose {
		mapsym.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *zoom < 1 {
		*zoom = 1
	}

	opts, err := styleOptions(*strokeWidth, *strokeColor, *fill)
	if err != nil {
		log.Fatalf("Invalid style: %v", err)
	}
	var mgr *atlas.Manager
	if *useAtlas {
		mgr = atlas.NewDefaultManager()
		opts = append(opts, mapsym.WithAtlas(mgr))
	}

	presets := mapsym.Presets()
	if *preset != "" {
		shape, ok := mapsym.PresetByName(*preset)
		if !ok {
			log.Fatalf("Unknown preset %q, see -list", *preset)
		}
		presets = []mapsym.Preset{{Name: *preset, Shape: shape}}
	}

	cache := mapsym.NewCache(len(presets), opts...)
	entries := make([]entry, 0, len(presets))
	for _, p := range presets {
		a, err := cache.Arrow(p.Shape, *scale)
		if err != nil {
			log.Fatalf("Failed to render %s: %v", p.Name, err)
		}
		entries = append(entries, entry{name: p.Name, arrow: a})
	}

	sheet, err := contactSheet(entries, *zoom)
	if err != nil {
		log.Fatalf("Failed to draw sheet: %v", err)
	}
	if err := savePNG(*output, sheet); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if mgr != nil {
		s := mgr.Stats()
		log.Printf("Atlas: %d page(s), %d symbol(s), %.1f%% used\n", s.Pages, s.Symbols, s.Utilization*100)
	}
	log.Printf("Sheet saved to %s (%dx%d)\n", *output, sheet.Bounds().Dx(), sheet.Bounds().Dy())
}

func styleOptions(width float64, strokeHex, fillHex string) ([]mapsym.Option, error) {
	var opts []mapsym.Option
	if width > 0 {
		c, err := colorful.Hex(strokeHex)
		if err != nil {
			return nil, fmt.Errorf("stroke color: %w", err)
		}
		opts = append(opts, mapsym.WithStroke(&mapsym.Stroke{Color: c, Width: width}))
	}
	if fillHex != "" {
		c, err := colorful.Hex(fillHex)
		if err != nil {
			return nil, fmt.Errorf("fill color: %w", err)
		}
		opts = append(opts, mapsym.WithFill(&mapsym.Fill{Color: c}))
	}
	return opts, nil
}

// contactSheet lays the arrows out in a row. Labels are drawn with gg, the
// arrows are copied in afterwards with nearest-neighbour zoom so single
// pixels stay visible.
func contactSheet(entries []entry, zoom int) (*image.RGBA, error) {
	cell := minCell
	for _, e := range entries {
		sz := e.arrow.Size().Mul(zoom)
		cell = max(cell, sz.X+2*margin, sz.Y+2*margin+labelHeight)
	}
	w, h := cell*len(entries), cell

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	defer func() { _ = source.Close() }()
	dc.SetFont(source.Face(13))
	dc.SetRGB(0.2, 0.2, 0.2)

	title := cases.Title(language.English)
	for i, e := range entries {
		label := title.String(strings.ReplaceAll(e.name, "-", " "))
		dc.DrawString(label, float64(i*cell+margin), float64(h-margin/2))
	}

	sheet := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(sheet, image.Point{}, dc.Image(), dc.Image().Bounds(), xdraw.Src, nil)

	for i, e := range entries {
		sym := e.arrow.SymbolImage()
		at := image.Pt(i*cell+margin, margin)
		dst := image.Rectangle{Min: at, Max: at.Add(sym.Bounds().Size().Mul(zoom))}
		xdraw.NearestNeighbor.Scale(sheet, dst, sym, sym.Bounds(), xdraw.Over, nil)
		markAnchor(sheet, at, e.arrow.Anchor(), zoom)
	}
	return sheet, nil
}

// markAnchor draws a small cross where the symbol meets its coordinate.
func markAnchor(dst *image.RGBA, at image.Point, anchor gg.Point, zoom int) {
	red := color.RGBA{R: 0xe0, A: 0xff}
	cx := at.X + int(anchor.X*float64(zoom))
	cy := at.Y + int(anchor.Y*float64(zoom))
	for d := -3; d <= 3; d++ {
		dst.SetRGBA(cx+d, cy, red)
		dst.SetRGBA(cx, cy+d, red)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
