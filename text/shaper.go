// Package text shapes styled text runs into glyph outlines using
// go-text/typesetting's HarfBuzz implementation.
package text

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vg"
)

// ErrNoFont is reported when a shaper has no font loaded for any weight.
var ErrNoFont = errors.New("text: no font loaded")

// Shaper turns vg.Text runs into measured layouts and glyph outline
// paths. It is safe for concurrent use: parsed font.Font values are
// read-only and cached per weight, while font.Face and HarfbuzzShaper
// are not concurrent-safe and are created per call or pooled.
type Shaper struct {
	pool sync.Pool

	mu    sync.RWMutex
	fonts map[vg.Weight]*font.Font
}

// NewShaper creates an empty shaper. Load at least one font before
// shaping.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fonts: make(map[vg.Weight]*font.Font),
	}
}

// LoadFont parses TTF or OTF data and registers it for a weight.
// Loading the same weight again replaces the previous font.
func (s *Shaper) LoadFont(weight vg.Weight, data []byte) error {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("text: parse font for weight %d: %w", weight, err)
	}
	s.mu.Lock()
	s.fonts[weight] = face.Font
	s.mu.Unlock()
	return nil
}

// fontFor picks the loaded font nearest to the requested weight.
func (s *Shaper) fontFor(weight vg.Weight) (*font.Font, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.fonts[weight]; ok {
		return f, nil
	}
	var best *font.Font
	bestDist := -1
	for w, f := range s.fonts {
		d := int(w) - int(weight)
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = f, d
		}
	}
	if best == nil {
		return nil, ErrNoFont
	}
	return best, nil
}

// Measure returns the pixel extent of a text run: the widest line by
// the block height. Middle-origin runs report zero height since they
// straddle their anchor.
func (s *Shaper) Measure(t *vg.Text) (vg.Point, error) {
	layout, err := s.layout(t)
	if err != nil {
		return vg.Point{}, err
	}
	if t.Origin == vg.OriginMiddle {
		return vg.Pt(layout.width, 0), nil
	}
	return vg.Pt(layout.width, layout.height), nil
}

// Paths shapes the run into one closed path per glyph. Each path
// carries the glyph placement in its orientation and the run's color
// as its fill, so it renders like any other path.
func (s *Shaper) Paths(t *vg.Text) ([]*vg.Path, error) {
	layout, err := s.layout(t)
	if err != nil {
		return nil, err
	}

	face := font.NewFace(layout.font)
	scale := t.Size / float64(face.Upem())
	fill := &vg.Fill{Content: vg.Solid{Color: t.Color}}

	var paths []*vg.Path
	for _, g := range layout.glyphs {
		data := face.GlyphData(g.gid)
		outline, ok := data.(font.GlyphOutline)
		if !ok || len(outline.Segments) == 0 {
			continue
		}
		segs := outlineSegments(outline, scale)
		if len(segs) == 0 {
			continue
		}
		paths = append(paths, &vg.Path{
			Orientation: vg.Translate(g.x, g.y),
			Segments:    segs,
			Closed:      true,
			Fill:        fill,
		})
	}
	return paths, nil
}

// outlineSegments converts font-unit outline segments to path segments.
// Font outlines are y-up; the frame draws y-down, so Y flips here.
func outlineSegments(outline font.GlyphOutline, scale float64) []vg.Segment {
	pt := func(p opentype.SegmentPoint) vg.Point {
		return vg.Pt(float64(p.X)*scale, -float64(p.Y)*scale)
	}
	segs := make([]vg.Segment, 0, len(outline.Segments))
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			segs = append(segs, vg.MoveTo{Point: pt(seg.Args[0])})
		case opentype.SegmentOpLineTo:
			segs = append(segs, vg.LineTo{Point: pt(seg.Args[0])})
		case opentype.SegmentOpQuadTo:
			segs = append(segs, vg.QuadraticTo{
				Handle: pt(seg.Args[0]),
				Point:  pt(seg.Args[1]),
			})
		case opentype.SegmentOpCubeTo:
			segs = append(segs, vg.CubicTo{
				Handle1: pt(seg.Args[0]),
				Handle2: pt(seg.Args[1]),
				Point:   pt(seg.Args[2]),
			})
		}
	}
	return segs
}

// shapeRunes runs HarfBuzz over one line of runes.
func (s *Shaper) shapeRunes(f *font.Font, runes []rune, size float64, dir di.Direction) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.DefaultLanguage(),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)
	return out
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
