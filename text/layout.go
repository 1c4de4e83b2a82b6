package text

import (
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/vg"
)

// placedGlyph is one glyph positioned in run-local pixels, y-down,
// relative to the run's anchor.
type placedGlyph struct {
	gid  font.GID
	x, y float64
}

type layoutResult struct {
	font   *font.Font
	glyphs []placedGlyph
	width  float64
	height float64
}

// layout breaks the run into lines, shapes each line, and positions
// every glyph relative to the run anchor according to the origin mode.
func (s *Shaper) layout(t *vg.Text) (*layoutResult, error) {
	f, err := s.fontFor(t.Weight)
	if err != nil {
		return nil, err
	}
	res := &layoutResult{font: f}
	if t.Content == "" {
		return res, nil
	}

	lineHeight := t.LineHeight
	if lineHeight <= 0 {
		lineHeight = t.Size
	}

	var lines []string
	for _, raw := range strings.Split(t.Content, "\n") {
		if t.Wrap == vg.WrapNormal && t.MaxWidth > 0 {
			lines = append(lines, s.wrapLine(f, raw, t)...)
		} else {
			lines = append(lines, raw)
		}
	}

	type shapedLine struct {
		glyphs []placedGlyph
		width  float64
	}
	var (
		shaped          []shapedLine
		ascent, descent float64
	)
	for i, line := range lines {
		runes := []rune(line)
		out := s.shapeRunes(f, runes, t.Size, baseDirection(runes))
		if i == 0 {
			ascent = fixedToFloat(out.LineBounds.Ascent)
			descent = fixedToFloat(out.LineBounds.Descent)
		}
		sl := shapedLine{}
		var x float64
		for _, g := range out.Glyphs {
			sl.glyphs = append(sl.glyphs, placedGlyph{
				gid: g.GlyphID,
				x:   x + fixedToFloat(g.XOffset),
				y:   -fixedToFloat(g.YOffset),
			})
			x += fixedToFloat(g.XAdvance) + t.LetterSpacing
		}
		sl.width = x
		shaped = append(shaped, sl)
		res.width = max(res.width, x)
	}

	res.height = ascent - descent + lineHeight*float64(len(shaped)-1)

	var baseline float64
	switch t.Origin {
	case vg.OriginBaseline:
		baseline = 0
	case vg.OriginMiddle:
		baseline = ascent - res.height/2
	default:
		baseline = ascent
	}
	for _, sl := range shaped {
		for _, g := range sl.glyphs {
			g.y += baseline
			res.glyphs = append(res.glyphs, g)
		}
		baseline += lineHeight
	}
	return res, nil
}

// wrapLine greedily packs words into lines no wider than MaxWidth.
// A word too wide on its own still gets its own line.
func (s *Shaper) wrapLine(f *font.Font, line string, t *vg.Text) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}
	var (
		out     []string
		current = words[0]
	)
	for _, word := range words[1:] {
		candidate := current + " " + word
		if s.lineAdvance(f, candidate, t) > t.MaxWidth {
			out = append(out, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(out, current)
}

func (s *Shaper) lineAdvance(f *font.Font, line string, t *vg.Text) float64 {
	runes := []rune(line)
	out := s.shapeRunes(f, runes, t.Size, baseDirection(runes))
	var x float64
	for _, g := range out.Glyphs {
		x += fixedToFloat(g.XAdvance) + t.LetterSpacing
	}
	return x
}

// baseDirection resolves the paragraph direction from the first strong
// bidi character, LTR when none is found.
func baseDirection(runes []rune) di.Direction {
	for _, r := range runes {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		case bidi.L:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}
