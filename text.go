package vg

// Weight is a font weight. The mapping onto concrete font faces is a
// text-backend concern.
type Weight int

const (
	WeightHairline Weight = iota
	WeightThin
	WeightLight
	WeightNormal
	WeightMedium
	WeightSemiBold
	WeightBold
	WeightExtraBold
	WeightHeavy
)

// Wrap is a line-wrapping mode.
type Wrap int

const (
	// WrapNone lays the run out on a single line.
	WrapNone Wrap = iota
	// WrapNormal wraps at word boundaries when MaxWidth is exceeded.
	WrapNormal
)

// Origin anchors a text run vertically relative to its position.
type Origin int

const (
	// OriginTop places the top of the first line at the local origin.
	OriginTop Origin = iota
	// OriginBaseline places the first baseline at the local origin.
	OriginBaseline
	// OriginMiddle centers the run vertically on the local origin.
	OriginMiddle
)

// Text is a styled text run. Layout and glyph painting are delegated to a
// text-layout backend; the core only requires measuring and rendering.
type Text struct {
	Content string
	Size    float64
	Weight  Weight

	// MaxWidth constrains layout width in logical pixels; 0 means
	// unconstrained.
	MaxWidth float64

	// LineHeight is the baseline-to-baseline distance. Defaults to Size.
	LineHeight float64

	// LetterSpacing is extra advance added after each glyph.
	LetterSpacing float64

	Wrap   Wrap
	Color  Color
	Origin Origin
}

func (*Text) rasterizableMarker() {}

// NewText creates a text run with defaults: size 16, normal weight, no
// wrapping, black, top origin.
func NewText(content string) *Text {
	return &Text{
		Content:    content,
		Size:       16,
		Weight:     WeightNormal,
		LineHeight: 16,
		Color:      Black,
	}
}

// WithSize sets the font size and, if the line height still tracks the old
// size, the line height too.
func (t *Text) WithSize(size float64) *Text {
	if t.LineHeight == t.Size {
		t.LineHeight = size
	}
	t.Size = size
	return t
}

// WithWeight sets the font weight.
func (t *Text) WithWeight(w Weight) *Text {
	t.Weight = w
	return t
}

// WithMaxWidth constrains the layout width and enables word wrapping.
func (t *Text) WithMaxWidth(w float64) *Text {
	t.MaxWidth = w
	t.Wrap = WrapNormal
	return t
}

// WithLineHeight sets the baseline-to-baseline distance.
func (t *Text) WithLineHeight(h float64) *Text {
	t.LineHeight = h
	return t
}

// WithLetterSpacing sets the extra per-glyph advance.
func (t *Text) WithLetterSpacing(s float64) *Text {
	t.LetterSpacing = s
	return t
}

// WithColor sets the text color.
func (t *Text) WithColor(c Color) *Text {
	t.Color = c
	return t
}

// WithOrigin sets the vertical anchor.
func (t *Text) WithOrigin(o Origin) *Text {
	t.Origin = o
	return t
}
