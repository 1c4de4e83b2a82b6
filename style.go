package vg

// StrokeCap is the shape of stroked line endpoints.
type StrokeCap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt StrokeCap = iota
	// CapRound ends the stroke with a semicircle.
	CapRound
)

// StrokeJoin is the shape of stroked line joins.
type StrokeJoin int

const (
	// JoinMiter extends the outer edges until they meet.
	JoinMiter StrokeJoin = iota
	// JoinRound rounds the corner with an arc.
	JoinRound
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
)

// Stroke describes how a path outline is painted.
type Stroke struct {
	// Content is the paint source for the stroke.
	Content Texture

	// Width is the line width in logical pixels.
	Width float64

	Cap  StrokeCap
	Join StrokeJoin
}

// DefaultStroke returns the default stroke: solid black, width 1, butt cap,
// miter join.
func DefaultStroke() Stroke {
	return Stroke{
		Content: Solid{Color: Black},
		Width:   1,
		Cap:     CapButt,
		Join:    JoinMiter,
	}
}

// Fill describes how a path interior is painted.
type Fill struct {
	Content Texture
}

// FillWith creates a Fill with the given texture.
func FillWith(content Texture) Fill {
	return Fill{Content: content}
}

// Shadow is a purely additive drop shadow rendered beneath a path,
// scaled and offset independently of the path itself.
type Shadow struct {
	Color  Color
	Offset Point
	Blur   float64
	Spread float64
}

// NewShadow creates a shadow of the given color with no offset, blur or
// spread.
func NewShadow(c Color) Shadow {
	return Shadow{Color: c}
}

// WithBlur returns a copy of the shadow with the blur amount set.
func (s Shadow) WithBlur(amount float64) Shadow {
	s.Blur = amount
	return s
}

// WithOffset returns a copy of the shadow with the offset set.
func (s Shadow) WithOffset(distance Point) Shadow {
	s.Offset = distance
	return s
}

// WithSpread returns a copy of the shadow with the spread set.
// Spread grows the silhouette around the path's bounding box center.
func (s Shadow) WithSpread(spread float64) Shadow {
	s.Spread = spread
	return s
}

// StrokeBuilder provides a fluent interface for stroke construction.
type StrokeBuilder struct {
	stroke Stroke
}

// NewStroke starts a stroke builder with the given paint source and width.
// Cap and join default to butt and miter.
func NewStroke(content Texture, width float64) *StrokeBuilder {
	b := &StrokeBuilder{stroke: DefaultStroke()}
	b.stroke.Content = content
	b.stroke.Width = width
	return b
}

// CapRound sets the round line cap.
func (b *StrokeBuilder) CapRound() *StrokeBuilder {
	b.stroke.Cap = CapRound
	return b
}

// JoinBevel sets the bevel line join.
func (b *StrokeBuilder) JoinBevel() *StrokeBuilder {
	b.stroke.Join = JoinBevel
	return b
}

// JoinRound sets the round line join.
func (b *StrokeBuilder) JoinRound() *StrokeBuilder {
	b.stroke.Join = JoinRound
	return b
}

// Finalize returns the built stroke.
func (b *StrokeBuilder) Finalize() Stroke {
	return b.stroke
}
