package vg

// Texture is any paintable content source usable for a fill or a stroke.
// This is a sealed interface - only types in this package implement it.
//
// Supported textures:
//   - Solid: a single color
//   - *LinearGradient, *RadialGradient: multi-stop gradients
//   - Pattern: an image anchored at the local origin
type Texture interface {
	textureMarker()
}

// GradientStop is a color at a specific offset in a gradient.
// Offsets are in [0, 1]. Stops are evaluated in ascending-offset order;
// the caller is responsible for ordering, the renderer does not sort.
type GradientStop struct {
	Offset float64
	Color  Color
}

// Solid is a single-color texture.
type Solid struct {
	Color Color
}

func (Solid) textureMarker() {}

// LinearGradient is a linear color transition between two points.
type LinearGradient struct {
	Stops []GradientStop
	Start Point
	End   Point
}

func (*LinearGradient) textureMarker() {}

// NewLinearGradient creates a linear gradient from start to end.
func NewLinearGradient(start, end Point) *LinearGradient {
	return &LinearGradient{Start: start, End: end}
}

// AddStop appends a color stop and returns the gradient for chaining.
// Stops must be appended in ascending-offset order.
func (g *LinearGradient) AddStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// RadialGradient is a color transition between two circles.
type RadialGradient struct {
	Stops       []GradientStop
	Start       Point
	StartRadius float64
	End         Point
	EndRadius   float64
}

func (*RadialGradient) textureMarker() {}

// NewRadialGradient creates a radial gradient between a start circle and an
// end circle.
func NewRadialGradient(start Point, startRadius float64, end Point, endRadius float64) *RadialGradient {
	return &RadialGradient{
		Start:       start,
		StartRadius: startRadius,
		End:         end,
		EndRadius:   endRadius,
	}
}

// AddStop appends a color stop and returns the gradient for chaining.
// Stops must be appended in ascending-offset order.
func (g *RadialGradient) AddStop(offset float64, c Color) *RadialGradient {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// Pattern paints with an image anchored at the local origin.
// The backing image must expose a pixel buffer (see PixelViewer) for the
// CPU rasterizer to consume it.
type Pattern struct {
	Image Image
}

func (Pattern) textureMarker() {}
