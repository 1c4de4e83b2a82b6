package vg

// Rasterizable is a drawable entity: either a vector path or a text run.
// This is a sealed interface - only *Path and *Text implement it.
type Rasterizable interface {
	rasterizableMarker()
}

// Content pairs a rasterizable with a placement transform and a depth.
type Content struct {
	Content   Rasterizable
	Transform Matrix
	Depth     int
}

// NewContent wraps a rasterizable with an identity transform and depth 0.
func NewContent(r Rasterizable) Content {
	return Content{Content: r, Transform: Identity()}
}

// WithTransform returns a copy of the content with the transform replaced.
func (c Content) WithTransform(m Matrix) Content {
	c.Transform = m
	return c
}

// WithDepth returns a copy of the content with the depth replaced.
func (c Content) WithDepth(depth int) Content {
	c.Depth = depth
	return c
}

// Object is a mutable handle to one drawable's transform, content and depth
// within a frame. The handle aliases the frame's internal storage: writes
// are visible to the next draw pass and to every other holder of the same
// handle. Mutation is last-write-wins.
//
// A handle obtained from a frame stays valid until the object is removed
// from that frame; operations on a stale handle are no-ops.
type Object interface {
	// Transform returns the object's current transform.
	Transform() Matrix

	// SetTransform replaces the object's transform.
	SetTransform(Matrix)

	// ApplyTransform concatenates the given transform onto the current one.
	ApplyTransform(Matrix)

	// Update replaces the object's drawable content.
	Update(Rasterizable)

	// Depth returns the object's depth value. Depth is tracked but the
	// draw pass renders in insertion order; see Frame.Draw.
	Depth() int

	// SetDepth replaces the object's depth value.
	SetDepth(int)
}

// Frame is the rendering-core contract consumed by the presentation loop:
// a renderable surface plus its ordered collection of drawable objects.
type Frame interface {
	// Add places content into the frame and returns a mutable handle to it.
	// Objects draw in insertion order.
	Add(Content) Object

	// Remove deletes an object from the frame. The handle becomes stale.
	Remove(Object)

	// SetViewport sets the world-space rectangle mapped onto the surface.
	SetViewport(Rect)

	// Resize replaces the backing surface with one of the given pixel
	// size, invalidating previously materialized snapshots.
	Resize(Point)

	// Size returns the current surface size in pixels.
	Size() Point

	// SetPixelRatio sets the device-pixel-to-logical-pixel scale factor
	// applied at draw time.
	SetPixelRatio(float64)

	// Measure returns the pixel bounding box of a drawable.
	Measure(Rasterizable) Point

	// Draw renders all objects onto the surface.
	Draw() error

	// Image draws and returns an immutable snapshot of the surface.
	// The snapshot is a copy; later draws do not change it.
	Image() (Image, error)

	// Clone returns a frame sharing this frame's state: the same surface,
	// viewport and object list, not a pixel copy.
	Clone() Frame
}
