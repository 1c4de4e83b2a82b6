package vg

import "errors"

// Sentinel errors for the rendering pipeline. Surface-state violations are
// explicit, recoverable errors rather than aborts; callers distinguish the
// retryable from the non-retryable with errors.Is.
var (
	// ErrSurfaceBusy is returned when a surface's pixels are requested
	// while another operation holds them. Retryable once that operation
	// completes.
	ErrSurfaceBusy = errors.New("vg: surface busy")

	// ErrNoPixelAccess is returned when a Pattern texture's image does not
	// expose a pixel buffer (does not implement PixelViewer).
	ErrNoPixelAccess = errors.New("vg: image does not expose a pixel buffer")

	// ErrCorruptGeometry is returned when a path contains non-finite
	// coordinates. Not retryable.
	ErrCorruptGeometry = errors.New("vg: corrupt geometry")
)
