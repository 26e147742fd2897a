package shade

import "github.com/gogpu/gputypes"

// RenderTarget defines where the software pass writes shaded fragments.
//
// The interface exists so GPU-side collaborators can negotiate pixel
// formats with the reference implementation: a target always reports its
// format, and the engine's upload path matches texture formats against it.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixmap returns the CPU pixel buffer backing the target.
	Pixmap() *Pixmap
}

// PixmapTarget is a CPU-backed render target over a Pixmap. It is the
// only target the reference implementation ships; GPU texture and window
// surface targets live with the engine's render-pass scheduler.
type PixmapTarget struct {
	pm *Pixmap
}

// NewPixmapTarget creates a CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{pm: NewPixmap(width, height)}
}

// NewPixmapTargetFromPixmap wraps an existing pixmap as a render target.
// The pixmap is used directly without copying.
func NewPixmapTargetFromPixmap(pm *Pixmap) *PixmapTarget {
	return &PixmapTarget{pm: pm}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.pm.Width()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.pm.Height()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixmap returns the underlying pixel buffer.
// The returned pixmap shares memory with the target.
func (t *PixmapTarget) Pixmap() *Pixmap {
	return t.pm
}

// Ensure PixmapTarget implements RenderTarget.
var _ RenderTarget = (*PixmapTarget)(nil)
