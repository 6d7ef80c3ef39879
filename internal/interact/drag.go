// Package interact implements the pointer-driven interaction state
// machines layered on a window: dragging by the header and resizing by the
// eight perimeter handles. Controllers are attached to a window at
// creation time by the surface; a window without a controller simply has
// no interactive behavior.
package interact

import (
	"github.com/1broseidon/termfloat/internal/geometry"
	"github.com/1broseidon/termfloat/internal/window"
)

// Drag moves a window by its header. States: idle -> dragging -> idle.
//
// While dragging, only a presentational render offset is updated per
// pointer move; the committed geometry is recomputed and written once on
// release. A pointer-down while already dragging is ignored.
type Drag struct {
	win    *window.Window
	active bool
	startX int
	startY int
}

// NewDrag attaches drag capability to a window.
func NewDrag(w *window.Window) *Drag {
	return &Drag{win: w}
}

// Window returns the window this controller moves.
func (d *Drag) Window() *window.Window { return d.win }

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// Start begins a drag at the pointer position. Brings the window to the
// front. Ignored when a drag is already in progress.
func (d *Drag) Start(x, y int) {
	if d.active {
		return
	}
	d.active = true
	d.startX = x
	d.startY = y
	d.win.BringToFront(false)
}

// Move updates the presentational translation to the pointer delta from
// the drag origin. O(1) per move; no geometry is committed.
func (d *Drag) Move(x, y int) {
	if !d.active {
		return
	}
	d.win.SetRenderOffset(x-d.startX, y-d.startY)
}

// End commits the drag: the translation and the original position collapse
// into the real on-surface rectangle, which is re-anchored against the
// container and written as the full six-field geometry. The translation is
// then cleared and the capture released.
func (d *Drag) End(x, y int) {
	if !d.active {
		return
	}
	d.win.SetRenderOffset(x-d.startX, y-d.startY)
	g := geometry.Compute(d.win.RenderRect(), d.win.Container())
	d.win.ApplyGeometry(g)
	d.win.ClearRenderOffset()
	d.active = false
}
