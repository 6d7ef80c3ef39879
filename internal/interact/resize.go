package interact

import (
	"github.com/1broseidon/termfloat/internal/geometry"
	"github.com/1broseidon/termfloat/internal/window"
)

// Resize adjusts a window's edges through the eight perimeter handles.
// States: idle -> resizing -> idle.
//
// Unlike drag, resize commits the full geometry on every pointer move so
// the dimensions update live; release only ends the capture. A
// pointer-down while already resizing is ignored.
type Resize struct {
	win    *window.Window
	active bool
	handle Handle
	startX int
	startY int

	// Baseline captured at pointer-down. All per-move candidates are
	// derived from it, never from the mutated live geometry.
	start     geometry.Geometry
	container geometry.Container
}

// NewResize attaches resize capability to a window.
func NewResize(w *window.Window) *Resize {
	return &Resize{win: w}
}

// Window returns the window this controller resizes.
func (r *Resize) Window() *window.Window { return r.win }

// Active reports whether a resize is in progress.
func (r *Resize) Active() bool { return r.active }

// Start begins a resize from the given handle at the pointer position,
// capturing the full starting geometry and container dimensions as the
// baseline. Brings the window to the front. Ignored while active.
func (r *Resize) Start(h Handle, x, y int) {
	if r.active || h == HandleNone {
		return
	}
	r.active = true
	r.handle = h
	r.startX = x
	r.startY = y
	r.start = r.win.Geometry()
	r.container = r.win.Container()
	r.win.BringToFront(false)
}

// Move recomputes every controlled edge from the baseline and the pointer
// delta, clamps each so the opposite dimension never drops below its
// minimum, rederives width/height, and commits the whole geometry.
func (r *Resize) Move(x, y int) {
	if !r.active {
		return
	}
	dx := x - r.startX
	dy := y - r.startY

	g := r.win.Geometry()
	for _, edge := range r.handle.Edges() {
		switch edge {
		case EdgeTop:
			g.Top = clampOffset(r.start.Top+dy, r.start.Top, r.start.Height, r.win.MinHeight())
		case EdgeBottom:
			g.Bottom = clampOffset(r.start.Bottom-dy, r.start.Bottom, r.start.Height, r.win.MinHeight())
		case EdgeLeft:
			g.Left = clampOffset(r.start.Left+dx, r.start.Left, r.start.Width, r.win.MinWidth())
		case EdgeRight:
			g.Right = clampOffset(r.start.Right-dx, r.start.Right, r.start.Width, r.win.MinWidth())
		}
	}
	g.Rederive(r.container)
	r.win.ApplyGeometry(g)
}

// End releases the capture. Geometry was already committed move by move.
func (r *Resize) End(x, y int) {
	if !r.active {
		return
	}
	r.active = false
	r.handle = HandleNone
}

// clampOffset caps a candidate edge offset so the dimension measured
// against the opposite edge never drops below min. The ceiling is the
// offset at which the dimension is exactly min; candidates beyond it are
// pinned there, candidates below pass through unchanged.
func clampOffset(candidate, startOffset, startDim, min int) int {
	limit := startOffset + startDim - min
	if candidate > limit {
		return limit
	}
	return candidate
}
