package surface

import (
	"github.com/1broseidon/termfloat/internal/geometry"
	"github.com/1broseidon/termfloat/internal/interact"
	"github.com/1broseidon/termfloat/internal/window"
)

// PointerKind discriminates pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerEvent is one pointer event in surface coordinates. The host
// translates whatever its input layer delivers into this.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
}

// closeButtonWidth is the clickable span of the close button at the right
// end of the header row.
const closeButtonWidth = 3

// closeButtonRegion returns the header cells that act as the close button.
func closeButtonRegion(r geometry.Rect) geometry.Rect {
	return geometry.Rect{
		X:      r.X + r.Width - closeButtonWidth - 1,
		Y:      r.Y + 1,
		Width:  closeButtonWidth,
		Height: 1,
	}
}

// headerRow returns the y coordinate of the draggable header region,
// just inside the top border.
func headerRow(r geometry.Rect) int { return r.Y + 1 }

// Dispatch routes one pointer event. While an interaction capture is
// live, every move/up goes to it no matter where the pointer is — the
// pointer may travel far outside the window during a fast drag. At most
// one capture exists across all windows; pointer-downs during a live
// capture are ignored.
func (m *Manager) Dispatch(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		if m.active != nil {
			m.active.Move(ev.X, ev.Y)
		}
	case PointerUp:
		if m.active != nil {
			m.active.End(ev.X, ev.Y)
			m.active = nil
			m.activeWin = nil
		}
	case PointerDown:
		if m.active != nil {
			return
		}
		m.pointerDown(ev.X, ev.Y)
	}
}

func (m *Manager) pointerDown(x, y int) {
	w := m.topmostAt(x, y)
	if w == nil {
		return
	}
	r := w.Rect()

	if w.CloseButtonVisible() && closeButtonRegion(r).Contains(x, y) {
		w.Close()
		return
	}

	if rz, ok := m.resizes[w.ID()]; ok {
		if h := interact.HandleAt(x, y, r); h != interact.HandleNone {
			rz.Start(h, x, y)
			m.active = rz
			m.activeWin = w
			return
		}
	}

	if d, ok := m.drags[w.ID()]; ok && y == headerRow(r) {
		d.Start(x, y)
		m.active = d
		m.activeWin = w
		return
	}

	// Plain click inside the body: just focus.
	w.BringToFront(false)
}

// InteractionActive reports whether a drag or resize capture is live.
func (m *Manager) InteractionActive() bool { return m.active != nil }

// interactionWindow is exposed for tests.
func (m *Manager) interactionWindow() *window.Window { return m.activeWin }
