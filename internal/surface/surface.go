// Package surface is the composition root for floating windows: it owns
// the container dimensions, the stacking registry, window creation from
// templates, pointer-event dispatch, and frame rendering.
package surface

import (
	"sort"

	"github.com/1broseidon/termfloat/internal/geometry"
	"github.com/1broseidon/termfloat/internal/interact"
	"github.com/1broseidon/termfloat/internal/stack"
	"github.com/1broseidon/termfloat/internal/theme"
	"github.com/1broseidon/termfloat/internal/window"
)

// capture receives every pointer move/up while an interaction is live,
// regardless of where the pointer is. Both interaction controllers
// implement it.
type capture interface {
	Move(x, y int)
	End(x, y int)
}

// Manager hosts all windows on one surface. It is not safe for concurrent
// use; the host event loop drives it from a single goroutine.
type Manager struct {
	container geometry.Container
	registry  *stack.Registry
	themes    *theme.Registry

	windows []*window.Window
	drags   map[string]*interact.Drag
	resizes map[string]*interact.Resize

	active    capture
	activeWin *window.Window

	defaultMinWidth  int
	defaultMinHeight int
}

// NewManager creates a surface manager for a container of the given size.
// A nil theme registry gets the built-in presets; a stack baseline of zero
// falls back to the default.
func NewManager(c geometry.Container, themes *theme.Registry, stackBaseline int) *Manager {
	if themes == nil {
		themes = theme.NewRegistry()
	}
	return &Manager{
		container:        c,
		registry:         stack.NewRegistry(stackBaseline),
		themes:           themes,
		drags:            make(map[string]*interact.Drag),
		resizes:          make(map[string]*interact.Resize),
		defaultMinWidth:  12,
		defaultMinHeight: 5,
	}
}

// SetDefaultMinSize sets the minimum dimensions applied to templates that
// carry none of their own.
func (m *Manager) SetDefaultMinSize(width, height int) {
	if width > 0 {
		m.defaultMinWidth = width
	}
	if height > 0 {
		m.defaultMinHeight = height
	}
}

// Container returns the surface dimensions.
func (m *Manager) Container() geometry.Container { return m.container }

// Resize re-anchors the surface and every window against new container
// dimensions.
func (m *Manager) Resize(c geometry.Container) {
	m.container = c
	for _, w := range m.windows {
		w.SetContainer(c)
	}
}

// WindowOption attaches an optional capability to a window at creation.
type WindowOption func(m *Manager, w *window.Window)

// Draggable wires the header-drag behavior.
func Draggable() WindowOption {
	return func(m *Manager, w *window.Window) {
		m.drags[w.ID()] = interact.NewDrag(w)
	}
}

// Resizable wires the eight perimeter resize handles.
func Resizable() WindowOption {
	return func(m *Manager, w *window.Window) {
		m.resizes[w.ID()] = interact.NewResize(w)
	}
}

// OnClose registers a host callback invoked after the window is removed.
func OnClose(fn func()) WindowOption {
	return func(_ *Manager, w *window.Window) {
		w.SetCloseHandler(fn)
	}
}

// Create clones the template into a new hidden window on this surface and
// attaches the requested capabilities. An empty id gets a generated one.
func (m *Manager) Create(id string, tmpl window.Template, opts ...WindowOption) *window.Window {
	tmpl.Normalize(m.defaultMinWidth, m.defaultMinHeight)
	w := window.New(id, tmpl, m.registry, m.container)
	w.SetRemoveHandler(func() { m.remove(w) })
	m.windows = append(m.windows, w)
	for _, opt := range opts {
		opt(m, w)
	}
	return w
}

// remove detaches the window's interaction controllers and takes it off
// the surface. Any live capture belonging to the window is dropped so no
// listener references it afterwards.
func (m *Manager) remove(w *window.Window) {
	if m.activeWin == w {
		m.active = nil
		m.activeWin = nil
	}
	delete(m.drags, w.ID())
	delete(m.resizes, w.ID())
	for i, other := range m.windows {
		if other == w {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			break
		}
	}
}

// Windows returns the windows on the surface in creation order.
func (m *Manager) Windows() []*window.Window {
	return m.windows
}

// Get returns the window with the given id, or nil.
func (m *Manager) Get(id string) *window.Window {
	for _, w := range m.windows {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

// Topmost returns the visible window with the highest stacking order, or
// nil when nothing is shown.
func (m *Manager) Topmost() *window.Window {
	var top *window.Window
	for _, w := range m.windows {
		if w.Hidden() {
			continue
		}
		if top == nil || w.StackOrder() > top.StackOrder() {
			top = w
		}
	}
	return top
}

// topmostAt returns the visible window with the highest stacking order
// containing the point, or nil.
func (m *Manager) topmostAt(x, y int) *window.Window {
	var top *window.Window
	for _, w := range m.windows {
		if w.Hidden() || !w.Rect().Contains(x, y) {
			continue
		}
		if top == nil || w.StackOrder() > top.StackOrder() {
			top = w
		}
	}
	return top
}

// stacked returns the visible windows in ascending stacking order.
func (m *Manager) stacked() []*window.Window {
	out := make([]*window.Window, 0, len(m.windows))
	for _, w := range m.windows {
		if !w.Hidden() {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StackOrder() < out[j].StackOrder()
	})
	return out
}
