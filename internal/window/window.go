// Package window implements the floating window entity: chrome state,
// visibility, stacking, and the caller-facing property setters. Interactive
// behaviors (drag, resize) are layered on top by the interact package.
package window

import (
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/1broseidon/termfloat/internal/geometry"
	"github.com/1broseidon/termfloat/internal/stack"
)

// Option keys recognized by Set with dedicated routing. Every other key is
// treated as a raw style property.
const (
	OptionTitle = "title"
	OptionTheme = "theme"
)

// Window is one floating window on a surface. It is created hidden and
// must be shown explicitly. A closed window is dead; create a new one
// instead of reviving it.
type Window struct {
	id        string
	geo       geometry.Geometry
	container geometry.Container

	hidden     bool
	stackOrder int

	title              string
	themeName          string
	ribbonColor        string
	footerVisible      bool
	closeButtonVisible bool

	minWidth  int
	minHeight int

	styles map[string]string
	body   []string

	// Presentational translation applied while a drag is in progress.
	// Never part of the committed geometry.
	offsetX int
	offsetY int

	registry *stack.Registry
	onRemove func()
	onClose  func()
	closed   bool
}

// New clones the template into a fresh hidden window, assigns the id (a
// generated ULID when empty), and forces it to the front of the stacking
// order.
func New(id string, tmpl Template, registry *stack.Registry, c geometry.Container) *Window {
	if id == "" {
		id = ulid.Make().String()
	}
	w := &Window{
		id:                 id,
		container:          c,
		hidden:             true,
		title:              tmpl.Title,
		themeName:          tmpl.Theme,
		ribbonColor:        tmpl.RibbonColor,
		footerVisible:      tmpl.ShowFooter,
		closeButtonVisible: !tmpl.HideCloseButton,
		minWidth:           tmpl.MinWidth,
		minHeight:          tmpl.MinHeight,
		styles:             make(map[string]string),
		registry:           registry,
	}
	w.geo = geometry.Compute(geometry.Rect{
		X:      tmpl.Left,
		Y:      tmpl.Top,
		Width:  tmpl.Width,
		Height: tmpl.Height,
	}, c)
	w.BringToFront(true)
	return w
}

// ID returns the window's identity.
func (w *Window) ID() string { return w.id }

// StackOrder returns the window's current stacking order.
func (w *Window) StackOrder() int { return w.stackOrder }

// Hidden reports whether the window is currently hidden.
func (w *Window) Hidden() bool { return w.hidden }

// Closed reports whether Close has been called.
func (w *Window) Closed() bool { return w.closed }

// Geometry returns the committed anchored geometry.
func (w *Window) Geometry() geometry.Geometry { return w.geo }

// Rect returns the committed on-surface rectangle.
func (w *Window) Rect() geometry.Rect { return w.geo.Rect() }

// RenderRect returns the rectangle to draw this frame: the committed
// position shifted by any live drag offset.
func (w *Window) RenderRect() geometry.Rect { return w.geo.Offset(w.offsetX, w.offsetY) }

// Container returns the surface dimensions the geometry is anchored to.
func (w *Window) Container() geometry.Container { return w.container }

// SetContainer re-anchors the window against new surface dimensions,
// preserving the top-left position and size.
func (w *Window) SetContainer(c geometry.Container) {
	w.container = c
	w.geo.AnchorWidth(c)
	w.geo.AnchorHeight(c)
}

// ApplyGeometry commits a new placement. The whole six-field geometry is
// always written together; partial writes would leave stale offsets from
// before the interaction.
func (w *Window) ApplyGeometry(g geometry.Geometry) {
	w.geo = g
}

// SetRenderOffset sets the presentational drag translation.
func (w *Window) SetRenderOffset(dx, dy int) {
	w.offsetX = dx
	w.offsetY = dy
}

// ClearRenderOffset removes the presentational translation.
func (w *Window) ClearRenderOffset() {
	w.offsetX = 0
	w.offsetY = 0
}

// Show makes the window visible and forces it to the front.
func (w *Window) Show() *Window {
	w.hidden = false
	w.BringToFront(true)
	return w
}

// Hide makes the window invisible without touching its stacking order.
func (w *Window) Hide() *Window {
	w.hidden = true
	return w
}

// BringToFront assigns the window the next stacking order when it is not
// already on top, or unconditionally when force is set. Other windows'
// orders are never touched; new values simply keep exceeding old ones.
func (w *Window) BringToFront(force bool) {
	if force || w.stackOrder < w.registry.Max() {
		w.stackOrder = w.registry.Next()
	}
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

// SetTitle replaces the title and returns the window for chaining.
func (w *Window) SetTitle(title string) *Window {
	w.title = title
	return w
}

// Theme returns the current theme preset name.
func (w *Window) Theme() string { return w.themeName }

// SetTheme replaces the previously applied theme preset with the named
// one and returns the window for chaining.
func (w *Window) SetTheme(name string) *Window {
	w.themeName = name
	return w
}

// RibbonColor returns the ribbon override color, empty when the theme's
// own header/footer colors apply.
func (w *Window) RibbonColor() string { return w.ribbonColor }

// SetRibbonColor colors the header and footer ribbon.
func (w *Window) SetRibbonColor(color string) *Window {
	w.ribbonColor = color
	return w
}

// FooterVisible reports whether the footer ribbon is shown.
func (w *Window) FooterVisible() bool { return w.footerVisible }

// ShowFooter makes the footer ribbon visible.
func (w *Window) ShowFooter() *Window {
	w.footerVisible = true
	return w
}

// CloseButtonVisible reports whether the close button is shown.
func (w *Window) CloseButtonVisible() bool { return w.closeButtonVisible }

// HideCloseButton hides the close button.
func (w *Window) HideCloseButton() *Window {
	w.closeButtonVisible = false
	return w
}

// ShowCloseButton shows the close button.
func (w *Window) ShowCloseButton() *Window {
	w.closeButtonVisible = true
	return w
}

// MinWidth returns the minimum interactive width.
func (w *Window) MinWidth() int { return w.minWidth }

// MinHeight returns the minimum interactive height.
func (w *Window) MinHeight() int { return w.minHeight }

// SetMinSize sets the minimum dimensions honored during resize.
func (w *Window) SetMinSize(width, height int) *Window {
	w.minWidth = width
	w.minHeight = height
	return w
}

// Body returns the caller-supplied content lines.
func (w *Window) Body() []string { return w.body }

// SetBody replaces the content of the body region.
func (w *Window) SetBody(lines []string) *Window {
	w.body = lines
	return w
}

// Style returns the raw style property stored under key, if any.
func (w *Window) Style(key string) (string, bool) {
	v, ok := w.styles[key]
	return v, ok
}

// Set applies one named option. The title and theme options route to their
// setters; top, left, width and height adjust the geometry; every other
// name is stored as a raw style property on the window's root. Unknown
// names are cosmetically inert rather than errors.
func (w *Window) Set(name, value string) *Window {
	switch name {
	case OptionTitle:
		return w.SetTitle(value)
	case OptionTheme:
		return w.SetTheme(value)
	case "top":
		if n, ok := parseCells(value); ok {
			w.geo.Top = n
			w.geo.AnchorHeight(w.container)
		}
	case "left":
		if n, ok := parseCells(value); ok {
			w.geo.Left = n
			w.geo.AnchorWidth(w.container)
		}
	case "width":
		if n, ok := parseCells(value); ok {
			w.geo.Width = n
			w.geo.AnchorWidth(w.container)
		}
	case "height":
		if n, ok := parseCells(value); ok {
			w.geo.Height = n
			w.geo.AnchorHeight(w.container)
		}
	default:
		w.styles[name] = value
	}
	return w
}

// SetList applies Set for every entry. Keys are independent properties, so
// iteration order does not matter; each key is applied exactly once.
func (w *Window) SetList(options map[string]string) *Window {
	for name, value := range options {
		w.Set(name, value)
	}
	return w
}

// chromeAllowance covers the border cells around the content regions.
const chromeAllowance = 2

// closeButtonWidth is the header space reserved for the close button.
const closeButtonWidth = 4

// SizeToContent sets the window's dimensions to the natural size of its
// body, header and footer regions plus the border allowance, overriding
// any previous interactive size. Callers invoke it after changing content;
// the window does not detect content changes itself.
func (w *Window) SizeToContent() *Window {
	bodyWidth := 0
	for _, line := range w.body {
		if n := len([]rune(line)); n > bodyWidth {
			bodyWidth = n
		}
	}
	headerWidth := len([]rune(w.title))
	if w.closeButtonVisible {
		headerWidth += closeButtonWidth
	}

	width := bodyWidth
	if headerWidth > width {
		width = headerWidth
	}
	w.geo.Width = width + chromeAllowance

	height := len(w.body) + 1 // body plus header
	if w.footerVisible {
		height++
	}
	w.geo.Height = height + chromeAllowance

	w.geo.AnchorWidth(w.container)
	w.geo.AnchorHeight(w.container)
	return w
}

// SetRemoveHandler installs the surface-side detach hook invoked by Close.
func (w *Window) SetRemoveHandler(fn func()) {
	w.onRemove = fn
}

// SetCloseHandler installs a host callback invoked after the window is
// removed from the surface.
func (w *Window) SetCloseHandler(fn func()) {
	w.onClose = fn
}

// Close detaches the window's handlers and removes it from the surface.
// No operation on the window is valid afterwards.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.hidden = true
	if w.onRemove != nil {
		w.onRemove()
		w.onRemove = nil
	}
	if w.onClose != nil {
		w.onClose()
		w.onClose = nil
	}
}

// parseCells parses a numeric option value. A "px" suffix is accepted so
// callers carrying over pixel-styled option maps keep working.
func parseCells(v string) (int, bool) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
