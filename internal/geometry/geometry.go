// Package geometry models window placement as distances from all four
// edges of the containing surface, so opposite edges can be adjusted
// independently during interactive resize.
package geometry

// Rect is a window position and size in surface cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Container holds the dimensions of the surface all windows live in.
type Container struct {
	Width  int
	Height int
}

// Geometry is an anchored window placement: offsets from each container
// edge plus the window's own dimensions. All six fields are kept mutually
// consistent; Width = container.Width - Left - Right and
// Height = container.Height - Top - Bottom hold after every update.
type Geometry struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Width  int
	Height int
}

// Compute measures a window rectangle against the container and returns
// offsets from each of the container's four edges plus raw dimensions.
// Pure function of the inputs.
func Compute(win Rect, c Container) Geometry {
	return Geometry{
		Top:    win.Y,
		Left:   win.X,
		Right:  c.Width - win.X - win.Width,
		Bottom: c.Height - win.Y - win.Height,
		Width:  win.Width,
		Height: win.Height,
	}
}

// Rect converts the anchored placement back to a top-left rectangle.
func (g Geometry) Rect() Rect {
	return Rect{X: g.Left, Y: g.Top, Width: g.Width, Height: g.Height}
}

// Rederive restores Width and Height from the four edge offsets. Called
// after individual edges have been moved so the dimension invariants hold
// again.
func (g *Geometry) Rederive(c Container) {
	g.Width = c.Width - g.Left - g.Right
	g.Height = c.Height - g.Top - g.Bottom
}

// AnchorWidth recomputes the Right offset for the current Left and Width.
// Used when width is set directly rather than via an edge drag.
func (g *Geometry) AnchorWidth(c Container) {
	g.Right = c.Width - g.Left - g.Width
}

// AnchorHeight recomputes the Bottom offset for the current Top and Height.
func (g *Geometry) AnchorHeight(c Container) {
	g.Bottom = c.Height - g.Top - g.Height
}

// Offset returns the rectangle translated by (dx, dy). The anchored
// geometry itself is not modified; this is the presentational shift used
// while a drag is in progress.
func (g Geometry) Offset(dx, dy int) Rect {
	r := g.Rect()
	r.X += dx
	r.Y += dy
	return r
}
