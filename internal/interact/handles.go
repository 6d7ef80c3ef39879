package interact

import "github.com/1broseidon/termfloat/internal/geometry"

// Edge identifies one side of the window perimeter.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Handle identifies one of the eight resize hit-regions around the window
// perimeter. Corners control two adjacent edges, sides control one.
type Handle int

const (
	HandleNone Handle = iota
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
	HandleTopLeft
)

// Edges returns the window edges this handle adjusts.
func (h Handle) Edges() []Edge {
	switch h {
	case HandleTop:
		return []Edge{EdgeTop}
	case HandleTopRight:
		return []Edge{EdgeTop, EdgeRight}
	case HandleRight:
		return []Edge{EdgeRight}
	case HandleBottomRight:
		return []Edge{EdgeBottom, EdgeRight}
	case HandleBottom:
		return []Edge{EdgeBottom}
	case HandleBottomLeft:
		return []Edge{EdgeBottom, EdgeLeft}
	case HandleLeft:
		return []Edge{EdgeLeft}
	case HandleTopLeft:
		return []Edge{EdgeTop, EdgeLeft}
	}
	return nil
}

// HandleAt maps a pointer position on the window rectangle to the resize
// handle under it, or HandleNone when the point is not on the perimeter.
// The four corner cells resolve to corner handles; the remaining border
// cells resolve to side handles.
func HandleAt(x, y int, r geometry.Rect) Handle {
	if !r.Contains(x, y) {
		return HandleNone
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	onLeft := x == r.X
	onRight := x == right
	onTop := y == r.Y
	onBottom := y == bottom

	switch {
	case onTop && onLeft:
		return HandleTopLeft
	case onTop && onRight:
		return HandleTopRight
	case onBottom && onLeft:
		return HandleBottomLeft
	case onBottom && onRight:
		return HandleBottomRight
	case onTop:
		return HandleTop
	case onBottom:
		return HandleBottom
	case onLeft:
		return HandleLeft
	case onRight:
		return HandleRight
	}
	return HandleNone
}
