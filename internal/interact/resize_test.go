package interact

import (
	"testing"

	"github.com/1broseidon/termfloat/internal/geometry"
)

// Test window baseline: rect (50,40) 300x200 in an 800x600 container,
// minimums 200x100.

func TestResizeRightHandleGrowsWidth(t *testing.T) {
	w := newTestWindow(nil)
	rz := NewResize(w)

	rz.Start(HandleRight, 349, 100)
	rz.Move(379, 100)

	g := w.Geometry()
	if g.Width != 330 {
		t.Fatalf("expected width 330 after +30 on right handle, got %d", g.Width)
	}
	if g.Left != 50 {
		t.Fatalf("right-edge resize moved the left edge to %d", g.Left)
	}
	if g.Right != 420 {
		t.Fatalf("expected right offset 420, got %d", g.Right)
	}
}

func TestResizeRightHandleClampsAtMinWidth(t *testing.T) {
	w := newTestWindow(nil)
	rz := NewResize(w)

	// Drag the right handle 500 cells left on a 300-wide window with
	// minWidth 200; width must stop at exactly 200.
	rz.Start(HandleRight, 349, 100)
	rz.Move(349-500, 100)

	g := w.Geometry()
	if g.Width != 200 {
		t.Fatalf("expected width clamped to 200, got %d", g.Width)
	}
	if g.Left != 50 {
		t.Fatalf("expected anchored left edge untouched, got %d", g.Left)
	}
}

func TestResizeTopLeftCornerClampsBothDimensions(t *testing.T) {
	w := newTestWindow(nil)
	rz := NewResize(w)

	rz.Start(HandleTopLeft, 50, 40)
	rz.Move(50+1000, 40+1000)

	g := w.Geometry()
	if g.Width != 200 || g.Height != 100 {
		t.Fatalf("expected clamp to minimums 200x100, got %dx%d", g.Width, g.Height)
	}
	// The opposite edges anchor the clamp.
	if g.Left != 50+300-200 {
		t.Fatalf("expected left pinned at %d, got %d", 50+300-200, g.Left)
	}
	if g.Top != 40+200-100 {
		t.Fatalf("expected top pinned at %d, got %d", 40+200-100, g.Top)
	}
}

func TestResizeCommitsEveryMove(t *testing.T) {
	w := newTestWindow(nil)
	rz := NewResize(w)

	rz.Start(HandleBottom, 200, 239)
	rz.Move(200, 249)
	if w.Geometry().Height != 210 {
		t.Fatalf("expected live commit to height 210, got %d", w.Geometry().Height)
	}
	rz.Move(200, 259)
	if w.Geometry().Height != 220 {
		t.Fatalf("expected live commit to height 220, got %d", w.Geometry().Height)
	}
	rz.End(200, 259)
	if w.Geometry().Height != 220 {
		t.Fatalf("release changed committed geometry to %d", w.Geometry().Height)
	}
}

func TestResizeMovesDeriveFromBaselineNotLastMove(t *testing.T) {
	w := newTestWindow(nil)
	rz := NewResize(w)

	rz.Start(HandleRight, 349, 100)
	rz.Move(349-500, 100) // clamped at min
	rz.Move(349+20, 100)  // back out: delta is against the baseline

	if got := w.Geometry().Width; got != 320 {
		t.Fatalf("expected width 320 after returning past baseline, got %d", got)
	}
}

func TestResizeDimensionInvariantsHoldEveryStep(t *testing.T) {
	w := newTestWindow(nil)
	rz := NewResize(w)
	c := w.Container()

	rz.Start(HandleBottomRight, 349, 239)
	for _, d := range []int{5, -40, 700, -700, 13} {
		rz.Move(349+d, 239+d)
		g := w.Geometry()
		if g.Width != c.Width-g.Left-g.Right {
			t.Fatalf("width invariant broken at delta %d: %+v", d, g)
		}
		if g.Height != c.Height-g.Top-g.Bottom {
			t.Fatalf("height invariant broken at delta %d: %+v", d, g)
		}
		if g.Width < w.MinWidth() || g.Height < w.MinHeight() {
			t.Fatalf("minimum size violated at delta %d: %dx%d", d, g.Width, g.Height)
		}
	}
}

func TestResizeReentrantStartIsIgnored(t *testing.T) {
	w := newTestWindow(nil)
	rz := NewResize(w)

	rz.Start(HandleRight, 349, 100)
	rz.Start(HandleLeft, 50, 100) // ignored: capture already live
	rz.Move(379, 100)

	if g := w.Geometry(); g.Left != 50 || g.Width != 330 {
		t.Fatalf("expected original handle still active, got %+v", g)
	}
}

func TestHandleEdges(t *testing.T) {
	cases := []struct {
		handle Handle
		want   []Edge
	}{
		{HandleTop, []Edge{EdgeTop}},
		{HandleTopRight, []Edge{EdgeTop, EdgeRight}},
		{HandleRight, []Edge{EdgeRight}},
		{HandleBottomRight, []Edge{EdgeBottom, EdgeRight}},
		{HandleBottom, []Edge{EdgeBottom}},
		{HandleBottomLeft, []Edge{EdgeBottom, EdgeLeft}},
		{HandleLeft, []Edge{EdgeLeft}},
		{HandleTopLeft, []Edge{EdgeTop, EdgeLeft}},
	}
	for _, tc := range cases {
		got := tc.handle.Edges()
		if len(got) != len(tc.want) {
			t.Fatalf("handle %d: expected %d edges, got %d", tc.handle, len(tc.want), len(got))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("handle %d: expected edges %v, got %v", tc.handle, tc.want, got)
			}
		}
	}
	if HandleNone.Edges() != nil {
		t.Fatalf("expected no edges for HandleNone")
	}
}

func TestHandleAt(t *testing.T) {
	r := geometry.Rect{X: 10, Y: 5, Width: 20, Height: 10}
	cases := []struct {
		x, y int
		want Handle
	}{
		{10, 5, HandleTopLeft},
		{29, 5, HandleTopRight},
		{10, 14, HandleBottomLeft},
		{29, 14, HandleBottomRight},
		{15, 5, HandleTop},
		{15, 14, HandleBottom},
		{10, 8, HandleLeft},
		{29, 8, HandleRight},
		{15, 8, HandleNone}, // interior
		{9, 5, HandleNone},  // outside
	}
	for _, tc := range cases {
		if got := HandleAt(tc.x, tc.y, r); got != tc.want {
			t.Fatalf("HandleAt(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}
