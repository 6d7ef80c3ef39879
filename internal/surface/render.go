package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/termfloat/internal/geometry"
	"github.com/1broseidon/termfloat/internal/theme"
	"github.com/1broseidon/termfloat/internal/window"
)

// closeGlyph marks the close button in the header.
const closeGlyph = '✕'

// cell is one styled screen cell of the composited frame.
type cell struct {
	r  rune
	fg string
	bg string
}

// frameBuffer is the compositing grid for one frame.
type frameBuffer struct {
	cells  [][]cell
	width  int
	height int
}

func newFrameBuffer(c geometry.Container) *frameBuffer {
	cells := make([][]cell, c.Height)
	for y := range cells {
		row := make([]cell, c.Width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &frameBuffer{cells: cells, width: c.Width, height: c.Height}
}

// set writes one cell, clipping anything outside the surface. Windows may
// hang partially off the container during a drag.
func (fb *frameBuffer) set(x, y int, c cell) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.cells[y][x] = c
}

// fillRow paints a horizontal run with a single cell value.
func (fb *frameBuffer) fillRow(x, y, width int, c cell) {
	for i := 0; i < width; i++ {
		fb.set(x+i, y, c)
	}
}

// text writes a string run, truncated to maxWidth cells.
func (fb *frameBuffer) text(x, y int, s string, maxWidth int, fg, bg string) {
	for i, r := range []rune(s) {
		if i >= maxWidth {
			return
		}
		fb.set(x+i, y, cell{r: r, fg: fg, bg: bg})
	}
}

// Frame composites every visible window over the backdrop lines in
// ascending stacking order and returns the rendered view.
func (m *Manager) Frame(backdrop []string) string {
	fb := newFrameBuffer(m.container)

	for y, line := range backdrop {
		if y >= fb.height {
			break
		}
		for x, r := range []rune(line) {
			if x >= fb.width {
				break
			}
			fb.set(x, y, cell{r: r, fg: "240"})
		}
	}

	for _, w := range m.stacked() {
		m.drawWindow(fb, w)
	}

	return fb.render()
}

// drawWindow paints one window's chrome and content into the buffer.
func (m *Manager) drawWindow(fb *frameBuffer, w *window.Window) {
	r := w.RenderRect()
	if r.Width < 2 || r.Height < 2 {
		return
	}
	th := m.themes.Lookup(w.Theme())

	headerBg := th.HeaderBg
	footerBg := th.FooterBg
	if c := w.RibbonColor(); c != "" {
		headerBg = c
		footerBg = c
	}
	bodyFg := th.BodyFg
	bodyBg := th.BodyBg
	if v, ok := w.Style("foreground"); ok {
		bodyFg = v
	}
	if v, ok := w.Style("background"); ok {
		bodyBg = v
	}

	border := lipgloss.NormalBorder()
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	// Border frame.
	fb.set(r.X, r.Y, cell{r: firstRune(border.TopLeft), fg: th.Border, bg: bodyBg})
	fb.set(right, r.Y, cell{r: firstRune(border.TopRight), fg: th.Border, bg: bodyBg})
	fb.set(r.X, bottom, cell{r: firstRune(border.BottomLeft), fg: th.Border, bg: bodyBg})
	fb.set(right, bottom, cell{r: firstRune(border.BottomRight), fg: th.Border, bg: bodyBg})
	horizontal := cell{r: firstRune(border.Top), fg: th.Border, bg: bodyBg}
	fb.fillRow(r.X+1, r.Y, r.Width-2, horizontal)
	fb.fillRow(r.X+1, bottom, r.Width-2, horizontal)
	for y := r.Y + 1; y < bottom; y++ {
		fb.set(r.X, y, cell{r: firstRune(border.Left), fg: th.Border, bg: bodyBg})
		fb.set(right, y, cell{r: firstRune(border.Right), fg: th.Border, bg: bodyBg})
	}

	inner := r.Width - 2
	if inner <= 0 || r.Height < 3 {
		return
	}

	// Header row: title left, close button right.
	headerY := r.Y + 1
	fb.fillRow(r.X+1, headerY, inner, cell{r: ' ', fg: th.HeaderFg, bg: headerBg})
	titleWidth := inner
	if w.CloseButtonVisible() {
		titleWidth -= closeButtonWidth + 1
	}
	if titleWidth > 0 {
		fb.text(r.X+1, headerY, w.Title(), titleWidth, th.HeaderFg, headerBg)
	}
	if w.CloseButtonVisible() && inner >= closeButtonWidth {
		fb.set(right-2, headerY, cell{r: closeGlyph, fg: th.HeaderFg, bg: headerBg})
	}

	// Footer ribbon just inside the bottom border.
	bodyBottom := bottom - 1
	if w.FooterVisible() && r.Height >= 4 {
		fb.fillRow(r.X+1, bodyBottom, inner, cell{r: ' ', bg: footerBg})
		bodyBottom--
	}

	// Body region.
	body := w.Body()
	line := 0
	for y := headerY + 1; y <= bodyBottom; y++ {
		fb.fillRow(r.X+1, y, inner, cell{r: ' ', fg: bodyFg, bg: bodyBg})
		if line < len(body) {
			fb.text(r.X+1, y, body[line], inner, bodyFg, bodyBg)
		}
		line++
	}
}

// render flattens the buffer into a styled string, batching runs of cells
// sharing the same colors into one lipgloss render each.
func (fb *frameBuffer) render() string {
	var sb strings.Builder
	for y, row := range fb.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var fg, bg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleRun(run.String(), fg, bg))
			run.Reset()
		}
		for x, c := range row {
			if x == 0 || c.fg != fg || c.bg != bg {
				flush()
				fg, bg = c.fg, c.bg
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return sb.String()
}

func styleRun(s, fg, bg string) string {
	if fg == "" && bg == "" {
		return s
	}
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style.Render(s)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Themes returns the theme registry backing this surface.
func (m *Manager) Themes() *theme.Registry { return m.themes }
