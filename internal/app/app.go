// Package app is the demo host: a bubbletea program that composites the
// window surface over a backdrop and translates terminal mouse events
// into surface pointer events. It plays the role of the embedding
// application, which only creates windows, fills their bodies, and reacts
// to close.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/termfloat/internal/config"
	"github.com/1broseidon/termfloat/internal/geometry"
	"github.com/1broseidon/termfloat/internal/surface"
	"github.com/1broseidon/termfloat/internal/theme"
	"github.com/1broseidon/termfloat/internal/window"
)

// themeReloadedMsg triggers a redraw after a theme file changed on disk.
type themeReloadedMsg struct{ name string }

// Model is the root bubbletea model.
type Model struct {
	cfg     *config.Config
	manager *surface.Manager
	logger  *slog.Logger

	viewport   viewport.Model
	contentWin *window.Window

	width   int
	height  int
	ready   bool
	status  string
	spawned int
}

// New creates the demo model. The surface is sized on the first
// WindowSizeMsg.
func New(cfg *config.Config, themes *theme.Registry, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		cfg:     cfg,
		manager: surface.NewManager(geometry.Container{Width: 80, Height: 24}, themes, cfg.StackBaseline),
		logger:  logger,
	}
}

// Manager exposes the surface, mainly for the theme watcher wiring.
func (m *Model) Manager() *surface.Manager { return m.manager }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.manager.Resize(geometry.Container{Width: msg.Width, Height: msg.Height})
		if !m.ready {
			m.ready = true
			m.seedWindows()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case themeReloadedMsg:
		m.status = fmt.Sprintf("theme %q reloaded", msg.name)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		m.spawnWindow()
	case "t":
		m.cycleTheme()
	case "s":
		if w := m.manager.Topmost(); w != nil {
			w.SizeToContent()
			m.status = "sized to content"
		}
	case "h":
		if w := m.manager.Topmost(); w != nil {
			w.Hide()
			m.status = fmt.Sprintf("hid %q", w.Title())
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.manager.Dispatch(surface.PointerEvent{Kind: surface.PointerDown, X: msg.X, Y: msg.Y})
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			m.scrollContent(msg)
		}
	case tea.MouseActionMotion:
		m.manager.Dispatch(surface.PointerEvent{Kind: surface.PointerMove, X: msg.X, Y: msg.Y})
	case tea.MouseActionRelease:
		m.manager.Dispatch(surface.PointerEvent{Kind: surface.PointerUp, X: msg.X, Y: msg.Y})
	}
	return m, nil
}

// scrollContent forwards wheel events over the content window to its
// viewport and refreshes the window body from the viewport view.
func (m *Model) scrollContent(msg tea.MouseMsg) {
	if m.contentWin == nil || m.contentWin.Closed() {
		return
	}
	if !m.contentWin.Rect().Contains(msg.X, msg.Y) {
		return
	}
	m.viewport, _ = m.viewport.Update(msg)
	m.contentWin.SetBody(strings.Split(m.viewport.View(), "\n"))
}

// seedWindows creates the initial demo windows once the surface size is
// known.
func (m *Model) seedWindows() {
	// A scrollable document window backed by a bubbles viewport.
	tmpl := m.cfg.Template("default")
	tmpl.Title = "Document"
	tmpl.ShowFooter = true
	m.viewport = viewport.New(tmpl.Width-2, tmpl.Height-4)
	m.viewport.SetContent(demoDocument())
	m.contentWin = m.manager.Create("document", tmpl,
		surface.Draggable(),
		surface.Resizable(),
		surface.OnClose(func() {
			m.contentWin = nil
			m.status = "document closed"
		}),
	)
	m.contentWin.SetBody(strings.Split(m.viewport.View(), "\n"))
	m.contentWin.Show()

	// A plain fixed palette window: draggable, not resizable.
	palette := m.cfg.Template("default")
	palette.Title = "Palette"
	palette.Left = 8
	palette.Top = 6
	palette.Width = 28
	palette.Height = 9
	w := m.manager.Create("palette", palette,
		surface.Draggable(),
		surface.OnClose(func() { m.status = "palette closed" }),
	)
	w.SetTheme("accent").
		SetBody([]string{"n  new window", "t  cycle theme", "s  size to content", "h  hide topmost", "q  quit"}).
		Show()
}

func (m *Model) spawnWindow() {
	m.spawned++
	tmpl := m.cfg.Template("default")
	tmpl.Title = fmt.Sprintf("Window %d", m.spawned)
	tmpl.Left = 6 + 3*m.spawned
	tmpl.Top = 3 + m.spawned
	id := fmt.Sprintf("spawned-%d", m.spawned)
	w := m.manager.Create(id, tmpl,
		surface.Draggable(),
		surface.Resizable(),
		surface.OnClose(func() { m.status = fmt.Sprintf("closed %s", id) }),
	)
	w.SetBody([]string{"drag the title bar,", "resize from any border."}).Show()
	m.status = fmt.Sprintf("spawned %s", id)
}

func (m *Model) cycleTheme() {
	w := m.manager.Topmost()
	if w == nil {
		return
	}
	names := []string{"default", "dark", "light", "accent"}
	next := names[0]
	for i, name := range names {
		if name == w.Theme() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	w.SetTheme(next)
	m.status = fmt.Sprintf("theme %q on %q", next, w.Title())
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready || m.height <= 0 {
		return "starting..."
	}
	backdrop := make([]string, m.height)
	backdrop[0] = "termfloat — floating windows demo"
	if m.height > 1 {
		hint := "n new · t theme · s size · h hide · q quit"
		if m.status != "" {
			hint += "   [" + m.status + "]"
		}
		backdrop[1] = hint
	}
	for y := 2; y < m.height; y++ {
		backdrop[y] = strings.Repeat("·  ", m.width/3+1)
	}
	return m.manager.Frame(backdrop)
}

func demoDocument() string {
	var sb strings.Builder
	sb.WriteString("Floating window layer demo.\n\n")
	sb.WriteString("This window is draggable by its\n")
	sb.WriteString("title bar and resizable from all\n")
	sb.WriteString("eight border handles. Scroll here\n")
	sb.WriteString("with the mouse wheel.\n\n")
	for i := 1; i <= 30; i++ {
		fmt.Fprintf(&sb, "line %02d of the document body\n", i)
	}
	return sb.String()
}
