package viewer

import (
	"fmt"
	"image/color"

	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/geometry"
	"wireframe-viewer/internal/logger"
	"wireframe-viewer/internal/shapes"
)

// Mode is the state of the viewer.
type Mode int

const (
	ModeMenu Mode = iota
	ModeViewing
)

const (
	fontSize       = 36
	menuX          = 20
	menuY          = 30
	menuLineHeight = 40
	hintBottom     = 50
	backHint       = "Press 'B' to go back to menu"
)

// spin binds a pair of keys to a per-frame rotation direction.
type spin struct {
	keys       [2]Key
	dx, dy, dz float64
}

// spins are checked in this order every frame; all that are held apply.
var spins = []spin{
	{keys: [2]Key{KeyZ, KeyUp}, dx: 1},
	{keys: [2]Key{KeyS, KeyDown}, dx: -1},
	{keys: [2]Key{KeyD, KeyRight}, dy: 1},
	{keys: [2]Key{KeyQ, KeyLeft}, dy: -1},
}

// App is the menu/viewing state machine. It owns at most one model at a time:
// the shape being viewed. Returning to the menu drops it.
type App struct {
	prefs    config.Prefs
	log      *logger.Logger
	kinds    []shapes.Kind
	selected int
	mode     Mode
	model    *geometry.Model
	quit     bool
}

// New returns an App showing the menu with the first shape selected.
func New(prefs config.Prefs, log *logger.Logger) *App {
	return &App{prefs: prefs, log: log, kinds: shapes.Kinds()}
}

func (a *App) Mode() Mode {
	return a.mode
}

// Selected returns the shape highlighted in the menu.
func (a *App) Selected() shapes.Kind {
	return a.kinds[a.selected]
}

// Model returns the shape being viewed, or nil in the menu.
func (a *App) Model() *geometry.Model {
	return a.model
}

// Update handles one frame of input. It returns false once the user asked to quit.
func (a *App) Update(in Input) bool {
	if a.quit {
		return false
	}
	if in.Pressed(KeyEscape) {
		a.log.Log("quit")
		a.quit = true
		return false
	}
	switch a.mode {
	case ModeMenu:
		a.updateMenu(in)
	case ModeViewing:
		a.updateViewing(in)
	}
	return true
}

func (a *App) updateMenu(in Input) {
	n := len(a.kinds)
	if in.Pressed(KeyUp) {
		a.selected = (a.selected - 1 + n) % n
	}
	if in.Pressed(KeyDown) {
		a.selected = (a.selected + 1) % n
	}
	for i := 0; i < n && i < len(digitKeys); i++ {
		if in.Pressed(digitKeys[i]) {
			a.selected = i
			a.open()
			return
		}
	}
	if in.Pressed(KeyEnter) {
		a.open()
	}
}

// open builds the selected shape and switches to viewing. A shape that fails
// to build is logged and the menu stays up.
func (a *App) open() {
	k := a.kinds[a.selected]
	m, err := shapes.Build(k, a.prefs.Size)
	if err != nil {
		a.log.Logf("open %s: %v", k, err)
		return
	}
	a.model = m
	a.mode = ModeViewing
	a.log.Logf("viewing %s", k)
}

func (a *App) updateViewing(in Input) {
	if in.Pressed(KeyB) {
		a.log.Logf("back to menu from %s", a.Selected())
		a.model = nil
		a.mode = ModeMenu
		return
	}
	speed := a.prefs.RotationSpeed
	for _, s := range spins {
		if in.Down(s.keys[0]) || in.Down(s.keys[1]) {
			a.model.Rotate(s.dx*speed, s.dy*speed, s.dz*speed)
		}
	}
}

// MenuLines returns the menu text, one entry per line.
func (a *App) MenuLines() []string {
	lines := []string{"Select a model to view:"}
	for i, k := range a.kinds {
		lines = append(lines, fmt.Sprintf("Press %d for %s", i+1, k))
	}
	return append(lines, "Press ESC to quit")
}

// Draw renders the current mode onto s.
func (a *App) Draw(s Surface) {
	s.Clear(White)
	switch a.mode {
	case ModeMenu:
		a.drawMenu(s)
	case ModeViewing:
		a.drawModel(s)
	}
}

func (a *App) drawMenu(s Surface) {
	for i, line := range a.MenuLines() {
		c := Black
		if i == a.selected+1 {
			c = Red
		}
		s.Text(line, menuX, menuY+i*menuLineHeight, fontSize, c)
	}
}

func (a *App) drawModel(s Surface) {
	w, h := s.Size()
	DrawWireframe(s, a.model.DrawList(w/2, h/2), a.prefs.PointRadius, a.prefs.LineThickness, Black)
	s.Text(backHint, menuX, h-hintBottom, fontSize, Black)
}

// DrawWireframe sends a model's projected points and lines to s.
func DrawWireframe(s Surface, dl geometry.DrawList, radius, thickness int, c color.RGBA) {
	for _, p := range dl.Points {
		s.Circle(p.X, p.Y, radius, c)
	}
	for _, l := range dl.Lines {
		s.Line(l.From.X, l.From.Y, l.To.X, l.To.Y, thickness, c)
	}
}
