package viewer

import "image/color"

// Key is a keyboard key the viewer reacts to, independent of the window library.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyB
	KeyD
	KeyQ
	KeyS
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// digitKeys are the menu shortcuts, in shape order.
var digitKeys = []Key{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}

// Input reports keyboard state for the current frame.
type Input interface {
	// Pressed reports whether k went down since the previous frame.
	Pressed(k Key) bool
	// Down reports whether k is currently held.
	Down(k Key) bool
}

// Surface receives the draw commands for a frame.
type Surface interface {
	Size() (width, height int)
	Clear(c color.RGBA)
	Circle(x, y, radius int, c color.RGBA)
	Line(x1, y1, x2, y2, thickness int, c color.RGBA)
	Text(s string, x, y, size int, c color.RGBA)
}

var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, A: 255}
)
