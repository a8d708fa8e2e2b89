package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wireframe-viewer/internal/viewer"
)

// Options configures the window opened by Run.
type Options struct {
	Width, Height int
	Title         string
	TargetFPS     int
}

// Run opens the window and drives the main loop. Each frame it calls update
// (input), then draw between BeginDrawing and EndDrawing; draw is expected to
// clear the frame. The loop ends when update returns false or the window is closed.
func Run(opts Options, update func(in viewer.Input) bool, draw func(s *Window)) {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC reaches update so quitting goes through the viewer
	rl.SetTargetFPS(int32(opts.TargetFPS))

	w := &Window{}
	for !rl.WindowShouldClose() {
		if !update(w) {
			return
		}
		rl.BeginDrawing()
		draw(w)
		rl.EndDrawing()
	}
}

// Window adapts the raylib window to viewer.Surface and viewer.Input.
// Only valid inside Run.
type Window struct{}

var keyMap = map[viewer.Key][]int32{
	viewer.KeyUp:     {rl.KeyUp},
	viewer.KeyDown:   {rl.KeyDown},
	viewer.KeyLeft:   {rl.KeyLeft},
	viewer.KeyRight:  {rl.KeyRight},
	viewer.KeyEnter:  {rl.KeyEnter, rl.KeyKpEnter},
	viewer.KeyEscape: {rl.KeyEscape},
	viewer.KeyB:      {rl.KeyB},
	viewer.KeyD:      {rl.KeyD},
	viewer.KeyQ:      {rl.KeyQ},
	viewer.KeyS:      {rl.KeyS},
	viewer.KeyZ:      {rl.KeyZ},
	viewer.Key1:      {rl.KeyOne, rl.KeyKp1},
	viewer.Key2:      {rl.KeyTwo, rl.KeyKp2},
	viewer.Key3:      {rl.KeyThree, rl.KeyKp3},
	viewer.Key4:      {rl.KeyFour, rl.KeyKp4},
	viewer.Key5:      {rl.KeyFive, rl.KeyKp5},
	viewer.Key6:      {rl.KeySix, rl.KeyKp6},
	viewer.Key7:      {rl.KeySeven, rl.KeyKp7},
	viewer.Key8:      {rl.KeyEight, rl.KeyKp8},
	viewer.Key9:      {rl.KeyNine, rl.KeyKp9},
}

func (w *Window) Pressed(k viewer.Key) bool {
	for _, rk := range keyMap[k] {
		if rl.IsKeyPressed(rk) {
			return true
		}
	}
	return false
}

func (w *Window) Down(k viewer.Key) bool {
	for _, rk := range keyMap[k] {
		if rl.IsKeyDown(rk) {
			return true
		}
	}
	return false
}

// Size uses the screen size so drawing matches the 2D coordinate system.
func (w *Window) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (w *Window) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (w *Window) Circle(x, y, radius int, c color.RGBA) {
	rl.DrawCircle(int32(x), int32(y), float32(radius), c)
}

func (w *Window) Line(x1, y1, x2, y2, thickness int, c color.RGBA) {
	rl.DrawLineEx(rl.NewVector2(float32(x1), float32(y1)), rl.NewVector2(float32(x2), float32(y2)), float32(thickness), c)
}

func (w *Window) Text(s string, x, y, size int, c color.RGBA) {
	rl.DrawText(s, int32(x), int32(y), int32(size), c)
}

// MeasureText reports the width of s in the default raylib font.
func (w *Window) MeasureText(s string, size int) int {
	return int(rl.MeasureText(s, int32(size)))
}

// FPS returns the measured frame rate.
func (w *Window) FPS() int {
	return int(rl.GetFPS())
}
