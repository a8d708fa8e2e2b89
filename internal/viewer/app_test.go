package viewer

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/geometry"
	"wireframe-viewer/internal/logger"
	"wireframe-viewer/internal/shapes"
)

// fakeInput holds the keys pressed this frame and the keys held down.
type fakeInput struct {
	pressed map[Key]bool
	down    map[Key]bool
}

func press(keys ...Key) fakeInput {
	in := fakeInput{pressed: map[Key]bool{}, down: map[Key]bool{}}
	for _, k := range keys {
		in.pressed[k] = true
	}
	return in
}

func hold(keys ...Key) fakeInput {
	in := fakeInput{pressed: map[Key]bool{}, down: map[Key]bool{}}
	for _, k := range keys {
		in.down[k] = true
	}
	return in
}

func (f fakeInput) Pressed(k Key) bool { return f.pressed[k] }
func (f fakeInput) Down(k Key) bool    { return f.down[k] }

// recorder is a Surface that records every call as a string.
type recorder struct {
	w, h  int
	calls []string
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Clear(c color.RGBA) {
	r.calls = append(r.calls, fmt.Sprintf("clear %v", c))
}
func (r *recorder) Circle(x, y, radius int, c color.RGBA) {
	r.calls = append(r.calls, fmt.Sprintf("circle %d,%d r%d", x, y, radius))
}
func (r *recorder) Line(x1, y1, x2, y2, thickness int, c color.RGBA) {
	r.calls = append(r.calls, fmt.Sprintf("line %d,%d-%d,%d t%d", x1, y1, x2, y2, thickness))
}
func (r *recorder) Text(s string, x, y, size int, c color.RGBA) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %d,%d %v", s, x, y, c == Red))
}

func newApp(t *testing.T) *App {
	t.Helper()
	return New(config.Default(), logger.New(""))
}

func TestMenuNavigationWraps(t *testing.T) {
	a := newApp(t)
	assert.Equal(t, shapes.Cube, a.Selected())

	a.Update(press(KeyUp))
	assert.Equal(t, shapes.Octahedron, a.Selected())

	a.Update(press(KeyDown))
	a.Update(press(KeyDown))
	assert.Equal(t, shapes.Tetrahedron, a.Selected())
	assert.Equal(t, ModeMenu, a.Mode())
	assert.Nil(t, a.Model())
}

func TestEnterOpensSelectedShape(t *testing.T) {
	a := newApp(t)
	a.Update(press(KeyDown))
	a.Update(press(KeyDown))

	require.True(t, a.Update(press(KeyEnter)))
	assert.Equal(t, ModeViewing, a.Mode())
	require.NotNil(t, a.Model())
	assert.Len(t, a.Model().Vertices(), 5)
}

func TestDigitOpensShape(t *testing.T) {
	a := newApp(t)
	a.Update(press(Key4))
	assert.Equal(t, ModeViewing, a.Mode())
	assert.Equal(t, shapes.Octahedron, a.Selected())
	assert.Len(t, a.Model().Vertices(), 6)
}

func TestBackToMenuDropsModel(t *testing.T) {
	a := newApp(t)
	a.Update(press(KeyEnter))
	require.NotNil(t, a.Model())

	a.Update(press(KeyB))
	assert.Equal(t, ModeMenu, a.Mode())
	assert.Nil(t, a.Model())
	assert.Equal(t, shapes.Cube, a.Selected())
}

func TestEscapeQuits(t *testing.T) {
	for _, setup := range []fakeInput{press(), press(KeyEnter)} {
		a := newApp(t)
		a.Update(setup)
		assert.False(t, a.Update(press(KeyEscape)))
		assert.False(t, a.Update(press()))
	}
}

func TestHeldKeysRotate(t *testing.T) {
	speed := config.Default().RotationSpeed
	tests := []struct {
		name       string
		keys       []Key
		dx, dy, dz float64
	}{
		{"Z", []Key{KeyZ}, speed, 0, 0},
		{"Up", []Key{KeyUp}, speed, 0, 0},
		{"S", []Key{KeyS}, -speed, 0, 0},
		{"Down", []Key{KeyDown}, -speed, 0, 0},
		{"D", []Key{KeyD}, 0, speed, 0},
		{"Right", []Key{KeyRight}, 0, speed, 0},
		{"Q", []Key{KeyQ}, 0, -speed, 0},
		{"Left", []Key{KeyLeft}, 0, -speed, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t)
			a.Update(press(KeyEnter))

			want, err := shapes.Build(shapes.Cube, config.Default().Size)
			require.NoError(t, err)
			want.Rotate(tt.dx, tt.dy, tt.dz)

			a.Update(hold(tt.keys...))
			assertSameVertices(t, want.Vertices(), a.Model().Vertices())
		})
	}
}

func TestHeldKeysCombineInOrder(t *testing.T) {
	speed := config.Default().RotationSpeed
	a := newApp(t)
	a.Update(press(KeyEnter))

	want, err := shapes.Build(shapes.Cube, config.Default().Size)
	require.NoError(t, err)
	want.Rotate(speed, 0, 0)
	want.Rotate(0, speed, 0)

	a.Update(hold(KeyZ, KeyD))
	assertSameVertices(t, want.Vertices(), a.Model().Vertices())
}

func TestRotationKeysIgnoredInMenu(t *testing.T) {
	a := newApp(t)
	a.Update(hold(KeyZ, KeyD))
	assert.Nil(t, a.Model())
	assert.Equal(t, shapes.Cube, a.Selected())
}

func TestOpenFailureStaysInMenu(t *testing.T) {
	prefs := config.Default()
	prefs.Size = 0
	log := logger.New("")
	a := New(prefs, log)

	a.Update(press(KeyEnter))
	assert.Equal(t, ModeMenu, a.Mode())
	assert.Nil(t, a.Model())
	require.NotEmpty(t, log.Lines())
	assert.Contains(t, log.Lines()[len(log.Lines())-1], "open Cube")
}

func TestDrawMenu(t *testing.T) {
	a := newApp(t)
	a.Update(press(KeyDown))

	r := &recorder{w: 800, h: 600}
	a.Draw(r)
	assert.Equal(t, []string{
		fmt.Sprintf("clear %v", White),
		`text "Select a model to view:" 20,30 false`,
		`text "Press 1 for Cube" 20,70 false`,
		`text "Press 2 for Tetrahedron" 20,110 true`,
		`text "Press 3 for Pyramid" 20,150 false`,
		`text "Press 4 for Octahedron" 20,190 false`,
		`text "Press ESC to quit" 20,230 false`,
	}, r.calls)
}

func TestDrawViewing(t *testing.T) {
	a := newApp(t)
	a.Update(press(Key2))

	r := &recorder{w: 800, h: 600}
	a.Draw(r)

	dl := a.Model().DrawList(400, 300)
	want := []string{fmt.Sprintf("clear %v", White)}
	for _, p := range dl.Points {
		want = append(want, fmt.Sprintf("circle %d,%d r5", p.X, p.Y))
	}
	for _, l := range dl.Lines {
		want = append(want, fmt.Sprintf("line %d,%d-%d,%d t2", l.From.X, l.From.Y, l.To.X, l.To.Y))
	}
	want = append(want, `text "Press 'B' to go back to menu" 20,550 false`)
	assert.Equal(t, want, r.calls)
	assert.Len(t, dl.Points, 4)
	assert.Len(t, dl.Lines, 6)
}

func assertSameVertices(t *testing.T, want, got []geometry.Vector3) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		d := want[i].Sub(got[i])
		assert.Less(t, math.Abs(d.X)+math.Abs(d.Y)+math.Abs(d.Z), 1e-9, "vertex %d", i)
	}
}
