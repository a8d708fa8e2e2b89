package debug

import (
	"fmt"
	"image/color"
	"runtime"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var green = color.RGBA{G: 160, A: 255}

// TextSurface is the part of a draw surface the overlay needs.
type TextSurface interface {
	Size() (width, height int)
	Text(s string, x, y, size int, c color.RGBA)
}

// TextMeasurer is optionally implemented by surfaces that can report text width,
// so the overlay can right-align. Others get a fixed-width estimate.
type TextMeasurer interface {
	MeasureText(s string, size int) int
}

// Debug holds runtime overlays (FPS, heap). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays at the top-right of s. fps is the current frame rate.
// Text is only recomputed every updateInterval frames.
func (d *Debug) Draw(s TextSurface, fps int) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := padding
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		drawRight(s, d.lastFpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(s, d.lastMemText, y)
	}
}

func drawRight(s TextSurface, text string, y int) {
	w, _ := s.Size()
	tw := len(text) * fontSize / 2
	if m, ok := s.(TextMeasurer); ok {
		tw = m.MeasureText(text, fontSize)
	}
	s.Text(text, w-tw-padding, y, fontSize, green)
}
