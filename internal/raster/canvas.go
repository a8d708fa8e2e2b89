// Package raster draws viewer frames into an in-memory image, for snapshots
// and for running without a window.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is a viewer.Surface backed by an RGBA image.
type Canvas struct {
	img  *image.RGBA
	face font.Face
}

// New returns a width×height canvas, transparent until cleared.
func New(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// Image returns the underlying image. It is drawn into by later calls.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if image.Pt(x, y).In(c.img.Bounds()) {
		c.img.SetRGBA(x, y, col)
	}
}

// Circle fills a disc of the given radius centered on (x, y).
func (c *Canvas) Circle(x, y, radius int, col color.RGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.set(x+dx, y+dy, col)
			}
		}
	}
}

// Line draws from (x1, y1) to (x2, y2) by stepping along the longer axis.
// Thickness above 1 stamps a square brush at every step.
func (c *Canvas) Line(x1, y1, x2, y2, thickness int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		c.brush(x1, y1, thickness, col)
		return
	}
	xInc, yInc := dx/steps, dy/steps
	x, y := float64(x1), float64(y1)
	for i := 0; i <= int(steps); i++ {
		c.brush(int(math.Round(x)), int(math.Round(y)), thickness, col)
		x += xInc
		y += yInc
	}
}

func (c *Canvas) brush(x, y, thickness int, col color.RGBA) {
	if thickness <= 1 {
		c.set(x, y, col)
		return
	}
	lo := -(thickness - 1) / 2
	for oy := lo; oy < lo+thickness; oy++ {
		for ox := lo; ox < lo+thickness; ox++ {
			c.set(x+ox, y+oy, col)
		}
	}
}

// Text draws s with its top-left corner at (x, y) in a fixed bitmap font.
// size is ignored.
func (c *Canvas) Text(s string, x, y, size int, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// MeasureText returns the width of s in pixels.
func (c *Canvas) MeasureText(s string, size int) int {
	return font.MeasureString(c.face, s).Ceil()
}

// Save encodes the canvas to path. The format follows the extension:
// .jpg/.jpeg, .bmp, anything else PNG.
func (c *Canvas) Save(path string) error {
	enc := imgio.PNGEncoder()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		enc = imgio.JPEGEncoder(95)
	case ".bmp":
		enc = imgio.BMPEncoder()
	}
	return imgio.Save(path, c.img, enc)
}
