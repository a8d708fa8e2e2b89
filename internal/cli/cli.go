// Package cli implements the headless viewer subcommands: list, dump and snapshot.
package cli

import (
	"flag"
	"fmt"
	"io"

	"wireframe-viewer/internal/commands"
	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/geometry"
	"wireframe-viewer/internal/raster"
	"wireframe-viewer/internal/shapes"
	"wireframe-viewer/internal/viewer"
)

// Register adds the headless subcommands to reg. Output goes to out.
func Register(reg *commands.Registry, out io.Writer) {
	registerList(reg, out)
	registerDump(reg, out)
	registerSnapshot(reg, out)
}

// LoadPrefs loads and validates the config at path.
func LoadPrefs(path string) (config.Prefs, error) {
	p, err := config.Load(path)
	if err != nil {
		return p, err
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func registerList(reg *commands.Registry, out io.Writer) {
	fs := newFlagSet("list", out)
	reg.Register("list", "list the available shapes", fs, func() error {
		for i, k := range shapes.Kinds() {
			v, e, err := shapes.Counts(k)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d %-12s %d vertices %d edges\n", i+1, k, v, e)
		}
		return nil
	})
}

// shapeFlags are shared by dump and snapshot.
type shapeFlags struct {
	config     *string
	shape      *string
	size       *float64
	rx, ry, rz *float64
}

func addShapeFlags(fs *flag.FlagSet) shapeFlags {
	return shapeFlags{
		config: fs.String("config", config.DefaultPath, "viewer config file"),
		shape:  fs.String("shape", "cube", "shape name: "+fmt.Sprint(shapes.Names())),
		size:   fs.Float64("size", 0, "shape size (0 uses the config value)"),
		rx:     fs.Float64("rx", 0, "rotation about X in radians"),
		ry:     fs.Float64("ry", 0, "rotation about Y in radians"),
		rz:     fs.Float64("rz", 0, "rotation about Z in radians"),
	}
}

// build loads the config and returns the rotated model it describes.
func (f shapeFlags) build() (config.Prefs, shapes.Kind, *geometry.Model, error) {
	prefs, err := LoadPrefs(*f.config)
	if err != nil {
		return prefs, 0, nil, err
	}
	k, err := shapes.Parse(*f.shape)
	if err != nil {
		return prefs, 0, nil, err
	}
	size := prefs.Size
	if *f.size != 0 {
		size = *f.size
	}
	m, err := shapes.Build(k, size)
	if err != nil {
		return prefs, k, nil, err
	}
	m.Rotate(*f.rx, *f.ry, *f.rz)
	return prefs, k, m, nil
}

func registerDump(reg *commands.Registry, out io.Writer) {
	fs := newFlagSet("dump", out)
	sf := addShapeFlags(fs)
	cx := fs.Int("cx", -1, "viewport center x (-1 uses width/2)")
	cy := fs.Int("cy", -1, "viewport center y (-1 uses height/2)")
	reg.Register("dump", "print the projected points and lines of a shape", fs, func() error {
		prefs, _, m, err := sf.build()
		if err != nil {
			return err
		}
		x, y := *cx, *cy
		if x < 0 {
			x = prefs.Width / 2
		}
		if y < 0 {
			y = prefs.Height / 2
		}
		dl := m.DrawList(x, y)
		for _, p := range dl.Points {
			fmt.Fprintf(out, "point %d %d\n", p.X, p.Y)
		}
		for _, l := range dl.Lines {
			fmt.Fprintf(out, "line %d %d %d %d\n", l.From.X, l.From.Y, l.To.X, l.To.Y)
		}
		return nil
	})
}

func registerSnapshot(reg *commands.Registry, out io.Writer) {
	fs := newFlagSet("snapshot", out)
	sf := addShapeFlags(fs)
	path := fs.String("out", "snapshot.png", "output image (.png, .jpg or .bmp)")
	reg.Register("snapshot", "render a shape to an image file", fs, func() error {
		prefs, k, m, err := sf.build()
		if err != nil {
			return err
		}
		c := raster.New(prefs.Width, prefs.Height)
		c.Clear(viewer.White)
		viewer.DrawWireframe(c, m.DrawList(prefs.Width/2, prefs.Height/2), prefs.PointRadius, prefs.LineThickness, viewer.Black)
		c.Text(k.String(), 20, 20, 36, viewer.Black)
		if err := c.Save(*path); err != nil {
			return fmt.Errorf("snapshot %s: %w", *path, err)
		}
		fmt.Fprintf(out, "wrote %s\n", *path)
		return nil
	})
}
