package main

import (
	"flag"
	"fmt"
	"os"

	"wireframe-viewer/internal/cli"
	"wireframe-viewer/internal/commands"
	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/debug"
	"wireframe-viewer/internal/graphics"
	"wireframe-viewer/internal/logger"
	"wireframe-viewer/internal/viewer"
)

func main() {
	reg := commands.NewRegistry("run")
	registerRun(reg)
	cli.Register(reg, os.Stdout)

	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		reg.Usage(os.Stderr)
		os.Exit(1)
	}
}

func registerRun(reg *commands.Registry) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cfgPath := fs.String("config", config.DefaultPath, "viewer config file")
	reg.Register("run", "open the viewer window (default)", fs, func() error {
		prefs, err := cli.LoadPrefs(*cfgPath)
		if err != nil {
			return err
		}
		log := logger.New(prefs.LogPath)
		log.Logf("starting %dx%d, size %v", prefs.Width, prefs.Height, prefs.Size)

		app := viewer.New(prefs, log)
		dbg := debug.New()
		dbg.ShowFPS = prefs.ShowFPS
		dbg.ShowMemAlloc = prefs.ShowMemAlloc

		opts := graphics.Options{
			Width:     prefs.Width,
			Height:    prefs.Height,
			Title:     prefs.Title,
			TargetFPS: prefs.TargetFPS,
		}
		graphics.Run(opts, app.Update, func(w *graphics.Window) {
			app.Draw(w)
			dbg.Draw(w, w.FPS())
		})
		return nil
	})
}
