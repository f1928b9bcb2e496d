// seehuhn.de/go/anim - animated 3D scenes in software
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command animate renders a scene script to image files.
//
// Usage:
//
//	animate [flags] scene.json|scene.lua
//
// Frames are written to the directory given by -out.  With -view, frames
// which the script displays are also shown in a window, and the program
// waits for the window to be closed after rendering.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"seehuhn.de/go/anim"
	"seehuhn.de/go/anim/command"
	"seehuhn.de/go/anim/luascene"
	"seehuhn.de/go/anim/sink"
	"seehuhn.de/go/anim/viewer"
)

func main() {
	var (
		width   = flag.Int("width", 500, "image width in pixels")
		height  = flag.Int("height", 500, "image height in pixels")
		res     = flag.Int("res", 100, "number of steps used to approximate curved surfaces")
		out     = flag.String("out", "anim", "output directory")
		workers = flag.Int("workers", 1, "number of frames rendered in parallel")
		cull    = flag.String("cull", "static", "back-face culling: static, always or never")
		scale   = flag.Int("scale", 1, "integer enlargement of written and displayed frames")
		format  = flag.String("format", "png", "image format for names without extension: png, bmp, tiff or pdf")
		view    = flag.Bool("view", false, "show displayed frames in a window")
		delay   = flag.Duration("delay", 40*time.Millisecond, "minimum time between displayed frames")
		verbose = flag.Bool("v", false, "log progress information")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.json|scene.lua\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)

	mode, err := parseCull(*cull)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path := flag.Arg(0)
	script, err := load(ctx, path)
	if err != nil {
		logger.Error("cannot load scene", "file", path, "err", err)
		os.Exit(1)
	}

	opts := []anim.Option{
		anim.WithSize(*width, *height),
		anim.WithResolution(*res),
		anim.WithOutputDir(*out),
		anim.WithWorkers(*workers),
		anim.WithCulling(mode),
		anim.WithWriter(&sink.Files{Format: *format, Scale: *scale}),
		anim.WithFS(os.DirFS(filepath.Dir(path))),
		anim.WithLogger(logger),
	}
	var win *viewer.Window
	if *view {
		win = viewer.New(viewer.Config{
			Title: filepath.Base(path),
			Scale: *scale,
			Delay: *delay,
		})
		opts = append(opts, anim.WithPresenter(win))
	}

	rep, err := anim.New(opts...).Render(ctx, script)
	if err != nil {
		logger.Error("rendering failed", "file", path, "err", err)
		os.Exit(1)
	}
	logger.Debug("report",
		"frames", rep.Frames,
		"triangles", rep.Triangles.Drawn,
		"culled", rep.Triangles.Culled,
		"written", rep.Written,
		"displayed", rep.Displayed,
		"skipped", rep.Skipped)

	if win != nil {
		if err := win.Wait(); err != nil {
			logger.Error("viewer failed", "err", err)
			os.Exit(1)
		}
	}
}

// newLogger returns a human-readable logger when stderr is a terminal and
// a JSON logger otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, hopts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, hopts))
}

func parseCull(s string) (anim.CullMode, error) {
	for _, m := range []anim.CullMode{anim.CullStatic, anim.CullAlways, anim.CullNever} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown culling mode %q", s)
}

func load(ctx context.Context, path string) (*command.Script, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		return luascene.LoadFile(ctx, path)
	case ".json":
		fd, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		return command.Decode(fd)
	default:
		return nil, fmt.Errorf("%s: unknown script type, want .json or .lua", path)
	}
}
