// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command pixdemo renders a YAML scene with the pixcore pipeline and
// writes it as PNG. Without -scene a built-in scene is drawn.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pixcore"
	"github.com/gogpu/pixcore/glyph"
	"github.com/gogpu/pixcore/render"
)

func main() {
	var (
		width   = flag.Int("width", 0, "image width (overrides the scene)")
		height  = flag.Int("height", 0, "image height (overrides the scene)")
		output  = flag.String("output", "pixdemo.png", "output file")
		scene   = flag.String("scene", "", "YAML scene file")
		fontArg = flag.String("font", "", "TTF/OTF font for text layers (default Go Regular)")
		workers = flag.Int("workers", 0, "render workers for solid layers, 1 disables banding")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		pixcore.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := loadScene(*scene)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}

	if err := run(s, *output, *fontArg, *workers); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d, %d layers)\n", *output, s.Width, s.Height, len(s.Layers))
}

func run(s *Scene, output, fontPath string, workers int) error {
	data := goregular.TTF
	if fontPath != "" {
		var err error
		if data, err = os.ReadFile(fontPath); err != nil {
			return err
		}
	}
	font, err := glyph.ParseFont(data)
	if err != nil {
		return err
	}

	var par *render.Parallel
	if workers != 1 {
		par = render.NewParallel(render.WithWorkers(workers))
		defer par.Close()
	}

	c, err := newCanvas(s.Width, s.Height, s.Gamma, par, font)
	if err != nil {
		return err
	}
	if s.Background != "" {
		bg, err := parseColor(s.Background)
		if err != nil {
			return err
		}
		c.base.Clear(bg)
	}
	for i, l := range s.Layers {
		if err := c.draw(l); err != nil {
			return fmt.Errorf("layer %d (%s): %w", i, l.Kind, err)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.Image()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
