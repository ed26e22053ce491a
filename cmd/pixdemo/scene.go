// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixcore/color"
)

var (
	errBadColor = errors.New("bad color")
	errBadShape = errors.New("bad shape")
	errBadLayer = errors.New("bad layer")
)

// Scene is the YAML document rendered by pixdemo.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background"`
	Gamma      float64 `yaml:"gamma"`
	Layers     []Layer `yaml:"layers"`
}

// Layer is one drawing step. Kind selects how the remaining fields are
// used: solid, gradient, compound or text.
type Layer struct {
	Kind     string    `yaml:"kind"`
	Shape    Shape     `yaml:"shape"`
	Color    string    `yaml:"color"`
	Gradient *Gradient `yaml:"gradient"`
	// Op is a compositing operator name such as "multiply".
	Op string `yaml:"op"`
	// Mask restricts the layer to the coverage of another shape.
	Mask  *Shape    `yaml:"mask"`
	Parts []Part    `yaml:"parts"`
	Text  string    `yaml:"text"`
	Size  float64   `yaml:"size"`
	At    []float64 `yaml:"at"`
}

// Part is one style of a compound layer.
type Part struct {
	Shape    Shape     `yaml:"shape"`
	Color    string    `yaml:"color"`
	Gradient *Gradient `yaml:"gradient"`
}

// Shape is exactly one of a rectangle (x0 y0 x1 y1), an ellipse
// (cx cy rx ry) or a polygon (x y pairs).
type Shape struct {
	Rect    []float64 `yaml:"rect"`
	Ellipse []float64 `yaml:"ellipse"`
	Polygon []float64 `yaml:"polygon"`
}

// Gradient describes a gradient fill.
type Gradient struct {
	Kind   string    `yaml:"kind"`
	From   []float64 `yaml:"from"`
	To     []float64 `yaml:"to"`
	Radius float64   `yaml:"radius"`
	Spread string    `yaml:"spread"`
	Stops  []Stop    `yaml:"stops"`
}

// Stop is a gradient color stop.
type Stop struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

func loadScene(path string) (*Scene, error) {
	data := []byte(defaultScene)
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &s, nil
}

// parseColor accepts #rgb, #rrggbb and #rrggbbaa and returns a
// premultiplied color.
func parseColor(s string) (color.Rgba8, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.Rgba8{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.Rgba8{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	c := color.Rgba8{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return c.Premultiply(), nil
}

const defaultScene = `
width: 640
height: 400
background: "#f4f1ea"
gamma: 1.0
layers:
  - kind: gradient
    shape: {rect: [0, 0, 640, 400]}
    gradient:
      kind: linear
      from: [0, 0]
      to: [0, 400]
      stops:
        - {offset: 0, color: "#1d2b53"}
        - {offset: 1, color: "#7e2553"}
  - kind: solid
    shape: {ellipse: [170, 180, 110, 110]}
    color: "#ff004dcc"
  - kind: solid
    shape: {ellipse: [250, 180, 110, 110]}
    color: "#29adffcc"
    op: screen
  - kind: gradient
    shape: {rect: [380, 60, 600, 300]}
    mask: {ellipse: [490, 180, 110, 120]}
    gradient:
      kind: radial
      from: [490, 180]
      radius: 120
      spread: reflect
      stops:
        - {offset: 0, color: "#ffec27"}
        - {offset: 0.5, color: "#ffa300"}
        - {offset: 1, color: "#00e436"}
  - kind: compound
    parts:
      - shape: {polygon: [60, 380, 160, 300, 260, 380]}
        color: "#fff1e8"
      - shape: {rect: [120, 320, 360, 390]}
        color: "#83769c"
  - kind: text
    text: "pixcore"
    size: 48
    at: [400, 370]
    color: "#fff1e8"
`
