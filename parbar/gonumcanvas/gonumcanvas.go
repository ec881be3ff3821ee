// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonumcanvas draws parallel bar plots with gonum/plot, which
// can save them as PNG, JPEG, TIFF, PDF, EPS, SVG, or TeX.
package gonumcanvas

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/aclements/parplot/parbar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Line widths.
var (
	LinkWidth = vg.Points(0.5)
	AxisWidth = vg.Points(1.5)
)

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true, "png": true,
	"svg": true, "tex": true, "tif": true, "tiff": true,
}

// Canvas is a parbar.Canvas that collects plotters in a gonum plot
// with hidden axes spanning the unit square.
type Canvas struct {
	p   *plot.Plot
	err error
}

// New returns an empty Canvas.
func New() *Canvas {
	p := plot.New()
	p.HideAxes()
	return &Canvas{p: p}
}

// Plot returns the underlying gonum plot.
func (c *Canvas) Plot() *plot.Plot {
	return c.p
}

func (c *Canvas) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Canvas) line(x1, y1, x2, y2 float64, col color.Color, width vg.Length) {
	l, err := plotter.NewLine(plotter.XYs{{X: x1, Y: y1}, {X: x2, Y: y2}})
	if err != nil {
		c.setErr(err)
		return
	}
	l.LineStyle.Color = col
	l.LineStyle.Width = width
	c.p.Add(l)
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, col color.Color) {
	c.line(x1, y1, x2, y2, col, LinkWidth)
}

func (c *Canvas) Axis(x, yMin, yMax float64) {
	c.line(x, yMin, x, yMax, color.Black, AxisWidth)
}

func (c *Canvas) Text(x, y float64, s string) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{s},
	})
	if err != nil {
		c.setErr(err)
		return
	}
	c.p.Add(l)
}

// fix pins the plot's data range to the unit square. Adding plotters
// widens the range to fit them, so this must happen just before
// rendering.
func (c *Canvas) fix() error {
	if c.err != nil {
		return c.err
	}
	c.p.X.Min, c.p.X.Max = 0, 1
	c.p.Y.Min, c.p.Y.Max = 0, 1
	return nil
}

// Save writes the plot to path at the given size. The format is
// determined by the extension of path.
func (c *Canvas) Save(width, height vg.Length, path string) error {
	if err := c.fix(); err != nil {
		return err
	}
	return c.p.Save(width, height, path)
}

// WriteTo writes the plot to w at the given size in the given format,
// such as "png" or "pdf".
func (c *Canvas) WriteTo(w io.Writer, width, height vg.Length, format string) error {
	if err := c.fix(); err != nil {
		return err
	}
	wt, err := c.p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

type fileTarget struct {
	*Canvas
	path          string
	width, height vg.Length
}

// Close saves the drawing.
func (t *fileTarget) Close() error {
	return t.Save(t.width, t.height, t.path)
}

// Open returns a parbar.Opener whose Targets save to their path at the
// given size when closed. The path's extension must name a supported
// format.
func Open(width, height vg.Length) parbar.Opener {
	return func(path string) (parbar.Target, error) {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if !formats[ext] {
			return nil, fmt.Errorf("gonumcanvas: unsupported format %q for %s", ext, path)
		}
		return &fileTarget{New(), path, width, height}, nil
	}
}
