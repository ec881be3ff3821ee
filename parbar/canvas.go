// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

import (
	"image/color"
	"strconv"
)

// A Canvas is a drawing surface spanning the unit square, with y
// increasing upwards.
type Canvas interface {
	// Line strokes a segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64, c color.Color)

	// Axis strokes the vertical axis of a bar at x from yMin to
	// yMax.
	Axis(x, yMin, yMax float64)

	// Text draws s with its baseline starting at (x, y).
	Text(x, y float64, s string)
}

// A Target is a Canvas backed by a resource, such as an output file,
// that must be released. Close persists the drawing.
type Target interface {
	Canvas
	Close() error
}

// An Opener acquires the Target that writes to path.
type Opener func(path string) (Target, error)

// Offsets of a bar's name label from the top of the bar.
const (
	nameXScale  = (0.975 + 1) / 2
	nameYOffset = 0.035
)

// Draw lays out p with padding pad and draws it to c.
//
// Each bar is drawn as a vertical axis with its labels. Links are
// drawn from the left, so the bars in the last column contribute only
// their axes and labels. Empty slots are skipped.
func (p *Plot) Draw(c Canvas, pad Padding) error {
	if c == nil {
		panic("parbar: nil Canvas")
	}
	if err := p.Layout(pad); err != nil {
		return err
	}
	last := len(p.cols) - 1
	for i, col := range p.cols {
		for j, b := range col.bars {
			if b == nil {
				Warning.Printf("skipping empty slot at column %d, row %d", i, j)
				continue
			}
			drawAxis(c, b)
			if i == last {
				continue
			}
			if err := p.drawLinks(c, b, p.cols[i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFile acquires the Target for path from open, draws p to it,
// and closes it. The Target is closed even if drawing fails.
func (p *Plot) WriteFile(path string, open Opener, pad Padding) (err error) {
	t, err := open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}()
	return p.Draw(t, pad)
}

// drawAxis draws b's axis and labels.
func drawAxis(c Canvas, b Bar) {
	e := b.Extent()
	c.Axis(e.X, e.YMin, e.YMax)
	switch b := b.(type) {
	case *DummyBar:
	case *DiscreteBar:
		c.Text(e.X*nameXScale, e.YMax+nameYOffset, b.name)
		for _, l := range b.levels {
			c.Text(e.X, e.YAt(b.pos[l]), l)
		}
	case *ContinuousBar:
		c.Text(e.X*nameXScale, e.YMax+nameYOffset, b.name)
		c.Text(e.X, e.YMin, formatValue(b.Min()))
		c.Text(e.X, e.YMax, formatValue(b.Max()))
	}
}

// drawLinks draws every link from b to the bars of next.
func (p *Plot) drawLinks(c Canvas, b Bar, next *Column) error {
	e := b.Extent()
	for _, name := range b.Linked() {
		to := next.find(name)
		if to == nil {
			return configErr("Draw", ErrNoLink, "%s to %q", b.Name(), name)
		}
		te := to.Extent()
		for _, l := range b.Links(name) {
			c.Line(e.X, e.YAt(l.From), te.X, te.YAt(l.To), l.Color)
		}
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
