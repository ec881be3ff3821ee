// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgcanvas draws parallel bar plots as SVG.
package svgcanvas

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/aclements/parplot/parbar"
	"github.com/ajstarks/svgo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fontSize is the font size in pixels.
const fontSize float64 = 12

// Canvas is a parbar.Target that writes an SVG document. Plot
// coordinates are scaled to the canvas size with y flipped, so the
// bottom of the plot is at the bottom of the image.
type Canvas struct {
	svg           *svg.SVG
	buf           *bufio.Writer
	closer        io.Closer
	width, height int
	face          font.Face
	ended         bool
}

// New starts an SVG document of the given size in pixels on w. The
// document is complete only after Close.
func New(w io.Writer, width, height int) *Canvas {
	buf := bufio.NewWriter(w)
	c := &Canvas{
		svg:    svg.New(buf),
		buf:    buf,
		width:  width,
		height: height,
		face:   basicfont.Face7x13,
	}
	c.svg.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="sans-serif"`, fontSize))
	c.svg.Rect(0, 0, width, height, "fill:#fff")
	return c
}

// Open returns a parbar.Opener that creates an SVG file of the given
// size in pixels.
func Open(width, height int) parbar.Opener {
	return func(path string) (parbar.Target, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		c := New(f, width, height)
		c.closer = f
		return c, nil
	}
}

func (c *Canvas) x(x float64) int {
	return round(x * float64(c.width))
}

func (c *Canvas) y(y float64) int {
	return round((1 - y) * float64(c.height))
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, col color.Color) {
	c.svg.Line(c.x(x1), c.y(y1), c.x(x2), c.y(y2), cssPaint("stroke", col)+";stroke-width:1")
}

func (c *Canvas) Axis(x, yMin, yMax float64) {
	c.svg.Line(c.x(x), c.y(yMin), c.x(x), c.y(yMax), "stroke:#000;stroke-width:2")
}

// Text draws s starting at (x, y). Labels that would run off the
// right edge of the canvas are shifted left.
func (c *Canvas) Text(x, y float64, s string) {
	px, py := c.x(x), c.y(y)
	if over := px + c.textWidth(s) - c.width; over > 0 {
		px -= over
	}
	if px < 0 {
		px = 0
	}
	c.svg.Text(px, py, s)
}

// textWidth returns the width of s in pixels at fontSize.
func (c *Canvas) textWidth(s string) int {
	m := c.face.Metrics()
	adv := font.MeasureString(c.face, s)
	scale := fontSize / float64(m.Height.Ceil())
	return int(math.Ceil(float64(adv.Ceil()) * scale))
}

// Close ends the SVG document and flushes it. If the canvas was
// created by Open, Close also closes the file.
func (c *Canvas) Close() error {
	if !c.ended {
		c.ended = true
		c.svg.End()
	}
	err := c.buf.Flush()
	if c.closer != nil {
		if cerr := c.closer.Close(); err == nil {
			err = cerr
		}
		c.closer = nil
	}
	return err
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// cssPaint returns a CSS fragment for setting CSS property prop to
// color c.
func cssPaint(prop string, c color.Color) string {
	if c == nil {
		return prop + ":#000"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		// No paint.
		return prop + ":none"
	}

	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8

	var css string
	if r>>4 == r&0xF && g>>4 == g&0xF && b>>4 == b&0xF {
		// Use #rgb form.
		css = fmt.Sprintf("%s:#%x%x%x", prop, r>>4, g>>4, b>>4)
	} else {
		css = fmt.Sprintf("%s:#%02x%02x%02x", prop, r, g, b)
	}

	if a != 0xffff {
		// SVG 1.1 only supports CSS2 color formats, which
		// unfortunately does not include rgba, so we have to
		// use a separate CSS property.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64)
	}
	return css
}
