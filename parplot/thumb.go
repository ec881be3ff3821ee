// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/aclements/parplot/parbar"
	"github.com/aclements/parplot/parbar/gonumcanvas"
	"golang.org/x/image/draw"
	"gonum.org/v1/plot/vg"
)

// dpi is the raster resolution gonum/plot draws images at.
const dpi = 96

// pixels converts a size in pixels to a vg.Length at dpi.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}

// writeThumb draws p as a PNG scaled down by factor and writes it to
// path.
func writeThumb(p *parbar.Plot, path string, width, height int, pad parbar.Padding, factor int) error {
	if factor < 1 {
		return fmt.Errorf("bad thumbnail factor %d", factor)
	}
	c := gonumcanvas.New()
	if err := p.Draw(c, pad); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.WriteTo(&buf, pixels(width), pixels(height), "png"); err != nil {
		return err
	}
	src, err := png.Decode(&buf)
	if err != nil {
		return err
	}

	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()/factor, sb.Dy()/factor))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
