// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aclements/parplot/internal/plotfile"
	"github.com/aclements/parplot/parbar"
	"github.com/aclements/parplot/parbar/gonumcanvas"
	"github.com/aclements/parplot/parbar/svgcanvas"
	"github.com/spf13/cobra"
)

// output holds the flags shared by commands that write a plot.
type output struct {
	path          string
	width, height int
	pad           parbar.Padding
	thumb         string
	thumbFactor   int
}

func (o *output) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.path, "output", "o", "", "write plot to `file` (default: SVG on stdout)")
	f.IntVar(&o.width, "width", defaultWidth, "plot width in pixels")
	f.IntVar(&o.height, "height", defaultHeight, "plot height in pixels")
	f.Float64Var(&o.pad.Row, "row-pad", parbar.DefaultPadding.Row, "padding between bars in a column, as a fraction of the plot height")
	f.Float64Var(&o.pad.Col, "col-pad", parbar.DefaultPadding.Col, "padding between columns, as a fraction of the plot width")
	f.StringVar(&o.thumb, "thumb", "", "also write a PNG thumbnail to `file`")
	f.IntVar(&o.thumbFactor, "thumb-factor", 2, "shrink the thumbnail by this factor")
}

// write draws p to o.path, or to w as SVG if there is no path.
func (o *output) write(p *parbar.Plot, w io.Writer) error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("bad plot size %dx%d", o.width, o.height)
	}
	if o.path == "" {
		c := svgcanvas.New(w, o.width, o.height)
		if err := p.Draw(c, o.pad); err != nil {
			c.Close()
			return err
		}
		if err := c.Close(); err != nil {
			return err
		}
	} else if err := p.WriteFile(o.path, opener(o.path, o.width, o.height), o.pad); err != nil {
		return err
	}
	if o.thumb != "" {
		return writeThumb(p, o.thumb, o.width, o.height, o.pad, o.thumbFactor)
	}
	return nil
}

// opener returns the Opener for path's format.
func opener(path string, width, height int) parbar.Opener {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return svgcanvas.Open(width, height)
	}
	return gonumcanvas.Open(pixels(width), pixels(height))
}

func newRenderCmd() *cobra.Command {
	var out output
	cmd := &cobra.Command{
		Use:   "render [flags] description",
		Short: "Draw the plot in a description file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := plotfile.Load(args[0])
			if err != nil {
				return err
			}
			p, err := f.Plot()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			// The description's settings apply unless
			// overridden on the command line.
			flags := cmd.Flags()
			if f.Width > 0 && !flags.Changed("width") {
				out.width = f.Width
			}
			if f.Height > 0 && !flags.Changed("height") {
				out.height = f.Height
			}
			pad := f.PlotPadding()
			if !flags.Changed("row-pad") {
				out.pad.Row = pad.Row
			}
			if !flags.Changed("col-pad") {
				out.pad.Col = pad.Col
			}
			return out.write(p, cmd.OutOrStdout())
		},
	}
	out.addFlags(cmd)
	return cmd
}
