// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

// Padding is the space left around columns and rows, as a fraction of
// the plot's width and height.
type Padding struct {
	// Row is the vertical space between rows and above and below
	// the outermost rows.
	Row float64

	// Col is the horizontal space between columns and to the
	// left and right of the outermost columns.
	Col float64
}

// DefaultPadding is 5% between and around columns and rows.
var DefaultPadding = Padding{Row: 0.05, Col: 0.05}

// Layout assigns every bar of p its Extent. Columns share the width
// of the unit square equally after padding, and the rows of each
// column share its height equally after padding.
func (p *Plot) Layout(pad Padding) error {
	if len(p.cols) == 0 {
		return configErr("Layout", ErrNoColumn, "plot has no columns")
	}
	ncols := float64(len(p.cols))
	width := (1 - (ncols+1)*pad.Col) / ncols
	if !(width > 0) {
		return configErr("Layout", ErrPadding, "column padding %g for %d columns", pad.Col, len(p.cols))
	}
	for i, col := range p.cols {
		x := pad.Col*float64(i+1) + width/2 + width*float64(i)
		nrows := float64(col.Len())
		height := (1 - (nrows+1)*pad.Row) / nrows
		if !(height > 0) {
			return configErr("Layout", ErrPadding, "row padding %g for %d rows", pad.Row, col.Len())
		}
		for j, b := range col.bars {
			if b == nil {
				continue
			}
			y := pad.Row*float64(j+1) + height/2 + height*float64(j)
			b.base().SetLayout(x, y, y-height/2, y+height/2)
		}
	}
	return nil
}
