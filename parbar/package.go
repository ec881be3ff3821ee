// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parbar lays out and links parallel bar plots.
//
// A parallel bar plot is a sequence of columns, each holding one or
// more vertical bars. A bar represents either a discrete variable
// (an ordered set of levels), a continuous variable (a numeric
// interval), or a dummy hub that carries no values. Every bar in one
// column is linked to every bar in the column to its right: for each
// observation in a Dataset, a segment connects the observation's
// position on the left bar to its position on the right bar.
//
// All bar values are normalized into [0, 1] along the bar. Discrete
// levels are spaced evenly and never touch the ends of the bar.
// Continuous values are mapped linearly from [min, max] and are not
// clamped, so out-of-range observations fall beyond the bar.
//
// Plots are drawn into the unit square with y increasing upwards.
// The actual drawing is done by a Canvas; see the svgcanvas and
// gonumcanvas packages for concrete implementations.
//
// A typical use is:
//
//	p := parbar.New(parbar.Domain{
//		"Size": parbar.Levels("S", "M", "L"),
//		"Cost": parbar.Interval(0, 100),
//	})
//	p.AddColumn(1)
//	p.AddColumn(1)
//	p.AddBar(0, 0, parbar.Discrete, "Size")
//	p.AddBar(1, 0, parbar.Continuous, "Cost")
//	if err := p.Link(data); err != nil { ... }
//	err := p.WriteFile("out.svg", svgcanvas.Open(640, 480), parbar.DefaultPadding)
//
// A Plot is not safe for concurrent use. Construction, linking, and
// drawing are expected to happen in that order.
package parbar
