// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/aclements/go-gg/palette"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[parbar]", log.Lshortfile)

// A Plot is a parallel bar plot: an ordered sequence of columns of
// bars, and the domain of the variables those bars represent.
type Plot struct {
	domain  Domain
	cols    []*Column
	dummies int

	rng     *rand.Rand
	palette palette.Continuous
}

// New returns an empty Plot whose bars draw their values from domain.
func New(domain Domain) *Plot {
	return &Plot{
		domain: domain,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand sets the source of the random level colors of discrete
// bars added after this call. SetRand returns p for ease of chaining.
func (p *Plot) SetRand(r *rand.Rand) *Plot {
	p.rng = r
	return p
}

// SetPalette sets the palette used to color links leaving continuous
// bars. The palette is indexed by the link's normalized source
// position. If pal is nil, which is the default, these links are
// black. SetPalette returns p for ease of chaining.
func (p *Plot) SetPalette(pal palette.Continuous) *Plot {
	p.palette = pal
	return p
}

// Domain returns p's domain.
func (p *Plot) Domain() Domain {
	return p.domain
}

// AddColumn appends a column with the given number of rows to the
// right of p and returns its index.
func (p *Plot) AddColumn(rows int) (int, error) {
	if rows < 1 {
		return -1, configErr("AddColumn", ErrRowRange, "%d rows", rows)
	}
	p.cols = append(p.cols, newColumn(rows))
	return len(p.cols) - 1, nil
}

// Columns returns p's columns from left to right.
func (p *Plot) Columns() []*Column {
	return p.cols
}

// Bar returns the bar at column col, row row, or nil if there is no
// such bar.
func (p *Plot) Bar(col, row int) Bar {
	if col < 0 || col >= len(p.cols) {
		return nil
	}
	return p.cols[col].Bar(row)
}

// AddBar constructs a bar of the given kind and puts it in row row of
// column col, replacing any bar already there. Discrete and
// continuous bars take their name and domain from variable, which
// must be in p's domain. Dummy bars ignore variable.
func (p *Plot) AddBar(col, row int, kind BarKind, variable string) (Bar, error) {
	const op = "AddBar"
	if col < 0 || col >= len(p.cols) {
		return nil, configErr(op, ErrNoColumn, "column %d of %d", col, len(p.cols))
	}
	c := p.cols[col]
	if row < 0 || row >= c.Len() {
		return nil, configErr(op, ErrRowRange, "row %d of %d in column %d", row, c.Len(), col)
	}

	// Links are resolved by name, so names are unique within a
	// column, dummies included.
	checkName := func(name string) error {
		if other := c.find(name); other != nil && other != c.Bar(row) {
			return configErr(op, ErrDuplicateBar, "%q in column %d", name, col)
		}
		return nil
	}

	var b Bar
	switch kind {
	case Dummy:
		if err := checkName(newDummyBar(p.dummies + 1).Name()); err != nil {
			return nil, err
		}
		p.dummies++
		b = newDummyBar(p.dummies)

	case Discrete, Continuous:
		if variable == "" {
			return nil, configErr(op, ErrNoVariable, "%s bar at %d,%d", kind, col, row)
		}
		v, ok := p.domain[variable]
		if !ok {
			return nil, configErr(op, ErrUnknownVar, "%q", variable)
		}
		if v.Continuous != (kind == Continuous) {
			return nil, configErr(op, ErrKind, "%s bar over %s variable %q", kind, v, variable)
		}
		if err := checkName(variable); err != nil {
			return nil, err
		}
		var err error
		if kind == Discrete {
			b, err = newDiscreteBar(variable, v.Levels, p.rng)
		} else {
			b, err = newContinuousBar(variable, v.Min, v.Max)
		}
		if err != nil {
			return nil, err
		}

	default:
		return nil, configErr(op, ErrKind, "%s", kind)
	}

	if err := c.set(row, b); err != nil {
		return nil, err
	}
	return b, nil
}
