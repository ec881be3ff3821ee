// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Dataset supplies observations by variable name. Observation i of
// one variable corresponds to observation i of every other variable.
//
// *table.Table implements Dataset.
type Dataset interface {
	// Column returns the observations of variable name as a
	// slice, or nil if there are none.
	Column(name string) table.Slice

	// Len returns the number of observations.
	Len() int
}

// Observations is a Dataset backed by a map from variable name to a
// slice of observations. Unlike a *table.Table, its columns may have
// different lengths; linking two such columns fails with an
// *AlignmentError.
type Observations map[string]table.Slice

func (o Observations) Column(name string) table.Slice {
	return o[name]
}

// Len returns the length of the longest column of o. Entries that
// are not slices do not count.
func (o Observations) Len() int {
	n := 0
	for _, col := range o {
		rv := reflect.ValueOf(col)
		if rv.Kind() != reflect.Slice {
			continue
		}
		if l := rv.Len(); l > n {
			n = l
		}
	}
	return n
}

// Link computes the links between every pair of bars in adjacent
// columns of p using the observations in data. Every bar in column i
// is linked to every bar in column i+1, and each pair gets one Link
// per observation. Links computed by an earlier call are discarded.
//
// If Link fails, the pairs linked before the failure keep their new
// links.
func (p *Plot) Link(data Dataset) error {
	for _, col := range p.cols {
		for _, b := range col.bars {
			if b != nil {
				b.base().clearLinks()
			}
		}
	}
	for i := 0; i+1 < len(p.cols); i++ {
		for _, from := range p.cols[i].bars {
			if from == nil {
				continue
			}
			for _, to := range p.cols[i+1].bars {
				if to == nil {
					continue
				}
				if err := p.linkTo(from, to, data); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// linkTo computes the links from bar from to bar to and stores them
// in from. A dummy end of a link is fixed at 0.5.
func (p *Plot) linkTo(from, to Bar, data Dataset) error {
	fpos, fcolors, err := p.observe(from, data)
	if err != nil {
		return err
	}
	tpos, _, err := p.observe(to, data)
	if err != nil {
		return err
	}

	var n int
	switch {
	case fpos == nil && tpos == nil:
		n = data.Len()
	case fpos == nil:
		n = len(tpos)
	case tpos == nil:
		n = len(fpos)
	case len(fpos) != len(tpos):
		return &AlignmentError{from.Name(), to.Name(), len(fpos), len(tpos)}
	default:
		n = len(fpos)
	}

	links := make([]Link, n)
	for i := range links {
		l := Link{From: 0.5, To: 0.5, Color: color.Black}
		if fpos != nil {
			l.From, l.Color = fpos[i], fcolors[i]
		}
		if tpos != nil {
			l.To = tpos[i]
		}
		links[i] = l
	}
	from.base().setLinks(to.Name(), links)
	return nil
}

// observe returns the normalized position and the outgoing link color
// of every observation of b's variable. For dummy bars, it returns
// nil slices.
func (p *Plot) observe(b Bar, data Dataset) (pos []float64, colors []color.Color, err error) {
	const op = "Link"

	var col reflect.Value
	if b.Kind() != Dummy {
		seq := data.Column(b.Name())
		if seq == nil {
			return nil, nil, configErr(op, ErrMissingData, "%q", b.Name())
		}
		col = reflect.ValueOf(seq)
		if col.Kind() != reflect.Slice {
			return nil, nil, configErr(op, ErrMissingData, "%q is %T, not a slice", b.Name(), seq)
		}
		pos = make([]float64, col.Len())
		colors = make([]color.Color, col.Len())
	}

	switch b := b.(type) {
	case *DummyBar:
		return nil, nil, nil

	case *DiscreteBar:
		levels, ok := col.Interface().([]string)
		if !ok {
			levels = make([]string, col.Len())
			for i := range levels {
				levels[i] = levelString(col.Index(i).Interface())
			}
		}
		for i, l := range levels {
			x, ok := b.pos[l]
			if !ok {
				return nil, nil, configErr(op, ErrUnknownLevel, "%q of %s at row %d", l, b.name, i)
			}
			pos[i], colors[i] = x, b.colors[l]
		}

	case *ContinuousBar:
		if ek := col.Type().Elem().Kind(); ek == reflect.Interface {
			for i := range pos {
				if pos[i], err = b.Normalize(col.Index(i).Interface()); err != nil {
					return nil, nil, err
				}
			}
		} else if canCardinal[ek] {
			var xs []float64
			slice.Convert(&xs, col.Interface())
			for i, x := range xs {
				pos[i] = b.norm(x)
			}
		} else {
			return nil, nil, configErr(op, ErrNotNumeric, "%q is %s", b.name, col.Type())
		}
		for i, x := range pos {
			colors[i] = p.continuousColor(x)
		}

	default:
		panic(fmt.Sprintf("parbar: unknown bar type %T", b))
	}
	return pos, colors, nil
}

// continuousColor returns the color of a link leaving a continuous
// bar at normalized position x.
func (p *Plot) continuousColor(x float64) color.Color {
	if p.palette == nil {
		return color.Black
	}
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return p.palette.Map(x)
}
