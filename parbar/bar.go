// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"reflect"
	"strings"

	"github.com/aclements/go-moremath/scale"
)

// A Bar is one vertical axis of a parallel bar plot. It is one of
// *DummyBar, *DiscreteBar, or *ContinuousBar.
type Bar interface {
	// Name returns the variable name of this bar, or "Dummy N"
	// for dummy bars.
	Name() string

	// Kind returns the kind of this bar.
	Kind() BarKind

	// Normalize returns the position of value v along this bar,
	// where 0 is the bottom of the bar and 1 is the top.
	Normalize(v interface{}) (float64, error)

	// Extent returns the position of this bar assigned by the
	// most recent layout.
	Extent() Extent

	// Linked returns the names of the bars this bar links to, in
	// the order they were first linked.
	Linked() []string

	// Links returns the link records from this bar to the bar
	// named to.
	Links(to string) []Link

	String() string

	base() *barBase
}

// A Link is one segment from an observation's position on one bar to
// its position on a bar in the next column.
type Link struct {
	// From and To are normalized positions on the source and
	// target bars.
	From, To float64

	// Color is the stroke color of the segment.
	Color color.Color
}

// Extent is the position of a bar in plot coordinates. Plot
// coordinates span the unit square with y increasing upwards.
type Extent struct {
	// X is the horizontal center of the bar's column.
	X float64

	// Y is the vertical center of the bar, and YMin and YMax are
	// its bottom and top.
	Y, YMin, YMax float64
}

// YAt returns the y coordinate of normalized position v along the
// bar. It does not clamp v.
func (e Extent) YAt(v float64) float64 {
	return e.YMin + (e.YMax-e.YMin)*v
}

type barBase struct {
	name   string
	linked []string
	links  map[string][]Link
	ext    Extent
}

func (b *barBase) Name() string           { return b.name }
func (b *barBase) Extent() Extent         { return b.ext }
func (b *barBase) Linked() []string       { return b.linked }
func (b *barBase) Links(to string) []Link { return b.links[to] }
func (b *barBase) base() *barBase         { return b }

// SetLayout sets the position of the bar. Plot.Layout calls this on
// every bar before drawing.
func (b *barBase) SetLayout(x, y, yMin, yMax float64) {
	b.ext = Extent{X: x, Y: y, YMin: yMin, YMax: yMax}
}

// clearLinks drops every link record of b.
func (b *barBase) clearLinks() {
	b.linked = nil
	b.links = nil
}

// setLinks replaces the link records to the bar named to.
func (b *barBase) setLinks(to string, links []Link) {
	if b.links == nil {
		b.links = make(map[string][]Link)
	}
	if _, ok := b.links[to]; !ok {
		b.linked = append(b.linked, to)
	}
	b.links[to] = links
}

func (b *barBase) describe(kind string) string {
	if len(b.linked) > 0 {
		return kind + " Linked to " + strings.Join(b.linked, ",")
	}
	return kind
}

// DummyBar is a bar with no values. Every observation passes through
// its midpoint, so it acts as a hub between columns.
type DummyBar struct {
	barBase
	id int
}

func newDummyBar(id int) *DummyBar {
	return &DummyBar{barBase: barBase{name: fmt.Sprintf("Dummy %d", id)}, id: id}
}

func (b *DummyBar) Kind() BarKind { return Dummy }

// Normalize always returns 0.5.
func (b *DummyBar) Normalize(v interface{}) (float64, error) {
	return 0.5, nil
}

func (b *DummyBar) String() string {
	return b.describe("Dummy Bar")
}

// DiscreteBar is a bar over an ordered set of levels. Each level sits
// at a fixed position and has its own color, used for every link
// leaving that level.
type DiscreteBar struct {
	barBase
	levels []string
	pos    map[string]float64
	colors map[string]color.RGBA
}

func newDiscreteBar(name string, levels []string, rng *rand.Rand) (*DiscreteBar, error) {
	b := &DiscreteBar{
		barBase: barBase{name: name},
		pos:     make(map[string]float64),
		colors:  make(map[string]color.RGBA),
	}
	for _, l := range levels {
		if _, ok := b.pos[l]; !ok {
			b.pos[l] = 0
			b.levels = append(b.levels, l)
		}
	}
	if len(b.levels) == 0 {
		return nil, configErr("AddBar", ErrNoLevels, "%s", name)
	}
	n := float64(len(b.levels) + 1)
	for i, l := range b.levels {
		b.pos[l] = float64(i+1) / n
		b.colors[l] = color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 0xff}
	}
	return b, nil
}

func (b *DiscreteBar) Kind() BarKind { return Discrete }

// Levels returns the distinct levels of b from bottom to top.
func (b *DiscreteBar) Levels() []string {
	return b.levels
}

// Position returns the normalized position of level, and whether
// level is a level of b.
func (b *DiscreteBar) Position(level string) (float64, bool) {
	p, ok := b.pos[level]
	return p, ok
}

// ColorOf returns the color of links leaving level, or nil if level
// is not a level of b.
func (b *DiscreteBar) ColorOf(level string) color.Color {
	c, ok := b.colors[level]
	if !ok {
		return nil
	}
	return c
}

// Normalize returns the position of level v. Values that are not
// strings are formatted with fmt.Sprint before lookup.
func (b *DiscreteBar) Normalize(v interface{}) (float64, error) {
	l := levelString(v)
	p, ok := b.pos[l]
	if !ok {
		return 0, configErr("Normalize", ErrUnknownLevel, "%q of %s", l, b.name)
	}
	return p, nil
}

func (b *DiscreteBar) String() string {
	return b.describe("Discrete Bar <" + b.name + ">")
}

func levelString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// ContinuousBar is a bar over a numeric interval.
type ContinuousBar struct {
	barBase
	s scale.Linear

	// warned records that an out-of-range value was reported.
	warned bool
}

func newContinuousBar(name string, min, max float64) (*ContinuousBar, error) {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, configErr("AddBar", ErrDegenerate, "%s: [%g,%g]", name, min, max)
	}
	return &ContinuousBar{
		barBase: barBase{name: name},
		s:       scale.Linear{Min: min, Max: max},
	}, nil
}

func (b *ContinuousBar) Kind() BarKind { return Continuous }

// Min returns the value at the bottom of b.
func (b *ContinuousBar) Min() float64 { return b.s.Min }

// Max returns the value at the top of b.
func (b *ContinuousBar) Max() float64 { return b.s.Max }

// Normalize returns (v-min)/(max-min). v must be numeric. Values
// outside [min, max] normalize outside [0, 1].
func (b *ContinuousBar) Normalize(v interface{}) (float64, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !canCardinal[rv.Kind()] {
		return 0, configErr("Normalize", ErrNotNumeric, "%v (%T) for %s", v, v, b.name)
	}
	return b.norm(rv.Convert(float64Type).Float()), nil
}

func (b *ContinuousBar) norm(x float64) float64 {
	y := b.s.Map(x)
	if (y < 0 || y > 1) && !b.warned {
		b.warned = true
		Warning.Printf("%s: value %g outside [%g,%g]", b.name, x, b.s.Min, b.s.Max)
	}
	return y
}

func (b *ContinuousBar) String() string {
	return b.describe("Continuous Bar <" + b.name + ">")
}

var float64Type = reflect.TypeOf(float64(0))

var canCardinal = map[reflect.Kind]bool{
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uintptr: true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
}
