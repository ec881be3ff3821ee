// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

// A Column is a fixed number of bar slots stacked vertically. Row 0
// is the bottom slot. Slots that are never set stay empty and are
// skipped when linking and drawing.
type Column struct {
	bars []Bar
}

func newColumn(size int) *Column {
	return &Column{bars: make([]Bar, size)}
}

// Len returns the number of slots in c.
func (c *Column) Len() int {
	return len(c.bars)
}

// Bar returns the bar in slot row, or nil if the slot is empty or
// out of range.
func (c *Column) Bar(row int) Bar {
	if row < 0 || row >= len(c.bars) {
		return nil
	}
	return c.bars[row]
}

func (c *Column) set(row int, b Bar) error {
	if row < 0 || row >= len(c.bars) {
		return configErr("AddBar", ErrRowRange, "row %d of %d", row, len(c.bars))
	}
	c.bars[row] = b
	return nil
}

// find returns the bar named name, or nil.
func (c *Column) find(name string) Bar {
	for _, b := range c.bars {
		if b != nil && b.Name() == name {
			return b
		}
	}
	return nil
}
