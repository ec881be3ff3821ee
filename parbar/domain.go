// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

import (
	"fmt"
	"strings"
)

// A Variable describes the values a named variable can take. It is
// either discrete, with an ordered list of levels, or continuous,
// with a numeric interval.
type Variable struct {
	// Levels is the ordered list of levels of a discrete
	// variable.
	Levels []string

	// Min and Max bound a continuous variable.
	Min, Max float64

	// Continuous indicates that Min and Max are meaningful and
	// Levels is not.
	Continuous bool
}

// Levels returns a discrete Variable with the given levels.
func Levels(levels ...string) Variable {
	return Variable{Levels: levels}
}

// Interval returns a continuous Variable over [min, max].
func Interval(min, max float64) Variable {
	return Variable{Min: min, Max: max, Continuous: true}
}

func (v Variable) String() string {
	if v.Continuous {
		return fmt.Sprintf("[%g,%g]", v.Min, v.Max)
	}
	return "{" + strings.Join(v.Levels, ",") + "}"
}

// A Domain maps variable names to their descriptions. A Plot uses its
// Domain only to construct bars, and the caller must not modify it
// after passing it to New.
type Domain map[string]Variable

// BarKind identifies one of the three kinds of bar.
type BarKind int

const (
	Dummy BarKind = 1 + iota
	Discrete
	Continuous
)

var kindNames = map[BarKind]string{
	Dummy:      "dummy",
	Discrete:   "discrete",
	Continuous: "continuous",
}

func (k BarKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("BarKind(%d)", int(k))
}

// ParseBarKind returns the BarKind named s ("dummy", "discrete", or
// "continuous").
func ParseBarKind(s string) (BarKind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, &ConfigError{Op: "ParseBarKind", Detail: s, Err: ErrKind}
}
