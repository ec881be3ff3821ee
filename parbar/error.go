// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parbar

import (
	"errors"
	"fmt"
)

// Causes of a ConfigError. Use errors.Is to test for them.
var (
	ErrNoColumn     = errors.New("no such column")
	ErrRowRange     = errors.New("row out of range")
	ErrKind         = errors.New("unsupported bar kind")
	ErrNoVariable   = errors.New("non-dummy bar needs a variable")
	ErrUnknownVar   = errors.New("variable not in domain")
	ErrUnknownLevel = errors.New("unknown level")
	ErrNoLevels     = errors.New("discrete variable has no levels")
	ErrDegenerate   = errors.New("degenerate interval")
	ErrDuplicateBar = errors.New("duplicate bar name in column")
	ErrMissingData  = errors.New("no observations for variable")
	ErrNotNumeric   = errors.New("observations are not numeric")
	ErrPadding      = errors.New("padding leaves no room")
	ErrNoLink       = errors.New("linked bar not found")
)

// A ConfigError reports a plot that was set up incorrectly: a bad
// column or row, a variable the domain does not describe, or data
// that does not fit a bar's domain.
type ConfigError struct {
	// Op is the operation that failed, such as "AddBar".
	Op string
	// Detail identifies the offending value, if any.
	Detail string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := "parbar: " + e.Op + ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(op string, err error, format string, args ...interface{}) error {
	return &ConfigError{Op: op, Detail: fmt.Sprintf(format, args...), Err: err}
}

// An AlignmentError reports that two linked variables do not have the
// same number of observations.
type AlignmentError struct {
	From, To       string
	FromLen, ToLen int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("parbar: cannot link %q (%d observations) to %q (%d observations)", e.From, e.FromLen, e.To, e.ToLen)
}
