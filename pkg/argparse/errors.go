// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package wraps one of them,
// so callers can classify failures with errors.Is.
var (
	// ErrHelp is returned by Parse when -h or --help is present. It is a
	// signal, not a failure: the caller decides whether to print Help and exit.
	ErrHelp = errors.New("help requested")

	ErrFormat        = errors.New("invalid format")
	ErrReservedName  = errors.New("reserved option name")
	ErrDuplicate     = errors.New("duplicate option")
	ErrSyntax        = errors.New("invalid option syntax")
	ErrUnknownOption = errors.New("unknown option")
	ErrMissingValue  = errors.New("missing value")
	ErrSign          = errors.New("negative value for unsigned option")
	ErrRange         = errors.New("value out of range")
)

// DeclareError is returned when an option declaration is rejected.
// Nothing is added to the registry when this happens.
type DeclareError struct {
	Descriptor string // The descriptor as passed to Declare (e.g., "i,opt1")
	Err        error
}

func (e *DeclareError) Error() string {
	return fmt.Sprintf("declare %q: %v", e.Descriptor, e.Err)
}

func (e *DeclareError) Unwrap() error {
	return e.Err
}

// TokenError is returned when a command-line token cannot be matched to an
// option, or names an option that needs a value but got none.
type TokenError struct {
	Token string // The offending argv token (e.g., "--nope")
	Err   error  // ErrSyntax, ErrUnknownOption or ErrMissingValue
}

func (e *TokenError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingValue):
		return fmt.Sprintf("option %s requires a value", e.Token)
	default:
		return fmt.Sprintf("%v: %s", e.Err, e.Token)
	}
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// ValueError is returned when a value token cannot be converted to the
// option's type. Err wraps ErrFormat, ErrSign or ErrRange.
type ValueError struct {
	Option string // The option token the value was given to (e.g., "-u")
	Value  string // The raw value
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s: %v", e.Value, e.Option, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
