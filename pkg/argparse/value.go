// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the closed set of value types an option can hold.
type Type interface {
	bool | int32 | uint32 | int64 | uint64 | string
}

// Kind identifies which member of Type an option stores. It is fixed when
// the option is declared.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindString
)

// String returns the type name shown in help output.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func kindOf[T Type]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case string:
		return KindString
	}
	panic(fmt.Sprintf("argparse: unsupported type %T", zero))
}

// newCell allocates an empty cell for kind.
func newCell(k Kind) any {
	switch k {
	case KindBool:
		return new(bool)
	case KindInt32:
		return new(int32)
	case KindUint32:
		return new(uint32)
	case KindInt64:
		return new(int64)
	case KindUint64:
		return new(uint64)
	case KindString:
		return new(string)
	}
	panic(fmt.Sprintf("argparse: unsupported kind %s", k))
}

// convert parses raw into the cell, which is one of *bool, *int32, *uint32,
// *int64, *uint64 or *string. The cell is left untouched on error.
func convert(cell any, raw string) error {
	switch p := cell.(type) {
	case *bool:
		switch raw {
		case "0":
			*p = false
		case "1":
			*p = true
		default:
			return fmt.Errorf("%w: boolean value must be 0 or 1", ErrFormat)
		}
	case *int32:
		n, err := parseSigned(raw, 32)
		if err != nil {
			return err
		}
		*p = int32(n)
	case *uint32:
		n, err := parseUnsigned(raw, 32)
		if err != nil {
			return err
		}
		*p = uint32(n)
	case *int64:
		n, err := parseSigned(raw, 64)
		if err != nil {
			return err
		}
		*p = n
	case *uint64:
		n, err := parseUnsigned(raw, 64)
		if err != nil {
			return err
		}
		*p = n
	case *string:
		*p = raw
	default:
		panic(fmt.Sprintf("argparse: unsupported cell %T", cell))
	}
	return nil
}

// format renders the cell's current value for help output.
func format(cell any) string {
	switch p := cell.(type) {
	case *bool:
		return strconv.FormatBool(*p)
	case *int32:
		return strconv.FormatInt(int64(*p), 10)
	case *uint32:
		return strconv.FormatUint(uint64(*p), 10)
	case *int64:
		return strconv.FormatInt(*p, 10)
	case *uint64:
		return strconv.FormatUint(*p, 10)
	case *string:
		return strconv.Quote(*p)
	}
	panic(fmt.Sprintf("argparse: unsupported cell %T", cell))
}

// checkInteger verifies raw is an optionally signed run of decimal digits.
func checkInteger(raw string) error {
	if !strings.ContainsAny(raw, "0123456789") {
		return fmt.Errorf("%w: %q contains no decimal digits", ErrFormat, raw)
	}
	digits := raw
	if digits[0] == '-' || digits[0] == '+' {
		digits = digits[1:]
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return fmt.Errorf("%w: %q is not a base-10 integer", ErrFormat, raw)
		}
	}
	return nil
}

func parseSigned(raw string, bits int) (int64, error) {
	if err := checkInteger(raw); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s does not fit in int%d", ErrRange, raw, bits)
	}
	return n, nil
}

func parseUnsigned(raw string, bits int) (uint64, error) {
	if err := checkInteger(raw); err != nil {
		return 0, err
	}
	if raw[0] == '-' {
		// "-0" is still zero.
		if strings.Trim(raw[1:], "0") != "" {
			return 0, fmt.Errorf("%w: %s", ErrSign, raw)
		}
		return 0, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s does not fit in uint%d", ErrRange, raw, bits)
	}
	return n, nil
}
