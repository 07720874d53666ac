// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"slices"
)

// ID names an option: a one-letter alias used as -a and a long name used
// as --name.
type ID struct {
	Alias byte
	Name  string
}

// Short returns the short form, e.g. "-i".
func (id ID) Short() string {
	return "-" + string(id.Alias)
}

// Long returns the long form, e.g. "--opt1".
func (id ID) Long() string {
	return "--" + id.Name
}

type entry struct {
	id   ID
	kind Kind
	help string
	// cell is a *T matching kind. It is allocated once at declaration and
	// shared with the Binding, so it never moves.
	cell any
	set  *bool
}

// Registry holds declared options in declaration order. The zero value is
// ready to use.
//
// All declarations must happen before Parse. A Registry is not safe for
// concurrent use.
type Registry struct {
	entries []*entry
}

// Binding is a live view of one option's value and whether it has been
// explicitly set. It reflects every change Parse or Preset makes to the
// option.
type Binding[T Type] struct {
	value *T
	set   *bool
}

// Value returns the option's current value.
func (b *Binding[T]) Value() T {
	return *b.value
}

// IsSet reports whether the option has a defined value: it was declared
// with a default, is a boolean, or was assigned on the command line.
func (b *Binding[T]) IsSet() bool {
	return *b.set
}

// Declare registers an option described by "alias,name" with no default.
// Its value starts as the zero value of T and is not set, except for bool
// options which always start set to false.
func Declare[T Type](r *Registry, descriptor, help string) (*Binding[T], error) {
	var zero T
	return declare(r, descriptor, help, zero, kindOf[T]() == KindBool)
}

// DeclareDefault is like Declare but initializes the option to def and
// marks it set.
func DeclareDefault[T Type](r *Registry, descriptor, help string, def T) (*Binding[T], error) {
	return declare(r, descriptor, help, def, true)
}

// MustDeclare is like Declare but panics on error. Declaration errors are
// programming errors, so this is the usual way to build an options struct.
func MustDeclare[T Type](r *Registry, descriptor, help string) *Binding[T] {
	b, err := Declare[T](r, descriptor, help)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDeclareDefault is like DeclareDefault but panics on error.
func MustDeclareDefault[T Type](r *Registry, descriptor, help string, def T) *Binding[T] {
	b, err := DeclareDefault(r, descriptor, help, def)
	if err != nil {
		panic(err)
	}
	return b
}

func declare[T Type](r *Registry, descriptor, help string, initial T, set bool) (*Binding[T], error) {
	id, err := parseDescriptor(descriptor)
	if err != nil {
		return nil, &DeclareError{Descriptor: descriptor, Err: err}
	}
	if err := r.checkUnique(id); err != nil {
		return nil, &DeclareError{Descriptor: descriptor, Err: err}
	}

	value := new(T)
	*value = initial
	isSet := new(bool)
	*isSet = set
	r.entries = append(r.entries, &entry{
		id:   id,
		kind: kindOf[T](),
		help: help,
		cell: value,
		set:  isSet,
	})
	return &Binding[T]{value: value, set: isSet}, nil
}

// parseDescriptor splits "a,name" where a is [a-zA-Z] and name is [a-zA-Z0-9]*.
func parseDescriptor(descriptor string) (ID, error) {
	if len(descriptor) < 2 || !isLetter(descriptor[0]) || descriptor[1] != ',' {
		return ID{}, fmt.Errorf("%w: descriptor must look like \"a,name\"", ErrFormat)
	}
	name := descriptor[2:]
	if !isAlnum(name) {
		return ID{}, fmt.Errorf("%w: option name %q must be alphanumeric", ErrFormat, name)
	}
	return ID{Alias: descriptor[0], Name: name}, nil
}

func (r *Registry) checkUnique(id ID) error {
	// Only the exact pair is reserved. An option aliased h is still
	// reachable by its long name, and one named help by its alias.
	if id.Short() == helpShort && id.Long() == helpLong {
		return fmt.Errorf("%w: %s,%s is reserved for help", ErrReservedName, helpShort, helpLong)
	}
	for _, e := range r.entries {
		if e.id.Alias == id.Alias {
			return fmt.Errorf("%w: alias %s already declared", ErrDuplicate, id.Short())
		}
		if e.id.Name == id.Name {
			return fmt.Errorf("%w: name %s already declared", ErrDuplicate, id.Long())
		}
	}
	return nil
}

func (r *Registry) lookupName(name string) *entry {
	for _, e := range r.entries {
		if e.id.Name == name {
			return e
		}
	}
	return nil
}

// Preset assigns raw to the option with the given long name as if it were
// a default: the value goes through the same conversion as a command-line
// value and the option is marked set. Presets applied before Parse are
// overridden by command-line tokens.
func (r *Registry) Preset(name, raw string) error {
	e := r.lookupName(name)
	if e == nil {
		return &TokenError{Token: "--" + name, Err: ErrUnknownOption}
	}
	if err := convert(e.cell, raw); err != nil {
		return &ValueError{Option: e.id.Long(), Value: raw, Err: err}
	}
	*e.set = true
	return nil
}

// PresetAll presets every option in values, keyed by long name, in sorted
// order. All names and values are checked first; if any is invalid, no
// option is changed and the first error in sorted order is returned.
func (r *Registry) PresetAll(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		e := r.lookupName(name)
		if e == nil {
			return &TokenError{Token: "--" + name, Err: ErrUnknownOption}
		}
		if err := convert(newCell(e.kind), values[name]); err != nil {
			return &ValueError{Option: e.id.Long(), Value: values[name], Err: err}
		}
	}
	for _, name := range names {
		if err := r.Preset(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Option is a read-only snapshot of a declared option.
type Option struct {
	ID   ID
	Kind Kind
	Help string
	// Value is the current value formatted for display; strings are quoted.
	Value string
	Set   bool
}

// Options returns a snapshot of every option in declaration order.
func (r *Registry) Options() []Option {
	opts := make([]Option, 0, len(r.entries))
	for _, e := range r.entries {
		opts = append(opts, Option{
			ID:    e.id,
			Kind:  e.kind,
			Help:  e.help,
			Value: format(e.cell),
			Set:   *e.set,
		})
	}
	return opts
}

// Len returns the number of declared options.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ParseWith builds a fresh Registry, runs build against it to declare the
// options and parses args. The options are returned even when parsing
// fails, reflecting every token applied before the failure.
func ParseWith[T any](args []string, build func(*Registry) T) (T, *Registry, error) {
	r := new(Registry)
	opts := build(r)
	return opts, r, r.Parse(args)
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
