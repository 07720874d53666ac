// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "strings"

const (
	helpShort = "-h"
	helpLong  = "--help"
)

// Parse walks args (the command line without the program name, i.e.
// os.Args[1:]) and assigns values to the declared options.
//
// Each token must be -a or --name. A non-boolean option takes the next
// token as its value; a boolean option given no value is toggled. When an
// option appears more than once, the last occurrence wins.
//
// If -h or --help appears anywhere, Parse returns ErrHelp without touching
// any option; help wins even over an earlier malformed or unknown token.
// Otherwise parsing stops at the first bad token and returns a *TokenError
// or *ValueError; options assigned before that token keep their new values.
func (r *Registry) Parse(args []string) error {
	if helpRequested(args) {
		return ErrHelp
	}

	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !isOptionToken(tok) {
			return &TokenError{Token: tok, Err: ErrSyntax}
		}
		e := r.match(tok)
		if e == nil {
			return &TokenError{Token: tok, Err: ErrUnknownOption}
		}

		if i+1 >= len(args) || !isValueToken(args[i+1]) {
			if e.kind != KindBool {
				return &TokenError{Token: tok, Err: ErrMissingValue}
			}
			b := e.cell.(*bool)
			*b = !*b
			*e.set = true
			continue
		}

		i++
		if err := convert(e.cell, args[i]); err != nil {
			return &ValueError{Option: tok, Value: args[i], Err: err}
		}
		*e.set = true
	}
	return nil
}

// match returns the first entry, in declaration order, named by tok.
func (r *Registry) match(tok string) *entry {
	long := strings.HasPrefix(tok, "--")
	for _, e := range r.entries {
		if long {
			if tok[2:] == e.id.Name {
				return e
			}
		} else if tok[1] == e.id.Alias {
			return e
		}
	}
	return nil
}

func helpRequested(args []string) bool {
	for _, arg := range args {
		if arg == helpShort || arg == helpLong {
			return true
		}
	}
	return false
}

// isOptionToken reports whether s is -[a-zA-Z] or --[a-zA-Z0-9]*.
func isOptionToken(s string) bool {
	if strings.HasPrefix(s, "--") {
		return isAlnum(s[2:])
	}
	return len(s) == 2 && s[0] == '-' && isLetter(s[1])
}

// isValueToken reports whether s, following an option, is that option's
// value rather than the next option.
func isValueToken(s string) bool {
	return !strings.HasPrefix(s, "-") || isNegativeNumber(s)
}

// isNegativeNumber reports whether s is -[0-9]*. A lone "-" counts, so it
// is passed to the conversion step which rejects it.
func isNegativeNumber(s string) bool {
	if len(s) == 0 || s[0] != '-' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
