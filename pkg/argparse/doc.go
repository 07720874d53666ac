// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse registers typed command-line options and parses argv
// into them.
//
// Options are declared against a Registry with a descriptor of the form
// "alias,name". Each declaration returns a Binding that observes the
// option's value and whether it has been set:
//
//	type Options struct {
//	    Count   *argparse.Binding[int32]
//	    Verbose *argparse.Binding[bool]
//	}
//
//	var reg argparse.Registry
//	opts := Options{
//	    Count:   argparse.MustDeclareDefault(&reg, "c,count", "Number of runs", int32(1)),
//	    Verbose: argparse.MustDeclare[bool](&reg, "v,verbose", "Verbose output"),
//	}
//	if err := reg.Parse(os.Args[1:]); errors.Is(err, argparse.ErrHelp) {
//	    fmt.Print(reg.Help())
//	    os.Exit(0)
//	} else if err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(1)
//	}
//
// # Command Line Syntax
//
// Every token is an option, either -a or --name, optionally followed by its
// value as the next token:
//   - Values: -c 3, --count 3, --count -3
//   - Boolean options take no value and toggle: -v, --verbose
//   - -h and --help are reserved and make Parse return ErrHelp
//
// A token that starts with "-" is read as the next option unless it is "-"
// followed only by digits, which is read as a (negative) number value.
//
// # Supported Types
//
// bool, int32, uint32, int64, uint64 and string. Integers are base 10 and
// checked against the target's range and sign.
package argparse
