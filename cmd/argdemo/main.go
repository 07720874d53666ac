// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argdemo declares a handful of typed options, parses the command
// line into them and prints the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/argparse/pkg/argparse"
	"github.com/yeetrun/argparse/pkg/optfile"
	"github.com/yeetrun/argparse/pkg/tui"
)

const (
	defaultsEnv      = "ARGDEMO_DEFAULTS"
	defaultsFileName = "argdemo.toml"
)

// metaFlags are handled by argdemo itself and removed from the command line
// before the option registry sees it.
type metaFlags struct {
	DefaultsFile  string `flag:"defaults-file" help:"Apply option defaults from a TOML or YAML file (ARGDEMO_DEFAULTS)"`
	WriteDefaults string `flag:"write-defaults" help:"Save the effective option values as TOML after parsing"`
}

var metaFlagNames = []string{"defaults-file", "write-defaults"}

type options struct {
	Opt1 *argparse.Binding[int32]
	Opt2 *argparse.Binding[uint64]
	Opt3 *argparse.Binding[bool]
	Opt4 *argparse.Binding[string]
}

func declareOptions(r *argparse.Registry) options {
	return options{
		Opt1: argparse.MustDeclareDefault(r, "i,opt1", "option 1 description", int32(-1)),
		Opt2: argparse.MustDeclare[uint64](r, "u,opt2", "option 2 description"),
		Opt3: argparse.MustDeclare[bool](r, "b,opt3", "option 3 description"),
		Opt4: argparse.MustDeclareDefault(r, "s,opt4", "option 4 description", "default value"),
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("argdemo: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := checkMetaValues(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	meta, err := yargs.ParseKnownFlags[metaFlags](args, yargs.KnownFlagsOptions{})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var reg argparse.Registry
	opts := declareOptions(&reg)

	if err := applyDefaults(&reg, meta.Flags.DefaultsFile); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	err = reg.Parse(meta.RemainingArgs)
	if errors.Is(err, argparse.ErrHelp) {
		if err := printHelp(stdout, &reg); err != nil {
			return 1
		}
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if path := meta.Flags.WriteDefaults; path != "" {
		if err := optfile.Save(path, &reg); err != nil {
			fmt.Fprintf(stderr, "Error: failed to write defaults: %v\n", err)
			return 1
		}
	}

	printResult(stdout, opts)
	return 0
}

// checkMetaValues reports a meta flag given without a value. yargs leaves
// such a flag empty, which would otherwise read as "not given".
func checkMetaValues(args []string) error {
	for i, arg := range args {
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !slices.Contains(metaFlagNames, name) {
			continue
		}
		if hasValue {
			if value == "" {
				return &argparse.TokenError{Token: "--" + name, Err: argparse.ErrMissingValue}
			}
			continue
		}
		// Same rule yargs uses to decide whether the next token is the value.
		if i+1 >= len(args) || (strings.HasPrefix(args[i+1], "-") && !isNumber(args[i+1])) {
			return &argparse.TokenError{Token: "--" + name, Err: argparse.ErrMissingValue}
		}
	}
	return nil
}

// isNumber matches an optionally negative decimal such as -10 or -3.14.
func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// applyDefaults presets options from the first preset file found: the
// --defaults-file flag, then $ARGDEMO_DEFAULTS, then argdemo.toml in the
// working directory or any parent. Only a file named by the flag is
// required to load; the others are skipped with a warning.
func applyDefaults(reg *argparse.Registry, flagPath string) error {
	if flagPath != "" {
		p, err := optfile.Load(flagPath)
		if err != nil {
			return err
		}
		return p.Apply(reg)
	}

	path := os.Getenv(defaultsEnv)
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		path, err = optfile.Find(cwd, defaultsFileName)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("failed to look for %s: %v", defaultsFileName, err)
			}
			return nil
		}
	}
	p, err := optfile.Load(path)
	if err != nil {
		log.Printf("failed to load defaults: %v", err)
		return nil
	}
	if err := p.Apply(reg); err != nil {
		log.Printf("failed to apply defaults from %s: %v", path, err)
	}
	return nil
}

func colorizerFor(w io.Writer) tui.Colorizer {
	if f, ok := w.(*os.File); ok {
		return tui.ForFile(f)
	}
	return tui.Colorizer{}
}

func printHelp(w io.Writer, reg *argparse.Registry) error {
	c := colorizerFor(w)
	fmt.Fprintln(w, "argdemo - typed option parsing demo")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    argdemo [-<alias> [value] | --<name> [value]]...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	if err := reg.WriteHelp(w, c); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n    Show this help message\n", c.Wrap(tui.StyleOption, "-h,--help"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "DEFAULTS:")
	fmt.Fprintf(w, "    --defaults-file PATH   Apply option defaults from a TOML or YAML file (%s)\n", defaultsEnv)
	fmt.Fprintf(w, "    --write-defaults PATH  Save the effective option values as TOML\n")
	_, err := fmt.Fprintf(w, "    Without either, %s is searched from the working directory upward.\n", defaultsFileName)
	return err
}

// show renders a binding, or "?" when it has no value.
func show[T argparse.Type](b *argparse.Binding[T]) string {
	if !b.IsSet() {
		return "?"
	}
	return fmt.Sprint(b.Value())
}

func printResult(w io.Writer, opts options) {
	fmt.Fprintf(w, "result: args opt1 = %s\n", show(opts.Opt1))
	fmt.Fprintf(w, "        args opt2 = %s\n", show(opts.Opt2))
	fmt.Fprintf(w, "        args opt3 = %s\n", show(opts.Opt3))
	fmt.Fprintf(w, "        args opt4 = %s\n", show(opts.Opt4))
}
