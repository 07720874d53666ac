// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Styles used when rendering option help.
const (
	StyleOption  = color.FgCyan
	StyleType    = color.FgYellow
	StyleDefault = color.FgHiBlack
	StyleError   = color.FgRed
)

// Colorizer wraps text in ANSI colour when Enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns an enabled Colorizer unless enabled is false or the
// environment asks for plain output (NO_COLOR, TERM unset or "dumb").
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	termName := os.Getenv("TERM")
	if termName == "" || termName == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForFile enables colour only when f is a terminal.
func ForFile(f *os.File) Colorizer {
	return NewColorizer(term.IsTerminal(int(f.Fd())))
}

// Wrap returns text in the given style, or unchanged when disabled.
func (c Colorizer) Wrap(style color.Attribute, text string) string {
	if !c.Enabled || text == "" {
		return text
	}
	col := color.New(style)
	// fatih/color disables itself for non-terminals; the decision was
	// already made above.
	col.EnableColor()
	return col.Sprint(text)
}
