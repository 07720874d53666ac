// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/argparse/pkg/tui"
)

// Help renders one line per option in declaration order:
//
//	-i,--opt1 : int32 (-1)
//	    option 1 description
//
// The value in parentheses is shown only for options that are set.
func (r *Registry) Help() string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = r.WriteHelp(&b, tui.Colorizer{})
	return b.String()
}

// WriteHelp writes the same text as Help to w, coloured by c.
func (r *Registry) WriteHelp(w io.Writer, c tui.Colorizer) error {
	for _, o := range r.Options() {
		line := fmt.Sprintf("%s : %s",
			c.Wrap(tui.StyleOption, o.ID.Short()+","+o.ID.Long()),
			c.Wrap(tui.StyleType, o.Kind.String()))
		if o.Set {
			line += " " + c.Wrap(tui.StyleDefault, "("+o.Value+")")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if o.Help != "" {
			if _, err := fmt.Fprintf(w, "    %s\n", o.Help); err != nil {
				return err
			}
		}
	}
	return nil
}
