// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

type testOptions struct {
	Opt1 *Binding[int32]
	Opt2 *Binding[uint64]
	Opt3 *Binding[bool]
	Opt4 *Binding[string]
}

func declareTestOptions(r *Registry) testOptions {
	return testOptions{
		Opt1: MustDeclareDefault(r, "i,opt1", "option 1 description", int32(-1)),
		Opt2: MustDeclare[uint64](r, "u,opt2", "option 2 description"),
		Opt3: MustDeclare[bool](r, "b,opt3", "option 3 description"),
		Opt4: MustDeclareDefault(r, "s,opt4", "option 4 description", "default value"),
	}
}
