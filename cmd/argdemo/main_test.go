// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// isolate runs the test in an empty directory with no preset in the
// environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(defaultsEnv, "")
	return dir
}

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: nil,
			want: "result: args opt1 = -1\n" +
				"        args opt2 = ?\n" +
				"        args opt3 = false\n" +
				"        args opt4 = default value\n",
		},
		{
			name: "all options",
			args: []string{"-i", "-7", "--opt2", "42", "-b", "-s", "hello"},
			want: "result: args opt1 = -7\n" +
				"        args opt2 = 42\n" +
				"        args opt3 = true\n" +
				"        args opt4 = hello\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			code, stdout, stderr := runArgs(t, tt.args...)
			if code != 0 {
				t.Fatalf("run() = %d, stderr = %q", code, stderr)
			}
			if diff := cmp.Diff(tt.want, stdout); diff != "" {
				t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	isolate(t)
	for _, arg := range []string{"-h", "--help"} {
		code, stdout, stderr := runArgs(t, "-i", "3", arg)
		if code != 0 {
			t.Fatalf("run(%s) = %d, want 0", arg, code)
		}
		if stderr != "" {
			t.Errorf("run(%s) stderr = %q, want empty", arg, stderr)
		}
		for _, want := range []string{"USAGE:", "-i,--opt1 : int32 (-1)", "-u,--opt2 : uint64\n", "-h,--help", "--defaults-file"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("help output missing %q:\n%s", want, stdout)
			}
		}
		if strings.Contains(stdout, "result:") {
			t.Errorf("help output should not print results:\n%s", stdout)
		}
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown option", args: []string{"--nope"}, wantErr: "Error: unknown option: --nope\n"},
		{name: "missing value", args: []string{"-u"}, wantErr: "Error: option -u requires a value\n"},
		{name: "sign", args: []string{"-u", "-1"}, wantErr: "Error: invalid value \"-1\" for option -u: negative value for unsigned option: -1\n"},
		{name: "syntax", args: []string{"positional"}, wantErr: "Error: invalid option syntax: positional\n"},
		{name: "defaults file without value", args: []string{"--defaults-file"}, wantErr: "Error: option --defaults-file requires a value\n"},
		{name: "defaults file before option", args: []string{"-s", "x", "--defaults-file", "-b"}, wantErr: "Error: option --defaults-file requires a value\n"},
		{name: "defaults file empty equals", args: []string{"--defaults-file="}, wantErr: "Error: option --defaults-file requires a value\n"},
		{name: "write defaults without value", args: []string{"-b", "--write-defaults"}, wantErr: "Error: option --write-defaults requires a value\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			code, stdout, stderr := runArgs(t, tt.args...)
			if code != 1 {
				t.Fatalf("run() = %d, want 1", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if stderr != tt.wantErr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantErr)
			}
		})
	}
}

func TestRunDefaultsFile(t *testing.T) {
	dir := isolate(t)
	preset := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(preset, []byte("opt2: 9\nopt4: from yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runArgs(t, "--defaults-file", preset, "-s", "cli")
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr)
	}
	want := "result: args opt1 = -1\n" +
		"        args opt2 = 9\n" +
		"        args opt3 = false\n" +
		"        args opt4 = cli\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}

	code, _, stderr = runArgs(t, "--defaults-file", filepath.Join(dir, "missing.toml"))
	if code != 1 || !strings.HasPrefix(stderr, "Error: ") {
		t.Fatalf("run(missing defaults) = %d, %q; want 1 and an error", code, stderr)
	}
}

func TestRunDiscoversDefaults(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, defaultsFileName), []byte("opt1 = 5\nopt3 = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runArgs(t)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "args opt1 = 5\n") || !strings.Contains(stdout, "args opt3 = true\n") {
		t.Fatalf("stdout = %q, want values from %s", stdout, defaultsFileName)
	}
}

func TestRunEnvDefaults(t *testing.T) {
	dir := isolate(t)
	preset := filepath.Join(dir, "env.toml")
	if err := os.WriteFile(preset, []byte("opt2 = 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(defaultsEnv, preset)

	code, stdout, stderr := runArgs(t)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, "args opt2 = 11\n") {
		t.Fatalf("stdout = %q, want opt2 from %s", stdout, defaultsEnv)
	}
}

func TestRunWriteDefaults(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "saved.toml")

	code, _, stderr := runArgs(t, "-u", "8", "--write-defaults", out, "-b")
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr)
	}

	code, stdout, stderr := runArgs(t, "--defaults-file", out)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr)
	}
	want := "result: args opt1 = -1\n" +
		"        args opt2 = 8\n" +
		"        args opt3 = true\n" +
		"        args opt4 = default value\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Fatalf("stdout mismatch (-want +got):\n%s", diff)
	}
}
