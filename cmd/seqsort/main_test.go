// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

func runString(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestLines(t *testing.T) {
	for _, test := range []struct {
		args []string
		in   string
		want string
	}{
		{nil, "[3, 1, 2]\n", "[1, 2, 3]\n"},
		{nil, "[10, 9, , undefined, \"a\"]\n\n[2,1]\n", "[9, 10, \"a\", undefined, ,]\n\n[1, 2]\n"},
		{[]string{"-cmp=numeric"}, "[\"10\", \"9\", 1]\n", "[1, \"9\", \"10\"]\n"},
		{[]string{"-cmp", "reverse"}, "[1, 3, 2, undefined]\n", "[3, 2, 1, undefined]\n"},
		{nil, "[1]", "[1]\n"},
	} {
		got, _, err := runString(t, test.in, test.args...)
		if err != nil {
			t.Errorf("%v %q: %v", test.args, test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("%v %q: got %q, want %q", test.args, test.in, got, test.want)
		}
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.WriteFile(a, []byte("[2, 1]\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("[\"y\", \"x\"]\n"), 0666); err != nil {
		t.Fatal(err)
	}
	got, _, err := runString(t, "", a, b)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[1, 2]\n[\"x\", \"y\"]\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, _, err = runString(t, "", filepath.Join(dir, "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestArchive(t *testing.T) {
	in := txtar.Format(&txtar.Archive{
		Comment: []byte("cases\n"),
		Files: []txtar.File{
			{Name: "ints", Data: []byte("[3, , 1]\n[2, 2, 1]\n")},
			{Name: "strings", Data: []byte("[\"b\", undefined, \"a\"]\n")},
		},
	})
	got, _, err := runString(t, string(in), "-archive")
	if err != nil {
		t.Fatal(err)
	}
	ar := txtar.Parse([]byte(got))
	want := &txtar.Archive{
		Comment: []byte("cases\n"),
		Files: []txtar.File{
			{Name: "ints", Data: []byte("[1, 3, ,]\n[1, 2, 2]\n")},
			{Name: "strings", Data: []byte("[\"a\", \"b\", undefined]\n")},
		},
	}
	if diff := cmp.Diff(want, ar); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	for _, test := range []struct {
		args []string
		in   string
		want string
	}{
		{nil, "[1, 2\n", "<stdin>:1: seqsort: offset"},
		{nil, "[1]\n\n[x]\n", "<stdin>:3: seqsort: offset"},
		{[]string{"-cmp=bogus"}, "", `unknown -cmp "bogus"`},
		{[]string{"-log=bogus"}, "", `unknown -log "bogus"`},
		{[]string{"-archive"}, "-- f --\n[1,\n", "<stdin>:f:1:"},
	} {
		_, _, err := runString(t, test.in, test.args...)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%v %q: got error %v, want %q", test.args, test.in, err, test.want)
		}
	}

	_, stderr, err := runString(t, "", "-nosuchflag")
	if !errors.Is(err, errFlags) {
		t.Errorf("bad flag: got %v, want errFlags", err)
	}
	if !strings.Contains(stderr, "nosuchflag") {
		t.Errorf("bad flag: stderr %q", stderr)
	}
}

func TestLogBackends(t *testing.T) {
	for _, backend := range []string{"text", "json", "zap", "zerolog", "logrus", "logr", "gokit"} {
		t.Run(backend, func(t *testing.T) {
			out, stderr, err := runString(t, "[2, 1]\n", "-v", "-log="+backend)
			if err != nil {
				t.Fatal(err)
			}
			if out != "[1, 2]\n" {
				t.Errorf("stdout %q", out)
			}
			if !strings.Contains(stderr, "sort done") {
				t.Errorf("stderr %q does not mention the sort", stderr)
			}

			// Without -v nothing is logged.
			_, stderr, err = runString(t, "[2, 1]\n", "-log="+backend)
			if err != nil {
				t.Fatal(err)
			}
			if stderr != "" {
				t.Errorf("quiet run logged %q", stderr)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	out, stderr, err := runString(t, "[2, 1]\n[3, undefined]\n", "-trace")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[1, 2]\n[3, undefined]\n" {
		t.Errorf("stdout %q", out)
	}
	if n := strings.Count(stderr, `"Name":"seqsort.Sort"`); n != 2 {
		t.Errorf("got %d spans in %q, want 2", n, stderr)
	}
}

func TestTraceShutdownError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	err := run(ctx, []string{"-trace"}, strings.NewReader("[2, 1]\n"), &out, &errOut)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want the exporter's shutdown error", err)
	}
	if got := out.String(); got != "[1, 2]\n" {
		t.Errorf("stdout %q", got)
	}
}
