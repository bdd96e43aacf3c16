// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"errors"
	"math"
	"testing"
)

func TestParseArray(t *testing.T) {
	for _, test := range []struct {
		in     string
		want   string // in, if empty
		length int
		layout Layout
	}{
		{"[]", "", 0, LayoutInts},
		{"[1, 2, 3]", "", 3, LayoutInts},
		{"[1,2,3]", "[1, 2, 3]", 3, LayoutInts},
		{"[1.5, -2, 0x10]", "[1.5, -2, 16]", 3, LayoutFloats},
		{"[1, , 3]", "", 3, LayoutInts},
		{"[,]", "", 1, LayoutInts},
		{"[, 1]", "", 2, LayoutInts},
		{"[1, ,]", "", 2, LayoutInts},
		{"[1,]", "[1]", 1, LayoutInts},
		{"[-Infinity, NaN, Infinity, -0]", "[-Infinity, NaN, Infinity, 0]", 4, LayoutFloats},
		{"[1e400]", "[Infinity]", 1, LayoutFloats},
		{"[4294967296]", "", 1, LayoutFloats},
		{`["a", undefined, null, true, false]`, "", 5, LayoutValues},
		{"[`raw`, \"\\u00e9\"]", `["raw", "é"]`, 2, LayoutValues},
		{"  [ 1 /* one */ , 2 ]  ", "[1, 2]", 2, LayoutInts},
	} {
		a, err := ParseArray(test.in)
		if err != nil {
			t.Errorf("%s: %v", test.in, err)
			continue
		}
		want := test.want
		if want == "" {
			want = test.in
		}
		if got := a.String(); got != want {
			t.Errorf("%s: got %s, want %s", test.in, got, want)
		}
		if a.Len() != test.length {
			t.Errorf("%s: Len = %d, want %d", test.in, a.Len(), test.length)
		}
		if a.Layout() != test.layout {
			t.Errorf("%s: layout %s, want %s", test.in, a.Layout(), test.layout)
		}
	}
}

func TestParseArrayNegativeZero(t *testing.T) {
	a, err := ParseArray("[-0]")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := a.Load(0)
	if v.Kind() != KindFloat || !math.Signbit(v.Float64()) {
		t.Errorf("got %#v, want -0", v)
	}
}

func TestParseArrayErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"1, 2",
		"[1 2]",
		"[1, 2",
		"[1] x",
		"[-x]",
		"[-\"s\"]",
		"[foo]",
		"[function]",
		"[[1]]",
		`["unterminated]`,
	} {
		_, err := ParseArray(in)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: got %v, want a *SyntaxError", in, err)
		}
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	a := NewArray(
		IntValue(-7),
		FloatValue(2.25),
		StringValue("tab\there"),
		Undefined(),
		Null(),
		BoolValue(false),
		FloatValue(math.Inf(1)),
	)
	a.SetLen(9)
	a.Store(8, StringValue(""))
	a.Delete(2)

	b, err := ParseArray(a.String())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), a.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	for i := 0; i < a.Len(); i++ {
		v, ok := a.Load(i)
		w, ok2 := b.Load(i)
		if ok != ok2 || ok && !v.Equal(w) {
			t.Errorf("slot %d: got %v, %t; want %v, %t", i, w, ok2, v, ok)
		}
	}
}
