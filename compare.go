// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"errors"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// ErrBadComparator is wrapped by the error Sort returns when the
// comparison function is neither undefined nor a Func.
var ErrBadComparator = errors.New("comparison function must be a Func or undefined")

// comparator is the comparison mode of a sort: the default order when
// user is nil, the user's Func otherwise.
type comparator struct {
	user Func
}

func newComparator(comparefn Value) (comparator, error) {
	switch comparefn.Kind() {
	case KindUndefined:
		return comparator{}, nil
	case KindFunc:
		return comparator{user: comparefn.Func()}, nil
	}
	return comparator{}, xerrors.Errorf("seqsort: cannot sort with a %s comparison function: %w", comparefn.Kind(), ErrBadComparator)
}

// compareError carries an error returned by a comparison function out of
// the sort. It is recovered by sortState.run.
type compareError struct {
	err error
}

// compare orders x and y: negative when x sorts first, positive when y
// does, zero when they are equivalent. Whenever the comparison may have
// run code outside the package the accessor is revalidated.
func (s *sortState) compare(x, y Value) float64 {
	s.stats.Comparisons++
	if s.cmp.user == nil {
		order, external := compareDefault(x, y)
		if external {
			s.checkAccessor()
		}
		return order
	}
	v, err := s.cmp.user(x, y)
	if err != nil {
		panic(compareError{err})
	}
	order := v.Number()
	s.checkAccessor()
	if math.IsNaN(order) {
		return 0
	}
	return order
}

// DefaultCompare reports the default order of x and y as -1, 0 or +1.
// Two numbers compare numerically; anything else is converted to a
// string and compared by UTF-16 code units.
func DefaultCompare(x, y Value) int {
	order, _ := compareDefault(x, y)
	return int(order)
}

// compareDefault also reports whether a String method was called.
func compareDefault(x, y Value) (order float64, external bool) {
	if x.Kind() == KindInt && y.Kind() == KindInt {
		a, b := int64(x.num), int64(y.num)
		switch {
		case a < b:
			return -1, false
		case a > b:
			return 1, false
		}
		return 0, false
	}
	if isNumber(x) && isNumber(y) {
		a, b := x.Float64(), y.Float64()
		switch {
		case a < b:
			return -1, false
		case a > b:
			return 1, false
		}
		return 0, false
	}
	external = x.Kind() == KindAny || y.Kind() == KindAny
	return float64(compareUTF16(x.String(), y.String())), external
}

func isNumber(v Value) bool {
	switch v.Kind() {
	case KindInt:
		return true
	case KindFloat:
		return !math.IsNaN(v.float())
	}
	return false
}

// compareUTF16 compares a and b as sequences of UTF-16 code units, so that
// characters outside the Basic Multilingual Plane order by their
// surrogates rather than by code point.
func compareUTF16(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			a1, a2 := codeUnits(ra)
			b1, b2 := codeUnits(rb)
			if a1 != b1 {
				return sign(int(a1) - int(b1))
			}
			return sign(int(a2) - int(b2))
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	}
	return 1
}

// codeUnits returns the UTF-16 encoding of r. The second unit is -1 for
// runes in the Basic Multilingual Plane.
func codeUnits(r rune) (rune, rune) {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return utf16.EncodeRune(r)
	}
	return r, -1
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
