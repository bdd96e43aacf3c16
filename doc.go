// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package seqsort sorts sparse sequences of dynamically typed values in
place, with a stable TimSort.

A Sequence is indexed storage that may have missing slots (holes) and may
hold undefined placeholders. Sorting moves the live elements to the front
in order, then the placeholders, then the holes:

	a, _ := seqsort.ParseArray(`[3, undefined, , 1, "x"]`)
	seqsort.Sort(a, seqsort.Undefined())
	fmt.Println(a) // [1, 3, "x", undefined, ,]

# Order

With an undefined comparison function, two numbers compare numerically and
any other pair is compared as strings, code unit by code unit in UTF-16. A
comparison function is a Func taking two Values; its result is converted to
a number, and NaN counts as zero. The sort is stable for any comparison
function that is a consistent total preorder. For other functions it
still terminates, stays within the sequence's bounds and keeps every
element, but the order is unspecified.

The default order is itself not transitive when numbers are mixed with
strings that look like numbers: 10 sorts before "5" as a string, "5"
before 9 as a string, and 9 before 10 as a number. Sorting such a mix
gives an unspecified order; use a comparison function that converts
both arguments the same way.

# Storage

Array is the package's Sequence. It stores elements in the most specific
of four layouts: packed ints, packed floats, packed Values, or a
dictionary for arrays with large gaps. While sorting an Array, the live
elements are read and written straight through its backing store. The
comparison function and String methods may modify the Array; once its
layout or length differs from what the sort started with, the sort falls
back, for the rest of the call, to the Sequence methods, which are safe
for any state.

# Diagnostics

Options carries a *slog.Logger and an OpenTelemetry tracer. Each sort logs
one debug record and records one span; the adapter packages route the log
records to zap, zerolog, logrus, logr or go-kit loggers.
*/
package seqsort
