// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

// A Sequence is an indexed collection whose slots may be missing.
//
// Comparison functions and String methods run while a Sequence is being
// sorted and may change it, so implementations must accept any index:
// Load reports false past the end, Store grows the Sequence as needed, and
// Delete past the end does nothing.
type Sequence interface {
	// Len returns the number of slots, including missing ones.
	Len() int
	// Load returns the element at index i, or false if the slot is missing.
	Load(i int) (Value, bool)
	// Store sets the element at index i.
	Store(i int, v Value)
	// Delete makes the slot at index i missing.
	Delete(i int)
}

var _ Sequence = (*Array)(nil)
