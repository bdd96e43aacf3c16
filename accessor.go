// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

// An accessor reads and writes the slots of the sequence being sorted.
// The fast accessors index an Array's backing store directly and are only
// valid while the Array keeps the shape and length it had when the sort
// started; compatible reports whether that still holds.
type accessor interface {
	load(i int) (Value, bool)
	store(i int, v Value)
	delete(i int)
	compatible() bool
	// name identifies the accessor in logs.
	name() string
}

// newAccessor picks the accessor for seq's current storage.
func newAccessor(seq Sequence) accessor {
	a, ok := seq.(*Array)
	if !ok {
		return genericAccessor{seq}
	}
	base := packed{a: a, shape: a.Shape(), length: a.length}
	switch a.layout {
	case LayoutInts:
		return intsAccessor{base}
	case LayoutFloats:
		return floatsAccessor{base}
	case LayoutValues:
		return valuesAccessor{base}
	default:
		return genericAccessor{seq}
	}
}

// packed holds the state shared by the fast accessors.
type packed struct {
	a      *Array
	shape  Shape
	length int
}

func (p packed) compatible() bool {
	return p.a.Shape() == p.shape && p.a.length == p.length
}

type intsAccessor struct{ packed }

func (x intsAccessor) load(i int) (Value, bool) { return loadInt(x.a.ints, i) }
func (x intsAccessor) store(i int, v Value)     { x.a.ints[i] = v.Int64() }
func (x intsAccessor) delete(i int)             { x.a.ints[i] = intHole }
func (intsAccessor) name() string               { return "ints" }

type floatsAccessor struct{ packed }

func (x floatsAccessor) load(i int) (Value, bool) { return loadFloat(x.a.floats, i) }
func (x floatsAccessor) store(i int, v Value)     { x.a.floats[i] = floatSlot(v) }
func (x floatsAccessor) delete(i int)             { x.a.floats[i] = holeFloat() }
func (floatsAccessor) name() string               { return "floats" }

type valuesAccessor struct{ packed }

func (x valuesAccessor) load(i int) (Value, bool) { return loadValue(x.a.values, i) }
func (x valuesAccessor) store(i int, v Value)     { x.a.values[i] = v }
func (x valuesAccessor) delete(i int)             { x.a.values[i] = holeValue() }
func (valuesAccessor) name() string               { return "values" }

// genericAccessor goes through the Sequence methods. It works for any
// sequence in any state.
type genericAccessor struct {
	seq Sequence
}

func (g genericAccessor) load(i int) (Value, bool) {
	if i >= g.seq.Len() {
		return Value{}, false
	}
	return g.seq.Load(i)
}

func (g genericAccessor) store(i int, v Value) { g.seq.Store(i, v) }

func (g genericAccessor) delete(i int) {
	if i < g.seq.Len() {
		g.seq.Delete(i)
	}
}

func (genericAccessor) compatible() bool { return true }
func (genericAccessor) name() string     { return "generic" }
