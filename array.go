// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"math"
	"strings"

	"golang.org/x/exp/maps"
)

// Layout is the storage representation of an Array.
type Layout uint8

const (
	// LayoutInts packs elements of KindInt.
	LayoutInts Layout = iota
	// LayoutFloats packs numbers as float64.
	LayoutFloats
	// LayoutValues holds arbitrary Values.
	LayoutValues
	// LayoutDictionary holds elements in a map keyed by index.
	// Arrays with large gaps use it.
	LayoutDictionary
)

var layoutStrings = []string{"Ints", "Floats", "Values", "Dictionary"}

func (l Layout) String() string {
	if int(l) < len(layoutStrings) {
		return layoutStrings[l]
	}
	return "<unknown seqsort.Layout>"
}

// A Shape identifies one generation of an Array's layout. Every layout
// transition produces a new Shape; changing the length does not.
type Shape struct {
	layout     Layout
	generation uint64
}

// Layout returns the layout the Shape describes.
func (s Shape) Layout() Layout { return s.layout }

// maxGap is the largest run of holes a store past the end of a packed
// Array may create before the Array switches to LayoutDictionary.
const maxGap = 1024

const intHole = math.MinInt64

// floatHoleBits is a NaN payload reserved for holes. NaNs stored by
// callers are canonicalized so they never collide with it.
const floatHoleBits = 0xFFF7FFFFFFF7FFFF

// An Array is a Sequence with a dense or sparse backing store. The
// backing store starts out in the most specific layout that can hold the
// elements and becomes more general as elements are stored.
//
// An Array is not safe for concurrent use.
type Array struct {
	length     int
	layout     Layout
	generation uint64

	ints   []int64
	floats []float64
	values []Value
	dict   map[int]Value
}

// NewArray returns an Array holding vals.
func NewArray(vals ...Value) *Array {
	slots := make([]Value, len(vals))
	copy(slots, vals)
	return newArrayFromSlots(slots)
}

// NewSparseArray returns an Array of length n in which every slot is
// missing. It uses LayoutDictionary.
func NewSparseArray(n int) *Array {
	if n < 0 {
		panic("seqsort: negative length")
	}
	return &Array{length: n, layout: LayoutDictionary, dict: map[int]Value{}}
}

// newArrayFromSlots takes ownership of slots, in which holes are
// represented by holeValue.
func newArrayFromSlots(slots []Value) *Array {
	layout := LayoutInts
	for _, v := range slots {
		switch v.Kind() {
		case kindHole, KindInt:
		case KindFloat:
			if layout == LayoutInts {
				layout = LayoutFloats
			}
		default:
			layout = LayoutValues
		}
	}
	a := &Array{length: len(slots), layout: layout}
	switch layout {
	case LayoutInts:
		a.ints = make([]int64, len(slots))
		for i, v := range slots {
			a.ints[i] = intSlot(v)
		}
	case LayoutFloats:
		a.floats = make([]float64, len(slots))
		for i, v := range slots {
			a.floats[i] = floatSlot(v)
		}
	default:
		a.values = slots
	}
	return a
}

func intSlot(v Value) int64 {
	if v.isHole() {
		return intHole
	}
	return v.Int64()
}

func floatSlot(v Value) float64 {
	if v.isHole() {
		return holeFloat()
	}
	f := v.Float64()
	if math.IsNaN(f) {
		return math.NaN()
	}
	return f
}

func holeFloat() float64 { return math.Float64frombits(floatHoleBits) }

func isFloatHole(f float64) bool { return math.Float64bits(f) == floatHoleBits }

// Len returns the length of a, counting missing slots.
func (a *Array) Len() int { return a.length }

// Layout returns the current layout of a.
func (a *Array) Layout() Layout { return a.layout }

// Shape returns the current shape of a.
func (a *Array) Shape() Shape {
	return Shape{layout: a.layout, generation: a.generation}
}

// backingLen is the size of the backing store.
func (a *Array) backingLen() int {
	switch a.layout {
	case LayoutInts:
		return len(a.ints)
	case LayoutFloats:
		return len(a.floats)
	case LayoutValues:
		return len(a.values)
	default:
		return len(a.dict)
	}
}

// Load returns the element at index i. It reports false if i is out of
// range or the slot is missing.
func (a *Array) Load(i int) (Value, bool) {
	if i < 0 || i >= a.length {
		return Value{}, false
	}
	switch a.layout {
	case LayoutInts:
		return loadInt(a.ints, i)
	case LayoutFloats:
		return loadFloat(a.floats, i)
	case LayoutValues:
		return loadValue(a.values, i)
	default:
		v, ok := a.dict[i]
		return v, ok
	}
}

func loadInt(ints []int64, i int) (Value, bool) {
	x := ints[i]
	if x == intHole {
		return Value{}, false
	}
	return Value{num: uint64(x), any: kind(KindInt)}, true
}

func loadFloat(floats []float64, i int) (Value, bool) {
	f := floats[i]
	if isFloatHole(f) {
		return Value{}, false
	}
	return NumberValue(f), true
}

func loadValue(values []Value, i int) (Value, bool) {
	v := values[i]
	if v.isHole() {
		return Value{}, false
	}
	return v, true
}

// Has reports whether the slot at index i holds an element.
func (a *Array) Has(i int) bool {
	_, ok := a.Load(i)
	return ok
}

// Store sets the element at index i, growing the Array if i is past the
// end. It panics if i is negative.
func (a *Array) Store(i int, v Value) {
	if i < 0 {
		panic("seqsort: negative index")
	}
	if i >= a.length {
		a.grow(i + 1)
	}
	a.prepareFor(v)
	switch a.layout {
	case LayoutInts:
		a.ints[i] = v.Int64()
	case LayoutFloats:
		a.floats[i] = floatSlot(v)
	case LayoutValues:
		a.values[i] = v
	default:
		a.dict[i] = v
	}
}

// Delete makes the slot at index i missing. The length is unchanged.
func (a *Array) Delete(i int) {
	if i < 0 || i >= a.length {
		return
	}
	switch a.layout {
	case LayoutInts:
		a.ints[i] = intHole
	case LayoutFloats:
		a.floats[i] = holeFloat()
	case LayoutValues:
		a.values[i] = holeValue()
	default:
		delete(a.dict, i)
	}
}

// Push appends v.
func (a *Array) Push(v Value) { a.Store(a.length, v) }

// Pop removes the last slot and returns its element, if any.
func (a *Array) Pop() (Value, bool) {
	if a.length == 0 {
		return Value{}, false
	}
	v, ok := a.Load(a.length - 1)
	a.SetLen(a.length - 1)
	return v, ok
}

// SetLen changes the length of a. Slots added by growing are missing;
// elements past a shorter length are discarded.
func (a *Array) SetLen(n int) {
	if n < 0 {
		panic("seqsort: negative length")
	}
	if n >= a.length {
		a.grow(n)
		return
	}
	switch a.layout {
	case LayoutInts:
		a.ints = a.ints[:n:n]
	case LayoutFloats:
		a.floats = a.floats[:n:n]
	case LayoutValues:
		clear(a.values[n:])
		a.values = a.values[:n:n]
	default:
		for _, k := range maps.Keys(a.dict) {
			if k >= n {
				delete(a.dict, k)
			}
		}
	}
	a.length = n
}

// grow extends a to length n with missing slots.
func (a *Array) grow(n int) {
	if n <= a.length {
		return
	}
	if a.layout != LayoutDictionary && n-a.length > maxGap {
		a.transition(LayoutDictionary)
	}
	switch a.layout {
	case LayoutInts:
		for len(a.ints) < n {
			a.ints = append(a.ints, intHole)
		}
	case LayoutFloats:
		for len(a.floats) < n {
			a.floats = append(a.floats, holeFloat())
		}
	case LayoutValues:
		for len(a.values) < n {
			a.values = append(a.values, holeValue())
		}
	}
	a.length = n
}

// prepareFor moves a to a layout that can hold v.
func (a *Array) prepareFor(v Value) {
	switch a.layout {
	case LayoutInts:
		switch v.Kind() {
		case KindInt:
		case KindFloat:
			a.transition(LayoutFloats)
		default:
			a.transition(LayoutValues)
		}
	case LayoutFloats:
		switch v.Kind() {
		case KindInt, KindFloat:
		default:
			a.transition(LayoutValues)
		}
	}
}

// transition converts the backing store to layout l and starts a new
// generation.
func (a *Array) transition(l Layout) {
	if l == a.layout {
		return
	}
	n := a.backingLen()
	var (
		floats []float64
		values []Value
		dict   map[int]Value
	)
	switch l {
	case LayoutFloats:
		floats = make([]float64, n)
		for i, x := range a.ints {
			if x == intHole {
				floats[i] = holeFloat()
			} else {
				floats[i] = float64(x)
			}
		}
	case LayoutValues:
		values = make([]Value, n)
		for i := range values {
			v, ok := a.loadPacked(i)
			if !ok {
				v = holeValue()
			}
			values[i] = v
		}
	case LayoutDictionary:
		dict = make(map[int]Value)
		for i := 0; i < n; i++ {
			if v, ok := a.loadPacked(i); ok {
				dict[i] = v
			}
		}
	}
	a.ints, a.floats, a.values, a.dict = nil, floats, values, dict
	a.layout = l
	a.generation++
}

func (a *Array) loadPacked(i int) (Value, bool) {
	switch a.layout {
	case LayoutInts:
		return loadInt(a.ints, i)
	case LayoutFloats:
		return loadFloat(a.floats, i)
	default:
		return loadValue(a.values, i)
	}
}

// String returns a in literal form: elements separated by commas, with
// missing slots left empty.
func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if v, ok := a.Load(i); ok {
			b.WriteString(v.Literal())
		}
	}
	if a.length > 0 && !a.Has(a.length-1) {
		b.WriteByte(',')
	}
	b.WriteByte(']')
	return b.String()
}
