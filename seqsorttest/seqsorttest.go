// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqsorttest provides helpers for testing code that sorts
// sequences: a reference result to compare against, random inputs with
// holes and placeholders, and a slog handler that captures log output.
package seqsorttest

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"sync"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/seqsort"
	"golang.org/x/exp/seqsort/internal/handler"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// A Slot is one index of a sequence as observed through Load.
type Slot struct {
	Missing bool
	Value   seqsort.Value
}

func (s Slot) String() string {
	if s.Missing {
		return "<missing>"
	}
	return s.Value.Literal()
}

// Slots returns the contents of seq.
func Slots(seq seqsort.Sequence) []Slot {
	n := seq.Len()
	slots := make([]Slot, n)
	for i := range slots {
		v, ok := seq.Load(i)
		slots[i] = Slot{Missing: !ok, Value: v}
	}
	return slots
}

// CmpOption compares Values with Equal, except that numbers compare by
// numeric value regardless of whether they are stored as ints or floats.
func CmpOption() cmp.Option {
	return cmp.Comparer(func(x, y seqsort.Value) bool {
		if isNumber(x) && isNumber(y) {
			f, g := x.Float64(), y.Float64()
			return f == g && math.Signbit(f) == math.Signbit(g) || math.IsNaN(f) && math.IsNaN(g)
		}
		return x.Equal(y)
	})
}

func isNumber(v seqsort.Value) bool {
	k := v.Kind()
	return k == seqsort.KindInt || k == seqsort.KindFloat
}

// Expect returns the slots a stable sort of seq by cmp must produce: the
// elements in stable order, then the undefined placeholders, then missing
// slots. A nil cmp means seqsort.DefaultCompare.
func Expect(seq seqsort.Sequence, cmp func(x, y seqsort.Value) int) []Slot {
	if cmp == nil {
		cmp = seqsort.DefaultCompare
	}
	n := seq.Len()
	var live []seqsort.Value
	undefined := 0
	for i := 0; i < n; i++ {
		v, ok := seq.Load(i)
		switch {
		case !ok:
		case v.IsUndefined():
			undefined++
		default:
			live = append(live, v)
		}
	}
	if n < 2 {
		return Slots(seq)
	}
	slices.SortStableFunc(live, cmp)

	slots := make([]Slot, 0, n)
	for _, v := range live {
		slots = append(slots, Slot{Value: v})
	}
	for i := 0; i < undefined; i++ {
		slots = append(slots, Slot{Value: seqsort.Undefined()})
	}
	for len(slots) < n {
		slots = append(slots, Slot{Missing: true})
	}
	return slots
}

// OrderNames lists the orders Order accepts.
var OrderNames = []string{"default", "numeric", "reverse"}

// Order returns the comparison function named name:
//
//	default  undefined, selecting seqsort.DefaultCompare
//	numeric  a Func ordering its arguments by their numeric values
//	reverse  a Func ordering its arguments by DefaultCompare, reversed
func Order(name string) (seqsort.Value, error) {
	switch name {
	case "default":
		return seqsort.Undefined(), nil
	case "numeric":
		return seqsort.FuncValue(func(args ...seqsort.Value) (seqsort.Value, error) {
			return seqsort.NumberValue(args[0].Number() - args[1].Number()), nil
		}), nil
	case "reverse":
		return seqsort.FuncValue(func(args ...seqsort.Value) (seqsort.Value, error) {
			return seqsort.IntValue(seqsort.DefaultCompare(args[1], args[0])), nil
		}), nil
	}
	return seqsort.Value{}, fmt.Errorf("seqsorttest: unknown order %q", name)
}

// A Tag is a value that sorts by Key but remembers Seq, so that the order
// of elements with equal keys can be checked after a sort. Its String
// method returns the key.
type Tag struct {
	Key int
	Seq int
}

func (t Tag) String() string { return strconv.Itoa(t.Key) }

// Float64 returns the key, so that numeric comparison functions see it.
func (t Tag) Float64() float64 { return float64(t.Key) }

// CompareTags orders Tag values by key. It panics if x or y is not a Tag.
func CompareTags(x, y seqsort.Value) int {
	a, b := x.Any().(Tag), y.Any().(Tag)
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	}
	return 0
}

// Tags returns an Array of n Tags with keys drawn from [0, keys) and
// sequence numbers 0 through n-1.
func Tags(r *rand.Rand, n, keys int) *seqsort.Array {
	vals := make([]seqsort.Value, n)
	for i := range vals {
		vals[i] = seqsort.AnyValue(Tag{Key: r.Intn(keys), Seq: i})
	}
	return seqsort.NewArray(vals...)
}

// Ints returns an Array of n ints drawn from [0, max).
func Ints(r *rand.Rand, n, max int) *seqsort.Array {
	vals := make([]seqsort.Value, n)
	for i := range vals {
		vals[i] = seqsort.IntValue(r.Intn(max))
	}
	return seqsort.NewArray(vals...)
}

// Mixed returns an Array of n slots holding a mix of ints, floats,
// strings, null, booleans, undefined placeholders and missing slots.
func Mixed(r *rand.Rand, n int) *seqsort.Array {
	a := seqsort.NewArray()
	for i := 0; i < n; i++ {
		switch r.Intn(8) {
		case 0:
			a.SetLen(i + 1)
		case 1:
			a.Store(i, seqsort.Undefined())
		case 2:
			a.Store(i, seqsort.FloatValue(float64(r.Intn(100))/4))
		case 3:
			a.Store(i, seqsort.StringValue(fmt.Sprintf("s%d", r.Intn(50))))
		case 4:
			a.Store(i, seqsort.Null())
		case 5:
			a.Store(i, seqsort.BoolValue(r.Intn(2) == 0))
		default:
			a.Store(i, seqsort.IntValue(r.Intn(100)-50))
		}
	}
	return a
}

// Patterned returns n ints shaped to exercise run detection and
// galloping: ascending and descending stretches, plateaus of equal
// values, and random noise.
func Patterned(r *rand.Rand, n int) *seqsort.Array {
	vals := make([]seqsort.Value, 0, n)
	for len(vals) < n {
		m := min(n-len(vals), 1+r.Intn(200))
		start := r.Intn(1000)
		switch r.Intn(4) {
		case 0:
			for i := 0; i < m; i++ {
				vals = append(vals, seqsort.IntValue(start+i))
			}
		case 1:
			for i := 0; i < m; i++ {
				vals = append(vals, seqsort.IntValue(start-i))
			}
		case 2:
			for i := 0; i < m; i++ {
				vals = append(vals, seqsort.IntValue(start))
			}
		default:
			for i := 0; i < m; i++ {
				vals = append(vals, seqsort.IntValue(r.Intn(1000)))
			}
		}
	}
	return seqsort.NewArray(vals...)
}

// An Entry is a captured log record with its attributes flattened.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// Capture records log output. It is safe for concurrent use.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

// NewCapture returns a logger that writes records at or above level to
// the returned Capture.
func NewCapture(level slog.Leveler) (*slog.Logger, *Capture) {
	c := &Capture{}
	return slog.New(handler.New(c, level)), c
}

// Log implements the sink the logger writes to.
func (c *Capture) Log(_ context.Context, level slog.Level, msg string, attrs []slog.Attr) error {
	m := make(map[string]any, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value.Any()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{level, msg, m})
	return nil
}

// Entries returns the records captured so far.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.entries)
}

// Messages returns the messages of the records captured so far.
func (c *Capture) Messages() []string {
	var msgs []string
	for _, e := range c.Entries() {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Reset discards the captured records.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
