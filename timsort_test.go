// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"context"
	"math/rand"
	"testing"
)

func ints(xs ...int) []Value {
	vals := make([]Value, len(xs))
	for i, x := range xs {
		vals[i] = IntValue(x)
	}
	return vals
}

// testState returns a sort state over work using the default order.
func testState(work []Value) *sortState {
	s := newSortState(NewArray(), comparator{}, 0)
	s.work = work
	return s
}

func TestMinRunLength(t *testing.T) {
	for _, test := range []struct{ n, want int }{
		{0, 0},
		{1, 1},
		{63, 63},
		{64, 32},
		{65, 33},
		{127, 64},
		{128, 32},
		{2048, 32},
		{2049, 33},
		{1<<20 + 1, 33},
	} {
		if got := minRunLength(test.n); got != test.want {
			t.Errorf("minRunLength(%d) = %d, want %d", test.n, got, test.want)
		}
	}
}

func TestCountAndMakeRun(t *testing.T) {
	for _, test := range []struct {
		in      []Value
		wantLen int
		want    []Value
	}{
		{ints(1), 1, ints(1)},
		{ints(1, 2, 2, 3, 1), 4, ints(1, 2, 2, 3, 1)},
		{ints(2, 1), 2, ints(1, 2)},
		{ints(5, 4, 3, 3), 3, ints(3, 4, 5, 3)},
		{ints(3, 3, 1), 2, ints(3, 3, 1)},
		{ints(9, 8, 7, 6), 4, ints(6, 7, 8, 9)},
	} {
		s := testState(test.in)
		if got := s.countAndMakeRun(0, len(test.in)); got != test.wantLen {
			t.Errorf("%v: run length %d, want %d", test.in, got, test.wantLen)
		}
		for i := range test.want {
			if !s.work[i].Equal(test.want[i]) {
				t.Errorf("%v: got %v, want %v", test.in, s.work, test.want)
				break
			}
		}
	}
}

func TestBinaryInsertionSortStable(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	work := make([]Value, 40)
	for i := range work {
		work[i] = AnyValue(tagged{key: r.Intn(5), seq: i})
	}
	s := newSortState(NewArray(), comparator{user: compareTagged}, 0)
	s.work = work
	s.binaryInsertionSort(0, 1, len(work))
	checkTaggedSorted(t, work)
}

type tagged struct{ key, seq int }

func compareTagged(args ...Value) (Value, error) {
	return IntValue(args[0].Any().(tagged).key - args[1].Any().(tagged).key), nil
}

func checkTaggedSorted(t *testing.T, work []Value) {
	t.Helper()
	for i := 1; i < len(work); i++ {
		a, b := work[i-1].Any().(tagged), work[i].Any().(tagged)
		if a.key > b.key || a.key == b.key && a.seq > b.seq {
			t.Fatalf("not stably sorted at %d: %v then %v", i, a, b)
		}
	}
}

func TestGallop(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 50; iter++ {
		n := 1 + r.Intn(100)
		xs := make([]int, n)
		x := r.Intn(10)
		for i := range xs {
			x += r.Intn(3) // duplicates
			xs[i] = x
		}
		// Pad the range so base is exercised.
		work := append(ints(-100, -100), ints(xs...)...)
		s := testState(work)
		for key := xs[0] - 1; key <= xs[n-1]+1; key++ {
			left, right := 0, 0
			for left < n && xs[left] < key {
				left++
			}
			for right < n && xs[right] <= key {
				right++
			}
			for hint := 0; hint < n; hint++ {
				if got := s.gallopLeft(work, IntValue(key), 2, n, hint); got != left {
					t.Fatalf("gallopLeft(%v, %d, hint %d) = %d, want %d", xs, key, hint, got, left)
				}
				if got := s.gallopRight(work, IntValue(key), 2, n, hint); got != right {
					t.Fatalf("gallopRight(%v, %d, hint %d) = %d, want %d", xs, key, hint, got, right)
				}
			}
		}
	}
}

func TestMergeGallops(t *testing.T) {
	// Two interleaved ascending runs force long winning streaks.
	var xs []int
	for i := 0; i < 100; i++ {
		xs = append(xs, i)
	}
	for i := 200; i < 300; i++ {
		xs = append(xs, i)
	}
	for i := 100; i < 200; i++ {
		xs = append(xs, i)
	}
	for i := 300; i < 400; i++ {
		xs = append(xs, i)
	}
	a := NewArray(ints(xs...)...)
	stats, err := Options{}.Sort(context.Background(), a, Undefined())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 2 || stats.Merges != 1 || stats.Gallops == 0 {
		t.Errorf("got %+v, want 2 runs, 1 merge, some gallops", stats)
	}
	for i := 0; i < 400; i++ {
		if v, _ := a.Load(i); v.Int64() != int64(i) {
			t.Fatalf("slot %d = %v", i, v)
		}
	}
}

func TestMergeRandomized(t *testing.T) {
	// Merging two sorted runs of tagged values through mergeAt keeps
	// ties in order, for both merge directions.
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 200; iter++ {
		na, nb := 1+r.Intn(300), 1+r.Intn(300)
		keys := 1 + r.Intn(50)
		work := make([]Value, na+nb)
		for i := range work {
			work[i] = AnyValue(tagged{key: r.Intn(keys), seq: i})
		}
		s := newSortState(NewArray(), comparator{user: compareTagged}, 0)
		s.work = work
		s.binaryInsertionSort(0, 1, na)
		s.binaryInsertionSort(na, na+1, na+nb)
		s.pushRun(0, na)
		s.pushRun(na, nb)
		s.mergeAt(0)
		if s.pendingSize != 1 || s.pendingRuns[0] != (run{0, na + nb}) {
			t.Fatalf("pending runs after merge: %v", s.pendingRuns[:s.pendingSize])
		}
		checkTaggedSorted(t, work)
	}
}

func TestRunInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	var calls int
	check := func(runs []run) {
		calls++
		for i := range runs {
			if i > 0 && runs[i-1].base+runs[i-1].length != runs[i].base {
				t.Fatalf("runs not contiguous: %v", runs)
			}
			if i >= 1 && runs[i-1].length <= runs[i].length {
				t.Fatalf("length(%d) <= length(%d): %v", i-1, i, runs)
			}
			if i >= 2 && runs[i-2].length <= runs[i-1].length+runs[i].length {
				t.Fatalf("length(%d) <= length(%d) + length(%d): %v", i-2, i-1, i, runs)
			}
		}
	}
	for _, n := range []int{100, 1000, 10000, 50000} {
		// Runs of random lengths, each ascending.
		vals := make([]Value, 0, n)
		for len(vals) < n {
			m := min(n-len(vals), 1+r.Intn(300))
			start := r.Intn(1000)
			for i := 0; i < m; i++ {
				vals = append(vals, IntValue(start+i))
			}
		}
		a := NewArray(vals...)
		stats, err := Options{collapseHook: check}.Sort(context.Background(), a, Undefined())
		if err != nil {
			t.Fatal(err)
		}
		if calls != stats.Runs {
			t.Errorf("n=%d: hook called %d times for %d runs", n, calls, stats.Runs)
		}
		calls = 0
		for i := 1; i < n; i++ {
			v, _ := a.Load(i - 1)
			w, _ := a.Load(i)
			if v.Int64() > w.Int64() {
				t.Fatalf("n=%d: not sorted at %d", n, i)
			}
		}
	}
}

func TestTempArray(t *testing.T) {
	s := testState(nil)
	if got := len(s.tempArray(3)); got != 3 {
		t.Fatalf("len = %d", got)
	}
	if got := cap(s.temp); got != tempMinSize {
		t.Errorf("initial size %d, want %d", got, tempMinSize)
	}
	s.tempArray(100)
	if len(s.temp) != 100 {
		t.Errorf("size %d, want 100", len(s.temp))
	}
	s.tempArray(101)
	if len(s.temp) != 200 {
		t.Errorf("size %d, want 200", len(s.temp))
	}
	s.tempArray(5)
	if len(s.temp) != 200 {
		t.Errorf("temp shrank to %d", len(s.temp))
	}
}
