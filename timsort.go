// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

// This file implements TimSort over the work buffer: natural runs are
// found, short ones extended by binary insertion, and pending runs are
// merged so that their lengths stay balanced.
//
// The algorithm is described in detail in
// https://github.com/python/cpython/blob/main/Objects/listsort.txt.

const (
	// maxMergePending bounds the pending-run stack. Run lengths grow at
	// least as fast as the Fibonacci numbers, so this covers sequences
	// of up to about 32 * phi**85 elements, more than 2**64.
	maxMergePending = 85

	// minGallopWins is the initial galloping threshold. Once in
	// galloping mode, a merge stays there until both runs win fewer
	// than minGallopWins times in a row.
	minGallopWins = 7

	// tempMinSize is the smallest temp buffer allocated.
	tempMinSize = 32
)

// timsort sorts work[:length].
func (s *sortState) timsort(length int) {
	if length < 2 {
		return
	}
	remaining := length
	low := 0
	minRun := minRunLength(remaining)
	for remaining != 0 {
		n := s.countAndMakeRun(low, low+remaining)

		// Extend short runs to min(minRun, remaining).
		if n < minRun {
			forced := min(minRun, remaining)
			s.binaryInsertionSort(low, low+n, low+forced)
			n = forced
		}

		s.pushRun(low, n)
		s.mergeCollapse()

		low += n
		remaining -= n
	}
	s.mergeForceCollapse()
}

// minRunLength returns the minimum run length for a sort of n elements.
// Below 64 that is n itself. Otherwise it is a k with 32 <= k <= 64 such
// that n/k is close to, but strictly less than, a power of two.
func minRunLength(n int) int {
	r := 0 // becomes 1 if any 1 bits are shifted off
	for n >= 64 {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// binaryInsertionSort sorts work[low:high], of which work[low:start] is
// already sorted. Equal elements keep their order: an element is inserted
// after any element it compares equal to.
func (s *sortState) binaryInsertionSort(low, start, high int) {
	work := s.work
	if start == low {
		start++
	}
	for ; start < high; start++ {
		pivot := work[start]

		// pivot >= all in [low, left) and pivot < all in [right, start).
		left, right := low, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if s.compare(pivot, work[mid]) < 0 {
				right = mid
			} else {
				left = mid + 1
			}
		}

		copy(work[left+1:start+1], work[left:start])
		work[left] = pivot
	}
}

// countAndMakeRun returns the length of the run starting at low, where
// low < high. A run is either non-decreasing,
//
//	a[low] <= a[low+1] <= a[low+2] <= ...
//
// or strictly decreasing,
//
//	a[low] > a[low+1] > a[low+2] > ...
//
// A decreasing run is reversed in place. The strictness keeps equal
// elements out of decreasing runs, so reversing cannot reorder them.
func (s *sortState) countAndMakeRun(low, high int) int {
	work := s.work
	next := low + 1
	if next == high {
		return 1
	}

	runLength := 2
	descending := s.compare(work[next], work[low]) < 0

	previous := work[next]
	for i := next + 1; i < high; i++ {
		current := work[i]
		order := s.compare(current, previous)
		if descending {
			if order >= 0 {
				break
			}
		} else if order < 0 {
			break
		}
		previous = current
		runLength++
	}

	if descending {
		reverseRange(work[low : low+runLength])
	}
	return runLength
}

func reverseRange(a []Value) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

func (s *sortState) pushRun(base, length int) {
	if s.pendingSize == maxMergePending {
		panic("seqsort: pending run stack overflow")
	}
	s.pendingRuns[s.pendingSize] = run{base, length}
	s.pendingSize++
	s.stats.Runs++
}

// runInvariantEstablished reports whether
// length(n-2) > length(n-1) + length(n) on the pending-run stack.
func (s *sortState) runInvariantEstablished(n int) bool {
	if n < 2 {
		return true
	}
	runs := &s.pendingRuns
	return runs[n-2].length > runs[n-1].length+runs[n].length
}

// mergeCollapse merges adjacent pending runs until, for every i,
//
//  1. length(i-3) > length(i-2) + length(i-1)
//  2. length(i-2) > length(i-1)
//
// Checking the invariant one level below the top as well keeps it from
// breaking further down the stack.
func (s *sortState) mergeCollapse() {
	runs := &s.pendingRuns
	for s.pendingSize > 1 {
		n := s.pendingSize - 2
		if !s.runInvariantEstablished(n+1) || !s.runInvariantEstablished(n) {
			if runs[n-1].length < runs[n+1].length {
				n--
			}
			s.mergeAt(n)
		} else if runs[n].length <= runs[n+1].length {
			s.mergeAt(n)
		} else {
			break
		}
	}
	if s.collapseHook != nil {
		s.collapseHook(s.pendingRuns[:s.pendingSize])
	}
}

// mergeForceCollapse merges all pending runs into one, regardless of the
// invariants. It runs once at the end of the sort.
func (s *sortState) mergeForceCollapse() {
	runs := &s.pendingRuns
	for s.pendingSize > 1 {
		n := s.pendingSize - 2
		if n > 0 && runs[n-1].length < runs[n+1].length {
			n--
		}
		s.mergeAt(n)
	}
}
