// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

// mergeAt merges the pending runs i and i+1. i is either the second or the
// third run from the top of the stack.
func (s *sortState) mergeAt(i int) {
	runs := &s.pendingRuns
	work := s.work

	baseA, lengthA := runs[i].base, runs[i].length
	baseB, lengthB := runs[i+1].base, runs[i+1].length

	// Record the combined run; if i is the third run from the top, slide
	// the top run down over run i+1.
	runs[i].length = lengthA + lengthB
	if i == s.pendingSize-3 {
		runs[i+1] = runs[i+2]
	}
	s.pendingSize--
	s.stats.Merges++

	// Elements of A that are not greater than the first element of B are
	// already in place.
	k := s.gallopRight(work, work[baseB], baseA, lengthA, 0)
	baseA += k
	lengthA -= k
	if lengthA == 0 {
		return
	}

	// So are elements of B that are not less than the last element of A.
	lengthB = s.gallopLeft(work, work[baseA+lengthA-1], baseB, lengthB, lengthB-1)
	if lengthB == 0 {
		return
	}

	// Merge what remains, with a temp buffer of min(lengthA, lengthB).
	if lengthA <= lengthB {
		s.mergeLow(baseA, lengthA, baseB, lengthB)
	} else {
		s.mergeHigh(baseA, lengthA, baseB, lengthB)
	}
}

// gallopLeft locates the position of key in the sorted
// array[base:base+length], which must not be empty. If the range holds
// elements equal to key, the position is to the left of the leftmost one.
//
// The search begins at hint, 0 <= hint < length; the closer the hint is to
// the result, the faster it runs. The result k, 0 <= k <= length, satisfies
//
//	array[base+k-1] < key <= array[base+k]
//
// pretending that array[base-1] is minus infinity and array[base+length]
// is plus infinity.
func (s *sortState) gallopLeft(array []Value, key Value, base, length, hint int) int {
	lastOfs := 0
	offset := 1

	if s.compare(array[base+hint], key) < 0 {
		// array[base+hint] < key: gallop right, until
		// array[base+hint+lastOfs] < key <= array[base+hint+offset].
		maxOfs := length - hint
		for offset < maxOfs {
			if s.compare(array[base+hint+offset], key) >= 0 {
				break
			}
			lastOfs = offset
			offset = offset<<1 + 1
			if offset <= 0 { // overflow
				offset = maxOfs
			}
		}
		if offset > maxOfs {
			offset = maxOfs
		}
		lastOfs += hint
		offset += hint
	} else {
		// key <= array[base+hint]: gallop left, until
		// array[base+hint-offset] < key <= array[base+hint-lastOfs].
		maxOfs := hint + 1
		for offset < maxOfs {
			if s.compare(array[base+hint-offset], key) < 0 {
				break
			}
			lastOfs = offset
			offset = offset<<1 + 1
			if offset <= 0 {
				offset = maxOfs
			}
		}
		if offset > maxOfs {
			offset = maxOfs
		}
		lastOfs, offset = hint-offset, hint-lastOfs
	}

	// Now array[base+lastOfs] < key <= array[base+offset]. Binary search
	// with the invariant array[base+lastOfs-1] < key <= array[base+offset].
	lastOfs++
	for lastOfs < offset {
		m := lastOfs + (offset-lastOfs)>>1
		if s.compare(array[base+m], key) < 0 {
			lastOfs = m + 1
		} else {
			offset = m
		}
	}
	return offset
}

// gallopRight is like gallopLeft, except that if the range holds elements
// equal to key, the position is to the right of the rightmost one:
//
//	array[base+k-1] <= key < array[base+k]
func (s *sortState) gallopRight(array []Value, key Value, base, length, hint int) int {
	lastOfs := 0
	offset := 1

	if s.compare(key, array[base+hint]) < 0 {
		// key < array[base+hint]: gallop left, until
		// array[base+hint-offset] <= key < array[base+hint-lastOfs].
		maxOfs := hint + 1
		for offset < maxOfs {
			if s.compare(key, array[base+hint-offset]) >= 0 {
				break
			}
			lastOfs = offset
			offset = offset<<1 + 1
			if offset <= 0 {
				offset = maxOfs
			}
		}
		if offset > maxOfs {
			offset = maxOfs
		}
		lastOfs, offset = hint-offset, hint-lastOfs
	} else {
		// array[base+hint] <= key: gallop right, until
		// array[base+hint+lastOfs] <= key < array[base+hint+offset].
		maxOfs := length - hint
		for offset < maxOfs {
			if s.compare(key, array[base+hint+offset]) < 0 {
				break
			}
			lastOfs = offset
			offset = offset<<1 + 1
			if offset <= 0 {
				offset = maxOfs
			}
		}
		if offset > maxOfs {
			offset = maxOfs
		}
		lastOfs += hint
		offset += hint
	}

	// Now array[base+lastOfs] <= key < array[base+offset]. Binary search
	// with the invariant array[base+lastOfs-1] <= key < array[base+offset].
	lastOfs++
	for lastOfs < offset {
		m := lastOfs + (offset-lastOfs)>>1
		if s.compare(key, array[base+m]) < 0 {
			offset = m
		} else {
			lastOfs = m + 1
		}
	}
	return offset
}

// mergeLow merges the adjacent runs work[baseA:baseA+lengthA] and
// work[baseB:baseB+lengthB], both non-empty, front to back. It requires
// work[baseB] < work[baseA], that the last element of A belongs at the end
// of the merge, and lengthA <= lengthB. Run A is copied to temp.
func (s *sortState) mergeLow(baseA, lengthA, baseB, lengthB int) {
	work := s.work
	temp := s.tempArray(lengthA)
	copy(temp, work[baseA:baseA+lengthA])

	dest := baseA
	cursorTemp := 0
	cursorB := baseB

	work[dest] = work[cursorB]
	dest++
	cursorB++
	lengthB--

	minGallop := s.minGallop
merge:
	for lengthB != 0 && lengthA != 1 {
		winsA := 0 // times A won in a row
		winsB := 0 // times B won in a row

		// Merge one element at a time until one run appears to win
		// consistently.
		for {
			if s.compare(work[cursorB], temp[cursorTemp]) < 0 {
				work[dest] = work[cursorB]
				dest++
				cursorB++
				winsB++
				winsA = 0
				lengthB--
				if lengthB == 0 {
					break merge
				}
				if winsB >= minGallop {
					break
				}
			} else {
				work[dest] = temp[cursorTemp]
				dest++
				cursorTemp++
				winsA++
				winsB = 0
				lengthA--
				if lengthA == 1 {
					break merge
				}
				if winsA >= minGallop {
					break
				}
			}
		}

		// Gallop until neither run wins consistently any more.
		s.stats.Gallops++
		minGallop++
		for first := true; first || winsA >= minGallopWins || winsB >= minGallopWins; first = false {
			minGallop = max(1, minGallop-1)
			s.minGallop = minGallop

			winsA = s.gallopRight(temp, work[cursorB], cursorTemp, lengthA, 0)
			if winsA > 0 {
				copy(work[dest:dest+winsA], temp[cursorTemp:cursorTemp+winsA])
				dest += winsA
				cursorTemp += winsA
				lengthA -= winsA
				// lengthA == 0 is only possible with an inconsistent
				// comparison function.
				if lengthA <= 1 {
					break merge
				}
			}
			work[dest] = work[cursorB]
			dest++
			cursorB++
			lengthB--
			if lengthB == 0 {
				break merge
			}

			winsB = s.gallopLeft(work, temp[cursorTemp], cursorB, lengthB, 0)
			if winsB > 0 {
				copy(work[dest:dest+winsB], work[cursorB:cursorB+winsB])
				dest += winsB
				cursorB += winsB
				lengthB -= winsB
				if lengthB == 0 {
					break merge
				}
			}
			work[dest] = temp[cursorTemp]
			dest++
			cursorTemp++
			lengthA--
			if lengthA == 1 {
				break merge
			}
		}
		minGallop++ // penalize leaving galloping mode
		s.minGallop = minGallop
	}

	switch {
	case lengthA == 1 && lengthB > 0:
		// The last element of A belongs at the end of the merge.
		copy(work[dest:dest+lengthB], work[cursorB:cursorB+lengthB])
		work[dest+lengthB] = temp[cursorTemp]
	case lengthA > 0:
		copy(work[dest:dest+lengthA], temp[cursorTemp:cursorTemp+lengthA])
	}
}

// mergeHigh is like mergeLow but merges back to front. It requires that the
// last element of A belongs at the end of the merge and lengthA >= lengthB.
// Run B is copied to temp.
func (s *sortState) mergeHigh(baseA, lengthA, baseB, lengthB int) {
	work := s.work
	temp := s.tempArray(lengthB)
	copy(temp, work[baseB:baseB+lengthB])

	dest := baseB + lengthB - 1
	cursorTemp := lengthB - 1
	cursorA := baseA + lengthA - 1

	work[dest] = work[cursorA]
	dest--
	cursorA--
	lengthA--

	minGallop := s.minGallop
merge:
	for lengthA != 0 && lengthB != 1 {
		winsA := 0
		winsB := 0

		for {
			if s.compare(temp[cursorTemp], work[cursorA]) < 0 {
				work[dest] = work[cursorA]
				dest--
				cursorA--
				winsA++
				winsB = 0
				lengthA--
				if lengthA == 0 {
					break merge
				}
				if winsA >= minGallop {
					break
				}
			} else {
				work[dest] = temp[cursorTemp]
				dest--
				cursorTemp--
				winsB++
				winsA = 0
				lengthB--
				if lengthB == 1 {
					break merge
				}
				if winsB >= minGallop {
					break
				}
			}
		}

		s.stats.Gallops++
		minGallop++
		for first := true; first || winsA >= minGallopWins || winsB >= minGallopWins; first = false {
			minGallop = max(1, minGallop-1)
			s.minGallop = minGallop

			k := s.gallopRight(work, temp[cursorTemp], baseA, lengthA, lengthA-1)
			winsA = lengthA - k
			if winsA > 0 {
				dest -= winsA
				cursorA -= winsA
				copy(work[dest+1:dest+1+winsA], work[cursorA+1:cursorA+1+winsA])
				lengthA -= winsA
				if lengthA == 0 {
					break merge
				}
			}
			work[dest] = temp[cursorTemp]
			dest--
			cursorTemp--
			lengthB--
			if lengthB == 1 {
				break merge
			}

			k = s.gallopLeft(temp, work[cursorA], 0, lengthB, lengthB-1)
			winsB = lengthB - k
			if winsB > 0 {
				dest -= winsB
				cursorTemp -= winsB
				copy(work[dest+1:dest+1+winsB], temp[cursorTemp+1:cursorTemp+1+winsB])
				lengthB -= winsB
				// lengthB == 0 is only possible with an inconsistent
				// comparison function.
				if lengthB <= 1 {
					break merge
				}
			}
			work[dest] = work[cursorA]
			dest--
			cursorA--
			lengthA--
			if lengthA == 0 {
				break merge
			}
		}
		minGallop++
		s.minGallop = minGallop
	}

	switch {
	case lengthB == 1 && lengthA > 0:
		// The first element of B belongs at the front of the merge.
		dest -= lengthA
		cursorA -= lengthA
		copy(work[dest+1:dest+1+lengthA], work[cursorA+1:cursorA+1+lengthA])
		work[dest] = temp[cursorTemp]
	case lengthB > 0:
		copy(work[dest-(lengthB-1):dest+1], temp[:lengthB])
	}
}

// tempArray returns a scratch slice of length n. The backing buffer grows
// geometrically and is reused by later merges.
func (s *sortState) tempArray(n int) []Value {
	if n > len(s.temp) {
		s.temp = make([]Value, max(tempMinSize, n, 2*len(s.temp)))
	}
	return s.temp[:n]
}
