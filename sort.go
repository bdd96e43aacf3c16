// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slog"
)

// MaxLength is the largest number of slots a sort examines. Slots past
// MaxLength are left alone.
const MaxLength = math.MaxInt32

// maxWorkHint caps the initial work capacity for sequences other than
// Array.
const maxWorkHint = 1 << 12

// Sort sorts seq in place with Options{}.Sort.
func Sort(seq Sequence, comparefn Value) error {
	_, err := Options{}.Sort(context.Background(), seq, comparefn)
	return err
}

// SortFunc sorts seq in place ordered by cmp, which returns a negative
// number when a sorts before b, a positive number when it sorts after,
// and zero otherwise. A nil cmp selects the default order.
func SortFunc(seq Sequence, cmp func(a, b Value) int) error {
	if cmp == nil {
		return Sort(seq, Undefined())
	}
	return Sort(seq, FuncValue(func(args ...Value) (Value, error) {
		return IntValue(cmp(args[0], args[1])), nil
	}))
}

// Sort sorts seq in place. The sort is stable.
//
// If comparefn is undefined, elements are ordered by DefaultCompare.
// Otherwise it must be a Func; it is called with two elements and its
// result, converted to a number, orders them like DefaultCompare does. NaN
// results count as zero. Any other comparefn is rejected with an error
// wrapping ErrBadComparator before seq is touched.
//
// After sorting, the live elements come first in order, followed by the
// undefined placeholders, followed by missing slots. Sequences shorter
// than two slots are not changed.
//
// An error returned by comparefn stops the sort and is returned unchanged;
// seq is then left as it was. The comparison function may modify seq. The
// sort then completes through the Sequence methods without indexing out
// of range, but the resulting contents are unspecified, as they are for a
// comparison function that is not a consistent total order.
func (o Options) Sort(ctx context.Context, seq Sequence, comparefn Value) (Stats, error) {
	cmp, err := newComparator(comparefn)
	if err != nil {
		return Stats{}, err
	}
	length := seq.Len()
	if length < 2 {
		return Stats{Length: max(length, 0)}, nil
	}

	ctx, span := o.tracer().Start(ctx, "seqsort.Sort",
		trace.WithAttributes(attribute.Int("seqsort.length", length)))
	defer span.End()

	s := newSortState(seq, cmp, length)
	s.ctx = ctx
	s.logger = o.logger()
	s.span = span
	s.collapseHook = o.collapseHook

	err = s.run()
	s.stats.MinGallop = s.minGallop
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.LogAttrs(ctx, slog.LevelDebug, "sort failed", slog.String("error", err.Error()))
		return s.stats, err
	}
	span.SetAttributes(s.stats.spanAttrs()...)
	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "sort done", s.stats.logAttrs()...)
	}
	return s.stats, nil
}

// sortState is the state of one sort. It is created for a single call
// and discarded when the call returns.
type sortState struct {
	ctx    context.Context
	logger *slog.Logger
	span   trace.Span

	// target is the sequence being sorted. initialShape and initialLength
	// are what the fast accessors require of it.
	target        Sequence
	initialShape  Shape
	initialLength int

	cmp comparator
	acc accessor

	// minGallop controls when a merge switches to galloping mode.
	// Merges nudge it up for random data and down for structured data.
	minGallop int

	// pendingRuns[:pendingSize] is the stack of runs still to be merged.
	// Run i+1 starts where run i ends.
	pendingRuns [maxMergePending]run
	pendingSize int

	// work holds the live elements while they are sorted. It is never
	// passed to code outside the package.
	work []Value
	// temp is scratch space for merges. It only grows.
	temp []Value

	sortLength     int
	undefinedCount int

	stats        Stats
	collapseHook func([]run)
}

// A run is a sorted stretch of work.
type run struct {
	base, length int
}

func newSortState(seq Sequence, cmp comparator, length int) *sortState {
	sortLength := min(length, MaxLength)
	s := &sortState{
		ctx:           context.Background(),
		logger:        slog.Default(),
		span:          trace.SpanFromContext(context.Background()),
		target:        seq,
		initialLength: length,
		cmp:           cmp,
		acc:           newAccessor(seq),
		minGallop:     minGallopWins,
		sortLength:    sortLength,
	}
	// An Array's backing store bounds its live elements. Other sequences
	// give no such bound, so work starts small and grows by append.
	workLength := min(sortLength, maxWorkHint)
	if a, ok := seq.(*Array); ok {
		s.initialShape = a.Shape()
		workLength = min(sortLength, a.backingLen())
	}
	s.work = make([]Value, 0, workLength)
	s.stats.Length = sortLength
	return s
}

// run sorts the target. An error from the comparison function unwinds the
// sort as a compareError panic and is returned here.
func (s *sortState) run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			if ce, ok := e.(compareError); ok {
				err = ce.err
				return
			}
			panic(e)
		}
	}()

	live := s.compact()
	s.span.AddEvent("compacted", trace.WithAttributes(
		attribute.Int("seqsort.live", live),
		attribute.Int("seqsort.undefined", s.undefinedCount)))

	s.timsort(live)
	s.span.AddEvent("sorted")

	// The comparison function or a String method may have changed the
	// target.
	s.checkAccessor()
	s.writeBack(live)
	return nil
}

// checkAccessor switches to the generic accessor, for good, once the
// target no longer matches what the current accessor expects.
func (s *sortState) checkAccessor() {
	if s.acc.compatible() {
		return
	}
	from := s.acc.name()
	s.acc = genericAccessor{s.target}
	s.stats.Downgraded = true
	s.span.AddEvent("accessor downgraded")
	s.logger.LogAttrs(s.ctx, slog.LevelDebug, "accessor downgraded",
		slog.String("from", from),
		slog.Int("initialLength", s.initialLength),
		slog.Int("length", s.target.Len()))
}

// compact moves the live elements into work, preserving their order, and
// counts the undefined placeholders. Missing slots are skipped.
func (s *sortState) compact() int {
	for i := 0; i < s.sortLength; i++ {
		v, ok := s.acc.load(i)
		switch {
		case !ok:
			s.stats.Missing++
		case v.IsUndefined():
			s.undefinedCount++
		default:
			s.work = append(s.work, v)
		}
	}
	s.stats.Live = len(s.work)
	s.stats.Undefined = s.undefinedCount
	return len(s.work)
}

// writeBack stores the sorted elements, then the undefined placeholders,
// and deletes the remaining slots up to the sorted length.
func (s *sortState) writeBack(live int) {
	i := 0
	for ; i < live; i++ {
		s.acc.store(i, s.work[i])
	}
	for end := live + s.undefinedCount; i < end; i++ {
		s.acc.store(i, Undefined())
	}
	for ; i < s.sortLength; i++ {
		s.acc.delete(i)
	}
}
