// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slog"
)

const instrumentationName = "golang.org/x/exp/seqsort"

// Options configure a sort. The zero value is ready to use.
type Options struct {
	// Logger receives debug-level events about each sort.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Tracer starts one span per sort. If nil, a tracer from the global
	// TracerProvider is used.
	Tracer trace.Tracer

	// collapseHook, if set, observes the pending-run stack after every
	// merge-collapse pass.
	collapseHook func([]run)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) tracer() trace.Tracer {
	if o.Tracer != nil {
		return o.Tracer
	}
	return otel.Tracer(instrumentationName)
}

// Stats describe a completed sort.
type Stats struct {
	Length      int  // slots examined, after clamping to MaxLength
	Live        int  // elements that were neither missing nor undefined
	Undefined   int  // undefined placeholders moved behind the live elements
	Missing     int  // missing slots moved to the end
	Comparisons int  // calls to the comparison function
	Runs        int  // runs pushed on the pending-run stack
	Merges      int  // pairs of runs merged
	Gallops     int  // times a merge entered galloping mode
	MinGallop   int  // galloping threshold when the sort finished
	Downgraded  bool // the sequence changed shape and the generic accessor took over
}

func (s Stats) logAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("length", s.Length),
		slog.Int("live", s.Live),
		slog.Int("undefined", s.Undefined),
		slog.Int("missing", s.Missing),
		slog.Int("comparisons", s.Comparisons),
		slog.Int("runs", s.Runs),
		slog.Int("merges", s.Merges),
		slog.Int("gallops", s.Gallops),
		slog.Int("minGallop", s.MinGallop),
		slog.Bool("downgraded", s.Downgraded),
	}
}

func (s Stats) spanAttrs() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("seqsort.live", s.Live),
		attribute.Int("seqsort.undefined", s.Undefined),
		attribute.Int("seqsort.missing", s.Missing),
		attribute.Int("seqsort.comparisons", s.Comparisons),
		attribute.Int("seqsort.runs", s.Runs),
		attribute.Int("seqsort.merges", s.Merges),
		attribute.Int("seqsort.gallops", s.Gallops),
		attribute.Bool("seqsort.downgraded", s.Downgraded),
	}
}
