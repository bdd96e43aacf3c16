// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handler implements a slog.Handler that hands records, with their
// attributes flattened, to a Sink. The logging adapters are built on it.
package handler

import (
	"context"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// A Sink receives one flattened record. Group attributes have been
// expanded: a key inside a group is qualified by the group's name and a
// dot, and empty groups are dropped. Values have been resolved.
type Sink interface {
	Log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) error
}

// Handler is a slog.Handler that writes to a Sink.
type Handler struct {
	sink   Sink
	level  slog.Leveler
	attrs  []slog.Attr // qualified and resolved
	prefix string      // qualifies keys added after WithGroup
}

var _ slog.Handler = (*Handler)(nil)

// New returns a Handler writing records at or above level to sink. A nil
// level means slog.LevelInfo.
func New(sink Sink, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{sink: sink, level: level}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	attrs := slices.Clip(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		attrs = appendAttr(attrs, h.prefix, a)
		return true
	})
	return h.sink.Log(ctx, r.Level, r.Message, attrs)
}

func (h *Handler) WithAttrs(as []slog.Attr) slog.Handler {
	if len(as) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = slices.Clip(h.attrs)
	for _, a := range as {
		h2.attrs = appendAttr(h2.attrs, h.prefix, a)
	}
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendAttr(dst []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() != slog.KindGroup {
		if a.Key == "" {
			return dst
		}
		return append(dst, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}
	// A group with an empty key is inlined.
	if a.Key != "" {
		prefix += a.Key + "."
	}
	for _, g := range a.Value.Group() {
		dst = appendAttr(dst, prefix, g)
	}
	return dst
}
