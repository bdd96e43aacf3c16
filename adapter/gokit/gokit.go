// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides a slog.Handler that writes to a go-kit logger.
// Each record is logged as level, msg, then the attributes in order.
package gokit

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/seqsort/internal/handler"
	"golang.org/x/exp/slog"
)

type sink struct {
	l log.Logger
}

// NewHandler returns a handler that logs records at or above lvl to l.
func NewHandler(l log.Logger, lvl slog.Leveler) slog.Handler {
	return handler.New(sink{l}, lvl)
}

func (s sink) Log(_ context.Context, lvl slog.Level, msg string, attrs []slog.Attr) error {
	keyvals := make([]any, 0, 4+2*len(attrs))
	keyvals = append(keyvals, level.Key(), convertLevel(lvl), "msg", msg)
	for _, a := range attrs {
		keyvals = append(keyvals, a.Key, a.Value.Any())
	}
	return s.l.Log(keyvals...)
}

func convertLevel(lvl slog.Level) level.Value {
	switch {
	case lvl >= slog.LevelError:
		return level.ErrorValue()
	case lvl >= slog.LevelWarn:
		return level.WarnValue()
	case lvl >= slog.LevelInfo:
		return level.InfoValue()
	default:
		return level.DebugValue()
	}
}
