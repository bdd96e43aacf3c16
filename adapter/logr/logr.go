// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr provides a slog.Handler that writes to a logr.Logger.
//
// Debug records are logged at verbosity 1 and everything below Error at
// verbosity 0. Error records go through Logger.Error; an "error" attribute
// holding an error becomes its err argument.
package logr

import (
	"context"

	"github.com/go-logr/logr"
	"golang.org/x/exp/seqsort/internal/handler"
	"golang.org/x/exp/slog"
)

type sink struct {
	l logr.Logger
}

// NewHandler returns a handler that logs records at or above level to l.
func NewHandler(l logr.Logger, level slog.Leveler) slog.Handler {
	return handler.New(sink{l}, level)
}

func (s sink) Log(_ context.Context, level slog.Level, msg string, attrs []slog.Attr) error {
	var err error
	kvs := make([]any, 0, 2*len(attrs))
	for _, a := range attrs {
		if e, ok := a.Value.Any().(error); ok && a.Key == "error" && level >= slog.LevelError {
			err = e
			continue
		}
		kvs = append(kvs, a.Key, a.Value.Any())
	}
	if level >= slog.LevelError {
		s.l.Error(err, msg, kvs...)
		return nil
	}
	s.l.V(convertLevel(level)).Info(msg, kvs...)
	return nil
}

func convertLevel(level slog.Level) int {
	if level < slog.LevelInfo {
		return 1
	}
	return 0
}
