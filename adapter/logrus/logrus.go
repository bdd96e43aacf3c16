// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides a slog.Handler that writes to a logrus.Logger.
// Attributes become logrus fields; the record's context is attached to
// the entry.
package logrus

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/seqsort/internal/handler"
	"golang.org/x/exp/slog"
)

type sink struct {
	l *logrus.Logger
}

// NewHandler returns a handler that logs records at or above level to l.
func NewHandler(l *logrus.Logger, level slog.Leveler) slog.Handler {
	return handler.New(sink{l}, level)
}

func (s sink) Log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) error {
	fields := make(logrus.Fields, len(attrs))
	for _, a := range attrs {
		fields[a.Key] = a.Value.Any()
	}
	s.l.WithContext(ctx).WithFields(fields).Log(convertLevel(level), msg)
	return nil
}

func convertLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
