// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides a slog.Handler that writes to a zap.Logger, so
// sort diagnostics can go wherever an application's zap logs go:
//
//	opts := seqsort.Options{Logger: slog.New(zap.NewHandler(logger, slog.LevelDebug))}
package zap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/seqsort/internal/handler"
	"golang.org/x/exp/slog"
)

type sink struct {
	l *zap.Logger
}

// NewHandler returns a handler that logs records at or above level to l.
// Group keys are joined with dots.
func NewHandler(l *zap.Logger, level slog.Leveler) slog.Handler {
	return handler.New(sink{l}, level)
}

func (s sink) Log(_ context.Context, level slog.Level, msg string, attrs []slog.Attr) error {
	ce := s.l.Check(convertLevel(level), msg)
	if ce == nil {
		return nil
	}
	fields := make([]zap.Field, 0, len(attrs))
	for _, a := range attrs {
		fields = append(fields, newField(a))
	}
	ce.Write(fields...)
	return nil
}

func newField(a slog.Attr) zap.Field {
	v := a.Value
	switch v.Kind() {
	case slog.KindString:
		return zap.String(a.Key, v.String())
	case slog.KindInt64:
		return zap.Int64(a.Key, v.Int64())
	case slog.KindUint64:
		return zap.Uint64(a.Key, v.Uint64())
	case slog.KindFloat64:
		return zap.Float64(a.Key, v.Float64())
	case slog.KindBool:
		return zap.Bool(a.Key, v.Bool())
	case slog.KindDuration:
		return zap.Duration(a.Key, v.Duration())
	case slog.KindTime:
		return zap.Time(a.Key, v.Time())
	default:
		return zap.Any(a.Key, v.Any())
	}
}

func convertLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
