// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides a slog.Handler that writes to a zerolog.Logger.
package zerolog

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/exp/seqsort/internal/handler"
	"golang.org/x/exp/slog"
)

type sink struct {
	l zerolog.Logger
}

// NewHandler returns a handler that logs records at or above level to l.
func NewHandler(l zerolog.Logger, level slog.Leveler) slog.Handler {
	return handler.New(sink{l}, level)
}

func (s sink) Log(_ context.Context, level slog.Level, msg string, attrs []slog.Attr) error {
	e := s.l.WithLevel(convertLevel(level))
	if e == nil {
		return nil
	}
	for _, a := range attrs {
		v := a.Value
		switch v.Kind() {
		case slog.KindString:
			e = e.Str(a.Key, v.String())
		case slog.KindInt64:
			e = e.Int64(a.Key, v.Int64())
		case slog.KindUint64:
			e = e.Uint64(a.Key, v.Uint64())
		case slog.KindFloat64:
			e = e.Float64(a.Key, v.Float64())
		case slog.KindBool:
			e = e.Bool(a.Key, v.Bool())
		case slog.KindDuration:
			e = e.Dur(a.Key, v.Duration())
		case slog.KindTime:
			e = e.Time(a.Key, v.Time())
		default:
			e = e.Interface(a.Key, v.Any())
		}
	}
	e.Msg(msg)
	return nil
}

func convertLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
