// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zap_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	szap "golang.org/x/exp/seqsort/adapter/zap"
	"golang.org/x/exp/slog"
)

type entry struct {
	Level   zapcore.Level
	Message string
	Context map[string]any
}

func Test(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := slog.New(szap.NewHandler(zap.New(core), slog.LevelDebug))

	log.Debug("sort done", "live", 3, slog.Group("run", slog.Int("base", 0)))
	log.With("downgraded", true).Warn("mess", slog.Duration("d", time.Second), slog.Float64("pi", 3.14))
	log.Error("failed", "error", "boom")

	var got []entry
	for _, e := range logs.All() {
		got = append(got, entry{e.Level, e.Message, e.ContextMap()})
	}
	want := []entry{
		{zapcore.DebugLevel, "sort done", map[string]any{"live": int64(3), "run.base": int64(0)}},
		{zapcore.WarnLevel, "mess", map[string]any{"downgraded": true, "d": time.Second, "pi": 3.14}},
		{zapcore.ErrorLevel, "failed", map[string]any{"error": "boom"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := slog.New(szap.NewHandler(zap.New(core), slog.LevelInfo))
	log.Debug("hidden")
	log.Info("shown")
	if got := logs.Len(); got != 1 {
		t.Errorf("got %d entries, want 1", got)
	}

	// zap's own level applies too.
	core, logs = observer.New(zapcore.WarnLevel)
	log = slog.New(szap.NewHandler(zap.New(core), slog.LevelDebug))
	log.Info("hidden")
	if got := logs.Len(); got != 0 {
		t.Errorf("got %d entries, want 0", got)
	}
}
