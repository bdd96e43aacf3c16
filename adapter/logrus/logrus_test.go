// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logrus_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	slogrus "golang.org/x/exp/seqsort/adapter/logrus"
	"golang.org/x/exp/slog"
)

type entry struct {
	Level   logrus.Level
	Message string
	Data    logrus.Fields
}

func Test(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	log := slog.New(slogrus.NewHandler(logger, slog.LevelDebug))

	log.Debug("sort done", "live", 3, slog.Group("run", slog.Int("base", 0)))
	log.With("downgraded", true).Warn("mess", "from", "ints")

	var got []entry
	for _, e := range hook.AllEntries() {
		got = append(got, entry{e.Level, e.Message, e.Data})
	}
	want := []entry{
		{logrus.DebugLevel, "sort done", logrus.Fields{"live": int64(3), "run.base": int64(0)}},
		{logrus.WarnLevel, "mess", logrus.Fields{"downgraded": true, "from": "ints"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestLevel(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	log := slog.New(slogrus.NewHandler(logger, slog.LevelDebug))
	log.Debug("hidden")
	if got := len(hook.AllEntries()); got != 0 {
		t.Errorf("got %d entries, want 0", got)
	}
}
