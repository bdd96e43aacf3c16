// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The seqsort command sorts array literals.
//
// Each line of input holds one array literal, such as
//
//	[3, "b", , undefined, 1.5]
//
// and is written back sorted, with undefined placeholders and missing
// slots moved to the end. Input is read from the named files, or from
// standard input if there are none. Blank lines are copied unchanged.
//
// With -archive, the input is a txtar archive and the output is the same
// archive with every file's lines sorted.
//
// Flags:
//
//	-cmp order     default, numeric or reverse (default "default")
//	-log backend   text, json, zap, zerolog, logrus, logr or gokit (default "text")
//	-v             log a record for every sort
//	-trace         write a span for every sort to standard error
//
// Example usage:
//
//	echo '[10, 9, , 1]' | seqsort -cmp=numeric
//
//	seqsort -archive <cases.txtar >sorted.txtar
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	gokitlog "github.com/go-kit/log"
	"github.com/go-logr/stdr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/seqsort"
	"golang.org/x/exp/seqsort/adapter/gokit"
	slogr "golang.org/x/exp/seqsort/adapter/logr"
	slogrus "golang.org/x/exp/seqsort/adapter/logrus"
	szap "golang.org/x/exp/seqsort/adapter/zap"
	szerolog "golang.org/x/exp/seqsort/adapter/zerolog"
	"golang.org/x/exp/seqsort/seqsorttest"
	"golang.org/x/exp/slog"
	"golang.org/x/tools/txtar"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, errFlags) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: seqsort [flags] [file ...]")

// errFlags reports a flag parsing error that the flag package has
// already printed.
var errFlags = errors.New("bad flags")

type config struct {
	archive   bool
	cmp       string
	log       string
	verbose   bool
	trace     bool
	comparefn seqsort.Value
	opts      seqsort.Options
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet("seqsort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.BoolVar(&cfg.archive, "archive", false, "read and write a txtar archive")
	fs.StringVar(&cfg.cmp, "cmp", "default", "comparison: "+strings.Join(seqsorttest.OrderNames, ", "))
	fs.StringVar(&cfg.log, "log", "text", "log backend: text, json, zap, zerolog, logrus, logr or gokit")
	fs.BoolVar(&cfg.verbose, "v", false, "log every sort")
	fs.BoolVar(&cfg.trace, "trace", false, "write spans to standard error")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errFlags, err)
	}

	if cfg.comparefn, err = comparator(cfg.cmp); err != nil {
		return err
	}
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	if cfg.opts.Logger, err = newLogger(cfg.log, level, stderr); err != nil {
		return err
	}
	if cfg.trace {
		exp, xerr := stdouttrace.New(stdouttrace.WithWriter(stderr))
		if xerr != nil {
			return xerr
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		defer func() {
			if serr := tp.Shutdown(ctx); err == nil {
				err = serr
			}
		}()
		cfg.opts.Tracer = tp.Tracer("golang.org/x/exp/seqsort/cmd/seqsort")
	}

	type input struct {
		name string
		data []byte
	}
	var inputs []input
	if fs.NArg() == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		inputs = append(inputs, input{"<stdin>", data})
	}
	for _, name := range fs.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		inputs = append(inputs, input{name, data})
	}
	if cfg.archive && len(inputs) > 1 {
		return fmt.Errorf("%w\n-archive takes a single input", errUsage)
	}

	w := bufio.NewWriter(stdout)
	for _, in := range inputs {
		if cfg.archive {
			err = sortArchive(ctx, &cfg, w, in.name, in.data)
		} else {
			err = sortLines(ctx, &cfg, w, in.name, in.data)
		}
		if err != nil {
			w.Flush()
			return err
		}
	}
	return w.Flush()
}

func sortArchive(ctx context.Context, cfg *config, w io.Writer, name string, data []byte) error {
	ar := txtar.Parse(data)
	for i, f := range ar.Files {
		var buf bytes.Buffer
		if err := sortLines(ctx, cfg, &buf, name+":"+f.Name, f.Data); err != nil {
			return err
		}
		ar.Files[i].Data = buf.Bytes()
	}
	_, err := w.Write(txtar.Format(ar))
	return err
}

// sortLines sorts each line of data, which is named name in errors.
func sortLines(ctx context.Context, cfg *config, w io.Writer, name string, data []byte) error {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(nil, 64<<20)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(w, line)
			continue
		}
		a, err := seqsort.ParseArray(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %v", name, lineno, err)
		}
		if _, err := cfg.opts.Sort(ctx, a, cfg.comparefn); err != nil {
			return fmt.Errorf("%s:%d: %v", name, lineno, err)
		}
		fmt.Fprintln(w, a)
	}
	return sc.Err()
}

func comparator(name string) (seqsort.Value, error) {
	v, err := seqsorttest.Order(name)
	if err != nil {
		return seqsort.Value{}, fmt.Errorf("%w\nunknown -cmp %q", errUsage, name)
	}
	return v, nil
}

func newLogger(backend string, level slog.Level, w io.Writer) (*slog.Logger, error) {
	var h slog.Handler
	switch backend {
	case "text":
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "json":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "zap":
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
		h = szap.NewHandler(zap.New(core), level)
	case "zerolog":
		h = szerolog.NewHandler(zerolog.New(w).With().Timestamp().Logger(), level)
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.DebugLevel)
		h = slogrus.NewHandler(l, level)
	case "logr":
		stdr.SetVerbosity(1)
		h = slogr.NewHandler(stdr.New(log.New(w, "", log.LstdFlags)), level)
	case "gokit":
		l := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
		l = gokitlog.With(l, "ts", gokitlog.DefaultTimestampUTC)
		h = gokit.NewHandler(l, level)
	default:
		return nil, fmt.Errorf("%w\nunknown -log %q", errUsage, backend)
	}
	return slog.New(h), nil
}
