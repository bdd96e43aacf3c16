// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"
)

// Literal returns v in the form ParseArray reads: strings are quoted,
// numbers, booleans, null and undefined are written as keywords or digits.
// Funcs are written as "function", which does not parse.
func (v Value) Literal() string {
	switch v.Kind() {
	case KindString:
		return strconv.Quote(v.any.(string))
	case KindAny:
		return strconv.Quote(v.String())
	default:
		return v.String()
	}
}

// A SyntaxError reports a malformed array literal.
type SyntaxError struct {
	Offset int    // byte offset in input where error was detected
	Err    string // description of error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("seqsort: offset %d: %s", e.Offset, e.Err)
}

// ParseArray parses an array literal such as
//
//	[3, 1.5, , "x", undefined, null, true, -Infinity, NaN]
//
// An empty element denotes a missing slot. A single trailing comma is
// ignored, so [1, ,] has length 2 and a missing last slot.
func ParseArray(text string) (a *Array, err error) {
	p := &literalParser{}
	p.s.Init(strings.NewReader(text))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanRawStrings | scanner.SkipComments | scanner.ScanComments
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.fail(msg)
	}

	defer func() {
		if e := recover(); e != nil {
			if se, ok := e.(*SyntaxError); ok {
				err = se
				return
			}
			panic(e)
		}
	}()

	slots := p.parse()
	return newArrayFromSlots(slots), nil
}

type literalParser struct {
	s   scanner.Scanner
	tok rune
}

func (p *literalParser) fail(msg string) {
	panic(&SyntaxError{Offset: p.s.Position.Offset, Err: msg})
}

func (p *literalParser) next() rune {
	p.tok = p.s.Scan()
	return p.tok
}

func (p *literalParser) parse() []Value {
	if p.next() != '[' {
		p.fail("expected [")
	}
	var slots []Value
	for {
		switch p.next() {
		case ']':
			return p.end(slots)
		case ',':
			slots = append(slots, holeValue())
			continue
		}
		slots = append(slots, p.value())
		switch p.next() {
		case ']':
			return p.end(slots)
		case ',':
		default:
			p.fail(fmt.Sprintf("unexpected %s", scanner.TokenString(p.tok)))
		}
	}
}

func (p *literalParser) end(slots []Value) []Value {
	if p.next() != scanner.EOF {
		p.fail(fmt.Sprintf("unexpected %s after ]", scanner.TokenString(p.tok)))
	}
	return slots
}

// value parses the element starting at the current token.
func (p *literalParser) value() Value {
	neg := false
	if p.tok == '-' || p.tok == '+' {
		neg = p.tok == '-'
		p.next()
	}
	text := p.s.TokenText()
	switch p.tok {
	case scanner.Int:
		i, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return p.float(text, neg)
		}
		if neg {
			if i == 0 {
				return FloatValue(math.Copysign(0, -1))
			}
			i = -i
		}
		return Int64Value(i)
	case scanner.Float:
		return p.float(text, neg)
	case scanner.Ident:
		switch text {
		case "Infinity":
			if neg {
				return FloatValue(math.Inf(-1))
			}
			return FloatValue(math.Inf(1))
		case "NaN":
			return FloatValue(math.NaN())
		}
		if neg {
			p.fail("expected number after sign")
		}
		switch text {
		case "undefined":
			return Undefined()
		case "null":
			return Null()
		case "true":
			return BoolValue(true)
		case "false":
			return BoolValue(false)
		}
		p.fail(fmt.Sprintf("unknown identifier %s", text))
	case scanner.String, scanner.RawString:
		if neg {
			p.fail("expected number after sign")
		}
		s, err := strconv.Unquote(text)
		if err != nil {
			p.fail(err.Error())
		}
		return StringValue(s)
	}
	p.fail(fmt.Sprintf("unexpected %s", scanner.TokenString(p.tok)))
	panic("unreachable")
}

func (p *literalParser) float(text string, neg bool) Value {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.fail(err.Error())
	}
	if neg {
		f = -f
	}
	return NumberValue(f)
}
