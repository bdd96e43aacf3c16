// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqsort

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Kind is the kind of a Value.
type Kind int

// Unexported version of Kind, just so we can store Kinds in Values.
// (No user-provided value has this type.)
type kind Kind

// KindUndefined is 0 so that a zero Value is the undefined placeholder.
const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindFunc
	KindAny
)

// kindHole marks a missing slot in a packed backing store.
// It is never returned to callers.
const kindHole Kind = -1

var kindStrings = []string{
	"Undefined",
	"Null",
	"Bool",
	"Int",
	"Float",
	"String",
	"Func",
	"Any",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "<unknown seqsort.Kind>"
}

// A Func is an invocable Value. Comparison functions are Funcs that are
// called with two arguments and whose result is converted to a number.
type Func func(args ...Value) (Value, error)

// A Value is an element of a Sequence. The zero Value is the undefined
// placeholder.
type Value struct {
	_ [0]func() // disallow ==
	// num holds the value for Bool, Int and Float kinds.
	num uint64
	// any holds a kind for scalar kinds, a string for KindString,
	// a Func for KindFunc, and the user value for KindAny.
	any any
}

//////////////// Constructors

// Undefined returns the undefined placeholder.
func Undefined() Value { return Value{} }

// Null returns the null Value.
func Null() Value { return Value{any: kind(KindNull)} }

// BoolValue returns a Value for a bool.
func BoolValue(v bool) Value {
	u := uint64(0)
	if v {
		u = 1
	}
	return Value{num: u, any: kind(KindBool)}
}

// IntValue returns a Value for an int.
func IntValue(v int) Value {
	return Int64Value(int64(v))
}

// Int64Value returns a Value for an int64. Integers outside the range
// of an int32 are represented as KindFloat.
func Int64Value(v int64) Value {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return FloatValue(float64(v))
	}
	return Value{num: uint64(v), any: kind(KindInt)}
}

// FloatValue returns a Value of KindFloat for a floating-point number.
func FloatValue(v float64) Value {
	return Value{num: math.Float64bits(v), any: kind(KindFloat)}
}

// NumberValue returns a Value for a number, using KindInt when v is
// integral and fits in an int32, and KindFloat otherwise. Negative zero
// stays a float.
func NumberValue(v float64) Value {
	if i := int64(v); float64(i) == v && i >= math.MinInt32 && i <= math.MaxInt32 {
		if i != 0 || !math.Signbit(v) {
			return Value{num: uint64(i), any: kind(KindInt)}
		}
	}
	return FloatValue(v)
}

// StringValue returns a Value for a string.
func StringValue(v string) Value {
	return Value{any: v}
}

// FuncValue returns a Value for a Func. A nil Func yields Null.
func FuncValue(f Func) Value {
	if f == nil {
		return Null()
	}
	return Value{any: f}
}

// AnyValue returns a Value for the supplied value.
//
// Go's predeclared string, bool and numeric types map to KindString,
// KindBool, KindInt or KindFloat. nil maps to KindNull. A Value is
// returned unchanged, and a Func (or a function with the same signature)
// maps to KindFunc. Everything else is KindAny, converted to a string with
// its String method (when it has one) during default comparison.
func AnyValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case int:
		return Int64Value(int64(v))
	case int8:
		return Int64Value(int64(v))
	case int16:
		return Int64Value(int64(v))
	case int32:
		return Int64Value(int64(v))
	case int64:
		return Int64Value(v)
	case uint:
		return NumberValue(float64(v))
	case uint8:
		return Int64Value(int64(v))
	case uint16:
		return Int64Value(int64(v))
	case uint32:
		return Int64Value(int64(v))
	case uint64:
		return NumberValue(float64(v))
	case float32:
		return FloatValue(float64(v))
	case float64:
		return FloatValue(v)
	case Func:
		return FuncValue(v)
	case func(...Value) (Value, error):
		return FuncValue(v)
	default:
		return Value{any: v}
	}
}

func holeValue() Value { return Value{any: kind(kindHole)} }

//////////////// Accessors

// Kind returns v's Kind.
func (v Value) Kind() Kind {
	switch x := v.any.(type) {
	case nil:
		return KindUndefined
	case kind:
		return Kind(x)
	case string:
		return KindString
	case Func:
		return KindFunc
	default:
		return KindAny
	}
}

// IsUndefined reports whether v is the undefined placeholder.
func (v Value) IsUndefined() bool { return v.any == nil }

func (v Value) isHole() bool {
	k, ok := v.any.(kind)
	return ok && Kind(k) == kindHole
}

// Int64 returns v's value as an int64. It panics
// if v is not of KindInt.
func (v Value) Int64() int64 {
	if g, w := v.Kind(), KindInt; g != w {
		panic(fmt.Sprintf("Value kind is %s, not %s", g, w))
	}
	return int64(v.num)
}

// Float64 returns v's value as a float64. It panics
// if v is not a number.
func (v Value) Float64() float64 {
	switch v.Kind() {
	case KindInt:
		return float64(int64(v.num))
	case KindFloat:
		return v.float()
	default:
		panic(fmt.Sprintf("Value kind is %s, not a number", v.Kind()))
	}
}

func (v Value) float() float64 {
	return math.Float64frombits(v.num)
}

// Bool returns v's value as a bool. It panics
// if v is not a bool.
func (v Value) Bool() bool {
	if g, w := v.Kind(), KindBool; g != w {
		panic(fmt.Sprintf("Value kind is %s, not %s", g, w))
	}
	return v.num == 1
}

// Str returns v's value as a string. It panics
// if v is not a string.
func (v Value) Str() string {
	if g, w := v.Kind(), KindString; g != w {
		panic(fmt.Sprintf("Value kind is %s, not %s", g, w))
	}
	return v.any.(string)
}

// Func returns v's value as a Func. It panics
// if v is not a Func.
func (v Value) Func() Func {
	if g, w := v.Kind(), KindFunc; g != w {
		panic(fmt.Sprintf("Value kind is %s, not %s", g, w))
	}
	return v.any.(Func)
}

// Any returns v's value as an any.
// Undefined returns nil.
func (v Value) Any() any {
	switch v.Kind() {
	case KindUndefined, KindNull:
		return nil
	case KindBool:
		return v.num == 1
	case KindInt:
		return int64(v.num)
	case KindFloat:
		return v.float()
	default:
		return v.any
	}
}

//////////////// Coercions

// String converts v to a string the way a default comparison does.
// For KindAny values with a String method, that method is called; it may
// run arbitrary code.
func (v Value) String() string {
	switch v.Kind() {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.num == 1)
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat:
		return formatNumber(v.float())
	case KindString:
		return v.any.(string)
	case KindFunc:
		return "function"
	default:
		if s, ok := v.any.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v.any)
	}
}

// Number converts v to a float64. Strings are parsed after trimming
// white space; the empty string is 0 and malformed strings are NaN.
func (v Value) Number() float64 {
	switch v.Kind() {
	case KindUndefined, KindFunc:
		return math.NaN()
	case KindNull:
		return 0
	case KindBool:
		return float64(v.num)
	case KindInt:
		return float64(int64(v.num))
	case KindFloat:
		return v.float()
	case KindString:
		return parseNumber(v.any.(string))
	default:
		if n, ok := v.any.(interface{ Float64() float64 }); ok {
			return n.Float64()
		}
		return parseNumber(v.String())
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if a := math.Abs(f); a >= 1e21 || a < 1e-6 {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		// Go writes e+06 where exponents need two digits; drop the padding.
		if i := strings.IndexByte(s, 'e'); i >= 0 && len(s) > i+2 && s[i+2] == '0' {
			s = s[:i+2] + s[i+3:]
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if u, err := strconv.ParseUint(s[2:], 16, 64); err == nil {
			return float64(u)
		}
		return math.NaN()
	}
	// ParseFloat accepts spellings like "inf" and "1_000" that a number
	// coercion does not.
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return math.NaN()
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

//////////////// Other

// Equal reports whether v and w have the same kind and value.
// NaN equals NaN and the two zeros are equal. KindAny values are compared
// with ==, and Funcs are never equal.
func (v Value) Equal(w Value) bool {
	k1 := v.Kind()
	k2 := w.Kind()
	if k1 != k2 {
		return false
	}
	switch k1 {
	case KindUndefined, KindNull:
		return true
	case KindBool, KindInt:
		return v.num == w.num
	case KindFloat:
		f, g := v.float(), w.float()
		return f == g || (math.IsNaN(f) && math.IsNaN(g))
	case KindString:
		return v.any.(string) == w.any.(string)
	case KindFunc:
		return false
	default:
		if t := reflect.TypeOf(v.any); t != reflect.TypeOf(w.any) || !t.Comparable() {
			return false
		}
		return v.any == w.any
	}
}
