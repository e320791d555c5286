// Copyright 2024 The swrlapi-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package value implements the typed literal value model (C1): construction
// from primitives or lexical+datatype pairs, kind predicates, typed
// projections, a total order, and a quoted textual form.
package value

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	errors "gopkg.in/src-d/go-errors.v1"
)

// Datatype enumerates the literal datatypes supported by the value model.
type Datatype int

const (
	Boolean Datatype = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	String
	AnyURI
	Date
	Time
	DateTime
	Duration
)

var datatypeNames = map[Datatype]string{
	Boolean:  "boolean",
	Byte:     "byte",
	Short:    "short",
	Int:      "int",
	Long:     "long",
	Float:    "float",
	Double:   "double",
	String:   "string",
	AnyURI:   "anyURI",
	Date:     "date",
	Time:     "time",
	DateTime: "dateTime",
	Duration: "duration",
}

func (d Datatype) String() string {
	if n, ok := datatypeNames[d]; ok {
		return n
	}
	return "unknown"
}

// ErrLiteralType is raised when a typed projection is requested against a
// datatype outside its compatible category, or when two values of
// incompatible kinds are compared.
var ErrLiteralType = errors.NewKind("literal type error: %s")

// Value is an immutable literal: a lexical form, a datatype, and a typed
// Go projection.
type Value struct {
	datatype    Datatype
	lexicalForm string
	native      interface{}
}

// New builds a Value from a Go native value and an explicit datatype,
// validating that the native value is compatible with the datatype's
// category.
func New(datatype Datatype, native interface{}) (Value, error) {
	v := Value{datatype: datatype, native: native}
	if err := v.validate(); err != nil {
		return Value{}, err
	}
	v.lexicalForm = lexicalFormOf(datatype, native)
	return v, nil
}

// FromLexicalForm parses a lexical form against a declared datatype,
// delegating numeric/boolean/temporal coercion to spf13/cast.
func FromLexicalForm(datatype Datatype, lexicalForm string) (Value, error) {
	switch datatype {
	case Boolean:
		b, err := cast.ToBoolE(lexicalForm)
		if err != nil {
			return Value{}, ErrLiteralType.New(err.Error())
		}
		return New(Boolean, b)
	case Byte, Short, Int, Long:
		i, err := cast.ToInt64E(strings.TrimSpace(lexicalForm))
		if err != nil {
			return Value{}, ErrLiteralType.New(err.Error())
		}
		return New(datatype, i)
	case Float, Double:
		f, err := cast.ToFloat64E(strings.TrimSpace(lexicalForm))
		if err != nil {
			return Value{}, ErrLiteralType.New(err.Error())
		}
		return New(datatype, f)
	case String, AnyURI:
		return New(datatype, lexicalForm)
	case Date:
		t, err := cast.ToTimeE(lexicalForm)
		if err != nil {
			return Value{}, ErrLiteralType.New(err.Error())
		}
		return New(Date, t)
	case Time:
		t, err := parseTimeOfDay(lexicalForm)
		if err != nil {
			return Value{}, ErrLiteralType.New(err.Error())
		}
		return New(Time, t)
	case DateTime:
		t, err := cast.ToTimeE(lexicalForm)
		if err != nil {
			return Value{}, ErrLiteralType.New(err.Error())
		}
		return New(DateTime, t)
	case Duration:
		d, err := time.ParseDuration(lexicalForm)
		if err != nil {
			return Value{}, ErrLiteralType.New(err.Error())
		}
		return New(Duration, d)
	default:
		return Value{}, ErrLiteralType.New(fmt.Sprintf("unsupported datatype %v", datatype))
	}
}

func parseTimeOfDay(lexicalForm string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04:05.000", "15:04"} {
		if t, err := time.Parse(layout, lexicalForm); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time-of-day lexical form %q", lexicalForm)
}

// Convenience constructors mirroring the value category boundaries.

func NewBoolean(b bool) Value             { v, _ := New(Boolean, b); return v }
func NewByte(i int64) Value               { v, _ := New(Byte, i); return v }
func NewShort(i int64) Value              { v, _ := New(Short, i); return v }
func NewInt(i int64) Value                { v, _ := New(Int, i); return v }
func NewLong(i int64) Value               { v, _ := New(Long, i); return v }
func NewFloat(f float64) Value            { v, _ := New(Float, f); return v }
func NewDouble(f float64) Value           { v, _ := New(Double, f); return v }
func NewString(s string) Value            { v, _ := New(String, s); return v }
func NewAnyURI(s string) Value            { v, _ := New(AnyURI, s); return v }
func NewDate(t time.Time) Value           { v, _ := New(Date, t); return v }
func NewTime(t time.Time) Value           { v, _ := New(Time, t); return v }
func NewDateTime(t time.Time) Value       { v, _ := New(DateTime, t); return v }
func NewDuration(d time.Duration) Value   { v, _ := New(Duration, d); return v }

func (v Value) validate() error {
	switch v.datatype {
	case Boolean:
		if _, ok := v.native.(bool); !ok {
			return ErrLiteralType.New("boolean value must be bool")
		}
	case Byte, Short, Int, Long:
		if _, ok := v.native.(int64); !ok {
			return ErrLiteralType.New(fmt.Sprintf("%s value must be int64", v.datatype))
		}
	case Float, Double:
		if _, ok := v.native.(float64); !ok {
			return ErrLiteralType.New(fmt.Sprintf("%s value must be float64", v.datatype))
		}
	case String, AnyURI:
		if _, ok := v.native.(string); !ok {
			return ErrLiteralType.New(fmt.Sprintf("%s value must be string", v.datatype))
		}
	case Date, Time, DateTime:
		if _, ok := v.native.(time.Time); !ok {
			return ErrLiteralType.New(fmt.Sprintf("%s value must be time.Time", v.datatype))
		}
	case Duration:
		if _, ok := v.native.(time.Duration); !ok {
			return ErrLiteralType.New("duration value must be time.Duration")
		}
	default:
		return ErrLiteralType.New(fmt.Sprintf("unsupported datatype %v", v.datatype))
	}
	return nil
}

func lexicalFormOf(datatype Datatype, native interface{}) string {
	switch datatype {
	case Date:
		return native.(time.Time).Format("2006-01-02")
	case Time:
		return native.(time.Time).Format("15:04:05")
	case DateTime:
		return native.(time.Time).Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", native)
	}
}

// Datatype returns the value's declared datatype.
func (v Value) Datatype() Datatype { return v.datatype }

// LexicalForm returns the value's lexical (string) form.
func (v Value) LexicalForm() string { return v.lexicalForm }

// IsNumeric is true exactly for {byte, short, int, long, float, double}.
func (v Value) IsNumeric() bool {
	switch v.datatype {
	case Byte, Short, Int, Long, Float, Double:
		return true
	}
	return false
}

// IsIntegerKind is true for the integral numeric datatypes.
func (v Value) IsIntegerKind() bool {
	switch v.datatype {
	case Byte, Short, Int, Long:
		return true
	}
	return false
}

func (v Value) IsString() bool   { return v.datatype == String }
func (v Value) IsAnyURI() bool   { return v.datatype == AnyURI }
func (v Value) IsBoolean() bool  { return v.datatype == Boolean }
func (v Value) IsDate() bool     { return v.datatype == Date }
func (v Value) IsTime() bool     { return v.datatype == Time }
func (v Value) IsDateTime() bool { return v.datatype == DateTime }
func (v Value) IsDuration() bool { return v.datatype == Duration }
func (v Value) IsTemporal() bool {
	switch v.datatype {
	case Date, Time, DateTime, Duration:
		return true
	}
	return false
}

// typed projections

func (v Value) AsBool() (bool, error) {
	if v.datatype != Boolean {
		return false, ErrLiteralType.New(fmt.Sprintf("cannot project %s as boolean", v.datatype))
	}
	return v.native.(bool), nil
}

func (v Value) AsInt() (int64, error) {
	if !v.IsIntegerKind() {
		return 0, ErrLiteralType.New(fmt.Sprintf("cannot project %s as integer", v.datatype))
	}
	return v.native.(int64), nil
}

func (v Value) AsDouble() (float64, error) {
	if !v.IsNumeric() {
		return 0, ErrLiteralType.New(fmt.Sprintf("cannot project %s as double", v.datatype))
	}
	if v.IsIntegerKind() {
		return float64(v.native.(int64)), nil
	}
	return v.native.(float64), nil
}

func (v Value) AsString() (string, error) {
	if v.datatype != String && v.datatype != AnyURI {
		return "", ErrLiteralType.New(fmt.Sprintf("cannot project %s as string", v.datatype))
	}
	return v.native.(string), nil
}

func (v Value) AsTime() (time.Time, error) {
	if !v.IsTemporal() || v.datatype == Duration {
		return time.Time{}, ErrLiteralType.New(fmt.Sprintf("cannot project %s as a time", v.datatype))
	}
	return v.native.(time.Time), nil
}

func (v Value) AsDuration() (time.Duration, error) {
	if v.datatype != Duration {
		return 0, ErrLiteralType.New(fmt.Sprintf("cannot project %s as duration", v.datatype))
	}
	return v.native.(time.Duration), nil
}

// Native returns the untyped Go projection, for callers (e.g. the SQWRL
// result engine) that need to move values around without caring about the
// concrete datatype.
func (v Value) Native() interface{} { return v.native }

// Equals reports whether two values are equal under CompareTo's total
// order (returns false, not an error, when the kinds are incomparable).
func (v Value) Equals(other Value) bool {
	c, err := v.CompareTo(other)
	return err == nil && c == 0
}

// CompareTo implements the total order of §4.1: numerics compared as
// doubles (integer-kinded pairs widened to int64 to preserve sign beyond
// double's mantissa), temporal values compared with temporal values of the
// same kind, strings with strings. Comparison across incompatible kinds
// fails with ErrLiteralType.
func (v Value) CompareTo(other Value) (int, error) {
	switch {
	case v.IsNumeric() && other.IsNumeric():
		return compareNumeric(v, other)
	case v.datatype == String && other.datatype == String:
		return compareStrings(v.native.(string), other.native.(string)), nil
	case v.datatype == AnyURI && other.datatype == AnyURI:
		return compareStrings(v.native.(string), other.native.(string)), nil
	case v.datatype == Boolean && other.datatype == Boolean:
		a, b := v.native.(bool), other.native.(bool)
		if a == b {
			return 0, nil
		}
		if !a && b {
			return -1, nil
		}
		return 1, nil
	case v.IsTemporal() && other.IsTemporal() && v.datatype == other.datatype:
		if v.datatype == Duration {
			a, b := v.native.(time.Duration), other.native.(time.Duration)
			switch {
			case a < b:
				return -1, nil
			case a > b:
				return 1, nil
			default:
				return 0, nil
			}
		}
		a, b := v.native.(time.Time), other.native.(time.Time)
		switch {
		case a.Before(b):
			return -1, nil
		case a.After(b):
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, ErrLiteralType.New(fmt.Sprintf("cannot compare %s with %s", v.datatype, other.datatype))
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareNumeric widens two integer-kinded values to int64 rather than
// double, so that magnitudes beyond double's 53-bit mantissa still compare
// with the mathematically correct sign; any other numeric pairing is
// compared in double precision.
func compareNumeric(a, b Value) (int, error) {
	if a.IsIntegerKind() && b.IsIntegerKind() {
		x, y := a.native.(int64), b.native.(int64)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	}
	x, err := a.AsDouble()
	if err != nil {
		return 0, err
	}
	y, err := b.AsDouble()
	if err != nil {
		return 0, err
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	default:
		return 0, nil
	}
}

// Quoted renders the value's textual form: string/URI/date/time quoted,
// numerics bare.
func (v Value) Quoted() string {
	switch v.datatype {
	case String, AnyURI, Date, Time, DateTime, Duration:
		return fmt.Sprintf("%q", v.lexicalForm)
	default:
		return v.lexicalForm
	}
}

func (v Value) String() string {
	return fmt.Sprintf("%s^^%s", v.lexicalForm, v.datatype)
}
