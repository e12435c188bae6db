// Copyright 2025 Edgeo SCADA
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

package snmp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which field of a Value is set.
type Kind int

const (
	// KindRaw holds a value that could not be coerced.
	KindRaw Kind = iota
	// KindInt holds a signed integer.
	KindInt
	// KindFloat holds a floating-point number.
	KindFloat
	// KindString holds text.
	KindString
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "INTEGER"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindRaw:
		return "RAW"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a scalar returned by an agent after coercion.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	raw  interface{}
}

// IntValue returns an integer Value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a floating-point Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// RawValue returns a Value wrapping v unchanged.
func RawValue(v interface{}) Value { return Value{kind: KindRaw, raw: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer and whether the value is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the float and whether the value is a float.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Str returns the text and whether the value is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Raw returns the uncoerced value, if any.
func (v Value) Raw() interface{} { return v.raw }

// Interface returns the value as int64, float64, string or the raw value.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return v.raw
	}
}

// String formats the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		if v.raw == nil {
			return "NULL"
		}
		return fmt.Sprintf("%v", v.raw)
	}
}

// Equal reports whether two values have the same kind and content.
// Raw values are compared by their formatted representation.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f || (math.IsNaN(v.f) && math.IsNaN(other.f))
	case KindString:
		return v.s == other.s
	default:
		return v.String() == other.String()
	}
}

// Cast coerces raw into the first kind that accepts it: integer, then float,
// then string. A value with no usable form is returned as KindRaw.
func Cast(raw interface{}) Value {
	switch val := raw.(type) {
	case nil:
		return RawValue(nil)
	case Value:
		return val
	case int:
		return IntValue(int64(val))
	case int8:
		return IntValue(int64(val))
	case int16:
		return IntValue(int64(val))
	case int32:
		return IntValue(int64(val))
	case int64:
		return IntValue(val)
	case uint:
		return castUint(uint64(val))
	case uint8:
		return IntValue(int64(val))
	case uint16:
		return IntValue(int64(val))
	case uint32:
		return IntValue(int64(val))
	case uint64:
		return castUint(val)
	case float32:
		return FloatValue(float64(val))
	case float64:
		return FloatValue(val)
	case bool:
		if val {
			return IntValue(1)
		}
		return IntValue(0)
	case []byte:
		return CastString(bytesToString(val))
	case string:
		return CastString(val)
	case fmt.Stringer:
		return CastString(val.String())
	default:
		return CastString(fmt.Sprintf("%v", val))
	}
}

// CastString applies the integer, float, string priority to text.
func CastString(s string) Value {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return FloatValue(f)
	}
	return StringValue(s)
}

// castUint keeps values above MaxInt64 by falling through to float.
func castUint(u uint64) Value {
	if u > math.MaxInt64 {
		return FloatValue(float64(u))
	}
	return IntValue(int64(u))
}

// bytesToString returns printable ASCII as-is and anything else as hex.
func bytesToString(data []byte) string {
	if isPrintable(data) {
		return string(data)
	}
	return formatHex(data)
}

// isPrintable checks if bytes are printable ASCII, allowing common whitespace.
func isPrintable(data []byte) bool {
	for _, b := range data {
		if b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		if b < 32 || b > 126 {
			return false
		}
	}
	return true
}

// formatHex formats bytes as hex string.
func formatHex(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
