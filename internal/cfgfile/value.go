package cfgfile

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindList
)

// Value is a tagged union of the scalar and list types the .cfg format can
// express. Downstream consumers switch on Kind rather than inspecting the
// underlying representation.
type Value struct {
	kind Kind
	str  string
	num  int64
	real float64
	list []string
}

// StringValue wraps a plain string.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue wraps an integer. Boolean-style .cfg flags (0/1) use this variant.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// FloatValue wraps a decimal number.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

// ListValue wraps a list of strings parsed from quoted, comma-separated input.
func ListValue(items []string) Value {
	copied := make([]string, len(items))
	copy(copied, items)
	return Value{kind: KindList, list: copied}
}

// Kind reports the variant held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// String coerces the value to its string form. Lists join with ", ".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	case KindList:
		return strings.Join(v.list, ", ")
	default:
		return v.str
	}
}

// Int coerces the value to an integer where a sensible coercion exists:
// integers as-is, floats truncated, strings via decimal parsing. The second
// return reports whether the coercion succeeded.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.num, true
	case KindFloat:
		return int64(v.real), true
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.str), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Bool interprets the value as a 0/1 flag via Int. Any nonzero integer is true.
func (v Value) Bool() (bool, bool) {
	n, ok := v.Int()
	if !ok {
		return false, false
	}
	return n != 0, true
}

// Strings normalizes the value to a list of strings: list variants copy
// through, scalars become a single-element list.
func (v Value) Strings() []string {
	if v.kind == KindList {
		copied := make([]string, len(v.list))
		copy(copied, v.list)
		return copied
	}
	return []string{v.String()}
}

// Map holds the parsed key/value pairs of one .cfg file. Keys are unique;
// when a file repeats a key the last occurrence wins.
type Map map[string]Value

// Lookup returns the value for key and whether the key was present.
func (m Map) Lookup(key string) (Value, bool) {
	v, ok := m[key]
	return v, ok
}

// TrimmedString returns the whitespace-trimmed string coercion for key, or
// the empty string when the key is absent.
func (m Map) TrimmedString(key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	return strings.TrimSpace(v.String())
}
