package result

// #region imports
import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// #endregion

// #region kind

// Kind tags the category of a computed result value.
type Kind string

const (
	KindNull     Kind = "null"
	KindNumber   Kind = "number"
	KindText     Kind = "text"
	KindSequence Kind = "sequence"
	KindMapping  Kind = "mapping"
	// KindOpaque holds values outside the closed set. They are never
	// counted as empty/invalid and are excluded from numeric checks.
	KindOpaque Kind = "opaque"
)

// #endregion kind

// #region value

// Value is a tagged variant over the result categories an analysis can
// produce: null, number, text, sequence, or mapping.
type Value struct {
	kind    Kind
	num     float64
	text    string
	seq     []Value
	mapping map[string]Value
	opaque  string
}

// Null returns the absent-value marker.
func Null() Value {
	return Value{kind: KindNull}
}

// Number wraps a numeric value. Integers and floats share this variant.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text wraps a string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Sequence wraps an ordered list of values.
func Sequence(vs ...Value) Value {
	return Value{kind: KindSequence, seq: vs}
}

// Mapping wraps a keyed collection of values.
func Mapping(m map[string]Value) Value {
	return Value{kind: KindMapping, mapping: m}
}

// #endregion value

// #region accessors

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Number returns the numeric payload. Only meaningful when Kind is KindNumber.
func (v Value) Number() float64 {
	return v.num
}

// AsNumber returns the numeric payload and whether the value is numeric.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the string payload. Only meaningful when Kind is KindText.
func (v Value) Text() string {
	return v.text
}

// Sequence returns the list payload. Nil unless Kind is KindSequence.
func (v Value) Sequence() []Value {
	return v.seq
}

// Mapping returns the keyed payload. Nil unless Kind is KindMapping.
func (v Value) Mapping() map[string]Value {
	return v.mapping
}

// Len returns the element count for sequences and mappings, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.mapping)
	}
	return 0
}

// #endregion accessors

// #region from-any

// FromAny ingests an arbitrary Go value at the boundary and tags it.
// Unrecognized types become opaque rather than failing.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{kind: KindOpaque, opaque: t.String()}
		}
		return Number(f)
	case string:
		return Text(t)
	case []Value:
		return Sequence(t...)
	case []any:
		seq := make([]Value, len(t))
		for i, e := range t {
			seq[i] = FromAny(e)
		}
		return Sequence(seq...)
	case map[string]Value:
		return Mapping(t)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = FromAny(e)
		}
		return Mapping(m)
	default:
		return Value{kind: KindOpaque, opaque: fmt.Sprint(t)}
	}
}

// MapFromAny converts a loosely-typed results mapping into tagged values.
// Returns nil for a nil input.
func MapFromAny(in map[string]any) map[string]Value {
	if in == nil {
		return nil
	}
	out := make(map[string]Value, len(in))
	for k, v := range in {
		out[k] = FromAny(v)
	}
	return out
}

// #endregion from-any

// #region equal

// Equal reports exact structural equality between two values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.mapping) != len(o.mapping) {
			return false
		}
		for k, e := range v.mapping {
			oe, ok := o.mapping[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}
		return true
	default:
		return v.opaque == o.opaque
	}
}

// #endregion equal

// #region render

// String renders the value for display and substring checks. Mapping keys
// are sorted so the rendering is deterministic.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindNumber:
		if math.IsNaN(v.num) {
			return "NaN"
		}
		if math.IsInf(v.num, 1) {
			return "+Inf"
		}
		if math.IsInf(v.num, -1) {
			return "-Inf"
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, e := range v.seq {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		keys := make([]string, 0, len(v.mapping))
		for k := range v.mapping {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.mapping[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.opaque
	}
}

// #endregion render

// #region json

// UnmarshalJSON decodes an arbitrary JSON value into its tagged form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode result value: %w", err)
	}
	*v = FromAny(raw)
	return nil
}

// MarshalJSON re-encodes the tagged value as plain JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			// JSON has no NaN/Inf literal; fall back to string form.
			return json.Marshal(v.String())
		}
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	case KindSequence:
		if v.seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.seq)
	case KindMapping:
		if v.mapping == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.mapping)
	default:
		return json.Marshal(v.opaque)
	}
}

// #endregion json
