package calculator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxWhole is the largest whole number a Number converts to without losing precision.
const maxWhole = 1 << 53

// Number is a loosely typed numeric argument. It accepts any Go integer or
// float kind, json.Number, numeric strings and raw JSON, and converts them to
// float64 or int only through Float and Whole.
type Number struct {
	v   any
	set bool
}

// Num wraps v as a Number. v is not inspected until it is converted.
func Num(v any) Number {
	return Number{v: v, set: true}
}

// IsSet reports whether a value was supplied
func (n Number) IsSet() bool {
	return n.set
}

// Float converts the number to float64. A missing, non-numeric, NaN or
// infinite value is a type mismatch.
func (n Number) Float(field string) (float64, error) {
	if !n.set {
		return 0, typeMismatch(field, "is required")
	}
	f, ok := toFloat(n.v)
	if !ok {
		return 0, typeMismatch(field, "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, typeMismatch(field, "must be a real number")
	}
	return f, nil
}

// FloatOr is Float with a default for an unset number.
func (n Number) FloatOr(field string, def float64) (float64, error) {
	if !n.set {
		return def, nil
	}
	return n.Float(field)
}

// Whole converts the number to an int no smaller than floor.
func (n Number) Whole(field string, floor int) (int, error) {
	f, err := n.Float(field)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, domainViolation(field, "must be a whole number")
	}
	if f < float64(floor) {
		return 0, domainViolation(field, "must be a whole number >= %d", floor)
	}
	if f > maxWhole {
		return 0, domainViolation(field, "is too large")
	}
	return int(f), nil
}

// WholeOr is Whole with a default for an unset number.
func (n Number) WholeOr(field string, floor, def int) (int, error) {
	if !n.set {
		return def, nil
	}
	return n.Whole(field, floor)
}

// UnmarshalJSON keeps the raw value; conversion errors surface in Float.
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*n = Number{}
		return nil
	}
	*n = Number{v: json.RawMessage(append([]byte(nil), trimmed...)), set: true}
	return nil
}

// MarshalJSON implements json.Marshaler for Number
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	if raw, ok := n.v.(json.RawMessage); ok {
		return raw, nil
	}
	if f, ok := toFloat(n.v); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return json.Marshal(f)
	}
	return json.Marshal(fmt.Sprint(n.v))
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	case json.RawMessage:
		dec := json.NewDecoder(bytes.NewReader(x))
		dec.UseNumber()
		var decoded any
		if err := dec.Decode(&decoded); err != nil {
			return 0, false
		}
		return toFloat(decoded)
	}
	return 0, false
}

// NumberList is a loosely typed list of numbers. Besides a JSON array it
// accepts a comma-separated string such as "50000, 20000".
type NumberList struct {
	items []Number
	list  bool
	set   bool
}

// Nums builds a NumberList from individual values
func Nums(vs ...any) NumberList {
	items := make([]Number, len(vs))
	for i, v := range vs {
		items[i] = Num(v)
	}
	return NumberList{items: items, list: true, set: true}
}

// NotAList wraps a value that was supplied where a list was expected.
func NotAList() NumberList {
	return NumberList{set: true}
}

// ParseNumberList splits a comma-separated string. Blank entries are skipped.
func ParseNumberList(s string) NumberList {
	items := []Number{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, Num(part))
	}
	return NumberList{items: items, list: true, set: true}
}

// IsSet reports whether a value was supplied
func (l NumberList) IsSet() bool {
	return l.set
}

// Floats converts every element, naming a failing element as field[i].
func (l NumberList) Floats(field string) ([]float64, error) {
	if !l.set {
		return nil, typeMismatch(field, "is required")
	}
	if !l.list {
		return nil, typeMismatch(field, "must be a list of numbers")
	}
	out := make([]float64, len(l.items))
	for i, item := range l.items {
		f, err := item.Float(fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler for NumberList
func (l *NumberList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = NumberList{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var items []Number
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = NumberList{items: items, list: true, set: true}
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = ParseNumberList(s)
	default:
		*l = NotAList()
	}
	return nil
}

// MarshalJSON implements json.Marshaler for NumberList
func (l NumberList) MarshalJSON() ([]byte, error) {
	if !l.list {
		return []byte("null"), nil
	}
	return json.Marshal(l.items)
}
