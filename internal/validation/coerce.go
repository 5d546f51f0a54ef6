package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxSafeInteger mirrors the largest integer a JSON client can represent exactly
const maxSafeInteger = 1<<53 - 1

// fieldReader pulls typed values out of an untyped JSON object and records
// type/presence problems as it goes.
type fieldReader struct {
	raw  map[string]any
	errs *ValidationError
}

func (r fieldReader) str(key string, required bool) *string {
	v, ok := r.raw[key]
	if !ok {
		if required {
			r.errs.add(key, "Required")
		}
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.errs.add(key, fmt.Sprintf("Expected string, received %s", typeName(v)))
		return nil
	}
	return &s
}

func (r fieldReader) stringList(key string, required bool) ([]string, bool) {
	v, ok := r.raw[key]
	if !ok {
		if required {
			r.errs.add(key, "Required")
		}
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		r.errs.add(key, fmt.Sprintf("Expected array, received %s", typeName(v)))
		return nil, false
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			r.errs.add(fmt.Sprintf("%s.%d", key, i), fmt.Sprintf("Expected string, received %s", typeName(item)))
			continue
		}
		out[i] = s
	}
	return out, true
}

// integer coerces numbers the way a lenient form client sends them:
// numeric strings, booleans and null are accepted.
func (r fieldReader) integer(key string, required bool) *int {
	v, ok := r.raw[key]
	if !ok {
		if required {
			r.errs.add(key, "Required")
		}
		return nil
	}

	f, ok := toNumber(v)
	if !ok || math.IsNaN(f) {
		r.errs.add(key, "Expected number, received nan")
		return nil
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		r.errs.add(key, "Expected integer, received float")
		return nil
	}
	if math.Abs(f) > maxSafeInteger {
		r.errs.add(key, fmt.Sprintf("Number must be less than or equal to %d", maxSafeInteger))
		return nil
	}
	n := int(f)
	return &n
}

func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
