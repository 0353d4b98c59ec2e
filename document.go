package x402check

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// parseDocument turns any accepted input into a parsed JSON object.
// Strings and byte slices are decoded with json.Number so numeric
// literals survive verbatim; maps are taken as already parsed.
func parseDocument(input any) (map[string]any, error) {
	switch v := input.(type) {
	case map[string]any:
		return v, nil
	case string:
		return parseJSON([]byte(v))
	case []byte:
		return parseJSON(v)
	case json.RawMessage:
		return parseJSON(v)
	case nil:
		return nil, ErrInvalidInput
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInput, input)
	}
}

func parseJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrInvalidDocument
	}
	return obj, nil
}

// stringValue renders a scalar document value as the string a rule
// should inspect, preserving numeric literals. It reports false for
// composite or missing values.
func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

// stringOf is the lenient variant of stringValue used when building the
// normalized config: anything non-scalar becomes the empty string and
// is reported separately by the rules.
func stringOf(v any) string {
	s, _ := stringValue(v)
	return s
}

// integerValue extracts an integral number from a document value.
func integerValue(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		if f, err := t.Float64(); err == nil && f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
			return int64(f), true
		}
		return 0, false
	case float64:
		if t == math.Trunc(t) && t >= math.MinInt64 && t <= math.MaxInt64 {
			return int64(t), true
		}
		return 0, false
	case int:
		return int64(t), true
	case int64:
		return t, true
	default:
		return 0, false
	}
}

// isEmptyValue reports whether a field is present but carries nothing a
// rule could check: JSON null or the empty string.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
