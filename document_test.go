package x402check

import (
	"encoding/json"
	"testing"
)

func TestStringValue(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{"string", "hello", "hello", true},
		{"number keeps its literal", json.Number("1e6"), "1e6", true},
		{"number with decimals", json.Number("0.0000001"), "0.0000001", true},
		{"float64", float64(1000000), "1000000", true},
		{"int", 42, "42", true},
		{"int64", int64(-7), "-7", true},
		{"nil", nil, "", false},
		{"map", map[string]any{}, "", false},
		{"slice", []any{"x"}, "", false},
		{"bool", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stringValue(tt.value)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("stringValue(%v) = %q, %v, want %q, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIntegerValue(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int64
		wantOK bool
	}{
		{"number", json.Number("60"), 60, true},
		{"number with integral fraction", json.Number("60.0"), 60, true},
		{"negative number", json.Number("-3"), -3, true},
		{"fractional number", json.Number("1.5"), 0, false},
		{"float64 integral", float64(45), 45, true},
		{"float64 fractional", 4.5, 0, false},
		{"int", 7, 7, true},
		{"int64", int64(9), 9, true},
		{"string", "60", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := integerValue(tt.value)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("integerValue(%v) = %d, %v, want %d, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsEmptyValue(t *testing.T) {
	if !isEmptyValue(nil) || !isEmptyValue("") {
		t.Error("nil and empty string must count as empty")
	}
	for _, v := range []any{"x", 0, false, map[string]any{}, []any{}} {
		if isEmptyValue(v) {
			t.Errorf("isEmptyValue(%v) = true, want false", v)
		}
	}
}
