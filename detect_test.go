package x402check

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Format
	}{
		{
			"current",
			`{"x402Version":2,"accepts":[],"resource":{"url":"https://example.com"}}`,
			FormatCurrent,
		},
		{
			"current with null resource",
			`{"x402Version":2,"accepts":[],"resource":null}`,
			FormatCurrent,
		},
		{
			"previous accepts only",
			`{"accepts":[]}`,
			FormatPrevious,
		},
		{
			"previous with version but no resource",
			`{"x402Version":1,"accepts":[]}`,
			FormatPrevious,
		},
		{
			"previous with resource but no version",
			`{"resource":{},"accepts":[]}`,
			FormatPrevious,
		},
		{
			"flat payTo",
			`{"payTo":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}`,
			FormatFlatLegacy,
		},
		{
			"flat amount",
			`{"amount":"1000000"}`,
			FormatFlatLegacy,
		},
		{
			"flat maxAmountRequired",
			`{"maxAmountRequired":"1000000"}`,
			FormatFlatLegacy,
		},
		{
			"network alone is not a flat marker",
			`{"network":"eip155:8453"}`,
			FormatUnrecognized,
		},
		{
			"accepts wins over flat markers",
			`{"accepts":[],"payTo":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}`,
			FormatPrevious,
		},
		{"empty object", `{}`, FormatUnrecognized},
		{"unrelated keys", `{"hello":"world"}`, FormatUnrecognized},
		{"malformed json", `{"accepts":`, FormatUnrecognized},
		{"array document", `[{"accepts":[]}]`, FormatUnrecognized},
		{"string document", `"accepts"`, FormatUnrecognized},
		{"nil input", nil, FormatUnrecognized},
		{"map input", map[string]any{"accepts": []any{}}, FormatPrevious},
		{
			"byte input",
			[]byte(`{"x402Version":1,"accepts":[],"resource":null}`),
			FormatCurrent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDetectIgnoresFieldValues pins down that detection looks at key
// presence only. Garbage values still classify; the rules report them.
func TestDetectIgnoresFieldValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"accepts not a list", `{"accepts":"garbage"}`, FormatPrevious},
		{"version not a number", `{"x402Version":"two","accepts":[],"resource":1}`, FormatCurrent},
		{"null payTo", `{"payTo":null}`, FormatFlatLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
