package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rawgroundbeef/x402check"
)

func sampleResult(valid bool) x402check.ValidationResult {
	result := x402check.ValidationResult{
		Valid:    valid,
		Format:   x402check.FormatCurrent,
		Errors:   []x402check.ValidationIssue{},
		Warnings: []x402check.ValidationIssue{},
	}
	if !valid {
		result.Errors = append(result.Errors, x402check.ValidationIssue{
			Code:     x402check.CodeInvalidAmount,
			Field:    "entries[0].amount",
			Message:  "amount must be greater than zero, got 0",
			Fix:      `"1000000"`,
			Severity: x402check.SeverityError,
		})
	}
	return result
}

func TestFormatIssue(t *testing.T) {
	issue := x402check.ValidationIssue{
		Code:    x402check.CodeChecksumMismatch,
		Field:   "entries[0].payTo",
		Message: "address fails its EIP-55 checksum",
		Fix:     `"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`,
	}

	got := formatIssue(issue)
	want := `entries[0].payTo: address fails its EIP-55 checksum (fix: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed") [checksum_mismatch]`
	if got != want {
		t.Errorf("formatIssue() = %q, want %q", got, want)
	}
}

func TestFormatIssueDocumentLevel(t *testing.T) {
	issue := x402check.ValidationIssue{
		Code:    x402check.CodeUnrecognizedFormat,
		Message: "document matches no known x402 payment format",
	}

	got := formatIssue(issue)
	if strings.HasPrefix(got, ": ") {
		t.Errorf("formatIssue() = %q, leads with an empty field", got)
	}
	if !strings.HasSuffix(got, "[unrecognized_format]") {
		t.Errorf("formatIssue() = %q, missing the code suffix", got)
	}
}

func TestRenderTextVerdicts(t *testing.T) {
	var buf bytes.Buffer
	renderText(&buf, sampleResult(true), false)
	if !strings.Contains(buf.String(), "current document is valid") {
		t.Errorf("valid output = %q", buf.String())
	}

	buf.Reset()
	renderText(&buf, sampleResult(false), false)
	out := buf.String()
	if !strings.Contains(out, "current document is invalid") {
		t.Errorf("invalid output = %q", out)
	}
	if !strings.Contains(out, "error:") || !strings.Contains(out, "entries[0].amount") {
		t.Errorf("invalid output = %q, missing the issue line", out)
	}
}

func TestRenderTextQuietHidesWarnings(t *testing.T) {
	result := sampleResult(true)
	result.Warnings = append(result.Warnings, x402check.ValidationIssue{
		Code:     x402check.CodeNoChecksum,
		Field:    "entries[0].payTo",
		Message:  "base58 addresses have no checksum to verify",
		Severity: x402check.SeverityWarning,
	})

	var loud bytes.Buffer
	renderText(&loud, result, false)
	if !strings.Contains(loud.String(), "warning:") {
		t.Errorf("output = %q, missing the warning line", loud.String())
	}

	var quiet bytes.Buffer
	renderText(&quiet, result, true)
	if strings.Contains(quiet.String(), "warning:") {
		t.Errorf("quiet output = %q, still shows warnings", quiet.String())
	}
}

func TestRenderJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := renderJSON(&buf, sampleResult(false)); err != nil {
		t.Fatalf("renderJSON() error: %v", err)
	}

	var parsed x402check.ValidationResult
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if parsed.Valid || len(parsed.Errors) != 1 {
		t.Errorf("parsed = %+v, want the invalid sample", parsed)
	}
}

func TestReportExitSignals(t *testing.T) {
	var buf bytes.Buffer
	if err := report(&buf, sampleResult(true)); err != nil {
		t.Errorf("report(valid) error = %v, want nil", err)
	}
	if err := report(&buf, sampleResult(false)); !errors.Is(err, errInvalid) {
		t.Errorf("report(invalid) error = %v, want errInvalid", err)
	}
}

func TestReadDocumentInlineJSON(t *testing.T) {
	flagJSON = `{"accepts": []}`
	defer func() { flagJSON = "" }()

	document, err := readDocument(nil)
	if err != nil {
		t.Fatalf("readDocument() error: %v", err)
	}
	if string(document) != `{"accepts": []}` {
		t.Errorf("document = %q", document)
	}
}

func TestReadDocumentFromFile(t *testing.T) {
	path := t.TempDir() + "/config.json"
	if err := os.WriteFile(path, []byte(`{"accepts": []}`), 0o600); err != nil {
		t.Fatal(err)
	}

	document, err := readDocument([]string{path})
	if err != nil {
		t.Fatalf("readDocument() error: %v", err)
	}
	if string(document) != `{"accepts": []}` {
		t.Errorf("document = %q", document)
	}

	if _, err := readDocument([]string{path + ".missing"}); err == nil {
		t.Error("readDocument() on a missing file returned no error")
	}
}
