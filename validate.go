package x402check

import (
	"errors"
	"fmt"
)

// Option adjusts how Validate runs.
type Option func(*settings)

type settings struct {
	strict   bool
	registry *Registry
}

// WithStrict reports warnings as errors. A document with any finding
// at all fails strict validation.
func WithStrict() Option {
	return func(s *settings) { s.strict = true }
}

// WithRegistry validates against reg instead of the built-in network
// registry.
func WithRegistry(reg *Registry) Option {
	return func(s *settings) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// Validate checks an x402 payment configuration and reports every
// finding at once. input is a JSON document as a string, []byte,
// json.RawMessage or an already-decoded map.
//
// Validate never panics. Malformed input comes back as a result with
// a single fatal error, not as a Go error.
func Validate(input any, opts ...Option) ValidationResult {
	s := settings{registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(&s)
	}

	result := runPipeline(input, s.registry)
	if s.strict {
		result = strictResult(result)
	}
	return result
}

func runPipeline(input any, reg *Registry) ValidationResult {
	doc, err := parseDocument(input)
	if err != nil {
		return fatalResult(err)
	}

	format := detectFormat(doc)
	if format == FormatUnrecognized {
		return assembleResult(format, []ValidationIssue{{
			Code:     CodeUnrecognizedFormat,
			Message:  "document matches no known x402 payment format",
			Severity: SeverityError,
		}}, nil)
	}

	canon, issues := canonicalize(doc, format)
	issues = append(issues, checkStructure(canon, format)...)

	for i, v := range entryList(canon) {
		path := fmt.Sprintf("entries[%d]", i)
		entry, ok := v.(map[string]any)
		if !ok {
			issues = append(issues, ValidationIssue{
				Code:     CodeInvalidEntry,
				Field:    path,
				Message:  "accepts entries must be objects",
				Severity: SeverityError,
			})
			continue
		}
		issues = append(issues, checkEntry(entry, path, reg)...)
	}

	return assembleResult(format, issues, buildNormalized(canon, format))
}

// checkEntry runs the per-entry rules. The network rule runs first so
// the amount rule knows which asset decimals apply, but its findings
// keep their place in the reported order.
func checkEntry(entry map[string]any, path string, reg *Registry) []ValidationIssue {
	family, networkID, networkIssues := checkNetwork(entry, path, reg)

	issues := checkRequirements(entry, path)
	issues = append(issues, checkAmount(entry, path, networkID, reg)...)
	issues = append(issues, networkIssues...)
	issues = append(issues, checkAddresses(entry, path, family)...)
	return issues
}

func fatalResult(err error) ValidationResult {
	code := CodeInvalidInput
	switch {
	case errors.Is(err, ErrInvalidJSON):
		code = CodeInvalidJSON
	case errors.Is(err, ErrInvalidDocument):
		code = CodeInvalidDocument
	}
	return assembleResult(FormatUnrecognized, []ValidationIssue{{
		Code:     code,
		Message:  err.Error(),
		Severity: SeverityError,
	}}, nil)
}

// assembleResult splits issues by severity. Errors and Warnings are
// always non-nil so callers and JSON consumers see [] rather than
// null.
func assembleResult(format Format, issues []ValidationIssue, normalized *NormalizedConfig) ValidationResult {
	result := ValidationResult{
		Format:     format,
		Errors:     []ValidationIssue{},
		Warnings:   []ValidationIssue{},
		Normalized: normalized,
	}
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			result.Errors = append(result.Errors, issue)
		} else {
			result.Warnings = append(result.Warnings, issue)
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}

// strictResult moves every warning into the error list. Codes, fields
// and messages stay as they were.
func strictResult(r ValidationResult) ValidationResult {
	if len(r.Warnings) == 0 {
		return r
	}
	for _, w := range r.Warnings {
		w.Severity = SeverityError
		r.Errors = append(r.Errors, w)
	}
	r.Warnings = []ValidationIssue{}
	r.Valid = false
	return r
}
