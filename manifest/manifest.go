// Package manifest validates catalogs of payment configurations, the
// shape sites use to describe several paid resources at once. Every
// entry runs through the document validator; collection-level checks
// catch problems no single entry shows.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rawgroundbeef/x402check"
)

// Issue codes added by manifest validation, on top of the document
// validator's codes.
const (
	// CodeInvalidManifest reports input that is not an object with an
	// entries map.
	CodeInvalidManifest = "invalid_manifest"

	// CodeDuplicateResource reports two entries charging for the same
	// resource URL.
	CodeDuplicateResource = "duplicate_resource"

	// CodeMixedNetworkTiers reports a manifest that mixes mainnet and
	// testnet networks.
	CodeMixedNetworkTiers = "mixed_network_tiers"
)

// Result is the outcome of validating a manifest.
type Result struct {
	// Valid reports whether no error-severity issue was found in the
	// manifest or any of its entries.
	Valid bool `json:"valid"`

	// Errors holds every error-severity issue, with field paths scoped
	// by entry name.
	Errors []x402check.ValidationIssue `json:"errors"`

	// Warnings holds every warning-severity issue, with field paths
	// scoped by entry name.
	Warnings []x402check.ValidationIssue `json:"warnings"`

	// Entries holds the per-entry validation results keyed by entry
	// name, with field paths relative to each entry's own document.
	Entries map[string]x402check.ValidationResult `json:"entries"`
}

// Option configures manifest validation.
type Option func(*settings)

type settings struct {
	strict   bool
	registry *x402check.Registry
}

// WithStrict promotes warnings to errors, in the manifest checks and
// in every entry.
func WithStrict() Option {
	return func(s *settings) {
		s.strict = true
	}
}

// WithRegistry overrides the network registry used for validation.
func WithRegistry(reg *x402check.Registry) Option {
	return func(s *settings) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// Validate checks a manifest document of the form
//
//	{"entries": {"<name>": <payment configuration>, ...}}
//
// Each configuration is validated on its own, with issue field paths
// prefixed by entries.<name>, and the collection is then checked for
// duplicated resources and mixed network tiers. Entries are processed
// in name order so results are stable.
func Validate(input any, opts ...Option) Result {
	cfg := settings{registry: x402check.DefaultRegistry()}
	for _, opt := range opts {
		opt(&cfg)
	}

	result := Result{
		Errors:   []x402check.ValidationIssue{},
		Warnings: []x402check.ValidationIssue{},
		Entries:  map[string]x402check.ValidationResult{},
	}

	entries, err := parseManifest(input)
	if err != nil {
		result.Errors = append(result.Errors, x402check.ValidationIssue{
			Code:     CodeInvalidManifest,
			Message:  err.Error(),
			Severity: x402check.SeverityError,
		})
		return result
	}

	coreOpts := []x402check.Option{x402check.WithRegistry(cfg.registry)}
	if cfg.strict {
		coreOpts = append(coreOpts, x402check.WithStrict())
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entryResult := x402check.Validate(entries[name], coreOpts...)
		result.Entries[name] = entryResult

		for _, issue := range entryResult.Errors {
			issue.Field = prefixField(name, issue.Field)
			result.Errors = append(result.Errors, issue)
		}
		for _, issue := range entryResult.Warnings {
			issue.Field = prefixField(name, issue.Field)
			result.Warnings = append(result.Warnings, issue)
		}
	}

	result.Warnings = append(result.Warnings, checkDuplicateResources(names, result.Entries)...)
	result.Warnings = append(result.Warnings, checkNetworkTiers(names, result.Entries, cfg.registry)...)

	if cfg.strict {
		for _, issue := range result.Warnings {
			issue.Severity = x402check.SeverityError
			result.Errors = append(result.Errors, issue)
		}
		result.Warnings = []x402check.ValidationIssue{}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func parseManifest(input any) (map[string]any, error) {
	var data []byte
	switch v := input.(type) {
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	case string:
		data = []byte(v)
	case map[string]any:
		return manifestEntries(v)
	case nil:
		return nil, errors.New("manifest must not be nil")
	default:
		return nil, fmt.Errorf("manifest input must be JSON text or a decoded object, got %T", input)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("manifest is not valid JSON: %v", err)
	}
	if dec.More() {
		return nil, errors.New("manifest has trailing data after the document")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("manifest must be a JSON object")
	}
	return manifestEntries(obj)
}

func manifestEntries(doc map[string]any) (map[string]any, error) {
	raw, ok := doc["entries"]
	if !ok {
		return nil, errors.New(`manifest has no "entries" object`)
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New(`manifest "entries" must be an object keyed by entry name`)
	}
	return entries, nil
}

// prefixField scopes an issue path to its manifest entry.
func prefixField(name, field string) string {
	if field == "" {
		return "entries." + name
	}
	return "entries." + name + "." + field
}

func checkDuplicateResources(names []string, entries map[string]x402check.ValidationResult) []x402check.ValidationIssue {
	byURL := make(map[string][]string)
	for _, name := range names {
		normalized := entries[name].Normalized
		if normalized == nil || normalized.Resource == nil || normalized.Resource.URL == "" {
			continue
		}
		byURL[normalized.Resource.URL] = append(byURL[normalized.Resource.URL], name)
	}

	var duplicated []string
	for url, holders := range byURL {
		if len(holders) > 1 {
			duplicated = append(duplicated, url)
		}
	}
	sort.Strings(duplicated)

	var issues []x402check.ValidationIssue
	for _, url := range duplicated {
		issues = append(issues, x402check.ValidationIssue{
			Code:     CodeDuplicateResource,
			Field:    "entries",
			Message:  fmt.Sprintf("resource %s is charged for by %s", url, strings.Join(byURL[url], ", ")),
			Severity: x402check.SeverityWarning,
		})
	}
	return issues
}

// checkNetworkTiers flags manifests that mix mainnet and testnet
// networks. Aliases resolve before the tier lookup; networks the
// registry does not know stay out of the comparison.
func checkNetworkTiers(names []string, entries map[string]x402check.ValidationResult, reg *x402check.Registry) []x402check.ValidationIssue {
	type sample struct {
		name    string
		network string
	}
	var mainnet, testnet *sample

	for _, name := range names {
		normalized := entries[name].Normalized
		if normalized == nil {
			continue
		}
		for _, entry := range normalized.Entries {
			id := entry.Network
			if canonical, ok := reg.ResolveAlias(id); ok {
				id = canonical
			}
			info, ok := reg.Network(id)
			if !ok {
				continue
			}
			if info.Testnet {
				if testnet == nil {
					testnet = &sample{name: name, network: entry.Network}
				}
			} else if mainnet == nil {
				mainnet = &sample{name: name, network: entry.Network}
			}
		}
	}

	if mainnet == nil || testnet == nil {
		return nil
	}
	return []x402check.ValidationIssue{{
		Code:  CodeMixedNetworkTiers,
		Field: "entries",
		Message: fmt.Sprintf("manifest mixes mainnet (%s in %s) and testnet (%s in %s) networks",
			mainnet.network, mainnet.name, testnet.network, testnet.name),
		Severity: x402check.SeverityWarning,
	}}
}
