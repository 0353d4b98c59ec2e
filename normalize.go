package x402check

// Normalize parses input and maps any recognized format to the
// canonical current shape. Amounts, addresses, and network identifiers
// are carried through verbatim; normalizing an already canonical
// document is a no-op. It returns ErrInvalidJSON, ErrInvalidDocument,
// ErrInvalidInput, or ErrUnrecognizedFormat when no normalized form
// exists.
func Normalize(input any) (*NormalizedConfig, error) {
	doc, err := parseDocument(input)
	if err != nil {
		return nil, err
	}

	format := detectFormat(doc)
	if format == FormatUnrecognized {
		return nil, ErrUnrecognizedFormat
	}

	canon, _ := canonicalize(doc, format)
	return buildNormalized(canon, format), nil
}

// canonicalize reshapes a detected document into the canonical
// current-format key set, returning fresh maps so the input is never
// mutated. Upgrades from older formats emit one warning describing the
// translations performed; a current-format document emits none.
func canonicalize(doc map[string]any, format Format) (map[string]any, []ValidationIssue) {
	switch format {
	case FormatCurrent:
		return canonicalizeCurrent(doc), nil
	case FormatPrevious:
		return canonicalizePrevious(doc)
	case FormatFlatLegacy:
		return canonicalizeFlat(doc)
	default:
		return map[string]any{}, nil
	}
}

func canonicalizeCurrent(doc map[string]any) map[string]any {
	canon := make(map[string]any, 3)
	if v, ok := doc["x402Version"]; ok {
		canon["x402Version"] = v
	}
	if v, ok := doc["resource"]; ok {
		canon["resource"] = v
	}
	if v, ok := doc["accepts"]; ok {
		canon["accepts"] = copyEntryList(v)
	}
	return canon
}

func canonicalizePrevious(doc map[string]any) (map[string]any, []ValidationIssue) {
	canon := make(map[string]any, 3)
	if v, ok := doc["x402Version"]; ok {
		canon["x402Version"] = v
	}

	list, isList := doc["accepts"].([]any)
	if !isList {
		// Carry the malformed value for the structure rule to report.
		canon["accepts"] = doc["accepts"]
		return canon, []ValidationIssue{legacyUpgradeWarning(FormatPrevious)}
	}

	entries := make([]any, len(list))
	for i, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			entries[i] = e
			continue
		}

		entry := copyMap(m)
		if _, hasAmount := entry["amount"]; !hasAmount {
			if v, ok := entry["maxAmountRequired"]; ok {
				entry["amount"] = v
				delete(entry, "maxAmountRequired")
			}
		}
		entries[i] = entry
	}
	canon["accepts"] = entries

	// The previous format carries the resource URL inside each entry;
	// the canonical shape describes it once at the document level, so
	// lift it from the first entry.
	if len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			if url, ok := first["resource"]; ok {
				resource := map[string]any{"url": url}
				if v, ok := first["description"]; ok {
					resource["description"] = v
				}
				if v, ok := first["mimeType"]; ok {
					resource["mimeType"] = v
				}
				canon["resource"] = resource
			}
		}
	}

	return canon, []ValidationIssue{legacyUpgradeWarning(FormatPrevious)}
}

func canonicalizeFlat(doc map[string]any) (map[string]any, []ValidationIssue) {
	entry := make(map[string]any, 6)
	for _, key := range []string{"scheme", "network", "asset", "payTo", "maxTimeoutSeconds"} {
		if v, ok := doc[key]; ok {
			entry[key] = v
		}
	}
	if v, ok := doc["amount"]; ok {
		entry["amount"] = v
	} else if v, ok := doc["maxAmountRequired"]; ok {
		entry["amount"] = v
	}

	canon := map[string]any{"accepts": []any{entry}}
	if r, ok := doc["resource"]; ok {
		if url, isString := r.(string); isString {
			canon["resource"] = map[string]any{"url": url}
		} else {
			canon["resource"] = r
		}
	}

	return canon, []ValidationIssue{legacyUpgradeWarning(FormatFlatLegacy)}
}

func legacyUpgradeWarning(from Format) ValidationIssue {
	message := "previous-format document upgraded to the current shape (maxAmountRequired renamed to amount, resource lifted to the document level)"
	if from == FormatFlatLegacy {
		message = "flat-legacy document upgraded to the current shape (root payment fields wrapped in a single-entry accepts list)"
	}
	return ValidationIssue{
		Code:     CodeLegacyFormat,
		Field:    "",
		Message:  message,
		Severity: SeverityWarning,
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyEntryList(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(list))
	for i, e := range list {
		if m, ok := e.(map[string]any); ok {
			out[i] = copyMap(m)
		} else {
			out[i] = e
		}
	}
	return out
}

// entryList extracts the accepts list from a canonical document,
// tolerating any malformed value the structure rule will have reported.
func entryList(canon map[string]any) []any {
	list, _ := canon["accepts"].([]any)
	return list
}

// buildNormalized assembles the output struct from a canonical
// document. Values are rendered with their original literals; fields
// the document never set stay zero. Upgraded formats are stamped with
// the current version; a current-format document keeps its own version
// verbatim so normalization is idempotent.
func buildNormalized(canon map[string]any, format Format) *NormalizedConfig {
	cfg := &NormalizedConfig{X402Version: 2}
	if format == FormatCurrent {
		if n, ok := integerValue(canon["x402Version"]); ok {
			cfg.X402Version = int(n)
		} else {
			cfg.X402Version = 0
		}
	}

	if resource, ok := canon["resource"].(map[string]any); ok {
		cfg.Resource = &ResourceInfo{
			URL:         stringOf(resource["url"]),
			Description: stringOf(resource["description"]),
			MimeType:    stringOf(resource["mimeType"]),
		}
	}

	entries := entryList(canon)
	cfg.Entries = make([]PaymentRequirementEntry, len(entries))
	for i, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}

		entry := PaymentRequirementEntry{
			Scheme:  stringOf(m["scheme"]),
			Network: stringOf(m["network"]),
			Amount:  stringOf(m["amount"]),
			Asset:   stringOf(m["asset"]),
			PayTo:   stringOf(m["payTo"]),
		}
		if v, ok := m["maxTimeoutSeconds"]; ok {
			if n, isInt := integerValue(v); isInt {
				timeout := n
				entry.TimeoutSeconds = &timeout
			}
		}
		cfg.Entries[i] = entry
	}
	return cfg
}
