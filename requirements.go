package x402check

// requiredEntryFields lists the fields every payment option must carry
// and the shape a missing-field error should point at.
var requiredEntryFields = []struct {
	name    string
	example string
}{
	{"scheme", `a payment scheme identifier such as "exact"`},
	{"network", `a namespaced network identifier such as "eip155:8453"`},
	{"amount", `an atomic-unit decimal string such as "1000000"`},
	{"asset", `a token contract address or mint address`},
	{"payTo", `a recipient address on the entry's network`},
}

// checkRequirements verifies that one payment entry carries every
// required field and, when it sets a timeout, that the timeout is a
// positive integer. Field values are checked by the dedicated rules;
// this rule only reports absence and the timeout shape.
func checkRequirements(entry map[string]any, path string) []ValidationIssue {
	var issues []ValidationIssue

	for _, field := range requiredEntryFields {
		v, ok := entry[field.name]
		if !ok || isEmptyValue(v) {
			issues = append(issues, ValidationIssue{
				Code:     CodeMissingField,
				Field:    path + "." + field.name,
				Message:  field.name + " is required; expected " + field.example,
				Severity: SeverityError,
			})
		}
	}

	if v, ok := entry["maxTimeoutSeconds"]; ok && !isEmptyValue(v) {
		if n, isInt := integerValue(v); !isInt || n <= 0 {
			issues = append(issues, ValidationIssue{
				Code:     CodeInvalidTimeout,
				Field:    path + ".maxTimeoutSeconds",
				Message:  "maxTimeoutSeconds must be a positive integer number of seconds",
				Severity: SeverityError,
			})
		}
	}

	return issues
}
