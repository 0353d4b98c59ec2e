package x402check

import (
	"fmt"
	"strings"
)

// checkNetwork validates an entry's network identifier and reports the
// address family the entry's addresses should be checked against. The
// returned string is the canonical network id, empty when the value
// was unusable.
//
// Legacy aliases resolve before the syntax check: names like "base"
// carry no namespace and would otherwise be rejected outright.
func checkNetwork(entry map[string]any, path string, reg *Registry) (AddressFamily, string, []ValidationIssue) {
	raw, ok := entry["network"]
	if !ok || isEmptyValue(raw) {
		// Absence is reported by the requirements rule.
		return FamilyUnknown, "", nil
	}

	field := path + ".network"
	s, ok := raw.(string)
	if !ok {
		return FamilyUnknown, "", []ValidationIssue{{
			Code:     CodeInvalidNetwork,
			Field:    field,
			Message:  "network must be a string",
			Fix:      `"eip155:8453"`,
			Severity: SeverityError,
		}}
	}

	var issues []ValidationIssue
	if canonical, found := reg.ResolveAlias(s); found {
		issues = append(issues, ValidationIssue{
			Code:     CodeNetworkAlias,
			Field:    field,
			Message:  fmt.Sprintf("network %q is a legacy name, use its chain id", s),
			Fix:      fmt.Sprintf("%q", canonical),
			Severity: SeverityWarning,
		})
		s = canonical
	}

	if !validNetworkID(s) {
		issues = append(issues, ValidationIssue{
			Code:     CodeInvalidNetwork,
			Field:    field,
			Message:  fmt.Sprintf("network %q is not a namespace:reference chain id", s),
			Fix:      `"eip155:8453"`,
			Severity: SeverityError,
		})
		return FamilyUnknown, "", issues
	}

	if info, found := reg.Network(s); found {
		return info.Family, s, issues
	}

	namespace := s[:strings.IndexByte(s, ':')]
	if family, found := reg.NamespaceFamily(namespace); found {
		issues = append(issues, ValidationIssue{
			Code:     CodeUnregisteredNetwork,
			Field:    field,
			Message:  fmt.Sprintf("network %q is not in the registry, addresses are checked by their %s namespace rules", s, namespace),
			Severity: SeverityWarning,
		})
		return family, s, issues
	}

	issues = append(issues, ValidationIssue{
		Code:     CodeInvalidNetwork,
		Field:    field,
		Message:  fmt.Sprintf("unknown network namespace %q", namespace),
		Fix:      `"eip155:8453"`,
		Severity: SeverityError,
	})
	return FamilyUnknown, "", issues
}
