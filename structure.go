package x402check

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// recognizedVersions are the protocol versions the validator knows how
// to check.
var recognizedVersions = map[int64]bool{1: true, 2: true}

// checkStructure validates the document-level shape of a canonical
// configuration: protocol version, the accepts list, and the optional
// resource descriptor. Per-entry problems are left to the entry rules.
func checkStructure(canon map[string]any, format Format) []ValidationIssue {
	var issues []ValidationIssue

	issues = append(issues, checkVersion(canon, format)...)
	issues = append(issues, checkEntriesField(canon)...)
	issues = append(issues, checkResource(canon)...)
	return issues
}

func checkVersion(canon map[string]any, format Format) []ValidationIssue {
	raw, ok := canon["x402Version"]
	if !ok {
		// The flat-legacy shape never carried a version; its upgrade
		// warning already says so.
		if format == FormatPrevious {
			return []ValidationIssue{{
				Code:     CodeMissingVersion,
				Field:    "x402Version",
				Message:  "document does not declare x402Version",
				Fix:      `"x402Version": 1`,
				Severity: SeverityWarning,
			}}
		}
		return nil
	}

	if n, isInt := integerValue(raw); isInt && recognizedVersions[n] {
		return nil
	}
	return []ValidationIssue{{
		Code:     CodeUnsupportedVersion,
		Field:    "x402Version",
		Message:  fmt.Sprintf("x402Version %s is not recognized (known versions: 1, 2)", versionLabel(raw)),
		Severity: SeverityError,
	}}
}

// versionLabel renders the offending version value for the error
// message, quoting strings so a type mistake is visible.
func versionLabel(raw any) string {
	switch v := raw.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	default:
		if s := stringOf(raw); s != "" {
			return s
		}
		return fmt.Sprintf("%v", raw)
	}
}

func checkEntriesField(canon map[string]any) []ValidationIssue {
	raw, ok := canon["accepts"]
	if !ok {
		return []ValidationIssue{{
			Code:     CodeMissingEntries,
			Field:    "accepts",
			Message:  "document has no accepts list of payment options",
			Severity: SeverityError,
		}}
	}

	list, isList := raw.([]any)
	if !isList {
		return []ValidationIssue{{
			Code:     CodeMissingEntries,
			Field:    "accepts",
			Message:  "accepts must be an array of payment options",
			Severity: SeverityError,
		}}
	}
	if len(list) == 0 {
		return []ValidationIssue{{
			Code:     CodeEmptyEntries,
			Field:    "accepts",
			Message:  "accepts is empty; at least one payment option is required",
			Severity: SeverityError,
		}}
	}
	return nil
}

func checkResource(canon map[string]any) []ValidationIssue {
	raw, ok := canon["resource"]
	if !ok || raw == nil {
		// A null resource marks the key as deliberately absent in
		// canonical output; nothing to check either way.
		return nil
	}

	m, isMap := raw.(map[string]any)
	if !isMap {
		return []ValidationIssue{{
			Code:     CodeInvalidResource,
			Field:    "resource",
			Message:  "resource must be an object with a url field",
			Severity: SeverityWarning,
		}}
	}

	info := ResourceInfo{
		URL:         stringOf(m["url"]),
		Description: stringOf(m["description"]),
		MimeType:    stringOf(m["mimeType"]),
	}
	if err := validate.Struct(&info); err != nil {
		return []ValidationIssue{{
			Code:     CodeInvalidResource,
			Field:    "resource.url",
			Message:  fmt.Sprintf("resource.url %q is not a valid URL", info.URL),
			Severity: SeverityWarning,
		}}
	}
	return nil
}
