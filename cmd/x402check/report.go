package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rawgroundbeef/x402check"
)

func renderJSON(w io.Writer, result x402check.ValidationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderText(w io.Writer, result x402check.ValidationResult, quiet bool) {
	for _, issue := range result.Errors {
		fmt.Fprintf(w, "%s %s\n", aurora.Red("error:"), formatIssue(issue))
	}
	if !quiet {
		for _, issue := range result.Warnings {
			fmt.Fprintf(w, "%s %s\n", aurora.Yellow("warning:"), formatIssue(issue))
		}
	}

	if result.Valid {
		fmt.Fprintln(w, aurora.Green(fmt.Sprintf("✓ %s document is valid", result.Format)))
		return
	}
	fmt.Fprintln(w, aurora.Red(fmt.Sprintf("✗ %s document is invalid: %d error(s), %d warning(s)",
		result.Format, len(result.Errors), len(result.Warnings))))
}

func formatIssue(issue x402check.ValidationIssue) string {
	var b strings.Builder
	if issue.Field != "" {
		b.WriteString(issue.Field)
		b.WriteString(": ")
	}
	b.WriteString(issue.Message)
	if issue.Fix != "" {
		fmt.Fprintf(&b, " (fix: %s)", issue.Fix)
	}
	fmt.Fprintf(&b, " [%s]", issue.Code)
	return b.String()
}
