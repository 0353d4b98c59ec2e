package x402check

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// checkAmount validates an entry's amount: a positive decimal with no
// exponential notation, warned when written more precisely than the
// asset's decimals. networkID is the entry's canonical network, used
// for the asset lookup; it is empty when the network itself failed
// validation, which skips only the precision check.
func checkAmount(entry map[string]any, path, networkID string, reg *Registry) []ValidationIssue {
	raw, ok := entry["amount"]
	if !ok || isEmptyValue(raw) {
		// Absence is reported by the requirements rule.
		return nil
	}

	field := path + ".amount"
	s, isScalar := stringValue(raw)
	if !isScalar {
		return []ValidationIssue{{
			Code:     CodeInvalidAmount,
			Field:    field,
			Message:  "amount must be a decimal string or number",
			Fix:      `"1000000"`,
			Severity: SeverityError,
		}}
	}

	if strings.ContainsAny(s, "eE") {
		return []ValidationIssue{{
			Code:     CodeInvalidAmount,
			Field:    field,
			Message:  fmt.Sprintf("amount %q uses exponential notation; write the digits out", s),
			Fix:      `"1000000"`,
			Severity: SeverityError,
		}}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return []ValidationIssue{{
			Code:     CodeInvalidAmount,
			Field:    field,
			Message:  fmt.Sprintf("amount %q is not a decimal number", s),
			Fix:      `"1000000"`,
			Severity: SeverityError,
		}}
	}
	if d.Sign() <= 0 {
		return []ValidationIssue{{
			Code:     CodeInvalidAmount,
			Field:    field,
			Message:  fmt.Sprintf("amount must be greater than zero, got %s", s),
			Fix:      `"1000000"`,
			Severity: SeverityError,
		}}
	}

	if asset, known := entryAsset(entry, networkID, reg); known && d.Exponent() < 0 {
		if frac := int(-d.Exponent()); frac > asset.Decimals {
			return []ValidationIssue{{
				Code:     CodeExcessPrecision,
				Field:    field,
				Message:  fmt.Sprintf("amount carries %d fractional digits but %s has %d decimals", frac, asset.Symbol, asset.Decimals),
				Severity: SeverityWarning,
			}}
		}
	}

	return nil
}

// entryAsset resolves the entry's asset address against the registry's
// known tokens for the network.
func entryAsset(entry map[string]any, networkID string, reg *Registry) (AssetInfo, bool) {
	if networkID == "" {
		return AssetInfo{}, false
	}
	address, ok := stringValue(entry["asset"])
	if !ok || address == "" {
		return AssetInfo{}, false
	}
	return reg.Asset(networkID, address)
}
