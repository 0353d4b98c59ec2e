package x402check

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/rawgroundbeef/x402check/internal/base58"
	"github.com/rawgroundbeef/x402check/internal/eip55"
)

var hexAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// addressFields are the entry fields that hold on-chain addresses.
var addressFields = []string{"payTo", "asset"}

// checkAddresses validates the entry's payTo and asset against the
// address family of its network. An unknown family skips the rule,
// there is no format to check against.
func checkAddresses(entry map[string]any, path string, family AddressFamily) []ValidationIssue {
	if family == FamilyUnknown {
		return nil
	}

	var issues []ValidationIssue
	for _, name := range addressFields {
		raw, ok := entry[name]
		if !ok || isEmptyValue(raw) {
			continue
		}
		field := path + "." + name
		s, ok := raw.(string)
		if !ok {
			issues = append(issues, ValidationIssue{
				Code:     CodeInvalidAddress,
				Field:    field,
				Message:  name + " must be a string",
				Severity: SeverityError,
			})
			continue
		}
		switch family {
		case FamilyChecksummedHex:
			issues = append(issues, checkHexAddress(s, field)...)
		case FamilyRawBase58:
			issues = append(issues, checkBase58Address(s, field)...)
		}
	}
	return issues
}

// checkHexAddress validates an EVM address and verifies its EIP-55
// checksum. A ":label" suffix is stripped first, some gateways tag
// payout addresses that way.
func checkHexAddress(value, field string) []ValidationIssue {
	addr := value
	if head, _, found := strings.Cut(addr, ":"); found {
		addr = head
	}

	if !hexAddressPattern.MatchString(addr) {
		return []ValidationIssue{{
			Code:     CodeInvalidAddress,
			Field:    field,
			Message:  fmt.Sprintf("expected 0x-prefixed hex address (42 chars), got %q", value),
			Severity: SeverityError,
		}}
	}

	var b [20]byte
	hex.Decode(b[:], []byte(addr[2:]))
	checksummed := eip55.Encode(b)
	if addr == checksummed {
		return nil
	}

	digits := addr[2:]
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return []ValidationIssue{{
			Code:     CodeUnverifiedChecksum,
			Field:    field,
			Message:  "address has no mixed-case checksum to verify",
			Fix:      fmt.Sprintf("%q", checksummed),
			Severity: SeverityWarning,
		}}
	}

	return []ValidationIssue{{
		Code:     CodeChecksumMismatch,
		Field:    field,
		Message:  "address fails its EIP-55 checksum",
		Fix:      fmt.Sprintf("%q", checksummed),
		Severity: SeverityError,
	}}
}

// checkBase58Address validates a Solana-style address: base58 text
// decoding to a 32-byte public key. The encoding carries no checksum,
// so a valid value still warns.
func checkBase58Address(value, field string) []ValidationIssue {
	decoded, err := base58.Decode(value)
	if err != nil {
		return []ValidationIssue{{
			Code:     CodeInvalidAddress,
			Field:    field,
			Message:  fmt.Sprintf("not a base58 string: %v", err),
			Severity: SeverityError,
		}}
	}
	if len(decoded) != 32 {
		return []ValidationIssue{{
			Code:     CodeInvalidAddress,
			Field:    field,
			Message:  fmt.Sprintf("decodes to %d bytes, expected a 32-byte public key", len(decoded)),
			Severity: SeverityError,
		}}
	}
	return []ValidationIssue{{
		Code:     CodeNoChecksum,
		Field:    field,
		Message:  "base58 addresses have no checksum to verify",
		Severity: SeverityWarning,
	}}
}
