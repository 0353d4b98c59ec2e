// Package eip55 renders 20-byte account addresses in the mixed-case
// checksum form defined by EIP-55.
package eip55

import (
	"encoding/hex"

	"github.com/rawgroundbeef/x402check/internal/keccak"
)

// Encode returns the 0x-prefixed checksum rendering of addr.
//
// The digest is computed over the 40 lowercase hex characters of the
// address as ASCII bytes, not over the raw address bytes and not over
// the 0x-prefixed string. Hex digit i is uppercased when it is a letter
// and digest nibble i (high nibble for even i, low for odd) is 8 or
// higher. Numeric digits pass through unchanged, so the encoding is
// idempotent.
func Encode(addr [20]byte) string {
	hexed := []byte(hex.EncodeToString(addr[:]))
	digest := keccak.Sum256(hexed)

	for i, c := range hexed {
		if c < 'a' || c > 'f' {
			continue
		}

		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 {
			hexed[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(hexed)
}
