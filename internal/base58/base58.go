// Package base58 implements the Bitcoin-alphabet base58 encoding used
// for Solana account addresses and mint addresses.
package base58

import (
	"errors"
	"fmt"
)

// alphabet is the 58-character set. 0, O, I and l are excluded to avoid
// transcription ambiguity.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrInvalidCharacter indicates a character outside the base58 alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = int8(i)
	}
	return table
}

// Decode converts a base58 string into the bytes it encodes.
//
// Each leading '1' in the input stands for exactly one leading zero
// byte in the output. The base conversion alone cannot represent them
// (zero times any power of 58 is zero), so they are counted up front
// and prepended after the conversion.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	// 733/1000 rounds log(58)/log(256) up, so the buffer always holds
	// the converted value.
	buf := make([]byte, len(s)*733/1000+1)
	for i := 0; i < len(s); i++ {
		digit := decodeTable[s[i]]
		if digit < 0 {
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidCharacter, s[i], i)
		}

		carry := int(digit)
		for j := len(buf) - 1; j >= 0; j-- {
			carry += 58 * int(buf[j])
			buf[j] = byte(carry & 0xff)
			carry >>= 8
		}
	}

	// Drop the buffer's own zero padding, then restore one zero byte
	// per counted leading '1'.
	pad := 0
	for pad < len(buf) && buf[pad] == 0 {
		pad++
	}

	out := make([]byte, zeros+len(buf)-pad)
	copy(out[zeros:], buf[pad:])
	return out, nil
}

// Encode converts bytes into their base58 representation. Each leading
// zero byte becomes a leading '1'.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// 137/100 rounds log(256)/log(58) up.
	buf := make([]byte, len(b)*137/100+1)
	for _, c := range b[zeros:] {
		carry := int(c)
		for j := len(buf) - 1; j >= 0; j-- {
			carry += 256 * int(buf[j])
			buf[j] = byte(carry % 58)
			carry /= 58
		}
	}

	pad := 0
	for pad < len(buf) && buf[pad] == 0 {
		pad++
	}

	out := make([]byte, 0, zeros+len(buf)-pad)
	for i := 0; i < zeros; i++ {
		out = append(out, '1')
	}
	for ; pad < len(buf); pad++ {
		out = append(out, alphabet[buf[pad]])
	}
	return string(out)
}
