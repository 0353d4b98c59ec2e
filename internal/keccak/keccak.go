// Package keccak implements the original (pre-NIST) Keccak-256 hash
// used for EVM address checksums.
//
// This is not SHA3-256. The finalized SHA-3 standard changed the sponge
// padding from Keccak's 0x01 to 0x06, so the two algorithms produce
// different digests for every input. Address checksums predate the
// standard and require the original padding.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// rate is the sponge block size in bytes for a 256-bit digest
// (1600-bit state minus twice the digest length).
const rate = 136

// roundConstants are the iota-step constants for the 24 rounds of
// Keccak-f[1600].
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotations holds the rho-step offsets for lane (x, y).
var rotations = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [32]byte {
	var state [25]uint64

	for len(data) >= rate {
		absorb(&state, data[:rate])
		data = data[rate:]
	}

	// Multi-rate padding: 0x01 after the message, MSB set on the final
	// byte of the block. Both land on the same byte when exactly one
	// byte of the block remains.
	var block [rate]byte
	copy(block[:], data)
	block[len(data)] = 0x01
	block[rate-1] |= 0x80
	absorb(&state, block[:])

	var digest [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(digest[8*i:], state[i])
	}
	return digest
}

// absorb XORs one rate-sized block into the state and permutes.
func absorb(state *[25]uint64, block []byte) {
	for i := 0; i < rate/8; i++ {
		state[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
	permute(state)
}

// permute applies the 24-round Keccak-f[1600] permutation. Lane (x, y)
// lives at index x+5y.
func permute(a *[25]uint64) {
	var b [25]uint64
	var c, d [5]uint64

	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho and pi combined: rotate lane (x, y) and move it to (y, 2x+3y)
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], rotations[x][y])
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
