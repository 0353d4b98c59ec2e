package base58

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	mrtron "github.com/mr-tron/base58"
)

func TestDecodeKnownVectors(t *testing.T) {
	tests := []struct {
		input string
		hex   string
	}{
		{"", ""},
		{"2g", "61"},
		{"a3gV", "626262"},
		{"aPEr", "636363"},
		{"2cFupjhnEsSn59qHXstmK2ffpLv2", "73696d706c792061206c6f6e6720737472696e67"},
		{"1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L", "00eb15231dfceb60925886b67d065299925915aeb172c06647"},
		{"ABnLTmg", "516b6fcd0f"},
		{"3SEo3LWLoPntC", "bf4f89001e670274dd"},
		{"3EFU7m", "572e4794"},
		{"EJDM8drfXA6uyA", "ecac89cad93923c02321"},
		{"Rt5zm", "10c8511e"},
		{"1111111111", "00000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			want, err := hex.DecodeString(tt.hex)
			if err != nil {
				t.Fatalf("bad test vector %q: %v", tt.hex, err)
			}

			got, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.input, err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Decode(%q) = %x, want %x", tt.input, got, tt.hex)
			}
		})
	}
}

// TestDecodeLeadingOnes pins the property the base conversion alone
// loses: N leading '1' characters decode to exactly N leading zero
// bytes.
func TestDecodeLeadingOnes(t *testing.T) {
	for _, n := range []int{1, 2, 5, 32, 44} {
		input := strings.Repeat("1", n)

		got, err := Decode(input)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", input, err)
		}
		if len(got) != n {
			t.Errorf("Decode(%d ones) returned %d bytes, want %d", n, len(got), n)
		}
		for i, b := range got {
			if b != 0 {
				t.Errorf("Decode(%d ones)[%d] = %#x, want 0", n, i, b)
			}
		}
	}

	// Mixed case: zero bytes followed by a value.
	got, err := Decode("11a3gV")
	if err != nil {
		t.Fatalf("Decode(11a3gV) error: %v", err)
	}
	want := []byte{0x00, 0x00, 0x62, 0x62, 0x62}
	if !bytes.Equal(got, want) {
		t.Errorf("Decode(11a3gV) = %x, want %x", got, want)
	}
}

func TestDecodeInvalidCharacters(t *testing.T) {
	inputs := []string{"0", "O", "I", "l", "x4O2", "abc!", "EPjF Wdd", "caf\xc3\xa9"}

	for _, input := range inputs {
		if _, err := Decode(input); !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidCharacter", input, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		{0x00, 0x00, 0x00},
		{0x01},
		{0xff},
		{0x00, 0x00, 0x01, 0x02, 0x03},
		{0x45, 0x50, 0x6a, 0x46, 0x57, 0x64, 0x64},
		bytes.Repeat([]byte{0x00}, 32),
		bytes.Repeat([]byte{0xff}, 32),
	}

	for _, input := range inputs {
		encoded := Encode(input)

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(%x)) error: %v", input, err)
		}
		if !bytes.Equal(decoded, input) {
			t.Errorf("round trip of %x through %q = %x", input, encoded, decoded)
		}

		// Leading zero bytes must survive as leading '1's.
		zeros := 0
		for zeros < len(input) && input[zeros] == 0 {
			zeros++
		}
		if prefix := strings.Repeat("1", zeros); !strings.HasPrefix(encoded, prefix) {
			t.Errorf("Encode(%x) = %q, want %d leading '1's", input, encoded, zeros)
		}
	}
}

// TestAgainstReferenceImplementation cross-checks both directions
// against mr-tron/base58.
func TestAgainstReferenceImplementation(t *testing.T) {
	strs := []string{
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
		"5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp",
		"1111111111",
		"2g",
	}
	for _, s := range strs {
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", s, err)
		}
		want, err := mrtron.Decode(s)
		if err != nil {
			t.Fatalf("reference Decode(%q) error: %v", s, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Decode(%q) = %x, reference = %x", s, got, want)
		}
	}

	raws := [][]byte{
		{0x00, 0x01, 0x02},
		bytes.Repeat([]byte{0x7f}, 20),
		append(make([]byte, 3), 0xde, 0xad, 0xbe, 0xef),
	}
	for _, raw := range raws {
		if got, want := Encode(raw), mrtron.Encode(raw); got != want {
			t.Errorf("Encode(%x) = %q, reference = %q", raw, got, want)
		}
	}
}

// TestSolanaPublicKeyBytes confirms decoded mint addresses match the
// Solana SDK's parsing byte for byte.
func TestSolanaPublicKeyBytes(t *testing.T) {
	mints := []string{
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
	}

	for _, mint := range mints {
		decoded, err := Decode(mint)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", mint, err)
		}
		if len(decoded) != 32 {
			t.Fatalf("Decode(%q) returned %d bytes, want 32", mint, len(decoded))
		}

		pk, err := solana.PublicKeyFromBase58(mint)
		if err != nil {
			t.Fatalf("PublicKeyFromBase58(%q) error: %v", mint, err)
		}
		if !bytes.Equal(decoded, pk.Bytes()) {
			t.Errorf("Decode(%q) = %x, SDK = %x", mint, decoded, pk.Bytes())
		}
	}
}
