package fingerprint

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Fingerprint is an immutable bit vector. The zero value is an empty fingerprint.
type Fingerprint struct {
	bits []bool
}

// New copies bits into a new Fingerprint; bits[0] is the most significant bit.
func New(bits []bool) Fingerprint {
	cp := make([]bool, len(bits))
	copy(cp, bits)
	return Fingerprint{bits: cp}
}

// FromUint64 builds an n-bit fingerprint from the low n bits of v, highest bit
// first. n is clamped to [0, 64].
func FromUint64(v uint64, n int) Fingerprint {
	if n < 0 {
		n = 0
	}
	if n > 64 {
		n = 64
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = v&(1<<uint(n-1-i)) != 0
	}
	return Fingerprint{bits: bits}
}

// Len returns the logical bit length.
func (f Fingerprint) Len() int {
	return len(f.bits)
}

// Bit reports the bit at index i.
func (f Fingerprint) Bit(i int) bool {
	return f.bits[i]
}

// Bits returns a copy of the bit sequence.
func (f Fingerprint) Bits() []bool {
	cp := make([]bool, len(f.bits))
	copy(cp, f.bits)
	return cp
}

// Ones counts set bits.
func (f Fingerprint) Ones() int {
	n := 0
	for _, b := range f.bits {
		if b {
			n++
		}
	}
	return n
}

// Bytes packs the bits MSB-first into ceil(Len/8) octets. A trailing partial
// group is padded on the right with zero bits.
func (f Fingerprint) Bytes() []byte {
	out := make([]byte, (len(f.bits)+7)/8)
	for i, bit := range f.bits {
		if bit {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}

// Hex returns the lowercase hex rendering of Bytes.
func (f Fingerprint) Hex() string {
	return hex.EncodeToString(f.Bytes())
}

func (f Fingerprint) String() string {
	return f.Hex()
}

// Equal reports whether both fingerprints have the same length and bits.
func (f Fingerprint) Equal(other Fingerprint) bool {
	if len(f.bits) != len(other.bits) {
		return false
	}
	for i := range f.bits {
		if f.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// ParseHex decodes a Hex rendering back into an n-bit fingerprint, discarding
// the padding bits of the final octet.
func ParseHex(s string, n int) (Fingerprint, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return Fingerprint{}, fmt.Errorf("parse fingerprint hex: %w", err)
	}
	if n < 0 || n > len(raw)*8 {
		return Fingerprint{}, fmt.Errorf("parse fingerprint hex: %d bits requested from %d bytes", n, len(raw))
	}
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = raw[i/8]&(0x80>>uint(i%8)) != 0
	}
	return Fingerprint{bits: bits}, nil
}
