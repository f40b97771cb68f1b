package gf2m

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// DeriveElement expands seed with the BLAKE2b XOF into a deterministic
// element of f. The same seed always yields the same element.
func DeriveElement(f *Field, seed []byte) (FieldElement, error) {
	xof, err := blake2b.NewXOF(uint32(byteLen(f.degree)), nil)
	if err != nil {
		return FieldElement{}, fmt.Errorf("failed to create XOF: %w", err)
	}
	if _, err := xof.Write(seed); err != nil {
		return FieldElement{}, fmt.Errorf("failed to absorb seed: %w", err)
	}
	return RandomElement(f, xof)
}

// RandomElement reads an element of f from r. A nil reader uses crypto/rand.
func RandomElement(f *Field, r io.Reader) (FieldElement, error) {
	if r == nil {
		r = rand.Reader
	}

	buf := make([]byte, byteLen(f.degree))
	if _, err := io.ReadFull(r, buf); err != nil {
		return FieldElement{}, fmt.Errorf("failed to read random bytes: %w", err)
	}

	// bit i of the little-endian stream is the coefficient of x^i
	bits := make([]byte, f.degree)
	for i := range bits {
		bits[i] = (buf[i/8] >> (i % 8)) & 1
	}
	return f.FromPolynomial(FromBits(bits)), nil
}

func byteLen(bits int) int {
	return (bits + 7) / 8
}
