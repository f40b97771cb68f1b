package gf2m

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Parse reads a polynomial in one of three forms:
//
//	"x^3 + x + 1"  sum of powers of x, in any order
//	"1011"         bit string, highest degree first
//	"0xb"          hex integer whose bit i is the coefficient of x^i
//
// Repeated terms in a sum cancel in pairs, as addition over GF(2) does.
func Parse(s string) (Polynomial, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Polynomial{}, fmt.Errorf("empty polynomial")
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return parseHex(lower[2:])
	case strings.ContainsRune(lower, 'x'):
		return parseTerms(lower)
	default:
		return parseBitString(lower)
	}
}

// MustParse is Parse for known-good constants; it panics on error.
func MustParse(s string) Polynomial {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("gf2m: MustParse(%q): %v", s, err))
	}
	return p
}

func parseBitString(s string) (Polynomial, error) {
	coeffs := make([]int, 0, len(s))
	for i, ch := range s {
		switch ch {
		case '0':
			coeffs = append(coeffs, 0)
		case '1':
			coeffs = append(coeffs, 1)
		case '_', ' ':
		default:
			return Polynomial{}, fmt.Errorf("invalid bit %q at position %d", ch, i)
		}
	}
	return New(coeffs...), nil
}

func parseHex(s string) (Polynomial, error) {
	s = strings.ReplaceAll(s, "_", "")
	n, ok := new(big.Int).SetString(s, 16)
	if !ok || n.Sign() < 0 {
		return Polynomial{}, fmt.Errorf("invalid hex polynomial %q", s)
	}
	return FromBigInt(n), nil
}

func parseTerms(s string) (Polynomial, error) {
	s = strings.ReplaceAll(s, " ", "")
	var result []byte
	for i, term := range strings.Split(s, "+") {
		exp, err := parseTerm(term)
		if err != nil {
			return Polynomial{}, fmt.Errorf("term %d: %w", i+1, err)
		}
		if exp < 0 {
			continue
		}
		if exp >= len(result) {
			result = append(result, make([]byte, exp+1-len(result))...)
		}
		result[exp] ^= 1
	}
	return Polynomial{bits: canonical(result)}, nil
}

// parseTerm returns the exponent of a single term, or -1 for "0".
func parseTerm(term string) (int, error) {
	switch term {
	case "":
		return 0, fmt.Errorf("empty term")
	case "0":
		return -1, nil
	case "1":
		return 0, nil
	case "x":
		return 1, nil
	}

	if !strings.HasPrefix(term, "x^") {
		return 0, fmt.Errorf("invalid term %q", term)
	}
	exp, err := strconv.Atoi(term[2:])
	if err != nil || exp < 0 {
		return 0, fmt.Errorf("invalid exponent in %q", term)
	}
	if exp > MaxParseDegree {
		return 0, fmt.Errorf("exponent %d exceeds %d", exp, MaxParseDegree)
	}
	return exp, nil
}

// MaxParseDegree bounds exponents accepted by Parse, leaving room for products
// of two MaxDegree polynomials.
const MaxParseDegree = 2 * MaxDegree

// FromBigInt builds the polynomial whose coefficient of x^i is bit i of n.
func FromBigInt(n *big.Int) Polynomial {
	abs := new(big.Int).Abs(n)
	bits := make([]byte, abs.BitLen())
	for i := range bits {
		bits[i] = byte(abs.Bit(i))
	}
	return Polynomial{bits: canonical(bits)}
}

// BigInt returns p as an integer with bit i holding the coefficient of x^i.
func (p Polynomial) BigInt() *big.Int {
	n := new(big.Int)
	for i, b := range p.bits {
		if b == 1 {
			n.SetBit(n, i, 1)
		}
	}
	return n
}

// Hex returns p in the integer form accepted by Parse, such as "0x11b".
func (p Polynomial) Hex() string {
	return "0x" + p.BigInt().Text(16)
}
