// Package gf2m implements arithmetic over binary polynomials and the finite
// fields GF(2^m) they generate.
//
// A Polynomial is an immutable value: every operation returns a new
// Polynomial and never modifies its receiver or arguments, so values can be
// shared freely between goroutines.
package gf2m

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a polynomial for loop termination in division and inversion,
// where Degree alone cannot tell the zero polynomial from the constant 1.
type Kind int

const (
	KindZero Kind = iota
	KindNonzeroConstant
	KindHigherDegree
)

func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindNonzeroConstant:
		return "constant"
	case KindHigherDegree:
		return "higher-degree"
	default:
		return fmt.Sprintf("unknown kind: %d", int(k))
	}
}

// Polynomial is a polynomial with coefficients in GF(2).
// The zero value is the zero polynomial.
type Polynomial struct {
	// coefficient of x^i at index i, no trailing zeros except for the zero polynomial
	bits []byte
}

var zeroBits = []byte{0}

// New builds a polynomial from coefficients written highest degree first,
// so New(1, 0, 1) is x^2 + 1. Coefficients are taken mod 2.
func New(coeffs ...int) Polynomial {
	bits := make([]byte, len(coeffs))
	for i, c := range coeffs {
		bits[len(coeffs)-1-i] = byte(c & 1)
	}
	return Polynomial{bits: canonical(bits)}
}

// NewWithOrder is New with an explicit field characteristic, which must be 2.
func NewWithOrder(coeffs []int, p int) (Polynomial, error) {
	if p != 2 {
		return Polynomial{}, fmt.Errorf("characteristic %d: %w", p, ErrInvalidFieldOrder)
	}
	return New(coeffs...), nil
}

// FromBits builds a polynomial from coefficients in ascending order, where
// bits[i] is the coefficient of x^i. The slice is copied.
func FromBits(bits []byte) Polynomial {
	out := make([]byte, len(bits))
	for i, b := range bits {
		out[i] = b & 1
	}
	return Polynomial{bits: canonical(out)}
}

// Monomial returns x^k.
func Monomial(k int) Polynomial {
	if k < 0 {
		return Polynomial{}
	}
	bits := make([]byte, k+1)
	bits[k] = 1
	return Polynomial{bits: bits}
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// One returns the constant polynomial 1.
func One() Polynomial {
	return Polynomial{bits: []byte{1}}
}

// canonical strips high-order zeros in place and collapses the empty result to nil.
func canonical(bits []byte) []byte {
	n := len(bits)
	for n > 0 && bits[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return bits[:n]
}

func (p Polynomial) coefficients() []byte {
	if len(p.bits) == 0 {
		return zeroBits
	}
	return p.bits
}

// Degree returns the degree of p. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	return len(p.coefficients()) - 1
}

// Kind reports whether p is zero, a nonzero constant, or of higher degree.
func (p Polynomial) Kind() Kind {
	switch {
	case len(p.bits) == 0:
		return KindZero
	case len(p.bits) == 1:
		return KindNonzeroConstant
	default:
		return KindHigherDegree
	}
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.bits) == 0
}

// IsOne reports whether p is the constant 1.
func (p Polynomial) IsOne() bool {
	return len(p.bits) == 1
}

// Coefficient returns the coefficient of x^i.
func (p Polynomial) Coefficient(i int) byte {
	if i < 0 || i >= len(p.bits) {
		return 0
	}
	return p.bits[i]
}

// Coefficients returns the coefficients highest degree first, the inverse of New.
func (p Polynomial) Coefficients() []int {
	bits := p.coefficients()
	out := make([]int, len(bits))
	for i, b := range bits {
		out[len(bits)-1-i] = int(b)
	}
	return out
}

// Bits returns a copy of the coefficients in ascending order.
func (p Polynomial) Bits() []byte {
	return append([]byte(nil), p.coefficients()...)
}

// Equal reports whether p and q are the same polynomial.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.bits) != len(q.bits) {
		return false
	}
	for i := range p.bits {
		if p.bits[i] != q.bits[i] {
			return false
		}
	}
	return true
}

// Add returns p + q, the coefficient-wise XOR.
func (p Polynomial) Add(q Polynomial) Polynomial {
	long, short := p.bits, q.bits
	if len(short) > len(long) {
		long, short = short, long
	}
	out := make([]byte, len(long))
	copy(out, long)
	xorShifted(out, short, 0)
	return Polynomial{bits: canonical(out)}
}

// Sub returns p - q, which over GF(2) is the same as p + q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q)
}

// Mul returns p * q using shift-and-XOR: for every set bit i of p, q shifted
// up by i is accumulated into the product.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	out := make([]byte, len(p.bits)+len(q.bits)-1)
	for i, b := range p.bits {
		if b == 1 {
			xorShifted(out, q.bits, i)
		}
	}
	return Polynomial{bits: canonical(out)}
}

// Square returns p * p. Over GF(2) squaring spreads the coefficients apart.
func (p Polynomial) Square() Polynomial {
	if p.IsZero() {
		return Polynomial{}
	}
	out := make([]byte, 2*len(p.bits)-1)
	for i, b := range p.bits {
		out[2*i] = b
	}
	return Polynomial{bits: out}
}

// Shift returns p * x^n.
func (p Polynomial) Shift(n int) Polynomial {
	if p.IsZero() || n <= 0 {
		return p
	}
	out := make([]byte, len(p.bits)+n)
	copy(out[n:], p.bits)
	return Polynomial{bits: out}
}

// DivMod returns the quotient and remainder of p divided by q.
func (p Polynomial) DivMod(q Polynomial) (quo, rem Polynomial, err error) {
	if q.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZeroPolynomial
	}

	dq := q.Degree()
	top := len(p.bits) - 1
	if top < dq {
		return Polynomial{}, p, nil
	}

	r := make([]byte, len(p.bits))
	copy(r, p.bits)
	qb := make([]byte, top-dq+1)

	for top >= dq {
		diff := top - dq
		qb[diff] = 1
		xorShifted(r, q.bits, diff)
		top = highestSet(r, top-1)
	}

	return Polynomial{bits: canonical(qb)}, Polynomial{bits: canonical(r)}, nil
}

// Mod returns the remainder of p divided by q.
func (p Polynomial) Mod(q Polynomial) (Polynomial, error) {
	_, rem, err := p.DivMod(q)
	return rem, err
}

// FloorDiv returns the quotient of p divided by q.
func (p Polynomial) FloorDiv(q Polynomial) (Polynomial, error) {
	quo, _, err := p.DivMod(q)
	return quo, err
}

// MultiplicativeInverse returns the polynomial v with p*v = 1 mod modulus,
// computed with the extended Euclidean algorithm.
func (p Polynomial) MultiplicativeInverse(modulus Polynomial) (Polynomial, error) {
	a, err := p.Mod(modulus)
	if err != nil {
		return Polynomial{}, fmt.Errorf("inverse modulo zero: %w", err)
	}

	switch a.Kind() {
	case KindZero:
		return Polynomial{}, fmt.Errorf("%s mod %s is zero: %w", p, modulus, ErrNotInvertible)
	case KindNonzeroConstant:
		return One(), nil
	}

	// r = u*p and s = v*p modulo the modulus throughout
	r, s := modulus, a
	u, v := Zero(), One()
	for s.Kind() == KindHigherDegree {
		quo, rem, _ := r.DivMod(s)
		r, s = s, rem
		u, v = v, u.Add(quo.Mul(v))
	}

	if s.IsZero() {
		return Polynomial{}, fmt.Errorf("gcd(%s, %s) = %s: %w", p, modulus, r, ErrNotInvertible)
	}

	return v.Mod(modulus)
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b Polynomial) Polynomial {
	for !b.IsZero() {
		rem, _ := a.Mod(b)
		a, b = b, rem
	}
	return a
}

// Render returns p as text. With binary set it is the coefficient bit string
// in ascending order; otherwise a sum of powers of x such as "1 + x + x^3".
func (p Polynomial) Render(binary bool) string {
	bits := p.coefficients()
	if binary {
		var sb strings.Builder
		sb.Grow(len(bits))
		for _, b := range bits {
			sb.WriteByte('0' + b)
		}
		return sb.String()
	}

	if p.IsZero() {
		return "0"
	}

	terms := make([]string, 0, len(bits))
	for i, b := range bits {
		if b == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}

func (p Polynomial) String() string {
	return p.Render(false)
}

// xorShifted adds src * x^shift into dst, which must be long enough.
func xorShifted(dst, src []byte, shift int) {
	for i, b := range src {
		dst[i+shift] ^= b
	}
}

// highestSet returns the index of the highest nonzero entry at or below from, or -1.
func highestSet(bits []byte, from int) int {
	for i := from; i >= 0; i-- {
		if bits[i] != 0 {
			return i
		}
	}
	return -1
}
