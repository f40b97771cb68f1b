package gf2m

import (
	"fmt"
	"math/big"
)

// Field is GF(2^m) represented as binary polynomials modulo an irreducible
// polynomial of degree m. A Field is immutable after construction.
type Field struct {
	degree  int
	modulus Polynomial
}

// NewField returns GF(2^m) with the modulus chosen by Irreducible.
func NewField(m int) (*Field, error) {
	modulus, err := Irreducible(m)
	if err != nil {
		return nil, fmt.Errorf("failed to get modulus: %w", err)
	}
	return &Field{degree: m, modulus: modulus}, nil
}

// NewFieldWithSupplier returns GF(2^m) with the modulus produced by supply.
// The supplied polynomial is checked for degree and irreducibility.
func NewFieldWithSupplier(m int, supply IrreducibleFunc) (*Field, error) {
	if m < 1 || m > MaxDegree {
		return nil, fmt.Errorf("degree %d not in 1..%d: %w", m, MaxDegree, ErrDegreeOutOfRange)
	}

	modulus, err := supply(m)
	if err != nil {
		return nil, fmt.Errorf("failed to get modulus: %w", err)
	}
	if modulus.Degree() != m {
		return nil, fmt.Errorf("supplier returned degree %d for degree %d: %w",
			modulus.Degree(), m, ErrDegreeOutOfRange)
	}

	return NewFieldFromModulus(modulus)
}

// NewFieldFromModulus returns the field generated by modulus, which must be
// irreducible with degree between 1 and MaxDegree.
func NewFieldFromModulus(modulus Polynomial) (*Field, error) {
	m := modulus.Degree()
	if modulus.Kind() != KindHigherDegree || m > MaxDegree {
		return nil, fmt.Errorf("modulus %s has degree %d, want 1..%d: %w",
			modulus, m, MaxDegree, ErrDegreeOutOfRange)
	}
	if !IsIrreducible(modulus) {
		return nil, fmt.Errorf("modulus %s: %w", modulus, ErrReducibleModulus)
	}
	return &Field{degree: m, modulus: modulus}, nil
}

// Degree returns m for GF(2^m).
func (f *Field) Degree() int {
	return f.degree
}

// Modulus returns the irreducible polynomial generating the field.
func (f *Field) Modulus() Polynomial {
	return f.modulus
}

// Order returns the number of elements, 2^m.
func (f *Field) Order() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(f.degree))
}

// Equal reports whether f and g share the same modulus.
func (f *Field) Equal(g *Field) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	return f.modulus.Equal(g.modulus)
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(2^%d) mod %s", f.degree, f.modulus)
}

// Element returns the element with the given coefficients, highest degree
// first, reduced modulo the field polynomial.
func (f *Field) Element(coeffs ...int) FieldElement {
	return f.FromPolynomial(New(coeffs...))
}

// FromPolynomial returns p reduced modulo the field polynomial.
func (f *Field) FromPolynomial(p Polynomial) FieldElement {
	return FieldElement{value: f.reduce(p), field: f}
}

// Zero returns the additive identity.
func (f *Field) Zero() FieldElement {
	return FieldElement{field: f}
}

// One returns the multiplicative identity.
func (f *Field) One() FieldElement {
	return FieldElement{value: One(), field: f}
}

func (f *Field) reduce(p Polynomial) Polynomial {
	if len(p.bits) <= f.degree {
		return p
	}
	// the modulus is never zero
	rem, _ := p.Mod(f.modulus)
	return rem
}
