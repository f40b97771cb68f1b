package gf2m

import (
	"fmt"
	"math/big"
)

// FieldElement is a member of a Field. Every value it holds has degree below
// the field degree.
type FieldElement struct {
	value Polynomial
	field *Field
}

// NewFieldElement builds an element of GF(2^m), where m is len(coeffs) - 1,
// from coefficients written highest degree first. The field modulus comes
// from Irreducible and the value is reduced by it.
func NewFieldElement(coeffs ...int) (FieldElement, error) {
	f, err := NewField(len(coeffs) - 1)
	if err != nil {
		return FieldElement{}, err
	}
	return f.Element(coeffs...), nil
}

// Field returns the field e belongs to.
func (e FieldElement) Field() *Field {
	return e.field
}

// Polynomial returns the reduced polynomial representing e.
func (e FieldElement) Polynomial() Polynomial {
	return e.value
}

// Degree returns the degree of the underlying polynomial.
func (e FieldElement) Degree() int {
	return e.value.Degree()
}

// IsZero reports whether e is the additive identity.
func (e FieldElement) IsZero() bool {
	return e.value.IsZero()
}

// Equal reports whether e and o are the same element of the same field.
func (e FieldElement) Equal(o FieldElement) bool {
	return e.field.Equal(o.field) && e.value.Equal(o.value)
}

// Render delegates to the underlying polynomial.
func (e FieldElement) Render(binary bool) string {
	return e.value.Render(binary)
}

func (e FieldElement) String() string {
	return e.value.String()
}

func (e FieldElement) check(o FieldElement) error {
	if !e.field.Equal(o.field) {
		return fmt.Errorf("%v and %v: %w", e.field, o.field, ErrFieldMismatch)
	}
	return nil
}

func (e FieldElement) with(p Polynomial) FieldElement {
	return e.field.FromPolynomial(p)
}

// Add returns e + o.
func (e FieldElement) Add(o FieldElement) (FieldElement, error) {
	if err := e.check(o); err != nil {
		return FieldElement{}, err
	}
	return e.with(e.value.Add(o.value)), nil
}

// Sub returns e - o, equal to e + o in characteristic 2.
func (e FieldElement) Sub(o FieldElement) (FieldElement, error) {
	return e.Add(o)
}

// Mul returns e * o reduced modulo the field polynomial.
func (e FieldElement) Mul(o FieldElement) (FieldElement, error) {
	if err := e.check(o); err != nil {
		return FieldElement{}, err
	}
	return e.with(e.value.Mul(o.value)), nil
}

// Square returns e * e.
func (e FieldElement) Square() FieldElement {
	return e.with(e.value.Square())
}

// Mod returns the remainder of e's polynomial divided by o's polynomial,
// reduced modulo the field polynomial.
func (e FieldElement) Mod(o FieldElement) (FieldElement, error) {
	if err := e.check(o); err != nil {
		return FieldElement{}, err
	}
	rem, err := e.value.Mod(o.value)
	if err != nil {
		return FieldElement{}, err
	}
	return e.with(rem), nil
}

// FloorDiv returns the polynomial quotient of e by o, reduced modulo the
// field polynomial. It is polynomial division, not field division; see Divide.
func (e FieldElement) FloorDiv(o FieldElement) (FieldElement, error) {
	if err := e.check(o); err != nil {
		return FieldElement{}, err
	}
	quo, err := e.value.FloorDiv(o.value)
	if err != nil {
		return FieldElement{}, err
	}
	return e.with(quo), nil
}

// MultiplicativeInverse returns the inverse of e's polynomial modulo the field
// polynomial, as a bare Polynomial.
func (e FieldElement) MultiplicativeInverse() (Polynomial, error) {
	return e.value.MultiplicativeInverse(e.field.modulus)
}

// MultiplicativeInverseMod returns the inverse of e's polynomial modulo an
// arbitrary modulus.
func (e FieldElement) MultiplicativeInverseMod(modulus Polynomial) (Polynomial, error) {
	return e.value.MultiplicativeInverse(modulus)
}

// Inverse returns the field element e^-1.
func (e FieldElement) Inverse() (FieldElement, error) {
	inv, err := e.MultiplicativeInverse()
	if err != nil {
		return FieldElement{}, err
	}
	return e.with(inv), nil
}

// Divide returns e * o^-1.
func (e FieldElement) Divide(o FieldElement) (FieldElement, error) {
	if err := e.check(o); err != nil {
		return FieldElement{}, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return FieldElement{}, err
	}
	return e.Mul(inv)
}

// Pow returns e^n by square-and-multiply. A negative n raises the inverse.
func (e FieldElement) Pow(n *big.Int) (FieldElement, error) {
	base := e
	if n.Sign() < 0 {
		inv, err := e.Inverse()
		if err != nil {
			return FieldElement{}, err
		}
		base = inv
	}

	exp := new(big.Int).Abs(n)
	result := e.field.One()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if exp.Bit(i) == 1 {
			result = result.with(result.value.Mul(base.value))
		}
	}
	return result, nil
}
