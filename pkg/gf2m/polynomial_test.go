package gf2m

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPoly generates random polynomials of degree below 64 for quick.Check.
type testPoly struct {
	Polynomial
}

func (testPoly) Generate(r *rand.Rand, size int) reflect.Value {
	bits := make([]byte, r.Intn(64)+1)
	for i := range bits {
		bits[i] = byte(r.Intn(2))
	}
	return reflect.ValueOf(testPoly{FromBits(bits)})
}

func TestNewCanonicalForm(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []int
		degree int
		bits   string
		text   string
		kind   Kind
	}{
		{"x^2 + 1", []int{1, 0, 1}, 2, "101", "1 + x^2", KindHigherDegree},
		{"leading zeros stripped", []int{0, 0, 1, 1}, 1, "11", "1 + x", KindHigherDegree},
		{"coefficients mod 2", []int{3, 2, 5}, 2, "101", "1 + x^2", KindHigherDegree},
		{"negative coefficients", []int{-1, 0}, 1, "01", "x", KindHigherDegree},
		{"constant one", []int{0, 0, 1}, 0, "1", "1", KindNonzeroConstant},
		{"all zeros", []int{0, 0, 0}, 0, "0", "0", KindZero},
		{"empty", nil, 0, "0", "0", KindZero},
		{"no constant term", []int{1, 0, 0}, 2, "001", "x^2", KindHigherDegree},
		{"cubic", []int{1, 0, 1, 1}, 3, "1101", "1 + x + x^3", KindHigherDegree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.coeffs...)
			assert.Equal(t, tt.degree, p.Degree())
			assert.Equal(t, tt.bits, p.Render(true))
			assert.Equal(t, tt.text, p.Render(false))
			assert.Equal(t, tt.kind, p.Kind())
			assert.Len(t, p.Bits(), tt.degree+1)
		})
	}
}

func TestNewWithOrder(t *testing.T) {
	p, err := NewWithOrder([]int{1, 1}, 2)
	require.NoError(t, err)
	assert.True(t, p.Equal(New(1, 1)))

	for _, order := range []int{0, 3, 4, 7} {
		_, err := NewWithOrder([]int{1, 1}, order)
		assert.ErrorIs(t, err, ErrInvalidFieldOrder, "order %d", order)
	}
}

func TestZeroValueIsZeroPolynomial(t *testing.T) {
	var p Polynomial
	assert.True(t, p.IsZero())
	assert.True(t, p.Equal(New(0)))
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, "0", p.String())
	assert.Equal(t, []int{0}, p.Coefficients())
}

func TestFromBitsAndCoefficients(t *testing.T) {
	p := FromBits([]byte{1, 1, 0, 1, 0, 0})
	assert.True(t, p.Equal(New(1, 0, 1, 1)))
	assert.Equal(t, []int{1, 0, 1, 1}, p.Coefficients())
	assert.Equal(t, byte(1), p.Coefficient(3))
	assert.Equal(t, byte(0), p.Coefficient(2))
	assert.Equal(t, byte(0), p.Coefficient(99))
	assert.Equal(t, byte(0), p.Coefficient(-1))

	// callers cannot reach the internal slice
	bits := p.Bits()
	bits[0] = 0
	assert.Equal(t, byte(1), p.Coefficient(0))
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name string
		a, b Polynomial
		want Polynomial
	}{
		{"(x+1)^2", New(1, 1), New(1, 1), New(1, 0, 1)},
		{"by zero", New(1, 0, 1), Zero(), Zero()},
		{"by one", New(1, 0, 1, 1), One(), New(1, 0, 1, 1)},
		{"x * x^2+x+1", New(1, 0), New(1, 1, 1), New(1, 1, 1, 0)},
		{"(x^2+x+1)(x^3+x^2+1)", New(1, 1, 1), New(1, 1, 0, 1), New(1, 0, 0, 0, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Mul(tt.b)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.True(t, got.Equal(tt.b.Mul(tt.a)))
		})
	}
}

func TestSquareAndShift(t *testing.T) {
	p := New(1, 1, 0, 1)
	assert.True(t, p.Square().Equal(p.Mul(p)))
	assert.True(t, p.Shift(3).Equal(p.Mul(Monomial(3))))
	assert.True(t, Zero().Shift(5).IsZero())
	assert.True(t, Zero().Square().IsZero())
}

func TestDivMod(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Polynomial
		quo, rem Polynomial
	}{
		{"exact multiple", New(1, 0, 1, 0), New(1, 0, 1), New(1, 0), Zero()},
		{"hand division", New(1, 0, 0, 1, 1), New(1, 1, 1), New(1, 1, 0), One()},
		{"dividend smaller", New(1, 1), New(1, 0, 1), Zero(), New(1, 1)},
		{"divide by one", New(1, 0, 1, 1), One(), New(1, 0, 1, 1), Zero()},
		{"zero dividend", Zero(), New(1, 1), Zero(), Zero()},
		{"equal", New(1, 1, 0, 1), New(1, 1, 0, 1), One(), Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quo, rem, err := tt.a.DivMod(tt.b)
			require.NoError(t, err)
			assert.True(t, tt.quo.Equal(quo), "quotient %s, want %s", quo, tt.quo)
			assert.True(t, tt.rem.Equal(rem), "remainder %s, want %s", rem, tt.rem)

			m, err := tt.a.Mod(tt.b)
			require.NoError(t, err)
			assert.True(t, m.Equal(rem))

			q, err := tt.a.FloorDiv(tt.b)
			require.NoError(t, err)
			assert.True(t, q.Equal(quo))
		})
	}
}

func TestDivMod_DoesNotModifyOperands(t *testing.T) {
	a := New(1, 0, 0, 1, 1)
	b := New(1, 1, 1)
	aBits, bBits := a.Render(true), b.Render(true)

	_, _, err := a.DivMod(b)
	require.NoError(t, err)
	_, err = a.MultiplicativeInverse(New(1, 0, 0, 0, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, aBits, a.Render(true))
	assert.Equal(t, bBits, b.Render(true))
}

func TestDivisionByZeroPolynomial(t *testing.T) {
	a := New(1, 0, 1)
	for _, zero := range []Polynomial{Zero(), New(0), New(0, 0, 0)} {
		_, _, err := a.DivMod(zero)
		assert.ErrorIs(t, err, ErrDivisionByZeroPolynomial)
		_, err = a.Mod(zero)
		assert.ErrorIs(t, err, ErrDivisionByZeroPolynomial)
		_, err = a.FloorDiv(zero)
		assert.ErrorIs(t, err, ErrDivisionByZeroPolynomial)
	}
}

func TestMultiplicativeInverse(t *testing.T) {
	modulus := New(1, 0, 1, 1)

	inv, err := New(1, 0, 1).MultiplicativeInverse(modulus)
	require.NoError(t, err)
	assert.True(t, inv.Equal(New(1, 0)), "got %s", inv)

	product, err := inv.Mul(New(1, 0, 1)).Mod(modulus)
	require.NoError(t, err)
	assert.True(t, product.Equal(New(1)))

	t.Run("constant one", func(t *testing.T) {
		inv, err := One().MultiplicativeInverse(modulus)
		require.NoError(t, err)
		assert.True(t, inv.IsOne())
	})

	t.Run("reduced before inverting", func(t *testing.T) {
		// x^3 = x + 1 mod x^3 + x + 1
		inv, err := Monomial(3).MultiplicativeInverse(modulus)
		require.NoError(t, err)
		want, err := New(1, 1).MultiplicativeInverse(modulus)
		require.NoError(t, err)
		assert.True(t, want.Equal(inv))
	})

	t.Run("every nonzero element of GF(8)", func(t *testing.T) {
		for v := 1; v < 8; v++ {
			a := New(v>>2&1, v>>1&1, v&1)
			inv, err := a.MultiplicativeInverse(modulus)
			require.NoError(t, err)
			assert.Less(t, inv.Degree(), 3)
			product, err := a.Mul(inv).Mod(modulus)
			require.NoError(t, err)
			assert.True(t, product.IsOne(), "%s * %s = %s", a, inv, product)
		}
	})
}

func TestMultiplicativeInverse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		a       Polynomial
		modulus Polynomial
		want    error
	}{
		{"zero", Zero(), New(1, 0, 1, 1), ErrNotInvertible},
		{"multiple of modulus", New(1, 0, 1, 1).Shift(2), New(1, 0, 1, 1), ErrNotInvertible},
		{"common factor", New(1, 0, 1), New(1, 1, 1, 1), ErrNotInvertible},
		{"shares factor x", New(1, 0), New(1, 1, 0), ErrNotInvertible},
		{"zero modulus", New(1, 1), Zero(), ErrDivisionByZeroPolynomial},
		{"constant modulus", New(1, 1), One(), ErrNotInvertible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.a.MultiplicativeInverse(tt.modulus)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGCD(t *testing.T) {
	// (x+1)^2 and (x+1)(x^2+x+1)
	a := New(1, 0, 1)
	b := New(1, 1).Mul(New(1, 1, 1))
	assert.True(t, GCD(a, b).Equal(New(1, 1)))
	assert.True(t, GCD(a, Zero()).Equal(a))
	assert.True(t, GCD(Zero(), Zero()).IsZero())
	assert.True(t, GCD(New(1, 1, 1), New(1, 0, 1, 1)).IsOne())
}

func TestAlgebraicProperties(t *testing.T) {
	t.Run("additive identity", func(t *testing.T) {
		err := quick.Check(func(a testPoly) bool {
			return a.Add(Zero()).Equal(a.Polynomial)
		}, nil)
		require.NoError(t, err)
	})

	t.Run("addition is an involution", func(t *testing.T) {
		err := quick.Check(func(a testPoly) bool {
			return a.Add(a.Polynomial).IsZero() && a.Sub(a.Polynomial).IsZero()
		}, nil)
		require.NoError(t, err)
	})

	t.Run("addition commutes", func(t *testing.T) {
		err := quick.Check(func(a, b testPoly) bool {
			return a.Add(b.Polynomial).Equal(b.Add(a.Polynomial))
		}, nil)
		require.NoError(t, err)
	})

	t.Run("distributivity", func(t *testing.T) {
		err := quick.Check(func(a, b, c testPoly) bool {
			left := a.Mul(b.Add(c.Polynomial))
			right := a.Mul(b.Polynomial).Add(a.Mul(c.Polynomial))
			return left.Equal(right)
		}, nil)
		require.NoError(t, err)
	})

	t.Run("product degree", func(t *testing.T) {
		err := quick.Check(func(a, b testPoly) bool {
			if a.IsZero() || b.IsZero() {
				return a.Mul(b.Polynomial).IsZero()
			}
			return a.Mul(b.Polynomial).Degree() == a.Degree()+b.Degree()
		}, nil)
		require.NoError(t, err)
	})

	t.Run("division identity", func(t *testing.T) {
		err := quick.Check(func(a, b testPoly) bool {
			if b.IsZero() {
				return true
			}
			quo, rem, err := a.DivMod(b.Polynomial)
			if err != nil {
				return false
			}
			if !rem.IsZero() && rem.Degree() >= b.Degree() {
				return false
			}
			return quo.Mul(b.Polynomial).Add(rem).Equal(a.Polynomial)
		}, nil)
		require.NoError(t, err)
	})

	t.Run("inverse modulo irreducible", func(t *testing.T) {
		modulus := New(1, 0, 0, 0, 1, 1, 0, 1, 1) // x^8 + x^4 + x^3 + x + 1
		err := quick.Check(func(a testPoly) bool {
			reduced, _ := a.Mod(modulus)
			if reduced.IsZero() {
				return true
			}
			inv, err := a.MultiplicativeInverse(modulus)
			if err != nil {
				return false
			}
			product, _ := inv.Mul(a.Polynomial).Mod(modulus)
			return product.Equal(New(1))
		}, nil)
		require.NoError(t, err)
	})

	t.Run("canonical bit string", func(t *testing.T) {
		err := quick.Check(func(a testPoly) bool {
			bits := a.Render(true)
			return len(bits) == a.Degree()+1 && (a.IsZero() || bits[len(bits)-1] == '1')
		}, nil)
		require.NoError(t, err)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "zero", KindZero.String())
	assert.Equal(t, "constant", KindNonzeroConstant.String())
	assert.Equal(t, "higher-degree", KindHigherDegree.String())
	assert.Contains(t, Kind(9).String(), "unknown")
}
