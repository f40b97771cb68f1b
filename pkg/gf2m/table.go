package gf2m

import (
	"fmt"
	"math/big"
)

// MaxTableDegree bounds the fields for which log/exp tables are built.
const MaxTableDegree = 16

// LogTable holds exp and log tables for a small field with respect to a
// generator of its multiplicative group. Elements are packed into integers
// with bit i holding the coefficient of x^i.
type LogTable struct {
	field     *Field
	generator uint32
	exp       []uint32 // exp[i] = g^i for 0 <= i < 2^m - 1
	log       []uint32 // log[exp[i]] = i; log[0] is unused
}

// NewLogTable builds tables for f, using the smallest element that generates
// the multiplicative group.
func NewLogTable(f *Field) (*LogTable, error) {
	if f.degree > MaxTableDegree {
		return nil, fmt.Errorf("table for GF(2^%d) exceeds GF(2^%d): %w",
			f.degree, MaxTableDegree, ErrDegreeOutOfRange)
	}

	size := uint32(1) << f.degree
	order := size - 1
	mod := uint32(packBits(f.modulus))

	t := &LogTable{
		field: f,
		exp:   make([]uint32, order),
		log:   make([]uint32, size),
	}

	// for GF(2) the only nonzero element 1 generates the group
	for g := uint32(1); g < size; g++ {
		if g == 1 && order > 1 {
			continue
		}
		if t.fill(g, mod) {
			t.generator = g
			return t, nil
		}
	}

	// unreachable: the multiplicative group of a finite field is cyclic
	return nil, fmt.Errorf("no generator for %v: %w", f, ErrReducibleModulus)
}

// fill tabulates the powers of g, reporting whether g has full order.
func (t *LogTable) fill(g, mod uint32) bool {
	order := uint32(len(t.exp))
	x := uint32(1)
	for i := uint32(0); i < order; i++ {
		if i > 0 && x == 1 {
			return false
		}
		t.exp[i] = x
		t.log[x] = i
		x = mulPacked(x, g, mod, t.field.degree)
	}
	return x == 1
}

// mulPacked multiplies packed elements with shift-and-XOR, reducing by the
// packed modulus at every step.
func mulPacked(a, b, mod uint32, m int) uint32 {
	var result uint32
	top := uint32(1) << m
	for b != 0 {
		if b&1 == 1 {
			result ^= a
		}
		b >>= 1
		a <<= 1
		if a&top != 0 {
			a ^= mod
		}
	}
	return result
}

// Field returns the field the table serves.
func (t *LogTable) Field() *Field {
	return t.field
}

// Generator returns the primitive element the tables are built from.
func (t *LogTable) Generator() FieldElement {
	return t.element(t.generator)
}

// Mul multiplies through the tables.
func (t *LogTable) Mul(a, b FieldElement) (FieldElement, error) {
	if err := t.owns(a, b); err != nil {
		return FieldElement{}, err
	}
	pa, pb := packElement(a), packElement(b)
	if pa == 0 || pb == 0 {
		return t.field.Zero(), nil
	}
	order := uint32(len(t.exp))
	return t.element(t.exp[(t.log[pa]+t.log[pb])%order]), nil
}

// Inverse inverts through the tables.
func (t *LogTable) Inverse(a FieldElement) (FieldElement, error) {
	if err := t.owns(a); err != nil {
		return FieldElement{}, err
	}
	pa := packElement(a)
	if pa == 0 {
		return FieldElement{}, fmt.Errorf("zero element: %w", ErrNotInvertible)
	}
	order := uint32(len(t.exp))
	return t.element(t.exp[(order-t.log[pa])%order]), nil
}

// Log returns k with generator^k = a.
func (t *LogTable) Log(a FieldElement) (int, error) {
	if err := t.owns(a); err != nil {
		return 0, err
	}
	pa := packElement(a)
	if pa == 0 {
		return 0, fmt.Errorf("logarithm of zero: %w", ErrNotInvertible)
	}
	return int(t.log[pa]), nil
}

// Exp returns generator^k.
func (t *LogTable) Exp(k int) FieldElement {
	order := len(t.exp)
	k %= order
	if k < 0 {
		k += order
	}
	return t.element(t.exp[k])
}

func (t *LogTable) owns(elems ...FieldElement) error {
	for _, e := range elems {
		if !t.field.Equal(e.field) {
			return fmt.Errorf("%v and %v: %w", t.field, e.field, ErrFieldMismatch)
		}
	}
	return nil
}

func (t *LogTable) element(packed uint32) FieldElement {
	return FieldElement{value: FromBigInt(new(big.Int).SetUint64(uint64(packed))), field: t.field}
}

func packElement(e FieldElement) uint32 {
	return uint32(packBits(e.value))
}

func packBits(p Polynomial) uint64 {
	var v uint64
	for i, b := range p.bits {
		v |= uint64(b) << i
	}
	return v
}
