package gf2m

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// MaxDegree is the largest field degree the supplier serves, the degree of
// the NIST B-571 curve field.
const MaxDegree = 571

// IrreducibleFunc supplies an irreducible polynomial of exact degree m.
// It must be deterministic for a given m.
type IrreducibleFunc func(m int) (Polynomial, error)

// standardModuli holds the customary reduction polynomials for well known
// binary fields, as exponents of their nonzero terms.
var standardModuli = map[int][]int{
	8:   {8, 4, 3, 1, 0},    // AES
	128: {128, 7, 2, 1, 0},  // GCM
	163: {163, 7, 6, 3, 0},  // NIST B-163, K-163
	233: {233, 74, 0},       // NIST B-233, K-233
	283: {283, 12, 7, 5, 0}, // NIST B-283, K-283
	409: {409, 87, 0},       // NIST B-409, K-409
	571: {571, 10, 5, 2, 0}, // NIST B-571, K-571
}

var moduliCache = struct {
	sync.Mutex
	polys map[int]Polynomial
}{polys: make(map[int]Polynomial)}

// Irreducible returns the irreducible polynomial used as the modulus of
// GF(2^m). Standard fields use their customary polynomial; any other degree
// gets the trinomial x^m + x^k + 1 with the smallest k, falling back to the
// lexicographically smallest pentanomial. Results are cached.
func Irreducible(m int) (Polynomial, error) {
	if m < 1 || m > MaxDegree {
		return Polynomial{}, fmt.Errorf("degree %d not in 1..%d: %w", m, MaxDegree, ErrDegreeOutOfRange)
	}

	moduliCache.Lock()
	defer moduliCache.Unlock()

	if p, ok := moduliCache.polys[m]; ok {
		return p, nil
	}

	var p Polynomial
	if exps, ok := standardModuli[m]; ok {
		p = fromExponents(exps...)
		slog.Debug("Using standard modulus", "degree", m, "modulus", p.String())
	} else {
		start := time.Now()
		var tried int
		p, tried = searchIrreducible(m)
		slog.Debug("Found irreducible modulus",
			"degree", m,
			"modulus", p.String(),
			"candidates", tried,
			"elapsed", time.Since(start))
	}

	moduliCache.polys[m] = p
	return p, nil
}

// searchIrreducible walks trinomials then pentanomials of degree m. Every
// degree from 2 up has an irreducible trinomial or pentanomial, so the
// search always succeeds within MaxDegree.
func searchIrreducible(m int) (Polynomial, int) {
	if m == 1 {
		return fromExponents(1, 0), 0
	}

	tried := 0
	// by Swan's theorem no trinomial of degree 8k is irreducible
	for k := 1; k < m && m%8 != 0; k++ {
		tried++
		p := fromExponents(m, k, 0)
		if IsIrreducible(p) {
			return p, tried
		}
	}

	for k1 := 1; k1 < m; k1++ {
		for k2 := k1 + 1; k2 < m; k2++ {
			for k3 := k2 + 1; k3 < m; k3++ {
				tried++
				p := fromExponents(m, k3, k2, k1, 0)
				if IsIrreducible(p) {
					return p, tried
				}
			}
		}
	}

	// unreachable for 2 <= m <= MaxDegree
	panic(fmt.Sprintf("gf2m: no irreducible trinomial or pentanomial of degree %d", m))
}

// IsIrreducible reports whether p has no nontrivial factor over GF(2),
// using Ben-Or's test: p of degree m is irreducible iff
// gcd(p, x^(2^i) - x) = 1 for every 1 <= i <= m/2.
func IsIrreducible(p Polynomial) bool {
	m := p.Degree()
	if p.Kind() != KindHigherDegree {
		return false
	}
	if m == 1 {
		return true
	}
	// x divides p
	if p.Coefficient(0) == 0 {
		return false
	}

	x := Monomial(1)
	u := x
	for i := 1; i <= m/2; i++ {
		u, _ = u.Square().Mod(p)
		if !GCD(p, u.Add(x)).IsOne() {
			return false
		}
	}
	return true
}

func fromExponents(exps ...int) Polynomial {
	var p Polynomial
	for _, e := range exps {
		p = p.Add(Monomial(e))
	}
	return p
}
