// Package polynomial represents polynomials over a prime field and
// evaluates them with Horner's method. A Polynomial's coefficient 0 is the
// constant term — the secret chunk this polynomial carries inside the
// Shamir scheme.
package polynomial

import (
	"math/big"

	"github.com/Davincible/shamirfield/pkg/field"
)

// Polynomial is c[0] + c[1]*x + c[2]*x^2 + ... + c[d]*x^d over a field.
type Polynomial struct {
	f    field.Field
	coef []*big.Int
}

// Random builds a polynomial of the given degree with c[0] = constantTerm
// and c[1..degree] drawn uniformly from the field using a cryptographically
// secure RNG.
func Random(f field.Field, degree int, constantTerm *big.Int) (*Polynomial, error) {
	coef := make([]*big.Int, degree+1)
	coef[0] = f.Element(constantTerm)

	for i := 1; i <= degree; i++ {
		v, err := f.RandomElement()
		if err != nil {
			return nil, err
		}
		coef[i] = v
	}

	return &Polynomial{f: f, coef: coef}, nil
}

// FromCoefficients wraps an explicit coefficient list. Intended for tests
// and deterministic harnesses; production callers should use Random.
func FromCoefficients(f field.Field, coef []*big.Int) *Polynomial {
	c := make([]*big.Int, len(coef))
	for i, v := range coef {
		c[i] = f.Element(v)
	}
	return &Polynomial{f: f, coef: c}
}

// Degree returns the polynomial's degree (len(coefficients) - 1).
func (p *Polynomial) Degree() int {
	return len(p.coef) - 1
}

// ConstantTerm returns c[0].
func (p *Polynomial) ConstantTerm() *big.Int {
	return new(big.Int).Set(p.coef[0])
}

// Coefficients returns a copy of the coefficient vector, ordered low to
// high degree.
func (p *Polynomial) Coefficients() []*big.Int {
	out := make([]*big.Int, len(p.coef))
	for i, v := range p.coef {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// Evaluate computes f(x) using Horner's method: O(degree) multiplications.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	result := new(big.Int).Set(p.coef[len(p.coef)-1])
	for i := len(p.coef) - 2; i >= 0; i-- {
		result = p.f.Mul(result, x)
		result = p.f.Add(result, p.coef[i])
	}
	return result
}

// ZeroNonConstant overwrites every coefficient except c[0] with zero. The
// Splitter calls this immediately after evaluating a polynomial at every
// share index, since coefficients 1..d are secret-adjacent material with
// no further use once the per-share y-values have been recorded.
func (p *Polynomial) ZeroNonConstant() {
	for i := 1; i < len(p.coef); i++ {
		p.coef[i].SetInt64(0)
	}
}
