// Package interpolate reconstructs the constant term of a polynomial from
// k of its (x, y) evaluations via Lagrange interpolation at x=0.
package interpolate

import (
	"math/big"

	"github.com/Davincible/shamirfield/pkg/field"
)

// Point is one (x, y) sample of a polynomial over a field.
type Point struct {
	X, Y *big.Int
}

// AtZero computes f(0) = sum_i y_i * L_i(0), where
// L_i(0) = prod_{j != i} (-x_j) / (x_i - x_j).
//
// Points must have pairwise-distinct, non-zero X coordinates; callers
// (Codec/Combiner) guarantee this by using distinct positive share
// indices. Duplicate X values are a precondition violation, not handled
// here.
func AtZero(f field.Field, points []Point) (*big.Int, error) {
	secret := big.NewInt(0)

	for i, pi := range points {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j, pj := range points {
			if i == j {
				continue
			}
			numerator = f.Mul(numerator, f.Neg(pj.X))
			denominator = f.Mul(denominator, f.Sub(pi.X, pj.X))
		}

		basis, err := f.Div(numerator, denominator)
		if err != nil {
			return nil, err
		}

		term := f.Mul(pi.Y, basis)
		secret = f.Add(secret, term)
	}

	return secret, nil
}
