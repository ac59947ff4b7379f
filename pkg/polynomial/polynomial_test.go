package polynomial

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/shamirfield/pkg/field"
)

func TestConstantPolynomialEvaluatesToConstant(t *testing.T) {
	f := field.MustNew(field.Prime256)
	p := FromCoefficients(f, []*big.Int{big.NewInt(42)})

	for _, x := range []int64{1, 2, 1000} {
		assert.Equal(t, big.NewInt(42), p.Evaluate(big.NewInt(x)))
	}
}

func TestEvaluateMatchesSchoolbook(t *testing.T) {
	f := field.MustNew(field.Prime256)
	coef := []*big.Int{big.NewInt(7), big.NewInt(3), big.NewInt(5)}
	p := FromCoefficients(f, coef)

	x := big.NewInt(4)
	// schoolbook: 7 + 3*4 + 5*16 = 7 + 12 + 80 = 99
	want := f.Element(big.NewInt(99))
	assert.Equal(t, want, p.Evaluate(x))
}

func TestRandomHasRequestedDegreeAndConstant(t *testing.T) {
	f := field.MustNew(field.Prime256)
	secret := big.NewInt(123456789)

	p, err := Random(f, 4, secret)
	require.NoError(t, err)

	assert.Equal(t, 4, p.Degree())
	assert.Equal(t, secret, p.ConstantTerm())
	assert.Len(t, p.Coefficients(), 5)
}

func TestRandomCoefficientsAreInField(t *testing.T) {
	f := field.MustNew(field.Prime256)
	p, err := Random(f, 10, big.NewInt(1))
	require.NoError(t, err)

	for _, c := range p.Coefficients() {
		assert.True(t, c.Sign() >= 0)
		assert.True(t, c.Cmp(f.Prime()) < 0)
	}
}

func TestZeroNonConstantPreservesSecret(t *testing.T) {
	f := field.MustNew(field.Prime256)
	secret := big.NewInt(777)
	p, err := Random(f, 3, secret)
	require.NoError(t, err)

	p.ZeroNonConstant()

	assert.Equal(t, secret, p.ConstantTerm())
	for i, c := range p.Coefficients() {
		if i == 0 {
			continue
		}
		assert.Equal(t, big.NewInt(0), c)
	}
}

func TestDegreeZeroPolynomial(t *testing.T) {
	f := field.MustNew(field.Prime256)
	p, err := Random(f, 0, big.NewInt(9))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, big.NewInt(9), p.Evaluate(big.NewInt(5)))
}
