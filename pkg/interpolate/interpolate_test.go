package interpolate

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/shamirfield/pkg/field"
	"github.com/Davincible/shamirfield/pkg/polynomial"
)

func TestAtZeroRecoversConstantTerm(t *testing.T) {
	f := field.MustNew(field.Prime256)
	secret := big.NewInt(123456789)

	p := polynomial.FromCoefficients(f, []*big.Int{secret, big.NewInt(17), big.NewInt(31)})

	points := []Point{
		{X: big.NewInt(1), Y: p.Evaluate(big.NewInt(1))},
		{X: big.NewInt(2), Y: p.Evaluate(big.NewInt(2))},
		{X: big.NewInt(3), Y: p.Evaluate(big.NewInt(3))},
	}

	got, err := AtZero(f, points)
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestAtZeroAgreesForAnySubsetOfSizeK(t *testing.T) {
	f := field.MustNew(field.Prime256)
	secret := big.NewInt(42)

	degree := 3
	coef := make([]*big.Int, degree+1)
	coef[0] = secret
	for i := 1; i <= degree; i++ {
		coef[i] = big.NewInt(int64(i * 13))
	}
	p := polynomial.FromCoefficients(f, coef)

	all := make([]Point, 0, 8)
	for x := int64(1); x <= 8; x++ {
		all = append(all, Point{X: big.NewInt(x), Y: p.Evaluate(big.NewInt(x))})
	}

	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		perm := r.Perm(len(all))
		subset := make([]Point, 0, degree+1)
		for _, idx := range perm[:degree+1] {
			subset = append(subset, all[idx])
		}
		got, err := AtZero(f, subset)
		require.NoError(t, err)
		assert.Equal(t, secret, got)
	}
}

func TestAtZeroOrderIndependent(t *testing.T) {
	f := field.MustNew(field.Prime256)
	points := []Point{
		{X: big.NewInt(1), Y: big.NewInt(10)},
		{X: big.NewInt(2), Y: big.NewInt(20)},
		{X: big.NewInt(3), Y: big.NewInt(30)},
	}

	forward, err := AtZero(f, points)
	require.NoError(t, err)

	reversed := []Point{points[2], points[0], points[1]}
	backward, err := AtZero(f, reversed)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}
