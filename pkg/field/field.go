// Package field implements arithmetic over a prime field GF(p) using
// arbitrary-precision integers. Every element is kept normalized to the
// range [0, p-1]; callers never see a raw *big.Int escape the field.
package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/Davincible/shamirfield/pkg/shamirerr"
)

// Well-known primes recognized by the package. Other primes are accepted
// by New, but these three are the ones a caller can reach for by name.
var (
	// Prime128 is 2^128 - 159.
	Prime128 = mustPrime("340282366920938463463374607431768211297")

	// Prime256 is the secp256k1 field prime.
	Prime256 = mustPrime("115792089237316195423570985008687907853269984665640564039457584007908834671663")

	// Prime512 is 2^512 - 569, the reference "large" field modulus.
	Prime512 = mustPrime("13407807929942597099574024998205846127479365820592393377723561443721764030073546976801874298166903427690031858186486050853753882811946569946433649006083527")
)

func mustPrime(s string) *big.Int {
	p, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("field: invalid prime literal %q", s))
	}
	return p
}

// Field is a value-typed prime field. The zero Field is not usable; build
// one with New or MustNew.
type Field struct {
	p *big.Int
}

// New builds a Field over p. p must be a prime greater than 2, though for
// performance this is the caller's responsibility to guarantee — the
// package does no primality test on the hot path.
func New(p *big.Int) (Field, error) {
	if p == nil || p.Sign() <= 0 {
		return Field{}, fmt.Errorf("field: modulus must be a positive integer")
	}
	if p.Cmp(big.NewInt(2)) <= 0 {
		return Field{}, fmt.Errorf("field: modulus must be greater than 2")
	}
	return Field{p: new(big.Int).Set(p)}, nil
}

// MustNew is like New but panics on error; intended for package-level
// initialization of well-known fields.
func MustNew(p *big.Int) Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Prime returns a copy of the field's modulus.
func (f Field) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitLen returns bitlen(p).
func (f Field) BitLen() int {
	return f.p.BitLen()
}

// normalize reduces v into [0, p-1], handling negative inputs.
func (f Field) normalize(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, f.p)
	if r.Sign() < 0 {
		r.Add(r, f.p)
	}
	return r
}

// Element returns v reduced into the field's canonical range.
func (f Field) Element(v *big.Int) *big.Int {
	return f.normalize(v)
}

// Add returns (a + b) mod p.
func (f Field) Add(a, b *big.Int) *big.Int {
	return f.normalize(new(big.Int).Add(a, b))
}

// Sub returns (a - b) mod p, normalized to be non-negative.
func (f Field) Sub(a, b *big.Int) *big.Int {
	return f.normalize(new(big.Int).Sub(a, b))
}

// Mul returns (a * b) mod p.
func (f Field) Mul(a, b *big.Int) *big.Int {
	return f.normalize(new(big.Int).Mul(a, b))
}

// Neg returns (-a) mod p.
func (f Field) Neg(a *big.Int) *big.Int {
	return f.normalize(new(big.Int).Neg(a))
}

// Inv returns the multiplicative inverse of a modulo p via the extended
// Euclidean algorithm (big.Int.ModInverse). It fails when a mod p == 0,
// which cannot happen for a prime p and a valid non-zero x-coordinate.
func (f Field) Inv(a *big.Int) (*big.Int, error) {
	reduced := f.normalize(a)
	if reduced.Sign() == 0 {
		return nil, shamirerr.New(shamirerr.NoModularInverse, "a mod p == 0")
	}
	inv := new(big.Int).ModInverse(reduced, f.p)
	if inv == nil {
		return nil, shamirerr.New(shamirerr.NoModularInverse, "a is not invertible mod p")
	}
	return inv, nil
}

// Div returns a * b^-1 mod p.
func (f Field) Div(a, b *big.Int) (*big.Int, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}

// RandomElement draws a uniformly random element of the field using the
// platform CSPRNG. It samples bitlen(p)+64 bits and reduces modulo p, so
// the modular bias introduced is negligible (2^-64) regardless of how
// close bitlen(p) is to a byte boundary.
func (f Field) RandomElement() (*big.Int, error) {
	bits := f.p.BitLen() + 64
	nbytes := (bits + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, shamirerr.Wrap(shamirerr.RngUnavailable, err)
	}
	v := new(big.Int).SetBytes(buf)
	return f.normalize(v), nil
}
