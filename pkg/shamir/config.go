// Package shamir orchestrates prime-field Shamir secret sharing: Config
// selects the field and wire encoding, Splitter and Combiner run the
// cryptographic pipeline, and Manager is the stateless, value-typed
// dispatcher a caller holds on to.
package shamir

import (
	"math/big"

	"github.com/Davincible/shamirfield/pkg/codec"
	"github.com/Davincible/shamirfield/pkg/encoding"
	"github.com/Davincible/shamirfield/pkg/field"
)

// Config is an immutable pairing of a prime field and a wire encoding.
// Build one with NewConfig or DefaultConfig; there are
// no setters, and a Config is safe to share across goroutines for reads.
type Config struct {
	prime     *big.Int
	encoding  encoding.Variant
	padding   codec.PaddingPolicy
	chunkSize int
}

// NewConfig builds a Config over the given prime and encoding, with the
// Unpadded chunk codec policy (wire-compatible with the historical
// reference behavior — see DESIGN.md).
func NewConfig(prime *big.Int, enc encoding.Variant) Config {
	return Config{
		prime:     new(big.Int).Set(prime),
		encoding:  enc,
		padding:   codec.Unpadded,
		chunkSize: codec.ChunkSize(prime.BitLen()),
	}
}

// WithPadding returns a copy of c using the given chunk padding policy.
func (c Config) WithPadding(p codec.PaddingPolicy) Config {
	c.padding = p
	return c
}

// DefaultConfig returns the reference configuration: PRIME_256 with
// base64 encoding.
func DefaultConfig() Config {
	return NewConfig(field.Prime256, encoding.Base64)
}

// Prime returns a copy of the configured modulus.
func (c Config) Prime() *big.Int { return new(big.Int).Set(c.prime) }

// Encoding returns the configured wire encoding.
func (c Config) Encoding() encoding.Variant { return c.encoding }

// Padding returns the configured chunk padding policy.
func (c Config) Padding() codec.PaddingPolicy { return c.padding }

// ChunkSize returns the maximum plaintext chunk length under this Config.
func (c Config) ChunkSize() int { return c.chunkSize }

// field builds the Field value this Config's arithmetic runs over. Field
// values are cheap (a single *big.Int pointer) so this is called freely
// rather than cached.
func (c Config) field() field.Field {
	return field.MustNew(c.prime)
}

func (c Config) encoder() encoding.Encoder {
	return encoding.New(c.encoding)
}
