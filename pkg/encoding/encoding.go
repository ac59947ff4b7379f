// Package encoding provides the bidirectional binary<->text codecs used
// for share payloads: base64 and lowercase hex, both with strict decoding.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/Davincible/shamirfield/pkg/shamirerr"
)

// Variant selects which text alphabet a Manager's Config uses to wrap
// share payloads.
type Variant int

const (
	// Base64 uses standard base64 with padding (RFC 4648 alphabet,
	// {A-Z, a-z, 0-9, +, /, =}).
	Base64 Variant = iota
	// Hex uses lowercase hexadecimal.
	Hex
)

func (v Variant) String() string {
	switch v {
	case Base64:
		return "base64"
	case Hex:
		return "hex"
	default:
		return "unknown"
	}
}

// Encoder is a stateless pair of pure functions satisfying
// decode(encode(b)) == b for all b, with strict rejection of malformed
// input on decode.
type Encoder interface {
	Encode(b []byte) string
	Decode(s string) ([]byte, error)
}

// New returns the Encoder for the given Variant.
func New(v Variant) Encoder {
	switch v {
	case Hex:
		return hexEncoder{}
	default:
		return base64Encoder{}
	}
}

type base64Encoder struct{}

func (base64Encoder) Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func (base64Encoder) Decode(s string) ([]byte, error) {
	// The stdlib decoder silently skips CR/LF; reject them to stay strict.
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, shamirerr.Wrap(shamirerr.Base64DecodeFailed, base64.CorruptInputError(i))
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, shamirerr.Wrap(shamirerr.Base64DecodeFailed, err)
	}
	return b, nil
}

type hexEncoder struct{}

func (hexEncoder) Encode(b []byte) string {
	return hex.EncodeToString(b)
}

func (hexEncoder) Decode(s string) ([]byte, error) {
	// The stdlib decoder also accepts A-F; only lowercase hex is valid here.
	if i := strings.IndexAny(s, "ABCDEF"); i >= 0 {
		return nil, shamirerr.Wrap(shamirerr.HexDecodeFailed, hex.InvalidByteError(s[i]))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, shamirerr.Wrap(shamirerr.HexDecodeFailed, err)
	}
	return b, nil
}
