package shamir

import (
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/Davincible/shamirfield/pkg/codec"
	"github.com/Davincible/shamirfield/pkg/interpolate"
	"github.com/Davincible/shamirfield/pkg/shamirerr"
	"github.com/Davincible/shamirfield/pkg/share"
)

// finalLenMarker prefixes the one piece of metadata PadFixedWidth needs
// that Unpadded shares never carry: the original byte length of the final
// chunk. It is appended as the last element of the payload array, after
// the per-chunk y-value strings, only when a Config's padding policy is
// PadFixedWidth. This makes PadFixedWidth shares self-describing at the
// cost of being wire-incompatible with Unpadded shares of the same
// secret — the tradeoff spec.md §9 calls out explicitly.
const finalLenMarker = "L"

// Combine implements spec.md §4.8: normalize admitted items to Shares,
// validate the set, decode and interpolate each chunk, and concatenate
// the reassembled bytes. It uses every supplied item — callers wanting a
// fixed-quorum reconstruction should pass exactly k items.
func Combine(cfg Config, items []Item) ([]byte, error) {
	if len(items) == 0 {
		return nil, shamirerr.New(shamirerr.NoSharesProvided, "")
	}

	shares := make([]share.Share, len(items))
	for i, it := range items {
		s, err := it.resolve()
		if err != nil {
			return nil, err
		}
		shares[i] = s
	}

	if err := validateShares(shares); err != nil {
		return nil, err
	}

	threshold := shares[0].Threshold()
	if len(shares) < threshold {
		return nil, shamirerr.Insufficient(len(shares), threshold)
	}

	decoded, finalLen, err := decodeShares(cfg, shares)
	if err != nil {
		return nil, err
	}

	m := len(decoded[0])
	for _, d := range decoded {
		if len(d) != m {
			return nil, shamirerr.New(shamirerr.InvalidShareDataFormat, "shares encode different chunk counts")
		}
	}

	f := cfg.field()
	chunkSize := cfg.ChunkSize()

	secret := make([]byte, 0, m*chunkSize)
	for c := 0; c < m; c++ {
		points := make([]interpolate.Point, len(shares))
		for i, s := range shares {
			points[i] = interpolate.Point{X: big.NewInt(int64(s.Index())), Y: decoded[i][c]}
		}

		y, err := interpolate.AtZero(f, points)
		if err != nil {
			return nil, err
		}

		isFinal := c == m-1
		secret = append(secret, codec.FromField(y, cfg.Padding(), chunkSize, isFinal, finalLen)...)

		for _, p := range points {
			p.Y.SetInt64(0)
		}
		y.SetInt64(0)
	}

	return secret, nil
}

func validateShares(shares []share.Share) error {
	threshold := shares[0].Threshold()
	for _, s := range shares {
		if err := s.VerifyChecksum(); err != nil {
			return err
		}
		if s.Threshold() != threshold {
			return shamirerr.New(shamirerr.SharesDifferentThresholds, "")
		}
	}
	return nil
}

// decodeShares decodes and JSON-parses every share's payload into a
// per-share slice of field elements. When cfg.Padding() is PadFixedWidth
// it also extracts and returns the final chunk's original byte length
// (required to be consistent across all shares); otherwise finalLen is 0
// and unused.
func decodeShares(cfg Config, shares []share.Share) ([][]*big.Int, int, error) {
	enc := cfg.encoder()
	decoded := make([][]*big.Int, len(shares))
	finalLen := -1

	for i, s := range shares {
		raw, err := enc.Decode(s.Value())
		if err != nil {
			return nil, 0, err
		}

		var rawFields []json.RawMessage
		if err := json.Unmarshal(raw, &rawFields); err != nil {
			return nil, 0, shamirerr.Wrap(shamirerr.InvalidShareDataFormat, err)
		}

		fields := make([]string, len(rawFields))
		for idx, rf := range rawFields {
			var v string
			if err := json.Unmarshal(rf, &v); err != nil {
				return nil, 0, shamirerr.New(shamirerr.InvalidChunkDataType, string(rf))
			}
			fields[idx] = v
		}

		if cfg.Padding() == codec.PadFixedWidth {
			if len(fields) == 0 {
				return nil, 0, shamirerr.New(shamirerr.InvalidShareDataFormat, "missing final-length marker")
			}
			last := fields[len(fields)-1]
			if !strings.HasPrefix(last, finalLenMarker) {
				return nil, 0, shamirerr.New(shamirerr.InvalidShareDataFormat, "missing final-length marker")
			}
			n, err := strconv.Atoi(strings.TrimPrefix(last, finalLenMarker))
			if err != nil {
				return nil, 0, shamirerr.New(shamirerr.InvalidShareDataFormat, "malformed final-length marker")
			}
			if finalLen == -1 {
				finalLen = n
			} else if finalLen != n {
				return nil, 0, shamirerr.New(shamirerr.InvalidShareDataFormat, "shares disagree on final chunk length")
			}
			fields = fields[:len(fields)-1]
		}

		values := make([]*big.Int, len(fields))
		for c, field := range fields {
			v, ok := new(big.Int).SetString(field, 10)
			if !ok {
				return nil, 0, shamirerr.New(shamirerr.InvalidChunkDataType, field)
			}
			values[c] = v
		}
		decoded[i] = values
	}

	if finalLen == -1 {
		finalLen = 0
	}
	return decoded, finalLen, nil
}
