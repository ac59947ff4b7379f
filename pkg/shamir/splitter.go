package shamir

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/Davincible/shamirfield/pkg/codec"
	"github.com/Davincible/shamirfield/pkg/polynomial"
	"github.com/Davincible/shamirfield/pkg/shamirerr"
	"github.com/Davincible/shamirfield/pkg/share"
)

// Split implements spec.md §4.7: chunk the secret, build one random
// degree-(k-1) polynomial per chunk with the chunk embedded as the
// constant term, evaluate each polynomial at x=1..n, and package the
// per-share y-values into a Share. A failed split produces no shares.
func Split(cfg Config, secret []byte, k, n int) (share.Collection, error) {
	if k < 2 {
		return nil, shamirerr.New(shamirerr.ThresholdTooLow, "threshold must be at least 2")
	}
	if k > n {
		return nil, shamirerr.New(shamirerr.ThresholdExceedsShares, "threshold cannot exceed share count")
	}

	f := cfg.field()
	chunks := codec.Chunk(secret, cfg.ChunkSize())

	// yValues[i] holds chunk values 0..m-1 for share index i+1.
	yValues := make([][]*big.Int, n)
	for i := range yValues {
		yValues[i] = make([]*big.Int, len(chunks))
	}

	for c, chunk := range chunks {
		constantTerm := codec.ToField(chunk)

		poly, err := polynomial.Random(f, k-1, constantTerm)
		if err != nil {
			return nil, err
		}

		for i := 1; i <= n; i++ {
			yValues[i-1][c] = poly.Evaluate(big.NewInt(int64(i)))
		}

		poly.ZeroNonConstant()
	}

	finalChunkLen := 0
	if len(chunks) > 0 {
		finalChunkLen = len(chunks[len(chunks)-1])
	}

	enc := cfg.encoder()
	shares := make(share.Collection, n)
	for i := 0; i < n; i++ {
		payload := make([]string, len(chunks), len(chunks)+1)
		for c, v := range yValues[i] {
			payload[c] = v.String()
		}
		if cfg.Padding() == codec.PadFixedWidth {
			payload = append(payload, finalLenMarker+strconv.Itoa(finalChunkLen))
		}

		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, shamirerr.Wrap(shamirerr.InvalidShareDataFormat, err)
		}

		value := enc.Encode(raw)
		shares[i] = share.New(i+1, value, k)
	}

	return shares, nil
}
