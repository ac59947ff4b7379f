// Package share defines the immutable Share record produced by a split
// and consumed by a combine, plus its two serialized forms: the compact
// colon-delimited string and the structured (JSON-friendly) form.
package share

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/Davincible/shamirfield/pkg/secure"
	"github.com/Davincible/shamirfield/pkg/shamirerr"
)

// Share is an immutable record: a 1-based share index, an encoded payload,
// the scheme's threshold, and an integrity checksum of the payload. It has
// constructors only — no method ever mutates a Share in place.
type Share struct {
	index     int
	value     string
	threshold int
	checksum  string
}

// New builds a Share from its index, payload and threshold, computing the
// checksum itself. Use this when producing shares (Splitter); use
// FromString/FromArray when parsing shares a caller already has.
func New(index int, value string, threshold int) Share {
	return Share{
		index:     index,
		value:     value,
		threshold: threshold,
		checksum:  checksumOf(value),
	}
}

func checksumOf(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Index, Value, Threshold, Checksum are read-only accessors; Share has no
// setters.
func (s Share) Index() int       { return s.index }
func (s Share) Value() string    { return s.value }
func (s Share) Threshold() int   { return s.threshold }
func (s Share) Checksum() string { return s.checksum }

// Equal compares every field, including the checksum.
func (s Share) Equal(other Share) bool {
	return s.index == other.index &&
		s.value == other.value &&
		s.threshold == other.threshold &&
		s.checksum == other.checksum
}

// VerifyChecksum recomputes SHA-256 over Value and compares it against
// Checksum in constant time, surfacing ShareChecksumMismatch on failure.
func (s Share) VerifyChecksum() error {
	want := checksumOf(s.value)
	if !secure.ConstantTimeCompare([]byte(want), []byte(s.checksum)) {
		return shamirerr.New(shamirerr.ShareChecksumMismatch, "index "+strconv.Itoa(s.index))
	}
	return nil
}

// String renders the canonical "index:threshold:checksum:value" form.
// Because the split stops after the third colon, a value containing
// colons round-trips correctly.
func (s Share) String() string {
	return strconv.Itoa(s.index) + ":" + strconv.Itoa(s.threshold) + ":" + s.checksum + ":" + s.value
}

// FromString parses the canonical share string form. Any deviation from
// exactly four colon-delimited fields, or a non-integer index/threshold,
// is reported as InvalidShareFormat.
func FromString(encoded string) (Share, error) {
	parts := strings.SplitN(encoded, ":", 4)
	if len(parts) != 4 {
		return Share{}, shamirerr.New(shamirerr.InvalidShareFormat, encoded)
	}

	index, err := strconv.Atoi(parts[0])
	if err != nil {
		return Share{}, shamirerr.New(shamirerr.InvalidShareFormat, encoded)
	}
	threshold, err := strconv.Atoi(parts[1])
	if err != nil {
		return Share{}, shamirerr.New(shamirerr.InvalidShareFormat, encoded)
	}

	return Share{
		index:     index,
		threshold: threshold,
		checksum:  parts[2],
		value:     parts[3],
	}, nil
}

// Record is the structured (JSON-object) form of a Share: exported fields
// so callers can marshal/unmarshal it directly with encoding/json. Extra
// keys present in the source object are ignored by json.Unmarshal, as
// required.
type Record struct {
	Index     int    `json:"index"`
	Value     string `json:"value"`
	Threshold int    `json:"threshold"`
	Checksum  string `json:"checksum"`
}

// ToRecord converts a Share to its structured form.
func (s Share) ToRecord() Record {
	return Record{Index: s.index, Value: s.value, Threshold: s.threshold, Checksum: s.checksum}
}

// FromRecord builds a Share from its structured form without validating
// it. A field missing from JSON decoded into Record is left at its zero
// value, which this function cannot tell apart from a real zero — FromMap
// is the entry point that detects missing keys.
func FromRecord(r Record) Share {
	return Share{index: r.Index, value: r.Value, threshold: r.Threshold, checksum: r.Checksum}
}

// FromMap builds a Share from an untyped map, such as one produced by
// decoding arbitrary JSON into map[string]interface{}. Unlike FromRecord,
// it can and does distinguish "missing field" from "zero value" and
// reports ShareMissingRequiredFields when a required key is absent or has
// the wrong type.
func FromMap(m map[string]interface{}) (Share, error) {
	index, ok := intField(m, "index")
	if !ok {
		return Share{}, shamirerr.New(shamirerr.ShareMissingRequiredFields, "index")
	}
	threshold, ok := intField(m, "threshold")
	if !ok {
		return Share{}, shamirerr.New(shamirerr.ShareMissingRequiredFields, "threshold")
	}
	value, ok := m["value"].(string)
	if !ok {
		return Share{}, shamirerr.New(shamirerr.ShareMissingRequiredFields, "value")
	}
	checksum, ok := m["checksum"].(string)
	if !ok {
		return Share{}, shamirerr.New(shamirerr.ShareMissingRequiredFields, "checksum")
	}

	return Share{index: index, value: value, threshold: threshold, checksum: checksum}, nil
}

// intField extracts an integer from m[key], accepting both json.Number-ish
// float64 (the shape encoding/json produces for untyped numbers) and int.
func intField(m map[string]interface{}, key string) (int, bool) {
	v, present := m[key]
	if !present {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
