package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/shamirfield/pkg/shamirerr"
)

func TestStringRoundTrip(t *testing.T) {
	s := New(3, "cG9ueWhvb2Y=", 2)

	parsed, err := FromString(s.String())
	require.NoError(t, err)
	assert.True(t, s.Equal(parsed))
}

func TestStringFormPreservesColonsInValue(t *testing.T) {
	s := New(1, "abc:def:ghi", 2)

	parsed, err := FromString(s.String())
	require.NoError(t, err)
	assert.Equal(t, "abc:def:ghi", parsed.Value())
}

func TestFromStringRejectsMalformed(t *testing.T) {
	for _, bad := range []string{
		"",
		"1:2:checksum",
		"not-a-number:2:checksum:value",
		"1:not-a-number:checksum:value",
	} {
		_, err := FromString(bad)
		require.Error(t, err, bad)
		kind, ok := shamirerr.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, shamirerr.InvalidShareFormat, kind)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := New(5, "payload", 3)
	rec := s.ToRecord()
	back := FromRecord(rec)
	assert.True(t, s.Equal(back))
}

func TestFromMapDetectsMissingFields(t *testing.T) {
	full := map[string]interface{}{
		"index": float64(1), "value": "v", "threshold": float64(2), "checksum": "c",
	}
	_, err := FromMap(full)
	require.NoError(t, err)

	for _, key := range []string{"index", "value", "threshold", "checksum"} {
		m := map[string]interface{}{}
		for k, v := range full {
			if k != key {
				m[k] = v
			}
		}
		_, err := FromMap(m)
		require.Error(t, err, key)
		kind, ok := shamirerr.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, shamirerr.ShareMissingRequiredFields, kind)
	}
}

func TestFromMapRejectsWrongTypes(t *testing.T) {
	m := map[string]interface{}{
		"index": "not-a-number", "value": "v", "threshold": float64(2), "checksum": "c",
	}
	_, err := FromMap(m)
	require.Error(t, err)
}

func TestVerifyChecksumDetectsTampering(t *testing.T) {
	s := New(1, "original-value", 2)
	require.NoError(t, s.VerifyChecksum())

	tampered := Share{index: s.Index(), value: "tampered-value", threshold: s.Threshold(), checksum: s.Checksum()}
	err := tampered.VerifyChecksum()
	require.Error(t, err)
	kind, ok := shamirerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, shamirerr.ShareChecksumMismatch, kind)
}

func TestCollectionByIndex(t *testing.T) {
	c := Collection{New(1, "a", 2), New(2, "b", 2), New(3, "c", 2)}

	got, err := c.ByIndex(2)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Value())

	_, err = c.ByIndex(99)
	require.Error(t, err)
	kind, ok := shamirerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, shamirerr.ShareNotFound, kind)
}

func TestForDistributionPreservesIdentity(t *testing.T) {
	c := Collection{New(1, "a", 2), New(2, "b", 2), New(3, "c", 2)}
	dist := c.ForDistribution()

	require.Len(t, dist, 3)
	for _, s := range c {
		got, ok := dist[s.Index()]
		require.True(t, ok)
		assert.True(t, s.Equal(got))
	}
}
