package share

import (
	"strconv"

	"github.com/Davincible/shamirfield/pkg/shamirerr"
)

func shareNotFound(index int) error {
	return shamirerr.New(shamirerr.ShareNotFound, strconv.Itoa(index))
}

// Collection is the ordered set of shares produced by one split, ordered
// by index 1..n.
type Collection []Share

// ByIndex looks up a share by its 1-based index, returning ShareNotFound
// if absent.
func (c Collection) ByIndex(index int) (Share, error) {
	for _, s := range c {
		if s.Index() == index {
			return s, nil
		}
	}
	return Share{}, shareNotFound(index)
}

// ForDistribution returns the collection keyed by index instead of
// ordered by it. Go's map iteration order is randomized per the
// specification of the language, so ranging over the returned map already
// gives callers the "implementation-defined random permutation, keyed by
// index" that spec.md calls for — no explicit shuffle is needed.
func (c Collection) ForDistribution() map[int]Share {
	m := make(map[int]Share, len(c))
	for _, s := range c {
		m[s.Index()] = s
	}
	return m
}
