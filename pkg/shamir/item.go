package shamir

import "github.com/Davincible/shamirfield/pkg/share"

// Item is the tagged Share-or-string admission type Combine accepts. This
// replaces the original dynamic iterable-of-(Share|string) design (see
// spec.md §9's re-architecture notes) with an explicit sum type a caller
// builds with ShareItem or StringItem, so there is no runtime type
// assertion on the hot path.
type Item struct {
	share   share.Share
	encoded string
	isShare bool
}

// ShareItem wraps an already-constructed Share.
func ShareItem(s share.Share) Item {
	return Item{share: s, isShare: true}
}

// StringItem wraps a share in its canonical string form, to be parsed
// during normalization.
func StringItem(encoded string) Item {
	return Item{encoded: encoded, isShare: false}
}

func (it Item) resolve() (share.Share, error) {
	if it.isShare {
		return it.share, nil
	}
	return share.FromString(it.encoded)
}

// Items converts a mixed slice of share.Share and string values into
// Items, for callers migrating from (or interoperating with) an
// untyped-iterable API. Any element that is neither a share.Share nor a
// string is reported as InvalidShareType — this is the one place in the
// package a runtime type check remains, and it exists only at this
// explicit conversion boundary.
func Items(raw []interface{}) ([]Item, error) {
	out := make([]Item, len(raw))
	for i, v := range raw {
		switch t := v.(type) {
		case share.Share:
			out[i] = ShareItem(t)
		case string:
			out[i] = StringItem(t)
		default:
			return nil, invalidShareType(i)
		}
	}
	return out, nil
}
