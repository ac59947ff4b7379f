package shamir

import "github.com/Davincible/shamirfield/pkg/share"

// Manager is a pure dispatcher over an immutable Config: it holds no
// cryptographic state of its own and is safe to share across goroutines.
// Unlike the process-wide static facade this module's spec explicitly
// excludes (see SPEC_FULL.md §5), a Manager is an ordinary value the
// caller constructs and passes around.
type Manager struct {
	cfg Config
}

// NewManager builds a Manager over cfg.
func NewManager(cfg Config) Manager {
	return Manager{cfg: cfg}
}

// GetConfig returns the Manager's Config.
func (m Manager) GetConfig() Config {
	return m.cfg
}

// WithConfig returns a new Manager over a different Config, leaving m
// unmodified.
func (m Manager) WithConfig(cfg Config) Manager {
	return Manager{cfg: cfg}
}

// Split splits secret into n shares, any k of which reconstruct it.
func (m Manager) Split(secret []byte, k, n int) (share.Collection, error) {
	return Split(m.cfg, secret, k, n)
}

// Combine reconstructs the secret from items (each a Share or an encoded
// share string — see ShareItem/StringItem).
func (m Manager) Combine(items []Item) ([]byte, error) {
	return Combine(m.cfg, items)
}

// SplitString is Split followed by rendering each share to its canonical
// string form, for callers that only want the wire representation.
func (m Manager) SplitString(secret []byte, k, n int) ([]string, error) {
	shares, err := m.Split(secret, k, n)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(shares))
	for i, s := range shares {
		out[i] = s.String()
	}
	return out, nil
}

// CombineStrings is a convenience wrapper over Combine for callers holding
// only the canonical share strings.
func (m Manager) CombineStrings(encoded []string) ([]byte, error) {
	items := make([]Item, len(encoded))
	for i, e := range encoded {
		items[i] = StringItem(e)
	}
	return m.Combine(items)
}

// AreCompatible reports whether every share shares the same threshold.
// Trivially true for fewer than two shares.
func (m Manager) AreCompatible(shares ...share.Share) bool {
	if len(shares) < 2 {
		return true
	}
	threshold := shares[0].Threshold()
	for _, s := range shares[1:] {
		if s.Threshold() != threshold {
			return false
		}
	}
	return true
}

// CompatibilityReport lists the indices of shares whose threshold
// disagrees with the majority threshold in the set, for diagnostics
// beyond the plain boolean AreCompatible returns.
type CompatibilityReport struct {
	Compatible        bool
	ExpectedThreshold int
	MismatchedIndices []int
}

// CheckCompatibility builds a CompatibilityReport for shares.
func (m Manager) CheckCompatibility(shares ...share.Share) CompatibilityReport {
	if len(shares) == 0 {
		return CompatibilityReport{Compatible: true}
	}

	counts := map[int]int{}
	for _, s := range shares {
		counts[s.Threshold()]++
	}

	majority := shares[0].Threshold()
	for threshold, count := range counts {
		if count > counts[majority] {
			majority = threshold
		}
	}

	var mismatched []int
	for _, s := range shares {
		if s.Threshold() != majority {
			mismatched = append(mismatched, s.Index())
		}
	}

	return CompatibilityReport{
		Compatible:        len(mismatched) == 0,
		ExpectedThreshold: majority,
		MismatchedIndices: mismatched,
	}
}
