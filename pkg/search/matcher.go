package search

import (
	"fmt"
	"strings"

	"github.com/hexvault/hexvault/pkg/wallet"
)

// AddressLeadIn is the constant prefix of every account address: the three
// coin-id bytes and the version byte are all zero, and base58 renders each
// leading zero byte as '1'. It carries no entropy, so prefix patterns are
// matched after it.
const AddressLeadIn = "1111"

// Matcher tests candidate addresses against a prefix/suffix pattern.
// Matching is case-sensitive, as base58 is.
type Matcher struct {
	prefix string
	suffix string
}

// NewMatcher validates the pattern and creates a matcher. Patterns must use
// only base58 alphabet characters.
func NewMatcher(prefix, suffix string) (*Matcher, error) {
	for _, pattern := range []string{prefix, suffix} {
		if invalid := wallet.InvalidBase58Chars(pattern); len(invalid) > 0 {
			return nil, fmt.Errorf("pattern %q contains non-base58 characters %q", pattern, string(invalid))
		}
	}
	return &Matcher{prefix: prefix, suffix: suffix}, nil
}

// Matches checks if an address matches the prefix and suffix criteria.
// The prefix is compared after the "1111" lead-in.
func (m *Matcher) Matches(address string) bool {
	if m.prefix != "" {
		searchAddr := strings.TrimPrefix(address, AddressLeadIn)
		if !strings.HasPrefix(searchAddr, m.prefix) {
			return false
		}
	}
	if m.suffix != "" && !strings.HasSuffix(address, m.suffix) {
		return false
	}
	return true
}
