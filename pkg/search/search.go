// Package search implements concurrent vanity search over account
// addresses: generate random keys, run each through the wallet derivation
// chain, and keep the first address matching a wanted pattern.
package search

import (
	"context"

	"github.com/hexvault/hexvault/pkg/wallet"
)

// Config holds the search parameters.
type Config struct {
	Prefix  string // wanted address prefix, matched after the constant lead-in
	Suffix  string // wanted address suffix
	Workers int    // number of concurrent workers; 0 means one per CPU core
}

// Result contains a successfully found wallet and the attempt count at the
// time of the match.
type Result struct {
	Wallet   wallet.Wallet
	Attempts uint64
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // total number of addresses derived
	HashRate    float64 // current derivations per second
	ElapsedSecs float64 // time elapsed since start
}

// Engine defines the contract for search backends.
type Engine interface {
	// Start begins the vanity search with the given configuration. It
	// returns a channel that receives the first match; the search can be
	// cancelled via the context.
	Start(ctx context.Context, config *Config) (<-chan Result, error)

	// Stats returns the current performance statistics. Safe to call
	// concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name.
	Name() string
}
