package search

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/hexvault/hexvault/pkg/wallet"
)

// CPUEngine implements the Engine interface using a pool of goroutine
// workers.
type CPUEngine struct {
	attempts  uint64    // atomic counter for total attempts
	startTime time.Time // when the search started
	workers   int       // number of concurrent workers
}

// NewCPUEngine creates a new CPU-based engine. If workers is 0, it defaults
// to the number of CPU cores.
func NewCPUEngine(workers int) *CPUEngine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUEngine{workers: workers}
}

// Name returns the implementation name.
func (e *CPUEngine) Name() string {
	return "CPU"
}

// Stats returns the current performance statistics.
func (e *CPUEngine) Stats() Stats {
	attempts := atomic.LoadUint64(&e.attempts)
	elapsed := time.Since(e.startTime).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Start begins the vanity search with the given configuration.
func (e *CPUEngine) Start(ctx context.Context, config *Config) (<-chan Result, error) {
	matcher, err := NewMatcher(config.Prefix, config.Suffix)
	if err != nil {
		return nil, err
	}

	resultChan := make(chan Result, 1)
	e.startTime = time.Now()
	atomic.StoreUint64(&e.attempts, 0)

	done := make(chan struct{})
	var closeOnce sync.Once

	workers := e.workers
	if config.Workers > 0 {
		workers = config.Workers
	}
	for i := 0; i < workers; i++ {
		go e.worker(ctx, matcher, resultChan, done, &closeOnce)
	}

	return resultChan, nil
}

// worker generates random secp256k1 keys and matches their account
// addresses until a match is found or the context is cancelled.
func (e *CPUEngine) worker(ctx context.Context, matcher *Matcher, resultChan chan<- Result, done chan struct{}, closeOnce *sync.Once) {
	var keyBytes [32]byte
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		default:
			if _, err := rand.Read(keyBytes[:]); err != nil {
				continue
			}

			// PrivKeyFromBytes reduces the scalar mod N, so every draw
			// yields a usable key.
			privKey, _ := btcec.PrivKeyFromBytes(keyBytes[:])
			privHex := hex.EncodeToString(privKey.Serialize())

			attempts := atomic.AddUint64(&e.attempts, 1)

			w, ok := wallet.AddressFromPrivateKey(privHex)
			if !ok {
				continue
			}

			if matcher.Matches(w.Address) {
				result := *w
				result.PrivateKey = privHex
				closeOnce.Do(func() {
					resultChan <- Result{Wallet: result, Attempts: attempts}
					close(done)
				})
				return
			}
		}
	}
}
