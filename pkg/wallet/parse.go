package wallet

import (
	"strings"
)

// InputKind tags which field of the chain a parsed input supplied.
type InputKind int

const (
	KindAddress        InputKind = iota // checksummed base58 account address
	KindPrivateKey                      // 32-byte secp256k1 scalar, hex
	KindPublicKey                       // 65-byte uncompressed curve point, hex
	KindNetworkAddress                  // 20-byte network address, hex
)

// String returns the kind name.
func (k InputKind) String() string {
	switch k {
	case KindAddress:
		return "address"
	case KindPrivateKey:
		return "private key"
	case KindPublicKey:
		return "public key"
	case KindNetworkAddress:
		return "network address"
	default:
		return "unknown"
	}
}

// Parsed is a wallet record together with the detected kind of the input
// that produced it.
type Parsed struct {
	Wallet
	DetectedAs InputKind `json:"detectedAs"`
}

// ParseAddress detects what kind of chain value text holds and recovers
// everything derivable downstream of it. This is a structural classifier:
// a string that merely looks like a private key is treated as one.
//
// All four interpretations are evaluated before one is chosen, so the
// selection depends only on the fixed precedence address > private key >
// public key > network address, never on evaluation order. Returns false
// when no interpretation fits.
func ParseAddress(text string) (*Parsed, bool) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(text), "0x")
	canonical := normalizeHex(trimmed)

	isAddr := VerifyAddress(trimmed)
	fromPriv, okPriv := AddressFromPrivateKey(trimmed)
	fromPub, okPub := AddressFromPublicKey(trimmed)
	fromEth, okEth := AddressFromEth(trimmed)

	switch {
	case isAddr:
		return &Parsed{
			Wallet:     Wallet{Address: trimmed},
			DetectedAs: KindAddress,
		}, true
	case okPriv:
		w := *fromPriv
		w.PrivateKey = canonical
		return &Parsed{Wallet: w, DetectedAs: KindPrivateKey}, true
	case okPub:
		w := *fromPub
		w.PublicKey = canonical
		return &Parsed{Wallet: w, DetectedAs: KindPublicKey}, true
	case okEth:
		return &Parsed{
			Wallet:     Wallet{Address: fromEth, NetworkAddress: canonical},
			DetectedAs: KindNetworkAddress,
		}, true
	}
	return nil, false
}
