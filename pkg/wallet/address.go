package wallet

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// Account address layout:
//
//	base58(coinID(3) || version(1) || Keccak256(networkAddressHex)(32) || checksum(4))
//
// The Keccak digest covers the ASCII bytes of the lowercase 40-char network
// address, not its decoded 20 bytes. The checksum is the first 4 bytes of
// Blake2b-256 over everything before it.
const (
	// versionByte is the address format version.
	versionByte = 0x00

	// checksumLen is the number of Blake2b-256 bytes appended to the payload.
	checksumLen = 4

	// Expected input lengths in hex characters, after stripping an optional 0x.
	networkAddressHexLen = 40  // 20-byte network address
	privateKeyHexLen     = 64  // 32-byte secp256k1 scalar
	publicKeyHexLen      = 130 // 1-byte format tag + 64 bytes of coordinates
)

// coinIDPrefix identifies the coin inside the address payload.
var coinIDPrefix = [3]byte{0x00, 0x00, 0x00}

// normalizeHex lowercases s and strips an optional 0x prefix.
func normalizeHex(s string) string {
	return strings.TrimPrefix(strings.ToLower(s), "0x")
}

// AddressFromEth converts a 20-byte network address in hex into the
// checksummed base58 account address. Returns false unless the input is
// exactly 40 hex characters.
func AddressFromEth(ethHex string) (string, bool) {
	ethHex = normalizeHex(ethHex)
	if len(ethHex) != networkAddressHexLen || !IsValidHex(ethHex) {
		return "", false
	}

	// The hex string itself is hashed here, unlike the public key step
	// where the raw bytes are.
	hash := crypto.Keccak256([]byte(ethHex))

	payload := make([]byte, 0, len(coinIDPrefix)+1+len(hash)+checksumLen)
	payload = append(payload, coinIDPrefix[:]...)
	payload = append(payload, versionByte)
	payload = append(payload, hash...)

	checksum := blake2b.Sum256(payload)
	payload = append(payload, checksum[:checksumLen]...)

	return base58.Encode(payload), true
}

// AddressFromPublicKey derives the network address and account address for
// a 65-byte uncompressed secp256k1 public key in hex. Returns false unless
// the input is exactly 130 hex characters.
func AddressFromPublicKey(pubHex string) (*Wallet, bool) {
	pubHex = normalizeHex(pubHex)
	if len(pubHex) != publicKeyHexLen {
		return nil, false
	}
	pubBytes, err := hex.DecodeString(pubHex)
	if err != nil {
		return nil, false
	}

	// Skip the 1-byte curve format tag, hash the 64 coordinate bytes and
	// keep the last 20 bytes, the same scheme as an Ethereum account.
	hash := crypto.Keccak256(pubBytes[1:])
	networkAddress := hex.EncodeToString(hash[len(hash)-20:])

	address, ok := AddressFromEth(networkAddress)
	if !ok {
		return nil, false
	}

	return &Wallet{
		Address:        address,
		NetworkAddress: networkAddress,
	}, true
}

// AddressFromPrivateKey derives the public key, network address and account
// address for a 32-byte secp256k1 private key in hex. Returns false unless
// the input is exactly 64 hex characters encoding a scalar in [1, N-1].
func AddressFromPrivateKey(privHex string) (*Wallet, bool) {
	privHex = normalizeHex(privHex)
	if len(privHex) != privateKeyHexLen {
		return nil, false
	}
	privBytes, err := hex.DecodeString(privHex)
	if err != nil {
		return nil, false
	}

	// ToECDSA also rejects scalars outside the curve order.
	key, err := crypto.ToECDSA(privBytes)
	if err != nil {
		return nil, false
	}
	pubHex := hex.EncodeToString(crypto.FromECDSAPub(&key.PublicKey))

	w, ok := AddressFromPublicKey(pubHex)
	if !ok {
		return nil, false
	}
	w.PublicKey = pubHex
	return w, true
}
