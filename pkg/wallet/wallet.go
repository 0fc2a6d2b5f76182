// Package wallet implements the one-way key chain behind vault account
// addresses: mnemonic -> private key -> public key -> network address ->
// checksummed base58 address, plus the reverse detect-and-parse path.
//
// Every operation is a pure function of its input. Malformed input is an
// expected condition and reported through a comma-ok result; only the two
// documented contract violations surface as errors.
package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// Wallet is the record produced by every derivation call. Address is always
// set on success; the other fields are present only when the input sits far
// enough upstream in the chain to derive them. Records are never mutated
// after construction.
type Wallet struct {
	Address        string `json:"address"`
	NetworkAddress string `json:"networkAddress,omitempty"`
	PublicKey      string `json:"publicKey,omitempty"`
	PrivateKey     string `json:"privateKey,omitempty"`
	Mnemonic       string `json:"mnemonic,omitempty"`
}

// ErrInvalidMnemonic is returned by RestoreWallet when the phrase fails its
// BIP-39 checksum. The message is part of the contract and must not change.
var ErrInvalidMnemonic = errors.New("Invalid BIP-39 mnemonic")

// BIP-44 derivation constants for m/44'/60'/0'/0/0: first account, first
// external address, Ethereum coin type.
const (
	bip44Purpose   uint32 = 44
	coinTypeEther  uint32 = 60
	hardenedOffset uint32 = 0x80000000

	// mnemonicEntropyBits yields a 12-word phrase.
	mnemonicEntropyBits = 128
)

// derivationPath is m/44'/60'/0'/0/0 as hdkeychain child indexes.
var derivationPath = []uint32{
	bip44Purpose + hardenedOffset,
	coinTypeEther + hardenedOffset,
	0 + hardenedOffset, // account
	0,                  // external chain
	0,                  // address index
}

// NewWallet generates a fresh 12-word mnemonic and derives the full record
// from it. The result carries every field of the chain; a partial record is
// never returned.
func NewWallet() (*Wallet, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	return walletFromMnemonic(mnemonic)
}

// RestoreWallet rebuilds the record for an existing mnemonic. The same
// phrase always yields a byte-identical record to the one generated with
// it. Returns ErrInvalidMnemonic when the phrase fails its checksum.
func RestoreWallet(mnemonic string) (*Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return walletFromMnemonic(mnemonic)
}

// walletFromMnemonic is the shared derivation step: BIP-39 seed with an
// empty passphrase, BIP-32 master key, child at m/44'/60'/0'/0/0, then the
// address chain.
func walletFromMnemonic(mnemonic string) (*Wallet, error) {
	seed := bip39.NewSeed(mnemonic, "")

	// Mainnet params only select extended-key version bytes; they do not
	// affect the derived key material.
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}

	child := master
	for _, index := range derivationPath {
		if child, err = child.Derive(index); err != nil {
			return nil, fmt.Errorf("derive child key: %w", err)
		}
	}

	// A seed-derived node always carries a private key; this guards the
	// structurally impossible case.
	privKey, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("derived node has no private key: %w", err)
	}

	privHex := hex.EncodeToString(privKey.Serialize())
	w, ok := AddressFromPrivateKey(privHex)
	if !ok {
		return nil, errors.New("address derivation failed for derived private key")
	}
	w.PrivateKey = privHex
	w.Mnemonic = mnemonic
	return w, nil
}
