package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Private key 1 maps to the secp256k1 generator point, so the expected
// uncompressed public key is a curve constant.
const (
	privKeyOne = "0000000000000000000000000000000000000000000000000000000000000001"
	pubKeyOfG  = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

var zeroNetworkAddress = strings.Repeat("0", 40)

func TestAddressFromEth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"all zero", zeroNetworkAddress, true},
		{"with 0x prefix", "0x" + zeroNetworkAddress, true},
		{"uppercase hex", strings.Repeat("A", 40), true},
		{"39 chars", strings.Repeat("0", 39), false},
		{"41 chars", strings.Repeat("0", 41), false},
		{"empty", "", false},
		{"non-hex characters", strings.Repeat("g", 40), false},
		{"0x only stripped once", "0x0x" + strings.Repeat("0", 36), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, ok := AddressFromEth(tt.input)
			if ok != tt.want {
				t.Fatalf("AddressFromEth(%q) ok = %v, want %v", tt.input, ok, tt.want)
			}
			if ok && !VerifyAddress(addr) {
				t.Errorf("AddressFromEth(%q) produced address failing checksum: %s", tt.input, addr)
			}
		})
	}
}

func TestAddressFromEth_GoldenZeroAddress(t *testing.T) {
	// The all-zero network address needs no randomness, so its account
	// address is a fixed value of the format.
	first, ok := AddressFromEth(zeroNetworkAddress)
	require.True(t, ok)

	second, ok := AddressFromEth(zeroNetworkAddress)
	require.True(t, ok)
	require.Equal(t, first, second)

	// 0x prefix and case are stripped before hashing, so variants of the
	// same network address land on the same account address.
	prefixed, ok := AddressFromEth("0x" + zeroNetworkAddress)
	require.True(t, ok)
	require.Equal(t, first, prefixed)

	// The zero coin-id and version bytes render as four leading '1's.
	require.True(t, strings.HasPrefix(first, "1111"), "address %s missing lead-in", first)
	require.True(t, VerifyAddress(first))
}

func TestAddressFromEth_CaseInsensitive(t *testing.T) {
	mixed := "AbCdEf1234567890aBcDeF1234567890ABCDEF12"
	lower, ok := AddressFromEth(strings.ToLower(mixed))
	require.True(t, ok)

	fromMixed, ok := AddressFromEth(mixed)
	require.True(t, ok)
	require.Equal(t, lower, fromMixed)
}

func TestAddressFromPublicKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"generator point", pubKeyOfG, true},
		{"with 0x prefix", "0x" + pubKeyOfG, true},
		{"129 chars", pubKeyOfG[:129], false},
		{"131 chars", pubKeyOfG + "0", false},
		{"non-hex", strings.Repeat("z", 130), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := AddressFromPublicKey(tt.input)
			if ok != tt.want {
				t.Fatalf("AddressFromPublicKey(%q) ok = %v, want %v", tt.input, ok, tt.want)
			}
			if !ok {
				return
			}
			if len(w.NetworkAddress) != 40 {
				t.Errorf("network address %q is not 40 hex chars", w.NetworkAddress)
			}
			if !VerifyAddress(w.Address) {
				t.Errorf("derived address %s fails checksum", w.Address)
			}
			if w.PrivateKey != "" || w.Mnemonic != "" {
				t.Error("public key derivation must not invent upstream fields")
			}
		})
	}
}

func TestAddressFromPrivateKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"scalar one", privKeyOne, true},
		{"with 0x prefix", "0x" + privKeyOne, true},
		{"63 chars", privKeyOne[:63], false},
		{"65 chars", privKeyOne + "0", false},
		{"non-hex", strings.Repeat("x", 64), false},
		{"zero scalar", strings.Repeat("0", 64), false},
		{"scalar above curve order", strings.Repeat("f", 64), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := AddressFromPrivateKey(tt.input)
			if ok != tt.want {
				t.Fatalf("AddressFromPrivateKey(%q) ok = %v, want %v", tt.input, ok, tt.want)
			}
			if !ok {
				return
			}
			if w.PublicKey != pubKeyOfG {
				t.Errorf("public key = %s, want generator point", w.PublicKey)
			}
			if !VerifyAddress(w.Address) {
				t.Errorf("derived address %s fails checksum", w.Address)
			}
		})
	}
}

func TestAddressChain_Consistency(t *testing.T) {
	// Walking the chain from the private key must agree with entering it
	// one step downstream.
	fromPriv, ok := AddressFromPrivateKey(privKeyOne)
	require.True(t, ok)

	fromPub, ok := AddressFromPublicKey(fromPriv.PublicKey)
	require.True(t, ok)
	require.Equal(t, fromPriv.Address, fromPub.Address)
	require.Equal(t, fromPriv.NetworkAddress, fromPub.NetworkAddress)

	fromEth, ok := AddressFromEth(fromPub.NetworkAddress)
	require.True(t, ok)
	require.Equal(t, fromPub.Address, fromEth)
}

func TestAddressChain_Deterministic(t *testing.T) {
	a, ok := AddressFromPrivateKey(privKeyOne)
	require.True(t, ok)
	b, ok := AddressFromPrivateKey(privKeyOne)
	require.True(t, ok)
	require.Equal(t, a, b)
}
