package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAddress_Kinds(t *testing.T) {
	validAddr, ok := AddressFromEth(zeroNetworkAddress)
	require.True(t, ok)

	tests := []struct {
		name     string
		input    string
		wantKind InputKind
	}{
		{"account address", validAddr, KindAddress},
		{"private key", privKeyOne, KindPrivateKey},
		{"private key with 0x", "0x" + privKeyOne, KindPrivateKey},
		{"public key", pubKeyOfG, KindPublicKey},
		{"network address", zeroNetworkAddress, KindNetworkAddress},
		{"surrounding whitespace", "  " + zeroNetworkAddress + "\n", KindNetworkAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParseAddress(tt.input)
			if !ok {
				t.Fatalf("ParseAddress(%q) returned none", tt.input)
			}
			if p.DetectedAs != tt.wantKind {
				t.Fatalf("DetectedAs = %v, want %v", p.DetectedAs, tt.wantKind)
			}
			if p.Address == "" {
				t.Error("parsed record is missing the address")
			}
		})
	}
}

func TestParseAddress_Precedence(t *testing.T) {
	// 64 'a's is simultaneously a syntactically valid private key and a
	// decodable base58 string; the address interpretation loses only
	// because the embedded checksum does not match, so precedence resolves
	// it as a private key.
	ambiguous := strings.Repeat("a", 64)
	require.True(t, IsValidHex(ambiguous))
	require.True(t, IsValidBase58(ambiguous))

	p, ok := ParseAddress(ambiguous)
	require.True(t, ok)
	require.Equal(t, KindPrivateKey, p.DetectedAs)
	require.Equal(t, ambiguous, p.PrivateKey)
	require.True(t, VerifyAddress(p.Address))
}

func TestParseAddress_RecordShape(t *testing.T) {
	p, ok := ParseAddress(privKeyOne)
	require.True(t, ok)
	require.Equal(t, privKeyOne, p.PrivateKey)
	require.Equal(t, pubKeyOfG, p.PublicKey)
	require.Len(t, p.NetworkAddress, 40)
	require.Empty(t, p.Mnemonic, "a bare private key has no mnemonic")

	// Entering one step downstream drops the upstream field.
	p, ok = ParseAddress(pubKeyOfG)
	require.True(t, ok)
	require.Empty(t, p.PrivateKey)
	require.Equal(t, pubKeyOfG, p.PublicKey)

	// Canonical form of hex inputs is lowercase without the 0x prefix.
	p, ok = ParseAddress("0x" + strings.ToUpper(privKeyOne))
	require.True(t, ok)
	require.Equal(t, privKeyOne, p.PrivateKey)
}

func TestParseAddress_None(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"prose", "hello world"},
		{"wrong length hex", strings.Repeat("a", 50)},
		{"base58 with bad checksum and wrong hex length", "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p, ok := ParseAddress(tt.input); ok {
				t.Fatalf("ParseAddress(%q) = %+v, want none", tt.input, p)
			}
		})
	}
}
