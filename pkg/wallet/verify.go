package wallet

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// VerifyAddress reports whether addr decodes as base58 and its embedded
// 4-byte checksum matches Blake2b-256 of the rest. Nothing beyond the
// checksum is checked: a short payload whose checksum happens to collide
// still verifies, the accepted limit of a 32-bit checksum.
func VerifyAddress(addr string) bool {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return false
	}
	if len(decoded) <= checksumLen {
		return false
	}

	payload := decoded[:len(decoded)-checksumLen]
	checksum := decoded[len(decoded)-checksumLen:]

	digest := blake2b.Sum256(payload)
	return bytes.Equal(digest[:checksumLen], checksum)
}
