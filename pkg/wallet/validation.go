package wallet

import (
	"strings"
)

// Base58 alphabet used by account addresses (excludes 0, O, I, l).
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsValidHex checks if a string contains only valid hex characters.
func IsValidHex(s string) bool {
	s = strings.ToLower(s)
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}

// IsValidBase58 checks if a string contains only valid Base58 characters.
// Base58 excludes: 0 (zero), O (uppercase o), I (uppercase i), l (lowercase L)
func IsValidBase58(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			return false
		}
	}
	return true
}

// InvalidBase58Chars returns any invalid Base58 characters in the input.
// Useful for providing helpful error messages to users.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}
