// Package codec turns identifiers into their on-disk representation and back.
//
// Obfuscate is a positional XOR keyed by a salt. It only deters casual
// inspection; anyone holding the salt can reverse it. The transform is its
// own inverse, Deobfuscate exists for readability at call sites.
package codec

import (
	"encoding/hex"
)

// Obfuscate returns out[i] = plain[i] ^ salt[i%len(salt)] ^ byte(i+1).
// The input is never modified.
func Obfuscate(plain, salt []byte) []byte {
	out := make([]byte, len(plain))
	for i, b := range plain {
		out[i] = b ^ byte(i+1)
		if len(salt) > 0 {
			out[i] ^= salt[i%len(salt)]
		}
	}
	return out
}

// Deobfuscate reverses Obfuscate with the same salt
func Deobfuscate(data, salt []byte) []byte {
	return Obfuscate(data, salt)
}

// ToHex encodes data as lowercase hex without separators
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes exactly len(text)/2 bytes. A trailing odd nibble is
// ignored, any non-hex character is an error.
func FromHex(text string) ([]byte, error) {
	return hex.DecodeString(text[:len(text)&^1])
}

// Mask XORs data with a repeating key. Like Obfuscate it is self-inverse.
func Mask(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b
		if len(key) > 0 {
			out[i] ^= key[i%len(key)]
		}
	}
	return out
}
