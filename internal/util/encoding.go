package util

import (
	"encoding/base64"

	"golang.org/x/text/unicode/norm"
)

func Normalize(s string) string {
	return norm.NFKD.String(s)
}

// NormalizeBytes returns the NFKD form of b in a new slice. Unlike
// norm.Form.Bytes it never aliases b, so b can be wiped independently.
func NormalizeBytes(b []byte) []byte {
	return norm.NFKD.Append(nil, b...)
}

// EncodeBase64URL returns the unpadded URL-safe base64 encoding of b as raw
// ASCII bytes.
func EncodeBase64URL(b []byte) []byte {
	dst := make([]byte, base64.RawURLEncoding.EncodedLen(len(b)))
	base64.RawURLEncoding.Encode(dst, b)
	return dst
}
