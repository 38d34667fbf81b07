// Package mem provides small fixed-size byte helpers shared by
// ButterKnife's core transformation.
package mem

import "crypto/subtle"

// XOR returns a XOR b, byte by byte, using subtle.XORBytes so the
// operation runs in constant time with respect to the byte values
// involved.
func XOR(a, b [16]byte) [16]byte {
	var dst [16]byte
	subtle.XORBytes(dst[:], a[:], b[:])
	return dst
}
