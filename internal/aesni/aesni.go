// Package aesni provides the single AES round primitive ButterKnife's
// tweakable PRF is built from: SubBytes, ShiftRows, MixColumns, and
// AddRoundKey, applied in that order to a 128-bit state.
//
// ButterKnife never uses the AES-standard "final round" (which omits
// MixColumns) — every round of the construction, including the trunk
// and branch closing rounds, is a full round. Round therefore serves
// both purposes of the reference paper's aes_round and
// aes_round_last_like: there is only one round shape to implement.
//
// On amd64 (without the purego build tag) and a CPU with AES-NI, Round
// runs a single AESENC instruction. Everywhere else, including arm64,
// it uses a portable, constant-time, bitsliced Go implementation.
package aesni

// Round applies one AES round (SubBytes, ShiftRows, MixColumns,
// AddRoundKey) to state using roundKey, returning the new state.
//
// Passing an all-zero roundKey yields the "closing round" edge case
// of the trunk and branch tails: a full round with no key material
// mixed in.
func Round(state, roundKey [16]byte) [16]byte {
	return round(state, roundKey)
}
