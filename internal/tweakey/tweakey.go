// Package tweakey implements the Deoxys-BC-256 tweakey schedule
// ButterKnife derives its sixteen round tweakeys from.
//
// The schedule's per-round loop (apply the H permutation to both
// tweakey halves, apply the G LFSR to TK1 only, re-derive the round
// tweakey) follows the same shape as oasisprotocol/deoxysii's
// deriveSubTweakKeys, adapted from that AEAD's big-endian word packing
// to the column-major byte layout this construction uses throughout.
package tweakey

// Rounds is the number of round tweakeys a Schedule holds.
const Rounds = 16

// Schedule is the ordered sequence of 16 round tweakeys derived from a
// tweak and a key. It depends only on (tweak, key); the message never
// influences it.
type Schedule [Rounds][16]byte

// c0 is the fixed row constant XORed into column 0 of every round
// tweakey, independent of the round index.
var c0 = [4]byte{0x01, 0x02, 0x04, 0x08}

// rcon holds the round constants injected into column 1. Only the
// first Rounds (16) entries are ever consumed; the 17th (0x72) is the
// reference table's dead entry and is kept here purely for fidelity to
// the published constants.
var rcon = [17]byte{
	0x2f, 0x5e, 0xbc, 0x63, 0xc6, 0x97, 0x35, 0x6a,
	0xd4, 0xb3, 0x7d, 0xfa, 0xef, 0xc5, 0x91, 0x39,
	0x72,
}

// perm is the H permutation's byte-position shuffle: new[perm[i]] = old[i].
var perm = [16]int{1, 6, 11, 12, 5, 10, 15, 0, 9, 14, 3, 4, 13, 2, 7, 8}

// Build derives the 16 round tweakeys from tweak and key, per the
// Deoxys-BC-256 schedule: TK1 starts as tweak, TK2 starts as key, and
// each round XOR-combines the current TK1/TK2 with the c0/RCON
// constants before permuting TK1 and TK2 (H) and applying the G
// (alpha=2) LFSR to TK1 alone.
func Build(tweak, key [16]byte) Schedule {
	var sched Schedule

	tk1, tk2 := tweak, key
	for r := range Rounds {
		var rt [16]byte
		for row := range 4 {
			rt[row] = tk1[row] ^ tk2[row] ^ c0[row]
			rt[4+row] = tk1[4+row] ^ tk2[4+row] ^ rcon[r]
		}
		for i := 8; i < 16; i++ {
			rt[i] = tk1[i] ^ tk2[i]
		}
		sched[r] = rt

		tk1, tk2 = h(tk1), h(tk2)
		tk1 = g(tk1)
	}

	return sched
}

// h applies the H permutation to a tweakey half.
func h(tk [16]byte) [16]byte {
	var out [16]byte
	for i := range 16 {
		out[perm[i]] = tk[i]
	}
	return out
}

// g applies the alpha=2 LFSR to every byte of TK1.
func g(tk [16]byte) [16]byte {
	var out [16]byte
	for i, b := range tk {
		out[i] = ((b << 1) | (((b & 0x20) >> 5) ^ ((b & 0x80) >> 7))) & 0xFF
	}
	return out
}
