// Package butterknife implements ButterKnife, a Tweakable
// Pseudorandom Function (TPRF) that expands a 128-bit message block,
// under a 128-bit key and a 128-bit tweak, into 1024 bits of
// pseudorandom output arranged as eight 128-bit branches.
//
// ButterKnife follows the masked Iterate-Fork-Iterate (mIFI) design
// paradigm: a shared seven-round AES trunk (keyed by the Deoxys-BC-256
// tweakey schedule) is forked into eight parallel branches, each
// iterated for a further seven rounds under its own per-branch
// tweakey, and the whole construction is closed by XOR-masking every
// branch's output with the fork state.
//
// Eval is the construction's only exported operation. It is a pure,
// total function: fixed-size inputs, a fixed-size output, no errors,
// no allocation beyond the returned array, and safe for concurrent use
// from multiple goroutines with no shared state.
package butterknife

import (
	"github.com/jedisct1/butterknife/internal/aesni"
	"github.com/jedisct1/butterknife/internal/branchkey"
	"github.com/jedisct1/butterknife/internal/mem"
	"github.com/jedisct1/butterknife/internal/tweakey"
)

const (
	// BlockSize is the size, in bytes, of the message, tweak, and key.
	BlockSize = 16

	// TweakSize is the size, in bytes, of the tweak. It is always equal
	// to BlockSize.
	TweakSize = BlockSize

	// KeySize is the size, in bytes, of the key. It is always equal to
	// BlockSize.
	KeySize = BlockSize

	// Branches is the number of independent 128-bit branches Eval
	// produces.
	Branches = 8

	// OutputSize is the size, in bytes, of Eval's output: Branches
	// branches of BlockSize bytes each.
	OutputSize = Branches * BlockSize

	trunkRounds  = 6 // rounds 1..6, keyed by round tweakeys 1..6
	branchRounds = 7 // rounds 1..7, keyed by round tweakeys 8..14
)

var zero [BlockSize]byte

// Eval evaluates ButterKnife over message under tweak and key,
// returning the eight 128-bit branches concatenated in order: branch i
// occupies output bytes [16*i, 16*(i+1)).
func Eval(message, tweak, key [BlockSize]byte) [OutputSize]byte {
	sched := tweakey.Build(tweak, key)

	// Trunk: whiten with round tweakey 0, then six full rounds keyed by
	// round tweakeys 1..6, then one zero-keyed closing round. The
	// closing round's corresponding round tweakey (index 7) is not used
	// here — it drives the per-branch whitening step below instead.
	state := mem.XOR(message, sched[0])
	for r := 1; r <= trunkRounds; r++ {
		state = aesni.Round(state, sched[r])
	}
	state = aesni.Round(state, zero)

	// Fork: every branch starts from the trunk's output, and that same
	// value becomes the feed-forward mask applied at the very end.
	fork := state

	var out [OutputSize]byte
	for i := range Branches {
		branchConstant := i + 1

		branch := mem.XOR(fork, branchkey.Derive(sched[7], branchConstant))
		for r := range branchRounds {
			branch = aesni.Round(branch, branchkey.Derive(sched[8+r], branchConstant))
		}
		branch = aesni.Round(branch, zero)

		branch = mem.XOR(branch, branchkey.Derive(sched[15], branchConstant))
		branch = mem.XOR(branch, fork)

		copy(out[i*BlockSize:(i+1)*BlockSize], branch[:])
	}

	return out
}
