package branchkey_test

import (
	"testing"

	"github.com/jedisct1/butterknife/internal/branchkey"
)

func TestDerive_OnlyColumnTwoChanges(t *testing.T) {
	var roundTweakey [16]byte
	for i := range roundTweakey {
		roundTweakey[i] = byte(i + 1)
	}

	for branch := 1; branch <= 8; branch++ {
		derived := branchkey.Derive(roundTweakey, branch)
		for i := range derived {
			switch {
			case i >= 8 && i < 12:
				want := roundTweakey[i] ^ byte(branch)
				if derived[i] != want {
					t.Errorf("branch %d: derived[%d] = %#02x, want %#02x", branch, i, derived[i], want)
				}
			default:
				if derived[i] != roundTweakey[i] {
					t.Errorf("branch %d: derived[%d] = %#02x, want unchanged %#02x", branch, i, derived[i], roundTweakey[i])
				}
			}
		}
	}
}

func TestDerive_BranchesAreDistinct(t *testing.T) {
	var roundTweakey [16]byte
	seen := map[[16]byte]bool{}
	for branch := 1; branch <= 8; branch++ {
		derived := branchkey.Derive(roundTweakey, branch)
		if seen[derived] {
			t.Fatalf("branch %d collided with a previous branch key", branch)
		}
		seen[derived] = true
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	var roundTweakey [16]byte
	for i := range roundTweakey {
		roundTweakey[i] = byte(i)
	}
	before := roundTweakey

	_ = branchkey.Derive(roundTweakey, 3)

	if roundTweakey != before {
		t.Errorf("Derive mutated its input: %x != %x", roundTweakey, before)
	}
}
