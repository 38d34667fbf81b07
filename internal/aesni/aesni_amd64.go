//go:build amd64 && !purego

package aesni

import "golang.org/x/sys/cpu"

// UseHardwareAES is set if the current CPU supports the AES-NI
// instruction set. It does not change Round's output, only which path
// computes it.
var UseHardwareAES = cpu.X86.HasAES //nolint:gochecknoglobals // should only check once

//go:noescape
func roundAsm(state, roundKey, out *[16]byte)

func round(state, roundKey [16]byte) [16]byte {
	if !UseHardwareAES {
		return roundGeneric(state, roundKey)
	}

	var out [16]byte
	roundAsm(&state, &roundKey, &out)
	return out
}
