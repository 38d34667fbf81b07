// Command butterknife evaluates the ButterKnife tweakable PRF over a
// message, tweak, and key, printing each of the eight output branches
// as hex. Given -flip, it evaluates a second time with that message
// bit flipped and prints the per-branch Hamming distance between the
// two runs, as a quick avalanche demonstration.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"math/bits"
	"os"

	"github.com/jedisct1/butterknife"
)

func main() {
	log := slog.New(slog.Default().Handler())

	message := flag.String("message", "00000000000000000000000000000000", "16-byte message, hex-encoded")
	tweak := flag.String("tweak", "00000000000000000000000000000000", "16-byte tweak, hex-encoded")
	key := flag.String("key", "00000000000000000000000000000000", "16-byte key, hex-encoded")
	flip := flag.Int("flip", -1, "message bit index (0..127) to flip for an avalanche demo; -1 disables it")
	flag.Parse()

	m, err := parseBlock("message", *message)
	if err != nil {
		log.Error("invalid input", "err", err)
		os.Exit(1)
	}
	tw, err := parseBlock("tweak", *tweak)
	if err != nil {
		log.Error("invalid input", "err", err)
		os.Exit(1)
	}
	k, err := parseBlock("key", *key)
	if err != nil {
		log.Error("invalid input", "err", err)
		os.Exit(1)
	}

	out := butterknife.Eval(m, tw, k)
	printBranches(out)

	if *flip < 0 {
		return
	}
	if *flip >= butterknife.BlockSize*8 {
		log.Error("flip index out of range", "flip", *flip, "max", butterknife.BlockSize*8-1)
		os.Exit(1)
	}

	flipped := m
	flipped[*flip/8] ^= 1 << (*flip % 8)
	out2 := butterknife.Eval(flipped, tw, k)

	fmt.Println()
	fmt.Printf("Hamming distance after flipping message bit %d:\n", *flip)
	for i := range butterknife.Branches {
		d := 0
		for j := range butterknife.BlockSize {
			d += bits.OnesCount8(out[i*butterknife.BlockSize+j] ^ out2[i*butterknife.BlockSize+j])
		}
		fmt.Printf("  branch %d: %3d bits\n", i, d)
	}
}

func parseBlock(name, s string) ([butterknife.BlockSize]byte, error) {
	var b [butterknife.BlockSize]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return b, fmt.Errorf("%s: %w", name, err)
	}
	if len(raw) != butterknife.BlockSize {
		return b, fmt.Errorf("%s: want %d bytes, got %d", name, butterknife.BlockSize, len(raw))
	}
	copy(b[:], raw)
	return b, nil
}

func printBranches(out [butterknife.OutputSize]byte) {
	for i := range butterknife.Branches {
		b := out[i*butterknife.BlockSize : (i+1)*butterknife.BlockSize]
		fmt.Printf("branch %d: %s\n", i, hex.EncodeToString(b))
	}
}
