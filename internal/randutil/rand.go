// Package randutil builds reproducible random sources from integer seeds.
package randutil

import (
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every deck and agent in a match is built through here so that a seed
// reproduces the whole run.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Entropy returns a seeded byte stream, used where a library wants an
// io.Reader (hand id generation).
func Entropy(seed int64) *rand.ChaCha8 {
	var key [32]byte
	u := uint64(seed)
	for i := range 4 {
		binary.LittleEndian.PutUint64(key[i*8:], mix(u+uint64(i)*goldenRatio64))
	}
	return rand.NewChaCha8(key)
}

// Derive returns the seed for the n-th independent stream of a match, e.g.
// one per simulation session or one per agent.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) ^ mix(uint64(n)+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
