// Package rng provides the random sources used for shuffling and bot
// decisions. Everything stochastic in the engine draws from an injected
// Rng so that a match is fully reproducible from a seed.
package rng

import (
	rand "math/rand/v2"
	"time"
)

// Rng yields uniformly distributed values in [0, 1).
type Rng interface {
	Next() float64
}

// seeded is a splitmix-style 32-bit generator: the state advances by a
// fixed odd increment and two xor-multiply-xor rounds whiten the output.
type seeded struct {
	state uint32
}

// NewSeeded returns a deterministic Rng. The same seed always produces
// the same sequence.
func NewSeeded(seed uint32) Rng {
	return &seeded{state: seed}
}

func (s *seeded) Next() float64 {
	s.state += 0x6d2b79f5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// system is a non-reproducible source for ad hoc play, built on the
// rand/v2 PCG seeded from the wall clock.
type system struct {
	r *rand.Rand
}

// NewSystem returns an Rng seeded from the current time.
func NewSystem() Rng {
	u := uint64(time.Now().UnixNano())
	return &system{r: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))}
}

func (s *system) Next() float64 {
	return s.r.Float64()
}

// mix derives well-distributed 64-bit seeds from adjacent inputs so the
// two PCG state words never correlate.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
