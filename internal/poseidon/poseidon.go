// Package poseidon implements the vault's width-16 permutation hash over
// the BabyBear field.
//
// The permutation runs 21 rounds: 4 full-S-box rounds, 13 partial-S-box
// rounds, then 4 full-S-box rounds. Every round adds a fixed per-lane
// constant and applies the 16x16 circulant mixing matrix. The S-box is
// x -> x^7. Up to 8 inputs are absorbed into the first 8 lanes; the
// remaining 8 lanes are hiding capacity and are never fed directly. The
// digest is lane 0 after the final permutation.
package poseidon

import "noctis/internal/field/babybear"

const (
	// Width is the number of state lanes.
	Width = 16
	// Rate is the number of lanes that absorb input.
	Rate = 8
	// Capacity is the number of hiding lanes.
	Capacity = 8

	fullRoundsHalf = 4
	partialRounds  = 13
	totalRounds    = 2*fullRoundsHalf + partialRounds
)

// state is the permutation's register file.
type state [Width]babybear.Element

func (s *state) addConstants(round int) {
	for i := 0; i < Width; i++ {
		s[i] = s[i].Add(babybear.New(roundConstants[round][i]))
	}
}

func (s *state) fullSbox() {
	for i := 0; i < Width; i++ {
		s[i] = s[i].Sbox()
	}
}

func (s *state) partialSbox() {
	s[0] = s[0].Sbox()
}

func (s *state) mix() {
	var out state
	for i := 0; i < Width; i++ {
		var acc babybear.Element
		for j := 0; j < Width; j++ {
			acc = acc.Add(babybear.New(mdsMatrix[i][j]).Mul(s[j]))
		}
		out[i] = acc
	}
	*s = out
}

func (s *state) permute() {
	round := 0
	for r := 0; r < fullRoundsHalf; r++ {
		s.addConstants(round)
		s.fullSbox()
		s.mix()
		round++
	}
	for r := 0; r < partialRounds; r++ {
		s.addConstants(round)
		s.partialSbox()
		s.mix()
		round++
	}
	for r := 0; r < fullRoundsHalf; r++ {
		s.addConstants(round)
		s.fullSbox()
		s.mix()
		round++
	}
}

func (s *state) absorb(block []babybear.Element) {
	for i, v := range block {
		s[i] = s[i].Add(v)
	}
}

func (s *state) squeeze() babybear.Element {
	return s[0]
}

// Hash1 hashes a single field element.
func Hash1(a babybear.Element) babybear.Element {
	return hashBlock(a)
}

// Hash2 hashes two field elements. This is the pair hash used for Merkle
// nodes and fixed-note commitments.
func Hash2(a, b babybear.Element) babybear.Element {
	return hashBlock(a, b)
}

// Hash3 hashes three field elements.
func Hash3(a, b, c babybear.Element) babybear.Element {
	return hashBlock(a, b, c)
}

func hashBlock(inputs ...babybear.Element) babybear.Element {
	var s state
	s.absorb(inputs)
	s.permute()
	return s.squeeze()
}

// HashSlice hashes an input of arbitrary length, absorbing rate-sized
// blocks with a permutation after each. For inputs of at most Rate elements
// the digest matches the fixed-arity hashes above.
func HashSlice(inputs []babybear.Element) babybear.Element {
	var s state
	if len(inputs) == 0 {
		s.permute()
		return s.squeeze()
	}
	for len(inputs) > 0 {
		n := len(inputs)
		if n > Rate {
			n = Rate
		}
		s.absorb(inputs[:n])
		s.permute()
		inputs = inputs[n:]
	}
	return s.squeeze()
}
