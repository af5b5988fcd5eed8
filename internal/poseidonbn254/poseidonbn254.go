// Package poseidonbn254 exposes the two fixed Poseidon instances over the
// BN254 scalar field used for on-chain compatibility: width 3 (two data
// lanes plus capacity, 8 full + 57 partial rounds) for pair hashing, and
// width 4 (three data lanes plus capacity, 8 full + 56 partial rounds) for
// the balance-note commitment. The S-box is x -> x^5.
//
// The round-constant and mixing-matrix tables must reproduce, bit for bit,
// the hash the deployed verifier evaluates. They are therefore sourced from
// the pinned go-iden3-crypto module, the published Go distribution of the
// circomlib tables, instead of being transcribed by hand. Inputs here are
// always canonical residues, so the underlying permutation can only reject
// them on a programming error, which panics rather than producing a
// substitute digest.
package poseidonbn254

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"

	"noctis/internal/field/bn254fr"
)

// Instance parameters, fixed by the deployed verifier.
const (
	WidthPair           = 3
	WidthTriple         = 4
	FullRounds          = 8
	PartialRoundsPair   = 57
	PartialRoundsTriple = 56
)

// Hash2 hashes two field elements through the width-3 instance. Used for
// Merkle nodes and nullifier derivation.
func Hash2(a, b bn254fr.Element) bn254fr.Element {
	return hash(a.Big(), b.Big())
}

// Hash3 hashes three field elements through the width-4 instance. Used for
// balance-note commitments.
func Hash3(a, b, c bn254fr.Element) bn254fr.Element {
	return hash(a.Big(), b.Big(), c.Big())
}

func hash(inputs ...*big.Int) bn254fr.Element {
	out, err := poseidon.Hash(inputs)
	if err != nil {
		panic(fmt.Sprintf("poseidonbn254: permutation rejected canonical input: %v", err))
	}
	return bn254fr.FromBig(out)
}
