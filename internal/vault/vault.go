// Package vault implements the BN254 note lifecycle that mirrors the
// on-chain contract: commitments, spending keys and nullifiers are all
// derived with the deployed Poseidon instances, so every value produced
// here matches what the contract computes.
package vault

import (
	"crypto/rand"
	"fmt"

	"noctis/internal/field/bn254fr"
	"noctis/internal/merkle"
	"noctis/internal/poseidonbn254"
)

// Note is an unspent balance note, held client side. Secret doubles as the
// spending key; Randomness blinds the commitment.
type Note struct {
	Secret     bn254fr.Element
	Balance    bn254fr.Element
	Randomness bn254fr.Element
}

// NewNote draws a fresh note with the given balance from crypto/rand.
func NewNote(balance bn254fr.Element) (Note, error) {
	secret, err := RandomElement()
	if err != nil {
		return Note{}, fmt.Errorf("vault: sampling secret: %w", err)
	}
	randomness, err := RandomElement()
	if err != nil {
		return Note{}, fmt.Errorf("vault: sampling randomness: %w", err)
	}
	return Note{Secret: secret, Balance: balance, Randomness: randomness}, nil
}

// RandomElement samples a uniform-looking field element by reducing 32
// random bytes modulo q.
func RandomElement() (bn254fr.Element, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return bn254fr.Zero(), err
	}
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			limbs[i] |= uint64(buf[8*i+j]) << (8 * j)
		}
	}
	return bn254fr.FromLimbs(limbs), nil
}

// SpendingKeyHash derives the public key half of a note: the pair hash of
// the secret with zero. The contract stores commitments over this value, so
// the secret itself never appears in any hashed triple.
func SpendingKeyHash(secret bn254fr.Element) bn254fr.Element {
	return poseidonbn254.Hash2(secret, bn254fr.Zero())
}

// Commitment returns the tree leaf for the note.
func (n Note) Commitment() bn254fr.Element {
	return poseidonbn254.Hash3(SpendingKeyHash(n.Secret), n.Balance, n.Randomness)
}

// Nullifier returns the spend tag for the note at the given tree index.
func Nullifier(secret bn254fr.Element, index uint64) bn254fr.Element {
	return poseidonbn254.Hash2(secret, bn254fr.NewFromUint64(index))
}

// PathScheme returns the Merkle authentication scheme the contract's tree
// uses.
func PathScheme() merkle.Scheme[bn254fr.Element] {
	return merkle.Scheme[bn254fr.Element]{
		Pair: poseidonbn254.Hash2,
		Zero: bn254fr.Zero(),
	}
}

// ZeroHashes returns the per-level empty-subtree digests up to depth:
// zeros[0] is the zero leaf and zeros[i+1] = Hash2(zeros[i], zeros[i]).
// The contract initializes its incremental tree from this table.
func ZeroHashes(depth int) []bn254fr.Element {
	zeros := make([]bn254fr.Element, depth+1)
	zeros[0] = bn254fr.Zero()
	for i := 0; i < depth; i++ {
		zeros[i+1] = poseidonbn254.Hash2(zeros[i], zeros[i])
	}
	return zeros
}
