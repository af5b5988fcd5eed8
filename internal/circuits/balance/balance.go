// Package balance implements the variable-amount withdrawal circuit.
//
// A balance note commits to (Hash1(secret), balance, randomness) via the
// triple hash. Spending reveals Hash2(secret, noteIndex) as the nullifier,
// proves tree membership, and proves the withdrawn amount does not exceed
// the note balance by exposing the bit decomposition of the difference.
// Any remainder must be re-committed as a change note; a full withdrawal
// must declare a zero change commitment instead.
package balance

import (
	"noctis/internal/circuits"
	"noctis/internal/field/babybear"
	"noctis/internal/merkle"
	"noctis/internal/poseidon"
)

// diffBits is the width of the balance-minus-amount range decomposition.
const diffBits = 64

// TraceWidth is the circuit's column count: 5 public inputs, 64 difference
// bits (least significant first), then the 20 path siblings and 20 side
// flags.
const TraceWidth = 5 + diffBits + merkle.Depth + merkle.Depth

// Scheme is the Merkle authentication scheme the circuit verifies paths
// against.
var Scheme = merkle.Scheme[babybear.Element]{
	Pair: poseidon.Hash2,
	Zero: babybear.Zero(),
}

// Circuit carries the public inputs of one balance withdrawal.
type Circuit struct {
	Root             babybear.Element
	Nullifier        babybear.Element
	Recipient        babybear.Element
	Amount           babybear.Element
	ChangeCommitment babybear.Element
}

// Witness carries the private inputs: the note opening, its position and
// authentication path, and the randomness of the change note when one is
// due.
type Witness struct {
	Secret        babybear.Element
	Balance       babybear.Element
	Randomness    babybear.Element
	NoteIndex     uint64
	Path          merkle.Proof[babybear.Element]
	NewRandomness babybear.Element
}

// Commitment returns the tree leaf for a balance note opening.
func Commitment(secret, balance, randomness babybear.Element) babybear.Element {
	return poseidon.Hash3(poseidon.Hash1(secret), balance, randomness)
}

// Nullifier returns the spend tag for the note at the given tree index.
// Binding the index lets one secret back many notes without linking their
// spends.
func Nullifier(secret babybear.Element, index uint64) babybear.Element {
	return poseidon.Hash2(secret, babybear.FromUint64(index))
}

// GenerateTrace checks the witness against the public inputs and, if every
// constraint holds, lays out the single-row execution trace. Checks run in
// a fixed order and the first violation is returned; no trace is produced
// on failure.
func (c Circuit) GenerateTrace(w Witness) (*circuits.Trace, error) {
	secretHash := poseidon.Hash1(w.Secret)
	commitment := poseidon.Hash3(secretHash, w.Balance, w.Randomness)

	if !Scheme.Verify(commitment, w.Path, c.Root) {
		return nil, circuits.ErrInvalidMerkleProof
	}
	if !Nullifier(w.Secret, w.NoteIndex).Equal(c.Nullifier) {
		return nil, circuits.ErrInvalidNullifier
	}

	balance := w.Balance.Uint64()
	amount := c.Amount.Uint64()
	if balance < amount {
		return nil, circuits.ErrInsufficientBalance
	}
	diff := balance - amount

	if diff > 0 {
		change := poseidon.Hash3(secretHash, babybear.FromUint64(diff), w.NewRandomness)
		if !change.Equal(c.ChangeCommitment) {
			return nil, circuits.ErrInvalidChangeCommitment
		}
	} else if !c.ChangeCommitment.IsZero() {
		return nil, circuits.ErrChangeCommitmentNotZero
	}

	row := make([]babybear.Element, 0, TraceWidth)
	row = append(row, c.Root, c.Nullifier, c.Recipient, c.Amount, c.ChangeCommitment)
	for i := 0; i < diffBits; i++ {
		row = append(row, babybear.FromBool(diff>>i&1 == 1))
	}
	row = append(row, w.Path.Siblings[:]...)
	for _, flag := range w.Path.Flags {
		row = append(row, babybear.FromBool(flag))
	}
	return circuits.NewTrace(TraceWidth, row)
}
