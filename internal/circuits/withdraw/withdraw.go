// Package withdraw implements the fixed-denomination withdrawal circuit.
//
// A fixed note commits to (secret, nullifierPreimage) via the pair hash.
// Spending reveals Hash1(nullifierPreimage) as the nullifier and proves the
// commitment sits in the tree under the public root. The full denomination
// is always withdrawn, so there is no change note.
package withdraw

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"noctis/internal/circuits"
	"noctis/internal/field/babybear"
	"noctis/internal/merkle"
	"noctis/internal/poseidon"
)

// TraceWidth is the circuit's column count: 4 public inputs, then the 20
// path siblings, then the 20 side flags as 0/1 cells.
const TraceWidth = 4 + merkle.Depth + merkle.Depth

// Scheme is the Merkle authentication scheme the circuit verifies paths
// against.
var Scheme = merkle.Scheme[babybear.Element]{
	Pair: poseidon.Hash2,
	Zero: babybear.Zero(),
}

// Circuit carries the public inputs of one fixed withdrawal.
type Circuit struct {
	Root         babybear.Element
	Nullifier    babybear.Element
	Recipient    babybear.Element
	Denomination babybear.Element
}

// Witness carries the private inputs: the note opening and its
// authentication path.
type Witness struct {
	Secret            babybear.Element
	NullifierPreimage babybear.Element
	Path              merkle.Proof[babybear.Element]
}

// Note is an unspent fixed note, held client side.
type Note struct {
	Secret            babybear.Element
	NullifierPreimage babybear.Element
}

// NewNote draws a fresh note from crypto/rand.
func NewNote() (Note, error) {
	secret, err := randomElement()
	if err != nil {
		return Note{}, fmt.Errorf("withdraw: sampling secret: %w", err)
	}
	preimage, err := randomElement()
	if err != nil {
		return Note{}, fmt.Errorf("withdraw: sampling nullifier preimage: %w", err)
	}
	return Note{Secret: secret, NullifierPreimage: preimage}, nil
}

func randomElement() (babybear.Element, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return babybear.Zero(), err
	}
	return babybear.FromUint64(binary.LittleEndian.Uint64(buf[:])), nil
}

// Commitment returns the tree leaf committing to the note.
func (n Note) Commitment() babybear.Element {
	return poseidon.Hash2(n.Secret, n.NullifierPreimage)
}

// Nullifier returns the spend tag revealed when the note is withdrawn.
func (n Note) Nullifier() babybear.Element {
	return poseidon.Hash1(n.NullifierPreimage)
}

// GenerateTrace checks the witness against the public inputs and, if every
// constraint holds, lays out the single-row execution trace. Checks run in
// a fixed order and the first violation is returned; no trace is produced
// on failure.
func (c Circuit) GenerateTrace(w Witness) (*circuits.Trace, error) {
	commitment := poseidon.Hash2(w.Secret, w.NullifierPreimage)

	if !poseidon.Hash1(w.NullifierPreimage).Equal(c.Nullifier) {
		return nil, circuits.ErrInvalidNullifier
	}
	if !Scheme.Verify(commitment, w.Path, c.Root) {
		return nil, circuits.ErrInvalidMerkleProof
	}

	row := make([]babybear.Element, 0, TraceWidth)
	row = append(row, c.Root, c.Nullifier, c.Recipient, c.Denomination)
	row = append(row, w.Path.Siblings[:]...)
	for _, flag := range w.Path.Flags {
		row = append(row, babybear.FromBool(flag))
	}
	return circuits.NewTrace(TraceWidth, row)
}
