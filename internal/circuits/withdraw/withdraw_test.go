package withdraw

import (
	"testing"

	"github.com/stretchr/testify/require"

	"noctis/internal/circuits"
	"noctis/internal/field/babybear"
	"noctis/internal/merkle"
	"noctis/internal/poseidon"
)

func testNote() Note {
	return Note{
		Secret:            babybear.FromUint64(1111),
		NullifierPreimage: babybear.FromUint64(2222),
	}
}

// setup places the note among a few unrelated commitments and returns the
// tree alongside the note's index.
func setup(t *testing.T, note Note) (*merkle.Tree[babybear.Element], int) {
	t.Helper()
	leaves := []babybear.Element{
		poseidon.Hash2(babybear.FromUint64(7), babybear.FromUint64(8)),
		note.Commitment(),
		poseidon.Hash2(babybear.FromUint64(9), babybear.FromUint64(10)),
	}
	tree, err := merkle.NewTree(Scheme, leaves)
	require.NoError(t, err)
	return tree, 1
}

func TestGenerateTrace(t *testing.T) {
	note := testNote()
	tree, idx := setup(t, note)
	path, err := tree.Proof(idx)
	require.NoError(t, err)

	circuit := Circuit{
		Root:         tree.Root(),
		Nullifier:    note.Nullifier(),
		Recipient:    babybear.FromUint64(42),
		Denomination: babybear.FromUint64(1000),
	}
	trace, err := circuit.GenerateTrace(Witness{
		Secret:            note.Secret,
		NullifierPreimage: note.NullifierPreimage,
		Path:              path,
	})
	require.NoError(t, err)

	require.Equal(t, TraceWidth, trace.Width())
	require.Equal(t, 1, trace.NumRows())

	// Public inputs occupy the leading columns.
	require.Equal(t, circuit.Root, trace.At(0, 0))
	require.Equal(t, circuit.Nullifier, trace.At(0, 1))
	require.Equal(t, circuit.Recipient, trace.At(0, 2))
	require.Equal(t, circuit.Denomination, trace.At(0, 3))

	// Then the siblings, then the side flags as 0/1 cells.
	for i := 0; i < merkle.Depth; i++ {
		require.Equal(t, path.Siblings[i], trace.At(0, 4+i))
		require.Equal(t, babybear.FromBool(path.Flags[i]), trace.At(0, 4+merkle.Depth+i))
	}
}

func TestWrongNullifierRejected(t *testing.T) {
	note := testNote()
	tree, idx := setup(t, note)
	path, err := tree.Proof(idx)
	require.NoError(t, err)

	circuit := Circuit{
		Root:      tree.Root(),
		Nullifier: note.Nullifier().Add(babybear.One()),
	}
	trace, err := circuit.GenerateTrace(Witness{
		Secret:            note.Secret,
		NullifierPreimage: note.NullifierPreimage,
		Path:              path,
	})
	require.ErrorIs(t, err, circuits.ErrInvalidNullifier)
	require.Nil(t, trace)
}

func TestWrongPathRejected(t *testing.T) {
	note := testNote()
	tree, idx := setup(t, note)
	path, err := tree.Proof(idx)
	require.NoError(t, err)
	path.Siblings[0] = path.Siblings[0].Add(babybear.One())

	circuit := Circuit{
		Root:      tree.Root(),
		Nullifier: note.Nullifier(),
	}
	_, err = circuit.GenerateTrace(Witness{
		Secret:            note.Secret,
		NullifierPreimage: note.NullifierPreimage,
		Path:              path,
	})
	require.ErrorIs(t, err, circuits.ErrInvalidMerkleProof)
}

func TestWrongSecretRejected(t *testing.T) {
	note := testNote()
	tree, idx := setup(t, note)
	path, err := tree.Proof(idx)
	require.NoError(t, err)

	circuit := Circuit{
		Root:      tree.Root(),
		Nullifier: note.Nullifier(),
	}
	// The nullifier still matches, but the commitment no longer sits in
	// the tree.
	_, err = circuit.GenerateTrace(Witness{
		Secret:            note.Secret.Add(babybear.One()),
		NullifierPreimage: note.NullifierPreimage,
		Path:              path,
	})
	require.ErrorIs(t, err, circuits.ErrInvalidMerkleProof)
}

func TestNewNoteDrawsDistinctNotes(t *testing.T) {
	a, err := NewNote()
	require.NoError(t, err)
	b, err := NewNote()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestNoteDerivations(t *testing.T) {
	note := testNote()
	require.Equal(t, poseidon.Hash2(note.Secret, note.NullifierPreimage), note.Commitment())
	require.Equal(t, poseidon.Hash1(note.NullifierPreimage), note.Nullifier())
}
