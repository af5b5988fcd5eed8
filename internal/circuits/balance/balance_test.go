package balance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"noctis/internal/circuits"
	"noctis/internal/field/babybear"
	"noctis/internal/merkle"
	"noctis/internal/poseidon"
)

type fixture struct {
	secret     babybear.Element
	balance    babybear.Element
	randomness babybear.Element
	index      uint64
	tree       *merkle.Tree[babybear.Element]
	path       merkle.Proof[babybear.Element]
}

// newFixture builds a three-leaf tree with a 10000-unit note at index 1.
func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		secret:     babybear.FromUint64(3131),
		balance:    babybear.FromUint64(10000),
		randomness: babybear.FromUint64(4242),
		index:      1,
	}
	leaves := []babybear.Element{
		poseidon.Hash1(babybear.FromUint64(1)),
		Commitment(f.secret, f.balance, f.randomness),
		poseidon.Hash1(babybear.FromUint64(3)),
	}
	tree, err := merkle.NewTree(Scheme, leaves)
	require.NoError(t, err)
	f.tree = tree
	path, err := tree.Proof(int(f.index))
	require.NoError(t, err)
	f.path = path
	return f
}

func (f fixture) witness() Witness {
	return Witness{
		Secret:        f.secret,
		Balance:       f.balance,
		Randomness:    f.randomness,
		NoteIndex:     f.index,
		Path:          f.path,
		NewRandomness: babybear.FromUint64(5353),
	}
}

func (f fixture) circuit(amount uint64, change babybear.Element) Circuit {
	return Circuit{
		Root:             f.tree.Root(),
		Nullifier:        Nullifier(f.secret, f.index),
		Recipient:        babybear.FromUint64(99),
		Amount:           babybear.FromUint64(amount),
		ChangeCommitment: change,
	}
}

func TestFullWithdrawal(t *testing.T) {
	f := newFixture(t)
	c := f.circuit(10000, babybear.Zero())
	trace, err := c.GenerateTrace(f.witness())
	require.NoError(t, err)

	require.Equal(t, TraceWidth, trace.Width())
	require.Equal(t, 1, trace.NumRows())

	// The five public inputs lead the row, in order.
	require.Equal(t, c.Root, trace.At(0, 0))
	require.Equal(t, c.Nullifier, trace.At(0, 1))
	require.Equal(t, c.Recipient, trace.At(0, 2))
	require.Equal(t, c.Amount, trace.At(0, 3))
	require.Equal(t, c.ChangeCommitment, trace.At(0, 4))

	// diff == 0: every decomposition bit is zero.
	for i := 0; i < diffBits; i++ {
		require.True(t, trace.At(0, 5+i).IsZero())
	}
}

func TestPartialWithdrawal(t *testing.T) {
	f := newFixture(t)
	w := f.witness()
	change := Commitment(f.secret, babybear.FromUint64(4000), w.NewRandomness)

	trace, err := f.circuit(6000, change).GenerateTrace(w)
	require.NoError(t, err)

	// The bit columns decompose diff = 4000, least significant first.
	var diff uint64
	for i := 0; i < diffBits; i++ {
		bit := trace.At(0, 5+i).Uint64()
		require.LessOrEqual(t, bit, uint64(1))
		diff |= bit << i
	}
	require.Equal(t, uint64(4000), diff)

	// Public inputs, then bits, then the authentication path.
	require.Equal(t, f.tree.Root(), trace.At(0, 0))
	require.Equal(t, change, trace.At(0, 4))
	for i := 0; i < merkle.Depth; i++ {
		require.Equal(t, w.Path.Siblings[i], trace.At(0, 5+diffBits+i))
		require.Equal(t, babybear.FromBool(w.Path.Flags[i]), trace.At(0, 5+diffBits+merkle.Depth+i))
	}
}

func TestOverdrawRejected(t *testing.T) {
	f := newFixture(t)
	trace, err := f.circuit(15000, babybear.Zero()).GenerateTrace(f.witness())
	require.ErrorIs(t, err, circuits.ErrInsufficientBalance)
	require.Nil(t, trace)
}

func TestWrongNullifierRejected(t *testing.T) {
	f := newFixture(t)
	c := f.circuit(10000, babybear.Zero())
	c.Nullifier = Nullifier(f.secret, f.index+1)
	_, err := c.GenerateTrace(f.witness())
	require.ErrorIs(t, err, circuits.ErrInvalidNullifier)
}

func TestWrongPathRejected(t *testing.T) {
	f := newFixture(t)
	w := f.witness()
	w.Path.Siblings[2] = w.Path.Siblings[2].Add(babybear.One())
	_, err := f.circuit(10000, babybear.Zero()).GenerateTrace(w)
	require.ErrorIs(t, err, circuits.ErrInvalidMerkleProof)
}

func TestWrongChangeCommitmentRejected(t *testing.T) {
	f := newFixture(t)
	w := f.witness()
	wrong := Commitment(f.secret, babybear.FromUint64(3999), w.NewRandomness)
	_, err := f.circuit(6000, wrong).GenerateTrace(w)
	require.ErrorIs(t, err, circuits.ErrInvalidChangeCommitment)
}

func TestNonZeroChangeOnFullWithdrawalRejected(t *testing.T) {
	f := newFixture(t)
	w := f.witness()
	stray := Commitment(f.secret, babybear.Zero(), w.NewRandomness)
	_, err := f.circuit(10000, stray).GenerateTrace(w)
	require.ErrorIs(t, err, circuits.ErrChangeCommitmentNotZero)
}

func TestNullifierBindsIndex(t *testing.T) {
	s := babybear.FromUint64(777)
	require.NotEqual(t, Nullifier(s, 0), Nullifier(s, 1))
	require.Equal(t, poseidon.Hash2(s, babybear.FromUint64(3)), Nullifier(s, 3))
}

func TestCommitmentHidesSecret(t *testing.T) {
	s, b, r := babybear.FromUint64(1), babybear.FromUint64(2), babybear.FromUint64(3)
	require.Equal(t, poseidon.Hash3(poseidon.Hash1(s), b, r), Commitment(s, b, r))
	require.NotEqual(t, Commitment(s, b, r), Commitment(s.Add(babybear.One()), b, r))
}
