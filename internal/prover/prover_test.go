package prover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"noctis/internal/circuits"
	"noctis/internal/field/babybear"
	"noctis/internal/field/bn254fr"
)

// stubBackend hashes nothing; it records the trace shape it was handed.
type stubBackend struct {
	rows, width int
}

func (s *stubBackend) Prove(t *circuits.Trace) ([]byte, error) {
	s.rows, s.width = t.NumRows(), t.Width()
	return []byte{0xca, 0xfe}, nil
}

var _ Backend = (*stubBackend)(nil)

func sampleTrace(t *testing.T) *circuits.Trace {
	t.Helper()
	cells := make([]babybear.Element, 6)
	for i := range cells {
		cells[i] = babybear.FromUint64(uint64(10 + i))
	}
	tr, err := circuits.NewTrace(6, cells)
	require.NoError(t, err)
	return tr
}

func TestBackendReceivesTrace(t *testing.T) {
	var b stubBackend
	proof, err := b.Prove(sampleTrace(t))
	require.NoError(t, err)
	require.NotEmpty(t, proof)
	require.Equal(t, 1, b.rows)
	require.Equal(t, 6, b.width)
}

func TestWithdrawalProofRoundTrip(t *testing.T) {
	in := WithdrawalProof{
		Proof:        []byte{1, 2, 3},
		PublicInputs: [4]uint64{10, 11, 12, 13},
	}
	data, err := in.Marshal()
	require.NoError(t, err)

	out, err := UnmarshalWithdrawalProof(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestBalanceWithdrawalProofRoundTrip(t *testing.T) {
	in := BalanceWithdrawalProof{
		Proof:        []byte{4, 5},
		PublicInputs: [5]uint64{20, 21, 22, 23, 24},
	}
	data, err := in.Marshal()
	require.NoError(t, err)

	out, err := UnmarshalBalanceWithdrawalProof(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := UnmarshalWithdrawalProof([]byte{0xff, 0x00})
	require.Error(t, err)
	_, err = UnmarshalBalanceWithdrawalProof(nil)
	require.Error(t, err)
}

func TestPublicInputsOf(t *testing.T) {
	tr := sampleTrace(t)
	pub, err := PublicInputsOf(tr, 4)
	require.NoError(t, err)
	require.Equal(t, []uint64{10, 11, 12, 13}, pub)

	_, err = PublicInputsOf(tr, 7)
	require.Error(t, err)
}

func TestCalldataLayout(t *testing.T) {
	data := Calldata(bn254fr.NewFromUint64(1), bn254fr.NewFromUint64(0x0102))
	require.Len(t, data, 64)

	// Big-endian words: the value sits at the tail of each 32-byte slot.
	require.Equal(t, byte(1), data[31])
	require.Equal(t, byte(0x01), data[62])
	require.Equal(t, byte(0x02), data[63])
	for _, i := range []int{0, 15, 30, 32, 47} {
		require.Equal(t, byte(0), data[i])
	}
}

func TestTraceCalldataLiftsResidues(t *testing.T) {
	cells := []babybear.Element{babybear.FromUint64(7), babybear.Zero()}
	data := TraceCalldata(cells)
	require.Len(t, data, 64)
	require.Equal(t, byte(7), data[31])
	for i := 32; i < 64; i++ {
		require.Equal(t, byte(0), data[i])
	}
}
