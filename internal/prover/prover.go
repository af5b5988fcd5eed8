// Package prover defines the boundary between trace generation and the
// proving backend, plus the serialized envelopes a relayer submits on
// chain: the opaque proof bytes together with the public inputs the
// verifier re-derives them against.
package prover

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/holiman/uint256"

	"noctis/internal/circuits"
	"noctis/internal/field/babybear"
	"noctis/internal/field/bn254fr"
)

// Backend turns a finished execution trace into proof bytes. The trace is
// already fully checked; a backend error is an infrastructure failure, not
// a constraint violation.
type Backend interface {
	Prove(t *circuits.Trace) ([]byte, error)
}

// WithdrawalProof is the envelope for a fixed-denomination withdrawal:
// root, nullifier, recipient, denomination.
type WithdrawalProof struct {
	Proof        []byte    `cbor:"1,keyasint"`
	PublicInputs [4]uint64 `cbor:"2,keyasint"`
}

// BalanceWithdrawalProof is the envelope for a balance withdrawal: root,
// nullifier, recipient, amount, change commitment.
type BalanceWithdrawalProof struct {
	Proof        []byte    `cbor:"1,keyasint"`
	PublicInputs [5]uint64 `cbor:"2,keyasint"`
}

// encMode rejects indefinite-length items so envelopes have one canonical
// encoding.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("prover: building cbor encoder: %v", err))
	}
}

// Marshal serializes the envelope canonically.
func (p WithdrawalProof) Marshal() ([]byte, error) {
	return encMode.Marshal(p)
}

// UnmarshalWithdrawalProof decodes an envelope produced by Marshal.
func UnmarshalWithdrawalProof(data []byte) (WithdrawalProof, error) {
	var p WithdrawalProof
	if err := cbor.Unmarshal(data, &p); err != nil {
		return WithdrawalProof{}, fmt.Errorf("prover: decoding withdrawal proof: %w", err)
	}
	return p, nil
}

// Marshal serializes the envelope canonically.
func (p BalanceWithdrawalProof) Marshal() ([]byte, error) {
	return encMode.Marshal(p)
}

// UnmarshalBalanceWithdrawalProof decodes an envelope produced by Marshal.
func UnmarshalBalanceWithdrawalProof(data []byte) (BalanceWithdrawalProof, error) {
	var p BalanceWithdrawalProof
	if err := cbor.Unmarshal(data, &p); err != nil {
		return BalanceWithdrawalProof{}, fmt.Errorf("prover: decoding balance withdrawal proof: %w", err)
	}
	return p, nil
}

// PublicInputsOf reads the leading public-input columns of a trace's first
// row as integers.
func PublicInputsOf(t *circuits.Trace, n int) ([]uint64, error) {
	if t.NumRows() == 0 || t.Width() < n {
		return nil, fmt.Errorf("prover: trace %dx%d cannot hold %d public inputs", t.NumRows(), t.Width(), n)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = t.At(0, i).Uint64()
	}
	return out, nil
}

// Calldata packs field elements as consecutive 32-byte big-endian words,
// the layout the verifier contract's ABI expects.
func Calldata(elems ...bn254fr.Element) []byte {
	out := make([]byte, 0, 32*len(elems))
	for _, e := range elems {
		w := uint256.Int(e)
		b := w.Bytes32()
		out = append(out, b[:]...)
	}
	return out
}

// TraceCalldata packs a trace row's small-field cells into 32-byte words by
// lifting each residue.
func TraceCalldata(cells []babybear.Element) []byte {
	out := make([]byte, 0, 32*len(cells))
	for _, c := range cells {
		w := uint256.NewInt(c.Uint64())
		b := w.Bytes32()
		out = append(out, b[:]...)
	}
	return out
}
