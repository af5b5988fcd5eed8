// Package circuits holds what the two withdrawal circuit variants share:
// the execution-trace matrix handed to the proving backend, and the named
// constraint violations a witness can fail with.
//
// A constraint violation means "proof generation refused", not a system
// bug: the witness contradicts a public input, and only new witness data
// can change the outcome. Each violation is a distinct sentinel so callers
// can assert exactly which invariant broke with errors.Is.
package circuits

import (
	"errors"
	"fmt"

	"noctis/internal/field/babybear"
)

var (
	ErrInvalidNullifier        = errors.New("circuits: nullifier does not match witness")
	ErrInvalidMerkleProof      = errors.New("circuits: merkle path does not authenticate commitment under root")
	ErrInsufficientBalance     = errors.New("circuits: note balance below withdrawal amount")
	ErrInvalidChangeCommitment = errors.New("circuits: change commitment does not match change note")
	ErrChangeCommitmentNotZero = errors.New("circuits: change commitment must be zero for a full withdrawal")
)

// Trace is a fixed-width, row-major table of field elements: the public
// inputs followed by auxiliary witness columns. It is built only after
// every witness check has passed and is immutable once returned.
type Trace struct {
	width int
	cells []babybear.Element
}

// NewTrace wraps cells as a width-column row-major matrix. The cell count
// must be a whole number of rows.
func NewTrace(width int, cells []babybear.Element) (*Trace, error) {
	if width <= 0 {
		return nil, fmt.Errorf("circuits: invalid trace width %d", width)
	}
	if len(cells)%width != 0 {
		return nil, fmt.Errorf("circuits: %d cells do not fill rows of width %d", len(cells), width)
	}
	return &Trace{width: width, cells: append([]babybear.Element(nil), cells...)}, nil
}

// Width returns the number of columns.
func (t *Trace) Width() int { return t.width }

// NumRows returns the number of rows.
func (t *Trace) NumRows() int { return len(t.cells) / t.width }

// At returns the cell at (row, col).
func (t *Trace) At(row, col int) babybear.Element {
	return t.cells[row*t.width+col]
}

// Cells returns a copy of the row-major cell table.
func (t *Trace) Cells() []babybear.Element {
	return append([]babybear.Element(nil), t.cells...)
}
