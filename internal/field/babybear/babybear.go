// Package babybear implements arithmetic over the 31-bit BabyBear prime
// field p = 2^31 - 2^27 + 1. This is the field the execution traces and the
// width-16 permutation hash operate in.
package babybear

import (
	"strconv"

	"noctis/internal/field"
)

// Modulus is the BabyBear prime.
const Modulus uint32 = 2013265921

// Element is a canonical residue modulo the BabyBear prime: always < Modulus.
type Element uint32

var _ field.Element[Element] = Element(0)

// New reduces v modulo the field prime.
func New(v uint32) Element {
	return Element(v % Modulus)
}

// FromUint64 reduces v modulo the field prime.
func FromUint64(v uint64) Element {
	return Element(v % uint64(Modulus))
}

// FromBool maps true to one and false to zero.
func FromBool(b bool) Element {
	if b {
		return 1
	}
	return 0
}

func Zero() Element { return 0 }
func One() Element  { return 1 }

func (e Element) Add(o Element) Element {
	s := uint64(e) + uint64(o)
	if s >= uint64(Modulus) {
		s -= uint64(Modulus)
	}
	return Element(s)
}

func (e Element) Sub(o Element) Element {
	if e >= o {
		return e - o
	}
	return e + Element(Modulus) - o
}

func (e Element) Mul(o Element) Element {
	return Element(uint64(e) * uint64(o) % uint64(Modulus))
}

// Pow raises e to the given exponent by square-and-multiply.
func (e Element) Pow(exp uint64) Element {
	return field.Pow(e, exp, One())
}

// Sbox applies the permutation's nonlinear map x -> x^7.
func (e Element) Sbox() Element {
	x2 := e.Mul(e)
	x4 := x2.Mul(x2)
	x6 := x4.Mul(x2)
	return x6.Mul(e)
}

func (e Element) IsZero() bool { return e == 0 }

func (e Element) Equal(o Element) bool { return e == o }

// Uint32 returns the canonical residue.
func (e Element) Uint32() uint32 { return uint32(e) }

// Uint64 returns the canonical residue widened to 64 bits, the form used by
// the circuits' integer range checks.
func (e Element) Uint64() uint64 { return uint64(e) }

func (e Element) String() string {
	return strconv.FormatUint(uint64(e), 10)
}
