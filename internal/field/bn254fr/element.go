// Package bn254fr implements arithmetic over the BN254 scalar field
//
//	q = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// the field the on-chain verifier and the deployed Poseidon hash operate in.
// Elements are four 64-bit limbs, little-endian, and always canonical: every
// operation fully reduces its result below the modulus. Multiplication runs
// the double-width product through Montgomery reduction (CIOS) twice, so no
// overflow from the high limbs is ever dropped.
package bn254fr

import (
	"math/big"
	"math/bits"

	"noctis/internal/field"
)

// Element is a canonical residue modulo q, stored as little-endian limbs.
type Element [4]uint64

var _ field.Element[Element] = Element{}

// q, little-endian limbs.
var qElement = Element{
	0x43e1f593f0000001,
	0x2833e84879b97091,
	0xb85045b68181585d,
	0x30644e72e131a029,
}

// -q^{-1} mod 2^64, the Montgomery reduction constant.
const qInvNeg uint64 = 0xc2e1f593efffffff

// 2^512 mod q. Multiplying a Montgomery product by this undoes the 2^-256
// factor, so Mul can stay on canonical representatives.
var rSquare = Element{
	0x1bb8e645ae216da7,
	0x53fe3ab1e35c59e3,
	0x8c49833d53bb8085,
	0x0216d0b17f4e44a5,
}

// ModulusDecimal is the field modulus in decimal.
const ModulusDecimal = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

func Zero() Element { return Element{} }
func One() Element  { return Element{1, 0, 0, 0} }

// NewFromUint64 lifts v into the field. v is always below q.
func NewFromUint64(v uint64) Element {
	return Element{v, 0, 0, 0}
}

// FromLimbs builds an element from little-endian limbs, reducing modulo q.
func FromLimbs(limbs [4]uint64) Element {
	z := Element(limbs)
	for z.gteModulus() {
		z = z.subModulus()
	}
	return z
}

func (z Element) gteModulus() bool {
	for i := 3; i >= 0; i-- {
		if z[i] > qElement[i] {
			return true
		}
		if z[i] < qElement[i] {
			return false
		}
	}
	return true
}

func (z Element) subModulus() Element {
	var borrow uint64
	z[0], borrow = bits.Sub64(z[0], qElement[0], 0)
	z[1], borrow = bits.Sub64(z[1], qElement[1], borrow)
	z[2], borrow = bits.Sub64(z[2], qElement[2], borrow)
	z[3], _ = bits.Sub64(z[3], qElement[3], borrow)
	return z
}

// Add returns z + x mod q. Both operands are canonical, so the limb sum
// cannot carry out of the fourth limb.
func (z Element) Add(x Element) Element {
	var carry uint64
	z[0], carry = bits.Add64(z[0], x[0], 0)
	z[1], carry = bits.Add64(z[1], x[1], carry)
	z[2], carry = bits.Add64(z[2], x[2], carry)
	z[3], _ = bits.Add64(z[3], x[3], carry)
	if z.gteModulus() {
		z = z.subModulus()
	}
	return z
}

// Sub returns z - x mod q, adding the modulus back on borrow.
func (z Element) Sub(x Element) Element {
	var borrow uint64
	z[0], borrow = bits.Sub64(z[0], x[0], 0)
	z[1], borrow = bits.Sub64(z[1], x[1], borrow)
	z[2], borrow = bits.Sub64(z[2], x[2], borrow)
	z[3], borrow = bits.Sub64(z[3], x[3], borrow)
	if borrow != 0 {
		var carry uint64
		z[0], carry = bits.Add64(z[0], qElement[0], 0)
		z[1], carry = bits.Add64(z[1], qElement[1], carry)
		z[2], carry = bits.Add64(z[2], qElement[2], carry)
		z[3], _ = bits.Add64(z[3], qElement[3], carry)
	}
	return z
}

// montMul computes z * x * 2^-256 mod q by coarsely integrated operand
// scanning. The interleaved reduction keeps every intermediate inside five
// limbs, so the full 512-bit product is reduced completely.
func montMul(x, y Element) Element {
	var t [5]uint64
	for i := 0; i < 4; i++ {
		var c uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var carry uint64
			lo, carry = bits.Add64(lo, t[j], 0)
			hi += carry
			lo, carry = bits.Add64(lo, c, 0)
			hi += carry
			t[j] = lo
			c = hi
		}
		t[4] += c

		m := t[0] * qInvNeg
		hi, lo := bits.Mul64(m, qElement[0])
		_, carry := bits.Add64(lo, t[0], 0)
		c = hi + carry
		for j := 1; j < 4; j++ {
			hi, lo = bits.Mul64(m, qElement[j])
			lo, carry = bits.Add64(lo, t[j], 0)
			hi += carry
			lo, carry = bits.Add64(lo, c, 0)
			hi += carry
			t[j-1] = lo
			c = hi
		}
		t[3] = t[4] + c
		t[4] = 0
	}
	z := Element{t[0], t[1], t[2], t[3]}
	if z.gteModulus() {
		z = z.subModulus()
	}
	return z
}

// Mul returns z * x mod q. The first Montgomery pass yields z*x*2^-256; the
// second multiplies by 2^512 mod q, cancelling the Montgomery factor while
// keeping all inputs and outputs canonical.
func (z Element) Mul(x Element) Element {
	return montMul(montMul(z, x), rSquare)
}

// Exp returns z^e mod q by square-and-multiply over the exponent limbs,
// least significant bit first.
func (z Element) Exp(e Element) Element {
	result := One()
	base := z
	for !e.IsZero() {
		if e[0]&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e = e.shiftRight()
	}
	return result
}

func (e Element) shiftRight() Element {
	e[0] = e[0]>>1 | e[1]<<63
	e[1] = e[1]>>1 | e[2]<<63
	e[2] = e[2]>>1 | e[3]<<63
	e[3] >>= 1
	return e
}

// Sbox applies the Poseidon nonlinear map x -> x^5.
func (z Element) Sbox() Element {
	x2 := z.Mul(z)
	x4 := x2.Mul(x2)
	return x4.Mul(z)
}

func (z Element) IsZero() bool {
	return z == Element{}
}

func (z Element) Equal(x Element) bool { return z == x }

// Cmp compares canonical residues as integers: -1, 0 or +1.
func (z Element) Cmp(x Element) int {
	for i := 3; i >= 0; i-- {
		if z[i] > x[i] {
			return 1
		}
		if z[i] < x[i] {
			return -1
		}
	}
	return 0
}

// IsUint64 reports whether the canonical residue fits in 64 bits.
func (z Element) IsUint64() bool {
	return z[1]|z[2]|z[3] == 0
}

// Uint64 returns the low limb. Meaningful only when IsUint64 holds.
func (z Element) Uint64() uint64 { return z[0] }

// Big returns the canonical residue as a big integer.
func (z Element) Big() *big.Int {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		limb := z[i]
		for j := 0; j < 8; j++ {
			buf[31-8*i-j] = byte(limb >> (8 * j))
		}
	}
	return new(big.Int).SetBytes(buf[:])
}

// FromBig reduces b modulo q. Negative inputs are mapped to their positive
// residue.
func FromBig(b *big.Int) Element {
	v := new(big.Int).Mod(b, modulusBig())
	var buf [32]byte
	v.FillBytes(buf[:])
	var z Element
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			z[i] |= uint64(buf[31-8*i-j]) << (8 * j)
		}
	}
	return z
}

func modulusBig() *big.Int {
	m, _ := new(big.Int).SetString(ModulusDecimal, 10)
	return m
}

// Bytes32 returns the canonical residue as a 32-byte big-endian word.
func (z Element) Bytes32() [32]byte {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		limb := z[i]
		for j := 0; j < 8; j++ {
			buf[31-8*i-j] = byte(limb >> (8 * j))
		}
	}
	return buf
}
