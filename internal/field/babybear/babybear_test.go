package babybear

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReduces(t *testing.T) {
	require.Equal(t, Element(0), New(Modulus))
	require.Equal(t, Element(1), New(Modulus+1))
	require.Equal(t, Element(Modulus-1), New(Modulus-1))
}

func TestFromUint64Reduces(t *testing.T) {
	require.Equal(t, Element(0), FromUint64(uint64(Modulus)))
	wide := uint64(Modulus)*3 + 7
	require.Equal(t, Element(7), FromUint64(wide))
}

func TestFromBool(t *testing.T) {
	require.Equal(t, One(), FromBool(true))
	require.Equal(t, Zero(), FromBool(false))
}

func TestAddWraps(t *testing.T) {
	require.Equal(t, Zero(), New(Modulus-1).Add(One()))
	require.Equal(t, Element(Modulus-2), New(Modulus-1).Add(New(Modulus-1)))
	require.Equal(t, Element(5), New(2).Add(New(3)))
}

func TestSubWraps(t *testing.T) {
	require.Equal(t, Element(Modulus-1), Zero().Sub(One()))
	require.Equal(t, Element(1), New(3).Sub(New(2)))
	require.Equal(t, Zero(), New(7).Sub(New(7)))
}

func TestMul(t *testing.T) {
	// (p-1)^2 = 1 mod p.
	pm1 := New(Modulus - 1)
	require.Equal(t, One(), pm1.Mul(pm1))
	require.Equal(t, Element(6), New(2).Mul(New(3)))
	require.Equal(t, Zero(), pm1.Mul(Zero()))
}

func TestPow(t *testing.T) {
	require.Equal(t, One(), New(5).Pow(0))
	require.Equal(t, New(5), New(5).Pow(1))
	require.Equal(t, New(125), New(5).Pow(3))
	// Fermat: x^(p-1) = 1 for x != 0.
	require.Equal(t, One(), New(12345).Pow(uint64(Modulus-1)))
}

func TestSbox(t *testing.T) {
	require.Equal(t, New(128), New(2).Sbox())
	require.Equal(t, Zero(), Zero().Sbox())
	require.Equal(t, One(), One().Sbox())
	for _, x := range []Element{New(3), New(97), New(Modulus - 2)} {
		require.Equal(t, x.Pow(7), x.Sbox())
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "42", New(42).String())
	require.Equal(t, "0", Zero().String())
}
