// Package field defines the algebra shared by the vault's two field
// families (the 31-bit BabyBear field and the 254-bit BN254 scalar field).
//
// Both concrete element types carry canonical residues: every operation
// returns a unique representative strictly below the field modulus, and
// equality is representative equality. Hashing and Merkle logic are written
// once against this capability instead of being duplicated per field.
package field

// Element is the capability every field element type provides.
type Element[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	Sbox() E
	IsZero() bool
}

// Pow raises base to a small exponent by square-and-multiply.
// one must be the field's multiplicative identity.
func Pow[E Element[E]](base E, exp uint64, one E) E {
	result := one
	for exp != 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}
