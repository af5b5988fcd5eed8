package bn254fr

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Codec errors. All are recoverable input errors: a malformed string is
// reported, never silently truncated.
var (
	ErrEmptyInput  = errors.New("bn254fr: empty input")
	ErrInvalidHex  = errors.New("bn254fr: invalid hex digit")
	ErrHexTooLong  = errors.New("bn254fr: hex string longer than 32 bytes")
	ErrInvalidDec  = errors.New("bn254fr: invalid decimal digit")
	ErrDecTooLong  = errors.New("bn254fr: decimal string too long")
)

// hexWidth is the full byte width of the field, in nibbles.
const hexWidth = 64

// FromHex parses a hex string into a field element. The "0x" prefix is
// optional and input is case-insensitive. Values at or above the modulus are
// reduced. Strings longer than the field's byte width are rejected rather
// than truncated.
func FromHex(s string) (Element, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) == 0 {
		return Element{}, ErrEmptyInput
	}
	if len(s) > hexWidth {
		return Element{}, fmt.Errorf("%w: %d nibbles", ErrHexTooLong, len(s))
	}
	var limbs [4]uint64
	// Walk nibbles from the end of the string so limb 0 holds the least
	// significant bits.
	for i := 0; i < len(s); i++ {
		c := s[len(s)-1-i]
		v, ok := nibble(c)
		if !ok {
			return Element{}, fmt.Errorf("%w: %q at position %d", ErrInvalidHex, c, len(s)-1-i)
		}
		limbs[i/16] |= uint64(v) << (4 * (i % 16))
	}
	return FromLimbs(limbs), nil
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex formats the canonical residue as "0x" followed by 64 lowercase
// nibbles, left-zero-padded to the field's full byte width.
func (z Element) Hex() string {
	return fmt.Sprintf("0x%016x%016x%016x%016x", z[3], z[2], z[1], z[0])
}

// FromDecimal parses a base-10 string into a field element, reducing values
// at or above the modulus.
func FromDecimal(s string) (Element, error) {
	if len(s) == 0 {
		return Element{}, ErrEmptyInput
	}
	if len(s) > len(ModulusDecimal)+1 {
		return Element{}, fmt.Errorf("%w: %d digits", ErrDecTooLong, len(s))
	}
	z := Zero()
	ten := NewFromUint64(10)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Element{}, fmt.Errorf("%w: %q at position %d", ErrInvalidDec, c, i)
		}
		z = z.Mul(ten).Add(NewFromUint64(uint64(c - '0')))
	}
	return z, nil
}

// Decimal formats the canonical residue in base 10 using repeated long
// division by ten.
func (z Element) Decimal() string {
	if z.IsZero() {
		return "0"
	}
	var digits []byte
	for !z.IsZero() {
		var r uint64
		z, r = z.divModSmall(10)
		digits = append(digits, byte('0'+r))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func (z Element) String() string { return z.Decimal() }

// divModSmall divides the residue by a single-limb divisor, returning
// quotient and remainder. A zero divisor is a programming error and panics.
func (z Element) divModSmall(d uint64) (Element, uint64) {
	if d == 0 {
		panic("bn254fr: division by zero")
	}
	var q Element
	var rem uint64
	for i := 3; i >= 0; i-- {
		// The running remainder is < d, so the 128-by-64 division below
		// cannot overflow.
		q[i], rem = bits.Div64(rem, z[i], d)
	}
	return q, rem
}
