package field

import (
	"errors"
	"io"
	"math/big"
)

var (
	// ErrZeroInverse is returned when inverting the zero element.
	ErrZeroInverse = errors.New("field: inverse of zero")

	// ErrNonCanonical indicates an encoding that is empty, too long or not
	// reduced modulo the field order.
	ErrNonCanonical = errors.New("field: non-canonical encoding")

	// ErrNotPrime indicates a modulus that failed the primality test.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrUnknownField is returned by ByName for unregistered names.
	ErrUnknownField = errors.New("field: unknown field")

	// ErrFieldMismatch is the panic value used when elements of different
	// fields are combined.
	ErrFieldMismatch = errors.New("field: mismatched element types")
)

// Element is an immutable element of a prime field.
type Element interface {
	Add(other Element) Element
	Sub(other Element) Element
	Mul(other Element) Element
	Neg() Element

	// Inverse returns the multiplicative inverse, or ErrZeroInverse.
	Inverse() (Element, error)

	IsZero() bool
	Equal(other Element) bool

	// Bytes returns the fixed-width big-endian encoding of the element.
	Bytes() []byte

	// BigInt returns a copy of the canonical representative in [0, p).
	BigInt() *big.Int

	// String returns the canonical representative in decimal.
	String() string
}

// Field is a prime field Z/pZ.
type Field interface {
	// Name returns a short identifier such as "bn254".
	Name() string

	// Modulus returns a copy of the field order p.
	Modulus() *big.Int

	// Size returns the byte length of Element.Bytes.
	Size() int

	Zero() Element
	One() Element

	// FromInt64 maps v exactly into the field; negative values become p - |v|.
	FromInt64(v int64) Element

	// FromBigInt reduces v modulo p.
	FromBigInt(v *big.Int) Element

	// FromBytes decodes a big-endian value that must already be reduced.
	FromBytes(b []byte) (Element, error)

	// Random draws a uniform element using r as the entropy source.
	Random(r io.Reader) (Element, error)
}
