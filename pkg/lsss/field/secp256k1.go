package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"runtime"

	"github.com/btcsuite/btcd/btcec/v2"
)

const secp256k1Size = 32

// secp256k1Order is the group order n of secp256k1.
var secp256k1Order = new(big.Int).Set(btcec.S256().Params().N)

type secp256k1Field struct{}

// Secp256k1 returns the scalar field of secp256k1 (integers modulo the group
// order n). Arithmetic is delegated to btcec's ModNScalar, which is constant
// time for everything except inversion.
func Secp256k1() Field { return secp256k1Field{} }

func (secp256k1Field) Name() string      { return "secp256k1" }
func (secp256k1Field) Modulus() *big.Int { return new(big.Int).Set(secp256k1Order) }
func (secp256k1Field) Size() int         { return secp256k1Size }

func (secp256k1Field) Zero() Element { return secpElement{} }

func (secp256k1Field) One() Element {
	var e secpElement
	e.v.SetInt(1)
	return e
}

func (f secp256k1Field) FromInt64(v int64) Element {
	return f.FromBigInt(big.NewInt(v))
}

func (secp256k1Field) FromBigInt(v *big.Int) Element {
	var e secpElement
	if v == nil {
		return e
	}
	reduced := new(big.Int).Mod(v, secp256k1Order)
	var buf [secp256k1Size]byte
	reduced.FillBytes(buf[:])
	e.v.SetBytes(&buf)
	return e
}

func (secp256k1Field) FromBytes(b []byte) (Element, error) {
	if len(b) == 0 || len(b) > secp256k1Size {
		return nil, fmt.Errorf("%w: length %d", ErrNonCanonical, len(b))
	}
	var e secpElement
	if overflow := e.v.SetByteSlice(b); overflow {
		return nil, ErrNonCanonical
	}
	return e, nil
}

func (secp256k1Field) Random(r io.Reader) (Element, error) {
	if r == nil {
		r = rand.Reader
	}
	var buf [secp256k1Size]byte
	defer zeroize(buf[:])
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("field: sample secp256k1: %w", err)
		}
		var e secpElement
		// Reject values >= n instead of reducing them to keep the draw uniform.
		if overflow := e.v.SetByteSlice(buf[:]); !overflow {
			return e, nil
		}
	}
}

type secpElement struct {
	v btcec.ModNScalar
}

func (e secpElement) peer(other Element) secpElement {
	o, ok := other.(secpElement)
	if !ok {
		panic(ErrFieldMismatch)
	}
	return o
}

func (e secpElement) Add(other Element) Element {
	o := e.peer(other)
	var out secpElement
	out.v.Add2(&e.v, &o.v)
	return out
}

func (e secpElement) Sub(other Element) Element {
	o := e.peer(other)
	var out secpElement
	out.v.NegateVal(&o.v)
	out.v.Add(&e.v)
	return out
}

func (e secpElement) Mul(other Element) Element {
	o := e.peer(other)
	var out secpElement
	out.v.Mul2(&e.v, &o.v)
	return out
}

func (e secpElement) Neg() Element {
	var out secpElement
	out.v.NegateVal(&e.v)
	return out
}

func (e secpElement) Inverse() (Element, error) {
	if e.v.IsZero() {
		return nil, ErrZeroInverse
	}
	var out secpElement
	out.v.InverseValNonConst(&e.v)
	return out, nil
}

func (e secpElement) IsZero() bool { return e.v.IsZero() }

func (e secpElement) Equal(other Element) bool {
	o := e.peer(other)
	return e.v.Equals(&o.v)
}

func (e secpElement) Bytes() []byte {
	b := e.v.Bytes()
	return b[:]
}

func (e secpElement) BigInt() *big.Int {
	b := e.v.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func (e secpElement) String() string { return e.BigInt().String() }

// zeroize overwrites buf and keeps the store from being optimised away.
func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
