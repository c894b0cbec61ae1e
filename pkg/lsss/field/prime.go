package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const primalityRounds = 32

// Prime is a prime field backed by math/big. It accepts any prime modulus,
// including small ones that are handy for exercising singular cases.
type Prime struct {
	name string
	p    *big.Int
	size int
}

// NewPrime returns the field of integers modulo p. The modulus is copied.
func NewPrime(name string, p *big.Int) (*Prime, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNotPrime, p)
	}
	if !p.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: %s", ErrNotPrime, p)
	}
	if name == "" {
		name = "prime-" + p.String()
	}
	return &Prime{
		name: name,
		p:    new(big.Int).Set(p),
		size: (p.BitLen() + 7) / 8,
	}, nil
}

func mustPrime(name, decimal string) *Prime {
	p, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("field: bad modulus literal for " + name)
	}
	f, err := NewPrime(name, p)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Prime) Name() string      { return f.name }
func (f *Prime) Modulus() *big.Int { return new(big.Int).Set(f.p) }
func (f *Prime) Size() int         { return f.size }

func (f *Prime) Zero() Element { return primeElement{f: f, v: new(big.Int)} }
func (f *Prime) One() Element  { return primeElement{f: f, v: big.NewInt(1)} }

func (f *Prime) FromInt64(v int64) Element {
	return f.FromBigInt(big.NewInt(v))
}

func (f *Prime) FromBigInt(v *big.Int) Element {
	if v == nil {
		return f.Zero()
	}
	// Mod is Euclidean, so negative inputs land in [0, p).
	return primeElement{f: f, v: new(big.Int).Mod(v, f.p)}
}

func (f *Prime) FromBytes(b []byte) (Element, error) {
	if len(b) == 0 || len(b) > f.size {
		return nil, fmt.Errorf("%w: length %d", ErrNonCanonical, len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(f.p) >= 0 {
		return nil, ErrNonCanonical
	}
	return primeElement{f: f, v: v}, nil
}

func (f *Prime) Random(r io.Reader) (Element, error) {
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, f.p)
	if err != nil {
		return nil, fmt.Errorf("field: sample %s: %w", f.name, err)
	}
	return primeElement{f: f, v: v}, nil
}

type primeElement struct {
	f *Prime
	v *big.Int
}

func (e primeElement) peer(other Element) primeElement {
	o, ok := other.(primeElement)
	if !ok || (o.f != e.f && o.f.p.Cmp(e.f.p) != 0) {
		panic(ErrFieldMismatch)
	}
	return o
}

func (e primeElement) wrap(v *big.Int) Element {
	return primeElement{f: e.f, v: v.Mod(v, e.f.p)}
}

func (e primeElement) Add(other Element) Element {
	o := e.peer(other)
	return e.wrap(new(big.Int).Add(e.v, o.v))
}

func (e primeElement) Sub(other Element) Element {
	o := e.peer(other)
	return e.wrap(new(big.Int).Sub(e.v, o.v))
}

func (e primeElement) Mul(other Element) Element {
	o := e.peer(other)
	return e.wrap(new(big.Int).Mul(e.v, o.v))
}

func (e primeElement) Neg() Element {
	return e.wrap(new(big.Int).Neg(e.v))
}

func (e primeElement) Inverse() (Element, error) {
	if e.v.Sign() == 0 {
		return nil, ErrZeroInverse
	}
	inv := new(big.Int).ModInverse(e.v, e.f.p)
	if inv == nil {
		return nil, ErrZeroInverse
	}
	return primeElement{f: e.f, v: inv}, nil
}

func (e primeElement) IsZero() bool { return e.v.Sign() == 0 }

func (e primeElement) Equal(other Element) bool {
	o := e.peer(other)
	return e.v.Cmp(o.v) == 0
}

func (e primeElement) Bytes() []byte {
	return e.v.FillBytes(make([]byte, e.f.size))
}

func (e primeElement) BigInt() *big.Int { return new(big.Int).Set(e.v) }

func (e primeElement) String() string { return e.v.String() }
