package kzg

import (
	"github.com/protolambda/go-kzg/bls"
)

// FieldElement is a BLS12-381 scalar field element. It is always kept in
// canonical representative form.
type FieldElement = bls.Fr

// Zero and One are the additive and multiplicative identities.
func Zero() FieldElement {
	var z FieldElement
	bls.AsFr(&z, 0)
	return z
}

func One() FieldElement {
	var o FieldElement
	bls.AsFr(&o, 1)
	return o
}

// FieldFromBytes decodes a 32-byte big-endian value into a field element,
// failing with ErrInvalidFieldElement if the integer is not in [0, r).
//
// bls.Fr's own byte order is little-endian internally, so the big-endian
// wire format this module's boundary uses is reversed before FrFrom32.
func FieldFromBytes(b [32]byte) (FieldElement, error) {
	var rev [32]byte
	for i := range b {
		rev[i] = b[31-i]
	}
	var fe FieldElement
	if !bls.FrFrom32(&fe, rev) {
		return fe, ErrInvalidFieldElement
	}
	return fe, nil
}

// FieldToBytes encodes a field element as 32 big-endian bytes.
func FieldToBytes(fe *FieldElement) [32]byte {
	le := bls.FrTo32(fe)
	var out [32]byte
	for i := range le {
		out[i] = le[31-i]
	}
	return out
}

func Add(a, b *FieldElement) FieldElement {
	var out FieldElement
	bls.AddModFr(&out, a, b)
	return out
}

func Sub(a, b *FieldElement) FieldElement {
	var out FieldElement
	bls.SubModFr(&out, a, b)
	return out
}

func Neg(a *FieldElement) FieldElement {
	zero := Zero()
	return Sub(&zero, a)
}

func Mul(a, b *FieldElement) FieldElement {
	var out FieldElement
	bls.MulModFr(&out, a, b)
	return out
}

// Inv returns the multiplicative inverse of a, failing on zero.
func Inv(a *FieldElement) (FieldElement, error) {
	if IsZero(a) {
		return Zero(), ErrDivisionByZero
	}
	one := One()
	var out FieldElement
	bls.DivModFr(&out, &one, a)
	return out, nil
}

// Div computes a/b, failing if b is zero.
func Div(a, b *FieldElement) (FieldElement, error) {
	if IsZero(b) {
		return Zero(), ErrDivisionByZero
	}
	var out FieldElement
	bls.DivModFr(&out, a, b)
	return out, nil
}

// Pow computes base^exp via square-and-multiply.
func Pow(base *FieldElement, exp uint64) FieldElement {
	result := One()
	b := *base
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(&result, &b)
		}
		b = Mul(&b, &b)
		exp >>= 1
	}
	return result
}

func Equal(a, b *FieldElement) bool {
	return bls.EqualFr(a, b)
}

func IsZero(a *FieldElement) bool {
	zero := Zero()
	return Equal(a, &zero)
}

// FromUint64 constructs a field element from a small non-negative integer.
func FromUint64(v uint64) FieldElement {
	var out FieldElement
	bls.AsFr(&out, v)
	return out
}

// ComputePowers returns [1, base, base^2, ..., base^(n-1)], used to build the
// random weights of a Fiat-Shamir batch-verification linear combination.
func ComputePowers(base *FieldElement, n int) []FieldElement {
	out := make([]FieldElement, n)
	if n == 0 {
		return out
	}
	out[0] = One()
	for i := 1; i < n; i++ {
		out[i] = Mul(&out[i-1], base)
	}
	return out
}
