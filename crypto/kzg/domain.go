package kzg

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-peerdas-kzg/params"
	"github.com/protolambda/go-kzg/bls"
)

// BLSModulus is the BLS12-381 scalar field order r.
var BLSModulus, _ = new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

var domainCache sync.Map // uint64 -> []FieldElement

// RootsOfUnity returns the ordered sequence 1, ω, ω², …, ω^(n-1) where ω is
// the canonical n-th root of unity for n a power of two. Tables are computed
// once per distinct n and cached, matching the concurrency model's
// lazily-built, never-mutated roots tables (SPEC_FULL.md §5).
func RootsOfUnity(n uint64) ([]FieldElement, error) {
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	if cached, ok := domainCache.Load(n); ok {
		return cached.([]FieldElement), nil
	}

	exp := new(big.Int).Sub(BLSModulus, big.NewInt(1))
	exp.Div(exp, new(big.Int).SetUint64(n))
	rootBig := new(big.Int).Exp(big.NewInt(int64(params.PrimitiveRootOfUnity)), exp, BLSModulus)

	var root FieldElement
	bls.SetFr(&root, rootBig.String())

	roots := make([]FieldElement, n)
	roots[0] = One()
	for i := uint64(1); i < n; i++ {
		roots[i] = Mul(&roots[i-1], &root)
	}

	domainCache.Store(n, roots)
	return roots, nil
}

func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

func bitLen(n uint64) uint {
	var l uint
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

// ReverseBits reverses the low `bits` bits of i.
func ReverseBits(i uint64, bits uint) uint64 {
	var out uint64
	for b := uint(0); b < bits; b++ {
		out <<= 1
		out |= (i >> b) & 1
	}
	return out
}

// BitReversalPermutation reorders xs, of power-of-two length, so the element
// at index i moves to index reverse_bits(i). It is its own inverse.
func BitReversalPermutation[T any](xs []T) ([]T, error) {
	n := uint64(len(xs))
	if !IsPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}
	bits := bitLen(n)
	out := make([]T, n)
	for i := uint64(0); i < n; i++ {
		out[ReverseBits(i, bits)] = xs[i]
	}
	return out, nil
}
