package kzg

import "github.com/ethereum/go-peerdas-kzg/params"

// Polynomial add, mul, div, shift, interpolate, vanishing, and evaluate
// (SPEC_FULL.md §4.4), all operating on coefficient-form slices where index
// 0 is the constant term.

func PolyAdd(a, b []FieldElement) []FieldElement {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]FieldElement, n)
	for i := 0; i < n; i++ {
		var av, bv FieldElement
		if i < len(a) {
			av = a[i]
		} else {
			av = Zero()
		}
		if i < len(b) {
			bv = b[i]
		} else {
			bv = Zero()
		}
		out[i] = Add(&av, &bv)
	}
	return out
}

func PolyNeg(a []FieldElement) []FieldElement {
	out := make([]FieldElement, len(a))
	for i := range a {
		out[i] = Neg(&a[i])
	}
	return out
}

// PolyMul is the standard convolution. It fails with ErrDegreeOverflow if
// len(a)+len(b) exceeds FIELD_ELEMENTS_PER_EXT_BLOB.
func PolyMul(a, b []FieldElement) ([]FieldElement, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	if len(a)+len(b) > params.FieldElementsPerExtBlob {
		return nil, ErrDegreeOverflow
	}
	out := make([]FieldElement, len(a)+len(b)-1)
	for i := range out {
		out[i] = Zero()
	}
	for i, av := range a {
		if IsZero(&av) {
			continue
		}
		for j, bv := range b {
			t := Mul(&av, &bv)
			out[i+j] = Add(&out[i+j], &t)
		}
	}
	return out, nil
}

// trueDegree returns the index of the highest nonzero coefficient, or -1 for
// the zero polynomial.
func trueDegree(p []FieldElement) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !IsZero(&p[i]) {
			return i
		}
	}
	return -1
}

// PolyDiv performs polynomial long division, returning the quotient and
// discarding the remainder. The remainder is not checked here or by any
// caller; ComputeKZGProofMulti relies on this to drop the interpolation
// polynomial I(X), which is the remainder of f(X) / Z(X).
func PolyDiv(a, b []FieldElement) ([]FieldElement, error) {
	degB := trueDegree(b)
	if degB < 0 {
		return nil, ErrDivisionByZero
	}
	degA := trueDegree(a)
	if degA < degB {
		return []FieldElement{Zero()}, nil
	}

	rem := make([]FieldElement, degA+1)
	copy(rem, a[:degA+1])

	leadB := b[degB]
	leadBInv, err := Inv(&leadB)
	if err != nil {
		return nil, err
	}

	quotient := make([]FieldElement, degA-degB+1)
	for shift := degA - degB; shift >= 0; shift-- {
		c := Mul(&rem[shift+degB], &leadBInv)
		quotient[shift] = c
		if IsZero(&c) {
			continue
		}
		for i := 0; i <= degB; i++ {
			t := Mul(&c, &b[i])
			rem[shift+i] = Sub(&rem[shift+i], &t)
		}
	}
	return quotient, nil
}

// PolyShift returns g(x) = p(k*x): coefficient i is scaled by k^i.
func PolyShift(p []FieldElement, k *FieldElement) ([]FieldElement, error) {
	if IsZero(k) {
		return nil, ErrDivisionByZero
	}
	out := make([]FieldElement, len(p))
	power := One()
	for i := range p {
		out[i] = Mul(&p[i], &power)
		power = Mul(&power, k)
	}
	return out, nil
}

// PolyVanishing returns the monic polynomial whose roots are exactly xs.
func PolyVanishing(xs []FieldElement) []FieldElement {
	if len(xs) == 0 {
		one := One()
		return []FieldElement{one}
	}
	poly := []FieldElement{One()}
	for _, x := range xs {
		negX := Neg(&x)
		next := make([]FieldElement, len(poly)+1)
		for i := range next {
			next[i] = Zero()
		}
		for i, c := range poly {
			t := Mul(&c, &negX)
			next[i] = Add(&next[i], &t)
			next[i+1] = Add(&next[i+1], &c)
		}
		poly = next
	}
	return poly
}

// PolyInterpolate computes the coefficient-form polynomial of degree
// < len(xs) passing through (xs[i], ys[i]), via Lagrange interpolation. xs
// must be pairwise distinct.
func PolyInterpolate(xs, ys []FieldElement) ([]FieldElement, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return nil, ErrEmptyPointSet
	}
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if Equal(&xs[i], &xs[j]) {
				return nil, ErrDuplicateEvaluationPoint
			}
		}
	}

	result := make([]FieldElement, len(xs))
	for i := range result {
		result[i] = Zero()
	}

	for i := range xs {
		// basisNum = product_{j != i} (x - xs[j])
		basisNum := []FieldElement{One()}
		denom := One()
		for j := range xs {
			if j == i {
				continue
			}
			negXj := Neg(&xs[j])
			next := make([]FieldElement, len(basisNum)+1)
			for k := range next {
				next[k] = Zero()
			}
			for k, c := range basisNum {
				t := Mul(&c, &negXj)
				next[k] = Add(&next[k], &t)
				next[k+1] = Add(&next[k+1], &c)
			}
			basisNum = next

			d := Sub(&xs[i], &xs[j])
			denom = Mul(&denom, &d)
		}
		denomInv, err := Inv(&denom)
		if err != nil {
			return nil, err
		}
		scale := Mul(&ys[i], &denomInv)
		for k, c := range basisNum {
			t := Mul(&c, &scale)
			result[k] = Add(&result[k], &t)
		}
	}
	return result, nil
}

// PolyEvaluate evaluates p at z via Horner's method.
func PolyEvaluate(p []FieldElement, z *FieldElement) FieldElement {
	result := Zero()
	for i := len(p) - 1; i >= 0; i-- {
		result = Mul(&result, z)
		result = Add(&result, &p[i])
	}
	return result
}
