package kzg

// FFT computes the discrete Fourier transform of vals over the field, using
// the Cooley-Tukey radix-2 decimation-in-time identity given in
// SPEC_FULL.md §4.3:
//
//	FFT(a)[i]       = L[i] + ω^i · R[i]
//	FFT(a)[i+n/2]   = L[i] − ω^i · R[i]
//
// roots must be the precomputed roots-of-unity table for len(vals), in
// natural order (roots[i] == ω^i). When inv is true, the inverse transform
// is computed by evaluating against the reversed roots order
// (roots[0], roots[n-1], ..., roots[1]) and dividing every output by n.
//
// This is the literal recursive formulation rather than an in-place
// iterative rewrite; see DESIGN.md's REDESIGN FLAGS for why that tradeoff
// was made in this pass.
func FFT(vals []FieldElement, roots []FieldElement, inv bool) ([]FieldElement, error) {
	n := uint64(len(vals))
	if n == 0 || n != uint64(len(roots)) || !IsPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}

	useRoots := roots
	if inv {
		useRoots = invertRootsOrder(roots)
	}

	out := fftRecursive(vals, useRoots)

	if inv {
		nFe := FromUint64(n)
		nInvFe, err := Inv(&nFe)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = Mul(&out[i], &nInvFe)
		}
	}
	return out, nil
}

// invertRootsOrder builds roots[0], roots[n-1], roots[n-2], ..., roots[1],
// the ordering SPEC_FULL.md §4.3 requires for the inverse transform.
func invertRootsOrder(roots []FieldElement) []FieldElement {
	n := len(roots)
	out := make([]FieldElement, n)
	out[0] = roots[0]
	for i := 1; i < n; i++ {
		out[i] = roots[n-i]
	}
	return out
}

func fftRecursive(vals []FieldElement, roots []FieldElement) []FieldElement {
	n := len(vals)
	if n == 1 {
		return []FieldElement{vals[0]}
	}

	half := n / 2
	evens := make([]FieldElement, half)
	odds := make([]FieldElement, half)
	halfRoots := make([]FieldElement, half)
	for i := 0; i < half; i++ {
		evens[i] = vals[2*i]
		odds[i] = vals[2*i+1]
		halfRoots[i] = roots[2*i]
	}

	l := fftRecursive(evens, halfRoots)
	r := fftRecursive(odds, halfRoots)

	out := make([]FieldElement, n)
	for i := 0; i < half; i++ {
		t := Mul(&roots[i], &r[i])
		out[i] = Add(&l[i], &t)
		out[i+half] = Sub(&l[i], &t)
	}
	return out
}
