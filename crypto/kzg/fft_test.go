package kzg

import "testing"

func TestFFTInvolution(t *testing.T) {
	for _, n := range []uint64{1, 2, 4, 8, 32} {
		roots, err := RootsOfUnity(n)
		if err != nil {
			t.Fatalf("RootsOfUnity(%d): %v", n, err)
		}
		vals := make([]FieldElement, n)
		for i := range vals {
			vals[i] = FromUint64(uint64(i*7 + 1))
		}
		freq, err := FFT(vals, roots, false)
		if err != nil {
			t.Fatalf("FFT forward: %v", err)
		}
		back, err := FFT(freq, roots, true)
		if err != nil {
			t.Fatalf("FFT inverse: %v", err)
		}
		for i := range vals {
			if !Equal(&vals[i], &back[i]) {
				t.Fatalf("n=%d: round trip mismatch at %d: got %v want %v", n, i, back[i], vals[i])
			}
		}
	}
}

func TestFFTConstantPolynomial(t *testing.T) {
	n := uint64(8)
	roots, err := RootsOfUnity(n)
	if err != nil {
		t.Fatalf("RootsOfUnity: %v", err)
	}
	c := FromUint64(42)
	coeffs := make([]FieldElement, n)
	coeffs[0] = c
	for i := 1; i < int(n); i++ {
		coeffs[i] = Zero()
	}
	evals, err := FFT(coeffs, roots, false)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}
	for i, e := range evals {
		if !Equal(&e, &c) {
			t.Fatalf("evals[%d] = %v want constant %v", i, e, c)
		}
	}
}

func TestFFTRejectsMismatchedLengths(t *testing.T) {
	roots, err := RootsOfUnity(4)
	if err != nil {
		t.Fatalf("RootsOfUnity: %v", err)
	}
	vals := make([]FieldElement, 8)
	if _, err := FFT(vals, roots, false); err != ErrNotPowerOfTwo {
		t.Fatalf("got %v want ErrNotPowerOfTwo", err)
	}
}
