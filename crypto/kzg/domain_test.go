package kzg

import "testing"

func TestRootsOfUnity(t *testing.T) {
	for _, n := range []uint64{1, 2, 4, 8, 16, 64} {
		roots, err := RootsOfUnity(n)
		if err != nil {
			t.Fatalf("RootsOfUnity(%d): %v", n, err)
		}
		if uint64(len(roots)) != n {
			t.Fatalf("RootsOfUnity(%d): len = %d", n, len(roots))
		}
		one := One()
		if !Equal(&roots[0], &one) {
			t.Fatalf("roots[0] != 1 for n=%d", n)
		}
		if n > 1 {
			// roots[n-1] * roots[1] should equal roots[0] = 1, since roots[n-1] is
			// the inverse of the primitive root.
			last := Mul(&roots[n-1], &roots[1])
			if !Equal(&last, &one) {
				t.Fatalf("roots[n-1]*roots[1] != 1 for n=%d", n)
			}
			// omega^n == 1.
			omegaN := Pow(&roots[1], n)
			if !Equal(&omegaN, &one) {
				t.Fatalf("omega^n != 1 for n=%d", n)
			}
		}
		// Cached call returns the identical table.
		roots2, err := RootsOfUnity(n)
		if err != nil {
			t.Fatalf("RootsOfUnity(%d) second call: %v", n, err)
		}
		for i := range roots {
			if !Equal(&roots[i], &roots2[i]) {
				t.Fatalf("cached roots table mismatch at %d for n=%d", i, n)
			}
		}
	}
}

func TestRootsOfUnityNotPowerOfTwo(t *testing.T) {
	for _, n := range []uint64{0, 3, 5, 6, 100} {
		if _, err := RootsOfUnity(n); err != ErrNotPowerOfTwo {
			t.Fatalf("RootsOfUnity(%d): got %v want ErrNotPowerOfTwo", n, err)
		}
	}
}

func TestBitReversalPermutationInvolution(t *testing.T) {
	xs := make([]FieldElement, 16)
	for i := range xs {
		xs[i] = FromUint64(uint64(i))
	}
	brp, err := BitReversalPermutation(xs)
	if err != nil {
		t.Fatalf("BitReversalPermutation: %v", err)
	}
	back, err := BitReversalPermutation(brp)
	if err != nil {
		t.Fatalf("BitReversalPermutation (second pass): %v", err)
	}
	for i := range xs {
		if !Equal(&xs[i], &back[i]) {
			t.Fatalf("involution failed at index %d", i)
		}
	}
}

func TestBitReversalPermutationKnownValues(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7}
	out, err := BitReversalPermutation(xs)
	if err != nil {
		t.Fatalf("BitReversalPermutation: %v", err)
	}
	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %d want %d", i, out[i], want[i])
		}
	}
}

func TestBitReversalPermutationNotPowerOfTwo(t *testing.T) {
	if _, err := BitReversalPermutation([]int{1, 2, 3}); err != ErrNotPowerOfTwo {
		t.Fatalf("got %v want ErrNotPowerOfTwo", err)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []uint64{1, 2, 4, 8, 1024} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = false", n)
		}
	}
	for _, n := range []uint64{0, 3, 5, 6, 1023} {
		if IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = true", n)
		}
	}
}

func TestReverseBits(t *testing.T) {
	cases := []struct {
		i, bits, want uint64
	}{
		{0b001, 3, 0b100},
		{0b110, 3, 0b011},
		{0, 3, 0},
		{0b1111, 4, 0b1111},
	}
	for _, c := range cases {
		if got := ReverseBits(c.i, uint(c.bits)); got != c.want {
			t.Fatalf("ReverseBits(%b, %d) = %b want %b", c.i, c.bits, got, c.want)
		}
	}
}
