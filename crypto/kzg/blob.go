package kzg

import (
	"github.com/ethereum/go-peerdas-kzg/params"
	"github.com/protolambda/go-kzg/bls"
)

// ParseBlob splits blob bytes into FIELD_ELEMENTS_PER_BLOB field elements,
// each validated canonical. The elements are in bit-reversal order on the
// small domain, matching the EIP-4844 blob convention this lineage already
// uses (SPEC_FULL.md §3).
func ParseBlob(blob []byte) ([]FieldElement, error) {
	if len(blob) != params.BytesPerBlob {
		return nil, ErrLengthMismatch
	}
	out := make([]FieldElement, params.FieldElementsPerBlob)
	for i := 0; i < params.FieldElementsPerBlob; i++ {
		var b [32]byte
		copy(b[:], blob[i*params.BytesPerFieldElement:(i+1)*params.BytesPerFieldElement])
		fe, err := FieldFromBytes(b)
		if err != nil {
			return nil, err
		}
		out[i] = fe
	}
	return out, nil
}

// PolynomialEvalToCoeff converts a bit-reversed evaluation-form polynomial
// (as produced by ParseBlob) into coefficient form. It first undoes the
// bit-reversal permutation to recover natural evaluation order (the order
// the roots-of-unity table is indexed in), then runs the inverse FFT.
func PolynomialEvalToCoeff(evalBrp []FieldElement) ([]FieldElement, error) {
	evalNatural, err := BitReversalPermutation(evalBrp)
	if err != nil {
		return nil, err
	}
	roots, err := RootsOfUnity(uint64(len(evalBrp)))
	if err != nil {
		return nil, err
	}
	return FFT(evalNatural, roots, true)
}

// CommitCoeffPoly computes a monomial-basis KZG commitment to a
// coefficient-form polynomial (SPEC_FULL.md §4.7's blob_to_kzg_commitment).
func CommitCoeffPoly(polyCoeff []FieldElement, setup *TrustedSetup) (bls.G1Point, error) {
	if len(polyCoeff) > len(setup.G1Monomial) {
		return bls.G1Point{}, ErrDegreeOverflow
	}
	return g1Lincomb(setup.G1Monomial[:len(polyCoeff)], polyCoeff), nil
}
