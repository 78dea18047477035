package das

import (
	"github.com/ethereum/go-peerdas-kzg/crypto/kzg"
	"github.com/ethereum/go-peerdas-kzg/params"
	"github.com/protolambda/go-kzg/bls"
)

// CosetForCell returns the FIELD_ELEMENTS_PER_CELL evaluation-domain points
// that cell c's proof opens at: the c-th slice of the bit-reversed extended
// domain (SPEC_FULL.md §4.7). The underlying roots table is memoized by
// crypto/kzg.RootsOfUnity.
func CosetForCell(c uint64) ([]kzg.FieldElement, error) {
	if c >= params.CellsPerExtBlob {
		return nil, kzg.ErrIndexOutOfRange
	}
	roots, err := kzg.RootsOfUnity(params.FieldElementsPerExtBlob)
	if err != nil {
		return nil, err
	}
	brp, err := kzg.BitReversalPermutation(roots)
	if err != nil {
		return nil, err
	}
	w := uint64(params.FieldElementsPerCell)
	return brp[c*w : (c+1)*w], nil
}

// polynomialCoeffFromBlob parses blob bytes and inverse-FFTs them into the
// coefficient-form polynomial shared by ComputeCells, ComputeCellsAndProofs,
// and BlobToKZGCommitment.
func polynomialCoeffFromBlob(blob []byte) ([]kzg.FieldElement, error) {
	evalBrp, err := kzg.ParseBlob(blob)
	if err != nil {
		return nil, err
	}
	return kzg.PolynomialEvalToCoeff(evalBrp)
}

// ComputeCells implements SPEC_FULL.md §4.7's no-proof bypass: it forward
// transforms the coefficient-form polynomial on the doubled domain and
// slices the bit-reversed result into cells, without computing any proofs.
func ComputeCells(blob []byte) ([]Cell, error) {
	polyCoeff, err := polynomialCoeffFromBlob(blob)
	if err != nil {
		return nil, err
	}

	padded := make([]kzg.FieldElement, params.FieldElementsPerExtBlob)
	zero := kzg.Zero()
	for i := range padded {
		padded[i] = zero
	}
	copy(padded, polyCoeff)

	extDomain, err := kzg.RootsOfUnity(params.FieldElementsPerExtBlob)
	if err != nil {
		return nil, err
	}
	evalsNatural, err := kzg.FFT(padded, extDomain, false)
	if err != nil {
		return nil, err
	}
	evalsBrp, err := kzg.BitReversalPermutation(evalsNatural)
	if err != nil {
		return nil, err
	}

	w := params.FieldElementsPerCell
	cells := make([]Cell, params.CellsPerExtBlob)
	for c := 0; c < params.CellsPerExtBlob; c++ {
		cellBytes, err := kzg.CosetEvalsToCell(evalsBrp[c*w : (c+1)*w])
		if err != nil {
			return nil, err
		}
		copy(cells[c][:], cellBytes)
	}
	return cells, nil
}

// ComputeCellsAndProofs implements the prover path of SPEC_FULL.md §4.7:
// for each cell's coset, it computes the multi-point opening proof and the
// polynomial's evaluations there.
func ComputeCellsAndProofs(blob []byte, setup *kzg.TrustedSetup) ([]Cell, []KZGProof, error) {
	polyCoeff, err := polynomialCoeffFromBlob(blob)
	if err != nil {
		return nil, nil, err
	}

	cells := make([]Cell, params.CellsPerExtBlob)
	proofs := make([]KZGProof, params.CellsPerExtBlob)
	for c := uint64(0); c < params.CellsPerExtBlob; c++ {
		coset, err := CosetForCell(c)
		if err != nil {
			return nil, nil, err
		}
		proof, ys, err := kzg.ComputeKZGProofMulti(polyCoeff, coset, setup)
		if err != nil {
			return nil, nil, err
		}
		cellBytes, err := kzg.CosetEvalsToCell(ys)
		if err != nil {
			return nil, nil, err
		}
		copy(cells[c][:], cellBytes)
		copy(proofs[c][:], bls.ToCompressedG1(&proof))
	}
	return cells, proofs, nil
}

// BlobToKZGCommitment commits to a blob's coefficient-form polynomial
// against the monomial-basis trusted setup (SPEC_FULL.md §4.7).
func BlobToKZGCommitment(blob []byte, setup *kzg.TrustedSetup) (KZGCommitment, error) {
	polyCoeff, err := polynomialCoeffFromBlob(blob)
	if err != nil {
		return KZGCommitment{}, err
	}
	commitment, err := kzg.CommitCoeffPoly(polyCoeff, setup)
	if err != nil {
		return KZGCommitment{}, err
	}
	var out KZGCommitment
	copy(out[:], bls.ToCompressedG1(&commitment))
	return out, nil
}
