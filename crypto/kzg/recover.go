package kzg

import (
	"fmt"

	"github.com/ethereum/go-peerdas-kzg/params"
)

// RecoverAllCells implements the Reconstructor component (SPEC_FULL.md
// §4.9): given at least half of the CELLS_PER_EXT_BLOB cells, it recovers
// every cell of the extended blob using only field operations and FFTs.
//
// No file in the example pack implements this algorithm; it is built
// directly from the ten numbered steps of the specification on top of the
// already-grounded FFT/PolyVanishing/PolyShift primitives (see DESIGN.md).
func RecoverAllCells(cellIds []uint64, cells [][]byte) (recovered [][]byte, err error) {
	defer recoverInvariant(&err)

	const w = params.FieldElementsPerCell
	const extN = params.FieldElementsPerExtBlob
	const cellCount = params.CellsPerExtBlob

	// Step 1: sanity.
	if len(cellIds) != len(cells) {
		return nil, ErrLengthMismatch
	}
	seen := make(map[uint64]bool, len(cellIds))
	for _, id := range cellIds {
		if id >= cellCount {
			return nil, ErrIndexOutOfRange
		}
		if seen[id] {
			return nil, ErrDuplicateCellId
		}
		seen[id] = true
	}
	for _, c := range cells {
		if len(c) != params.BytesPerCell {
			return nil, ErrLengthMismatch
		}
	}
	if 2*len(cellIds) < cellCount {
		return nil, ErrInsufficientData
	}

	// Step 2: missing set.
	var missing []uint64
	for c := uint64(0); c < cellCount; c++ {
		if !seen[c] {
			missing = append(missing, c)
		}
	}

	smallDomain, err := RootsOfUnity(cellCount)
	if err != nil {
		return nil, err
	}
	smallDomainBrp, err := BitReversalPermutation(smallDomain)
	if err != nil {
		return nil, err
	}

	// Step 3: vanishing polynomial of the missing set, extended to the full
	// domain by injecting coefficients at stride W.
	missingXs := make([]FieldElement, len(missing))
	for i, m := range missing {
		missingXs[i] = smallDomainBrp[m]
	}
	zeroPolySmall := PolyVanishing(missingXs)
	if len(zeroPolySmall) > cellCount+1 {
		panic(fmt.Errorf("%w: vanishing polynomial of missing set too large", ErrInternalInvariantViolation))
	}

	zeroPolyCoeffFull := make([]FieldElement, extN)
	for i := range zeroPolyCoeffFull {
		zeroPolyCoeffFull[i] = Zero()
	}
	for i, c := range zeroPolySmall {
		zeroPolyCoeffFull[i*w] = c
	}

	extDomain, err := RootsOfUnity(extN)
	if err != nil {
		return nil, err
	}

	zeroPolyEvalNatural, err := FFT(zeroPolyCoeffFull, extDomain, false)
	if err != nil {
		return nil, err
	}
	zeroPolyEvalBrp, err := BitReversalPermutation(zeroPolyEvalNatural)
	if err != nil {
		return nil, err
	}
	for _, m := range missing {
		for i := uint64(0); i < w; i++ {
			v := zeroPolyEvalBrp[m*w+i]
			if !IsZero(&v) {
				panic(fmt.Errorf("%w: zero polynomial nonzero at a missing cell position", ErrInternalInvariantViolation))
			}
		}
	}

	// Step 4: load known evaluations, bit-reversed, then un-reverse.
	eBrp := make([]FieldElement, extN)
	for i := range eBrp {
		eBrp[i] = Zero()
	}
	for idx, id := range cellIds {
		evals, err := CellToCosetEvals(cells[idx])
		if err != nil {
			return nil, err
		}
		copy(eBrp[id*w:(id+1)*w], evals)
	}
	eNatural, err := BitReversalPermutation(eBrp)
	if err != nil {
		return nil, err
	}

	// Step 5: pointwise product in evaluation form, inverse-FFT to
	// coefficients.
	product := make([]FieldElement, extN)
	for i := range product {
		product[i] = Mul(&eNatural[i], &zeroPolyEvalNatural[i])
	}
	productCoeff, err := FFT(product, extDomain, true)
	if err != nil {
		return nil, err
	}

	// Step 6: shift by the primitive root and transform back to evaluation
	// form.
	k := FromUint64(params.PrimitiveRootOfUnity)
	shiftedEZCoeff, err := PolyShift(productCoeff, &k)
	if err != nil {
		return nil, err
	}
	shiftedZCoeff, err := PolyShift(zeroPolyCoeffFull, &k)
	if err != nil {
		return nil, err
	}
	shiftedEZEval, err := FFT(shiftedEZCoeff, extDomain, false)
	if err != nil {
		return nil, err
	}
	shiftedZEval, err := FFT(shiftedZCoeff, extDomain, false)
	if err != nil {
		return nil, err
	}

	// Step 7: pointwise divide.
	pShiftedEval := make([]FieldElement, extN)
	for i := range pShiftedEval {
		d, derr := Div(&shiftedEZEval[i], &shiftedZEval[i])
		if derr != nil {
			panic(fmt.Errorf("%w: shifted zero polynomial vanished on the extended domain", ErrInternalInvariantViolation))
		}
		pShiftedEval[i] = d
	}

	// Step 8: inverse-FFT, un-shift by k^-1.
	pShiftedCoeff, err := FFT(pShiftedEval, extDomain, true)
	if err != nil {
		return nil, err
	}
	kInv, err := Inv(&k)
	if err != nil {
		return nil, err
	}
	pCoeff, err := PolyShift(pShiftedCoeff, &kInv)
	if err != nil {
		return nil, err
	}

	// Step 9: forward-FFT, bit-reverse, slice into cells.
	pEvalNatural, err := FFT(pCoeff, extDomain, false)
	if err != nil {
		return nil, err
	}
	pEvalBrp, err := BitReversalPermutation(pEvalNatural)
	if err != nil {
		return nil, err
	}

	recovered = make([][]byte, cellCount)
	for c := uint64(0); c < cellCount; c++ {
		cellBytes, err := CosetEvalsToCell(pEvalBrp[c*w : (c+1)*w])
		if err != nil {
			return nil, err
		}
		recovered[c] = cellBytes
	}

	// Step 10: postcondition check against the original inputs.
	for idx, id := range cellIds {
		orig := cells[idx]
		got := recovered[id]
		if len(orig) != len(got) {
			return nil, ErrReconstructionMismatch
		}
		for i := range orig {
			if orig[i] != got[i] {
				return nil, ErrReconstructionMismatch
			}
		}
	}

	return recovered, nil
}
