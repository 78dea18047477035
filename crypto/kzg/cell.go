package kzg

import "github.com/ethereum/go-peerdas-kzg/params"

// CellToCosetEvals splits a cell's raw bytes into its coset evaluations
// (SPEC_FULL.md §4.6). It is the adversary-facing entry point for cell
// bytes and always validates canonical field-element encoding.
func CellToCosetEvals(cell []byte) ([]FieldElement, error) {
	if len(cell) != params.BytesPerCell {
		return nil, ErrLengthMismatch
	}
	out := make([]FieldElement, params.FieldElementsPerCell)
	for i := 0; i < params.FieldElementsPerCell; i++ {
		var b [32]byte
		copy(b[:], cell[i*params.BytesPerFieldElement:(i+1)*params.BytesPerFieldElement])
		fe, err := FieldFromBytes(b)
		if err != nil {
			return nil, err
		}
		out[i] = fe
	}
	return out, nil
}

// CosetEvalsToCell serializes coset evaluations back into cell bytes.
func CosetEvalsToCell(evals []FieldElement) ([]byte, error) {
	if len(evals) != params.FieldElementsPerCell {
		return nil, ErrLengthMismatch
	}
	out := make([]byte, params.BytesPerCell)
	for i := range evals {
		b := FieldToBytes(&evals[i])
		copy(out[i*params.BytesPerFieldElement:(i+1)*params.BytesPerFieldElement], b[:])
	}
	return out, nil
}
