package kzg

import (
	"testing"

	"github.com/ethereum/go-peerdas-kzg/params"
)

// extendToCells mirrors das.ComputeCells without importing the das package
// (which itself depends on crypto/kzg): it zero-pads a low-degree polynomial
// to the doubled domain, forward-transforms it, and slices the bit-reversed
// result into CELLS_PER_EXT_BLOB cells.
func extendToCells(t *testing.T, polyCoeff []FieldElement) [][]byte {
	t.Helper()
	padded := make([]FieldElement, params.FieldElementsPerExtBlob)
	zero := Zero()
	for i := range padded {
		padded[i] = zero
	}
	copy(padded, polyCoeff)

	extDomain, err := RootsOfUnity(params.FieldElementsPerExtBlob)
	if err != nil {
		t.Fatalf("RootsOfUnity: %v", err)
	}
	evalsNatural, err := FFT(padded, extDomain, false)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}
	evalsBrp, err := BitReversalPermutation(evalsNatural)
	if err != nil {
		t.Fatalf("BitReversalPermutation: %v", err)
	}

	w := params.FieldElementsPerCell
	cells := make([][]byte, params.CellsPerExtBlob)
	for c := 0; c < params.CellsPerExtBlob; c++ {
		cellBytes, err := CosetEvalsToCell(evalsBrp[c*w : (c+1)*w])
		if err != nil {
			t.Fatalf("CosetEvalsToCell: %v", err)
		}
		cells[c] = cellBytes
	}
	return cells
}

func TestRecoverAllCellsFromExactlyHalf(t *testing.T) {
	polyCoeff := make([]FieldElement, params.FieldElementsPerBlob)
	for i := range polyCoeff {
		polyCoeff[i] = FromUint64(uint64(i*11 + 3))
	}
	cells := extendToCells(t, polyCoeff)

	var ids []uint64
	var have [][]byte
	for c := uint64(0); c < params.CellsPerExtBlob; c += 2 {
		ids = append(ids, c)
		have = append(have, cells[c])
	}

	recovered, err := RecoverAllCells(ids, have)
	if err != nil {
		t.Fatalf("RecoverAllCells: %v", err)
	}
	if len(recovered) != params.CellsPerExtBlob {
		t.Fatalf("len(recovered) = %d want %d", len(recovered), params.CellsPerExtBlob)
	}
	for c := range cells {
		if len(recovered[c]) != len(cells[c]) {
			t.Fatalf("cell %d: length mismatch", c)
		}
		for i := range cells[c] {
			if recovered[c][i] != cells[c][i] {
				t.Fatalf("cell %d byte %d mismatch", c, i)
			}
		}
	}
}

func TestRecoverAllCellsInsufficientData(t *testing.T) {
	polyCoeff := make([]FieldElement, params.FieldElementsPerBlob)
	for i := range polyCoeff {
		polyCoeff[i] = FromUint64(uint64(i))
	}
	cells := extendToCells(t, polyCoeff)

	half := params.CellsPerExtBlob / 2
	ids := make([]uint64, 0, half-1)
	have := make([][]byte, 0, half-1)
	for c := uint64(0); c < uint64(half-1); c++ {
		ids = append(ids, c)
		have = append(have, cells[c])
	}

	if _, err := RecoverAllCells(ids, have); err != ErrInsufficientData {
		t.Fatalf("got %v want ErrInsufficientData", err)
	}
}

func TestRecoverAllCellsDuplicateID(t *testing.T) {
	polyCoeff := make([]FieldElement, params.FieldElementsPerBlob)
	for i := range polyCoeff {
		polyCoeff[i] = FromUint64(uint64(i))
	}
	cells := extendToCells(t, polyCoeff)

	// A large-enough-by-count but duplicated id set.
	ids := make([]uint64, params.CellsPerExtBlob/2+1)
	have := make([][]byte, params.CellsPerExtBlob/2+1)
	for i := range ids {
		ids[i] = 0
		have[i] = cells[0]
	}

	if _, err := RecoverAllCells(ids, have); err != ErrDuplicateCellId {
		t.Fatalf("got %v want ErrDuplicateCellId", err)
	}
}

func TestRecoverAllCellsAllPresentIsIdentity(t *testing.T) {
	polyCoeff := make([]FieldElement, params.FieldElementsPerBlob)
	for i := range polyCoeff {
		polyCoeff[i] = FromUint64(uint64(i*5 + 1))
	}
	cells := extendToCells(t, polyCoeff)

	ids := make([]uint64, params.CellsPerExtBlob)
	for i := range ids {
		ids[i] = uint64(i)
	}

	recovered, err := RecoverAllCells(ids, cells)
	if err != nil {
		t.Fatalf("RecoverAllCells: %v", err)
	}
	for c := range cells {
		for i := range cells[c] {
			if recovered[c][i] != cells[c][i] {
				t.Fatalf("cell %d byte %d mismatch", c, i)
			}
		}
	}
}
