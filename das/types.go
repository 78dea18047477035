// Package das implements the blob-extension, cell-verification, and
// column/subnet helpers that sit on top of the crypto/kzg core: the
// external interfaces of SPEC_FULL.md §6.
package das

import (
	"github.com/ethereum/go-peerdas-kzg/common"
	"github.com/ethereum/go-peerdas-kzg/params"
)

// Blob is the raw blob payload, BYTES_PER_BLOB bytes.
type Blob [params.BytesPerBlob]byte

func (b Blob) MarshalText() ([]byte, error) {
	return common.MarshalFixedText(b[:]), nil
}

func (b *Blob) UnmarshalText(input []byte) error {
	return common.UnmarshalFixedText("Blob", input, b[:])
}

// Cell is one coset's worth of evaluations, serialized.
type Cell [params.BytesPerCell]byte

func (c Cell) MarshalText() ([]byte, error) {
	return common.MarshalFixedText(c[:]), nil
}

func (c *Cell) UnmarshalText(input []byte) error {
	return common.UnmarshalFixedText("Cell", input, c[:])
}

// KZGCommitment is a compressed G1 point committing to a blob's polynomial.
type KZGCommitment [params.BytesPerCommitment]byte

func (c KZGCommitment) MarshalText() ([]byte, error) {
	return common.MarshalFixedText(c[:]), nil
}

func (c *KZGCommitment) UnmarshalText(input []byte) error {
	return common.UnmarshalFixedText("KZGCommitment", input, c[:])
}

func (c KZGCommitment) String() string {
	text, _ := c.MarshalText()
	return string(text)
}

// KZGProof is a compressed G1 point committing to a quotient polynomial.
type KZGProof [params.BytesPerProof]byte

func (p KZGProof) MarshalText() ([]byte, error) {
	return common.MarshalFixedText(p[:]), nil
}

func (p *KZGProof) UnmarshalText(input []byte) error {
	return common.UnmarshalFixedText("KZGProof", input, p[:])
}

func (p KZGProof) String() string {
	text, _ := p.MarshalText()
	return string(text)
}

// DataColumnIdentifier names one column of one block, the unit that gossip
// validation and peer sampling request by (SPEC_FULL.md §6). Its SSZ wire
// codec is an external collaborator's responsibility, not this module's
// (§1 non-goal).
type DataColumnIdentifier struct {
	BlockRoot   [32]byte
	ColumnIndex uint64
}

// DataColumnSidecar is the plain Go value shape of the network envelope
// SPEC_FULL.md §6 describes: a column of cells, their matching commitments
// and proofs, and an inclusion-proof branch binding the commitments to a
// block body. It has no field for the signed block header. This module
// never serializes or Merkleizes it; that is the gossip layer's job.
type DataColumnSidecar struct {
	Index                        uint64
	Column                       []Cell
	KZGCommitments               []KZGCommitment
	KZGProofs                    []KZGProof
	KZGCommitmentsInclusionProof [params.KZGCommitmentsInclusionProofDepth][32]byte
}
