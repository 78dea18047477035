// Package params collects the preset constants for the PeerDAS cell-proof core.
//
// These mirror the consensus preset values used across the cell/KZG machinery;
// they are intentionally scoped to this module's own needs rather than pulled
// in from a general chain-configuration package.
package params

const (
	// FieldElementsPerBlob is the number of BLS12-381 scalar field elements
	// encoded in a single blob.
	FieldElementsPerBlob = 4096

	// FieldElementsPerExtBlob is the size of the Reed-Solomon extended
	// evaluation domain: exactly double the blob domain.
	FieldElementsPerExtBlob = 2 * FieldElementsPerBlob

	// FieldElementsPerCell is the number of field elements in one cell's
	// coset of evaluations.
	FieldElementsPerCell = 64

	// CellsPerExtBlob is the number of cells an extended blob is sliced into.
	CellsPerExtBlob = FieldElementsPerExtBlob / FieldElementsPerCell

	// BytesPerFieldElement is the canonical big-endian encoding width of a
	// BLS12-381 scalar field element.
	BytesPerFieldElement = 32

	// BytesPerBlob is the wire size of a blob.
	BytesPerBlob = FieldElementsPerBlob * BytesPerFieldElement

	// BytesPerCell is the wire size of one cell.
	BytesPerCell = FieldElementsPerCell * BytesPerFieldElement

	// BytesPerCommitment and BytesPerProof are the compressed G1 point size.
	BytesPerCommitment = 48
	BytesPerProof      = 48

	// BytesPerG2Point is the compressed G2 point size, used by the trusted
	// setup's G2 monomial basis.
	BytesPerG2Point = 96

	// PrimitiveRootOfUnity is the BLS12-381 scalar field generator used both
	// to build roots-of-unity tables and as the coset shift factor during
	// reconstruction.
	PrimitiveRootOfUnity = 7

	// DataColumnSidecarSubnetCount is the number of gossip subnets that
	// column index traffic is spread across.
	DataColumnSidecarSubnetCount = 128

	// KZGCommitmentsInclusionProofDepth is the depth of the Merkle branch
	// binding a DataColumnSidecar's commitments to its block body.
	KZGCommitmentsInclusionProofDepth = 4
)
