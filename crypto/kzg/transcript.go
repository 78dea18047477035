package kzg

import (
	"crypto/sha256"
	"math/big"
)

// HashToField reduces a SHA-256 digest of data modulo r, yielding a field
// element suitable as a Fiat-Shamir challenge. Grounded in this lineage's
// own hash_to_bls_field precursor: sha256 the transcript bytes, reinterpret
// the digest as a little-endian integer, and reduce mod the scalar field
// order.
func HashToField(data []byte) FieldElement {
	digest := sha256.Sum256(data)
	var le [32]byte = digest
	for i := 0; i < 16; i++ {
		le[31-i], le[i] = le[i], le[31-i]
	}
	reduced := new(big.Int).Mod(new(big.Int).SetBytes(le[:]), BLSModulus)

	var out [32]byte
	reduced.FillBytes(out[:])
	fe, _ := FieldFromBytes(out)
	return fe
}
