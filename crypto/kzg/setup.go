package kzg

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/protolambda/go-kzg/bls"
)

// TrustedSetup holds the immutable monomial-basis G1 and G2 point sequences
// the multi-proof prover and verifier commit and open against. It is built
// once and shared read-only (SPEC_FULL.md §5, §9: explicit context rather
// than hidden package-level state).
type TrustedSetup struct {
	G1Monomial []bls.G1Point
	G2Monomial []bls.G2Point
}

// jsonTrustedSetup is this module's own local trusted-setup file shape: hex
// strings for each compressed point. It is not claimed to be the canonical
// mainnet KZG ceremony format (SPEC_FULL.md §9 resolves that open question
// by scoping this loader to local testing and benchmarking only).
type jsonTrustedSetup struct {
	G1Monomial []string `json:"g1_monomial"`
	G2Monomial []string `json:"g2_monomial"`
}

// LoadTrustedSetup reads a jsonTrustedSetup document from r and decompresses
// every point, validating each is on-curve and in the correct subgroup (the
// guarantee bls.FromCompressedG1/G2 themselves provide).
func LoadTrustedSetup(r io.Reader) (*TrustedSetup, error) {
	var parsed jsonTrustedSetup
	if err := json.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	g1 := make([]bls.G1Point, len(parsed.G1Monomial))
	for i, s := range parsed.G1Monomial {
		b, err := decodeHexPoint(s)
		if err != nil {
			return nil, fmt.Errorf("g1_monomial[%d]: %w", i, err)
		}
		p, err := bls.FromCompressedG1(b)
		if err != nil {
			return nil, fmt.Errorf("%w: g1_monomial[%d]: %v", ErrInvalidEncoding, i, err)
		}
		g1[i] = *p
	}

	g2 := make([]bls.G2Point, len(parsed.G2Monomial))
	for i, s := range parsed.G2Monomial {
		b, err := decodeHexPoint(s)
		if err != nil {
			return nil, fmt.Errorf("g2_monomial[%d]: %w", i, err)
		}
		p, err := bls.FromCompressedG2(b)
		if err != nil {
			return nil, fmt.Errorf("%w: g2_monomial[%d]: %v", ErrInvalidEncoding, i, err)
		}
		g2[i] = *p
	}

	return &TrustedSetup{G1Monomial: g1, G2Monomial: g2}, nil
}

func decodeHexPoint(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}
