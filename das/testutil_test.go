package das

import (
	"github.com/ethereum/go-peerdas-kzg/crypto/kzg"
	"github.com/protolambda/go-kzg/bls"
)

// newTestSetup builds a monomial-basis trusted setup for a secret known only
// to the test: nG1 G1 points and nG2 G2 points, tau^i * G for i in [0, n).
// Mirrors the hardcoded-secret toy-KZG-config pattern used for test and
// benchmark setups elsewhere in this lineage.
func newTestSetup(nG1, nG2 int) *kzg.TrustedSetup {
	var secret kzg.FieldElement
	bls.SetFr(&secret, "8927347823478352432985")

	n := nG1
	if nG2 > n {
		n = nG2
	}
	powers := kzg.ComputePowers(&secret, n)

	g1 := make([]bls.G1Point, nG1)
	for i := 0; i < nG1; i++ {
		bls.MulG1(&g1[i], &bls.GenG1, &powers[i])
	}
	g2 := make([]bls.G2Point, nG2)
	for i := 0; i < nG2; i++ {
		bls.MulG2(&g2[i], &bls.GenG2, &powers[i])
	}
	return &kzg.TrustedSetup{G1Monomial: g1, G2Monomial: g2}
}
