package multiplication

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

func testParams() pedersen.Params {
	return pedersen.NewParams(group.Ristretto255(), "multiplication/test-H")
}

func proveProduct(params pedersen.Params, va, vb uint64) (Commitment, Commitment, Commitment, Proof) {
	aComm, aWit := Commit(params, va)
	bComm, bWit := Commit(params, vb)

	vc := new(big.Int).Mul(new(big.Int).SetUint64(va), new(big.Int).SetUint64(vb))
	cComm, cWit := Commit(params, vc.Uint64())

	s := DeriveAuxiliary(params, aWit, cWit, bWit.Value)
	proof := Prove(params, aComm, bComm, cComm, bWit, s)
	return aComm, bComm, cComm, proof
}

func TestLiteralScenario(t *testing.T) {
	params := testParams()
	aComm, bComm, cComm, proof := proveProduct(params, 13, 29)
	assert.True(t, Verify(params, aComm, bComm, cComm, proof))
}

func TestWrongProductIsRejected(t *testing.T) {
	params := testParams()
	aComm, aWit := Commit(params, 13)
	bComm, bWit := Commit(params, 29)
	cComm, cWit := Commit(params, 400) // 13*29 = 377, not 400

	s := DeriveAuxiliary(params, aWit, cWit, bWit.Value)
	proof := Prove(params, aComm, bComm, cComm, bWit, s)
	assert.False(t, Verify(params, aComm, bComm, cComm, proof))
}

func TestSwappedOperandsAreRejected(t *testing.T) {
	params := testParams()
	aComm, bComm, cComm, proof := proveProduct(params, 13, 29)

	// A proof built for (a, b, c) must not verify against (b, a, c).
	assert.False(t, Verify(params, bComm, aComm, cComm, proof))
}

func TestCompletenessRandomized(t *testing.T) {
	params := testParams()
	for i := 0; i < 30; i++ {
		va := uint64(rand.Int63n(1 << 16))
		vb := uint64(rand.Int63n(1 << 16))

		aComm, bComm, cComm, proof := proveProduct(params, va, vb)
		assert.True(t, Verify(params, aComm, bComm, cComm, proof))
	}
}
