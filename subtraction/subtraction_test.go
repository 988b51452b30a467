package subtraction

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

func testParams() pedersen.Params {
	return pedersen.NewParams(group.Ristretto255(), "subtraction/test-H")
}

func TestLiteralScenario(t *testing.T) {
	params := testParams()
	va := new(big.Int).Exp(big.NewInt(19), big.NewInt(9), nil).Uint64()
	vb := new(big.Int).Exp(big.NewInt(3), big.NewInt(5), nil).Uint64()

	aComm, aWit := Commit(params, va)
	bComm, bWit := Commit(params, vb)
	cComm, cWit := CommitDiff(params, aWit, bWit)

	proof := Prove(params, aComm, bComm, cComm, cWit)
	assert.True(t, Verify(params, aComm, bComm, cComm, proof))
}

func TestSumInsteadOfDiffIsRejected(t *testing.T) {
	params := testParams()
	aComm, aWit := Commit(params, 998)
	bComm, bWit := Commit(params, 558)

	wrongValue := new(big.Int).Add(aWit.Value, bWit.Value)
	forgedComm, forgedWit := Commit(params, wrongValue.Uint64())

	proof := Prove(params, aComm, bComm, forgedComm, forgedWit)
	assert.False(t, Verify(params, aComm, bComm, forgedComm, proof))
	_, _ = bWit, aWit
}

func TestCompletenessRandomized(t *testing.T) {
	params := testParams()
	for i := 0; i < 30; i++ {
		va := uint64(rand.Int63n(1 << 32))
		vb := uint64(rand.Int63n(int64(va) + 1))

		aComm, aWit := Commit(params, va)
		bComm, bWit := Commit(params, vb)
		cComm, cWit := CommitDiff(params, aWit, bWit)

		proof := Prove(params, aComm, bComm, cComm, cWit)
		assert.True(t, Verify(params, aComm, bComm, cComm, proof))
	}
}
