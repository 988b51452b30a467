package equality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

func testParams() pedersen.Params {
	return pedersen.NewParams(group.Ristretto255(), "equality/test-H")
}

func TestLiteralScenarios(t *testing.T) {
	params := testParams()

	aComm, aWit := Commit(params, 77777)
	bComm, bWit := Commit(params, 77777)
	proof := Prove(params, aComm, bComm, aWit, bWit)
	assert.True(t, Verify(params, aComm, bComm, proof))

	cComm, cWit := Commit(params, 154584)
	dComm, dWit := Commit(params, 5488)
	proof2 := Prove(params, cComm, dComm, cWit, dWit)
	assert.False(t, Verify(params, cComm, dComm, proof2))
}

func TestCompletenessAndSoundness(t *testing.T) {
	params := testParams()
	values := []uint64{15, 88, 154584, 1 << 15}
	for _, v := range values {
		aComm, aWit := Commit(params, v)
		bComm, bWit := Commit(params, v)
		proof := Prove(params, aComm, bComm, aWit, bWit)
		assert.True(t, Verify(params, aComm, bComm, proof))
	}

	pairs := [][2]uint64{{150, 58}, {844, 118}, {998, 558}}
	for _, pair := range pairs {
		aComm, aWit := Commit(params, pair[0])
		bComm, bWit := Commit(params, pair[1])
		proof := Prove(params, aComm, bComm, aWit, bWit)
		assert.False(t, Verify(params, aComm, bComm, proof))
	}
}
