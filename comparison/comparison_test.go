package comparison

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

func testParams() pedersen.Params {
	return pedersen.NewParams(group.Ristretto255(), "comparison/test-H")
}

func TestDecompose(t *testing.T) {
	got := Decompose(209348)
	want := []uint8{0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1}
	assert.Equal(t, want, got)

	assert.Equal(t, []uint8{0}, Decompose(0))
	assert.Equal(t, []uint8{1}, Decompose(1))
	assert.Equal(t, Decompose(20933), Decompose(-20933))
}

func TestNonNegativeValueVerifies(t *testing.T) {
	params := testParams()
	comm, witness := Commit(params, 209348)
	proof := Prove(params, comm, witness)
	assert.True(t, Verify(params, comm, proof))
}

func TestNegativeValueIsRejected(t *testing.T) {
	params := testParams()
	comm, witness := Commit(params, -20933)
	proof := Prove(params, comm, witness)
	assert.False(t, Verify(params, comm, proof))
}

func TestTamperedBitZeroIsRejected(t *testing.T) {
	params := testParams()
	comm, witness := Commit(params, 209348)

	// A malicious prover shifts B_0 by G. 209348 is even, so the shifted
	// B_0 commits to the bit 1 under the same randomness, and a proof built
	// over it satisfies both sigma equations. An implementation that skipped
	// the explicit homomorphic check would accept it; only Σ 2^i·B_i == P_x
	// catches that the bits no longer add up to the committed value.
	comm.Bits[0] = params.Group.Element().Add(comm.Bits[0], params.Group.Element().BaseScale(big.NewInt(1)))
	witness.BitValues[0] = 1
	proof := Prove(params, comm, witness)
	assert.False(t, Verify(params, comm, proof))
}

func TestTamperedBitValueBreaksBitnessCheck(t *testing.T) {
	params := testParams()
	comm, witness := Commit(params, 13)
	proof := Prove(params, comm, witness)
	require.True(t, Verify(params, comm, proof))

	forged := Proof{D1: proof.D1, D2: proof.D2, UHat: proof.UHat, RHat: proof.RHat}
	forged.BHat = append([]*big.Int{}, proof.BHat...)
	forged.BHat[0] = new(big.Int).Add(forged.BHat[0], big.NewInt(1))
	assert.False(t, Verify(params, comm, forged))
}

func TestSmallValues(t *testing.T) {
	params := testParams()
	for _, v := range []int32{0, 1, 2, 3, 255, 1024, 1 << 20} {
		comm, witness := Commit(params, v)
		proof := Prove(params, comm, witness)
		assert.True(t, Verify(params, comm, proof), "value %d", v)
	}
}
