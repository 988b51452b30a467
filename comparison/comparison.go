// Package comparison proves, in zero knowledge, that a committed value x
// is non-negative by exhibiting a binary decomposition of |x| and proving
// each digit is a bit. A negative x cannot be so decomposed without the
// prover diverging from the value it actually committed to, which is
// exactly what the first verification equation catches.
package comparison

import (
	"crypto/rand"
	"math/big"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

// Decompose returns the little-endian binary digits of |value|: digit 0 is
// the least significant bit. The result has no leading (most-significant)
// zero beyond what a single zero bit requires, so length equals the bit
// length of |value|, with a minimum of 1.
func Decompose(value int32) []uint8 {
	n := int64(value)
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []uint8{0}
	}
	var bits []uint8
	for n > 0 {
		bits = append(bits, uint8(n&1))
		n >>= 1
	}
	return bits
}

// Commitment is the public commitment to x together with its per-bit
// commitments B_0..B_{n-1}.
type Commitment struct {
	Point group.Element
	Bits  []group.Element
}

// Witness is the opening of Commitment: x's own randomness together with
// the value and randomness behind every bit commitment.
type Witness struct {
	Value         *big.Int
	Randomness    *big.Int
	BitValues     []uint8
	BitRandomness []*big.Int
}

// Commit builds the decomposition of |value| and its per-bit commitments,
// fixing B_0 and its randomness so that Σ 2^i·B_i reconstructs P_x exactly.
// P_x itself commits to value as given, sign included: a negative value
// commits without complaint, but its bits (of |value|) then disagree with
// what B_0 actually opens to, which is exactly what makes Verify reject it.
func Commit(params pedersen.Params, value int32) (Commitment, Witness) {
	n := params.Group.N()
	bitValues := Decompose(value)
	length := len(bitValues)

	s, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	x := new(big.Int).SetInt64(int64(value))
	point := pedersen.CommitWith(params, x, s).Point

	bitPoints := make([]group.Element, length)
	bitRandomness := make([]*big.Int, length)

	for i := 1; i < length; i++ {
		ri, err := rand.Int(rand.Reader, n)
		if err != nil {
			panic(err)
		}
		bitRandomness[i] = ri
		bitPoints[i] = pedersen.CommitWith(params, new(big.Int).SetUint64(uint64(bitValues[i])), ri).Point
	}

	if length == 1 {
		bitPoints[0] = point
		bitRandomness[0] = s
	} else {
		weighted := weightedSum(params, bitPoints, 1)
		bitPoints[0] = params.Group.Element().Subtract(point, weighted)

		rSigma := new(big.Int)
		for i := 1; i < length; i++ {
			term := new(big.Int).Lsh(big.NewInt(1), uint(i))
			term.Mul(term, bitRandomness[i])
			rSigma.Add(rSigma, term)
		}
		rSigma.Mod(rSigma, n)
		r0 := new(big.Int).Sub(s, rSigma)
		bitRandomness[0] = r0.Mod(r0, n)
	}

	return Commitment{Point: point, Bits: bitPoints},
		Witness{Value: x, Randomness: s, BitValues: bitValues, BitRandomness: bitRandomness}
}

// weightedSum computes Σ_{i=from}^{len-1} 2^i · points[i].
func weightedSum(params pedersen.Params, points []group.Element, from int) group.Element {
	sum := params.Group.Identity()
	for i := from; i < len(points); i++ {
		weight := new(big.Int).Lsh(big.NewInt(1), uint(i))
		sum = params.Group.Element().Add(sum, params.Group.Element().Scale(points[i], weight))
	}
	return sum
}

// Proof is the non-interactive sigma proof that every bit committed in
// Commitment.Bits is actually 0 or 1.
type Proof struct {
	D1, D2 group.Element
	UHat   *big.Int
	BHat   []*big.Int
	RHat   *big.Int
}

// powScalar computes base^exp mod n.
func powScalar(n, base *big.Int, exp int) *big.Int {
	result := big.NewInt(1)
	for i := 0; i < exp; i++ {
		result.Mod(new(big.Int).Mul(result, base), n)
	}
	return result
}

// Prove produces a proof that every bit in comm/witness is 0 or 1.
func Prove(params pedersen.Params, comm Commitment, witness Witness) Proof {
	n := params.Group.N()
	length := len(witness.BitValues)

	bPrime := make([]*big.Int, length)
	bSigmaPrime := new(big.Int)
	biBSigmaPrime := new(big.Int)
	for i := 0; i < length; i++ {
		v, err := rand.Int(rand.Reader, n)
		if err != nil {
			panic(err)
		}
		bPrime[i] = v
		bSigmaPrime.Add(bSigmaPrime, v)
		term := new(big.Int).Mul(v, big.NewInt(int64(witness.BitValues[i])))
		biBSigmaPrime.Add(biBSigmaPrime, term)
	}
	bSigmaPrime.Mod(bSigmaPrime, n)
	biBSigmaPrime.Mod(biBSigmaPrime, n)

	rPrime, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	d1 := pedersen.CommitWith(params, bSigmaPrime, rPrime).Point

	uPrime, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	d2 := pedersen.CommitWith(params, biBSigmaPrime, uPrime).Point

	t := pedersen.NewTranscript(params).Append(comm.Point)
	for i := 0; i < length; i++ {
		t = t.Append(comm.Bits[i])
	}
	e := t.Append(d1).Append(d2).Challenge()

	bHat := make([]*big.Int, length)
	uHat := new(big.Int).Set(uPrime)
	rHat := new(big.Int).Set(rPrime)
	for i := 0; i < length; i++ {
		ei := powScalar(n, e, i)
		bj := new(big.Int).Mod(new(big.Int).Add(
			new(big.Int).Mul(big.NewInt(int64(witness.BitValues[i])), ei),
			bPrime[i],
		), n)
		bHat[i] = bj

		diff := new(big.Int).Mod(new(big.Int).Sub(ei, bj), n)
		uHat.Add(uHat, new(big.Int).Mul(diff, witness.BitRandomness[i]))

		rHat.Add(rHat, new(big.Int).Mul(witness.BitRandomness[i], ei))
	}
	uHat.Mod(uHat, n)
	rHat.Mod(rHat, n)

	return Proof{D1: d1, D2: d2, UHat: uHat, BHat: bHat, RHat: rHat}
}

// Verify accepts iff the homomorphic reconstruction Σ 2^i·B_i == P_x holds
// and both sigma equations check out, certifying every committed bit is
// 0 or 1 and therefore x >= 0.
func Verify(params pedersen.Params, comm Commitment, proof Proof) bool {
	length := len(comm.Bits)
	if length != len(proof.BHat) {
		return false
	}

	if !weightedSum(params, comm.Bits, 0).IsEqual(comm.Point) {
		return false
	}

	n := params.Group.N()
	t := pedersen.NewTranscript(params).Append(comm.Point)
	for i := 0; i < length; i++ {
		t = t.Append(comm.Bits[i])
	}
	e := t.Append(proof.D1).Append(proof.D2).Challenge()

	left1 := proof.D1
	bjSum := new(big.Int)
	for i := 0; i < length; i++ {
		ei := powScalar(n, e, i)
		left1 = params.Group.Element().Add(left1, params.Group.Element().Scale(comm.Bits[i], ei))
		bjSum.Add(bjSum, proof.BHat[i])
	}
	bjSum.Mod(bjSum, n)
	right1 := pedersen.CommitWith(params, bjSum, proof.RHat).Point
	if !left1.IsEqual(right1) {
		return false
	}

	left2 := proof.D2
	for i := 0; i < length; i++ {
		ei := powScalar(n, e, i)
		coeff := new(big.Int).Mod(new(big.Int).Sub(ei, proof.BHat[i]), n)
		left2 = params.Group.Element().Add(left2, params.Group.Element().Scale(comm.Bits[i], coeff))
	}
	right2 := params.Group.Element().Scale(params.H, proof.UHat)
	return left2.IsEqual(right2)
}
