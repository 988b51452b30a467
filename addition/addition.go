// Package addition proves, in zero knowledge, that a committed value c
// equals the sum of two other committed values a and b.
package addition

import (
	"crypto/rand"
	"math/big"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

// Commitment is the public commitment to one operand of a + b = c.
type Commitment struct {
	Point group.Element
}

// Witness is the opening of a Commitment.
type Witness struct {
	Value      *big.Int
	Randomness *big.Int
}

// Proof is a non-interactive sigma proof that c's commitment opens to the
// sum of a's and b's committed values.
type Proof struct {
	D group.Element
	U *big.Int
	V *big.Int
}

// Commit creates a fresh commitment to value.
func Commit(params pedersen.Params, value uint64) (Commitment, Witness) {
	comm, wit := pedersen.Commit(params, new(big.Int).SetUint64(value))
	return Commitment{Point: comm.Point}, Witness{Value: wit.Value, Randomness: wit.Randomness}
}

// CommitSum derives c's commitment homomorphically from a's and b's
// witnesses, so that c's point equals a's point plus b's point exactly:
// the randomness is not freshly sampled but fixed to r_a + r_b.
func CommitSum(params pedersen.Params, a, b Witness) (Commitment, Witness) {
	value := new(big.Int).Add(a.Value, b.Value)
	randomness := new(big.Int).Mod(new(big.Int).Add(a.Randomness, b.Randomness), params.Group.N())
	comm := pedersen.CommitWith(params, value, randomness)
	return Commitment{Point: comm.Point}, Witness{Value: value, Randomness: randomness}
}

// Prove produces a proof that c = a + b, given c's witness. a and b's
// witnesses play no role beyond having fixed their public commitments.
func Prove(params pedersen.Params, a, b, c Commitment, cWitness Witness) Proof {
	n := params.Group.N()

	x, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	y, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	d := pedersen.CommitWith(params, x, y).Point

	e := pedersen.NewTranscript(params).
		Append(a.Point).Append(b.Point).Append(c.Point).Append(d).
		Challenge()

	u := new(big.Int).Mod(new(big.Int).Add(x, new(big.Int).Mul(e, cWitness.Value)), n)
	v := new(big.Int).Mod(new(big.Int).Add(y, new(big.Int).Mul(e, cWitness.Randomness)), n)

	return Proof{D: d, U: u, V: v}
}

// Verify accepts iff c's point equals a's plus b's as group elements, and
// proof is a valid sigma proof of knowledge of c's opening.
func Verify(params pedersen.Params, a, b, c Commitment, proof Proof) bool {
	sum := params.Group.Element().Add(a.Point, b.Point)
	if !sum.IsEqual(c.Point) {
		return false
	}

	e := pedersen.NewTranscript(params).
		Append(a.Point).Append(b.Point).Append(c.Point).Append(proof.D).
		Challenge()

	lhs := params.Group.Element().Add(proof.D, params.Group.Element().Scale(c.Point, e))
	rhs := pedersen.CommitWith(params, proof.U, proof.V).Point
	return lhs.IsEqual(rhs)
}
