// Package equality proves, in zero knowledge, that two committed values
// are equal without revealing either one.
package equality

import (
	"crypto/rand"
	"math/big"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

// Commitment is the public commitment to one of the two compared values.
type Commitment struct {
	Point group.Element
}

// Witness is the opening of a Commitment.
type Witness struct {
	Value      *big.Int
	Randomness *big.Int
}

// Proof is a Schnorr proof of knowledge of the discrete log of P_a - P_b
// with respect to H alone. It only exists when the two commitments carry
// the same value, since that is precisely what cancels the G-component of
// P_a - P_b.
type Proof struct {
	D group.Element
	U *big.Int
}

// Commit creates a fresh commitment to value.
func Commit(params pedersen.Params, value uint64) (Commitment, Witness) {
	comm, wit := pedersen.Commit(params, new(big.Int).SetUint64(value))
	return Commitment{Point: comm.Point}, Witness{Value: wit.Value, Randomness: wit.Randomness}
}

// Prove produces a proof that a and b commit to the same value. The proof
// is over t = r_a - r_b; it never touches the committed values directly.
func Prove(params pedersen.Params, a, b Commitment, aWitness, bWitness Witness) Proof {
	n := params.Group.N()
	t := new(big.Int).Mod(new(big.Int).Sub(aWitness.Randomness, bWitness.Randomness), n)

	x, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	d := params.Group.Element().Scale(params.H, x)

	e := pedersen.NewTranscript(params).
		Append(a.Point).Append(b.Point).Append(d).
		Challenge()

	u := new(big.Int).Mod(new(big.Int).Add(x, new(big.Int).Mul(e, t)), n)
	return Proof{D: d, U: u}
}

// Verify accepts iff D + e*(P_a - P_b) == u*H, which holds iff P_a - P_b
// lies in the subgroup generated by H alone, i.e. v_a - v_b = 0.
func Verify(params pedersen.Params, a, b Commitment, proof Proof) bool {
	e := pedersen.NewTranscript(params).
		Append(a.Point).Append(b.Point).Append(proof.D).
		Challenge()

	diff := params.Group.Element().Subtract(a.Point, b.Point)
	lhs := params.Group.Element().Add(proof.D, params.Group.Element().Scale(diff, e))
	rhs := params.Group.Element().Scale(params.H, proof.U)
	return lhs.IsEqual(rhs)
}
