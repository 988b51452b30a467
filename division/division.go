// Package division proves, in zero knowledge, that a committed value c is
// the quotient of a divided by b, for two other committed values a and b.
//
// The relation actually proven is b*c = a in Z_q, the scalar field of the
// underlying group, not exact integer division. A prover who commits to a
// quotient that only holds modulo the group order, rather than over the
// integers, produces an equally valid proof; callers that need exact
// integer division must additionally bound the magnitudes of a, b and c
// (for instance with the comparison package) so that no such wraparound
// fits inside the field.
package division

import (
	"crypto/rand"
	"math/big"

	"github.com/pedersen-nizk/arith/group"
	"github.com/pedersen-nizk/arith/pedersen"
)

// Commitment is the public commitment to one operand of a / b = c.
type Commitment struct {
	Point group.Element
}

// Witness is the opening of a Commitment.
type Witness struct {
	Value      *big.Int
	Randomness *big.Int
}

// Proof binds a single knowledge-of-opening response, BHat, across two
// equations: one that opens a over the bases (P_c, H), and one that opens
// b over the bases (G, H). Reusing BHat in both is what forces v_b*v_c = v_a.
type Proof struct {
	D1, D2  group.Element
	BHat    *big.Int
	SHat    *big.Int
	BetaHat *big.Int
}

// Commit creates a fresh commitment to value.
func Commit(params pedersen.Params, value uint64) (Commitment, Witness) {
	comm, wit := pedersen.Commit(params, new(big.Int).SetUint64(value))
	return Commitment{Point: comm.Point}, Witness{Value: wit.Value, Randomness: wit.Randomness}
}

// DeriveAuxiliary computes s = r_a - v_b*r_c, the scalar that makes
// P_a = v_b*P_c + s*H hold whenever b*c = a.
func DeriveAuxiliary(params pedersen.Params, aWitness, cWitness Witness, bValue *big.Int) *big.Int {
	s := new(big.Int).Sub(aWitness.Randomness, new(big.Int).Mul(bValue, cWitness.Randomness))
	return s.Mod(s, params.Group.N())
}

// Prove produces a proof that c = a / b. bWitness supplies (v_b, r_b); s is
// the auxiliary scalar returned by DeriveAuxiliary.
func Prove(params pedersen.Params, a, b, c Commitment, bWitness Witness, s *big.Int) Proof {
	n := params.Group.N()

	b0, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	s0, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	beta0, err := rand.Int(rand.Reader, n)
	if err != nil {
		panic(err)
	}

	d1 := params.Group.Element().Add(
		params.Group.Element().Scale(c.Point, b0),
		params.Group.Element().Scale(params.H, s0),
	)
	d2 := pedersen.CommitWith(params, b0, beta0).Point

	e := pedersen.NewTranscript(params).
		Append(a.Point).Append(b.Point).Append(c.Point).Append(d1).Append(d2).
		Challenge()

	bHat := new(big.Int).Mod(new(big.Int).Add(b0, new(big.Int).Mul(e, bWitness.Value)), n)
	sHat := new(big.Int).Mod(new(big.Int).Add(s0, new(big.Int).Mul(e, s)), n)
	betaHat := new(big.Int).Mod(new(big.Int).Add(beta0, new(big.Int).Mul(e, bWitness.Randomness)), n)

	return Proof{D1: d1, D2: d2, BHat: bHat, SHat: sHat, BetaHat: betaHat}
}

// Verify accepts iff both D1 + e*P_a == BHat*P_c + SHat*H and
// D2 + e*P_b == BHat*G + BetaHat*H.
func Verify(params pedersen.Params, a, b, c Commitment, proof Proof) bool {
	e := pedersen.NewTranscript(params).
		Append(a.Point).Append(b.Point).Append(c.Point).Append(proof.D1).Append(proof.D2).
		Challenge()

	lhs1 := params.Group.Element().Add(proof.D1, params.Group.Element().Scale(a.Point, e))
	rhs1 := params.Group.Element().Add(
		params.Group.Element().Scale(c.Point, proof.BHat),
		params.Group.Element().Scale(params.H, proof.SHat),
	)
	if !lhs1.IsEqual(rhs1) {
		return false
	}

	lhs2 := params.Group.Element().Add(proof.D2, params.Group.Element().Scale(b.Point, e))
	rhs2 := pedersen.CommitWith(params, proof.BHat, proof.BetaHat).Point
	return lhs2.IsEqual(rhs2)
}
