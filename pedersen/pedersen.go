// Package pedersen implements the Pedersen commitment scheme and the
// Fiat-Shamir transcript substrate that the six sigma protocols in this
// module are built on top of.
package pedersen

import (
	"crypto/rand"
	"math/big"

	"github.com/pedersen-nizk/arith/group"
)

// Params fixes the two independent generators that every commitment and
// proof is defined over: G binds the committed value, H blinds it. No
// party may know the discrete log of H with respect to G.
type Params struct {
	Group group.Group
	G     group.Element
	H     group.Element
}

// NewParams builds the public parameters for g. H is derived by hashing
// seed onto the curve, so its discrete log relative to g's generator is
// unknown to the party that ran NewParams, let alone to anyone else.
func NewParams(g group.Group, seed string) Params {
	return Params{
		Group: g,
		G:     g.Generator(),
		H:     group.DeriveGenerator(g, seed),
	}
}

// Commitment is the public half of a Pedersen commitment: a single group
// element P = v*G + r*H. It is binding under the discrete-log assumption
// and information-theoretically hiding in r.
type Commitment struct {
	Point group.Element
}

// Witness is the secret opening of a Commitment.
type Witness struct {
	Value      *big.Int
	Randomness *big.Int
}

// Commit samples fresh randomness and commits to value.
func Commit(p Params, value *big.Int) (Commitment, Witness) {
	r, err := rand.Int(rand.Reader, p.Group.N())
	if err != nil {
		panic(err)
	}
	return CommitWith(p, value, r), Witness{Value: value, Randomness: r}
}

// CommitWith returns Com(value, r) for caller-supplied randomness.
//
// Reusing r across distinct commitments breaks hiding and, for the sigma
// protocols above this package, can leak the witness entirely. Production
// callers should use Commit, which samples its own randomness; CommitWith
// exists so that homomorphically-derived commitments (e.g. the c-term in
// Addition/Subtraction) can be built with an explicitly computed r.
func CommitWith(p Params, value, r *big.Int) Commitment {
	bind := p.Group.Element().Scale(p.G, value)
	blind := p.Group.Element().Scale(p.H, r)
	point := p.Group.Element().Add(bind, blind)
	return Commitment{Point: point}
}
